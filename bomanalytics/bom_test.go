// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import (
	"context"
	"encoding/json"

	check "gopkg.in/check.v1"
)

const testBomXML = `<PartsEco xmlns="http://www.grantadesign.com/17/11/BillOfMaterialsEco"></PartsEco>`

var _ = check.Suite(&bomQuerySuite{})

type bomQuerySuite struct{}

func (*bomQuerySuite) TestImpactedSubstances(c *check.C) {
	client, stub := stubClient(map[string]string{
		"/BomAnalytics/v1.svc/impacted-substances/bom1711": `{
			"log_messages": [],
			"legislations": [
				{
					"legislation_name": "leg A",
					"impacted_substances": [
						{"cas_number": "90481-04-2", "max_percentage_amount_in_material": 2, "legislation_threshold": 0.1}
					]
				},
				{
					"legislation_name": "leg B",
					"impacted_substances": [
						{"cas_number": "90481-04-2", "max_percentage_amount_in_material": 2, "legislation_threshold": 1}
					]
				}
			]
		}`,
	})
	result, err := NewBomImpactedSubstancesQuery().
		WithBom(testBomXML).
		WithLegislations("leg A", "leg B").
		Run(context.Background(), client)
	c.Assert(err, check.IsNil)

	var req impactedSubstancesRequest
	c.Assert(json.Unmarshal(stub.Bodies[0], &req), check.IsNil)
	c.Check(req.BomXML, check.Equals, testBomXML)
	c.Check(req.Materials, check.HasLen, 0)

	byLegislation := result.ImpactedSubstancesByLegislation()
	c.Assert(byLegislation, check.HasLen, 2)
	c.Check(byLegislation["leg A"], check.HasLen, 1)

	flat := result.ImpactedSubstances()
	c.Assert(flat, check.HasLen, 1)
	c.Check(flat[0].CASNumber, check.Equals, "90481-04-2")
	c.Check(flat[0].LegislationThreshold, check.IsNil)
}

func (*bomQuerySuite) TestCompliance(c *check.C) {
	client, _ := stubClient(map[string]string{
		"/BomAnalytics/v1.svc/compliance/bom1711": `{
			"log_messages": [],
			"parts": [
				{
					"reference_type": "",
					"reference_value": "",
					"indicators": [{"name": "Indicator 1", "flag": "WatchListAboveThreshold"}],
					"materials": [
						{
							"reference_type": "MaterialId",
							"reference_value": "steel-1",
							"indicators": [{"name": "Indicator 1", "flag": "WatchListAboveThreshold"}],
							"substances": []
						}
					]
				}
			]
		}`,
	})
	result, err := NewBomComplianceQuery().
		WithBom(testBomXML).
		WithIndicators(WatchListIndicator{Name: "Indicator 1", LegislationNames: []string{"leg A"}}).
		Run(context.Background(), client)
	c.Assert(err, check.IsNil)

	parts := result.ComplianceByPartAndIndicator()
	c.Assert(parts, check.HasLen, 1)
	// BoM root parts come back without a reference
	c.Check(parts[0].PartReference, check.Equals, PartReference{})
	c.Assert(parts[0].Materials, check.HasLen, 1)
	c.Check(parts[0].Materials[0].MaterialID, check.Equals, "steel-1")
	c.Check(result.ComplianceByIndicator()["Indicator 1"].FlagName(), check.Equals, "WatchListAboveThreshold")
}

func (*bomQuerySuite) TestValidation(c *check.C) {
	client, _ := stubClient(nil)
	_, err := NewBomImpactedSubstancesQuery().WithLegislations("leg A").Run(context.Background(), client)
	c.Check(err, check.Equals, errNoBom)
	_, err = NewBomImpactedSubstancesQuery().WithBom(testBomXML).Run(context.Background(), client)
	c.Check(err, check.Equals, errNoLegislations)
	_, err = NewBomComplianceQuery().WithBom(testBomXML).Run(context.Background(), client)
	c.Check(err, check.Equals, errNoIndicators)
	_, err = NewBomComplianceQuery().WithIndicators(WatchListIndicator{Name: "Indicator 1"}).Run(context.Background(), client)
	c.Check(err, check.Equals, errNoBom)
}
