// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import (
	"context"
	"encoding/json"

	check "gopkg.in/check.v1"
)

var _ = check.Suite(&partQuerySuite{})

type partQuerySuite struct{}

func (*partQuerySuite) TestImpactedSubstances(c *check.C) {
	client, stub := stubClient(map[string]string{
		"/BomAnalytics/v1.svc/impacted-substances/parts": `{
			"log_messages": [],
			"parts": [
				{
					"reference_type": "PartNumber",
					"reference_value": "DRILL",
					"legislations": [
						{
							"legislation_name": "leg A",
							"impacted_substances": [
								{"cas_number": "872-50-4", "max_percentage_amount_in_material": 1.5, "legislation_threshold": 0.1}
							]
						}
					]
				}
			]
		}`,
	})
	result, err := NewPartImpactedSubstancesQuery().
		WithPartNumbers("DRILL").
		WithRecordHistoryIdentities("34567").
		WithLegislations("leg A").
		Run(context.Background(), client)
	c.Assert(err, check.IsNil)

	var req impactedSubstancesRequest
	c.Assert(json.Unmarshal(stub.Bodies[0], &req), check.IsNil)
	c.Check(req.Parts, check.DeepEquals, []itemReference{
		{RefPartNumber, "DRILL"},
		{RefRecordHistoryIdentity, "34567"},
	})

	byPart := result.ImpactedSubstancesByPart()
	c.Assert(byPart, check.HasLen, 1)
	c.Check(byPart[0].PartNumber, check.Equals, "DRILL")
	c.Assert(result.ImpactedSubstances(), check.HasLen, 1)
	c.Check(result.ImpactedSubstances()[0].CASNumber, check.Equals, "872-50-4")
}

func (*partQuerySuite) TestCompliance(c *check.C) {
	client, _ := stubClient(map[string]string{
		"/BomAnalytics/v1.svc/compliance/parts": `{
			"log_messages": [],
			"parts": [
				{
					"reference_type": "PartNumber",
					"reference_value": "DRILL",
					"indicators": [{"name": "Indicator 1", "flag": "WatchListHasSubstanceAboveThreshold"}],
					"parts": [
						{
							"reference_type": "MiRecordHistoryIdentity",
							"reference_value": "987",
							"indicators": [{"name": "Indicator 1", "flag": "WatchListCompliant"}],
							"materials": [
								{
									"reference_type": "MaterialId",
									"reference_value": "steel-1",
									"indicators": [{"name": "Indicator 1", "flag": "WatchListCompliant"}],
									"substances": []
								}
							]
						}
					]
				}
			]
		}`,
	})
	result, err := NewPartComplianceQuery().
		WithPartNumbers("DRILL").
		WithIndicators(WatchListIndicator{Name: "Indicator 1", LegislationNames: []string{"leg A"}}).
		Run(context.Background(), client)
	c.Assert(err, check.IsNil)

	byPart := result.ComplianceByPartAndIndicator()
	c.Assert(byPart, check.HasLen, 1)
	c.Check(byPart[0].PartNumber, check.Equals, "DRILL")
	c.Check(byPart[0].Indicators["Indicator 1"].FlagName(), check.Equals, "WatchListHasSubstanceAboveThreshold")
	c.Assert(byPart[0].Parts, check.HasLen, 1)
	c.Check(byPart[0].Parts[0].RecordHistoryIdentity, check.Equals, "987")
	c.Assert(byPart[0].Parts[0].Materials, check.HasLen, 1)
	c.Check(byPart[0].Parts[0].Materials[0].MaterialID, check.Equals, "steel-1")

	// The rollup considers root items only, but the root already
	// carries the worst flag of its subtree.
	c.Check(result.ComplianceByIndicator()["Indicator 1"].FlagName(), check.Equals, "WatchListHasSubstanceAboveThreshold")
}

func (*partQuerySuite) TestValidation(c *check.C) {
	client, _ := stubClient(nil)
	_, err := NewPartImpactedSubstancesQuery().WithLegislations("leg A").Run(context.Background(), client)
	c.Check(err, check.Equals, errNoItems)
	_, err = NewPartComplianceQuery().WithPartNumbers("DRILL").Run(context.Background(), client)
	c.Check(err, check.Equals, errNoIndicators)
}
