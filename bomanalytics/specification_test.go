// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import (
	"context"
	"encoding/json"

	check "gopkg.in/check.v1"
)

var _ = check.Suite(&specificationQuerySuite{})

type specificationQuerySuite struct{}

func (*specificationQuerySuite) TestImpactedSubstances(c *check.C) {
	client, stub := stubClient(map[string]string{
		"/BomAnalytics/v1.svc/impacted-substances/specifications": `{
			"log_messages": [],
			"specifications": [
				{
					"reference_type": "SpecificationId",
					"reference_value": "MSP89,TypeI",
					"legislations": [
						{
							"legislation_name": "leg A",
							"impacted_substances": [
								{"cas_number": "50-00-0", "legislation_threshold": 0.1}
							]
						}
					]
				}
			]
		}`,
	})
	result, err := NewSpecificationImpactedSubstancesQuery().
		WithSpecificationIDs("MSP89,TypeI").
		WithLegislations("leg A").
		Run(context.Background(), client)
	c.Assert(err, check.IsNil)

	var req impactedSubstancesRequest
	c.Assert(json.Unmarshal(stub.Bodies[0], &req), check.IsNil)
	c.Check(req.Specifications, check.DeepEquals, []itemReference{{RefSpecificationID, "MSP89,TypeI"}})

	bySpec := result.ImpactedSubstancesBySpecification()
	c.Assert(bySpec, check.HasLen, 1)
	c.Check(bySpec[0].SpecificationID, check.Equals, "MSP89,TypeI")
	c.Check(result.ImpactedSubstancesByLegislation()["leg A"], check.HasLen, 1)
}

func (*specificationQuerySuite) TestCompliance(c *check.C) {
	client, _ := stubClient(map[string]string{
		"/BomAnalytics/v1.svc/compliance/specifications": `{
			"log_messages": [],
			"specifications": [
				{
					"reference_type": "SpecificationId",
					"reference_value": "MSP89,TypeI",
					"indicators": [{"name": "Indicator 1", "flag": "WatchListAboveThreshold"}],
					"coatings": [
						{
							"reference_type": "MiRecordHistoryIdentity",
							"reference_value": "14321",
							"indicators": [{"name": "Indicator 1", "flag": "WatchListAboveThreshold"}]
						}
					],
					"specifications": [
						{
							"reference_type": "SpecificationId",
							"reference_value": "MSP88,TypeII",
							"indicators": [{"name": "Indicator 1", "flag": "WatchListCompliant"}]
						}
					]
				}
			]
		}`,
	})
	result, err := NewSpecificationComplianceQuery().
		WithSpecificationIDs("MSP89,TypeI").
		WithIndicators(WatchListIndicator{Name: "Indicator 1", LegislationNames: []string{"leg A"}}).
		Run(context.Background(), client)
	c.Assert(err, check.IsNil)

	bySpec := result.ComplianceBySpecificationAndIndicator()
	c.Assert(bySpec, check.HasLen, 1)
	c.Check(bySpec[0].SpecificationID, check.Equals, "MSP89,TypeI")
	c.Assert(bySpec[0].Coatings, check.HasLen, 1)
	c.Check(bySpec[0].Coatings[0].RecordHistoryIdentity, check.Equals, "14321")
	c.Assert(bySpec[0].Specifications, check.HasLen, 1)
	c.Check(bySpec[0].Specifications[0].SpecificationID, check.Equals, "MSP88,TypeII")
	c.Check(result.ComplianceByIndicator()["Indicator 1"].FlagName(), check.Equals, "WatchListAboveThreshold")
}
