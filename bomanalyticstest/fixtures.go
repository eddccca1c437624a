// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalyticstest

// Record keys appearing in the canned responses, exported so tests
// can assert against them without repeating literals.
const (
	MaterialID1        = "elastomer-butadienerubber"
	MaterialID2        = "glass-epoxy-1"
	PartNumber1        = "DRILL"
	SpecificationID1   = "MSP89,TypeI"
	RecordGUID1        = "3df206df-9fc8-4859-90d4-3519764f8b55"
	HistoryIdentity1   = "12345"
	HistoryIdentity2   = "34567"
	SubstanceIdentity1 = "62345"
	SpecIdentity1      = "14321"
	Legislation1       = "The SIN List 2.1 (Substitute It Now!)"

	// Indicator names used by the compliance fixtures. Queries run
	// against the stub must define indicators with these names: a
	// watch list indicator named IndicatorName1 and a RoHS
	// indicator named IndicatorName2.
	IndicatorName1 = "Indicator 1"
	IndicatorName2 = "Indicator 2"
)

// DefaultResponses holds one canned JSON response per endpoint.
var DefaultResponses = map[string]string{
	"impacted-substances/materials": `{
		"log_messages": [
			{"severity": "warning", "message": "Material \"ABS+PVC (flame retarded)\" has 2 substance row(s) with missing substance links."}
		],
		"materials": [
			{
				"reference_type": "MaterialId", "reference_value": "elastomer-butadienerubber",
				"legislations": [{
					"legislation_name": "The SIN List 2.1 (Substitute It Now!)",
					"impacted_substances": [
						{"cas_number": "106-99-0", "ec_number": "203-450-8", "substance_name": "1,3-Butadiene", "max_percentage_amount_in_material": 0.8, "legislation_threshold": 0.1}
					]
				}]
			},
			{
				"reference_type": "MaterialId", "reference_value": "glass-epoxy-1",
				"legislations": [{
					"legislation_name": "The SIN List 2.1 (Substitute It Now!)",
					"impacted_substances": [
						{"cas_number": "106-99-0", "ec_number": "203-450-8", "substance_name": "1,3-Butadiene", "max_percentage_amount_in_material": 0.2, "legislation_threshold": 0.1},
						{"cas_number": "128-37-0", "ec_number": "204-881-4", "substance_name": "Butylated hydroxytoluene", "max_percentage_amount_in_material": null, "legislation_threshold": null}
					]
				}]
			}
		]
	}`,

	"impacted-substances/parts": `{
		"log_messages": [],
		"parts": [
			{
				"reference_type": "PartNumber", "reference_value": "DRILL",
				"legislations": [{
					"legislation_name": "The SIN List 2.1 (Substitute It Now!)",
					"impacted_substances": [
						{"cas_number": "106-99-0", "ec_number": "203-450-8", "substance_name": "1,3-Butadiene", "max_percentage_amount_in_material": 0.8, "legislation_threshold": 0.1}
					]
				}]
			}
		]
	}`,

	"impacted-substances/specifications": `{
		"log_messages": [],
		"specifications": [
			{
				"reference_type": "MiRecordHistoryIdentity", "reference_value": "14321",
				"legislations": [{
					"legislation_name": "The SIN List 2.1 (Substitute It Now!)",
					"impacted_substances": [
						{"cas_number": "106-99-0", "ec_number": "203-450-8", "substance_name": "1,3-Butadiene", "max_percentage_amount_in_material": 0.8, "legislation_threshold": 0.1},
						{"cas_number": "128-37-0", "ec_number": "204-881-4", "substance_name": "Butylated hydroxytoluene", "max_percentage_amount_in_material": 0.1, "legislation_threshold": 0.1}
					]
				}]
			},
			{
				"reference_type": "SpecificationId", "reference_value": "MSP89,TypeI",
				"legislations": [{
					"legislation_name": "The SIN List 2.1 (Substitute It Now!)",
					"impacted_substances": [
						{"cas_number": "872-50-4", "ec_number": "212-828-1", "substance_name": "1-Methyl-2-pyrrolidone", "max_percentage_amount_in_material": 1.5, "legislation_threshold": 0.1},
						{"cas_number": "90481-04-2", "ec_number": "291-771-0", "substance_name": "Phenol, dodecyl-, branched", "max_percentage_amount_in_material": 0.3, "legislation_threshold": 0.1}
					]
				}]
			}
		]
	}`,

	"impacted-substances/bom1711": `{
		"log_messages": [],
		"legislations": [{
			"legislation_name": "The SIN List 2.1 (Substitute It Now!)",
			"impacted_substances": [
				{"cas_number": "106-99-0", "ec_number": "203-450-8", "substance_name": "1,3-Butadiene", "max_percentage_amount_in_material": 0.8, "legislation_threshold": 0.1},
				{"cas_number": "128-37-0", "ec_number": "204-881-4", "substance_name": "Butylated hydroxytoluene", "max_percentage_amount_in_material": 0.1, "legislation_threshold": 0.1}
			]
		}]
	}`,

	"compliance/materials": `{
		"log_messages": [],
		"materials": [
			{
				"reference_type": "MaterialId", "reference_value": "elastomer-butadienerubber",
				"indicators": [
					{"name": "Indicator 1", "flag": "WatchListAllSubstancesBelowThreshold"},
					{"name": "Indicator 2", "flag": "RohsCompliant"}
				],
				"substances": [
					{
						"reference_type": "MiRecordHistoryIdentity", "reference_value": "12345",
						"indicators": [
							{"name": "Indicator 1", "flag": "WatchListBelowThreshold"},
							{"name": "Indicator 2", "flag": "RohsBelowThreshold"}
						]
					}
				]
			},
			{
				"reference_type": "MiRecordGuid", "reference_value": "3df206df-9fc8-4859-90d4-3519764f8b55",
				"indicators": [
					{"name": "Indicator 1", "flag": "WatchListAboveThreshold"},
					{"name": "Indicator 2", "flag": "RohsNonCompliant"}
				],
				"substances": []
			}
		]
	}`,

	"compliance/parts": `{
		"log_messages": [],
		"parts": [
			{
				"reference_type": "PartNumber", "reference_value": "DRILL",
				"indicators": [
					{"name": "Indicator 1", "flag": "WatchListAllSubstancesBelowThreshold"},
					{"name": "Indicator 2", "flag": "RohsCompliant"}
				],
				"parts": [],
				"materials": [
					{
						"reference_type": "MaterialId", "reference_value": "elastomer-butadienerubber",
						"indicators": [
							{"name": "Indicator 1", "flag": "WatchListAllSubstancesBelowThreshold"},
							{"name": "Indicator 2", "flag": "RohsCompliant"}
						],
						"substances": [
							{
								"reference_type": "MiRecordHistoryIdentity", "reference_value": "62345",
								"indicators": [
									{"name": "Indicator 1", "flag": "WatchListNotImpacted"},
									{"name": "Indicator 2", "flag": "RohsNotImpacted"}
								]
							}
						]
					}
				],
				"specifications": [],
				"substances": []
			}
		]
	}`,

	"compliance/specifications": `{
		"log_messages": [],
		"specifications": [
			{
				"reference_type": "SpecificationId", "reference_value": "MSP89,TypeI",
				"indicators": [
					{"name": "Indicator 1", "flag": "WatchListAllSubstancesBelowThreshold"},
					{"name": "Indicator 2", "flag": "RohsCompliant"}
				],
				"materials": [], "specifications": [], "coatings": [], "substances": []
			},
			{
				"reference_type": "MiRecordGuid", "reference_value": "3df206df-9fc8-4859-90d4-3519764f8b55",
				"indicators": [
					{"name": "Indicator 1", "flag": "WatchListHasSubstanceAboveThreshold"},
					{"name": "Indicator 2", "flag": "RohsNonCompliant"}
				],
				"materials": [],
				"specifications": [],
				"coatings": [
					{
						"reference_type": "MiRecordHistoryIdentity", "reference_value": "987654",
						"indicators": [
							{"name": "Indicator 1", "flag": "WatchListAboveThreshold"},
							{"name": "Indicator 2", "flag": "RohsAboveThreshold"}
						]
					}
				],
				"substances": [
					{
						"reference_type": "MiRecordHistoryIdentity", "reference_value": "12345",
						"indicators": [
							{"name": "Indicator 1", "flag": "WatchListAboveThreshold"},
							{"name": "Indicator 2", "flag": "RohsAboveThreshold"}
						]
					},
					{
						"reference_type": "MiRecordHistoryIdentity", "reference_value": "34567",
						"indicators": [
							{"name": "Indicator 1", "flag": "WatchListBelowThreshold"},
							{"name": "Indicator 2", "flag": "RohsBelowThreshold"}
						]
					}
				]
			}
		]
	}`,

	"compliance/substances": `{
		"log_messages": [],
		"substances": [
			{
				"reference_type": "CasNumber", "reference_value": "50-00-0",
				"indicators": [
					{"name": "Indicator 1", "flag": "WatchListAboveThreshold"},
					{"name": "Indicator 2", "flag": "RohsAboveThreshold"}
				]
			},
			{
				"reference_type": "CasNumber", "reference_value": "57-24-9",
				"indicators": [
					{"name": "Indicator 1", "flag": "WatchListNotImpacted"},
					{"name": "Indicator 2", "flag": "RohsNotImpacted"}
				]
			}
		]
	}`,

	"compliance/bom1711": `{
		"log_messages": [],
		"parts": [
			{
				"reference_type": "", "reference_value": "",
				"indicators": [
					{"name": "Indicator 1", "flag": "WatchListAllSubstancesBelowThreshold"},
					{"name": "Indicator 2", "flag": "RohsCompliant"}
				],
				"parts": [
					{
						"reference_type": "", "reference_value": "",
						"indicators": [
							{"name": "Indicator 1", "flag": "WatchListAllSubstancesBelowThreshold"},
							{"name": "Indicator 2", "flag": "RohsCompliant"}
						],
						"parts": [], "materials": [], "specifications": [],
						"substances": [
							{
								"reference_type": "MiRecordHistoryIdentity", "reference_value": "62345",
								"indicators": [
									{"name": "Indicator 1", "flag": "WatchListNotImpacted"},
									{"name": "Indicator 2", "flag": "RohsNotImpacted"}
								]
							}
						]
					}
				],
				"materials": [], "specifications": [], "substances": []
			}
		]
	}`,
}
