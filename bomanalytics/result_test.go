// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import (
	check "gopkg.in/check.v1"
)

var _ = check.Suite(&resultSuite{})

type resultSuite struct{}

func pct(v float64) *float64 { return &v }

func (*resultSuite) TestMergeKey(c *check.C) {
	c.Check(ImpactedSubstance{CASNumber: "50-00-0"}.mergeKey(), check.Equals, "cas:50-00-0")
	c.Check(ImpactedSubstance{ECNumber: "200-001-8"}.mergeKey(), check.Equals, "ec:200-001-8")
	c.Check(ImpactedSubstance{ChemicalName: "formaldehyde"}.mergeKey(), check.Equals, "name:formaldehyde")
	// CAS wins when several attributes are populated
	c.Check(ImpactedSubstance{CASNumber: "50-00-0", ChemicalName: "formaldehyde"}.mergeKey(), check.Equals, "cas:50-00-0")
}

func (*resultSuite) TestSubstanceMerger(c *check.C) {
	var m substanceMerger
	m.add(ImpactedSubstance{CASNumber: "50-00-0", MaxPercentageAmountInMaterial: pct(1), LegislationThreshold: pct(0.5)})
	m.add(ImpactedSubstance{CASNumber: "106-99-0"})
	m.add(ImpactedSubstance{CASNumber: "50-00-0", MaxPercentageAmountInMaterial: pct(3), LegislationThreshold: pct(0.1)})
	m.add(ImpactedSubstance{CASNumber: "50-00-0", MaxPercentageAmountInMaterial: pct(2)})

	out := m.substances()
	c.Assert(out, check.HasLen, 2)
	// first-seen order, highest amount, lowest threshold
	c.Check(out[0].CASNumber, check.Equals, "50-00-0")
	c.Check(*out[0].MaxPercentageAmountInMaterial, check.Equals, 3.0)
	c.Check(*out[0].LegislationThreshold, check.Equals, 0.1)
	c.Check(out[1].CASNumber, check.Equals, "106-99-0")
	c.Check(out[1].MaxPercentageAmountInMaterial, check.IsNil)

	m.clearLegislationThreshold()
	out = m.substances()
	c.Check(out[0].LegislationThreshold, check.IsNil)
}

func (*resultSuite) TestMergeByLegislation(c *check.C) {
	items := []map[string][]ImpactedSubstance{
		{
			"leg A": {
				{CASNumber: "50-00-0", MaxPercentageAmountInMaterial: pct(1)},
				{CASNumber: "106-99-0"},
			},
			"leg B": {
				{CASNumber: "50-00-0", MaxPercentageAmountInMaterial: pct(5)},
			},
		},
		{
			"leg A": {
				{CASNumber: "50-00-0", MaxPercentageAmountInMaterial: pct(2)},
			},
		},
	}
	merged := mergeByLegislation(items)
	c.Assert(merged, check.HasLen, 2)
	c.Assert(merged["leg A"], check.HasLen, 2)
	c.Check(*merged["leg A"][0].MaxPercentageAmountInMaterial, check.Equals, 2.0)
	c.Check(merged["leg A"][1].CASNumber, check.Equals, "106-99-0")
	c.Assert(merged["leg B"], check.HasLen, 1)
	c.Check(*merged["leg B"][0].MaxPercentageAmountInMaterial, check.Equals, 5.0)
}

func (*resultSuite) TestFlattenImpactedSubstances(c *check.C) {
	items := []map[string][]ImpactedSubstance{
		{
			"leg A": {{CASNumber: "50-00-0", LegislationThreshold: pct(0.1)}},
			"leg B": {{CASNumber: "50-00-0", LegislationThreshold: pct(2)}, {ECNumber: "200-001-8"}},
		},
	}
	flat := flattenImpactedSubstances(items)
	c.Assert(flat, check.HasLen, 2)
	for _, s := range flat {
		// thresholds are meaningless across legislations
		c.Check(s.LegislationThreshold, check.IsNil)
	}
}

func (*resultSuite) TestWorstIndicators(c *check.C) {
	def := WatchListIndicator{Name: "Indicator 1", LegislationNames: []string{"leg A"}}
	below, err := def.withFlag("WatchListBelowThreshold")
	c.Assert(err, check.IsNil)
	above, err := def.withFlag("WatchListAboveThreshold")
	c.Assert(err, check.IsNil)

	rdef := RoHSIndicator{Name: "Indicator 2", LegislationNames: []string{"leg B"}}
	compliant, err := rdef.withFlag("RohsCompliant")
	c.Assert(err, check.IsNil)

	worst := worstIndicators([]map[string]Indicator{
		{"Indicator 1": above, "Indicator 2": compliant},
		{"Indicator 1": below},
	})
	c.Assert(worst, check.HasLen, 2)
	c.Check(worst["Indicator 1"].FlagName(), check.Equals, "WatchListAboveThreshold")
	c.Check(worst["Indicator 2"].FlagName(), check.Equals, "RohsCompliant")
}

func (*resultSuite) TestPartComplianceFromWire(c *check.C) {
	defs := map[string]Indicator{
		"Indicator 1": WatchListIndicator{Name: "Indicator 1", LegislationNames: []string{"leg A"}},
	}
	wire := []wirePartCompliance{{
		itemReference: itemReference{RefPartNumber, "DRILL"},
		Indicators:    []wireIndicatorResult{{Name: "Indicator 1", Flag: "WatchListAboveThreshold"}},
		Parts: []wirePartCompliance{{
			itemReference: itemReference{RefRecordHistoryIdentity, "987"},
			Indicators:    []wireIndicatorResult{{Name: "Indicator 1", Flag: "WatchListCompliant"}},
		}},
		Materials: []wireMaterialCompliance{{
			itemReference: itemReference{RefMaterialID, "steel-1"},
			Indicators:    []wireIndicatorResult{{Name: "Indicator 1", Flag: "WatchListAboveThreshold"}},
			Substances: []wireSubstanceCompliance{{
				itemReference: itemReference{RefCASNumber, "50-00-0"},
				Indicators:    []wireIndicatorResult{{Name: "Indicator 1", Flag: "WatchListAboveThreshold"}},
			}},
		}},
	}}
	parts, err := partComplianceFromWire(defs, wire)
	c.Assert(err, check.IsNil)
	c.Assert(parts, check.HasLen, 1)
	c.Check(parts[0].PartNumber, check.Equals, "DRILL")
	c.Check(parts[0].Indicators["Indicator 1"].FlagName(), check.Equals, "WatchListAboveThreshold")
	c.Assert(parts[0].Parts, check.HasLen, 1)
	c.Check(parts[0].Parts[0].RecordHistoryIdentity, check.Equals, "987")
	c.Assert(parts[0].Materials, check.HasLen, 1)
	c.Check(parts[0].Materials[0].MaterialID, check.Equals, "steel-1")
	c.Assert(parts[0].Materials[0].Substances, check.HasLen, 1)
	c.Check(parts[0].Materials[0].Substances[0].CASNumber, check.Equals, "50-00-0")

	wire[0].Indicators[0].Flag = "bogus"
	_, err = partComplianceFromWire(defs, wire)
	c.Check(err, check.NotNil)
}
