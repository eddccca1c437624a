// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import (
	check "gopkg.in/check.v1"
)

var _ = check.Suite(&indicatorSuite{})

type indicatorSuite struct{}

func (*indicatorSuite) TestFlagOrdering(c *check.C) {
	c.Check(WatchListNotImpacted < WatchListCompliant, check.Equals, true)
	c.Check(WatchListAllSubstancesBelowThreshold < WatchListAboveThreshold, check.Equals, true)
	c.Check(WatchListHasSubstanceAboveThreshold < WatchListUnknown, check.Equals, true)

	c.Check(RoHSBelowThreshold < RoHSCompliant, check.Equals, true)
	c.Check(RoHSCompliantWithExemptions < RoHSAboveThreshold, check.Equals, true)
	c.Check(RoHSNonCompliant < RoHSUnknown, check.Equals, true)
}

func (*indicatorSuite) TestParseFlag(c *check.C) {
	f, err := ParseWatchListFlag("WatchListAboveThreshold")
	c.Check(err, check.IsNil)
	c.Check(f, check.Equals, WatchListAboveThreshold)
	c.Check(f.String(), check.Equals, "WatchListAboveThreshold")

	_, err = ParseWatchListFlag("RohsCompliant")
	c.Check(err, check.ErrorMatches, `unknown watch list flag "RohsCompliant"`)

	rf, err := ParseRoHSFlag("RohsCompliantWithExemptions")
	c.Check(err, check.IsNil)
	c.Check(rf, check.Equals, RoHSCompliantWithExemptions)

	_, err = ParseRoHSFlag("")
	c.Check(err, check.NotNil)

	c.Check(WatchListFlag(0).String(), check.Equals, "")
	c.Check(RoHSFlag(99).String(), check.Equals, "")
}

func (*indicatorSuite) TestDefinition(c *check.C) {
	wl := WatchListIndicator{
		Name:             "Indicator 1",
		LegislationNames: []string{"The SIN List 2.1 (Substitute It Now!)"},
	}
	def := wl.definition()
	c.Check(def.Type, check.Equals, "WatchList")
	c.Check(def.DefaultThresholdPercentage, check.Equals, 0.1)

	rohs := RoHSIndicator{
		Name:                       "Indicator 2",
		LegislationNames:           []string{"EU Directive 2011/65/EU (RoHS 2)"},
		DefaultThresholdPercentage: 2,
	}
	def = rohs.definition()
	c.Check(def.Type, check.Equals, "Rohs")
	c.Check(def.DefaultThresholdPercentage, check.Equals, 2.0)
}

func (*indicatorSuite) TestIndicatorResults(c *check.C) {
	wl := WatchListIndicator{Name: "Indicator 1", LegislationNames: []string{"leg 1"}}
	rohs := RoHSIndicator{Name: "Indicator 2", LegislationNames: []string{"leg 2"}}
	defs := map[string]Indicator{"Indicator 1": wl, "Indicator 2": rohs}

	out, err := indicatorResults(defs, []wireIndicatorResult{
		{Name: "Indicator 1", Flag: "WatchListAboveThreshold"},
		{Name: "Indicator 2", Flag: "RohsNonCompliant"},
	})
	c.Assert(err, check.IsNil)
	c.Check(out["Indicator 1"].FlagName(), check.Equals, "WatchListAboveThreshold")
	c.Check(out["Indicator 1"].Severity(), check.Equals, int(WatchListAboveThreshold))
	c.Check(out["Indicator 2"].FlagName(), check.Equals, "RohsNonCompliant")

	// The query definitions are not mutated.
	c.Check(wl.Flag, check.Equals, WatchListFlag(0))
	c.Check(defs["Indicator 1"].FlagName(), check.Equals, "")

	_, err = indicatorResults(defs, []wireIndicatorResult{{Name: "Indicator 3", Flag: "WatchListCompliant"}})
	c.Check(err, check.ErrorMatches, `result contains indicator "Indicator 3" not present in the query`)

	_, err = indicatorResults(defs, []wireIndicatorResult{{Name: "Indicator 1", Flag: "bogus"}})
	c.Check(err, check.ErrorMatches, `indicator "Indicator 1": unknown watch list flag "bogus"`)
}
