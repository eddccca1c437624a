// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import (
	"encoding/json"
	"fmt"
)

// DefaultThresholdPercentage is the reporting threshold applied to
// legislations with no threshold of their own, when the indicator
// definition does not override it.
const DefaultThresholdPercentage = 0.1

// An Indicator is a yes/no compliance criterion: a set of legislations
// plus a reporting threshold. Indicator definitions are attached to
// compliance queries; each item in the result carries a copy of the
// definition with the reported flag filled in.
//
// The two concrete kinds are WatchListIndicator and RoHSIndicator.
// Flags of different kinds are not comparable.
type Indicator interface {
	// IndicatorName returns the definition's name, which keys the
	// indicator in query results.
	IndicatorName() string

	// FlagName returns the name of the result flag, or "" on a
	// bare definition.
	FlagName() string

	// Severity returns the rank of the result flag within its
	// kind's scale. Higher is worse. Zero on a bare definition.
	Severity() int

	withFlag(name string) (Indicator, error)
	definition() indicatorDefinition
}

// indicatorDefinition is the wire form of an indicator definition.
type indicatorDefinition struct {
	Name                       string   `json:"name"`
	Type                       string   `json:"type"`
	LegislationNames           []string `json:"legislation_names"`
	DefaultThresholdPercentage float64  `json:"default_threshold_percentage"`
}

// WatchListFlag is the result of evaluating a WatchListIndicator.
// Flags are ordered: a higher value is a worse result.
type WatchListFlag int

const (
	WatchListNotImpacted WatchListFlag = iota + 1
	WatchListCompliant
	WatchListBelowThreshold
	WatchListAllSubstancesBelowThreshold
	WatchListAboveThreshold
	WatchListHasSubstanceAboveThreshold
	WatchListUnknown
)

var watchListFlagNames = []string{
	WatchListNotImpacted:                 "WatchListNotImpacted",
	WatchListCompliant:                   "WatchListCompliant",
	WatchListBelowThreshold:              "WatchListBelowThreshold",
	WatchListAllSubstancesBelowThreshold: "WatchListAllSubstancesBelowThreshold",
	WatchListAboveThreshold:              "WatchListAboveThreshold",
	WatchListHasSubstanceAboveThreshold:  "WatchListHasSubstanceAboveThreshold",
	WatchListUnknown:                     "WatchListUnknown",
}

func (f WatchListFlag) String() string {
	if f > 0 && int(f) < len(watchListFlagNames) {
		return watchListFlagNames[f]
	}
	return ""
}

// MarshalJSON implements json.Marshaler
func (f WatchListFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// ParseWatchListFlag converts a flag name reported by the service to a
// WatchListFlag.
func ParseWatchListFlag(name string) (WatchListFlag, error) {
	for f, n := range watchListFlagNames {
		if n == name {
			return WatchListFlag(f), nil
		}
	}
	return 0, fmt.Errorf("unknown watch list flag %q", name)
}

// RoHSFlag is the result of evaluating a RoHSIndicator. Flags are
// ordered: a higher value is a worse result.
type RoHSFlag int

const (
	RoHSNotImpacted RoHSFlag = iota + 1
	RoHSBelowThreshold
	RoHSCompliant
	RoHSCompliantWithExemptions
	RoHSAboveThreshold
	RoHSNonCompliant
	RoHSUnknown
)

var rohsFlagNames = []string{
	RoHSNotImpacted:             "RohsNotImpacted",
	RoHSBelowThreshold:          "RohsBelowThreshold",
	RoHSCompliant:               "RohsCompliant",
	RoHSCompliantWithExemptions: "RohsCompliantWithExemptions",
	RoHSAboveThreshold:          "RohsAboveThreshold",
	RoHSNonCompliant:            "RohsNonCompliant",
	RoHSUnknown:                 "RohsUnknown",
}

func (f RoHSFlag) String() string {
	if f > 0 && int(f) < len(rohsFlagNames) {
		return rohsFlagNames[f]
	}
	return ""
}

// MarshalJSON implements json.Marshaler
func (f RoHSFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// ParseRoHSFlag converts a flag name reported by the service to a
// RoHSFlag.
func ParseRoHSFlag(name string) (RoHSFlag, error) {
	for f, n := range rohsFlagNames {
		if n == name {
			return RoHSFlag(f), nil
		}
	}
	return 0, fmt.Errorf("unknown RoHS flag %q", name)
}

// A WatchListIndicator reports whether an item contains any substance
// on one or more watch list legislations above a threshold.
type WatchListIndicator struct {
	Name                       string        `json:"name"`
	LegislationNames           []string      `json:"legislation_names"`
	DefaultThresholdPercentage float64       `json:"default_threshold_percentage,omitempty"`
	Flag                       WatchListFlag `json:"flag,omitempty"`
}

// IndicatorName implements Indicator.
func (i WatchListIndicator) IndicatorName() string { return i.Name }

// FlagName implements Indicator.
func (i WatchListIndicator) FlagName() string { return i.Flag.String() }

// Severity implements Indicator.
func (i WatchListIndicator) Severity() int { return int(i.Flag) }

func (i WatchListIndicator) withFlag(name string) (Indicator, error) {
	flag, err := ParseWatchListFlag(name)
	if err != nil {
		return nil, fmt.Errorf("indicator %q: %w", i.Name, err)
	}
	i.Flag = flag
	return i, nil
}

func (i WatchListIndicator) definition() indicatorDefinition {
	return indicatorDefinition{
		Name:                       i.Name,
		Type:                       "WatchList",
		LegislationNames:           i.LegislationNames,
		DefaultThresholdPercentage: thresholdOrDefault(i.DefaultThresholdPercentage),
	}
}

// A RoHSIndicator reports whether an item is compliant with one or
// more RoHS-style legislations, taking exemptions into account.
type RoHSIndicator struct {
	Name                       string   `json:"name"`
	LegislationNames           []string `json:"legislation_names"`
	DefaultThresholdPercentage float64  `json:"default_threshold_percentage,omitempty"`
	Flag                       RoHSFlag `json:"flag,omitempty"`
}

// IndicatorName implements Indicator.
func (i RoHSIndicator) IndicatorName() string { return i.Name }

// FlagName implements Indicator.
func (i RoHSIndicator) FlagName() string { return i.Flag.String() }

// Severity implements Indicator.
func (i RoHSIndicator) Severity() int { return int(i.Flag) }

func (i RoHSIndicator) withFlag(name string) (Indicator, error) {
	flag, err := ParseRoHSFlag(name)
	if err != nil {
		return nil, fmt.Errorf("indicator %q: %w", i.Name, err)
	}
	i.Flag = flag
	return i, nil
}

func (i RoHSIndicator) definition() indicatorDefinition {
	return indicatorDefinition{
		Name:                       i.Name,
		Type:                       "Rohs",
		LegislationNames:           i.LegislationNames,
		DefaultThresholdPercentage: thresholdOrDefault(i.DefaultThresholdPercentage),
	}
}

func thresholdOrDefault(pct float64) float64 {
	if pct > 0 {
		return pct
	}
	return DefaultThresholdPercentage
}

// wireIndicatorResult is an indicator evaluation as returned by the
// service.
type wireIndicatorResult struct {
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// indicatorResults builds the result indicator map for one item: a
// copy of each query definition with its reported flag.
func indicatorResults(defs map[string]Indicator, wire []wireIndicatorResult) (map[string]Indicator, error) {
	out := make(map[string]Indicator, len(wire))
	for _, w := range wire {
		def, ok := defs[w.Name]
		if !ok {
			return nil, fmt.Errorf("result contains indicator %q not present in the query", w.Name)
		}
		res, err := def.withFlag(w.Flag)
		if err != nil {
			return nil, err
		}
		out[w.Name] = res
	}
	return out, nil
}
