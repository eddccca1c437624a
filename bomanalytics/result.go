// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

// An ImpactedSubstance is a substance flagged by a legislation as
// present in an item above the reporting threshold.
type ImpactedSubstance struct {
	CASNumber    string `json:"cas_number,omitempty"`
	ECNumber     string `json:"ec_number,omitempty"`
	ChemicalName string `json:"chemical_name,omitempty"`

	// MaxPercentageAmountInMaterial is the highest amount of this
	// substance found in the queried item, as a percentage by
	// weight. Nil if the service did not report an amount.
	MaxPercentageAmountInMaterial *float64 `json:"max_percentage_amount_in_material,omitempty"`

	// LegislationThreshold is the reporting threshold of the
	// legislation that flagged this substance. Nil in views that
	// merge substances across legislations.
	LegislationThreshold *float64 `json:"legislation_threshold,omitempty"`
}

// mergeKey identifies a substance across result items. References
// coming back from the service are homogeneous within one result, so
// the first non-empty attribute is a stable identity.
func (s ImpactedSubstance) mergeKey() string {
	switch {
	case s.CASNumber != "":
		return "cas:" + s.CASNumber
	case s.ECNumber != "":
		return "ec:" + s.ECNumber
	default:
		return "name:" + s.ChemicalName
	}
}

// A substanceMerger deduplicates impacted substances across result
// items, keeping the highest amount and the lowest threshold of all
// instances of a substance. Insertion order is preserved.
type substanceMerger struct {
	order []string
	byKey map[string]*ImpactedSubstance
}

func (m *substanceMerger) add(s ImpactedSubstance) {
	if m.byKey == nil {
		m.byKey = map[string]*ImpactedSubstance{}
	}
	key := s.mergeKey()
	cur, ok := m.byKey[key]
	if !ok {
		copied := s
		m.byKey[key] = &copied
		m.order = append(m.order, key)
		return
	}
	if s.MaxPercentageAmountInMaterial != nil &&
		(cur.MaxPercentageAmountInMaterial == nil ||
			*s.MaxPercentageAmountInMaterial > *cur.MaxPercentageAmountInMaterial) {
		cur.MaxPercentageAmountInMaterial = s.MaxPercentageAmountInMaterial
	}
	if s.LegislationThreshold != nil &&
		(cur.LegislationThreshold == nil ||
			*s.LegislationThreshold < *cur.LegislationThreshold) {
		cur.LegislationThreshold = s.LegislationThreshold
	}
}

func (m *substanceMerger) clearLegislationThreshold() {
	for _, s := range m.byKey {
		s.LegislationThreshold = nil
	}
}

func (m *substanceMerger) substances() []ImpactedSubstance {
	out := make([]ImpactedSubstance, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, *m.byKey[key])
	}
	return out
}

// mergeByLegislation aggregates the per-item substance maps into a
// single view grouped by legislation only. Substances appearing for
// multiple items are merged per the substanceMerger rules.
func mergeByLegislation(items []map[string][]ImpactedSubstance) map[string][]ImpactedSubstance {
	mergers := map[string]*substanceMerger{}
	for _, item := range items {
		for legislation, substances := range item {
			merger, ok := mergers[legislation]
			if !ok {
				merger = &substanceMerger{}
				mergers[legislation] = merger
			}
			for _, s := range substances {
				merger.add(s)
			}
		}
	}
	out := make(map[string][]ImpactedSubstance, len(mergers))
	for legislation, merger := range mergers {
		out[legislation] = merger.substances()
	}
	return out
}

// flattenImpactedSubstances aggregates the per-item substance maps
// into a single flat list, merged across items and legislations. The
// legislation threshold is cleared because the merged substances may
// be impacted by multiple legislations.
func flattenImpactedSubstances(items []map[string][]ImpactedSubstance) []ImpactedSubstance {
	merger := &substanceMerger{}
	for _, item := range items {
		for _, substances := range item {
			for _, s := range substances {
				merger.add(s)
			}
		}
	}
	merger.clearLegislationThreshold()
	return merger.substances()
}

// worstIndicators returns, for each indicator name, the result with
// the worst flag across all given items.
func worstIndicators(items []map[string]Indicator) map[string]Indicator {
	out := map[string]Indicator{}
	for _, item := range items {
		for name, ind := range item {
			if cur, ok := out[name]; !ok || ind.Severity() > cur.Severity() {
				out[name] = ind
			}
		}
	}
	return out
}

// Compliance result item types. Each pairs the resolved record
// reference with the indicator results for that item, plus the typed
// child items reported by the service.

// SubstanceCompliance is the compliance status of one substance.
type SubstanceCompliance struct {
	SubstanceReference
	Indicators map[string]Indicator `json:"indicators"`
}

// CoatingCompliance is the compliance status of one coating. Coatings
// are only ever referenced by generic record keys.
type CoatingCompliance struct {
	RecordReference
	Indicators map[string]Indicator `json:"indicators"`
}

// MaterialCompliance is the compliance status of one material,
// including the per-substance breakdown.
type MaterialCompliance struct {
	MaterialReference
	Indicators map[string]Indicator  `json:"indicators"`
	Substances []SubstanceCompliance `json:"substances,omitempty"`
}

// SpecificationCompliance is the compliance status of one
// specification, including child materials, specifications, coatings
// and substances.
type SpecificationCompliance struct {
	SpecificationReference
	Indicators     map[string]Indicator      `json:"indicators"`
	Materials      []MaterialCompliance      `json:"materials,omitempty"`
	Specifications []SpecificationCompliance `json:"specifications,omitempty"`
	Coatings       []CoatingCompliance       `json:"coatings,omitempty"`
	Substances     []SubstanceCompliance     `json:"substances,omitempty"`
}

// PartCompliance is the compliance status of one part, including
// child parts, materials, specifications and substances.
type PartCompliance struct {
	PartReference
	Indicators     map[string]Indicator      `json:"indicators"`
	Parts          []PartCompliance          `json:"parts,omitempty"`
	Materials      []MaterialCompliance      `json:"materials,omitempty"`
	Specifications []SpecificationCompliance `json:"specifications,omitempty"`
	Substances     []SubstanceCompliance     `json:"substances,omitempty"`
}

func substanceComplianceFromWire(defs map[string]Indicator, wire []wireSubstanceCompliance) ([]SubstanceCompliance, error) {
	out := make([]SubstanceCompliance, 0, len(wire))
	for _, w := range wire {
		indicators, err := indicatorResults(defs, w.Indicators)
		if err != nil {
			return nil, err
		}
		out = append(out, SubstanceCompliance{
			SubstanceReference: substanceFromWire(w.itemReference),
			Indicators:         indicators,
		})
	}
	return out, nil
}

func coatingComplianceFromWire(defs map[string]Indicator, wire []wireCoatingCompliance) ([]CoatingCompliance, error) {
	out := make([]CoatingCompliance, 0, len(wire))
	for _, w := range wire {
		indicators, err := indicatorResults(defs, w.Indicators)
		if err != nil {
			return nil, err
		}
		var ref RecordReference
		ref.setFromWire(w.itemReference)
		out = append(out, CoatingCompliance{
			RecordReference: ref,
			Indicators:      indicators,
		})
	}
	return out, nil
}

func materialComplianceFromWire(defs map[string]Indicator, wire []wireMaterialCompliance) ([]MaterialCompliance, error) {
	out := make([]MaterialCompliance, 0, len(wire))
	for _, w := range wire {
		indicators, err := indicatorResults(defs, w.Indicators)
		if err != nil {
			return nil, err
		}
		substances, err := substanceComplianceFromWire(defs, w.Substances)
		if err != nil {
			return nil, err
		}
		out = append(out, MaterialCompliance{
			MaterialReference: materialFromWire(w.itemReference),
			Indicators:        indicators,
			Substances:        substances,
		})
	}
	return out, nil
}

func specificationComplianceFromWire(defs map[string]Indicator, wire []wireSpecificationCompliance) ([]SpecificationCompliance, error) {
	out := make([]SpecificationCompliance, 0, len(wire))
	for _, w := range wire {
		indicators, err := indicatorResults(defs, w.Indicators)
		if err != nil {
			return nil, err
		}
		materials, err := materialComplianceFromWire(defs, w.Materials)
		if err != nil {
			return nil, err
		}
		specifications, err := specificationComplianceFromWire(defs, w.Specifications)
		if err != nil {
			return nil, err
		}
		coatings, err := coatingComplianceFromWire(defs, w.Coatings)
		if err != nil {
			return nil, err
		}
		substances, err := substanceComplianceFromWire(defs, w.Substances)
		if err != nil {
			return nil, err
		}
		out = append(out, SpecificationCompliance{
			SpecificationReference: specificationFromWire(w.itemReference),
			Indicators:             indicators,
			Materials:              materials,
			Specifications:         specifications,
			Coatings:               coatings,
			Substances:             substances,
		})
	}
	return out, nil
}

func partComplianceFromWire(defs map[string]Indicator, wire []wirePartCompliance) ([]PartCompliance, error) {
	out := make([]PartCompliance, 0, len(wire))
	for _, w := range wire {
		indicators, err := indicatorResults(defs, w.Indicators)
		if err != nil {
			return nil, err
		}
		parts, err := partComplianceFromWire(defs, w.Parts)
		if err != nil {
			return nil, err
		}
		materials, err := materialComplianceFromWire(defs, w.Materials)
		if err != nil {
			return nil, err
		}
		specifications, err := specificationComplianceFromWire(defs, w.Specifications)
		if err != nil {
			return nil, err
		}
		substances, err := substanceComplianceFromWire(defs, w.Substances)
		if err != nil {
			return nil, err
		}
		out = append(out, PartCompliance{
			PartReference:  partFromWire(w.itemReference),
			Indicators:     indicators,
			Parts:          parts,
			Materials:      materials,
			Specifications: specifications,
			Substances:     substances,
		})
	}
	return out, nil
}
