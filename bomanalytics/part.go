// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import "context"

// A PartImpactedSubstancesQuery finds the substances impacted by one
// or more legislations in a set of part records, including substances
// introduced indirectly through child parts, materials and
// specifications.
type PartImpactedSubstancesQuery struct {
	parts        []PartReference
	legislations []string
}

// NewPartImpactedSubstancesQuery returns an empty query. Add part
// references and legislation names, then call Run.
func NewPartImpactedSubstancesQuery() *PartImpactedSubstancesQuery {
	return &PartImpactedSubstancesQuery{}
}

// WithPartNumbers adds parts referenced by part number.
func (q *PartImpactedSubstancesQuery) WithPartNumbers(numbers ...string) *PartImpactedSubstancesQuery {
	for _, n := range numbers {
		q.parts = append(q.parts, PartReference{PartNumber: n})
	}
	return q
}

// WithRecordGUIDs adds parts referenced by record GUID.
func (q *PartImpactedSubstancesQuery) WithRecordGUIDs(guids ...string) *PartImpactedSubstancesQuery {
	for _, guid := range guids {
		q.parts = append(q.parts, PartReference{RecordReference: RecordReference{RecordGUID: guid}})
	}
	return q
}

// WithRecordHistoryGUIDs adds parts referenced by record history GUID.
func (q *PartImpactedSubstancesQuery) WithRecordHistoryGUIDs(guids ...string) *PartImpactedSubstancesQuery {
	for _, guid := range guids {
		q.parts = append(q.parts, PartReference{RecordReference: RecordReference{RecordHistoryGUID: guid}})
	}
	return q
}

// WithRecordHistoryIdentities adds parts referenced by record history
// identity.
func (q *PartImpactedSubstancesQuery) WithRecordHistoryIdentities(ids ...string) *PartImpactedSubstancesQuery {
	for _, id := range ids {
		q.parts = append(q.parts, PartReference{RecordReference: RecordReference{RecordHistoryIdentity: id}})
	}
	return q
}

// WithParts adds explicit part references.
func (q *PartImpactedSubstancesQuery) WithParts(refs ...PartReference) *PartImpactedSubstancesQuery {
	q.parts = append(q.parts, refs...)
	return q
}

// WithLegislations adds legislations to evaluate the parts against,
// by name.
func (q *PartImpactedSubstancesQuery) WithLegislations(names ...string) *PartImpactedSubstancesQuery {
	q.legislations = append(q.legislations, names...)
	return q
}

// Run sends the query to the Service Layer and returns the result.
func (q *PartImpactedSubstancesQuery) Run(ctx context.Context, client *Client) (*PartImpactedSubstancesResult, error) {
	if len(q.parts) == 0 {
		return nil, errNoItems
	}
	if len(q.legislations) == 0 {
		return nil, errNoLegislations
	}
	refs := make([]itemReference, 0, len(q.parts))
	for _, p := range q.parts {
		ref, err := p.wire()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	var resp impactedSubstancesResponse
	err := post(ctx, client, "impacted-substances/parts", impactedSubstancesRequest{
		DatabaseKey:      client.databaseKey(),
		Config:           client.tableConfig(),
		LegislationNames: q.legislations,
		Parts:            refs,
	}, &resp)
	if err != nil {
		return nil, err
	}
	messages, err := checkMessages(ctx, resp.LogMessages)
	if err != nil {
		return nil, err
	}
	items := make([]PartImpactedSubstances, 0, len(resp.Parts))
	for _, item := range resp.Parts {
		items = append(items, PartImpactedSubstances{
			PartReference:           partFromWire(item.itemReference),
			SubstancesByLegislation: substancesByLegislation(item.Legislations),
		})
	}
	return &PartImpactedSubstancesResult{Messages: messages, parts: items}, nil
}

// PartImpactedSubstances pairs one queried part with its impacted
// substances, grouped by legislation name.
type PartImpactedSubstances struct {
	PartReference
	SubstancesByLegislation map[string][]ImpactedSubstance `json:"substances_by_legislation"`
}

// PartImpactedSubstancesResult is the result of running a
// PartImpactedSubstancesQuery.
type PartImpactedSubstancesResult struct {
	// Messages generated by the Service Layer when running the
	// query, in order of decreasing severity.
	Messages []LogMessage

	parts []PartImpactedSubstances
}

// ImpactedSubstancesByPart returns the impacted substances for each
// part specified in the original query.
func (r *PartImpactedSubstancesResult) ImpactedSubstancesByPart() []PartImpactedSubstances {
	return r.parts
}

// ImpactedSubstancesByLegislation returns the results grouped by
// legislation only. Substances appearing for multiple parts are
// merged, taking the highest amount and lowest threshold.
func (r *PartImpactedSubstancesResult) ImpactedSubstancesByLegislation() map[string][]ImpactedSubstance {
	return mergeByLegislation(r.substanceMaps())
}

// ImpactedSubstances returns the results flattened into a single list,
// merged across parts and legislations.
func (r *PartImpactedSubstancesResult) ImpactedSubstances() []ImpactedSubstance {
	return flattenImpactedSubstances(r.substanceMaps())
}

func (r *PartImpactedSubstancesResult) substanceMaps() []map[string][]ImpactedSubstance {
	maps := make([]map[string][]ImpactedSubstance, 0, len(r.parts))
	for _, p := range r.parts {
		maps = append(maps, p.SubstancesByLegislation)
	}
	return maps
}

// A PartComplianceQuery determines the compliance status of a set of
// part records against one or more indicators. Results include the
// full tree of child parts, materials, specifications and substances.
type PartComplianceQuery struct {
	parts      []PartReference
	indicators []Indicator
}

// NewPartComplianceQuery returns an empty query. Add part references
// and indicator definitions, then call Run.
func NewPartComplianceQuery() *PartComplianceQuery {
	return &PartComplianceQuery{}
}

// WithPartNumbers adds parts referenced by part number.
func (q *PartComplianceQuery) WithPartNumbers(numbers ...string) *PartComplianceQuery {
	for _, n := range numbers {
		q.parts = append(q.parts, PartReference{PartNumber: n})
	}
	return q
}

// WithRecordGUIDs adds parts referenced by record GUID.
func (q *PartComplianceQuery) WithRecordGUIDs(guids ...string) *PartComplianceQuery {
	for _, guid := range guids {
		q.parts = append(q.parts, PartReference{RecordReference: RecordReference{RecordGUID: guid}})
	}
	return q
}

// WithRecordHistoryGUIDs adds parts referenced by record history GUID.
func (q *PartComplianceQuery) WithRecordHistoryGUIDs(guids ...string) *PartComplianceQuery {
	for _, guid := range guids {
		q.parts = append(q.parts, PartReference{RecordReference: RecordReference{RecordHistoryGUID: guid}})
	}
	return q
}

// WithRecordHistoryIdentities adds parts referenced by record history
// identity.
func (q *PartComplianceQuery) WithRecordHistoryIdentities(ids ...string) *PartComplianceQuery {
	for _, id := range ids {
		q.parts = append(q.parts, PartReference{RecordReference: RecordReference{RecordHistoryIdentity: id}})
	}
	return q
}

// WithParts adds explicit part references.
func (q *PartComplianceQuery) WithParts(refs ...PartReference) *PartComplianceQuery {
	q.parts = append(q.parts, refs...)
	return q
}

// WithIndicators adds indicator definitions to evaluate the parts
// against.
func (q *PartComplianceQuery) WithIndicators(indicators ...Indicator) *PartComplianceQuery {
	q.indicators = append(q.indicators, indicators...)
	return q
}

// Run sends the query to the Service Layer and returns the result.
func (q *PartComplianceQuery) Run(ctx context.Context, client *Client) (*PartComplianceResult, error) {
	if len(q.parts) == 0 {
		return nil, errNoItems
	}
	if len(q.indicators) == 0 {
		return nil, errNoIndicators
	}
	refs := make([]itemReference, 0, len(q.parts))
	for _, p := range q.parts {
		ref, err := p.wire()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	defs, byName, err := indicatorDefs(q.indicators)
	if err != nil {
		return nil, err
	}
	var resp complianceResponse
	err = post(ctx, client, "compliance/parts", complianceRequest{
		DatabaseKey: client.databaseKey(),
		Config:      client.tableConfig(),
		Indicators:  defs,
		Parts:       refs,
	}, &resp)
	if err != nil {
		return nil, err
	}
	messages, err := checkMessages(ctx, resp.LogMessages)
	if err != nil {
		return nil, err
	}
	items, err := partComplianceFromWire(byName, resp.Parts)
	if err != nil {
		return nil, err
	}
	return &PartComplianceResult{Messages: messages, parts: items}, nil
}

// PartComplianceResult is the result of running a PartComplianceQuery.
type PartComplianceResult struct {
	// Messages generated by the Service Layer when running the
	// query, in order of decreasing severity.
	Messages []LogMessage

	parts []PartCompliance
}

// ComplianceByPartAndIndicator returns the compliance status for each
// part specified in the original query.
func (r *PartComplianceResult) ComplianceByPartAndIndicator() []PartCompliance {
	return r.parts
}

// ComplianceByIndicator returns the worst result for each indicator
// across all parts included in the query.
func (r *PartComplianceResult) ComplianceByIndicator() map[string]Indicator {
	maps := make([]map[string]Indicator, 0, len(r.parts))
	for _, p := range r.parts {
		maps = append(maps, p.Indicators)
	}
	return worstIndicators(maps)
}
