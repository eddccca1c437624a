// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import "context"

// A SpecificationImpactedSubstancesQuery finds the substances impacted
// by one or more legislations in a set of specification records.
type SpecificationImpactedSubstancesQuery struct {
	specifications []SpecificationReference
	legislations   []string
}

// NewSpecificationImpactedSubstancesQuery returns an empty query. Add
// specification references and legislation names, then call Run.
func NewSpecificationImpactedSubstancesQuery() *SpecificationImpactedSubstancesQuery {
	return &SpecificationImpactedSubstancesQuery{}
}

// WithSpecificationIDs adds specifications referenced by
// specification ID.
func (q *SpecificationImpactedSubstancesQuery) WithSpecificationIDs(ids ...string) *SpecificationImpactedSubstancesQuery {
	for _, id := range ids {
		q.specifications = append(q.specifications, SpecificationReference{SpecificationID: id})
	}
	return q
}

// WithRecordGUIDs adds specifications referenced by record GUID.
func (q *SpecificationImpactedSubstancesQuery) WithRecordGUIDs(guids ...string) *SpecificationImpactedSubstancesQuery {
	for _, guid := range guids {
		q.specifications = append(q.specifications, SpecificationReference{RecordReference: RecordReference{RecordGUID: guid}})
	}
	return q
}

// WithRecordHistoryGUIDs adds specifications referenced by record
// history GUID.
func (q *SpecificationImpactedSubstancesQuery) WithRecordHistoryGUIDs(guids ...string) *SpecificationImpactedSubstancesQuery {
	for _, guid := range guids {
		q.specifications = append(q.specifications, SpecificationReference{RecordReference: RecordReference{RecordHistoryGUID: guid}})
	}
	return q
}

// WithRecordHistoryIdentities adds specifications referenced by
// record history identity.
func (q *SpecificationImpactedSubstancesQuery) WithRecordHistoryIdentities(ids ...string) *SpecificationImpactedSubstancesQuery {
	for _, id := range ids {
		q.specifications = append(q.specifications, SpecificationReference{RecordReference: RecordReference{RecordHistoryIdentity: id}})
	}
	return q
}

// WithSpecifications adds explicit specification references.
func (q *SpecificationImpactedSubstancesQuery) WithSpecifications(refs ...SpecificationReference) *SpecificationImpactedSubstancesQuery {
	q.specifications = append(q.specifications, refs...)
	return q
}

// WithLegislations adds legislations to evaluate the specifications
// against, by name.
func (q *SpecificationImpactedSubstancesQuery) WithLegislations(names ...string) *SpecificationImpactedSubstancesQuery {
	q.legislations = append(q.legislations, names...)
	return q
}

// Run sends the query to the Service Layer and returns the result.
func (q *SpecificationImpactedSubstancesQuery) Run(ctx context.Context, client *Client) (*SpecificationImpactedSubstancesResult, error) {
	if len(q.specifications) == 0 {
		return nil, errNoItems
	}
	if len(q.legislations) == 0 {
		return nil, errNoLegislations
	}
	refs := make([]itemReference, 0, len(q.specifications))
	for _, s := range q.specifications {
		ref, err := s.wire()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	var resp impactedSubstancesResponse
	err := post(ctx, client, "impacted-substances/specifications", impactedSubstancesRequest{
		DatabaseKey:      client.databaseKey(),
		Config:           client.tableConfig(),
		LegislationNames: q.legislations,
		Specifications:   refs,
	}, &resp)
	if err != nil {
		return nil, err
	}
	messages, err := checkMessages(ctx, resp.LogMessages)
	if err != nil {
		return nil, err
	}
	items := make([]SpecificationImpactedSubstances, 0, len(resp.Specifications))
	for _, item := range resp.Specifications {
		items = append(items, SpecificationImpactedSubstances{
			SpecificationReference:  specificationFromWire(item.itemReference),
			SubstancesByLegislation: substancesByLegislation(item.Legislations),
		})
	}
	return &SpecificationImpactedSubstancesResult{Messages: messages, specifications: items}, nil
}

// SpecificationImpactedSubstances pairs one queried specification with
// its impacted substances, grouped by legislation name.
type SpecificationImpactedSubstances struct {
	SpecificationReference
	SubstancesByLegislation map[string][]ImpactedSubstance `json:"substances_by_legislation"`
}

// SpecificationImpactedSubstancesResult is the result of running a
// SpecificationImpactedSubstancesQuery.
type SpecificationImpactedSubstancesResult struct {
	// Messages generated by the Service Layer when running the
	// query, in order of decreasing severity.
	Messages []LogMessage

	specifications []SpecificationImpactedSubstances
}

// ImpactedSubstancesBySpecification returns the impacted substances
// for each specification specified in the original query.
func (r *SpecificationImpactedSubstancesResult) ImpactedSubstancesBySpecification() []SpecificationImpactedSubstances {
	return r.specifications
}

// ImpactedSubstancesByLegislation returns the results grouped by
// legislation only. Substances appearing for multiple specifications
// are merged, taking the highest amount and lowest threshold.
func (r *SpecificationImpactedSubstancesResult) ImpactedSubstancesByLegislation() map[string][]ImpactedSubstance {
	return mergeByLegislation(r.substanceMaps())
}

// ImpactedSubstances returns the results flattened into a single list,
// merged across specifications and legislations.
func (r *SpecificationImpactedSubstancesResult) ImpactedSubstances() []ImpactedSubstance {
	return flattenImpactedSubstances(r.substanceMaps())
}

func (r *SpecificationImpactedSubstancesResult) substanceMaps() []map[string][]ImpactedSubstance {
	maps := make([]map[string][]ImpactedSubstance, 0, len(r.specifications))
	for _, s := range r.specifications {
		maps = append(maps, s.SubstancesByLegislation)
	}
	return maps
}

// A SpecificationComplianceQuery determines the compliance status of a
// set of specification records against one or more indicators.
// Results include child materials, specifications, coatings and
// substances.
type SpecificationComplianceQuery struct {
	specifications []SpecificationReference
	indicators     []Indicator
}

// NewSpecificationComplianceQuery returns an empty query. Add
// specification references and indicator definitions, then call Run.
func NewSpecificationComplianceQuery() *SpecificationComplianceQuery {
	return &SpecificationComplianceQuery{}
}

// WithSpecificationIDs adds specifications referenced by
// specification ID.
func (q *SpecificationComplianceQuery) WithSpecificationIDs(ids ...string) *SpecificationComplianceQuery {
	for _, id := range ids {
		q.specifications = append(q.specifications, SpecificationReference{SpecificationID: id})
	}
	return q
}

// WithRecordGUIDs adds specifications referenced by record GUID.
func (q *SpecificationComplianceQuery) WithRecordGUIDs(guids ...string) *SpecificationComplianceQuery {
	for _, guid := range guids {
		q.specifications = append(q.specifications, SpecificationReference{RecordReference: RecordReference{RecordGUID: guid}})
	}
	return q
}

// WithRecordHistoryGUIDs adds specifications referenced by record
// history GUID.
func (q *SpecificationComplianceQuery) WithRecordHistoryGUIDs(guids ...string) *SpecificationComplianceQuery {
	for _, guid := range guids {
		q.specifications = append(q.specifications, SpecificationReference{RecordReference: RecordReference{RecordHistoryGUID: guid}})
	}
	return q
}

// WithRecordHistoryIdentities adds specifications referenced by
// record history identity.
func (q *SpecificationComplianceQuery) WithRecordHistoryIdentities(ids ...string) *SpecificationComplianceQuery {
	for _, id := range ids {
		q.specifications = append(q.specifications, SpecificationReference{RecordReference: RecordReference{RecordHistoryIdentity: id}})
	}
	return q
}

// WithSpecifications adds explicit specification references.
func (q *SpecificationComplianceQuery) WithSpecifications(refs ...SpecificationReference) *SpecificationComplianceQuery {
	q.specifications = append(q.specifications, refs...)
	return q
}

// WithIndicators adds indicator definitions to evaluate the
// specifications against.
func (q *SpecificationComplianceQuery) WithIndicators(indicators ...Indicator) *SpecificationComplianceQuery {
	q.indicators = append(q.indicators, indicators...)
	return q
}

// Run sends the query to the Service Layer and returns the result.
func (q *SpecificationComplianceQuery) Run(ctx context.Context, client *Client) (*SpecificationComplianceResult, error) {
	if len(q.specifications) == 0 {
		return nil, errNoItems
	}
	if len(q.indicators) == 0 {
		return nil, errNoIndicators
	}
	refs := make([]itemReference, 0, len(q.specifications))
	for _, s := range q.specifications {
		ref, err := s.wire()
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
	err = post(ctx, client, "compliance/specifications", complianceRequest{
		DatabaseKey:    client.databaseKey(),
		Config:         client.tableConfig(),
		Indicators:     defs,
		Specifications: refs,
	}, &resp)
	if err != nil {
		return nil, err
	}
	messages, err := checkMessages(ctx, resp.LogMessages)
	if err != nil {
		return nil, err
	}
	items, err := specificationComplianceFromWire(byName, resp.Specifications)
	if err != nil {
		return nil, err
	}
	return &SpecificationComplianceResult{Messages: messages, specifications: items}, nil
}

// SpecificationComplianceResult is the result of running a
// SpecificationComplianceQuery.
type SpecificationComplianceResult struct {
	// Messages generated by the Service Layer when running the
	// query, in order of decreasing severity.
	Messages []LogMessage

	specifications []SpecificationCompliance
}

// ComplianceBySpecificationAndIndicator returns the compliance status
// for each specification specified in the original query.
func (r *SpecificationComplianceResult) ComplianceBySpecificationAndIndicator() []SpecificationCompliance {
	return r.specifications
}

// ComplianceByIndicator returns the worst result for each indicator
// across all specifications included in the query.
func (r *SpecificationComplianceResult) ComplianceByIndicator() map[string]Indicator {
	maps := make([]map[string]Indicator, 0, len(r.specifications))
	for _, s := range r.specifications {
		maps = append(maps, s.Indicators)
	}
	return worstIndicators(maps)
}
