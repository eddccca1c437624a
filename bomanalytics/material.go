// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import "context"

// A MaterialImpactedSubstancesQuery finds the substances impacted by
// one or more legislations in a set of material records.
type MaterialImpactedSubstancesQuery struct {
	materials    []MaterialReference
	legislations []string
}

// NewMaterialImpactedSubstancesQuery returns an empty query. Add
// material references and legislation names, then call Run.
func NewMaterialImpactedSubstancesQuery() *MaterialImpactedSubstancesQuery {
	return &MaterialImpactedSubstancesQuery{}
}

// WithMaterialIDs adds materials referenced by material ID.
func (q *MaterialImpactedSubstancesQuery) WithMaterialIDs(ids ...string) *MaterialImpactedSubstancesQuery {
	for _, id := range ids {
		q.materials = append(q.materials, MaterialReference{MaterialID: id})
	}
	return q
}

// WithRecordGUIDs adds materials referenced by record GUID.
func (q *MaterialImpactedSubstancesQuery) WithRecordGUIDs(guids ...string) *MaterialImpactedSubstancesQuery {
	for _, guid := range guids {
		q.materials = append(q.materials, MaterialReference{RecordReference: RecordReference{RecordGUID: guid}})
	}
	return q
}

// WithRecordHistoryGUIDs adds materials referenced by record history GUID.
func (q *MaterialImpactedSubstancesQuery) WithRecordHistoryGUIDs(guids ...string) *MaterialImpactedSubstancesQuery {
	for _, guid := range guids {
		q.materials = append(q.materials, MaterialReference{RecordReference: RecordReference{RecordHistoryGUID: guid}})
	}
	return q
}

// WithRecordHistoryIdentities adds materials referenced by record
// history identity.
func (q *MaterialImpactedSubstancesQuery) WithRecordHistoryIdentities(ids ...string) *MaterialImpactedSubstancesQuery {
	for _, id := range ids {
		q.materials = append(q.materials, MaterialReference{RecordReference: RecordReference{RecordHistoryIdentity: id}})
	}
	return q
}

// WithMaterials adds explicit material references.
func (q *MaterialImpactedSubstancesQuery) WithMaterials(refs ...MaterialReference) *MaterialImpactedSubstancesQuery {
	q.materials = append(q.materials, refs...)
	return q
}

// WithLegislations adds legislations to evaluate the materials
// against, by name.
func (q *MaterialImpactedSubstancesQuery) WithLegislations(names ...string) *MaterialImpactedSubstancesQuery {
	q.legislations = append(q.legislations, names...)
	return q
}

// Run sends the query to the Service Layer and returns the result.
func (q *MaterialImpactedSubstancesQuery) Run(ctx context.Context, client *Client) (*MaterialImpactedSubstancesResult, error) {
	if len(q.materials) == 0 {
		return nil, errNoItems
	}
	if len(q.legislations) == 0 {
		return nil, errNoLegislations
	}
	refs := make([]itemReference, 0, len(q.materials))
	for _, m := range q.materials {
		ref, err := m.wire()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	var resp impactedSubstancesResponse
	err := post(ctx, client, "impacted-substances/materials", impactedSubstancesRequest{
		DatabaseKey:      client.databaseKey(),
		Config:           client.tableConfig(),
		LegislationNames: q.legislations,
		Materials:        refs,
	}, &resp)
	if err != nil {
		return nil, err
	}
	messages, err := checkMessages(ctx, resp.LogMessages)
	if err != nil {
		return nil, err
	}
	items := make([]MaterialImpactedSubstances, 0, len(resp.Materials))
	for _, item := range resp.Materials {
		items = append(items, MaterialImpactedSubstances{
			MaterialReference:       materialFromWire(item.itemReference),
			SubstancesByLegislation: substancesByLegislation(item.Legislations),
		})
	}
	return &MaterialImpactedSubstancesResult{Messages: messages, materials: items}, nil
}

// MaterialImpactedSubstances pairs one queried material with its
// impacted substances, grouped by legislation name.
type MaterialImpactedSubstances struct {
	MaterialReference
	SubstancesByLegislation map[string][]ImpactedSubstance `json:"substances_by_legislation"`
}

// MaterialImpactedSubstancesResult is the result of running a
// MaterialImpactedSubstancesQuery.
type MaterialImpactedSubstancesResult struct {
	// Messages generated by the Service Layer when running the
	// query, in order of decreasing severity.
	Messages []LogMessage

	materials []MaterialImpactedSubstances
}

// ImpactedSubstancesByMaterial returns the impacted substances for
// each material specified in the original query.
func (r *MaterialImpactedSubstancesResult) ImpactedSubstancesByMaterial() []MaterialImpactedSubstances {
	return r.materials
}

// ImpactedSubstancesByLegislation returns the results grouped by
// legislation only. Substances appearing for multiple materials are
// merged, taking the highest amount and lowest threshold.
func (r *MaterialImpactedSubstancesResult) ImpactedSubstancesByLegislation() map[string][]ImpactedSubstance {
	return mergeByLegislation(r.substanceMaps())
}

// ImpactedSubstances returns the results flattened into a single list,
// merged across materials and legislations.
func (r *MaterialImpactedSubstancesResult) ImpactedSubstances() []ImpactedSubstance {
	return flattenImpactedSubstances(r.substanceMaps())
}

func (r *MaterialImpactedSubstancesResult) substanceMaps() []map[string][]ImpactedSubstance {
	maps := make([]map[string][]ImpactedSubstance, 0, len(r.materials))
	for _, m := range r.materials {
		maps = append(maps, m.SubstancesByLegislation)
	}
	return maps
}

// A MaterialComplianceQuery determines the compliance status of a set
// of material records against one or more indicators.
type MaterialComplianceQuery struct {
	materials  []MaterialReference
	indicators []Indicator
}

// NewMaterialComplianceQuery returns an empty query. Add material
// references and indicator definitions, then call Run.
func NewMaterialComplianceQuery() *MaterialComplianceQuery {
	return &MaterialComplianceQuery{}
}

// WithMaterialIDs adds materials referenced by material ID.
func (q *MaterialComplianceQuery) WithMaterialIDs(ids ...string) *MaterialComplianceQuery {
	for _, id := range ids {
		q.materials = append(q.materials, MaterialReference{MaterialID: id})
	}
	return q
}

// WithRecordGUIDs adds materials referenced by record GUID.
func (q *MaterialComplianceQuery) WithRecordGUIDs(guids ...string) *MaterialComplianceQuery {
	for _, guid := range guids {
		q.materials = append(q.materials, MaterialReference{RecordReference: RecordReference{RecordGUID: guid}})
	}
	return q
}

// WithRecordHistoryGUIDs adds materials referenced by record history GUID.
func (q *MaterialComplianceQuery) WithRecordHistoryGUIDs(guids ...string) *MaterialComplianceQuery {
	for _, guid := range guids {
		q.materials = append(q.materials, MaterialReference{RecordReference: RecordReference{RecordHistoryGUID: guid}})
	}
	return q
}

// WithRecordHistoryIdentities adds materials referenced by record
// history identity.
func (q *MaterialComplianceQuery) WithRecordHistoryIdentities(ids ...string) *MaterialComplianceQuery {
	for _, id := range ids {
		q.materials = append(q.materials, MaterialReference{RecordReference: RecordReference{RecordHistoryIdentity: id}})
	}
	return q
}

// WithMaterials adds explicit material references.
func (q *MaterialComplianceQuery) WithMaterials(refs ...MaterialReference) *MaterialComplianceQuery {
	q.materials = append(q.materials, refs...)
	return q
}

// WithIndicators adds indicator definitions to evaluate the materials
// against.
func (q *MaterialComplianceQuery) WithIndicators(indicators ...Indicator) *MaterialComplianceQuery {
	q.indicators = append(q.indicators, indicators...)
	return q
}

// Run sends the query to the Service Layer and returns the result.
func (q *MaterialComplianceQuery) Run(ctx context.Context, client *Client) (*MaterialComplianceResult, error) {
	if len(q.materials) == 0 {
		return nil, errNoItems
	}
	if len(q.indicators) == 0 {
		return nil, errNoIndicators
	}
	refs := make([]itemReference, 0, len(q.materials))
	for _, m := range q.materials {
		ref, err := m.wire()
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
	err = post(ctx, client, "compliance/materials", complianceRequest{
		DatabaseKey: client.databaseKey(),
		Config:      client.tableConfig(),
		Indicators:  defs,
		Materials:   refs,
	}, &resp)
	if err != nil {
		return nil, err
	}
	messages, err := checkMessages(ctx, resp.LogMessages)
	if err != nil {
		return nil, err
	}
	items, err := materialComplianceFromWire(byName, resp.Materials)
	if err != nil {
		return nil, err
	}
	return &MaterialComplianceResult{Messages: messages, materials: items}, nil
}

// MaterialComplianceResult is the result of running a
// MaterialComplianceQuery.
type MaterialComplianceResult struct {
	// Messages generated by the Service Layer when running the
	// query, in order of decreasing severity.
	Messages []LogMessage

	materials []MaterialCompliance
}

// ComplianceByMaterialAndIndicator returns the compliance status for
// each material specified in the original query.
func (r *MaterialComplianceResult) ComplianceByMaterialAndIndicator() []MaterialCompliance {
	return r.materials
}

// ComplianceByIndicator returns the worst result for each indicator
// across all materials included in the query.
func (r *MaterialComplianceResult) ComplianceByIndicator() map[string]Indicator {
	maps := make([]map[string]Indicator, 0, len(r.materials))
	for _, m := range r.materials {
		maps = append(maps, m.Indicators)
	}
	return worstIndicators(maps)
}
