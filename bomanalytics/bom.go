// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import "context"

// A BomImpactedSubstancesQuery finds the substances impacted by one or
// more legislations in a bill of materials, supplied as a Granta
// 17/11 BoM XML document.
type BomImpactedSubstancesQuery struct {
	bom          string
	legislations []string
}

// NewBomImpactedSubstancesQuery returns an empty query. Set the BoM
// and add legislation names, then call Run.
func NewBomImpactedSubstancesQuery() *BomImpactedSubstancesQuery {
	return &BomImpactedSubstancesQuery{}
}

// WithBom sets the BoM to analyze, as a 17/11 XML document.
func (q *BomImpactedSubstancesQuery) WithBom(bomXML string) *BomImpactedSubstancesQuery {
	q.bom = bomXML
	return q
}

// WithLegislations adds legislations to evaluate the BoM against, by
// name.
func (q *BomImpactedSubstancesQuery) WithLegislations(names ...string) *BomImpactedSubstancesQuery {
	q.legislations = append(q.legislations, names...)
	return q
}

// Run sends the query to the Service Layer and returns the result.
func (q *BomImpactedSubstancesQuery) Run(ctx context.Context, client *Client) (*BomImpactedSubstancesResult, error) {
	if q.bom == "" {
		return nil, errNoBom
	}
	if len(q.legislations) == 0 {
		return nil, errNoLegislations
	}
	var resp impactedSubstancesResponse
	err := post(ctx, client, "impacted-substances/bom1711", impactedSubstancesRequest{
		DatabaseKey:      client.databaseKey(),
		Config:           client.tableConfig(),
		LegislationNames: q.legislations,
		BomXML:           q.bom,
	}, &resp)
	if err != nil {
		return nil, err
	}
	messages, err := checkMessages(ctx, resp.LogMessages)
	if err != nil {
		return nil, err
	}
	return &BomImpactedSubstancesResult{
		Messages:                messages,
		SubstancesByLegislation: substancesByLegislation(resp.Legislations),
	}, nil
}

// BomImpactedSubstancesResult is the result of running a
// BomImpactedSubstancesQuery. A BoM query has a single implicit item,
// so there is no per-item view.
type BomImpactedSubstancesResult struct {
	// Messages generated by the Service Layer when running the
	// query, in order of decreasing severity.
	Messages []LogMessage

	// SubstancesByLegislation holds the impacted substances found
	// anywhere in the BoM, grouped by legislation name.
	SubstancesByLegislation map[string][]ImpactedSubstance
}

// ImpactedSubstancesByLegislation returns the results grouped by
// legislation.
func (r *BomImpactedSubstancesResult) ImpactedSubstancesByLegislation() map[string][]ImpactedSubstance {
	return mergeByLegislation([]map[string][]ImpactedSubstance{r.SubstancesByLegislation})
}

// ImpactedSubstances returns the results flattened into a single
// list, merged across legislations.
func (r *BomImpactedSubstancesResult) ImpactedSubstances() []ImpactedSubstance {
	return flattenImpactedSubstances([]map[string][]ImpactedSubstance{r.SubstancesByLegislation})
}

// A BomComplianceQuery determines the compliance status of a bill of
// materials, supplied as a Granta 17/11 BoM XML document, against one
// or more indicators.
type BomComplianceQuery struct {
	bom        string
	indicators []Indicator
}

// NewBomComplianceQuery returns an empty query. Set the BoM and add
// indicator definitions, then call Run.
func NewBomComplianceQuery() *BomComplianceQuery {
	return &BomComplianceQuery{}
}

// WithBom sets the BoM to analyze, as a 17/11 XML document.
func (q *BomComplianceQuery) WithBom(bomXML string) *BomComplianceQuery {
	q.bom = bomXML
	return q
}

// WithIndicators adds indicator definitions to evaluate the BoM
// against.
func (q *BomComplianceQuery) WithIndicators(indicators ...Indicator) *BomComplianceQuery {
	q.indicators = append(q.indicators, indicators...)
	return q
}

// Run sends the query to the Service Layer and returns the result.
func (q *BomComplianceQuery) Run(ctx context.Context, client *Client) (*BomComplianceResult, error) {
	if q.bom == "" {
		return nil, errNoBom
	}
	if len(q.indicators) == 0 {
		return nil, errNoIndicators
	}
	defs, byName, err := indicatorDefs(q.indicators)
	if err != nil {
		return nil, err
	}
	var resp complianceResponse
	err = post(ctx, client, "compliance/bom1711", complianceRequest{
		DatabaseKey: client.databaseKey(),
		Config:      client.tableConfig(),
		Indicators:  defs,
		BomXML:      q.bom,
	}, &resp)
	if err != nil {
		return nil, err
	}
	messages, err := checkMessages(ctx, resp.LogMessages)
	if err != nil {
		return nil, err
	}
	parts, err := partComplianceFromWire(byName, resp.Parts)
	if err != nil {
		return nil, err
	}
	return &BomComplianceResult{Messages: messages, parts: parts}, nil
}

// BomComplianceResult is the result of running a BomComplianceQuery.
// The result is reported as the compliance of the root part(s) of the
// BoM.
type BomComplianceResult struct {
	// Messages generated by the Service Layer when running the
	// query, in order of decreasing severity.
	Messages []LogMessage

	parts []PartCompliance
}

// ComplianceByPartAndIndicator returns the compliance status for each
// root part of the BoM specified in the original query.
func (r *BomComplianceResult) ComplianceByPartAndIndicator() []PartCompliance {
	return r.parts
}

// ComplianceByIndicator returns the worst result for each indicator
// across all root parts of the BoM.
func (r *BomComplianceResult) ComplianceByIndicator() map[string]Indicator {
	maps := make([]map[string]Indicator, 0, len(r.parts))
	for _, p := range r.parts {
		maps = append(maps, p.Indicators)
	}
	return worstIndicators(maps)
}
