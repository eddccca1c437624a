// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import "context"

// A SubstanceComplianceQuery determines the compliance status of a set
// of substance records against one or more indicators. Substance
// references may carry an amount; when they don't, the service
// evaluates the substance at 100%.
type SubstanceComplianceQuery struct {
	substances []SubstanceReference
	indicators []Indicator
}

// NewSubstanceComplianceQuery returns an empty query. Add substance
// references and indicator definitions, then call Run.
func NewSubstanceComplianceQuery() *SubstanceComplianceQuery {
	return &SubstanceComplianceQuery{}
}

// WithCASNumbers adds substances referenced by CAS number.
func (q *SubstanceComplianceQuery) WithCASNumbers(numbers ...string) *SubstanceComplianceQuery {
	for _, n := range numbers {
		q.substances = append(q.substances, SubstanceReference{CASNumber: n})
	}
	return q
}

// WithECNumbers adds substances referenced by EC number.
func (q *SubstanceComplianceQuery) WithECNumbers(numbers ...string) *SubstanceComplianceQuery {
	for _, n := range numbers {
		q.substances = append(q.substances, SubstanceReference{ECNumber: n})
	}
	return q
}

// WithChemicalNames adds substances referenced by chemical name.
func (q *SubstanceComplianceQuery) WithChemicalNames(names ...string) *SubstanceComplianceQuery {
	for _, n := range names {
		q.substances = append(q.substances, SubstanceReference{ChemicalName: n})
	}
	return q
}

// WithCASNumbersAndAmounts adds substances referenced by CAS number
// with an explicit percentage amount.
func (q *SubstanceComplianceQuery) WithCASNumbersAndAmounts(substances map[string]float64) *SubstanceComplianceQuery {
	for n, amount := range substances {
		amount := amount
		q.substances = append(q.substances, SubstanceReference{CASNumber: n, PercentageAmount: &amount})
	}
	return q
}

// WithRecordGUIDs adds substances referenced by record GUID.
func (q *SubstanceComplianceQuery) WithRecordGUIDs(guids ...string) *SubstanceComplianceQuery {
	for _, guid := range guids {
		q.substances = append(q.substances, SubstanceReference{RecordReference: RecordReference{RecordGUID: guid}})
	}
	return q
}

// WithRecordHistoryGUIDs adds substances referenced by record history
// GUID.
func (q *SubstanceComplianceQuery) WithRecordHistoryGUIDs(guids ...string) *SubstanceComplianceQuery {
	for _, guid := range guids {
		q.substances = append(q.substances, SubstanceReference{RecordReference: RecordReference{RecordHistoryGUID: guid}})
	}
	return q
}

// WithRecordHistoryIdentities adds substances referenced by record
// history identity.
func (q *SubstanceComplianceQuery) WithRecordHistoryIdentities(ids ...string) *SubstanceComplianceQuery {
	for _, id := range ids {
		q.substances = append(q.substances, SubstanceReference{RecordReference: RecordReference{RecordHistoryIdentity: id}})
	}
	return q
}

// WithSubstances adds explicit substance references, including any
// percentage amounts.
func (q *SubstanceComplianceQuery) WithSubstances(refs ...SubstanceReference) *SubstanceComplianceQuery {
	q.substances = append(q.substances, refs...)
	return q
}

// WithIndicators adds indicator definitions to evaluate the
// substances against.
func (q *SubstanceComplianceQuery) WithIndicators(indicators ...Indicator) *SubstanceComplianceQuery {
	q.indicators = append(q.indicators, indicators...)
	return q
}

// Run sends the query to the Service Layer and returns the result.
func (q *SubstanceComplianceQuery) Run(ctx context.Context, client *Client) (*SubstanceComplianceResult, error) {
	if len(q.substances) == 0 {
		return nil, errNoItems
	}
	if len(q.indicators) == 0 {
		return nil, errNoIndicators
	}
	refs := make([]substanceReference, 0, len(q.substances))
	for _, s := range q.substances {
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
	err = post(ctx, client, "compliance/substances", complianceRequest{
		DatabaseKey: client.databaseKey(),
		Config:      client.tableConfig(),
		Indicators:  defs,
		Substances:  refs,
	}, &resp)
	if err != nil {
		return nil, err
	}
	messages, err := checkMessages(ctx, resp.LogMessages)
	if err != nil {
		return nil, err
	}
	items, err := substanceComplianceFromWire(byName, resp.Substances)
	if err != nil {
		return nil, err
	}
	return &SubstanceComplianceResult{Messages: messages, substances: items}, nil
}

// SubstanceComplianceResult is the result of running a
// SubstanceComplianceQuery.
type SubstanceComplianceResult struct {
	// Messages generated by the Service Layer when running the
	// query, in order of decreasing severity.
	Messages []LogMessage

	substances []SubstanceCompliance
}

// ComplianceBySubstanceAndIndicator returns the compliance status for
// each substance specified in the original query.
func (r *SubstanceComplianceResult) ComplianceBySubstanceAndIndicator() []SubstanceCompliance {
	return r.substances
}

// ComplianceByIndicator returns the worst result for each indicator
// across all substances included in the query.
func (r *SubstanceComplianceResult) ComplianceByIndicator() map[string]Indicator {
	maps := make([]map[string]Indicator, 0, len(r.substances))
	for _, s := range r.substances {
		maps = append(maps, s.Indicators)
	}
	return worstIndicators(maps)
}
