// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import (
	"context"
	"errors"
	"net/http"
)

// Wire types shared by all query endpoints. Requests are POSTed as
// JSON; the item list travels under its plural key and the analysis
// definition under either "legislation_names" or "indicators".

type impactedSubstancesRequest struct {
	DatabaseKey      string          `json:"database_key"`
	Config           *TableConfig    `json:"config,omitempty"`
	LegislationNames []string        `json:"legislation_names"`
	Materials        []itemReference `json:"materials,omitempty"`
	Parts            []itemReference `json:"parts,omitempty"`
	Specifications   []itemReference `json:"specifications,omitempty"`
	BomXML           string          `json:"bom_xml1711,omitempty"`
}

type complianceRequest struct {
	DatabaseKey    string                `json:"database_key"`
	Config         *TableConfig          `json:"config,omitempty"`
	Indicators     []indicatorDefinition `json:"indicators"`
	Materials      []itemReference       `json:"materials,omitempty"`
	Parts          []itemReference       `json:"parts,omitempty"`
	Specifications []itemReference       `json:"specifications,omitempty"`
	Substances     []substanceReference  `json:"substances,omitempty"`
	BomXML         string                `json:"bom_xml1711,omitempty"`
}

// wireImpactedSubstance is one impacted substance row within a
// legislation result.
type wireImpactedSubstance struct {
	CASNumber                     string   `json:"cas_number"`
	ECNumber                      string   `json:"ec_number"`
	SubstanceName                 string   `json:"substance_name"`
	MaxPercentageAmountInMaterial *float64 `json:"max_percentage_amount_in_material"`
	LegislationThreshold          *float64 `json:"legislation_threshold"`
}

type wireLegislationResult struct {
	LegislationName    string                  `json:"legislation_name"`
	ImpactedSubstances []wireImpactedSubstance `json:"impacted_substances"`
}

type wireImpactedItem struct {
	itemReference
	Legislations []wireLegislationResult `json:"legislations"`
}

type impactedSubstancesResponse struct {
	LogMessages    []LogMessage            `json:"log_messages"`
	Materials      []wireImpactedItem      `json:"materials,omitempty"`
	Parts          []wireImpactedItem      `json:"parts,omitempty"`
	Specifications []wireImpactedItem      `json:"specifications,omitempty"`
	Legislations   []wireLegislationResult `json:"legislations,omitempty"` // bom1711 endpoint
}

// Compliance responses are trees: parts contain parts, materials,
// specifications and substances; specifications contain materials,
// specifications, coatings and substances; materials contain
// substances.

type wireSubstanceCompliance struct {
	itemReference
	Indicators []wireIndicatorResult `json:"indicators"`
}

type wireCoatingCompliance struct {
	itemReference
	Indicators []wireIndicatorResult `json:"indicators"`
}

type wireMaterialCompliance struct {
	itemReference
	Indicators []wireIndicatorResult     `json:"indicators"`
	Substances []wireSubstanceCompliance `json:"substances"`
}

type wireSpecificationCompliance struct {
	itemReference
	Indicators     []wireIndicatorResult         `json:"indicators"`
	Materials      []wireMaterialCompliance      `json:"materials"`
	Specifications []wireSpecificationCompliance `json:"specifications"`
	Coatings       []wireCoatingCompliance       `json:"coatings"`
	Substances     []wireSubstanceCompliance     `json:"substances"`
}

type wirePartCompliance struct {
	itemReference
	Indicators     []wireIndicatorResult         `json:"indicators"`
	Parts          []wirePartCompliance          `json:"parts"`
	Materials      []wireMaterialCompliance      `json:"materials"`
	Specifications []wireSpecificationCompliance `json:"specifications"`
	Substances     []wireSubstanceCompliance     `json:"substances"`
}

type complianceResponse struct {
	LogMessages    []LogMessage                  `json:"log_messages"`
	Materials      []wireMaterialCompliance      `json:"materials,omitempty"`
	Parts          []wirePartCompliance          `json:"parts,omitempty"`
	Specifications []wireSpecificationCompliance `json:"specifications,omitempty"`
	Substances     []wireSubstanceCompliance     `json:"substances,omitempty"`
}

// Validation errors shared by the query builders.
var (
	errNoItems        = errors.New("query has no record references")
	errNoLegislations = errors.New("query has no legislation names")
	errNoIndicators   = errors.New("query has no indicator definitions")
	errNoBom          = errors.New("query has no BoM")
)

// indicatorDefs returns the wire definitions and the by-name map used
// to build result indicators, rejecting duplicate names.
func indicatorDefs(indicators []Indicator) ([]indicatorDefinition, map[string]Indicator, error) {
	defs := make([]indicatorDefinition, 0, len(indicators))
	byName := make(map[string]Indicator, len(indicators))
	for _, ind := range indicators {
		name := ind.IndicatorName()
		if _, dup := byName[name]; dup {
			return nil, nil, errors.New("duplicate indicator name " + name)
		}
		byName[name] = ind
		defs = append(defs, ind.definition())
	}
	return defs, byName, nil
}

// post runs one query request/response round trip.
func post(ctx context.Context, client *Client, path string, body, dst interface{}) error {
	return client.RequestAndDecodeContext(ctx, dst, http.MethodPost, path, body)
}

// substancesByLegislation converts a wire legislation list to the
// result-side map form.
func substancesByLegislation(legislations []wireLegislationResult) map[string][]ImpactedSubstance {
	out := make(map[string][]ImpactedSubstance, len(legislations))
	for _, leg := range legislations {
		substances := make([]ImpactedSubstance, 0, len(leg.ImpactedSubstances))
		for _, s := range leg.ImpactedSubstances {
			substances = append(substances, ImpactedSubstance{
				CASNumber:                     s.CASNumber,
				ECNumber:                      s.ECNumber,
				ChemicalName:                  s.SubstanceName,
				MaxPercentageAmountInMaterial: s.MaxPercentageAmountInMaterial,
				LegislationThreshold:          s.LegislationThreshold,
			})
		}
		out[leg.LegislationName] = substances
	}
	return out
}
