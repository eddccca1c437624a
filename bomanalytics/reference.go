// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import (
	"fmt"
)

// ReferenceType identifies which record attribute a reference value
// refers to. The names match the Service Layer's wire format.
type ReferenceType string

const (
	RefRecordHistoryIdentity ReferenceType = "MiRecordHistoryIdentity"
	RefRecordGUID            ReferenceType = "MiRecordGuid"
	RefRecordHistoryGUID     ReferenceType = "MiRecordHistoryGuid"
	RefMaterialID            ReferenceType = "MaterialId"
	RefPartNumber            ReferenceType = "PartNumber"
	RefSpecificationID       ReferenceType = "SpecificationId"
	RefCASNumber             ReferenceType = "CasNumber"
	RefECNumber              ReferenceType = "EcNumber"
	RefChemicalName          ReferenceType = "ChemicalName"
)

// itemReference is the wire form of a record reference: exactly one
// attribute/value pair.
type itemReference struct {
	ReferenceType  ReferenceType `json:"reference_type"`
	ReferenceValue string        `json:"reference_value"`
}

// refField pairs a reference type with the value the caller supplied
// for it (possibly empty).
type refField struct {
	typ   ReferenceType
	value string
}

// oneReference returns the wire reference for the single non-empty
// field, or an error if zero or more than one field is set.
func oneReference(kind string, fields []refField) (itemReference, error) {
	var ref itemReference
	n := 0
	for _, f := range fields {
		if f.value != "" {
			ref = itemReference{ReferenceType: f.typ, ReferenceValue: f.value}
			n++
		}
	}
	switch {
	case n == 0:
		return ref, fmt.Errorf("%s reference has no identifying attribute set", kind)
	case n > 1:
		return ref, fmt.Errorf("%s reference is ambiguous: %d identifying attributes set", kind, n)
	}
	return ref, nil
}

// RecordReference identifies a record by one of the three generic
// Granta MI keys. Exactly one field may be set.
type RecordReference struct {
	RecordHistoryIdentity string `json:"record_history_identity,omitempty"`
	RecordGUID            string `json:"record_guid,omitempty"`
	RecordHistoryGUID     string `json:"record_history_guid,omitempty"`
}

func (r RecordReference) fields() []refField {
	return []refField{
		{RefRecordHistoryIdentity, r.RecordHistoryIdentity},
		{RefRecordGUID, r.RecordGUID},
		{RefRecordHistoryGUID, r.RecordHistoryGUID},
	}
}

func (r *RecordReference) setFromWire(ref itemReference) bool {
	switch ref.ReferenceType {
	case RefRecordHistoryIdentity:
		r.RecordHistoryIdentity = ref.ReferenceValue
	case RefRecordGUID:
		r.RecordGUID = ref.ReferenceValue
	case RefRecordHistoryGUID:
		r.RecordHistoryGUID = ref.ReferenceValue
	default:
		return false
	}
	return true
}

// MaterialReference identifies a material record, either by material
// ID or by a generic record key.
type MaterialReference struct {
	RecordReference
	MaterialID string `json:"material_id,omitempty"`
}

func (r MaterialReference) wire() (itemReference, error) {
	return oneReference("material", append(r.fields(), refField{RefMaterialID, r.MaterialID}))
}

func materialFromWire(ref itemReference) MaterialReference {
	var r MaterialReference
	if !r.setFromWire(ref) && ref.ReferenceType == RefMaterialID {
		r.MaterialID = ref.ReferenceValue
	}
	return r
}

// PartReference identifies a part record, either by part number or by
// a generic record key.
type PartReference struct {
	RecordReference
	PartNumber string `json:"part_number,omitempty"`
}

func (r PartReference) wire() (itemReference, error) {
	return oneReference("part", append(r.fields(), refField{RefPartNumber, r.PartNumber}))
}

func partFromWire(ref itemReference) PartReference {
	var r PartReference
	if !r.setFromWire(ref) && ref.ReferenceType == RefPartNumber {
		r.PartNumber = ref.ReferenceValue
	}
	return r
}

// SpecificationReference identifies a specification record, either by
// specification ID or by a generic record key.
type SpecificationReference struct {
	RecordReference
	SpecificationID string `json:"specification_id,omitempty"`
}

func (r SpecificationReference) wire() (itemReference, error) {
	return oneReference("specification", append(r.fields(), refField{RefSpecificationID, r.SpecificationID}))
}

func specificationFromWire(ref itemReference) SpecificationReference {
	var r SpecificationReference
	if !r.setFromWire(ref) && ref.ReferenceType == RefSpecificationID {
		r.SpecificationID = ref.ReferenceValue
	}
	return r
}

// SubstanceReference identifies a substance record by CAS number, EC
// number, chemical name, or a generic record key. PercentageAmount is
// the amount of the substance in the analyzed item, used by compliance
// queries; when nil the service assumes 100%.
type SubstanceReference struct {
	RecordReference
	CASNumber        string   `json:"cas_number,omitempty"`
	ECNumber         string   `json:"ec_number,omitempty"`
	ChemicalName     string   `json:"chemical_name,omitempty"`
	PercentageAmount *float64 `json:"percentage_amount,omitempty"`
}

func (r SubstanceReference) wire() (substanceReference, error) {
	ref, err := oneReference("substance", append(r.fields(),
		refField{RefCASNumber, r.CASNumber},
		refField{RefECNumber, r.ECNumber},
		refField{RefChemicalName, r.ChemicalName},
	))
	if err != nil {
		return substanceReference{}, err
	}
	return substanceReference{itemReference: ref, PercentageAmount: r.PercentageAmount}, nil
}

func substanceFromWire(ref itemReference) SubstanceReference {
	var r SubstanceReference
	if r.setFromWire(ref) {
		return r
	}
	switch ref.ReferenceType {
	case RefCASNumber:
		r.CASNumber = ref.ReferenceValue
	case RefECNumber:
		r.ECNumber = ref.ReferenceValue
	case RefChemicalName:
		r.ChemicalName = ref.ReferenceValue
	}
	return r
}

// substanceReference is the wire form of a substance reference with
// its amount.
type substanceReference struct {
	itemReference
	PercentageAmount *float64 `json:"percentage_amount,omitempty"`
}
