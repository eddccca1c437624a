// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import (
	check "gopkg.in/check.v1"
)

var _ = check.Suite(&referenceSuite{})

type referenceSuite struct{}

func (*referenceSuite) TestMaterialWire(c *check.C) {
	ref, err := MaterialReference{MaterialID: "plastic-abs"}.wire()
	c.Check(err, check.IsNil)
	c.Check(ref, check.Equals, itemReference{RefMaterialID, "plastic-abs"})

	ref, err = MaterialReference{RecordReference: RecordReference{RecordGUID: "guid-1"}}.wire()
	c.Check(err, check.IsNil)
	c.Check(ref, check.Equals, itemReference{RefRecordGUID, "guid-1"})
}

func (*referenceSuite) TestEmptyReference(c *check.C) {
	_, err := MaterialReference{}.wire()
	c.Check(err, check.ErrorMatches, `material reference has no identifying attribute set`)

	_, err = PartReference{}.wire()
	c.Check(err, check.ErrorMatches, `part reference has no identifying attribute set`)

	_, err = SubstanceReference{}.wire()
	c.Check(err, check.ErrorMatches, `substance reference has no identifying attribute set`)
}

func (*referenceSuite) TestAmbiguousReference(c *check.C) {
	_, err := MaterialReference{
		RecordReference: RecordReference{RecordGUID: "guid-1"},
		MaterialID:      "plastic-abs",
	}.wire()
	c.Check(err, check.ErrorMatches, `material reference is ambiguous: 2 identifying attributes set`)

	_, err = SubstanceReference{CASNumber: "50-00-0", ChemicalName: "formaldehyde"}.wire()
	c.Check(err, check.ErrorMatches, `substance reference is ambiguous: 2 identifying attributes set`)
}

func (*referenceSuite) TestSubstanceWire(c *check.C) {
	amount := 12.5
	ref, err := SubstanceReference{CASNumber: "50-00-0", PercentageAmount: &amount}.wire()
	c.Check(err, check.IsNil)
	c.Check(ref.ReferenceType, check.Equals, RefCASNumber)
	c.Check(ref.ReferenceValue, check.Equals, "50-00-0")
	c.Check(*ref.PercentageAmount, check.Equals, 12.5)

	ref, err = SubstanceReference{ECNumber: "200-001-8"}.wire()
	c.Check(err, check.IsNil)
	c.Check(ref.ReferenceType, check.Equals, RefECNumber)
	c.Check(ref.PercentageAmount, check.IsNil)
}

func (*referenceSuite) TestFromWire(c *check.C) {
	c.Check(materialFromWire(itemReference{RefMaterialID, "steel-1"}),
		check.Equals, MaterialReference{MaterialID: "steel-1"})
	c.Check(materialFromWire(itemReference{RefRecordHistoryIdentity, "12345"}),
		check.Equals, MaterialReference{RecordReference: RecordReference{RecordHistoryIdentity: "12345"}})
	c.Check(partFromWire(itemReference{RefPartNumber, "DRILL"}),
		check.Equals, PartReference{PartNumber: "DRILL"})
	c.Check(specificationFromWire(itemReference{RefSpecificationID, "MSP89,TypeI"}),
		check.Equals, SpecificationReference{SpecificationID: "MSP89,TypeI"})
	c.Check(substanceFromWire(itemReference{RefChemicalName, "lead"}),
		check.Equals, SubstanceReference{ChemicalName: "lead"})
	c.Check(substanceFromWire(itemReference{RefRecordGUID, "guid-2"}),
		check.Equals, SubstanceReference{RecordReference: RecordReference{RecordGUID: "guid-2"}})

	// Unknown reference types are dropped rather than misfiled.
	c.Check(materialFromWire(itemReference{"PartNumber", "DRILL"}),
		check.Equals, MaterialReference{})
}
