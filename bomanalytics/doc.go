// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package bomanalytics is a client library for the Granta MI BoM
// Analytics Service Layer.
//
// The intent is to offer typed query builders and result objects on
// top of the service's REST API: callers build a query describing the
// records of interest and either the legislations or the compliance
// indicators to evaluate them against, run it through a Client, and
// receive a typed result with aggregation helpers.
//
//	client, err := bomanalytics.NewClient("https://example.com/mi_servicelayer")
//	client.Username, client.Password = "user", "pass"
//	result, err := bomanalytics.NewMaterialImpactedSubstancesQuery().
//		WithMaterialIDs("plastic-abs", "elastomer-pvc").
//		WithLegislations("REACH - The Candidate List").
//		Run(ctx, client)
//	for name, substances := range result.ImpactedSubstancesByLegislation() {
//		...
//	}
package bomanalytics
