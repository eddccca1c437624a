// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grantami/bomanalytics-go/bomanalytics"
	"github.com/grantami/bomanalytics-go/ctxlog"
	"github.com/grantami/bomanalytics-go/lib/cmd"
)

// runImpactedSubstances implements the "impacted-substances"
// subcommand: it queries the impacted substances for a set of records
// (or a BoM) and prints the result grouped by legislation.
func runImpactedSubstances(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		flags        = flag.NewFlagSet("", flag.ContinueOnError)
		configFile   = flags.String("config", "", "client config `file` (default: use BOMANALYTICS_* environment variables)")
		itemType     = flags.String("type", "material", "item `type` to query: material, part, specification, or bom")
		bomFile      = flags.String("bom-file", "", "`file` containing a 17/11 BoM XML document (with -type bom)")
		format       = flags.String("format", "json", "output `format`: json or yaml")
		logLevel     = flags.String("log-level", "info", "logging `level` (debug, info, warning, error)")
		ids          arrayFlags
		guids        arrayFlags
		historyGUIDs arrayFlags
		historyIDs   arrayFlags
		legislations arrayFlags
	)
	flags.Var(&ids, "id", "record natural key: material ID, part number, or specification ID (repeatable)")
	flags.Var(&guids, "record-guid", "record GUID (repeatable)")
	flags.Var(&historyGUIDs, "record-history-guid", "record history GUID (repeatable)")
	flags.Var(&historyIDs, "record-history-identity", "record history identity (repeatable)")
	flags.Var(&legislations, "legislation", "legislation `name` to evaluate against (repeatable)")
	if ok, code := cmd.ParseFlags(flags, prog, args, "", stderr); !ok {
		return code
	}

	logger := ctxlog.New(stderr, "text", *logLevel)
	ctx := ctxlog.Context(context.Background(), logger)

	client, err := loadClient(*configFile)
	if err != nil {
		logger.Error(err)
		return 1
	}

	var out map[string][]bomanalytics.ImpactedSubstance
	switch *itemType {
	case "material":
		result, err := bomanalytics.NewMaterialImpactedSubstancesQuery().
			WithMaterialIDs(ids...).
			WithRecordGUIDs(guids...).
			WithRecordHistoryGUIDs(historyGUIDs...).
			WithRecordHistoryIdentities(historyIDs...).
			WithLegislations(legislations...).
			Run(ctx, client)
		if err != nil {
			logger.Error(err)
			return 1
		}
		out = result.ImpactedSubstancesByLegislation()
	case "part":
		result, err := bomanalytics.NewPartImpactedSubstancesQuery().
			WithPartNumbers(ids...).
			WithRecordGUIDs(guids...).
			WithRecordHistoryGUIDs(historyGUIDs...).
			WithRecordHistoryIdentities(historyIDs...).
			WithLegislations(legislations...).
			Run(ctx, client)
		if err != nil {
			logger.Error(err)
			return 1
		}
		out = result.ImpactedSubstancesByLegislation()
	case "specification":
		result, err := bomanalytics.NewSpecificationImpactedSubstancesQuery().
			WithSpecificationIDs(ids...).
			WithRecordGUIDs(guids...).
			WithRecordHistoryGUIDs(historyGUIDs...).
			WithRecordHistoryIdentities(historyIDs...).
			WithLegislations(legislations...).
			Run(ctx, client)
		if err != nil {
			logger.Error(err)
			return 1
		}
		out = result.ImpactedSubstancesByLegislation()
	case "bom":
		if *bomFile == "" {
			logger.Error("-type bom requires -bom-file")
			return 2
		}
		bom, err := os.ReadFile(*bomFile)
		if err != nil {
			logger.Error(err)
			return 1
		}
		result, err := bomanalytics.NewBomImpactedSubstancesQuery().
			WithBom(string(bom)).
			WithLegislations(legislations...).
			Run(ctx, client)
		if err != nil {
			logger.Error(err)
			return 1
		}
		out = result.ImpactedSubstancesByLegislation()
	default:
		fmt.Fprintf(stderr, "unsupported item type %q (try -help)\n", *itemType)
		return 2
	}

	if err := writeOutput(stdout, *format, out); err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}
