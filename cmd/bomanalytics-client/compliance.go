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

	"github.com/ghodss/yaml"
	"github.com/grantami/bomanalytics-go/bomanalytics"
	"github.com/grantami/bomanalytics-go/ctxlog"
	"github.com/grantami/bomanalytics-go/lib/cmd"
)

// indicatorConfig is one entry of the YAML indicators file. Example:
//
//	- name: SIN list
//	  type: WatchList
//	  legislation_names:
//	    - The SIN List 2.1 (Substitute It Now!)
//	- name: RoHS
//	  type: Rohs
//	  legislation_names:
//	    - EU Directive 2011/65/EU (RoHS 2)
//	  default_threshold_percentage: 0.01
type indicatorConfig struct {
	Name                       string   `json:"name"`
	Type                       string   `json:"type"`
	LegislationNames           []string `json:"legislation_names"`
	DefaultThresholdPercentage float64  `json:"default_threshold_percentage"`
}

// loadIndicators reads indicator definitions from a YAML file.
func loadIndicators(path string) ([]bomanalytics.Indicator, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var configs []indicatorConfig
	if err := yaml.Unmarshal(buf, &configs); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	indicators := make([]bomanalytics.Indicator, 0, len(configs))
	for _, ic := range configs {
		switch ic.Type {
		case "WatchList":
			indicators = append(indicators, bomanalytics.WatchListIndicator{
				Name:                       ic.Name,
				LegislationNames:           ic.LegislationNames,
				DefaultThresholdPercentage: ic.DefaultThresholdPercentage,
			})
		case "Rohs":
			indicators = append(indicators, bomanalytics.RoHSIndicator{
				Name:                       ic.Name,
				LegislationNames:           ic.LegislationNames,
				DefaultThresholdPercentage: ic.DefaultThresholdPercentage,
			})
		default:
			return nil, fmt.Errorf("%s: indicator %q has unsupported type %q", path, ic.Name, ic.Type)
		}
	}
	return indicators, nil
}

// runCompliance implements the "compliance" subcommand: it evaluates
// the compliance of a set of records (or a BoM) against the indicators
// defined in a YAML file, and prints the per-item results.
func runCompliance(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		flags          = flag.NewFlagSet("", flag.ContinueOnError)
		configFile     = flags.String("config", "", "client config `file` (default: use BOMANALYTICS_* environment variables)")
		itemType       = flags.String("type", "material", "item `type` to query: material, part, specification, substance, or bom")
		bomFile        = flags.String("bom-file", "", "`file` containing a 17/11 BoM XML document (with -type bom)")
		indicatorsFile = flags.String("indicators", "", "YAML `file` defining the indicators to evaluate against")
		format         = flags.String("format", "json", "output `format`: json or yaml")
		logLevel       = flags.String("log-level", "info", "logging `level` (debug, info, warning, error)")
		ids            arrayFlags
		guids          arrayFlags
		historyGUIDs   arrayFlags
		historyIDs     arrayFlags
	)
	flags.Var(&ids, "id", "record natural key: material ID, part number, specification ID, or CAS number (repeatable)")
	flags.Var(&guids, "record-guid", "record GUID (repeatable)")
	flags.Var(&historyGUIDs, "record-history-guid", "record history GUID (repeatable)")
	flags.Var(&historyIDs, "record-history-identity", "record history identity (repeatable)")
	if ok, code := cmd.ParseFlags(flags, prog, args, "", stderr); !ok {
		return code
	}

	logger := ctxlog.New(stderr, "text", *logLevel)
	ctx := ctxlog.Context(context.Background(), logger)

	if *indicatorsFile == "" {
		logger.Error("compliance queries require -indicators")
		return 2
	}
	indicators, err := loadIndicators(*indicatorsFile)
	if err != nil {
		logger.Error(err)
		return 1
	}
	client, err := loadClient(*configFile)
	if err != nil {
		logger.Error(err)
		return 1
	}

	var out interface{}
	switch *itemType {
	case "material":
		result, err := bomanalytics.NewMaterialComplianceQuery().
			WithMaterialIDs(ids...).
			WithRecordGUIDs(guids...).
			WithRecordHistoryGUIDs(historyGUIDs...).
			WithRecordHistoryIdentities(historyIDs...).
			WithIndicators(indicators...).
			Run(ctx, client)
		if err != nil {
			logger.Error(err)
			return 1
		}
		out = result.ComplianceByMaterialAndIndicator()
	case "part":
		result, err := bomanalytics.NewPartComplianceQuery().
			WithPartNumbers(ids...).
			WithRecordGUIDs(guids...).
			WithRecordHistoryGUIDs(historyGUIDs...).
			WithRecordHistoryIdentities(historyIDs...).
			WithIndicators(indicators...).
			Run(ctx, client)
		if err != nil {
			logger.Error(err)
			return 1
		}
		out = result.ComplianceByPartAndIndicator()
	case "specification":
		result, err := bomanalytics.NewSpecificationComplianceQuery().
			WithSpecificationIDs(ids...).
			WithRecordGUIDs(guids...).
			WithRecordHistoryGUIDs(historyGUIDs...).
			WithRecordHistoryIdentities(historyIDs...).
			WithIndicators(indicators...).
			Run(ctx, client)
		if err != nil {
			logger.Error(err)
			return 1
		}
		out = result.ComplianceBySpecificationAndIndicator()
	case "substance":
		result, err := bomanalytics.NewSubstanceComplianceQuery().
			WithCASNumbers(ids...).
			WithRecordGUIDs(guids...).
			WithRecordHistoryGUIDs(historyGUIDs...).
			WithRecordHistoryIdentities(historyIDs...).
			WithIndicators(indicators...).
			Run(ctx, client)
		if err != nil {
			logger.Error(err)
			return 1
		}
		out = result.ComplianceBySubstanceAndIndicator()
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
		result, err := bomanalytics.NewBomComplianceQuery().
			WithBom(string(bom)).
			WithIndicators(indicators...).
			Run(ctx, client)
		if err != nil {
			logger.Error(err)
			return 1
		}
		out = result.ComplianceByPartAndIndicator()
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
