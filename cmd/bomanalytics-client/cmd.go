// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/grantami/bomanalytics-go/lib/cmd"
)

var handler = cmd.Multi(map[string]cmd.RunFunc{
	"version":   cmd.VersionCommand,
	"-version":  cmd.VersionCommand,
	"--version": cmd.VersionCommand,

	"impacted-substances": runImpactedSubstances,
	"compliance":          runCompliance,
})

func main() {
	os.Exit(handler(os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
