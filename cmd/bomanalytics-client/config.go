// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/grantami/bomanalytics-go/bomanalytics"
)

// clientConfig is the YAML config file format. Example:
//
//	ServiceURL: https://example.com/mi_servicelayer
//	Username: user
//	Password: secret
//	DatabaseKey: MI_Restricted_Substances
//	Timeout: 60s
//	MaxRetries: 3
type clientConfig struct {
	ServiceURL  string
	Username    string
	Password    string
	AuthToken   string
	DatabaseKey string
	TableConfig bomanalytics.TableConfig
	Insecure    bool
	MaxRetries  int
	Timeout     bomanalytics.Duration
}

// loadClient builds a Client from the given YAML config file, or from
// BOMANALYTICS_* environment variables if path is empty.
func loadClient(path string) (*bomanalytics.Client, error) {
	if path == "" {
		return bomanalytics.NewClientFromEnv(), nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg clientConfig
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.ServiceURL == "" {
		return nil, fmt.Errorf("%s: ServiceURL is not set", path)
	}
	client, err := bomanalytics.NewClient(cfg.ServiceURL)
	if err != nil {
		return nil, err
	}
	client.Username = cfg.Username
	client.Password = cfg.Password
	client.AuthToken = cfg.AuthToken
	client.DatabaseKey = cfg.DatabaseKey
	client.TableConfig = cfg.TableConfig
	client.Insecure = cfg.Insecure
	client.MaxRetries = cfg.MaxRetries
	if cfg.Timeout != 0 {
		client.Timeout = cfg.Timeout.Duration()
	}
	return client, nil
}

// arrayFlags collects the values of a repeatable command line flag.
type arrayFlags []string

func (i *arrayFlags) String() string {
	return strings.Join(*i, ",")
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// writeOutput writes v to w as indented JSON or YAML.
func writeOutput(w io.Writer, format string, v interface{}) error {
	var buf []byte
	var err error
	switch format {
	case "json":
		buf, err = json.MarshalIndent(v, "", "  ")
		buf = append(buf, '\n')
	case "yaml":
		buf, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}
