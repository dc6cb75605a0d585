// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the driver's CLI flags and .properties files and
// merges them into a single github.com/magiconair/properties.Properties,
// the layering the CLI table (spec.md §6) describes: -P files are applied
// in order, then -p key=value overrides win over all of them.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/magiconair/properties"
)

// CLI holds the flags parsed from argv.
type CLI struct {
	Load        bool
	Run         bool
	Threads     int
	DBName      string
	Status      bool
	RateFile    string
	MetricsAddr string

	propFiles stringList
	propSets  stringList
}

type stringList []string

func (s *stringList) String() string { return fmt.Sprint([]string(*s)) }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse parses args (normally os.Args[1:]) into a CLI and the merged
// Properties they describe.
func Parse(args []string) (*CLI, *properties.Properties, error) {
	fs := flag.NewFlagSet("ycsbgo", flag.ContinueOnError)
	c := &CLI{}
	fs.BoolVar(&c.Load, "load", false, "run the load phase")
	fs.BoolVar(&c.Run, "run", false, "run the transaction phase")
	fs.BoolVar(&c.Run, "t", false, "run the transaction phase (alias of -run)")
	fs.IntVar(&c.Threads, "threads", 1, "worker count")
	fs.StringVar(&c.DBName, "db", "basic", "backend key registered in the DB factory")
	fs.BoolVar(&c.Status, "s", false, "periodic status printing enabled")
	fs.StringVar(&c.RateFile, "ratefile", "", "rate-change schedule file (timestamp_sec new_rate_ops_per_sec pairs)")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", "", "optional Prometheus /metrics listen address")
	fs.Var(&c.propFiles, "P", "read a properties file (may be repeated; later files override earlier ones)")
	fs.Var(&c.propSets, "p", "set one property key=value (overrides files)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	merged := properties.NewProperties()
	for _, path := range c.propFiles {
		p, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			return nil, nil, fmt.Errorf("config: loading properties file %s: %w", path, err)
		}
		for _, key := range p.Keys() {
			v, _ := p.Get(key)
			merged.Set(key, v)
		}
	}
	for _, kv := range c.propSets {
		key, value, err := splitKV(kv)
		if err != nil {
			return nil, nil, fmt.Errorf("config: parsing -p %q: %w", kv, err)
		}
		merged.Set(key, value)
	}

	return c, merged, nil
}

func splitKV(s string) (string, string, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("expected key=value")
}

// MustParse is Parse, but exits the process with a non-zero status on
// error (category 1: configuration error, per spec.md §7).
func MustParse(args []string) (*CLI, *properties.Properties) {
	c, p, err := Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return c, p
}
