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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParsePropertyFileLayeringAndOverride(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.properties")
	override := filepath.Join(dir, "override.properties")
	if err := os.WriteFile(base, []byte("recordcount=100\nreadproportion=0.5\n"), 0o644); err != nil {
		t.Fatalf("writing base file: %v", err)
	}
	if err := os.WriteFile(override, []byte("recordcount=500\n"), 0o644); err != nil {
		t.Fatalf("writing override file: %v", err)
	}

	_, props, err := Parse([]string{
		"-load",
		"-P", base,
		"-P", override,
		"-p", "readproportion=0.9",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := props.GetString("recordcount", ""); got != "500" {
		t.Fatalf("recordcount=%q, want 500 (later -P file should win)", got)
	}
	if got := props.GetString("readproportion", ""); got != "0.9" {
		t.Fatalf("readproportion=%q, want 0.9 (-p should win over every -P file)", got)
	}
}

func TestParseRunAliasSetsRunFlag(t *testing.T) {
	cli, _, err := Parse([]string{"-t", "-threads", "8"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cli.Run {
		t.Fatal("-t should set Run, like -run")
	}
	if cli.Threads != 8 {
		t.Fatalf("Threads=%d, want 8", cli.Threads)
	}
}

func TestParseUnknownFlagIsError(t *testing.T) {
	if _, _, err := Parse([]string{"-nonexistent"}); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}
