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

// Package workload implements the YCSB-style core workload: configuration
// from a property set, the load-phase insert loop, the run-phase
// transaction loop, and the deterministic key/value builders they share.
package workload

import (
	"fmt"
	"strconv"
	"strings"

	"ycsbgo/pkg/generator"
	"ycsbgo/pkg/ycsb"
)

// buildKeyName renders a key number into the textual record key:
// "user" + the decimal value (hashed via FNV-1a if insertorder=hashed),
// left-padded with zeros to zeroPadding digits.
func buildKeyName(keyNum uint64, hashed bool, zeroPadding int) string {
	if hashed {
		keyNum = generator.FNV64(keyNum)
	}
	digits := strconv.FormatUint(keyNum, 10)
	if len(digits) < zeroPadding {
		digits = strings.Repeat("0", zeroPadding-len(digits)) + digits
	}
	return "user" + digits
}

// fieldName renders the name of field index i.
func fieldName(prefix string, i int) string {
	return fmt.Sprintf("%s%d", prefix, i)
}

// buildValues produces one (name,value) pair per configured field, each
// value's length drawn from fieldLen and its bytes from the random-byte
// generator.
func buildValues(prefix string, fieldCount int, fieldLen *generator.FieldLength, rb *generator.RandomByte) []ycsb.Field {
	fields := make([]ycsb.Field, fieldCount)
	for i := 0; i < fieldCount; i++ {
		buf := make([]byte, fieldLen.Next())
		rb.Fill(buf)
		fields[i] = ycsb.Field{Name: fieldName(prefix, i), Value: buf}
	}
	return fields
}

// buildSingleValue produces one (name,value) pair for a field chosen by
// fieldChooser.
func buildSingleValue(prefix string, fieldChooser *generator.Uniform, fieldLen *generator.FieldLength, rb *generator.RandomByte) []ycsb.Field {
	idx := fieldChooser.Next()
	buf := make([]byte, fieldLen.Next())
	rb.Fill(buf)
	return []ycsb.Field{{Name: fieldName(prefix, int(idx)), Value: buf}}
}
