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

package generator

import (
	"math"
	"testing"
)

func TestDiscreteOpMixLaw(t *testing.T) {
	d := NewDiscrete[string]()
	weights := map[string]float64{
		"read":            0.5,
		"update":          0.3,
		"insert":          0.1,
		"scan":            0.05,
		"readmodifywrite": 0.05,
	}
	for k, w := range weights {
		d.Add(k, w)
	}

	const samples = 1_000_000
	counts := make(map[string]int)
	for i := 0; i < samples; i++ {
		counts[d.Next()]++
	}

	for k, w := range weights {
		got := float64(counts[k]) / samples
		if math.Abs(got-w) > 0.01 {
			t.Fatalf("frequency for %s = %f, want within 0.01 of %f", k, got, w)
		}
	}
}

func TestUniformInclusiveBounds(t *testing.T) {
	u := NewUniform(3, 3)
	for i := 0; i < 100; i++ {
		if v := u.Next(); v != 3 {
			t.Fatalf("Next() = %d, want 3", v)
		}
	}
}

func TestRandomByteSpansPrintableASCII(t *testing.T) {
	g := NewRandomByte()
	seen := make(map[byte]bool)
	for i := 0; i < 200000; i++ {
		b := g.Next()
		if b < ' ' || b > '~' {
			t.Fatalf("byte %d outside printable ASCII range", b)
		}
		seen[b] = true
	}
	if len(seen) < 50 {
		t.Fatalf("expected broad coverage of printable ASCII, saw only %d distinct bytes", len(seen))
	}
}
