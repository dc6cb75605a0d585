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

package workload

import (
	"fmt"
	"testing"
)

func TestBuildKeyNameOrderedRoundTrip(t *testing.T) {
	for n := uint64(0); n < 1000; n++ {
		got := buildKeyName(n, false, 1)
		want := fmt.Sprintf("user%d", n)
		if got != want {
			t.Fatalf("buildKeyName(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestBuildKeyNameZeroPadding(t *testing.T) {
	got := buildKeyName(42, false, 20)
	want := "user00000000000000000042"
	if got != want {
		t.Fatalf("buildKeyName(42, padding=20) = %q, want %q", got, want)
	}
}

func TestBuildKeyNameHashedDeterministic(t *testing.T) {
	a := buildKeyName(12345, true, 1)
	b := buildKeyName(12345, true, 1)
	if a != b {
		t.Fatalf("hashed key name not deterministic: %q vs %q", a, b)
	}
	if a == buildKeyName(12346, true, 1) {
		t.Fatalf("hashed key names for distinct inputs collided: %q", a)
	}
}
