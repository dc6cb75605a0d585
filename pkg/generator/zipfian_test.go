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

import "testing"

func TestZipfianSkew(t *testing.T) {
	z, err := NewZipfian(0, 9999)
	if err != nil {
		t.Fatalf("NewZipfian: %v", err)
	}

	const samples = 1_000_000
	counts := make(map[uint64]int)
	for i := 0; i < samples; i++ {
		counts[z.Next()]++
	}

	type rankCount struct {
		key   uint64
		count int
	}
	top := make([]rankCount, 0, len(counts))
	for k, c := range counts {
		top = append(top, rankCount{k, c})
	}
	// partial selection sort for the top 10 is plenty at this scale
	for i := 0; i < 10 && i < len(top); i++ {
		maxIdx := i
		for j := i + 1; j < len(top); j++ {
			if top[j].count > top[maxIdx].count {
				maxIdx = j
			}
		}
		top[i], top[maxIdx] = top[maxIdx], top[i]
	}

	if float64(top[0].count)/samples <= 0.05 {
		t.Fatalf("most popular item share = %f, want > 0.05", float64(top[0].count)/samples)
	}

	var top10 int
	for i := 0; i < 10 && i < len(top); i++ {
		top10 += top[i].count
	}
	if float64(top10)/samples <= 0.25 {
		t.Fatalf("top-10 share = %f, want > 0.25", float64(top10)/samples)
	}
}

func TestZipfianRejectsItemCountDecrease(t *testing.T) {
	z, err := NewZipfian(0, 999)
	if err != nil {
		t.Fatalf("NewZipfian: %v", err)
	}
	if _, err := z.NextN(2000); err != nil {
		t.Fatalf("growing item count: %v", err)
	}
	if _, err := z.NextN(500); err != ErrItemCountDecreased {
		t.Fatalf("shrinking item count: got %v, want ErrItemCountDecreased", err)
	}
}

func TestZipfianInvalidItemCount(t *testing.T) {
	if _, err := NewZipfian(0, 0); err == nil {
		t.Fatal("expected error for n<2 item count")
	}
}
