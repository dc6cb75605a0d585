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

package measurement

import (
	"strings"
	"sync"
	"testing"
	"time"

	"ycsbgo/pkg/ycsb"
)

func TestBasicAggregation(t *testing.T) {
	b := NewBasic(0)
	const n = 1000

	var wg sync.WaitGroup
	for w := 0; w < 10; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < n/10; i++ {
				latency := worker*(n/10) + i + 1
				b.Report(ycsb.OpRead, time.Duration(latency))
			}
		}(w)
	}
	wg.Wait()

	msg := b.GetStatusMsg()
	if !strings.Contains(msg, "Count=1000") {
		t.Fatalf("status message missing Count=1000: %s", msg)
	}
	if !strings.Contains(msg, "Min=0.00") {
		t.Fatalf("status message missing Min=0.00 (1ns rounds to 0.00us): %s", msg)
	}
}

func TestBasicReset(t *testing.T) {
	b := NewBasic(0)
	b.Report(ycsb.OpRead, 5*time.Millisecond)
	b.Reset()
	msg := b.GetStatusMsg()
	if strings.Contains(msg, "READ") {
		t.Fatalf("expected no READ entry after Reset, got: %s", msg)
	}
}

func TestHDRUniformLatency(t *testing.T) {
	h := NewHDR(0)
	for i := 0; i < 10000; i++ {
		h.Report(ycsb.OpRead, time.Millisecond)
	}
	msg := h.GetStatusMsg()
	for _, want := range []string{"Count=10000", "Max=1000.0", "Min=1000.0", "Avg=1000.0", "99=1000.0", "99.9=1000.0"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("status message missing %q: %s", want, msg)
		}
	}
}
