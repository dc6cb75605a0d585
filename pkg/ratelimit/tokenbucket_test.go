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

package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestConvergence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long-running rate convergence test in -short mode")
	}
	tb := New(1000, 1000)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 10000; i++ {
		if err := tb.Consume(ctx, 1); err != nil {
			t.Fatalf("Consume: %v", err)
		}
	}
	elapsed := time.Since(start)

	if elapsed < 9500*time.Millisecond || elapsed > 11*time.Second {
		t.Fatalf("10000 Consume(1) at rate=1000 took %v, want within [9.5s, 11s]", elapsed)
	}
}

func TestConsumeRespectsContextCancellation(t *testing.T) {
	tb := New(1, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := tb.Consume(ctx, 5); err == nil {
		t.Fatal("expected Consume to return an error once context deadline exceeded")
	}
}
