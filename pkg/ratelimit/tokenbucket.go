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

// Package ratelimit implements a token-bucket limiter with fixed-point
// token tracking (scale 10^4, so fractional-token refills don't get lost
// to integer truncation between Consume calls) and a dynamic SetRate that
// a control loop can call from outside the owning worker.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const tokenPrecision = 10000

// TokenBucket serializes Consume and SetRate on mu, so one bucket can be
// shared by several goroutines; internal/driver shares a single bucket,
// set to the combined target rate, among all workers of a phase.
type TokenBucket struct {
	mu        sync.Mutex
	rate      int64 // tokens/sec, scaled by tokenPrecision
	burst     int64 // scaled by tokenPrecision
	tokens    int64 // signed, scaled by tokenPrecision
	lastFill  time.Time
}

// New creates a token bucket with rate tokens/sec and the given burst
// capacity, starting empty.
func New(rate, burst int64) *TokenBucket {
	return &TokenBucket{
		rate:     rate * tokenPrecision,
		burst:    burst * tokenPrecision,
		tokens:   0,
		lastFill: time.Now(),
	}
}

// refill adds tokens accrued since lastFill at the given rate (already
// scaled by tokenPrecision), clamped to burst, and advances lastFill.
// Caller must hold mu.
func (t *TokenBucket) refill(rate int64, now time.Time) {
	elapsed := now.Sub(t.lastFill)
	if elapsed > 0 {
		t.tokens += int64(elapsed) * rate / int64(time.Second)
		if t.tokens > t.burst {
			t.tokens = t.burst
		}
	}
	t.lastFill = now
}

// Consume reserves n tokens, refilling first, then blocks (respecting ctx
// cancellation) if the balance goes negative, for as long as it takes the
// configured rate to repay the debt.
func (t *TokenBucket) Consume(ctx context.Context, n int64) error {
	t.mu.Lock()
	now := time.Now()
	t.refill(t.rate, now)
	t.tokens -= n * tokenPrecision
	debt := -t.tokens
	rate := t.rate
	t.mu.Unlock()

	if debt <= 0 {
		return nil
	}
	wait := time.Duration(debt * int64(time.Second) / rate)
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetRate refills at the OLD rate first (so pending demand is not
// backdated against the new rate), then installs newRate.
func (t *TokenBucket) SetRate(newRate int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refill(t.rate, time.Now())
	t.rate = newRate * tokenPrecision
}
