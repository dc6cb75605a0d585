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

// Package measurement implements the lock-free per-operation latency
// accumulators the worker driver reports to: a Basic variant (atomic
// count/sum/min/max) and an HDR variant backed by
// github.com/HdrHistogram/hdrhistogram-go. Both honor an optional
// skip-warmup window before their first Report takes effect.
package measurement

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"ycsbgo/pkg/ycsb"
)

const numOpKinds = int(ycsb.OpDeleteFailed) + 1

// warmup gates Report calls until skipSeconds seconds have elapsed since
// the sink was created. The first sample past that point turns reporting
// on for good, so a goroutine whose first sample arrives late can never
// leave reporting disabled.
type warmup struct {
	skipSeconds int64
	start       time.Time
	reportOn    atomic.Bool
}

func newWarmup(skipSeconds int64) *warmup {
	w := &warmup{skipSeconds: skipSeconds, start: time.Now()}
	if skipSeconds <= 0 {
		w.reportOn.Store(true)
	}
	return w
}

// allow reports whether a sample taken now should be recorded.
func (w *warmup) allow() bool {
	if w.reportOn.Load() {
		return true
	}
	elapsed := int64(time.Since(w.start).Seconds())
	on := elapsed > w.skipSeconds
	if on {
		w.reportOn.Store(true)
	}
	return on
}

// Basic accumulates atomic count, latency sum, min and max per operation
// kind. Report is lock-free; min/max use a compare-and-swap retry loop.
type Basic struct {
	*warmup

	count          [numOpKinds]atomic.Uint64
	lastCount      [numOpKinds]uint64
	latencySum     [numOpKinds]atomic.Uint64
	lastLatencySum [numOpKinds]uint64
	latencyMin     [numOpKinds]atomic.Uint64
	latencyMax     [numOpKinds]atomic.Uint64
}

// NewBasic creates a Basic measurement sink, optionally skipping the first
// skipSeconds seconds of samples.
func NewBasic(skipSeconds int64) *Basic {
	b := &Basic{warmup: newWarmup(skipSeconds)}
	b.Reset()
	return b
}

// Report records one latency sample (in nanoseconds) for kind.
func (b *Basic) Report(kind ycsb.OpKind, elapsed time.Duration) {
	if !b.allow() {
		return
	}
	latency := uint64(elapsed.Nanoseconds())
	i := int(kind)
	b.count[i].Add(1)
	b.latencySum[i].Add(latency)

	for {
		prev := b.latencyMin[i].Load()
		if prev <= latency {
			break
		}
		if b.latencyMin[i].CompareAndSwap(prev, latency) {
			break
		}
	}
	for {
		prev := b.latencyMax[i].Load()
		if prev >= latency {
			break
		}
		if b.latencyMax[i].CompareAndSwap(prev, latency) {
			break
		}
	}
}

// Reset clears every counter, restoring min to +Inf (MaxUint64) so the
// first sample of the next window always wins the CAS race.
func (b *Basic) Reset() {
	for i := 0; i < numOpKinds; i++ {
		b.count[i].Store(0)
		b.lastCount[i] = 0
		b.latencySum[i].Store(0)
		b.lastLatencySum[i] = 0
		b.latencyMin[i].Store(math.MaxUint64)
		b.latencyMax[i].Store(0)
	}
}

// GetStatusMsg renders the per-op snapshot in the source tool's format:
// "<total> operations;\n[<OP>: Count=N Max=... Min=... Avg=... | Period
// Count=N Period Avg=...]" repeated for every op kind with nonzero count.
func (b *Basic) GetStatusMsg() string {
	var sb strings.Builder
	var total uint64
	sb.WriteString(" operations;")
	for i := 0; i < numOpKinds; i++ {
		cnt := b.count[i].Load()
		if cnt == 0 {
			continue
		}
		latencySum := b.latencySum[i].Load()
		periodCnt := cnt - b.lastCount[i]
		avg := float64(latencySum) / float64(cnt) / 1000.0
		var periodAvg float64
		if periodCnt > 0 {
			periodAvg = float64(latencySum-b.lastLatencySum[i]) / float64(periodCnt) / 1000.0
		}
		fmt.Fprintf(&sb, "\n[%s: Count=%d Max=%s Min=%s Avg=%s | Period Count=%d Period Avg=%s]",
			ycsb.OpKind(i).String(),
			cnt,
			formatMicros(float64(b.latencyMax[i].Load())/1000.0),
			formatMicros(float64(b.latencyMin[i].Load())/1000.0),
			formatMicros(avg),
			periodCnt,
			formatMicros(periodAvg),
		)
		total += cnt
		b.lastLatencySum[i] = latencySum
		b.lastCount[i] = cnt
	}
	return strconv.FormatUint(total, 10) + sb.String()
}

func formatMicros(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
