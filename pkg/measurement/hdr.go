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
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"

	"ycsbgo/pkg/ycsb"
)

const (
	hdrLowestDiscernible = 1
	hdrHighestTrackable  = 100 * 1000 * 1000 * 1000 // 100 seconds in nanoseconds
	hdrSigFigs           = 3
)

// hdrBucket pairs a histogram with the mutex that serializes RecordValue
// calls against it (the library itself is not safe for concurrent writers).
type hdrBucket struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
}

// HDR accumulates one HDR histogram per operation kind and additionally
// reports p90/p99/p999/p9999 in its status message.
type HDR struct {
	*warmup
	buckets [numOpKinds]*hdrBucket
}

// NewHDR creates an HDR measurement sink, optionally skipping the first
// skipSeconds seconds of samples.
func NewHDR(skipSeconds int64) *HDR {
	h := &HDR{warmup: newWarmup(skipSeconds)}
	for i := range h.buckets {
		h.buckets[i] = &hdrBucket{hist: hdrhistogram.New(hdrLowestDiscernible, hdrHighestTrackable, hdrSigFigs)}
	}
	return h
}

// Report records one latency sample (in nanoseconds) for kind.
func (h *HDR) Report(kind ycsb.OpKind, elapsed time.Duration) {
	if !h.allow() {
		return
	}
	b := h.buckets[int(kind)]
	b.mu.Lock()
	_ = b.hist.RecordValue(elapsed.Nanoseconds())
	b.mu.Unlock()
}

// Reset clears every histogram uniformly (see DESIGN.md's Open Question #2
// decision: Basic and HDR both clear fully on Reset, no partial variant).
func (h *HDR) Reset() {
	for _, b := range h.buckets {
		b.mu.Lock()
		b.hist.Reset()
		b.mu.Unlock()
	}
}

// GetStatusMsg renders the per-op snapshot with Count/Max/Min/Avg plus the
// 90/99/99.9/99.99 percentiles, matching the source tool's HDR format.
func (h *HDR) GetStatusMsg() string {
	var sb strings.Builder
	var total int64
	sb.WriteString(" operations;")
	for i, b := range h.buckets {
		b.mu.Lock()
		cnt := b.hist.TotalCount()
		if cnt == 0 {
			b.mu.Unlock()
			continue
		}
		maxV := b.hist.Max()
		minV := b.hist.Min()
		mean := b.hist.Mean()
		p90 := b.hist.ValueAtQuantile(90)
		p99 := b.hist.ValueAtQuantile(99)
		p999 := b.hist.ValueAtQuantile(99.9)
		p9999 := b.hist.ValueAtQuantile(99.99)
		b.mu.Unlock()

		fmt.Fprintf(&sb, " [%s: Count=%d Max=%s Min=%s Avg=%s 90=%s 99=%s 99.9=%s 99.99=%s]",
			ycsb.OpKind(i).String(),
			cnt,
			formatMicros(float64(maxV)/1000.0),
			formatMicros(float64(minV)/1000.0),
			formatMicros(mean/1000.0),
			formatMicros(float64(p90)/1000.0),
			formatMicros(float64(p99)/1000.0),
			formatMicros(float64(p999)/1000.0),
			formatMicros(float64(p9999)/1000.0),
		)
		total += cnt
	}
	return strconv.FormatInt(total, 10) + sb.String()
}
