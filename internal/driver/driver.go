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

// Package driver runs the load and transaction phases across a pool of
// worker goroutines: splitting the requested operation count across
// threads, driving each through pkg/workload against a shared record
// store, and running the optional status-printing and rate-change
// background loops alongside them.
package driver

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"ycsbgo/internal/telemetry"
	"ycsbgo/pkg/measurement"
	"ycsbgo/pkg/ratelimit"
	"ycsbgo/pkg/workload"
	"ycsbgo/pkg/ycsb"
)

// Config controls one phase's run (load or transactions).
type Config struct {
	Threads int
	// TotalOps is the number of operations to perform across all threads
	// this phase. For the load phase this is the record count; for the
	// transaction phase it is the configured operation count.
	TotalOps int64

	// TargetOpsPerSec is the combined rate limit across all threads, 0
	// meaning unbounded. RateFile, if non-empty, changes that rate on a
	// schedule while the phase runs; it has no effect when TargetOpsPerSec
	// is 0, since no limiter exists then.
	TargetOpsPerSec int64
	RateFile        string

	// StatusInterval, when non-zero, prints m.GetStatusMsg() on this
	// period until the phase completes.
	StatusInterval time.Duration
}

// Run drives cfg.TotalOps operations of one phase (determined by op,
// either a load-phase insert or a run-phase transaction) across
// cfg.Threads worker goroutines, each with its own pkg/workload.Workload
// borrowing the shared counters in shared. db is wrapped once per worker
// so every worker's calls are timed independently; callers own db's
// Init/Cleanup lifecycle.
func Run(ctx context.Context, cfg Config, wlCfg workload.Config, shared *workload.Shared, db ycsb.DBOperations, m measurement.Measurements, op func(w *workload.Workload, db *ycsb.Wrapper) bool) (time.Duration, int64, error) {
	if cfg.Threads <= 0 {
		cfg.Threads = 1
	}

	var limiter *ratelimit.TokenBucket
	if cfg.TargetOpsPerSec > 0 {
		limiter = ratelimit.New(cfg.TargetOpsPerSec, cfg.TargetOpsPerSec)
	}

	stopBackground := make(chan struct{})
	var bgWG sync.WaitGroup

	if cfg.StatusInterval > 0 {
		bgWG.Add(1)
		go func() {
			defer bgWG.Done()
			statusLoop(stopBackground, cfg.StatusInterval, m)
		}()
	}
	if cfg.RateFile != "" && limiter != nil {
		bgWG.Add(1)
		go func() {
			defer bgWG.Done()
			rateFileLoop(stopBackground, cfg.RateFile, limiter)
		}()
	}

	counts := splitCount(cfg.TotalOps, cfg.Threads)

	start := time.Now()
	var completed int64
	var mu sync.Mutex
	var firstErr error

	var wg sync.WaitGroup
	for i := 0; i < cfg.Threads; i++ {
		n := counts[i]
		if n == 0 {
			continue
		}
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			w, err := workload.New(wlCfg, shared)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("driver: building worker workload: %w", err)
				}
				mu.Unlock()
				return
			}
			wrapped := ycsb.NewWrapper(db, fanoutReporter{m})
			var done int64
			for j := int64(0); j < n; j++ {
				select {
				case <-ctx.Done():
					mu.Lock()
					completed += done
					mu.Unlock()
					return
				default:
				}
				if limiter != nil {
					if err := limiter.Consume(ctx, 1); err != nil {
						mu.Lock()
						completed += done
						mu.Unlock()
						return
					}
				}
				op(w, wrapped)
				done++
			}
			mu.Lock()
			completed += done
			mu.Unlock()
		}(n)
	}
	wg.Wait()
	elapsed := time.Since(start)

	close(stopBackground)
	bgWG.Wait()

	return elapsed, completed, firstErr
}

// fanoutReporter reports every sample to the configured Measurements
// sink and, when enabled, to the Prometheus telemetry exporter.
type fanoutReporter struct {
	m measurement.Measurements
}

func (f fanoutReporter) Report(kind ycsb.OpKind, elapsed time.Duration) {
	f.m.Report(kind, elapsed)
	telemetry.Observe(kind, elapsed)
}

// splitCount divides total operations across n threads so the first
// total%n threads get one extra operation, giving every thread within
// one operation of an even share.
func splitCount(total int64, n int) []int64 {
	counts := make([]int64, n)
	base := total / int64(n)
	rem := total % int64(n)
	for i := 0; i < n; i++ {
		counts[i] = base
		if int64(i) < rem {
			counts[i]++
		}
	}
	return counts
}

func statusLoop(stop <-chan struct{}, interval time.Duration, m measurement.Measurements) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fmt.Fprintln(os.Stderr, m.GetStatusMsg())
		case <-stop:
			return
		}
	}
}

func rateFileLoop(stop <-chan struct{}, path string, limiter *ratelimit.TokenBucket) {
	schedule, err := parseRateFile(path)
	if err != nil || len(schedule) == 0 {
		return
	}
	start := time.Now()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	idx := 0
	for {
		select {
		case <-ticker.C:
			elapsed := int64(time.Since(start).Seconds())
			for idx < len(schedule) && schedule[idx].atSecond <= elapsed {
				limiter.SetRate(schedule[idx].newRate)
				telemetry.SetTargetRate(float64(schedule[idx].newRate))
				idx++
			}
		case <-stop:
			return
		}
	}
}

type rateChange struct {
	atSecond int64
	newRate  int64
}

// parseRateFile reads whitespace-separated "timestamp_sec new_rate"
// pairs, one per line, sorted ascending by timestamp.
func parseRateFile(path string) ([]rateChange, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: reading rate file: %w", err)
	}
	var out []rateChange
	var sec, rate int64
	line := []byte{}
	flush := func() error {
		if len(line) == 0 {
			return nil
		}
		if _, err := fmt.Sscanf(string(line), "%d %d", &sec, &rate); err != nil {
			return fmt.Errorf("driver: parsing rate file line %q: %w", string(line), err)
		}
		out = append(out, rateChange{atSecond: sec, newRate: rate})
		return nil
	}
	for _, b := range data {
		if b == '\n' {
			if err := flush(); err != nil {
				return nil, err
			}
			line = line[:0]
			continue
		}
		line = append(line, b)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}
