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

// Package main provides the entry point for ycsbgo, a synthetic
// key/value workload driver: it loads a dataset into a pluggable
// record-store backend, then replays a configurable mix of read,
// update, insert, scan, read-modify-write and delete transactions
// against it, reporting latency and throughput measurements.
//
// Usage:
//
//	ycsbgo -load -db basic -P workloads/workloada -threads 8
//	ycsbgo -run -db redis -P workloads/workloada -p redis.addrs=127.0.0.1:6379 -threads 16 -s
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ycsbgo/internal/config"
	"ycsbgo/internal/driver"
	"ycsbgo/internal/store"
	"ycsbgo/internal/telemetry"
	"ycsbgo/pkg/measurement"
	"ycsbgo/pkg/workload"
	"ycsbgo/pkg/ycsb"
)

func main() {
	cli, props := config.MustParse(os.Args[1:])

	if !cli.Load && !cli.Run {
		fmt.Fprintln(os.Stderr, "ycsbgo: one of -load or -run (-t) is required")
		os.Exit(2)
	}

	if cli.MetricsAddr != "" {
		telemetry.Enable(cli.MetricsAddr)
	}

	wlCfg := workload.LoadConfig(props)
	shared := workload.NewShared(wlCfg)

	db, err := store.Build(cli.DBName, props)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ycsbgo: building %q backend: %v\n", cli.DBName, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		fmt.Fprintln(os.Stderr, "ycsbgo: received shutdown signal, stopping after in-flight operations")
		cancel()
	}()

	if err := db.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ycsbgo: initializing %q backend: %v\n", cli.DBName, err)
		os.Exit(1)
	}
	defer func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		if err := db.Cleanup(cleanupCtx); err != nil {
			fmt.Fprintf(os.Stderr, "ycsbgo: cleaning up %q backend: %v\n", cli.DBName, err)
		}
	}()

	m, err := measurement.New(props)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ycsbgo: building measurements: %v\n", err)
		os.Exit(1)
	}

	statusInterval := time.Duration(0)
	if cli.Status {
		statusInterval = time.Second
	}

	if cli.Load {
		phaseCfg := driver.Config{
			Threads:        cli.Threads,
			TotalOps:       int64(wlCfg.RecordCount),
			StatusInterval: statusInterval,
		}
		elapsed, ops, err := driver.Run(ctx, phaseCfg, wlCfg, shared, db, m, func(w *workload.Workload, wrapped *ycsb.Wrapper) bool {
			return w.DoInsert(ctx, wrapped)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "ycsbgo: load phase: %v\n", err)
			os.Exit(1)
		}
		printSummary("load", elapsed, ops)
		fmt.Fprintln(os.Stderr, m.GetStatusMsg())

		if sleep := props.GetInt64("sleepafterload", 0); sleep > 0 {
			time.Sleep(time.Duration(sleep) * time.Second)
		}
		if cli.Run {
			m.Reset()
		}
	}

	if cli.Run {
		phaseCfg := driver.Config{
			Threads:         cli.Threads,
			TotalOps:        int64(wlCfg.OperationCount),
			TargetOpsPerSec: props.GetInt64("limit.ops", 0),
			RateFile:        cli.RateFile,
			StatusInterval:  statusInterval,
		}
		elapsed, ops, err := driver.Run(ctx, phaseCfg, wlCfg, shared, db, m, func(w *workload.Workload, wrapped *ycsb.Wrapper) bool {
			return w.DoTransaction(ctx, wrapped)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "ycsbgo: run phase: %v\n", err)
			os.Exit(1)
		}
		printSummary("run", elapsed, ops)
		fmt.Fprintln(os.Stderr, m.GetStatusMsg())
	}
}

func printSummary(phase string, elapsed time.Duration, ops int64) {
	seconds := elapsed.Seconds()
	var throughput float64
	if seconds > 0 {
		throughput = float64(ops) / seconds
	}
	fmt.Printf("[%s] runtime=%.3fs ops=%d throughput=%.1f ops/sec\n", phase, seconds, ops, throughput)
}
