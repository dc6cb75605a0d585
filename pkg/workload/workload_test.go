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
	"context"
	"strconv"
	"sync"
	"testing"

	"ycsbgo/pkg/ycsb"
)

// fakeProperties is an in-memory Properties stub for tests.
type fakeProperties map[string]string

func (f fakeProperties) GetString(key, def string) string {
	if v, ok := f[key]; ok {
		return v
	}
	return def
}
func (f fakeProperties) GetInt64(key string, def int64) int64 {
	if v, ok := f[key]; ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
	}
	return def
}
func (f fakeProperties) GetBool(key string, def bool) bool {
	if v, ok := f[key]; ok {
		return v == "true"
	}
	return def
}
func (f fakeProperties) GetFloat64(key string, def float64) float64 {
	if v, ok := f[key]; ok {
		n, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return n
		}
	}
	return def
}

// fakeDB is an in-memory record store used only by these tests.
type fakeDB struct {
	mu      sync.Mutex
	records map[string]map[string][]byte
}

func newFakeDB() *fakeDB {
	return &fakeDB{records: make(map[string]map[string][]byte)}
}

func (f *fakeDB) Init(ctx context.Context) error    { return nil }
func (f *fakeDB) Cleanup(ctx context.Context) error { return nil }

func (f *fakeDB) Read(ctx context.Context, table, key string, fields []string) (ycsb.Status, []ycsb.Field, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[table+"/"+key]
	if !ok {
		return ycsb.StatusNotFound, nil, nil
	}
	var out []ycsb.Field
	for name, val := range rec {
		out = append(out, ycsb.Field{Name: name, Value: val})
	}
	return ycsb.StatusOK, out, nil
}

func (f *fakeDB) Scan(ctx context.Context, table, startKey string, count int, fields []string) (ycsb.Status, [][]ycsb.Field, error) {
	return ycsb.StatusOK, nil, nil
}

func (f *fakeDB) Update(ctx context.Context, table, key string, values []ycsb.Field) (ycsb.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[table+"/"+key]
	if !ok {
		return ycsb.StatusNotFound, nil
	}
	for _, v := range values {
		rec[v.Name] = v.Value
	}
	return ycsb.StatusOK, nil
}

func (f *fakeDB) Insert(ctx context.Context, table, key string, values []ycsb.Field) (ycsb.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := make(map[string][]byte, len(values))
	for _, v := range values {
		rec[v.Name] = v.Value
	}
	f.records[table+"/"+key] = rec
	return ycsb.StatusOK, nil
}

func (f *fakeDB) Delete(ctx context.Context, table, key string) (ycsb.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, table+"/"+key)
	return ycsb.StatusOK, nil
}

func TestDoInsertThenTransactionRead(t *testing.T) {
	cfg := LoadConfig(fakeProperties{
		"recordcount":    "1000",
		"fieldcount":     "3",
		"insertorder":    "hashed",
		"zeropadding":    "1",
		"readproportion": "1",
	})
	shared := NewShared(cfg)
	wl, err := New(cfg, shared)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	db := ycsb.NewWrapper(newFakeDB(), nil)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		if !wl.DoInsert(ctx, db) {
			t.Fatalf("DoInsert failed at i=%d", i)
		}
	}
	if wl.InsertCounter.Last() != 999 {
		t.Fatalf("InsertCounter.Last() = %d, want 999", wl.InsertCounter.Last())
	}

	for i := 0; i < 10000; i++ {
		if !wl.transactionRead(ctx, db) {
			t.Fatalf("transactionRead failed at i=%d", i)
		}
	}
}

func TestAckGateSafety(t *testing.T) {
	cfg := LoadConfig(fakeProperties{
		"recordcount":       "100",
		"operationcount":    "10000",
		"insertproportion":  "1",
		"requestdistribution": "zipfian",
	})
	shared := NewShared(cfg)
	wl, err := New(cfg, shared)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	db := ycsb.NewWrapper(newFakeDB(), nil)
	ctx := context.Background()

	for i := 0; i < 5000; i++ {
		last := wl.TxInsertCounter.Last()
		keyNum := wl.NextTransactionKeyNum()
		if keyNum > last {
			t.Fatalf("NextTransactionKeyNum returned %d, exceeding watermark %d", keyNum, last)
		}
		wl.transactionInsert(ctx, db)
	}
}
