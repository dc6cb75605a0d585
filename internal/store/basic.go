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

// Package store holds the concrete record-store backends the CLI can
// select with -db: an always-available in-memory map, and the optional
// redis- and postgres-backed demo adapters.
package store

import (
	"context"
	"sort"
	"sync"

	"ycsbgo/pkg/ycsb"
)

// Basic is an in-memory, process-local record store. Grounded on the
// sync.Map-backed GetOrCreate idiom the teacher's key/value store uses,
// adapted to hold full YCSB-style records instead of rate-vector state.
type Basic struct {
	mu     sync.RWMutex
	tables map[string]map[string]map[string][]byte
}

// NewBasic creates an empty in-memory store.
func NewBasic() *Basic {
	return &Basic{tables: make(map[string]map[string]map[string][]byte)}
}

func (b *Basic) Init(ctx context.Context) error    { return nil }
func (b *Basic) Cleanup(ctx context.Context) error { return nil }

func (b *Basic) table(name string) map[string]map[string][]byte {
	t, ok := b.tables[name]
	if !ok {
		t = make(map[string]map[string][]byte)
		b.tables[name] = t
	}
	return t
}

func (b *Basic) Read(ctx context.Context, table, key string, fields []string) (ycsb.Status, []ycsb.Field, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rec, ok := b.tables[table][key]
	if !ok {
		return ycsb.StatusNotFound, nil, nil
	}
	return ycsb.StatusOK, selectFields(rec, fields), nil
}

func (b *Basic) Scan(ctx context.Context, table, startKey string, count int, fields []string) (ycsb.Status, [][]ycsb.Field, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.tables[table]
	if !ok {
		return ycsb.StatusNotFound, nil, nil
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start := sort.SearchStrings(keys, startKey)
	var out [][]ycsb.Field
	for i := start; i < len(keys) && len(out) < count; i++ {
		out = append(out, selectFields(t[keys[i]], fields))
	}
	return ycsb.StatusOK, out, nil
}

func (b *Basic) Update(ctx context.Context, table, key string, values []ycsb.Field) (ycsb.Status, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := b.table(table)
	rec, ok := t[key]
	if !ok {
		return ycsb.StatusNotFound, nil
	}
	for _, v := range values {
		rec[v.Name] = v.Value
	}
	return ycsb.StatusOK, nil
}

func (b *Basic) Insert(ctx context.Context, table, key string, values []ycsb.Field) (ycsb.Status, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := b.table(table)
	rec := make(map[string][]byte, len(values))
	for _, v := range values {
		rec[v.Name] = v.Value
	}
	t[key] = rec
	return ycsb.StatusOK, nil
}

func (b *Basic) Delete(ctx context.Context, table, key string) (ycsb.Status, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.tables[table]
	if !ok {
		return ycsb.StatusNotFound, nil
	}
	if _, ok := t[key]; !ok {
		return ycsb.StatusNotFound, nil
	}
	delete(t, key)
	return ycsb.StatusOK, nil
}

func selectFields(rec map[string][]byte, fields []string) []ycsb.Field {
	if len(fields) == 0 {
		out := make([]ycsb.Field, 0, len(rec))
		for name, val := range rec {
			out = append(out, ycsb.Field{Name: name, Value: val})
		}
		return out
	}
	out := make([]ycsb.Field, 0, len(fields))
	for _, name := range fields {
		if v, ok := rec[name]; ok {
			out = append(out, ycsb.Field{Name: name, Value: v})
		}
	}
	return out
}
