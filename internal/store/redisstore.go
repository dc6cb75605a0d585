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

package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/dgryski/go-rendezvous"
	"github.com/redis/go-redis/v9"

	"ycsbgo/pkg/ycsb"
)

// Redis is a record-store backend over one or more Redis endpoints, each
// table+key routed to an endpoint by rendezvous hashing so the mapping
// stays stable as nodes are added or removed. Each record is stored as a
// Redis hash keyed by "ycsb:<table>:<key>", fields as hash fields.
type Redis struct {
	clients []*redis.Client
	router  *rendezvous.Rendezvous
}

// NewRedis connects to every address in addrs and builds the rendezvous
// router across them. A single address is the common case; more than one
// shards records deterministically.
func NewRedis(addrs []string) (*Redis, error) {
	if len(addrs) == 0 {
		return nil, fmt.Errorf("store: redis backend requires at least one address")
	}
	clients := make([]*redis.Client, len(addrs))
	nodes := make([]string, len(addrs))
	for i, addr := range addrs {
		clients[i] = redis.NewClient(&redis.Options{Addr: addr})
		nodes[i] = addr
	}
	sort.Strings(nodes)
	router := rendezvous.New(nodes, hashString)
	return &Redis{clients: clients, router: router}, nil
}

func hashString(s string) uint64 {
	var h uint64 = 0xcbf29ce484222325
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

func (r *Redis) clientFor(table, key string) *redis.Client {
	addr := r.router.Lookup(table + "/" + key)
	for _, c := range r.clients {
		if c.Options().Addr == addr {
			return c
		}
	}
	return r.clients[0]
}

func recordKey(table, key string) string {
	return fmt.Sprintf("ycsb:%s:%s", table, key)
}

func (r *Redis) Init(ctx context.Context) error {
	for _, c := range r.clients {
		if err := c.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("store: redis ping %s: %w", c.Options().Addr, err)
		}
	}
	return nil
}

func (r *Redis) Cleanup(ctx context.Context) error {
	for _, c := range r.clients {
		if err := c.Close(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Redis) Read(ctx context.Context, table, key string, fields []string) (ycsb.Status, []ycsb.Field, error) {
	c := r.clientFor(table, key)
	m, err := c.HGetAll(ctx, recordKey(table, key)).Result()
	if err != nil {
		return ycsb.StatusError, nil, err
	}
	if len(m) == 0 {
		return ycsb.StatusNotFound, nil, nil
	}
	return ycsb.StatusOK, filterStringMap(m, fields), nil
}

func (r *Redis) Scan(ctx context.Context, table, startKey string, count int, fields []string) (ycsb.Status, [][]ycsb.Field, error) {
	// Redis offers no ordered-key scan over hash records without a
	// secondary sorted index; treating scan as unsupported keeps this
	// demo backend honest about what it actually provides.
	return ycsb.StatusNotImplemented, nil, nil
}

func (r *Redis) Update(ctx context.Context, table, key string, values []ycsb.Field) (ycsb.Status, error) {
	c := r.clientFor(table, key)
	n, err := c.Exists(ctx, recordKey(table, key)).Result()
	if err != nil {
		return ycsb.StatusError, err
	}
	if n == 0 {
		return ycsb.StatusNotFound, nil
	}
	if err := c.HSet(ctx, recordKey(table, key), toArgs(values)...).Err(); err != nil {
		return ycsb.StatusError, err
	}
	return ycsb.StatusOK, nil
}

func (r *Redis) Insert(ctx context.Context, table, key string, values []ycsb.Field) (ycsb.Status, error) {
	c := r.clientFor(table, key)
	if err := c.HSet(ctx, recordKey(table, key), toArgs(values)...).Err(); err != nil {
		return ycsb.StatusError, err
	}
	return ycsb.StatusOK, nil
}

func (r *Redis) Delete(ctx context.Context, table, key string) (ycsb.Status, error) {
	c := r.clientFor(table, key)
	n, err := c.Del(ctx, recordKey(table, key)).Result()
	if err != nil {
		return ycsb.StatusError, err
	}
	if n == 0 {
		return ycsb.StatusNotFound, nil
	}
	return ycsb.StatusOK, nil
}

func toArgs(values []ycsb.Field) []interface{} {
	args := make([]interface{}, 0, len(values)*2)
	for _, v := range values {
		args = append(args, v.Name, v.Value)
	}
	return args
}

func filterStringMap(m map[string]string, fields []string) []ycsb.Field {
	if len(fields) == 0 {
		out := make([]ycsb.Field, 0, len(m))
		for name, val := range m {
			out = append(out, ycsb.Field{Name: name, Value: []byte(val)})
		}
		return out
	}
	out := make([]ycsb.Field, 0, len(fields))
	for _, name := range fields {
		if v, ok := m[name]; ok {
			out = append(out, ycsb.Field{Name: name, Value: []byte(v)})
		}
	}
	return out
}
