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
	"fmt"
	"strings"

	"ycsbgo/pkg/ycsb"
)

// Properties is the subset of github.com/magiconair/properties.Properties
// the factory needs to configure a backend.
type Properties interface {
	GetString(key, def string) string
}

// Build constructs the record-store backend named by dbName, reading any
// backend-specific settings (addresses, DSNs) from p. dbName is the -db
// flag's value.
func Build(dbName string, p Properties) (ycsb.DBOperations, error) {
	switch dbName {
	case "", "basic":
		return NewBasic(), nil
	case "redis":
		addrs := strings.Split(p.GetString("redis.addrs", "127.0.0.1:6379"), ",")
		return NewRedis(addrs)
	case "postgres":
		dsn := p.GetString("postgres.dsn", "")
		if dsn == "" {
			return nil, fmt.Errorf("store: postgres backend requires postgres.dsn")
		}
		return NewPostgres(dsn), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", dbName)
	}
}
