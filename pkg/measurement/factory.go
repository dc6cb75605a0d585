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
	"time"

	"ycsbgo/pkg/ycsb"
)

// Measurements is the common contract both implementations satisfy.
type Measurements interface {
	Report(kind ycsb.OpKind, elapsed time.Duration)
	GetStatusMsg() string
	Reset()
}

// properties is the minimal config source the factory needs.
type properties interface {
	GetString(key string, def string) string
	GetInt64(key string, def int64) int64
}

// New builds a Measurements sink keyed off the "measurementtype" property
// ("basic", the default, or "hdrhistogram"), with its warmup window read
// from "measurement.interval_skip_seconds".
func New(p properties) (Measurements, error) {
	skip := p.GetInt64("measurement.interval_skip_seconds", 0)
	switch p.GetString("measurementtype", "basic") {
	case "basic":
		return NewBasic(skip), nil
	case "hdrhistogram":
		return NewHDR(skip), nil
	default:
		return NewBasic(skip), nil
	}
}
