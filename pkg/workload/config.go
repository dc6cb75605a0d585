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

// Properties is the subset of github.com/magiconair/properties's
// *Properties API the workload needs. Accepting an interface keeps this
// package decoupled from the concrete loader in internal/config, and lets
// tests pass an in-memory stub.
type Properties interface {
	GetString(key string, def string) string
	GetInt64(key string, def int64) int64
	GetBool(key string, def bool) bool
	GetFloat64(key string, def float64) float64
}

// Config holds every property the workload core recognizes, resolved from
// a Properties source with the defaults spelled out below.
type Config struct {
	Table            string
	FieldCount       int
	FieldNamePrefix  string
	FieldLengthDist  string
	FieldLength      uint64
	ReadAllFields    bool
	WriteAllFields   bool

	ReadProportion           float64
	UpdateProportion         float64
	InsertProportion         float64
	ScanProportion           float64
	ReadModifyWriteProportion float64
	DeleteProportion         float64

	RequestDistribution string
	ZipfianConst         float64
	ZeroPadding          int

	MinScanLength         uint64
	MaxScanLength         uint64
	ScanLengthDistribution string

	InsertOrderHashed bool
	InsertStart       uint64

	RecordCount    uint64
	OperationCount uint64
}

// LoadConfig resolves a Config from p, applying the spec's documented
// defaults for every property it does not set.
func LoadConfig(p Properties) Config {
	return Config{
		Table:           p.GetString("table", "usertable"),
		FieldCount:      int(p.GetInt64("fieldcount", 10)),
		FieldNamePrefix: p.GetString("fieldnameprefix", "field"),
		FieldLengthDist: p.GetString("field_len_dist", "constant"),
		FieldLength:     uint64(p.GetInt64("fieldlength", 100)),
		ReadAllFields:   p.GetBool("readallfields", true),
		WriteAllFields:  p.GetBool("writeallfields", false),

		ReadProportion:            p.GetFloat64("readproportion", 0.95),
		UpdateProportion:          p.GetFloat64("updateproportion", 0.05),
		InsertProportion:          p.GetFloat64("insertproportion", 0.0),
		ScanProportion:            p.GetFloat64("scanproportion", 0.0),
		ReadModifyWriteProportion: p.GetFloat64("readmodifywriteproportion", 0.0),
		DeleteProportion:          p.GetFloat64("deleteproportion", 0.0),

		RequestDistribution: p.GetString("requestdistribution", "uniform"),
		ZipfianConst:        p.GetFloat64("zipfian_const", 0.99),
		ZeroPadding:         int(p.GetInt64("zeropadding", 1)),

		MinScanLength:          uint64(p.GetInt64("minscanlength", 1)),
		MaxScanLength:          uint64(p.GetInt64("maxscanlength", 1000)),
		ScanLengthDistribution: p.GetString("scanlengthdistribution", "uniform"),

		InsertOrderHashed: p.GetString("insertorder", "hashed") == "hashed",
		InsertStart:       uint64(p.GetInt64("insertstart", 0)),

		RecordCount:    uint64(p.GetInt64("recordcount", 0)),
		OperationCount: uint64(p.GetInt64("operationcount", 0)),
	}
}
