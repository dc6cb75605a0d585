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

package generator

import "fmt"

// Int is the minimal contract a FieldLength source needs from its
// underlying sampler.
type Int interface {
	Next() uint64
}

// FieldLength produces value-byte-lengths for record fields: constant(L),
// uniform(1..L), or zipfian(1..L).
type FieldLength struct {
	src Int
}

// NewFieldLength builds a field-length generator for the named
// distribution ("constant", "uniform", "zipfian") with maximum length max.
func NewFieldLength(dist string, max uint64) (*FieldLength, error) {
	switch dist {
	case "", "constant":
		return &FieldLength{src: NewConst(max)}, nil
	case "uniform":
		return &FieldLength{src: NewUniform(1, max)}, nil
	case "zipfian":
		z, err := NewZipfian(1, max)
		if err != nil {
			return nil, err
		}
		return &FieldLength{src: z}, nil
	default:
		return nil, fmt.Errorf("generator: unknown field length distribution %q", dist)
	}
}

// Next draws the next field length.
func (f *FieldLength) Next() uint64 {
	return f.src.Next()
}
