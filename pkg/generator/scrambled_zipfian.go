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

// scrambledZetan is the precomputed ζ(10^10, 0.99) constant, so
// constructing a ScrambledZipfian with the default skew is O(1) rather
// than summing ten billion terms.
const scrambledZetan = 26.46902820178302

// scrambledRange is the fixed item-count span the inner Zipfian generator
// covers; every sample is scrambled back down into [base, base+numItems).
const scrambledRange = 10000000000

// ScrambledZipfian wraps a Zipfian generator over a fixed large range and
// maps each sample through an FNV-1a hash modulo the real item count, so
// that popular ranks are not spatially adjacent keys.
type ScrambledZipfian struct {
	base     uint64
	numItems uint64
	inner    *Zipfian
}

// NewScrambledZipfian creates a generator over the inclusive range
// [min,max] using the default skew and the precomputed ζ constant.
func NewScrambledZipfian(min, max uint64) (*ScrambledZipfian, error) {
	inner, err := newZipfianWithZeta(0, scrambledRange-1, ZipfianConstDefault, scrambledZetan, scrambledRange)
	if err != nil {
		return nil, err
	}
	return &ScrambledZipfian{base: min, numItems: max - min + 1, inner: inner}, nil
}

// NewScrambledZipfianTheta creates a generator with an explicit skew θ.
// The default θ uses the precomputed ζ constant; any other θ computes ζ
// fresh over the full fixed range.
func NewScrambledZipfianTheta(min, max uint64, theta float64) (*ScrambledZipfian, error) {
	if theta == ZipfianConstDefault {
		return NewScrambledZipfian(min, max)
	}
	inner, err := NewZipfianTheta(0, scrambledRange-1, theta)
	if err != nil {
		return nil, err
	}
	return &ScrambledZipfian{base: min, numItems: max - min + 1, inner: inner}, nil
}

func (s *ScrambledZipfian) scramble(value uint64) uint64 {
	return s.base + FNV64(value)%s.numItems
}

// Next draws the next sample.
func (s *ScrambledZipfian) Next() uint64 {
	return s.scramble(s.inner.Next())
}

// Last returns the most recently drawn sample.
func (s *ScrambledZipfian) Last() uint64 {
	return s.scramble(s.inner.Last())
}
