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

// discreteValue pairs a value with its selection weight.
type discreteValue[T any] struct {
	value  T
	weight float64
}

// Discrete picks among a fixed set of values with weighted probability,
// using a uniform double over [0, totalWeight). Used for the operation-mix
// chooser (T = OpKind in the workload package).
type Discrete[T any] struct {
	r      *rng
	values []discreteValue[T]
	total  float64
	last   T
}

// NewDiscrete creates an empty weighted chooser.
func NewDiscrete[T any]() *Discrete[T] {
	return &Discrete[T]{r: newRNG()}
}

// Add registers value with the given weight. Zero-weight values are still
// recorded but can never be chosen (callers should omit them entirely to
// match the source's "zero-weight kinds are omitted" behaviour).
func (d *Discrete[T]) Add(value T, weight float64) *Discrete[T] {
	d.values = append(d.values, discreteValue[T]{value: value, weight: weight})
	d.total += weight
	return d
}

// Next picks a value proportional to its weight.
func (d *Discrete[T]) Next() T {
	u := d.r.float64() * d.total
	var sum float64
	for _, v := range d.values {
		sum += v.weight
		if u < sum {
			d.last = v.value
			return v.value
		}
	}
	// Floating-point rounding can leave u just past the last boundary;
	// fall back to the final entry.
	d.last = d.values[len(d.values)-1].value
	return d.last
}

// Last returns the most recently chosen value.
func (d *Discrete[T]) Last() T {
	return d.last
}
