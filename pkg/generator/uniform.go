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

// Uniform draws a uniform integer in the inclusive range [min,max]. Not
// safe for concurrent use by multiple goroutines; each worker owns its own
// instance.
type Uniform struct {
	r        *rng
	min, max uint64
	last     uint64
}

// NewUniform creates a Uniform generator over the inclusive range [min,max].
func NewUniform(min, max uint64) *Uniform {
	u := &Uniform{r: newRNG(), min: min, max: max}
	u.Next()
	return u
}

// Next draws and returns the next sample.
func (u *Uniform) Next() uint64 {
	u.last = u.r.uint64Range(u.min, u.max)
	return u.last
}

// Last returns the most recently drawn sample.
func (u *Uniform) Last() uint64 {
	return u.last
}

// Const always returns the same fixed value. Used where the spec calls for
// a degenerate field-length or key distribution.
type Const struct {
	value uint64
}

// NewConst creates a generator that always yields value.
func NewConst(value uint64) *Const {
	return &Const{value: value}
}

func (c *Const) Next() uint64 { return c.value }
func (c *Const) Last() uint64 { return c.value }
