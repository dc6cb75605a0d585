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

// RandomByte yields printable ASCII bytes (' '..'~') one at a time from a
// six-character buffer, refreshed every six calls from a single random
// 32-bit word via six bit-field extractions of width {5,6,7,5,6,7}; the two
// 7-bit fields are reduced modulo 95 so every byte stays at or below '~'.
// The resulting byte distribution is not uniform but spans the full
// printable range including space.
type RandomByte struct {
	r   *rng
	buf [6]byte
	off int
}

// NewRandomByte creates a generator ready to produce its first byte.
func NewRandomByte() *RandomByte {
	return &RandomByte{r: newRNG(), off: 6}
}

// Next returns the next byte, refilling the buffer when exhausted.
func (g *RandomByte) Next() byte {
	if g.off == 6 {
		bits := g.r.uint32()
		g.buf[0] = byte((bits & 31) + ' ')
		g.buf[1] = byte(((bits >> 5) & 63) + ' ')
		g.buf[2] = byte(((bits>>10)&127)%95 + ' ')
		g.buf[3] = byte(((bits >> 15) & 31) + ' ')
		g.buf[4] = byte(((bits >> 20) & 63) + ' ')
		g.buf[5] = byte(((bits>>25)&127)%95 + ' ')
		g.off = 0
	}
	b := g.buf[g.off]
	g.off++
	return b
}

// Last returns the most recently produced byte.
func (g *RandomByte) Last() byte {
	return g.buf[(g.off-1+6)%6]
}

// Fill writes n random bytes into out (allocating if out is nil/short),
// the convenience entry point BuildValues/BuildSingleValue use.
func (g *RandomByte) Fill(out []byte) {
	for i := range out {
		out[i] = g.Next()
	}
}
