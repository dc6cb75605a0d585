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

const (
	fnvOffsetBasis64 = 0xCBF29CE484222325
	fnvPrime64       = 1099511628211
)

// FNV64 computes the 64-bit FNV-1a hash of an integer, mixing it byte by
// byte (little end first) the way the source key-scrambler and
// scrambled-Zipfian generator do.
func FNV64(value uint64) uint64 {
	hash := uint64(fnvOffsetBasis64)
	for i := 0; i < 8; i++ {
		octet := value & 0x00ff
		value >>= 8
		hash ^= octet
		hash *= fnvPrime64
	}
	return hash
}
