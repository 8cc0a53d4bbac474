// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import (
	"math/big"
	"slices"
)

// ElementBytes is the number of bytes used to serialise an element.
const ElementBytes = 32

// FromBytesLE interprets a byte slice as an unsigned little-endian integer.
// No reduction is applied, hence the result may exceed the modulus of any
// particular field.
func FromBytesLE(bytes []byte) *big.Int {
	be := slices.Clone(bytes)
	slices.Reverse(be)
	//
	return new(big.Int).SetBytes(be)
}

// ToBytesLE serialises a non-negative integer below 2²⁵⁶ into exactly 32 bytes
// in little-endian order.
func ToBytesLE(v *big.Int) []byte {
	var buf [ElementBytes]byte
	//
	v.FillBytes(buf[:])
	slices.Reverse(buf[:])
	//
	return buf[:]
}

// DomainSeparator constructs a field element from the little-endian encoding of
// an ASCII string, reduced modulo p.
func (f *Field) DomainSeparator(domain string) *big.Int {
	return f.Reduce(FromBytesLE([]byte(domain)))
}
