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
package gpu

import (
	"encoding/binary"
	"math/big"
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/holiman/uint256"
)

// NumLimbs is the number of 32-bit limbs in an element.
const NumLimbs = 8

// Limbs is the kernel representation of a 256-bit value: eight 32-bit limbs in
// big-endian order, so limb 0 is the most significant.
type Limbs [NumLimbs]uint32

// Wide holds the 512-bit product of two elements, again in big-endian order.
type Wide [2 * NumLimbs]uint32

// FromUint256 converts a host integer into limbs.
func FromUint256(v *uint256.Int) Limbs {
	var (
		limbs Limbs
		bytes = v.Bytes32()
	)
	//
	for i := range limbs {
		limbs[i] = binary.BigEndian.Uint32(bytes[4*i:])
	}
	//
	return limbs
}

// FromBig converts an arbitrary precision integer into limbs, failing if it is
// negative or does not fit in 256 bits.
func FromBig(v *big.Int) (Limbs, error) {
	if v.Sign() < 0 {
		return Limbs{}, errors.Newf("negative value %s", v)
	}
	//
	u, overflow := uint256.FromBig(v)
	if overflow {
		return Limbs{}, errors.Newf("value %s exceeds 256 bits", v)
	}
	//
	return FromUint256(u), nil
}

// MustFromBig converts an integer into limbs, panicking if it does not fit.
func MustFromBig(v *big.Int) Limbs {
	limbs, err := FromBig(v)
	if err != nil {
		panic(err)
	}
	//
	return limbs
}

// FromUint32 constructs limbs holding a small constant.
func FromUint32(v uint32) Limbs {
	return Limbs{NumLimbs - 1: v}
}

// Uint256 converts limbs into a host integer.
func (l Limbs) Uint256() *uint256.Int {
	var bytes [32]byte
	//
	for i, limb := range l {
		binary.BigEndian.PutUint32(bytes[4*i:], limb)
	}
	//
	return new(uint256.Int).SetBytes32(bytes[:])
}

// Big converts limbs into an arbitrary precision integer.
func (l Limbs) Big() *big.Int {
	return l.Uint256().ToBig()
}

// IsZero checks whether every limb is zero.
func (l Limbs) IsZero() bool {
	return l == Limbs{}
}

// Bit returns the ith least significant bit.
func (l Limbs) Bit(i int) uint32 {
	return (l[NumLimbs-1-i/32] >> (i % 32)) & 1
}

func (l Limbs) String() string {
	return l.Big().String()
}

// Big converts a wide value into an arbitrary precision integer.
func (w Wide) Big() *big.Int {
	var bytes [8 * NumLimbs]byte
	//
	for i, limb := range w {
		binary.BigEndian.PutUint32(bytes[4*i:], limb)
	}
	//
	return new(big.Int).SetBytes(bytes[:])
}

// widen places an element in the low half of a wide value.
func widen(l Limbs) Wide {
	var w Wide
	//
	copy(w[NumLimbs:], l[:])
	//
	return w
}

// narrow extracts the low half of a wide value.
func narrow(w Wide) Limbs {
	var l Limbs
	//
	copy(l[:], w[NumLimbs:])
	//
	return l
}

// The following operate on big-endian limb slices of equal length.

func compare(a, b []uint32) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	//
	return 0
}

// add sets dst = a + b, returning the carry out.
func add(dst, a, b []uint32) uint32 {
	var carry uint32
	//
	for i := len(a) - 1; i >= 0; i-- {
		dst[i], carry = bits.Add32(a[i], b[i], carry)
	}
	//
	return carry
}

// sub sets dst = a - b, returning the borrow out.
func sub(dst, a, b []uint32) uint32 {
	var borrow uint32
	//
	for i := len(a) - 1; i >= 0; i-- {
		dst[i], borrow = bits.Sub32(a[i], b[i], borrow)
	}
	//
	return borrow
}

func bitLen(a []uint32) int {
	for i, limb := range a {
		if limb != 0 {
			return (len(a)-i-1)*32 + bits.Len32(limb)
		}
	}
	//
	return 0
}

// shiftLeft sets dst = a << k, discarding bits shifted out.
func shiftLeft(dst, a []uint32, k int) {
	var (
		n = len(a)
		q = k / 32
		r = uint(k % 32)
	)
	//
	for i := range n {
		var limb uint32
		//
		if i+q < n {
			limb = a[i+q] << r
		}
		//
		if r > 0 && i+q+1 < n {
			limb |= a[i+q+1] >> (32 - r)
		}
		//
		dst[i] = limb
	}
}

// shiftRightOne sets dst = a >> 1.
func shiftRightOne(dst, a []uint32) {
	for i := len(a) - 1; i >= 0; i-- {
		dst[i] = a[i] >> 1
		//
		if i > 0 {
			dst[i] |= a[i-1] << 31
		}
	}
}
