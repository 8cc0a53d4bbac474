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
	"math/big"

	"github.com/consensys/go-recordscan/pkg/field"
)

// FieldConstants holds the per-field constants uploaded alongside every field
// kernel.
type FieldConstants struct {
	Modulus Limbs
	// p-2
	PMinusTwo Limbs
	// (p-1)/2
	Legendre Limbs
	// Tonelli-Shanks constants, where p-1 = q·2ˢ.
	Q            Limbs
	S            uint32
	C            Limbs
	QPlusOneHalf Limbs
}

// NewFieldConstants converts the constants of a host field into limbs.
func NewFieldConstants(f *field.Field) *FieldConstants {
	var (
		p    = f.Modulus()
		sqrt = f.SqrtParams()
	)
	//
	return &FieldConstants{
		Modulus:      MustFromBig(p),
		PMinusTwo:    MustFromBig(new(big.Int).Sub(p, big.NewInt(2))),
		Legendre:     MustFromBig(new(big.Int).Rsh(p, 1)),
		Q:            MustFromBig(sqrt.Q),
		S:            uint32(sqrt.S),
		C:            MustFromBig(sqrt.C),
		QPlusOneHalf: MustFromBig(sqrt.QPlusOneHalf),
	}
}

// FieldAdd computes a + b (mod p) for a, b < p.
func FieldAdd(a, b, p Limbs) Limbs {
	var r Limbs
	//
	carry := add(r[:], a[:], b[:])
	//
	if carry != 0 || compare(r[:], p[:]) >= 0 {
		sub(r[:], r[:], p[:])
	}
	//
	return r
}

// FieldSub computes a - b (mod p) for a, b < p.
func FieldSub(a, b, p Limbs) Limbs {
	var r Limbs
	//
	if borrow := sub(r[:], a[:], b[:]); borrow != 0 {
		add(r[:], r[:], p[:])
	}
	//
	return r
}

// FieldMultiply computes the full 512-bit product a·b using schoolbook
// multiplication.
func FieldMultiply(a, b Limbs) Wide {
	// Accumulate in little-endian order
	var acc [2 * NumLimbs]uint32
	//
	for i := range NumLimbs {
		var (
			ai    = uint64(a[NumLimbs-1-i])
			carry uint64
		)
		//
		for j := range NumLimbs {
			t := ai*uint64(b[NumLimbs-1-j]) + uint64(acc[i+j]) + carry
			acc[i+j] = uint32(t)
			carry = t >> 32
		}
		//
		acc[i+NumLimbs] = uint32(carry)
	}
	//
	var w Wide
	//
	for i, limb := range acc {
		w[len(w)-1-i] = limb
	}
	//
	return w
}

// FieldReduce computes w (mod p) by shift-and-subtract: p is aligned with the
// most significant bit of w, and then subtracted (if possible) at each smaller
// alignment in turn.
func FieldReduce(w Wide, p Limbs) Limbs {
	var (
		pw    = widen(p)
		shift = bitLen(w[:]) - bitLen(pw[:])
		t     Wide
	)
	//
	if shift < 0 {
		return narrow(w)
	}
	//
	shiftLeft(t[:], pw[:], shift)
	//
	for k := shift; k >= 0; k-- {
		if compare(w[:], t[:]) >= 0 {
			sub(w[:], w[:], t[:])
		}
		//
		shiftRightOne(t[:], t[:])
	}
	//
	return narrow(w)
}

// FieldModulusFieldMultiply computes a·b (mod p).
func FieldModulusFieldMultiply(a, b, p Limbs) Limbs {
	return FieldReduce(FieldMultiply(a, b), p)
}

// FieldModulusFieldReduce reduces an arbitrary 256-bit value modulo p.
func FieldModulusFieldReduce(a, p Limbs) Limbs {
	return FieldReduce(widen(a), p)
}

// FieldSquare computes a² (mod p).
func FieldSquare(a, p Limbs) Limbs {
	return FieldModulusFieldMultiply(a, a, p)
}

// FieldPow computes base^exponent (mod p) by left-to-right square-and-multiply,
// starting from the most significant set bit of the exponent.
func FieldPow(base, exponent, p Limbs) Limbs {
	acc := FromUint32(1)
	//
	for i := bitLen(exponent[:]) - 1; i >= 0; i-- {
		acc = FieldSquare(acc, p)
		//
		if exponent.Bit(i) == 1 {
			acc = FieldModulusFieldMultiply(acc, base, p)
		}
	}
	//
	return acc
}

// FieldInverse computes a⁻¹ (mod p) as a^(p-2), giving 0 for a = 0.
func FieldInverse(a Limbs, fc *FieldConstants) Limbs {
	return FieldPow(a, fc.PMinusTwo, fc.Modulus)
}

// FieldIsSquare determines whether a is zero or a quadratic residue.
func FieldIsSquare(a Limbs, fc *FieldConstants) bool {
	return a.IsZero() || FieldPow(a, fc.Legendre, fc.Modulus) == FromUint32(1)
}

// FieldSqrt computes a square root of a by Tonelli-Shanks, returning zero when
// a is not a quadratic residue.  This selects the same root as the host
// engine.
func FieldSqrt(a Limbs, fc *FieldConstants) Limbs {
	if a.IsZero() {
		return a
	}
	//
	var (
		p   = fc.Modulus
		one = FromUint32(1)
		m   = fc.S
		c   = fc.C
		t   = FieldPow(a, fc.Q, p)
		r   = FieldPow(a, fc.QPlusOneHalf, p)
	)
	//
	for t != one {
		var i uint32
		// Find least i such that t^(2^i) = 1
		for tt := t; tt != one; i++ {
			if i+1 == m {
				return Limbs{}
			}
			//
			tt = FieldSquare(tt, p)
		}
		//
		b := c
		for j := uint32(0); j < m-i-1; j++ {
			b = FieldSquare(b, p)
		}
		//
		r = FieldModulusFieldMultiply(r, b, p)
		c = FieldSquare(b, p)
		t = FieldModulusFieldMultiply(t, c, p)
		m = i
	}
	//
	return r
}
