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
	"fmt"
	"math/big"
)

// Field is a prime-order field whose elements are represented as arbitrary
// precision integers in the range [0,p).  All operations assume their inputs
// are already reduced and always return freshly allocated, reduced values.  A
// Field is immutable after construction and can be shared freely.
type Field struct {
	name    string
	modulus *big.Int
	// p-2, used for inversion by Fermat's little theorem.
	pMinusTwo *big.Int
	// (p-1)/2, used for Euler's criterion.
	legendre *big.Int
	// Tonelli-Shanks constants
	sqrt SqrtParams
}

// SqrtParams captures the constants used by the Tonelli-Shanks square root for
// a given field, where p-1 = q·2ˢ with q odd.
type SqrtParams struct {
	// Fixed quadratic non-residue used to seed the algorithm.
	NonResidue *big.Int
	// Odd part of p-1.
	Q *big.Int
	// Two-adicity of p-1.
	S uint
	// NonResidue^Q
	C *big.Int
	// (Q+1)/2, the exponent for the initial guess.
	QPlusOneHalf *big.Int
}

// New constructs a field for a given prime modulus, using the given quadratic
// non-residue to seed square root computations.  This panics if the
// non-residue is not actually a non-residue, since that indicates a
// programming error in the field's parameters.
func New(name string, modulus *big.Int, nonResidue uint64) *Field {
	var (
		p   = new(big.Int).Set(modulus)
		one = big.NewInt(1)
		pm1 = new(big.Int).Sub(p, one)
		q   = new(big.Int).Set(pm1)
		s   uint
	)
	// Factor out powers of two
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}
	//
	f := &Field{
		name:      name,
		modulus:   p,
		pMinusTwo: new(big.Int).Sub(p, big.NewInt(2)),
		legendre:  new(big.Int).Rsh(pm1, 1),
	}
	//
	z := new(big.Int).SetUint64(nonResidue)
	if f.IsSquare(z) {
		panic(fmt.Sprintf("%d is a quadratic residue in %s", nonResidue, name))
	}
	//
	f.sqrt = SqrtParams{
		NonResidue:   z,
		Q:            q,
		S:            s,
		C:            new(big.Int).Exp(z, q, p),
		QPlusOneHalf: new(big.Int).Rsh(new(big.Int).Add(q, one), 1),
	}
	//
	return f
}

// Name returns a human-readable name for this field.
func (f *Field) Name() string {
	return f.name
}

// Modulus returns (a copy of) the prime modulus of this field.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// Bits returns the bit length of the modulus.
func (f *Field) Bits() int {
	return f.modulus.BitLen()
}

// SqrtParams returns (a copy of) the Tonelli-Shanks constants of this field.
func (f *Field) SqrtParams() SqrtParams {
	return SqrtParams{
		NonResidue:   new(big.Int).Set(f.sqrt.NonResidue),
		Q:            new(big.Int).Set(f.sqrt.Q),
		S:            f.sqrt.S,
		C:            new(big.Int).Set(f.sqrt.C),
		QPlusOneHalf: new(big.Int).Set(f.sqrt.QPlusOneHalf),
	}
}

// Zero returns the additive identity.
func (f *Field) Zero() *big.Int {
	return new(big.Int)
}

// One returns the multiplicative identity.
func (f *Field) One() *big.Int {
	return big.NewInt(1)
}

// Uint64 constructs an element from a small constant, reducing it if necessary.
func (f *Field) Uint64(v uint64) *big.Int {
	r := new(big.Int).SetUint64(v)
	//
	return r.Mod(r, f.modulus)
}

// Reduce maps an arbitrary (possibly negative) integer into [0,p).
func (f *Field) Reduce(v *big.Int) *big.Int {
	// Mod (unlike Rem) always yields a non-negative result.
	return new(big.Int).Mod(v, f.modulus)
}

// IsCanonical checks whether a given integer is a fully reduced element.
func (f *Field) IsCanonical(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(f.modulus) < 0
}

// Add computes a + b.  Since both inputs are below p, the sum lies in [0,2p)
// and at most one subtraction of p is needed.
func (f *Field) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	if r.Cmp(f.modulus) >= 0 {
		r.Sub(r, f.modulus)
	}
	//
	return r
}

// Sub computes a - b.  Since both inputs are below p, the difference lies in
// (-p,p) and at most one addition of p is needed.
func (f *Field) Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	if r.Sign() < 0 {
		r.Add(r, f.modulus)
	}
	//
	return r
}

// Neg computes -a.
func (f *Field) Neg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	//
	return new(big.Int).Sub(f.modulus, a)
}

// Double computes 2a.
func (f *Field) Double(a *big.Int) *big.Int {
	return f.Add(a, a)
}

// Mul computes a * b.
func (f *Field) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	//
	return r.Mod(r, f.modulus)
}

// Square computes a².
func (f *Field) Square(a *big.Int) *big.Int {
	return f.Mul(a, a)
}

// Pow computes base^exponent using left-to-right square-and-multiply over the
// bits of the exponent.
func (f *Field) Pow(base, exponent *big.Int) *big.Int {
	switch {
	case exponent.Sign() == 0:
		return f.One()
	case exponent.Cmp(big.NewInt(1)) == 0:
		return new(big.Int).Set(base)
	}
	//
	acc := f.One()
	//
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		acc = f.Square(acc)
		if exponent.Bit(i) == 1 {
			acc = f.Mul(acc, base)
		}
	}
	//
	return acc
}

// Inverse computes a⁻¹ as a^(p-2), or 0 if a = 0.
func (f *Field) Inverse(a *big.Int) *big.Int {
	return f.Pow(a, f.pMinusTwo)
}

// IsSquare determines whether a is a quadratic residue (or zero) using Euler's
// criterion.
func (f *Field) IsSquare(a *big.Int) bool {
	if a.Sign() == 0 {
		return true
	}
	//
	return f.Pow(a, f.legendre).Cmp(big.NewInt(1)) == 0
}

// Equal determines whether two elements are equal.
func (f *Field) Equal(a, b *big.Int) bool {
	return a.Cmp(b) == 0
}

// String returns a description of this field.
func (f *Field) String() string {
	return fmt.Sprintf("%s (p=%s)", f.name, f.modulus.String())
}
