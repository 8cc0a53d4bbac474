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
package curve

import (
	"math/big"
	"sync"

	"github.com/cockroachdb/errors"
	bnecc "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/go-recordscan/pkg/field"
)

// Weierstrass is a short Weierstrass curve y² = x³ + a·x + b using Jacobian
// coordinates.  Points with Z = 0 represent the identity.
type Weierstrass struct {
	typ      Type
	field    *field.Field
	a, b     *big.Int
	order    *big.Int
	cofactor *big.Int
	gx, gy   *big.Int
}

var bn254Curve = sync.OnceValue(func() *Weierstrass {
	_, _, g1, _ := bnecc.Generators()
	//
	return &Weierstrass{
		typ:      BN254,
		field:    field.BN254Base(),
		a:        big.NewInt(0),
		b:        big.NewInt(3),
		order:    fr.Modulus(),
		cofactor: big.NewInt(1),
		gx:       g1.X.BigInt(new(big.Int)),
		gy:       g1.Y.BigInt(new(big.Int)),
	}
})

// Type implementation for Curve interface.
func (c *Weierstrass) Type() Type {
	return c.typ
}

// Field implementation for Curve interface.
func (c *Weierstrass) Field() *field.Field {
	return c.field
}

// Order implementation for Curve interface.
func (c *Weierstrass) Order() *big.Int {
	return new(big.Int).Set(c.order)
}

// Cofactor implementation for Curve interface.
func (c *Weierstrass) Cofactor() *big.Int {
	return new(big.Int).Set(c.cofactor)
}

// Generator implementation for Curve interface.
func (c *Weierstrass) Generator() Point {
	return c.FromAffine(c.gx, c.gy)
}

// Identity implementation for Curve interface.  This is (0:1:0).
func (c *Weierstrass) Identity() Point {
	return Point{X: big.NewInt(0), Y: big.NewInt(1), Z: big.NewInt(0)}
}

// IsIdentity implementation for Curve interface.
func (c *Weierstrass) IsIdentity(p Point) bool {
	return p.Z.Sign() == 0
}

// FromAffine implementation for Curve interface.
func (c *Weierstrass) FromAffine(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y), Z: big.NewInt(1)}
}

// IsOnCurve implementation for Curve interface.
func (c *Weierstrass) IsOnCurve(x, y *big.Int) bool {
	f := c.field
	//
	return f.Square(y).Cmp(c.rhs(x)) == 0
}

// Add implementation for Curve interface (add-2007-bl).
func (c *Weierstrass) Add(p, q Point) Point {
	switch {
	case c.IsIdentity(p):
		return q
	case c.IsIdentity(q):
		return p
	}
	//
	f := c.field
	Z1Z1 := f.Square(p.Z)
	Z2Z2 := f.Square(q.Z)
	U1 := f.Mul(p.X, Z2Z2)
	U2 := f.Mul(q.X, Z1Z1)
	S1 := f.Mul(f.Mul(p.Y, q.Z), Z2Z2)
	S2 := f.Mul(f.Mul(q.Y, p.Z), Z1Z1)
	H := f.Sub(U2, U1)
	// Same x-coordinate, hence either p = q or p = -q.
	if H.Sign() == 0 {
		if S1.Cmp(S2) == 0 {
			return c.Double(p)
		}
		//
		return c.Identity()
	}
	//
	I := f.Square(f.Double(H))
	J := f.Mul(H, I)
	r := f.Double(f.Sub(S2, S1))
	V := f.Mul(U1, I)
	// X3 = r²-J-2V
	X3 := f.Sub(f.Sub(f.Square(r), J), f.Double(V))
	// Y3 = r(V-X3)-2·S1·J
	Y3 := f.Sub(f.Mul(r, f.Sub(V, X3)), f.Double(f.Mul(S1, J)))
	// Z3 = ((Z1+Z2)²-Z1Z1-Z2Z2)·H
	Z3 := f.Mul(f.Sub(f.Sub(f.Square(f.Add(p.Z, q.Z)), Z1Z1), Z2Z2), H)
	//
	return Point{X: X3, Y: Y3, Z: Z3}
}

// Double implementation for Curve interface (dbl-2007-bl).
func (c *Weierstrass) Double(p Point) Point {
	if c.IsIdentity(p) || p.Y.Sign() == 0 {
		return c.Identity()
	}
	//
	f := c.field
	XX := f.Square(p.X)
	YY := f.Square(p.Y)
	YYYY := f.Square(YY)
	ZZ := f.Square(p.Z)
	// S = 2((X1+YY)²-XX-YYYY)
	S := f.Double(f.Sub(f.Sub(f.Square(f.Add(p.X, YY)), XX), YYYY))
	// M = 3XX+a·ZZ²
	M := f.Add(f.Add(f.Double(XX), XX), f.Mul(c.a, f.Square(ZZ)))
	T := f.Sub(f.Square(M), f.Double(S))
	// Y3 = M(S-T)-8YYYY
	Y3 := f.Sub(f.Mul(M, f.Sub(S, T)), f.Double(f.Double(f.Double(YYYY))))
	// Z3 = (Y1+Z1)²-YY-ZZ
	Z3 := f.Sub(f.Sub(f.Square(f.Add(p.Y, p.Z)), YY), ZZ)
	//
	return Point{X: T, Y: Y3, Z: Z3}
}

// Neg implementation for Curve interface.
func (c *Weierstrass) Neg(p Point) Point {
	return Point{X: new(big.Int).Set(p.X), Y: c.field.Neg(p.Y), Z: new(big.Int).Set(p.Z)}
}

// Equal implementation for Curve interface.
func (c *Weierstrass) Equal(p, q Point) bool {
	switch {
	case c.IsIdentity(p) || c.IsIdentity(q):
		return c.IsIdentity(p) && c.IsIdentity(q)
	}
	//
	f := c.field
	Z1Z1 := f.Square(p.Z)
	Z2Z2 := f.Square(q.Z)
	// X1·Z2² = X2·Z1² and Y1·Z2³ = Y2·Z1³
	if f.Mul(p.X, Z2Z2).Cmp(f.Mul(q.X, Z1Z1)) != 0 {
		return false
	}
	//
	return f.Mul(p.Y, f.Mul(Z2Z2, q.Z)).Cmp(f.Mul(q.Y, f.Mul(Z1Z1, p.Z))) == 0
}

// ScalarMul implementation for Curve interface.
func (c *Weierstrass) ScalarMul(p Point, s *big.Int) Point {
	return scalarMul(c, p, s)
}

// DecompressX implementation for Curve interface.
func (c *Weierstrass) DecompressX(x *big.Int) (Point, error) {
	f := c.field
	//
	if !f.IsCanonical(x) {
		return Point{}, errors.Newf("x-coordinate %s not a field element", x)
	}
	//
	yy := c.rhs(x)
	//
	if !f.IsSquare(yy) {
		return Point{}, errors.Wrapf(ErrNonResidue, "no point with x = %s", x)
	}
	//
	return decompress(c, x, f.Sqrt(yy)), nil
}

// ToAffine implementation for Curve interface.  The identity maps onto (0,0),
// which is not itself on the curve.
func (c *Weierstrass) ToAffine(p Point) (*big.Int, *big.Int) {
	if c.IsIdentity(p) {
		return big.NewInt(0), big.NewInt(0)
	}
	//
	f := c.field
	zinv := f.Inverse(p.Z)
	zinv2 := f.Square(zinv)
	//
	return f.Mul(p.X, zinv2), f.Mul(p.Y, f.Mul(zinv2, zinv))
}

// rhs computes x³ + a·x + b.
func (c *Weierstrass) rhs(x *big.Int) *big.Int {
	f := c.field
	//
	return f.Add(f.Add(f.Mul(f.Square(x), x), f.Mul(c.a, x)), c.b)
}
