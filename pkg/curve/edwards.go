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
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
	"github.com/consensys/go-recordscan/pkg/field"
)

// Edwards is a twisted Edwards curve a·x² + y² = 1 + d·x²·y², using extended
// coordinates.  Addition uses the unified formulae of Hisil, Wong, Carter and
// Dawson which are valid for all inputs (including doubling and the identity).
type Edwards struct {
	typ      Type
	field    *field.Field
	a, d     *big.Int
	order    *big.Int
	cofactor *big.Int
	gx, gy   *big.Int
}

var edwardsBls12 = sync.OnceValue(func() *Edwards {
	params := twistededwards.GetEdwardsCurve()
	f := field.EdwardsBls12Base()
	//
	return &Edwards{
		typ:      EdwardsBls12,
		field:    f,
		a:        f.Reduce(big.NewInt(-1)),
		d:        big.NewInt(3021),
		order:    new(big.Int).Set(&params.Order),
		cofactor: big.NewInt(4),
		gx:       params.Base.X.BigInt(new(big.Int)),
		gy:       params.Base.Y.BigInt(new(big.Int)),
	}
})

// Type implementation for Curve interface.
func (c *Edwards) Type() Type {
	return c.typ
}

// Field implementation for Curve interface.
func (c *Edwards) Field() *field.Field {
	return c.field
}

// Order implementation for Curve interface.
func (c *Edwards) Order() *big.Int {
	return new(big.Int).Set(c.order)
}

// Cofactor implementation for Curve interface.
func (c *Edwards) Cofactor() *big.Int {
	return new(big.Int).Set(c.cofactor)
}

// A returns the coefficient a of the curve equation.
func (c *Edwards) A() *big.Int {
	return new(big.Int).Set(c.a)
}

// D returns the coefficient d of the curve equation.
func (c *Edwards) D() *big.Int {
	return new(big.Int).Set(c.d)
}

// Generator implementation for Curve interface.
func (c *Edwards) Generator() Point {
	return c.FromAffine(c.gx, c.gy)
}

// Identity implementation for Curve interface.  This is (0:1:0:1).
func (c *Edwards) Identity() Point {
	return Point{X: big.NewInt(0), Y: big.NewInt(1), T: big.NewInt(0), Z: big.NewInt(1)}
}

// IsIdentity implementation for Curve interface.
func (c *Edwards) IsIdentity(p Point) bool {
	return p.X.Sign() == 0 && p.Y.Cmp(p.Z) == 0
}

// FromAffine implementation for Curve interface.
func (c *Edwards) FromAffine(x, y *big.Int) Point {
	return Point{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
		T: c.field.Mul(x, y),
		Z: big.NewInt(1),
	}
}

// IsOnCurve implementation for Curve interface.
func (c *Edwards) IsOnCurve(x, y *big.Int) bool {
	var (
		f   = c.field
		xx  = f.Square(x)
		yy  = f.Square(y)
		lhs = f.Add(f.Mul(c.a, xx), yy)
		rhs = f.Add(f.One(), f.Mul(c.d, f.Mul(xx, yy)))
	)
	//
	return lhs.Cmp(rhs) == 0
}

// Add implementation for Curve interface (add-2008-hwcd).
func (c *Edwards) Add(p, q Point) Point {
	f := c.field
	// A = X1*X2, B = Y1*Y2, C = T1*d*T2, D = Z1*Z2
	A := f.Mul(p.X, q.X)
	B := f.Mul(p.Y, q.Y)
	C := f.Mul(f.Mul(p.T, c.d), q.T)
	D := f.Mul(p.Z, q.Z)
	// E = (X1+Y1)*(X2+Y2)-A-B
	E := f.Sub(f.Sub(f.Mul(f.Add(p.X, p.Y), f.Add(q.X, q.Y)), A), B)
	F := f.Sub(D, C)
	G := f.Add(D, C)
	// H = B-a*A
	H := f.Sub(B, f.Mul(c.a, A))
	//
	return Point{X: f.Mul(E, F), Y: f.Mul(G, H), T: f.Mul(E, H), Z: f.Mul(F, G)}
}

// Double implementation for Curve interface (dbl-2008-hwcd).
func (c *Edwards) Double(p Point) Point {
	f := c.field
	A := f.Square(p.X)
	B := f.Square(p.Y)
	C := f.Double(f.Square(p.Z))
	D := f.Mul(c.a, A)
	// E = (X1+Y1)²-A-B
	E := f.Sub(f.Sub(f.Square(f.Add(p.X, p.Y)), A), B)
	G := f.Add(D, B)
	F := f.Sub(G, C)
	H := f.Sub(D, B)
	//
	return Point{X: f.Mul(E, F), Y: f.Mul(G, H), T: f.Mul(E, H), Z: f.Mul(F, G)}
}

// Neg implementation for Curve interface.  On a twisted Edwards curve
// -(x,y) = (-x,y).
func (c *Edwards) Neg(p Point) Point {
	return Point{X: c.field.Neg(p.X), Y: new(big.Int).Set(p.Y), T: c.field.Neg(p.T), Z: new(big.Int).Set(p.Z)}
}

// Equal implementation for Curve interface.
func (c *Edwards) Equal(p, q Point) bool {
	f := c.field
	// X1*Z2 = X2*Z1 and Y1*Z2 = Y2*Z1
	return f.Mul(p.X, q.Z).Cmp(f.Mul(q.X, p.Z)) == 0 && f.Mul(p.Y, q.Z).Cmp(f.Mul(q.Y, p.Z)) == 0
}

// ScalarMul implementation for Curve interface.
func (c *Edwards) ScalarMul(p Point, s *big.Int) Point {
	return scalarMul(c, p, s)
}

// DecompressX implementation for Curve interface.  This solves
// y² = (a·x² - 1) / (d·x² - 1) and then resolves the sign of y using subgroup
// membership.  The x-coordinate is assumed to belong to a subgroup element;
// for other inputs the result is unspecified.
func (c *Edwards) DecompressX(x *big.Int) (Point, error) {
	f := c.field
	//
	if !f.IsCanonical(x) {
		return Point{}, errors.Newf("x-coordinate %s not a field element", x)
	}
	//
	xx := f.Square(x)
	num := f.Sub(f.Mul(c.a, xx), f.One())
	den := f.Sub(f.Mul(c.d, xx), f.One())
	yy := f.Mul(num, f.Inverse(den))
	//
	if !f.IsSquare(yy) {
		return Point{}, errors.Wrapf(ErrNonResidue, "no point with x = %s", x)
	}
	//
	return decompress(c, x, f.Sqrt(yy)), nil
}

// ToAffine implementation for Curve interface.
func (c *Edwards) ToAffine(p Point) (*big.Int, *big.Int) {
	f := c.field
	zinv := f.Inverse(p.Z)
	//
	return f.Mul(p.X, zinv), f.Mul(p.Y, zinv)
}
