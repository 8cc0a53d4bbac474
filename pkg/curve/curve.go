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
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/field"
)

// ErrUnsupportedCurve is returned when a curve type has no implementation.
var ErrUnsupportedCurve = errors.New("unsupported curve")

// ErrNonResidue is returned when an x-coordinate has no corresponding point,
// because the right-hand side of the curve equation is not a square.
var ErrNonResidue = errors.New("not a quadratic residue")

// Type identifies one of the (fixed) curve parameterizations.
type Type uint8

const (
	// EdwardsBls12 is the twisted Edwards curve -x² + y² = 1 + 3021·x²·y²
	// defined over the scalar field of BLS12-377.
	EdwardsBls12 Type = iota
	// BN254 is the short Weierstrass curve y² = x³ + 3 (i.e. G1 of BN254).
	BN254
)

// Types lists all supported curve types.
var Types = []Type{EdwardsBls12, BN254}

func (t Type) String() string {
	switch t {
	case EdwardsBls12:
		return "edwards-bls12"
	case BN254:
		return "bn254"
	default:
		return fmt.Sprintf("curve(%d)", uint8(t))
	}
}

// ParseType parses the name of a curve type, as given by String().
func ParseType(name string) (Type, error) {
	for _, t := range Types {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	//
	return 0, errors.Wrapf(ErrUnsupportedCurve, "unknown curve %q", name)
}

// Point is a curve point in projective form.  For twisted Edwards curves this
// is the extended representation (X:Y:T:Z) with x=X/Z, y=Y/Z and x·y=T/Z.  For
// short Weierstrass curves this is the Jacobian representation (X:Y:Z) with
// x=X/Z² and y=Y/Z³, and T is unused.  Points are never mutated in place.
type Point struct {
	X, Y, Z, T *big.Int
}

func (p Point) String() string {
	if p.T == nil {
		return fmt.Sprintf("(%s:%s:%s)", p.X, p.Y, p.Z)
	}
	//
	return fmt.Sprintf("(%s:%s:%s:%s)", p.X, p.Y, p.T, p.Z)
}

// Curve provides arithmetic over the points of one curve.  Implementations are
// selected once by New() and are safe for concurrent use.
type Curve interface {
	// Type of this curve.
	Type() Type
	// Field over which this curve is defined.
	Field() *field.Field
	// Order of the prime-order subgroup.
	Order() *big.Int
	// Cofactor of this curve.
	Cofactor() *big.Int
	// Generator of the prime-order subgroup.
	Generator() Point
	// Identity returns the canonical identity element.
	Identity() Point
	// IsIdentity checks whether a point (in any projective form) is the
	// identity.
	IsIdentity(p Point) bool
	// FromAffine lifts affine coordinates into projective form.
	FromAffine(x, y *big.Int) Point
	// IsOnCurve checks whether affine coordinates satisfy the curve equation.
	IsOnCurve(x, y *big.Int) bool
	// Add computes p + q.
	Add(p, q Point) Point
	// Double computes 2p.
	Double(p Point) Point
	// Neg computes -p.
	Neg(p Point) Point
	// Equal checks whether two points represent the same group element.
	Equal(p, q Point) bool
	// ScalarMul computes [s]p using double-and-add.
	ScalarMul(p Point, s *big.Int) Point
	// DecompressX recovers the subgroup point with a given x-coordinate.
	DecompressX(x *big.Int) (Point, error)
	// ToAffine computes the affine coordinates of a point.
	ToAffine(p Point) (x, y *big.Int)
}

// New constructs the curve for a given type.
func New(t Type) (Curve, error) {
	switch t {
	case EdwardsBls12:
		return edwardsBls12(), nil
	case BN254:
		return bn254Curve(), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedCurve, "%s", t)
	}
}

// MustNew constructs the curve for a given type, panicking if it is unsupported.
func MustNew(t Type) Curve {
	c, err := New(t)
	if err != nil {
		panic(err)
	}
	//
	return c
}

// scalarMul implements a least-significant-bit first double-and-add loop,
// shared by both curve families.
func scalarMul(c Curve, p Point, s *big.Int) Point {
	var (
		result = c.Identity()
		base   = p
		k      = new(big.Int).Abs(s)
	)
	//
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = c.Add(result, base)
		}
		//
		base = c.Double(base)
	}
	//
	if s.Sign() < 0 {
		return c.Neg(result)
	}
	//
	return result
}

// decompress selects between the two candidate points (x,y) and (x,-y) using
// subgroup membership: a point is kept if multiplying it by the subgroup order
// yields the identity, otherwise its y-coordinate is negated.
func decompress(c Curve, x, y *big.Int) Point {
	p := c.FromAffine(x, y)
	//
	if c.IsIdentity(c.ScalarMul(p, c.Order())) {
		return p
	}
	//
	return c.FromAffine(x, c.Field().Neg(y))
}

func mustParse(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("invalid constant %q", s))
	}
	//
	return v
}
