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
	"github.com/consensys/go-recordscan/pkg/curve"
)

// CurveConstants holds the constants uploaded for a twisted Edwards curve.
type CurveConstants struct {
	Field *FieldConstants
	A     Limbs
	D     Limbs
	// Order of the prime subgroup.
	Order Limbs
}

// NewCurveConstants converts the constants of a host curve into limbs.
func NewCurveConstants(c *curve.Edwards) *CurveConstants {
	return &CurveConstants{
		Field: NewFieldConstants(c.Field()),
		A:     MustFromBig(c.A()),
		D:     MustFromBig(c.D()),
		Order: MustFromBig(c.Order()),
	}
}

// Point is a curve point in extended coordinates (X:Y:Z:T), where x = X/Z,
// y = Y/Z and x·y = T/Z.
type Point struct {
	X, Y, Z, T Limbs
}

// PointIdentity returns (0:1:1:0).
func PointIdentity() Point {
	return Point{Y: FromUint32(1), Z: FromUint32(1)}
}

// PointFromAffine lifts an affine point into extended coordinates.
func PointFromAffine(x, y Limbs, cc *CurveConstants) Point {
	return Point{X: x, Y: y, Z: FromUint32(1), T: FieldModulusFieldMultiply(x, y, cc.Field.Modulus)}
}

// PointIsIdentity checks whether X = 0 and Y = Z.
func PointIsIdentity(p Point) bool {
	return p.X.IsZero() && p.Y == p.Z
}

// PointAdd computes p + q using the unified add-2008-hwcd formulae.
func PointAdd(p, q Point, cc *CurveConstants) Point {
	m := cc.Field.Modulus
	mul := func(a, b Limbs) Limbs { return FieldModulusFieldMultiply(a, b, m) }
	//
	A := mul(p.X, q.X)
	B := mul(p.Y, q.Y)
	C := mul(mul(p.T, cc.D), q.T)
	D := mul(p.Z, q.Z)
	E := FieldSub(FieldSub(mul(FieldAdd(p.X, p.Y, m), FieldAdd(q.X, q.Y, m)), A, m), B, m)
	F := FieldSub(D, C, m)
	G := FieldAdd(D, C, m)
	H := FieldSub(B, mul(cc.A, A), m)
	//
	return Point{X: mul(E, F), Y: mul(G, H), T: mul(E, H), Z: mul(F, G)}
}

// PointDouble computes 2p using the dbl-2008-hwcd formulae.
func PointDouble(p Point, cc *CurveConstants) Point {
	m := cc.Field.Modulus
	mul := func(a, b Limbs) Limbs { return FieldModulusFieldMultiply(a, b, m) }
	//
	A := FieldSquare(p.X, m)
	B := FieldSquare(p.Y, m)
	zz := FieldSquare(p.Z, m)
	C := FieldAdd(zz, zz, m)
	D := mul(cc.A, A)
	E := FieldSub(FieldSub(FieldSquare(FieldAdd(p.X, p.Y, m), m), A, m), B, m)
	G := FieldAdd(D, B, m)
	F := FieldSub(G, C, m)
	H := FieldSub(D, B, m)
	//
	return Point{X: mul(E, F), Y: mul(G, H), T: mul(E, H), Z: mul(F, G)}
}

// PointNeg computes -p = (-X:Y:Z:-T).
func PointNeg(p Point, cc *CurveConstants) Point {
	var zero Limbs
	//
	m := cc.Field.Modulus
	//
	return Point{X: FieldSub(zero, p.X, m), Y: p.Y, Z: p.Z, T: FieldSub(zero, p.T, m)}
}

// ScalarMul computes k·p by least-significant-bit first double-and-add over
// all 256 bits of the scalar.
func ScalarMul(p Point, k Limbs, cc *CurveConstants) Point {
	var (
		result = PointIdentity()
		base   = p
	)
	//
	for i := range 32 * NumLimbs {
		if k.Bit(i) == 1 {
			result = PointAdd(result, base, cc)
		}
		//
		base = PointDouble(base, cc)
	}
	//
	return result
}

// ToAffineX returns the affine x-coordinate X/Z.
func ToAffineX(p Point, cc *CurveConstants) Limbs {
	return FieldModulusFieldMultiply(p.X, FieldInverse(p.Z, cc.Field), cc.Field.Modulus)
}

// DecompressX recovers the subgroup point with a given x-coordinate.  The second
// return is false when no point exists with that x-coordinate.
func DecompressX(x Limbs, cc *CurveConstants) (Point, bool) {
	var (
		fc  = cc.Field
		m   = fc.Modulus
		one = FromUint32(1)
	)
	//
	xx := FieldSquare(x, m)
	num := FieldSub(FieldModulusFieldMultiply(cc.A, xx, m), one, m)
	den := FieldSub(FieldModulusFieldMultiply(cc.D, xx, m), one, m)
	yy := FieldModulusFieldMultiply(num, FieldInverse(den, fc), m)
	//
	if !FieldIsSquare(yy, fc) {
		return Point{}, false
	}
	//
	p := PointFromAffine(x, FieldSqrt(yy, fc), cc)
	// Select the candidate in the prime subgroup
	if PointIsIdentity(ScalarMul(p, cc.Order, cc)) {
		return p, true
	}
	//
	var zero Limbs
	//
	return PointFromAffine(x, FieldSub(zero, p.Y, m), cc), true
}
