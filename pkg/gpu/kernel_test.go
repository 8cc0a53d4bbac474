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
	"testing"

	"github.com/consensys/go-recordscan/pkg/curve"
	"github.com/consensys/go-recordscan/pkg/field"
	"github.com/consensys/go-recordscan/pkg/poseidon"
	testutil "github.com/consensys/go-recordscan/pkg/test/util"
	"github.com/holiman/uint256"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Limbs_00(t *testing.T) {
	v, _ := new(big.Int).SetString("0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20", 16)
	limbs := MustFromBig(v)
	// Most significant limb first
	assert.Equal(t, uint32(0x01020304), limbs[0])
	assert.Equal(t, uint32(0x1d1e1f20), limbs[NumLimbs-1])
	assert.Equal(t, v.String(), limbs.String())
	assert.Equal(t, limbs, FromUint256(limbs.Uint256()))
	//
	assert.Equal(t, uint32(0), limbs.Bit(0))
	assert.Equal(t, uint32(1), limbs.Bit(5))
	assert.Equal(t, uint32(1), limbs.Bit(248))
}

func Test_Limbs_01(t *testing.T) {
	_, err := FromBig(big.NewInt(-1))
	assert.Error(t, err)
	_, err = FromBig(new(big.Int).Lsh(big.NewInt(1), 256))
	assert.Error(t, err)
	//
	limbs, err := FromBig(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))
	require.NoError(t, err)
	assert.Equal(t, FromUint256(new(uint256.Int).SetAllOne()), limbs)
}

func Test_FieldAdd_00(t *testing.T) {
	fc := edwardsConstants().Field
	pm1 := MustFromBig(new(big.Int).Sub(fc.Modulus.Big(), big.NewInt(1)))
	//
	assert.True(t, FieldAdd(pm1, FromUint32(1), fc.Modulus).IsZero())
	assert.Equal(t, FromUint32(6), FieldAdd(FromUint32(2), FromUint32(4), fc.Modulus))
}

func Test_FieldSub_00(t *testing.T) {
	fc := edwardsConstants().Field
	pm1 := MustFromBig(new(big.Int).Sub(fc.Modulus.Big(), big.NewInt(1)))
	//
	assert.Equal(t, pm1, FieldSub(FromUint32(0), FromUint32(1), fc.Modulus))
	assert.Equal(t, FromUint32(3), FieldSub(FromUint32(7), FromUint32(4), fc.Modulus))
}

func Test_FieldReduce_00(t *testing.T) {
	for _, f := range []*field.Field{field.EdwardsBls12Base(), field.BN254Base()} {
		p := MustFromBig(f.Modulus())
		ones := FromUint256(new(uint256.Int).SetAllOne())
		pm1 := new(big.Int).Sub(f.Modulus(), big.NewInt(1))
		//
		assertLimbs(t, f.Reduce(ones.Big()), FieldModulusFieldReduce(ones, p))
		assert.True(t, FieldModulusFieldReduce(p, p).IsZero())
		assertLimbs(t, f.Mul(pm1, pm1), FieldModulusFieldMultiply(MustFromBig(pm1), MustFromBig(pm1), p))
		assert.Equal(t, new(big.Int).Mul(ones.Big(), ones.Big()).String(), FieldMultiply(ones, ones).Big().String())
	}
}

func Test_FieldSqrt_00(t *testing.T) {
	var (
		f  = field.EdwardsBls12Base()
		fc = NewFieldConstants(f)
	)
	//
	assertLimbs(t, new(big.Int).Sub(f.Modulus(), big.NewInt(2)), FieldSqrt(FromUint32(4), fc))
	assertLimbs(t, new(big.Int).Sub(f.Modulus(), big.NewInt(3)), FieldSqrt(FromUint32(9), fc))
	assertLimbs(t, big.NewInt(5), FieldSqrt(FromUint32(25), fc))
	assert.True(t, FieldSqrt(FromUint32(0), fc).IsZero())
	// Non-residues have no root
	z := MustFromBig(f.SqrtParams().NonResidue)
	assert.False(t, FieldIsSquare(z, fc))
	assert.True(t, FieldSqrt(z, fc).IsZero())
}

func TestFieldKernels(t *testing.T) {
	for _, f := range []*field.Field{field.EdwardsBls12Base(), field.BN254Base()} {
		fc := NewFieldConstants(f)
		p := fc.Modulus
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 100
		properties := gopter.NewProperties(parameters)
		//
		properties.Property(f.Name()+": add", prop.ForAll(
			func(a, b *big.Int) bool {
				return FieldAdd(MustFromBig(a), MustFromBig(b), p).Big().Cmp(f.Add(a, b)) == 0
			},
			genElement(f), genElement(f),
		))
		properties.Property(f.Name()+": sub", prop.ForAll(
			func(a, b *big.Int) bool {
				return FieldSub(MustFromBig(a), MustFromBig(b), p).Big().Cmp(f.Sub(a, b)) == 0
			},
			genElement(f), genElement(f),
		))
		properties.Property(f.Name()+": multiply", prop.ForAll(
			func(a, b *big.Int) bool {
				return FieldModulusFieldMultiply(MustFromBig(a), MustFromBig(b), p).Big().Cmp(f.Mul(a, b)) == 0
			},
			genElement(f), genElement(f),
		))
		properties.Property(f.Name()+": reduce", prop.ForAll(
			func(a *big.Int) bool {
				return FieldModulusFieldReduce(MustFromBig(a), p).Big().Cmp(f.Reduce(a)) == 0
			},
			genUint256(),
		))
		properties.Property(f.Name()+": inverse", prop.ForAll(
			func(a *big.Int) bool {
				return FieldInverse(MustFromBig(a), fc).Big().Cmp(f.Inverse(a)) == 0
			},
			genElement(f),
		))
		properties.Property(f.Name()+": sqrt", prop.ForAll(
			func(a *big.Int) bool {
				limbs := MustFromBig(a)
				//
				return FieldIsSquare(limbs, fc) == f.IsSquare(a) && FieldSqrt(limbs, fc).Big().Cmp(f.Sqrt(a)) == 0
			},
			genElement(f),
		))
		//
		properties.TestingRun(t)
	}
}

func Test_Point_00(t *testing.T) {
	var (
		c  = edwardsCurve()
		cc = edwardsConstants()
	)
	//
	for _, k := range []int64{0, 1, 2, 3, 0x5eed, 0x5eed5eed5eed} {
		expected := c.ScalarMul(c.Generator(), big.NewInt(k))
		actual := ScalarMul(toLimbs(c.Generator()), MustFromBig(big.NewInt(k)), cc)
		checkPoint(t, c, cc, expected, actual)
	}
	// Identity
	assert.True(t, PointIsIdentity(ScalarMul(toLimbs(c.Generator()), MustFromBig(c.Order()), cc)))
	g := toLimbs(c.Generator())
	assert.True(t, PointIsIdentity(PointAdd(g, PointNeg(g, cc), cc)))
}

func Test_Point_01(t *testing.T) {
	var (
		fixture = testutil.LoadOwnership(t)
		c       = edwardsCurve()
		cc      = edwardsConstants()
	)
	//
	point, ok := DecompressX(MustFromBig(testutil.Int(t, fixture.NonceX)), cc)
	require.True(t, ok)
	x, y := affine(point, cc)
	assert.Equal(t, fixture.NonceX, x.String())
	assert.Equal(t, fixture.NonceY, y.String())
	// Shared secret
	shared := ToAffineX(ScalarMul(point, MustFromBig(testutil.Int(t, fixture.ViewKey)), cc), cc)
	assert.Equal(t, fixture.Shared, shared.String())
	// No point has x = 1
	_, ok = DecompressX(FromUint32(1), cc)
	assert.False(t, ok)
	_, err := c.DecompressX(big.NewInt(1))
	assert.ErrorIs(t, err, curve.ErrNonResidue)
}

func TestPointKernels(t *testing.T) {
	var (
		c  = edwardsCurve()
		cc = edwardsConstants()
	)
	//
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 5
	properties := gopter.NewProperties(parameters)
	//
	properties.Property("add and double", prop.ForAll(
		func(a, b int64) bool {
			p := c.ScalarMul(c.Generator(), big.NewInt(a))
			q := c.ScalarMul(c.Generator(), big.NewInt(b))
			sum := PointAdd(toLimbs(p), toLimbs(q), cc)
			dbl := PointDouble(toLimbs(p), cc)
			//
			return samePoint(c, cc, c.Add(p, q), sum) && samePoint(c, cc, c.Double(p), dbl)
		},
		gen.Int64Range(1, 1<<32), gen.Int64Range(1, 1<<32),
	))
	properties.Property("decompress", prop.ForAll(
		func(k int64) bool {
			x, y := c.ToAffine(c.ScalarMul(c.Generator(), big.NewInt(k)))
			point, ok := DecompressX(MustFromBig(x), cc)
			ax, ay := affine(point, cc)
			//
			return ok && ax.Big().Cmp(x) == 0 && ay.Big().Cmp(y) == 0
		},
		gen.Int64Range(1, 1<<32),
	))
	//
	properties.TestingRun(t)
}

func Test_Permute_00(t *testing.T) {
	var (
		f    = field.EdwardsBls12Base()
		h    = mustHasher(t)
		pc   = NewPoseidonConstants(h)
		st   State
		zero = make([]*big.Int, poseidon.Width)
	)
	//
	for i := range zero {
		zero[i] = new(big.Int)
	}
	//
	Permute(&st, pc, NewFieldConstants(f))
	//
	expected := h.Parameters().Permute(zero)
	for i := range st {
		assertLimbs(t, expected[i], st[i])
	}
	//
	assert.Equal(t, "1393824257423867135604783814327311646501270414761241202032798854586714286467",
		st[0].String())
}

func Test_PoseidonHash_00(t *testing.T) {
	var (
		fixture = testutil.LoadOwnership(t)
		f       = field.EdwardsBls12Base()
		h       = mustHasher(t)
		pc      = NewPoseidonConstants(h)
	)
	//
	mask := PoseidonHash(MustFromBig(testutil.Int(t, fixture.Shared)), pc, NewFieldConstants(f))
	assert.Equal(t, fixture.Mask, mask.String())
	//
	for _, x := range []int64{0, 1, 12345} {
		mask = PoseidonHash(FromUint32(uint32(x)), pc, NewFieldConstants(f))
		assertLimbs(t, h.Hash(big.NewInt(x)), mask)
	}
}

func edwardsCurve() *curve.Edwards {
	return curve.MustNew(curve.EdwardsBls12).(*curve.Edwards)
}

func edwardsConstants() *CurveConstants {
	return NewCurveConstants(edwardsCurve())
}

func mustHasher(t *testing.T) *poseidon.Hasher {
	h, err := poseidon.New(curve.EdwardsBls12)
	require.NoError(t, err)
	//
	return h
}

func toLimbs(p curve.Point) Point {
	return Point{X: MustFromBig(p.X), Y: MustFromBig(p.Y), Z: MustFromBig(p.Z), T: MustFromBig(p.T)}
}

func affine(p Point, cc *CurveConstants) (Limbs, Limbs) {
	zinv := FieldInverse(p.Z, cc.Field)
	//
	return FieldModulusFieldMultiply(p.X, zinv, cc.Field.Modulus), FieldModulusFieldMultiply(p.Y, zinv, cc.Field.Modulus)
}

func samePoint(c curve.Curve, cc *CurveConstants, expected curve.Point, actual Point) bool {
	ex, ey := c.ToAffine(expected)
	ax, ay := affine(actual, cc)
	//
	return ex.Cmp(ax.Big()) == 0 && ey.Cmp(ay.Big()) == 0
}

func checkPoint(t *testing.T, c curve.Curve, cc *CurveConstants, expected curve.Point, actual Point) {
	t.Helper()
	//
	ex, ey := c.ToAffine(expected)
	ax, ay := affine(actual, cc)
	assertLimbs(t, ex, ax)
	assertLimbs(t, ey, ay)
}

func genElement(f *field.Field) gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		return gopter.NewGenResult(new(big.Int).Rand(genParams.Rng, f.Modulus()), gopter.NoShrinker)
	}
}

func genUint256() gopter.Gen {
	bound := new(big.Int).Lsh(big.NewInt(1), 256)
	//
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		return gopter.NewGenResult(new(big.Int).Rand(genParams.Rng, bound), gopter.NoShrinker)
	}
}

func assertLimbs(t *testing.T, expected *big.Int, actual Limbs, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, expected.String(), actual.String(), msgAndArgs...)
}
