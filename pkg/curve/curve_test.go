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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
	bnecc "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Nonce used by the ownership fixtures, along with the view key used to derive
// the shared secret.
const (
	nonceX    = "7875439952291711715615240579921044990415838960123057779730523596946869608686"
	nonceY    = "6387880921049060828664281279888310704543801195074789903152238226439984247893"
	viewKey   = "1908587036217162972446459217467783184880273156235225594303167470995200969701"
	sharedKey = "4516346274112752756162682074153709910663833241295585192962662596879740957353"
)

func Test_ParseType_00(t *testing.T) {
	for _, ct := range Types {
		parsed, err := ParseType(ct.String())
		require.NoError(t, err)
		assert.Equal(t, ct, parsed)
	}
	//
	_, err := ParseType("secp256k1")
	assert.True(t, errors.Is(err, ErrUnsupportedCurve))
	//
	_, err = New(Type(7))
	assert.True(t, errors.Is(err, ErrUnsupportedCurve))
}

func Test_Generator_00(t *testing.T) {
	for _, ct := range Types {
		c := MustNew(ct)
		x, y := c.ToAffine(c.Generator())
		assert.True(t, c.IsOnCurve(x, y), ct.String())
		// Generator has prime order
		assert.True(t, c.IsIdentity(c.ScalarMul(c.Generator(), c.Order())), ct.String())
		assert.False(t, c.IsIdentity(c.Generator()), ct.String())
	}
}

func Test_Identity_00(t *testing.T) {
	for _, ct := range Types {
		c := MustNew(ct)
		g := c.Generator()
		id := c.Identity()
		//
		assert.True(t, c.IsIdentity(id), ct.String())
		assert.True(t, c.Equal(g, c.Add(g, id)), ct.String())
		assert.True(t, c.Equal(g, c.Add(id, g)), ct.String())
		assert.True(t, c.IsIdentity(c.Add(g, c.Neg(g))), ct.String())
		assert.True(t, c.IsIdentity(c.Double(id)), ct.String())
		assert.True(t, c.IsIdentity(c.ScalarMul(g, big.NewInt(0))), ct.String())
	}
}

func Test_Double_00(t *testing.T) {
	for _, ct := range Types {
		c := MustNew(ct)
		g := c.Generator()
		// Doubling agrees with addition
		assert.True(t, c.Equal(c.Double(g), c.Add(g, g)), ct.String())
		// 3g = 2g + g
		three := c.ScalarMul(g, big.NewInt(3))
		assert.True(t, c.Equal(three, c.Add(c.Double(g), g)), ct.String())
		// -g = [-1]g
		assert.True(t, c.Equal(c.Neg(g), c.ScalarMul(g, big.NewInt(-1))), ct.String())
	}
}

func Test_Edwards_00(t *testing.T) {
	var (
		c      = MustNew(EdwardsBls12)
		params = twistededwards.GetEdwardsCurve()
	)
	// Cross check scalar multiplication against gnark-crypto
	for _, k := range []int64{1, 2, 3, 0x5eed, 0x5eed5eed5eed} {
		var expected twistededwards.PointAffine
		//
		expected.ScalarMultiplication(&params.Base, big.NewInt(k))
		x, y := c.ToAffine(c.ScalarMul(c.Generator(), big.NewInt(k)))
		//
		assertInt(t, expected.X.BigInt(new(big.Int)), x, "x of [%d]G", k)
		assertInt(t, expected.Y.BigInt(new(big.Int)), y, "y of [%d]G", k)
	}
}

func Test_Edwards_01(t *testing.T) {
	c := MustNew(EdwardsBls12)
	// Nonce used in ownership fixtures
	x, y := c.ToAffine(c.ScalarMul(c.Generator(), big.NewInt(0x5eed5eed5eed)))
	assertInt(t, mustParse(nonceX), x)
	assertInt(t, mustParse(nonceY), y)
}

func Test_Edwards_02(t *testing.T) {
	c := MustNew(EdwardsBls12)
	nonce, err := c.DecompressX(mustParse(nonceX))
	require.NoError(t, err)
	//
	x, y := c.ToAffine(nonce)
	assertInt(t, mustParse(nonceX), x)
	assertInt(t, mustParse(nonceY), y)
	// Shared secret
	sx, _ := c.ToAffine(c.ScalarMul(nonce, mustParse(viewKey)))
	assertInt(t, mustParse(sharedKey), sx)
}

func Test_Edwards_03(t *testing.T) {
	c := MustNew(EdwardsBls12)
	// No point has x = 1 on this curve.
	_, err := c.DecompressX(big.NewInt(1))
	assert.True(t, errors.Is(err, ErrNonResidue))
	// Non-canonical coordinate
	_, err = c.DecompressX(c.Field().Modulus())
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNonResidue))
}

func Test_Edwards_04(t *testing.T) {
	c := MustNew(EdwardsBls12)
	// Decompression always yields a subgroup element, whatever the sign of the
	// original point.
	for _, k := range []int64{1, 7, 1 << 20} {
		p := c.ScalarMul(c.Generator(), big.NewInt(k))
		x, _ := c.ToAffine(p)
		q, err := c.DecompressX(x)
		require.NoError(t, err)
		assert.True(t, c.Equal(p, q), "[%d]G", k)
		// Likewise for -p = (-x,y)
		nx, _ := c.ToAffine(c.Neg(p))
		r, err := c.DecompressX(nx)
		require.NoError(t, err)
		assert.True(t, c.Equal(c.Neg(p), r), "-[%d]G", k)
	}
}

func Test_Weierstrass_00(t *testing.T) {
	c := MustNew(BN254)
	_, _, g1, _ := bnecc.Generators()
	// Cross check scalar multiplication against gnark-crypto
	for _, k := range []int64{1, 2, 3, 0x5eed, 0x5eed5eed5eed} {
		var expected bnecc.G1Affine
		//
		expected.ScalarMultiplication(&g1, big.NewInt(k))
		x, y := c.ToAffine(c.ScalarMul(c.Generator(), big.NewInt(k)))
		//
		assertInt(t, expected.X.BigInt(new(big.Int)), x, "x of [%d]G", k)
		assertInt(t, expected.Y.BigInt(new(big.Int)), y, "y of [%d]G", k)
	}
}

func Test_Weierstrass_01(t *testing.T) {
	c := MustNew(BN254)
	// Generator is (1,2)
	x, y := c.ToAffine(c.Generator())
	assert.Equal(t, int64(1), x.Int64())
	assert.Equal(t, int64(2), y.Int64())
	// Decompression of x = 1 gives either 2 or p-2
	p, err := c.DecompressX(big.NewInt(1))
	require.NoError(t, err)
	_, y = c.ToAffine(p)
	assert.True(t, y.Int64() == 2 || y.Cmp(c.Field().Neg(big.NewInt(2))) == 0)
	// x = 0 and x = 4 have no points
	for _, v := range []int64{0, 4} {
		_, err := c.DecompressX(big.NewInt(v))
		assert.True(t, errors.Is(err, ErrNonResidue), "x = %d", v)
	}
}

func Test_Weierstrass_02(t *testing.T) {
	c := MustNew(BN254)
	x, y := c.ToAffine(c.Identity())
	assert.Equal(t, 0, x.Sign())
	assert.Equal(t, 0, y.Sign())
	assert.False(t, c.IsOnCurve(x, y))
}

func TestCurveProperties(t *testing.T) {
	for _, ct := range Types {
		c := MustNew(ct)
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 25
		properties := gopter.NewProperties(parameters)
		scalars := gen.Int64Range(-1<<40, 1<<40)
		//
		properties.Property(ct.String()+": closure", prop.ForAll(
			func(k int64) bool {
				x, y := c.ToAffine(c.ScalarMul(c.Generator(), big.NewInt(k)))
				return k == 0 || c.IsOnCurve(x, y)
			},
			scalars,
		))
		properties.Property(ct.String()+": distributivity", prop.ForAll(
			func(a, b int64) bool {
				g := c.Generator()
				lhs := c.ScalarMul(g, new(big.Int).Add(big.NewInt(a), big.NewInt(b)))
				rhs := c.Add(c.ScalarMul(g, big.NewInt(a)), c.ScalarMul(g, big.NewInt(b)))
				//
				return c.Equal(lhs, rhs)
			},
			scalars, scalars,
		))
		properties.Property(ct.String()+": commutativity", prop.ForAll(
			func(a, b int64) bool {
				p := c.ScalarMul(c.Generator(), big.NewInt(a))
				q := c.ScalarMul(c.Generator(), big.NewInt(b))
				//
				return c.Equal(c.Add(p, q), c.Add(q, p))
			},
			scalars, scalars,
		))
		//
		properties.TestingRun(t)
	}
}

func assertInt(t *testing.T, expected, actual *big.Int, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, expected.String(), actual.String(), msgAndArgs...)
}
