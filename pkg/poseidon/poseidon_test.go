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
package poseidon

import (
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/curve"
	"github.com/consensys/go-recordscan/pkg/field"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var edwardsFirstBlock = []string{
	"5208930778286312600808795659554938611301275182092940462658648520079602102930",
	"3994597320147350534724525457025712610108069861859758848892988202692173473766",
	"5811491394154482048905836349496814770116289231209081615432099055744309986637",
	"6453033494204920666140086001075222731779198093343026532418358638372117133089",
	"6334450315946100385645225266750568899390082647901919844072282716171356792199",
	"1534688567274028603821478027610936792462195219730276039032977528443314676504",
	"5442838979203238763201664294025743588659204582886990828529890949134890976331",
	"2786239965968296821488478838651772138841386999233021154548046837852479346774",
	"2011433203564613444434680673362049409281410437476018311083897000100578507327",
}

var bn254FirstBlock = []string{
	"17533704088664966312131652833342536596000482525678506422989783485879015710053",
	"10845229134803988996175456972991145784434872183394044202122393661633411574348",
	"7598987918349523104027927783590190468567715001166429487618363482183301677818",
	"2131178350356538645690454797719172524269840063569897239797368213200125524343",
	"1029510004854576637549251237035566876728548258503218236456743822611050614635",
	"19776633081406430028741443959692075424877228857406625433718899133717895323829",
	"11520651972561054565999866453175468196549693115350800981720742917917138317029",
	"19453438877862765931563696862332638045297919244265374013418299958981187901139",
	"952954276073992237713577823161419912360700833904387302218953012050077802902",
}

func Test_Params_00(t *testing.T) {
	p, err := ForCurve(curve.EdwardsBls12)
	require.NoError(t, err)
	assert.Equal(t, uint(Width), p.Width())
	assert.Equal(t, uint(NumRounds), p.Rounds())
	assert.Len(t, p.Ark, NumRounds)
	assert.Len(t, p.Mds, Width)
	assertInt(t, "2806882019829952968543507592167502510188638053153774646465991640201889135551", p.Ark[0][0])
	assertInt(t, "3195939821470342407043866187037485190412960074203265869296316033794290707270", p.Mds[0][0])
	// First and last four rounds are full
	for r := range p.Rounds() {
		assert.Equal(t, r < 4 || r >= 35, p.IsFullRound(r), "round %d", r)
	}
}

func Test_Params_01(t *testing.T) {
	p, err := ForCurve(curve.BN254)
	require.NoError(t, err)
	assertInt(t, "9131966874350930851097584503417186355125771081802924272269644000281700790481", p.Ark[0][0])
	assertInt(t, "20258226551417473554959728792602045577976026811608779305003080235689584993055", p.Mds[0][0])
	//
	_, err = ForCurve(curve.Type(9))
	assert.True(t, errors.Is(err, curve.ErrUnsupportedCurve))
	_, err = New(curve.Type(9))
	assert.True(t, errors.Is(err, curve.ErrUnsupportedCurve))
}

func Test_Derive_00(t *testing.T) {
	p, err := ForCurve(curve.EdwardsBls12)
	require.NoError(t, err)
	//
	derived := Derive(field.EdwardsBls12Base(), Rate, FullRounds, PartialRounds)
	assert.True(t, p.Equal(derived))
}

func Test_Derive_01(t *testing.T) {
	p, err := ForCurve(curve.BN254)
	require.NoError(t, err)
	//
	derived := Derive(field.BN254Base(), Rate, FullRounds, PartialRounds)
	assert.True(t, p.Equal(derived))
	// Different round counts give different parameters
	assert.False(t, p.Equal(Derive(field.BN254Base(), Rate, FullRounds, PartialRounds+1)))
}

func Test_Permute_00(t *testing.T) {
	h := mustHasher(t, curve.EdwardsBls12)
	state := h.zeroState()
	out := h.Parameters().Permute(state)
	//
	assertInt(t, "1393824257423867135604783814327311646501270414761241202032798854586714286467", out[0])
	// Input state is untouched
	for _, v := range state {
		assert.Equal(t, 0, v.Sign())
	}
	//
	assert.Panics(t, func() { h.Parameters().Permute(state[:4]) })
}

func Test_FirstBlock_00(t *testing.T) {
	checkFirstBlock(t, curve.EdwardsBls12, edwardsFirstBlock)
}

func Test_FirstBlock_01(t *testing.T) {
	checkFirstBlock(t, curve.BN254, bn254FirstBlock)
}

func Test_FirstBlock_02(t *testing.T) {
	h := mustHasher(t, curve.EdwardsBls12)
	// Mutating the returned copy does not affect subsequent calls.
	first := h.FirstBlock()
	first[1].SetUint64(0)
	assertInt(t, edwardsFirstBlock[1], h.FirstBlock()[1])
}

func Test_Hash_00(t *testing.T) {
	h := mustHasher(t, curve.EdwardsBls12)
	// Mask derived from the shared secret of the ownership fixtures
	shared := mustParse("4516346274112752756162682074153709910663833241295585192962662596879740957353")
	assertInt(t, "3148427534525668144450905342999494777605549551888522087613699248314795422929", h.Hash(shared))
}

func Test_Hash_01(t *testing.T) {
	h := mustHasher(t, curve.BN254)
	assertInt(t, "3018357917234188838595579178866066620361726349606651195464104230384946365652", h.Hash(big.NewInt(12345)))
}

func Test_Hash_02(t *testing.T) {
	h := mustHasher(t, curve.EdwardsBls12)
	assertInt(t, "4470955116825994810352013241409", h.Domain())
	assertInt(t, "1187534166381405136191308758137566032926460981470575291457", h.EncryptionDomain())
}

func Test_HashMany_00(t *testing.T) {
	h := mustHasher(t, curve.EdwardsBls12)
	expected := []string{
		"6997114219207164604936152705742629637102890770395303842448243806833877237446",
		"6757819676859842377860056678536458773514104069216485298592840880154363646393",
		"1659335862920196666642941717368410795703546253330774325445684329387817520294",
		"3567501516474035368594859080297826632506831671232893844973459046475637990024",
		"4384541207586876440313726280319914622162621472961459326383567013435700023271",
		"5926895378385341282543460428842073781595918271215412138849226974153558296685",
		"5282150399899595793131157311562366847943335113536495448594412104452789225415",
		"7420805304384366171135290531612869142216521066405539797721471668745854496718",
		"6003703382905821389386586989092325197103726188170534686780981647245984241487",
		"7699668718528264976720194537558311242516500691855324655933047308043766511565",
	}
	// Squeezing more than the rate forces an extra permutation
	outputs := h.HashMany([]*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}, 10)
	require.Len(t, outputs, len(expected))
	//
	for i, e := range expected {
		assertInt(t, e, outputs[i], "output %d", i)
	}
}

func TestHashProperties(t *testing.T) {
	for _, ct := range curve.Types {
		h := mustHasher(t, ct)
		f := h.Parameters().Field
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 20
		properties := gopter.NewProperties(parameters)
		//
		properties.Property(ct.String()+": hash matches sponge", prop.ForAll(
			func(x *big.Int) bool {
				return h.Hash(x).Cmp(h.HashMany([]*big.Int{h.EncryptionDomain(), x}, 1)[0]) == 0
			},
			genElement(f),
		))
		properties.Property(ct.String()+": hash is canonical", prop.ForAll(
			func(x *big.Int) bool {
				return f.IsCanonical(h.Hash(x))
			},
			genElement(f),
		))
		//
		properties.TestingRun(t)
	}
}

func checkFirstBlock(t *testing.T, ct curve.Type, expected []string) {
	h := mustHasher(t, ct)
	first := h.FirstBlock()
	//
	require.Len(t, first, len(expected))
	//
	for i, e := range expected {
		assertInt(t, e, first[i], "slot %d", i)
	}
}

func mustHasher(t *testing.T, ct curve.Type) *Hasher {
	h, err := New(ct)
	require.NoError(t, err)
	//
	return h
}

func genElement(f *field.Field) gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		return gopter.NewGenResult(new(big.Int).Rand(genParams.Rng, f.Modulus()), gopter.NoShrinker)
	}
}

func mustParse(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	//
	return v
}

func assertInt(t *testing.T, expected string, actual *big.Int, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, expected, actual.String(), msgAndArgs...)
}
