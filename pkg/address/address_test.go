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
package address

import (
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAddress  = "aleo1xr8udktvjhhackktfldsygjuf84fpm5k377gw4dcxhswtnyt8urq2q7xtv"
	testAddressX = "2826153323360709902210507492352501050408684853149149403539658328382212853552"
)

func Test_Decode_00(t *testing.T) {
	x, err := Decode(testAddress)
	require.NoError(t, err)
	assert.Equal(t, testAddressX, x.String())
}

func Test_Decode_01(t *testing.T) {
	for _, s := range []string{
		// bech32 (not bech32m) checksum
		"aleo1xr8udktvjhhackktfldsygjuf84fpm5k377gw4dcxhswtnyt8urqluw2ww",
		// too short
		"aleo1xr8udktvjhhackktfldsygjuf84fpm5k377gw4dcc24pkl",
		// corrupted checksum
		"aleo1xr8udktvjhhackktfldsygjuf84fpm5k377gw4dcxhswtnyt8urq2q7xtq",
		// mixed case
		"Aleo1xr8udktvjhhackktfldsygjuf84fpm5k377gw4dcxhswtnyt8urq2q7xtv",
	} {
		_, err := Decode(s)
		assert.True(t, errors.Is(err, ErrInvalid), "%s: %v", s, err)
	}
}

func Test_Encode_00(t *testing.T) {
	x, _ := new(big.Int).SetString(testAddressX, 10)
	encoded, err := Encode(x)
	require.NoError(t, err)
	assert.Equal(t, testAddress, encoded)
	assert.Len(t, encoded, Length)
	//
	_, err = Encode(big.NewInt(-1))
	assert.True(t, errors.Is(err, ErrInvalid))
	_, err = Encode(new(big.Int).Lsh(big.NewInt(1), 256))
	assert.True(t, errors.Is(err, ErrInvalid))
}

func Test_DecodeCanonical_00(t *testing.T) {
	f := field.EdwardsBls12Base()
	x, err := DecodeCanonical(testAddress, f)
	require.NoError(t, err)
	assert.Equal(t, testAddressX, x.String())
	// The modulus itself is not canonical
	encoded, err := Encode(f.Modulus())
	require.NoError(t, err)
	_, err = DecodeCanonical(encoded, f)
	assert.True(t, errors.Is(err, ErrInvalid))
}
