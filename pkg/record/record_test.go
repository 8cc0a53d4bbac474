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
package record

import (
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	testutil "github.com/consensys/go-recordscan/pkg/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// body shared by fixture records
func fixtureBody() []byte {
	body := []byte{1, 0}
	//
	for i := byte(1); i <= 33; i++ {
		body = append(body, i)
	}
	//
	return body
}

func Test_Decode_00(t *testing.T) {
	fixture := testutil.LoadOwnership(t)
	ct, err := Decode(fixture.Private)
	require.NoError(t, err)
	//
	assert.False(t, ct.IsOwnerPublic())
	assert.Equal(t, 1+2+32+35+32, ct.Len())
	assert.Equal(t, fixture.Owner, ct.Owner().String())
	assert.Equal(t, fixture.NonceX, ct.Nonce().String())
}

func Test_Decode_01(t *testing.T) {
	fixture := testutil.LoadOwnership(t)
	ct, err := Decode(fixture.Public)
	require.NoError(t, err)
	//
	assert.True(t, ct.IsOwnerPublic())
	assert.Equal(t, fixture.AddressX, ct.Owner().String())
	assert.Equal(t, fixture.NonceX, ct.Nonce().String())
}

func Test_Decode_02(t *testing.T) {
	fixture := testutil.LoadOwnership(t)
	names, records := fixture.MalformedRecords()
	require.NotEmpty(t, names)
	//
	for i, name := range names {
		_, err := Decode(records[i])
		assert.True(t, errors.Is(err, ErrDecode), "%s: %v", name, err)
	}
}

func Test_Decode_03(t *testing.T) {
	fixture := testutil.LoadOwnership(t)
	// Corrupt the checksum
	corrupted := []byte(fixture.Private)
	last := len(corrupted) - 1
	//
	if corrupted[last] == 'q' {
		corrupted[last] = 'p'
	} else {
		corrupted[last] = 'q'
	}
	//
	_, err := Decode(string(corrupted))
	assert.True(t, errors.Is(err, ErrDecode))
	//
	_, err = Decode("")
	assert.True(t, errors.Is(err, ErrDecode))
}

func Test_Encode_00(t *testing.T) {
	fixture := testutil.LoadOwnership(t)
	//
	for _, encoded := range []string{fixture.Private, fixture.Public} {
		ct, err := Decode(encoded)
		require.NoError(t, err)
		//
		reencoded, err := Encode(ct)
		require.NoError(t, err)
		assert.Equal(t, encoded, reencoded)
	}
}

func Test_Build_00(t *testing.T) {
	fixture := testutil.LoadOwnership(t)
	owner := testutil.Int(t, fixture.Owner)
	nonce := testutil.Int(t, fixture.NonceX)
	//
	encoded, err := Encode(Build(Private, owner, fixtureBody(), nonce))
	require.NoError(t, err)
	assert.Equal(t, fixture.Private, encoded)
	//
	encoded, err = Encode(Build(Public, testutil.Int(t, fixture.AddressX), fixtureBody(), nonce))
	require.NoError(t, err)
	assert.Equal(t, fixture.Public, encoded)
}

func Test_New_00(t *testing.T) {
	_, err := New(make([]byte, MinLength-1))
	assert.True(t, errors.Is(err, ErrDecode))
	// Private records carry a two byte header
	bytes := make([]byte, MinLength)
	bytes[0] = Private
	_, err = New(bytes)
	assert.True(t, errors.Is(err, ErrDecode))
	// Minimal public record
	bytes[0] = Public
	ct, err := New(bytes)
	require.NoError(t, err)
	assert.Equal(t, 0, ct.Owner().Sign())
	// Constructed records do not alias their input
	bytes[1] = 0xff
	assert.Equal(t, 0, ct.Owner().Sign())
}

func Test_ReadField_00(t *testing.T) {
	owner := big.NewInt(0x0a0b)
	nonce := big.NewInt(0x0c0d)
	ct := Build(Public, owner, nil, nonce)
	//
	require.NoError(t, ct.Validate())
	assert.Equal(t, []byte{0x0b, 0x0a}, ct.ReadField(1)[:2])
	assert.Equal(t, []byte{0x0d, 0x0c}, ct.NonceBytes()[:2])
	// Reading does not expose internal state
	ct.OwnerBytes()[0] = 0
	assert.Equal(t, int64(0x0a0b), ct.Owner().Int64())
}

func Test_BytesToField_00(t *testing.T) {
	// No reduction is applied
	bytes := make([]byte, FieldBytes)
	for i := range bytes {
		bytes[i] = 0xff
	}
	//
	v := BytesToField(bytes)
	assert.Equal(t, 256, v.BitLen())
}
