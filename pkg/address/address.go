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

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/field"
)

// HRP is the human-readable part of an encoded address.
const HRP = "aleo"

// Length is the number of characters in an encoded address.
const Length = 63

// ErrInvalid marks all failures to decode an address.
var ErrInvalid = errors.New("invalid address")

// Decode extracts the x-coordinate of an address from its bech32m encoding.
// The coordinate is returned as given, without checking it lies on any curve.
func Decode(encoded string) (*big.Int, error) {
	if len(encoded) != Length {
		return nil, errors.Wrapf(ErrInvalid, "expected %d characters (was %d)", Length, len(encoded))
	}
	//
	hrp, words, version, err := bech32.DecodeNoLimitWithVersion(encoded)
	//
	switch {
	case err != nil:
		return nil, errors.Mark(errors.Wrap(err, "invalid bech32m encoding"), ErrInvalid)
	case version != bech32.VersionM:
		return nil, errors.Wrap(ErrInvalid, "expected bech32m checksum")
	case hrp != HRP:
		return nil, errors.Wrapf(ErrInvalid, "unexpected prefix %q", hrp)
	}
	//
	bytes, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid payload"), ErrInvalid)
	} else if len(bytes) != field.ElementBytes {
		return nil, errors.Wrapf(ErrInvalid, "expected %d byte payload (was %d)", field.ElementBytes, len(bytes))
	}
	//
	return field.FromBytesLE(bytes), nil
}

// Encode an x-coordinate as an address.
func Encode(x *big.Int) (string, error) {
	if x.Sign() < 0 || x.BitLen() > 8*field.ElementBytes {
		return "", errors.Wrapf(ErrInvalid, "coordinate %s out of range", x)
	}
	//
	words, err := bech32.ConvertBits(field.ToBytesLE(x), 8, 5, true)
	if err != nil {
		return "", err
	}
	//
	return bech32.EncodeM(HRP, words)
}

// DecodeCanonical decodes an address and additionally checks that its
// x-coordinate is an element of a given field.
func DecodeCanonical(encoded string, f *field.Field) (*big.Int, error) {
	x, err := Decode(encoded)
	//
	if err != nil {
		return nil, err
	} else if !f.IsCanonical(x) {
		return nil, errors.Wrapf(ErrInvalid, "coordinate not an element of %s", f.Name())
	}
	//
	return x, nil
}
