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
	"slices"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/field"
)

// HRP is the human-readable part of an encoded record.
const HRP = "record"

// Visibility flags
const (
	// Public indicates the owner is stored in the clear.
	Public byte = 0
	// Private indicates the owner is blinded by a mask derived from the nonce.
	Private byte = 1
)

const (
	// FieldBytes is the number of bytes used for a field element.
	FieldBytes = field.ElementBytes
	// MinLength is the smallest valid ciphertext: a flag, an owner and a nonce.
	MinLength = 1 + 2*FieldBytes
	// offset of the owner when public
	publicOwnerOffset = 1
	// offset of the owner when private, following a two byte header.
	privateOwnerOffset = 3
)

// ErrDecode marks all failures to decode a record.
var ErrDecode = errors.New("malformed record")

// Ciphertext is the decoded payload of an encrypted record.  This is treated as
// immutable once constructed.
type Ciphertext struct {
	bytes []byte
}

// Decode a record from its bech32m encoding.  This checks the encoding, the
// human-readable part and the overall shape of the payload, but not whether
// embedded field elements are canonical.
func Decode(encoded string) (Ciphertext, error) {
	hrp, words, version, err := bech32.DecodeNoLimitWithVersion(encoded)
	//
	switch {
	case err != nil:
		return Ciphertext{}, errors.Mark(errors.Wrap(err, "invalid bech32m encoding"), ErrDecode)
	case version != bech32.VersionM:
		return Ciphertext{}, errors.Wrap(ErrDecode, "expected bech32m checksum")
	case hrp != HRP:
		return Ciphertext{}, errors.Wrapf(ErrDecode, "unexpected prefix %q", hrp)
	case len(words) == 0:
		return Ciphertext{}, errors.Wrap(ErrDecode, "empty payload")
	}
	//
	bytes, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return Ciphertext{}, errors.Mark(errors.Wrap(err, "invalid payload"), ErrDecode)
	}
	//
	ct := Ciphertext{bytes}
	//
	return ct, ct.Validate()
}

// New constructs a ciphertext from its raw bytes, checking its shape.
func New(bytes []byte) (Ciphertext, error) {
	ct := Ciphertext{slices.Clone(bytes)}
	//
	return ct, ct.Validate()
}

// Build assembles a ciphertext from its components.  For private records a
// two byte little-endian header holding the number of fields is inserted after
// the visibility flag.
func Build(visibility byte, owner *big.Int, body []byte, nonce *big.Int) Ciphertext {
	bytes := []byte{visibility}
	//
	if visibility == Private {
		bytes = append(bytes, 1, 0)
	}
	//
	bytes = append(bytes, field.ToBytesLE(owner)...)
	bytes = append(bytes, body...)
	bytes = append(bytes, field.ToBytesLE(nonce)...)
	//
	return Ciphertext{bytes}
}

// Encode a ciphertext using bech32m.
func Encode(ct Ciphertext) (string, error) {
	words, err := bech32.ConvertBits(ct.bytes, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "encoding record")
	}
	//
	return bech32.EncodeM(HRP, words)
}

// Validate checks the shape of this ciphertext, namely that it has a known
// visibility flag and is long enough to hold an owner and a nonce.
func (ct Ciphertext) Validate() error {
	switch {
	case len(ct.bytes) < MinLength:
		return errors.Wrapf(ErrDecode, "record too short (%d bytes)", len(ct.bytes))
	case ct.bytes[0] != Public && ct.bytes[0] != Private:
		return errors.Wrapf(ErrDecode, "unknown visibility flag %d", ct.bytes[0])
	case ct.bytes[0] == Private && len(ct.bytes) < MinLength+2:
		return errors.Wrapf(ErrDecode, "private record too short (%d bytes)", len(ct.bytes))
	}
	//
	return nil
}

// Bytes returns (a copy of) the raw bytes of this ciphertext.
func (ct Ciphertext) Bytes() []byte {
	return slices.Clone(ct.bytes)
}

// Len returns the number of bytes in this ciphertext.
func (ct Ciphertext) Len() int {
	return len(ct.bytes)
}

// IsOwnerPublic determines whether the owner is stored in the clear.
func (ct Ciphertext) IsOwnerPublic() bool {
	return ct.bytes[0] == Public
}

// ReadField reads a 32-byte field element at a given offset.
func (ct Ciphertext) ReadField(offset int) []byte {
	return slices.Clone(ct.bytes[offset : offset+FieldBytes])
}

// OwnerBytes returns the little-endian encoding of the owner field.
func (ct Ciphertext) OwnerBytes() []byte {
	if ct.IsOwnerPublic() {
		return ct.ReadField(publicOwnerOffset)
	}
	//
	return ct.ReadField(privateOwnerOffset)
}

// NonceBytes returns the little-endian encoding of the nonce x-coordinate,
// which always occupies the final 32 bytes.
func (ct Ciphertext) NonceBytes() []byte {
	return ct.ReadField(len(ct.bytes) - FieldBytes)
}

// Owner returns the owner field as an integer.
func (ct Ciphertext) Owner() *big.Int {
	return BytesToField(ct.OwnerBytes())
}

// Nonce returns the nonce x-coordinate as an integer.
func (ct Ciphertext) Nonce() *big.Int {
	return BytesToField(ct.NonceBytes())
}

// BytesToField interprets little-endian bytes as an integer, without
// reduction.
func BytesToField(bytes []byte) *big.Int {
	return field.FromBytesLE(bytes)
}
