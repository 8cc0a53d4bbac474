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
package protocol

import (
	"math/big"

	"github.com/consensys/go-recordscan/pkg/curve"
	"github.com/consensys/go-recordscan/pkg/poseidon"
)

// Mask computes the value used to blind the owner of a private record with a
// given nonce.  The nonce is decompressed, multiplied by the view key and the
// x-coordinate of the resulting shared secret is hashed.
func Mask(c curve.Curve, h *poseidon.Hasher, nonceX, viewKey *big.Int) (*big.Int, error) {
	nonce, err := c.DecompressX(nonceX)
	if err != nil {
		return nil, err
	}
	//
	shared, _ := c.ToAffine(c.ScalarMul(nonce, viewKey))
	//
	return h.Hash(shared), nil
}

// IsOwner classifies a single job using the sequential engine.  For public
// records the owner field is compared directly against the target; for private
// records the mask is first removed.
func IsOwner(c curve.Curve, h *poseidon.Hasher, viewKey, targetX *big.Int, job Job) (bool, error) {
	if job.Public {
		return job.Owner.Cmp(targetX) == 0, nil
	}
	//
	mask, err := Mask(c, h, job.Nonce, viewKey)
	if err != nil {
		return false, err
	}
	//
	ownerX := c.Field().Sub(job.Owner, mask)
	//
	return ownerX.Cmp(targetX) == 0, nil
}

// BlindOwner computes the owner field of a private record owned by a given
// address, i.e. the address x-coordinate plus the mask.
func BlindOwner(c curve.Curve, h *poseidon.Hasher, nonceX, viewKey, addressX *big.Int) (*big.Int, error) {
	mask, err := Mask(c, h, nonceX, viewKey)
	if err != nil {
		return nil, err
	}
	//
	return c.Field().Add(addressX, mask), nil
}
