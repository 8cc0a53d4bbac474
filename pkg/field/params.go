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
package field

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// EdwardsBls12Base returns the base field of the twisted Edwards curve defined
// over the scalar field of BLS12-377.  Here, p-1 has two-adicity 47 and 22 is
// the smallest quadratic non-residue.
var EdwardsBls12Base = sync.OnceValue(func() *Field {
	return New("bls12-377/fr", fr.Modulus(), 22)
})

// BN254Base returns the base field of BN254.  Since p ≡ 3 (mod 4) the square
// root degenerates into a single exponentiation.
var BN254Base = sync.OnceValue(func() *Field {
	return New("bn254/fp", fp.Modulus(), 3)
})
