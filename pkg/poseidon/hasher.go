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
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/curve"
)

const (
	// HashDomain is the domain separator prefixed to every preimage.
	HashDomain = "AleoPoseidon8"
	// EncryptionDomain is the domain separator of the symmetric encryption
	// scheme whose first mask element is computed by Hash.
	EncryptionDomain = "AleoSymmetricEncryption0"
)

// Hasher computes Poseidon hashes over a fixed set of parameters.  A Hasher is
// immutable and safe for concurrent use.
type Hasher struct {
	params    *Parameters
	domain    *big.Int
	encDomain *big.Int
	// Output of permuting the first block [0, domain, 2, 0, ..., 0], which is
	// the same for every call to Hash.
	first func() []*big.Int
}

var hashers = map[curve.Type]func() *Hasher{
	curve.EdwardsBls12: sync.OnceValue(func() *Hasher { return NewHasher(parameters[curve.EdwardsBls12]()) }),
	curve.BN254:        sync.OnceValue(func() *Hasher { return NewHasher(parameters[curve.BN254]()) }),
}

// New returns the (shared) hasher for a given curve.
func New(t curve.Type) (*Hasher, error) {
	if fn, ok := hashers[t]; ok {
		return fn(), nil
	}
	//
	return nil, errors.Wrapf(curve.ErrUnsupportedCurve, "no poseidon hasher for %s", t)
}

// NewHasher constructs a hasher for an arbitrary set of parameters.
func NewHasher(params *Parameters) *Hasher {
	h := &Hasher{
		params:    params,
		domain:    params.Field.DomainSeparator(HashDomain),
		encDomain: params.Field.DomainSeparator(EncryptionDomain),
	}
	//
	h.first = sync.OnceValue(func() []*big.Int {
		state := h.zeroState()
		state[1] = new(big.Int).Set(h.domain)
		state[2] = big.NewInt(2)
		//
		return params.Permute(state)
	})
	//
	return h
}

// Parameters returns the permutation parameters of this hasher.
func (h *Hasher) Parameters() *Parameters {
	return h.params
}

// Domain returns the hash domain separator as a field element.
func (h *Hasher) Domain() *big.Int {
	return new(big.Int).Set(h.domain)
}

// EncryptionDomain returns the encryption domain separator as a field element.
func (h *Hasher) EncryptionDomain() *big.Int {
	return new(big.Int).Set(h.encDomain)
}

// FirstBlock returns (a copy of) the state obtained by permuting the fixed
// first block.  This is computed at most once per hasher.
func (h *Hasher) FirstBlock() []*big.Int {
	first := h.first()
	state := make([]*big.Int, len(first))
	//
	for i, v := range first {
		state[i] = new(big.Int).Set(v)
	}
	//
	return state
}

// Hash computes the first mask element of the symmetric encryption scheme for
// a given input, as used to blind record owners.  This is equivalent to
// HashMany([encryption domain, x], 1), but skips the first permutation.
func (h *Hasher) Hash(x *big.Int) *big.Int {
	var (
		f     = h.params.Field
		state = h.FirstBlock()
	)
	//
	state[1] = f.Add(state[1], h.encDomain)
	state[2] = f.Add(state[2], f.Reduce(x))
	//
	return h.params.Permute(state)[1]
}

// HashMany absorbs an arbitrary number of inputs and squeezes n outputs.  The
// preimage is [domain, len(inputs)], padded with zeros up to the rate, and then
// followed by the inputs themselves.
func (h *Hasher) HashMany(inputs []*big.Int, n uint) []*big.Int {
	var (
		f        = h.params.Field
		rate     = int(h.params.Rate)
		preimage = make([]*big.Int, rate, rate+len(inputs))
		state    = h.zeroState()
		outputs  []*big.Int
	)
	//
	preimage[0] = h.Domain()
	preimage[1] = f.Uint64(uint64(len(inputs)))
	//
	for i := 2; i < rate; i++ {
		preimage[i] = f.Zero()
	}
	//
	for _, x := range inputs {
		preimage = append(preimage, f.Reduce(x))
	}
	// Absorb
	for i := 0; i < len(preimage); i += rate {
		if i > 0 {
			state = h.params.Permute(state)
		}
		//
		for j, x := range preimage[i:min(i+rate, len(preimage))] {
			state[1+j] = f.Add(state[1+j], x)
		}
	}
	// Squeeze
	for uint(len(outputs)) < n {
		state = h.params.Permute(state)
		//
		for j := 1; j <= rate && uint(len(outputs)) < n; j++ {
			outputs = append(outputs, state[j])
		}
	}
	//
	return outputs
}

func (h *Hasher) zeroState() []*big.Int {
	state := make([]*big.Int, h.params.Width())
	//
	for i := range state {
		state[i] = new(big.Int)
	}
	//
	return state
}
