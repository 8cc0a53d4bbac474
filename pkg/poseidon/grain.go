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

	"github.com/consensys/go-recordscan/pkg/field"
)

// Derive computes Poseidon parameters for a given field from scratch, using
// the Grain LFSR to sample round constants and the MDS matrix.  This is how
// the checked-in constant tables were produced.
func Derive(f *field.Field, rate, fullRounds, partialRounds uint) *Parameters {
	var (
		width = rate + 1
		rng   = newGrain(uint(f.Bits()), width, fullRounds, partialRounds)
		p     = &Parameters{
			Field:         f,
			Rate:          rate,
			Capacity:      1,
			FullRounds:    fullRounds,
			PartialRounds: partialRounds,
			Alpha:         big.NewInt(Alpha),
		}
	)
	// Round constants are rejection sampled
	for range fullRounds + partialRounds {
		p.Ark = append(p.Ark, rng.fieldElements(f, width))
	}
	// MDS is a Cauchy matrix 1/(xᵢ+yⱼ) where xs and ys are sampled modulo p.
	xs := rng.reducedElements(f, width)
	ys := rng.reducedElements(f, width)
	//
	for _, x := range xs {
		row := make([]*big.Int, width)
		//
		for j, y := range ys {
			row[j] = f.Inverse(f.Add(x, y))
		}
		//
		p.Mds = append(p.Mds, row)
	}
	//
	return p
}

// grain is the 80-bit self-shrinking LFSR used to generate Poseidon
// parameters.  The state is a circular buffer, with head marking bit 0.
type grain struct {
	state [80]bool
	head  int
	nbits uint
}

func newGrain(nbits, width, fullRounds, partialRounds uint) *grain {
	g := &grain{nbits: nbits}
	// Bits 0..1 encode the field type (prime), bits 2..5 the S-box (xᵅ).
	g.state[1] = true
	g.put(6, 17, nbits)
	g.put(18, 29, width)
	g.put(30, 39, fullRounds)
	g.put(40, 49, partialRounds)
	//
	for i := 50; i < 80; i++ {
		g.state[i] = true
	}
	// Discard first 160 bits
	for range 160 {
		g.update()
	}
	//
	return g
}

// put writes v into bits lo..hi (inclusive), most significant bit first.
func (g *grain) put(lo, hi int, v uint) {
	for i := hi; i >= lo; i-- {
		g.state[i] = v&1 == 1
		v >>= 1
	}
}

func (g *grain) update() bool {
	var (
		s = &g.state
		h = g.head
	)
	//
	bit := s[(h+62)%80] != s[(h+51)%80]
	bit = bit != s[(h+38)%80]
	bit = bit != s[(h+23)%80]
	bit = bit != s[(h+13)%80]
	bit = bit != s[h]
	//
	s[h] = bit
	g.head = (h + 1) % 80
	//
	return bit
}

// nextBit applies the shrinking filter: bits are taken in pairs, with the
// second emitted only when the first is set.
func (g *grain) nextBit() bool {
	for !g.update() {
		g.update()
	}
	//
	return g.update()
}

// nextNumber assembles nbits bits into an integer, most significant first.
func (g *grain) nextNumber() *big.Int {
	v := new(big.Int)
	//
	for range g.nbits {
		v.Lsh(v, 1)
		//
		if g.nextBit() {
			v.SetBit(v, 0, 1)
		}
	}
	//
	return v
}

func (g *grain) fieldElements(f *field.Field, n uint) []*big.Int {
	elements := make([]*big.Int, n)
	//
	for i := range elements {
		v := g.nextNumber()
		//
		for !f.IsCanonical(v) {
			v = g.nextNumber()
		}
		//
		elements[i] = v
	}
	//
	return elements
}

func (g *grain) reducedElements(f *field.Field, n uint) []*big.Int {
	elements := make([]*big.Int, n)
	//
	for i := range elements {
		elements[i] = f.Reduce(g.nextNumber())
	}
	//
	return elements
}
