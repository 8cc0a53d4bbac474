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
	"fmt"
	"math/big"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/curve"
	"github.com/consensys/go-recordscan/pkg/field"
)

const (
	// Rate is the number of state elements absorbed per permutation.
	Rate = 8
	// Capacity is the number of state elements never directly absorbed into.
	Capacity = 1
	// Width of the permutation state.
	Width = Rate + Capacity
	// FullRounds is the total number of full rounds, split evenly either side
	// of the partial rounds.
	FullRounds = 8
	// PartialRounds is the number of partial rounds.
	PartialRounds = 31
	// NumRounds is the total number of rounds.
	NumRounds = FullRounds + PartialRounds
	// Alpha is the S-box exponent.
	Alpha = 17
)

// Parameters determines a Poseidon permutation over a given field.  The round
// constants and MDS matrix are fixed per curve and shared by all hashers.
type Parameters struct {
	Field         *field.Field
	Rate          uint
	Capacity      uint
	FullRounds    uint
	PartialRounds uint
	Alpha         *big.Int
	// Round constants, one row of Width elements per round.
	Ark [][]*big.Int
	// MDS matrix (Width x Width).
	Mds [][]*big.Int
}

// Width returns the state width of this permutation.
func (p *Parameters) Width() uint {
	return p.Rate + p.Capacity
}

// Rounds returns the total number of rounds.
func (p *Parameters) Rounds() uint {
	return p.FullRounds + p.PartialRounds
}

// IsFullRound determines whether a given round applies the S-box to every lane.
func (p *Parameters) IsFullRound(round uint) bool {
	half := p.FullRounds / 2
	return round < half || round >= half+p.PartialRounds
}

// Equal determines whether two sets of parameters are identical.
func (p *Parameters) Equal(o *Parameters) bool {
	if p.Rate != o.Rate || p.Capacity != o.Capacity || p.FullRounds != o.FullRounds ||
		p.PartialRounds != o.PartialRounds || p.Alpha.Cmp(o.Alpha) != 0 {
		return false
	}
	//
	return tableEqual(p.Ark, o.Ark) && tableEqual(p.Mds, o.Mds)
}

var parameters = map[curve.Type]func() *Parameters{
	curve.EdwardsBls12: sync.OnceValue(func() *Parameters {
		return fromTables(field.EdwardsBls12Base(), edwardsBls12Ark, edwardsBls12Mds)
	}),
	curve.BN254: sync.OnceValue(func() *Parameters {
		return fromTables(field.BN254Base(), bn254Ark, bn254Mds)
	}),
}

// ForCurve returns the (shared) Poseidon parameters for a given curve.
func ForCurve(t curve.Type) (*Parameters, error) {
	if fn, ok := parameters[t]; ok {
		return fn(), nil
	}
	//
	return nil, errors.Wrapf(curve.ErrUnsupportedCurve, "no poseidon parameters for %s", t)
}

func fromTables(f *field.Field, ark [NumRounds][Width]string, mds [Width][Width]string) *Parameters {
	p := &Parameters{
		Field:         f,
		Rate:          Rate,
		Capacity:      Capacity,
		FullRounds:    FullRounds,
		PartialRounds: PartialRounds,
		Alpha:         big.NewInt(Alpha),
		Ark:           make([][]*big.Int, NumRounds),
		Mds:           make([][]*big.Int, Width),
	}
	//
	for i := range ark {
		p.Ark[i] = parseRow(f, ark[i][:])
	}
	//
	for i := range mds {
		p.Mds[i] = parseRow(f, mds[i][:])
	}
	//
	return p
}

func parseRow(f *field.Field, row []string) []*big.Int {
	elements := make([]*big.Int, len(row))
	//
	for i, s := range row {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok || !f.IsCanonical(v) {
			panic(fmt.Sprintf("invalid constant %q for %s", s, f.Name()))
		}
		//
		elements[i] = v
	}
	//
	return elements
}

func tableEqual(lhs, rhs [][]*big.Int) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	//
	for i := range lhs {
		if len(lhs[i]) != len(rhs[i]) {
			return false
		}
		//
		for j := range lhs[i] {
			if lhs[i][j].Cmp(rhs[i][j]) != 0 {
				return false
			}
		}
	}
	//
	return true
}
