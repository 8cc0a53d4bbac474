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
)

// Permute applies the full Poseidon permutation to a given state, returning a
// fresh state.  Each round adds the round constants, applies the S-box (to
// every lane in a full round, or just lane 0 in a partial round) and then
// multiplies by the MDS matrix.
func (p *Parameters) Permute(state []*big.Int) []*big.Int {
	if uint(len(state)) != p.Width() {
		panic(fmt.Sprintf("invalid state width (%d vs %d)", len(state), p.Width()))
	}
	//
	f := p.Field
	st := make([]*big.Int, len(state))
	copy(st, state)
	//
	for r := range p.Rounds() {
		// Add round constants
		for i := range st {
			st[i] = f.Add(st[i], p.Ark[r][i])
		}
		// S-box
		if p.IsFullRound(r) {
			for i := range st {
				st[i] = f.Pow(st[i], p.Alpha)
			}
		} else {
			st[0] = f.Pow(st[0], p.Alpha)
		}
		// Mix
		st = p.mix(st)
	}
	//
	return st
}

func (p *Parameters) mix(state []*big.Int) []*big.Int {
	var (
		f   = p.Field
		out = make([]*big.Int, len(state))
		acc = new(big.Int)
	)
	//
	for i, row := range p.Mds {
		acc.SetUint64(0)
		//
		for j, m := range row {
			acc.Add(acc, new(big.Int).Mul(m, state[j]))
		}
		//
		out[i] = f.Reduce(acc)
	}
	//
	return out
}
