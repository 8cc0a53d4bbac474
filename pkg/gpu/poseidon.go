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
package gpu

import (
	"github.com/consensys/go-recordscan/pkg/poseidon"
)

// State is the Poseidon permutation state.
type State [poseidon.Width]Limbs

// PoseidonConstants holds the round constants, MDS matrix and precomputed
// first block uploaded for the Poseidon kernel.
type PoseidonConstants struct {
	FullRounds    uint32
	PartialRounds uint32
	Alpha         Limbs
	Ark           [poseidon.NumRounds]State
	Mds           [poseidon.Width]State
	// State after absorbing the domain header, and the encryption domain
	// separator.
	FirstBlock State
	EncDomain  Limbs
}

// NewPoseidonConstants converts the parameters of a host hasher into limbs.
func NewPoseidonConstants(h *poseidon.Hasher) *PoseidonConstants {
	var (
		params = h.Parameters()
		pc     = &PoseidonConstants{
			FullRounds:    uint32(params.FullRounds),
			PartialRounds: uint32(params.PartialRounds),
			Alpha:         MustFromBig(params.Alpha),
			EncDomain:     MustFromBig(h.EncryptionDomain()),
		}
	)
	//
	for r, row := range params.Ark {
		for i, v := range row {
			pc.Ark[r][i] = MustFromBig(v)
		}
	}
	//
	for r, row := range params.Mds {
		for i, v := range row {
			pc.Mds[r][i] = MustFromBig(v)
		}
	}
	//
	for i, v := range h.FirstBlock() {
		pc.FirstBlock[i] = MustFromBig(v)
	}
	//
	return pc
}

// Permute applies the Poseidon permutation in place.
func Permute(st *State, pc *PoseidonConstants, fc *FieldConstants) {
	var (
		m    = fc.Modulus
		half = pc.FullRounds / 2
	)
	//
	for r := range pc.FullRounds + pc.PartialRounds {
		for i := range st {
			st[i] = FieldAdd(st[i], pc.Ark[r][i], m)
		}
		//
		if r < half || r >= half+pc.PartialRounds {
			for i := range st {
				st[i] = FieldPow(st[i], pc.Alpha, m)
			}
		} else {
			st[0] = FieldPow(st[0], pc.Alpha, m)
		}
		//
		mix(st, pc, m)
	}
}

func mix(st *State, pc *PoseidonConstants, m Limbs) {
	var out State
	//
	for i, row := range pc.Mds {
		var acc Limbs
		//
		for j, v := range row {
			acc = FieldAdd(acc, FieldModulusFieldMultiply(v, st[j], m), m)
		}
		//
		out[i] = acc
	}
	//
	*st = out
}

// PoseidonHash computes the first mask element for a given input, starting from
// the precomputed first block.
func PoseidonHash(x Limbs, pc *PoseidonConstants, fc *FieldConstants) Limbs {
	m := fc.Modulus
	st := pc.FirstBlock
	//
	st[1] = FieldAdd(st[1], pc.EncDomain, m)
	st[2] = FieldAdd(st[2], FieldModulusFieldReduce(x, m), m)
	Permute(&st, pc, fc)
	//
	return st[1]
}
