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

import "math/big"

// Sqrt computes a square root of a using Tonelli-Shanks, specialised with the
// precomputed constants of this field.  When a is not a quadratic residue the
// zero sentinel is returned.  Observe that zero is also the (only) root of
// zero, hence callers which must distinguish these cases should first check
// IsSquare().
func (f *Field) Sqrt(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	//
	var (
		one = big.NewInt(1)
		m   = f.sqrt.S
		c   = new(big.Int).Set(f.sqrt.C)
		t   = f.Pow(a, f.sqrt.Q)
		r   = f.Pow(a, f.sqrt.QPlusOneHalf)
	)
	//
	for t.Cmp(one) != 0 {
		// Find least i such that t^(2^i) = 1
		i := uint(0)
		for tt := t; tt.Cmp(one) != 0; i++ {
			if i+1 == m {
				// Order of t is not below 2^m, hence a is a non-residue.
				return new(big.Int)
			}
			//
			tt = f.Square(tt)
		}
		// b = c^(2^(m-i-1))
		b := c
		for j := uint(0); j < m-i-1; j++ {
			b = f.Square(b)
		}
		//
		r = f.Mul(r, b)
		c = f.Square(b)
		t = f.Mul(t, c)
		m = i
	}
	//
	return r
}
