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
	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/curve"
	"github.com/consensys/go-recordscan/pkg/poseidon"
)

// Lane status codes written to the output buffer.
const (
	StatusNotOwned uint32 = iota
	StatusOwned
	StatusNonResidue
)

// Stride is the number of words per lane in the input buffer: a visibility
// flag, then the owner and nonce limbs.
const Stride = 1 + 2*NumLimbs

// Uniforms are the values shared by every lane of a dispatch.
type Uniforms struct {
	ViewKey Limbs
	TargetX Limbs
}

// Pipeline is the compiled ownership kernel for a given curve, along with its
// uploaded constants.
type Pipeline struct {
	curve    curve.Type
	constant *CurveConstants
	poseidon *PoseidonConstants
}

// NewPipeline builds the ownership pipeline for a given curve.  Only the
// twisted Edwards curve is supported.
func NewPipeline(t curve.Type) (*Pipeline, error) {
	c, err := curve.New(t)
	if err != nil {
		return nil, err
	}
	//
	edwards, ok := c.(*curve.Edwards)
	if !ok {
		return nil, errors.Wrapf(curve.ErrUnsupportedCurve, "no kernel for %s", t)
	}
	//
	h, err := poseidon.New(t)
	if err != nil {
		return nil, err
	}
	//
	return &Pipeline{t, NewCurveConstants(edwards), NewPoseidonConstants(h)}, nil
}

// Curve returns the curve this pipeline was built for.
func (p *Pipeline) Curve() curve.Type {
	return p.curve
}

// Run the ownership kernel for a single lane, reading its words from the input
// buffer and returning its status.
func (p *Pipeline) Run(u *Uniforms, input []uint32) uint32 {
	var (
		owner, nonce Limbs
		fc           = p.constant.Field
	)
	//
	copy(owner[:], input[1:1+NumLimbs])
	copy(nonce[:], input[1+NumLimbs:Stride])
	// Public records
	if input[0] != 0 {
		return status(owner == u.TargetX)
	}
	//
	point, ok := DecompressX(nonce, p.constant)
	if !ok {
		return StatusNonResidue
	}
	//
	shared := ToAffineX(ScalarMul(point, u.ViewKey, p.constant), p.constant)
	mask := PoseidonHash(shared, p.poseidon, fc)
	//
	return status(FieldSub(owner, mask, fc.Modulus) == u.TargetX)
}

func status(owned bool) uint32 {
	if owned {
		return StatusOwned
	}
	//
	return StatusNotOwned
}
