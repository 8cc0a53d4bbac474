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
	"context"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/protocol"
)

// Backend is the name of the data-parallel executor.
const Backend = "gpu"

func init() {
	protocol.Register(Backend, 100, func(config protocol.Config) (protocol.Executor, error) {
		return NewExecutor(config)
	})
}

// Executor classifies jobs in parallel lanes using the limb kernels.
type Executor struct {
	device *Device
}

// NewExecutor opens a device for a given configuration, failing if there is no
// kernel for the configured curve.
func NewExecutor(config protocol.Config) (*Executor, error) {
	device := Open(config.WorkgroupSize, config.Workers)
	//
	if _, err := device.Pipeline(config.Curve); err != nil {
		return nil, err
	}
	//
	return &Executor{device}, nil
}

// Name implementation for protocol.Executor interface.
func (e *Executor) Name() string {
	return Backend
}

// Execute implementation for protocol.Executor interface.  Jobs are packed into
// an input buffer, dispatched as a single grid and the per-lane status words
// are unpacked into results.
func (e *Executor) Execute(ctx context.Context, batch *protocol.Batch) ([]protocol.LaneResult, error) {
	pipeline, err := e.device.Pipeline(batch.Curve)
	if err != nil {
		return nil, err
	}
	//
	uniforms, err := packUniforms(batch)
	if err != nil {
		return nil, err
	}
	//
	input, err := packJobs(batch.Jobs)
	if err != nil {
		return nil, err
	}
	//
	output, err := e.device.Dispatch(ctx, pipeline, uniforms, input)
	if err != nil {
		return nil, err
	}
	//
	results := make([]protocol.LaneResult, len(output))
	//
	for i, word := range output {
		switch word {
		case StatusOwned:
			results[i].Owned = true
		case StatusNonResidue:
			results[i].Err = errors.Wrapf(protocol.ErrNonResidue, "no point with x = %s", batch.Jobs[i].Nonce)
		}
	}
	//
	return results, nil
}

func packUniforms(batch *protocol.Batch) (*Uniforms, error) {
	viewKey, err := FromBig(batch.ViewKey)
	if err != nil {
		return nil, errors.Wrap(err, "view key")
	}
	//
	targetX, err := FromBig(batch.TargetX)
	if err != nil {
		return nil, errors.Wrap(err, "target address")
	}
	//
	return &Uniforms{viewKey, targetX}, nil
}

func packJobs(jobs []protocol.Job) ([]uint32, error) {
	input := make([]uint32, 0, len(jobs)*Stride)
	//
	for _, job := range jobs {
		owner, err := FromBig(job.Owner)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d owner", job.Index)
		}
		//
		nonce, err := FromBig(job.Nonce)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d nonce", job.Index)
		}
		//
		var flag uint32
		if job.Public {
			flag = 1
		}
		//
		input = append(input, flag)
		input = append(input, owner[:]...)
		input = append(input, nonce[:]...)
	}
	//
	return input, nil
}
