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
	"context"

	"github.com/consensys/go-recordscan/pkg/curve"
	"github.com/consensys/go-recordscan/pkg/poseidon"
)

// CPUBackend is the name of the sequential executor.
const CPUBackend = "cpu"

func init() {
	Register(CPUBackend, 0, func(Config) (Executor, error) {
		return CPUExecutor{}, nil
	})
}

// CPUExecutor classifies jobs one after another using the sequential engine.
type CPUExecutor struct{}

// Name implementation for Executor interface.
func (e CPUExecutor) Name() string {
	return CPUBackend
}

// Execute implementation for Executor interface.  Jobs are processed in order,
// and the context is consulted between jobs.
func (e CPUExecutor) Execute(ctx context.Context, batch *Batch) ([]LaneResult, error) {
	c, err := curve.New(batch.Curve)
	if err != nil {
		return nil, err
	}
	//
	h, err := poseidon.New(batch.Curve)
	if err != nil {
		return nil, err
	}
	//
	results := make([]LaneResult, len(batch.Jobs))
	//
	for i, job := range batch.Jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		//
		results[i].Owned, results[i].Err = IsOwner(c, h, batch.ViewKey, batch.TargetX, job)
	}
	//
	return results, nil
}
