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
	"runtime"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/curve"
	"github.com/consensys/go-recordscan/pkg/protocol"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Device executes kernels over lanes, grouped into fixed size workgroups which
// run concurrently.
type Device struct {
	workgroupSize uint
	workers       uint
	// Pipelines are built once per curve.
	pipelines map[curve.Type]*Pipeline
	mu        sync.Mutex
}

// Open a device with a given workgroup size and number of concurrent workers.
// Zero values select the defaults.
func Open(workgroupSize, workers uint) *Device {
	if workgroupSize == 0 {
		workgroupSize = protocol.DefaultWorkgroupSize
	}
	//
	if workers == 0 {
		workers = uint(runtime.GOMAXPROCS(0))
	}
	//
	log.Debugf("opened device (workgroup size %d, %d workers)", workgroupSize, workers)
	//
	return &Device{workgroupSize: workgroupSize, workers: workers, pipelines: make(map[curve.Type]*Pipeline)}
}

// WorkgroupSize returns the number of lanes per workgroup.
func (d *Device) WorkgroupSize() uint {
	return d.workgroupSize
}

// Pipeline returns the ownership pipeline for a given curve, building it on
// first use.
func (d *Device) Pipeline(t curve.Type) (*Pipeline, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	//
	if p, ok := d.pipelines[t]; ok {
		return p, nil
	}
	//
	p, err := NewPipeline(t)
	if err != nil {
		return nil, err
	}
	//
	d.pipelines[t] = p
	//
	return p, nil
}

// Dispatch runs the pipeline over every lane of the input buffer, writing one
// status word per lane.  The context is consulted before each workgroup.
func (d *Device) Dispatch(ctx context.Context, p *Pipeline, u *Uniforms, input []uint32) ([]uint32, error) {
	if len(input)%Stride != 0 {
		return nil, errors.Newf("input buffer length %d not a multiple of %d", len(input), Stride)
	}
	//
	var (
		lanes  = len(input) / Stride
		size   = int(d.workgroupSize)
		output = make([]uint32, lanes)
		group  errgroup.Group
	)
	//
	group.SetLimit(int(d.workers))
	//
	for start := 0; start < lanes; start += size {
		end := min(start+size, lanes)
		//
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			//
			for lane := start; lane < end; lane++ {
				output[lane] = p.Run(u, input[lane*Stride:(lane+1)*Stride])
			}
			//
			return nil
		})
	}
	//
	if err := group.Wait(); err != nil {
		return nil, err
	}
	//
	return output, nil
}
