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
	"math/big"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/curve"
	"github.com/consensys/go-recordscan/pkg/field"
	"github.com/consensys/go-recordscan/pkg/record"
	log "github.com/sirupsen/logrus"
)

// Job is a single decoded record awaiting classification.
type Job struct {
	// Index of the record in the original input.
	Index int
	// Public indicates the owner is stored in the clear.
	Public bool
	// Owner field, which is either the owner's address or its masked form.
	Owner *big.Int
	// Nonce x-coordinate.
	Nonce *big.Int
}

// NewJob extracts the fields of a ciphertext needed for an ownership check,
// checking that they are elements of the given field.
func NewJob(index int, ct record.Ciphertext, f *field.Field) (Job, error) {
	job := Job{Index: index, Public: ct.IsOwnerPublic(), Owner: ct.Owner(), Nonce: ct.Nonce()}
	//
	switch {
	case !f.IsCanonical(job.Owner):
		return job, errors.Wrapf(ErrDecode, "owner not an element of %s", f.Name())
	case !f.IsCanonical(job.Nonce):
		return job, errors.Wrapf(ErrDecode, "nonce not an element of %s", f.Name())
	}
	//
	return job, nil
}

// Batch is a set of jobs sharing the same view key and target address.
type Batch struct {
	Curve   curve.Type
	ViewKey *big.Int
	TargetX *big.Int
	Jobs    []Job
}

// LaneResult is the outcome of classifying one job.  Results are returned in
// the same order as the jobs of a batch.
type LaneResult struct {
	Owned bool
	// Err is set when the job could not be classified.
	Err error
}

// Executor classifies every job of a batch.  Failures affecting a single job
// are reported in its lane result, whilst an error return means the batch as a
// whole failed.
type Executor interface {
	// Name of this executor's backend.
	Name() string
	// Execute a batch, returning one result per job.
	Execute(ctx context.Context, batch *Batch) ([]LaneResult, error)
}

type executorCtor struct {
	name     string
	priority int
	new      func(Config) (Executor, error)
}

var (
	ctors   []executorCtor
	ctorsMu sync.RWMutex
)

// Register adds an executor backend with a given priority, such that higher
// priority backends are preferred.  This is typically called from init().
// Registering a name twice replaces the earlier registration.
func Register(name string, priority int, ctor func(Config) (Executor, error)) {
	ctorsMu.Lock()
	defer ctorsMu.Unlock()
	//
	ctors = slices.DeleteFunc(ctors, func(c executorCtor) bool { return c.name == name })
	ctors = append(ctors, executorCtor{name, priority, ctor})
}

// Backends returns the names of all registered backends, highest priority
// first.
func Backends() []string {
	sorted := sortedCtors()
	names := make([]string, len(sorted))
	//
	for i, c := range sorted {
		names[i] = c.name
	}
	//
	return names
}

// NewExecutor constructs the executor for a given configuration.  The backend
// named in the configuration is used if given, otherwise that named by the
// environment variable RECORDSCAN_BACKEND.  Otherwise, the backend with highest
// priority which can be constructed for the configuration is used.
func NewExecutor(config Config) (Executor, error) {
	sorted := sortedCtors()
	//
	if len(sorted) == 0 {
		return nil, errors.Wrap(ErrExecutor, "no backend registered")
	}
	//
	name := config.Backend
	if name == "" {
		name = os.Getenv(BackendEnv)
	}
	//
	if name == "" {
		var errs []error
		//
		for _, c := range sorted {
			executor, err := c.new(config)
			if err == nil {
				log.Debugf("using backend %s", c.name)
				return executor, nil
			}
			//
			log.Debugf("skipping backend %s (%v)", c.name, err)
			errs = append(errs, err)
		}
		//
		return nil, errors.Mark(errors.Join(errs...), ErrExecutor)
	}
	//
	for _, c := range sorted {
		if strings.EqualFold(c.name, name) {
			log.Debugf("using backend %s", c.name)
			return c.new(config)
		}
	}
	//
	return nil, errors.Wrapf(ErrExecutor, "requested backend %q not available", name)
}

func sortedCtors() []executorCtor {
	ctorsMu.RLock()
	defer ctorsMu.RUnlock()
	//
	sorted := make([]executorCtor, len(ctors))
	copy(sorted, ctors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].priority > sorted[j].priority
	})
	//
	return sorted
}
