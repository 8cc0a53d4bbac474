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
	"fmt"
	"math/big"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/address"
	"github.com/consensys/go-recordscan/pkg/curve"
	"github.com/consensys/go-recordscan/pkg/poseidon"
	"github.com/consensys/go-recordscan/pkg/record"
	"github.com/consensys/go-recordscan/pkg/util"
	log "github.com/sirupsen/logrus"
)

// Checker answers ownership queries for records over a fixed curve.  A Checker
// holds no mutable state and can be shared between goroutines.
type Checker struct {
	config   Config
	curve    curve.Curve
	hasher   *poseidon.Hasher
	executor Executor
	sdk      SDK
	metrics  *Metrics
}

// Option configures a Checker.
type Option func(*Checker)

// WithExecutor overrides the executor used for bulk checks, rather than
// selecting one from the registry.
func WithExecutor(executor Executor) Option {
	return func(c *Checker) {
		c.executor = executor
	}
}

// WithSDK provides an SDK for decryption and cross checking.
func WithSDK(sdk SDK) Option {
	return func(c *Checker) {
		c.sdk = sdk
	}
}

// WithMetrics records metrics for every check.
func WithMetrics(metrics *Metrics) Option {
	return func(c *Checker) {
		c.metrics = metrics
	}
}

// BulkResult is the outcome of a bulk ownership check.
type BulkResult struct {
	// Backend which executed the check.
	Backend string
	// Owned holds the indices of owned records, in increasing order.
	Owned []int
	// Errors holds the failures of individual records, by index.  Such records
	// are never considered owned.
	Errors map[int]error
}

// NewChecker constructs a checker for a given configuration.
func NewChecker(config Config, options ...Option) (*Checker, error) {
	c, err := curve.New(config.Curve)
	if err != nil {
		return nil, err
	}
	//
	h, err := poseidon.New(config.Curve)
	if err != nil {
		return nil, err
	}
	//
	checker := &Checker{config: config, curve: c, hasher: h}
	//
	for _, option := range options {
		option(checker)
	}
	//
	if checker.executor == nil {
		if checker.executor, err = NewExecutor(config); err != nil {
			return nil, err
		}
	}
	//
	return checker, nil
}

// Curve returns the curve used by this checker.
func (c *Checker) Curve() curve.Curve {
	return c.curve
}

// Hasher returns the hasher used by this checker.
func (c *Checker) Hasher() *poseidon.Hasher {
	return c.hasher
}

// Executor returns the executor used by this checker for bulk checks.
func (c *Checker) Executor() Executor {
	return c.executor
}

// CheckOwnership determines whether a view key owns a given record, where addr
// is the address derived from the view key.  A record which cannot be decoded
// is reported as an error, rather than simply being "not owned".
func (c *Checker) CheckOwnership(ctx context.Context, ciphertext string, viewKey *big.Int, addr string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	//
	targetX, err := c.prepare(viewKey, addr)
	if err != nil {
		return false, err
	}
	//
	owned, err := c.checkOne(ciphertext, viewKey, targetX)
	c.metrics.observe(CPUBackend, owned, err)
	//
	return owned, err
}

func (c *Checker) checkOne(ciphertext string, viewKey, targetX *big.Int) (bool, error) {
	ct, err := record.Decode(ciphertext)
	if err != nil {
		return false, err
	}
	//
	job, err := NewJob(0, ct, c.curve.Field())
	if err != nil {
		return false, err
	}
	//
	return IsOwner(c.curve, c.hasher, viewKey, targetX, job)
}

// BulkCheckOwnership determines which of a list of records are owned by a view
// key.  Every record is classified independently, such that a malformed record
// is reported in the result without affecting any other.  An error is returned
// only when the check as a whole fails (e.g. an invalid address, an executor
// failure or a cancelled context).
func (c *Checker) BulkCheckOwnership(ctx context.Context, ciphertexts []string, viewKey *big.Int,
	addr string) (*BulkResult, error) {
	var (
		stats  = util.NewPerfStats()
		result = &BulkResult{Backend: c.executor.Name(), Errors: make(map[int]error)}
		jobs   []Job
	)
	//
	targetX, err := c.prepare(viewKey, addr)
	if err != nil {
		return nil, err
	}
	// Decode records
	for i, ciphertext := range ciphertexts {
		ct, err := record.Decode(ciphertext)
		//
		if err == nil {
			var job Job
			//
			if job, err = NewJob(i, ct, c.curve.Field()); err == nil {
				jobs = append(jobs, job)
				continue
			}
		}
		//
		log.Debugf("record %d: %v", i, err)
		result.Errors[i] = err
		c.metrics.observe(result.Backend, false, err)
	}
	// Dispatch
	for _, chunk := range chunk(jobs, c.config.MaxBatchSize) {
		if err := c.dispatch(ctx, chunk, viewKey, targetX, result); err != nil {
			return nil, err
		}
	}
	//
	stats.Log(fmt.Sprintf("Checking %d records (%s)", len(ciphertexts), result.Backend))
	//
	return result, nil
}

func (c *Checker) dispatch(ctx context.Context, jobs []Job, viewKey, targetX *big.Int, result *BulkResult) error {
	var (
		start = time.Now()
		batch = &Batch{Curve: c.curve.Type(), ViewKey: viewKey, TargetX: targetX, Jobs: jobs}
	)
	//
	lanes, err := c.executor.Execute(ctx, batch)
	//
	switch {
	case err != nil && errors.Is(err, ctx.Err()):
		return err
	case err != nil:
		return errors.Mark(errors.Wrapf(err, "backend %s", c.executor.Name()), ErrExecutor)
	case len(lanes) != len(jobs):
		return errors.Wrapf(ErrExecutor, "backend %s returned %d results for %d records", c.executor.Name(),
			len(lanes), len(jobs))
	}
	//
	c.metrics.observeBatch(result.Backend, start)
	//
	for i, lane := range lanes {
		index := jobs[i].Index
		//
		switch {
		case lane.Err != nil:
			log.Debugf("record %d: %v", index, lane.Err)
			result.Errors[index] = lane.Err
		case lane.Owned:
			result.Owned = append(result.Owned, index)
		}
		//
		c.metrics.observe(result.Backend, lane.Owned, lane.Err)
	}
	//
	return nil
}

// prepare checks the view key and decodes the target address.
func (c *Checker) prepare(viewKey *big.Int, addr string) (*big.Int, error) {
	if viewKey == nil || viewKey.Sign() < 0 {
		return nil, errors.New("invalid view key")
	}
	//
	return address.DecodeCanonical(addr, c.curve.Field())
}

// chunk splits jobs into consecutive runs of at most n jobs, where n = 0 means
// no limit.
func chunk(jobs []Job, n uint) [][]Job {
	var chunks [][]Job
	//
	if len(jobs) == 0 {
		return nil
	} else if n == 0 {
		return [][]Job{jobs}
	}
	//
	for len(jobs) > 0 {
		m := min(uint(len(jobs)), n)
		chunks = append(chunks, jobs[:m])
		jobs = jobs[m:]
	}
	//
	return chunks
}
