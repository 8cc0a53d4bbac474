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
	"github.com/consensys/go-recordscan/pkg/curve"
)

// BackendEnv is the environment variable which, when set, forces the choice of
// executor backend.
const BackendEnv = "RECORDSCAN_BACKEND"

// DefaultWorkgroupSize is the number of lanes per workgroup.
const DefaultWorkgroupSize = 64

// Config determines how ownership checks are carried out.
type Config struct {
	// Curve over which records are defined.
	Curve curve.Type
	// Backend names the executor to use for bulk checks.  When empty, the
	// backend is taken from the environment or, failing that, the registered
	// backend with highest priority is used.
	Backend string
	// WorkgroupSize is the number of lanes per workgroup for parallel
	// backends.
	WorkgroupSize uint
	// Workers bounds the number of workgroups executing concurrently, where 0
	// means one per available CPU.
	Workers uint
	// MaxBatchSize bounds the number of records submitted to an executor in a
	// single dispatch, where 0 means unbounded.
	MaxBatchSize uint
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Curve:         curve.EdwardsBls12,
		WorkgroupSize: DefaultWorkgroupSize,
	}
}
