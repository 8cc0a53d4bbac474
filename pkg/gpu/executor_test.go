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
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/curve"
	"github.com/consensys/go-recordscan/pkg/protocol"
	"github.com/consensys/go-recordscan/pkg/record"
	testutil "github.com/consensys/go-recordscan/pkg/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Executor_00(t *testing.T) {
	checkBulk(t, 64, 0)
}

func Test_Executor_01(t *testing.T) {
	// One lane per workgroup, and one record per dispatch
	checkBulk(t, 1, 1)
}

func Test_Executor_02(t *testing.T) {
	t.Setenv(protocol.BackendEnv, "")
	// Preferred by default
	assert.Equal(t, Backend, protocol.Backends()[0])
	executor, err := protocol.NewExecutor(protocol.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, Backend, executor.Name())
	// No kernel for BN254, so falls back to the sequential engine
	config := protocol.DefaultConfig()
	config.Curve = curve.BN254
	_, err = NewExecutor(config)
	assert.True(t, errors.Is(err, protocol.ErrUnsupportedCurve))
	executor, err = protocol.NewExecutor(config)
	require.NoError(t, err)
	assert.Equal(t, protocol.CPUBackend, executor.Name())
}

func Test_Executor_03(t *testing.T) {
	fixture := testutil.LoadOwnership(t)
	executor, err := NewExecutor(protocol.DefaultConfig())
	require.NoError(t, err)
	//
	batch := &protocol.Batch{
		Curve:   curve.EdwardsBls12,
		ViewKey: testutil.Int(t, fixture.ViewKey),
		TargetX: testutil.Int(t, fixture.AddressX),
		Jobs: []protocol.Job{
			{Index: 0, Owner: testutil.Int(t, fixture.Owner), Nonce: testutil.Int(t, fixture.NonceX)},
			{Index: 1, Owner: testutil.Int(t, fixture.Owner), Nonce: big.NewInt(1)},
		},
	}
	// Lanes match the sequential engine
	expected, err := protocol.CPUExecutor{}.Execute(context.Background(), batch)
	require.NoError(t, err)
	actual, err := executor.Execute(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, actual, 2)
	assert.Equal(t, expected[0], actual[0])
	assert.True(t, errors.Is(expected[1].Err, protocol.ErrNonResidue))
	assert.True(t, errors.Is(actual[1].Err, protocol.ErrNonResidue))
	// Curve without a kernel
	batch.Curve = curve.BN254
	_, err = executor.Execute(context.Background(), batch)
	assert.True(t, errors.Is(err, protocol.ErrUnsupportedCurve))
	// Values out of range
	batch.Curve = curve.EdwardsBls12
	batch.ViewKey = new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = executor.Execute(context.Background(), batch)
	assert.Error(t, err)
}

func Test_Device_00(t *testing.T) {
	device := Open(2, 2)
	pipeline, err := device.Pipeline(curve.EdwardsBls12)
	require.NoError(t, err)
	// Pipelines are cached
	again, err := device.Pipeline(curve.EdwardsBls12)
	require.NoError(t, err)
	assert.Same(t, pipeline, again)
	//
	_, err = device.Dispatch(context.Background(), pipeline, &Uniforms{}, make([]uint32, Stride+1))
	assert.Error(t, err)
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	//
	_, err = device.Dispatch(ctx, pipeline, &Uniforms{}, make([]uint32, 4*Stride))
	assert.True(t, errors.Is(err, context.Canceled))
}

func Test_Device_01(t *testing.T) {
	device := Open(0, 0)
	pipeline, err := device.Pipeline(curve.EdwardsBls12)
	require.NoError(t, err)
	// Public lanes compare the owner directly
	input := make([]uint32, 3*Stride)
	input[0], input[Stride], input[2*Stride] = 1, 1, 1
	input[Stride-1] = 7
	input[2*Stride-1-NumLimbs] = 5
	//
	output, err := device.Dispatch(context.Background(), pipeline, &Uniforms{TargetX: FromUint32(5)}, input)
	require.NoError(t, err)
	assert.Equal(t, []uint32{StatusNotOwned, StatusOwned, StatusNotOwned}, output)
	assert.Equal(t, uint(protocol.DefaultWorkgroupSize), device.WorkgroupSize())
}

// checkBulk runs a bulk check through the data-parallel backend over a mix of
// owned, unowned and malformed records.
func checkBulk(t *testing.T, workgroupSize uint, maxBatchSize uint) {
	fixture := testutil.LoadOwnership(t)
	config := protocol.DefaultConfig()
	config.Backend = Backend
	config.WorkgroupSize = workgroupSize
	config.MaxBatchSize = maxBatchSize
	//
	checker, err := protocol.NewChecker(config)
	require.NoError(t, err)
	//
	nonResidue, err := record.Encode(record.Build(record.Private, big.NewInt(1), nil, big.NewInt(1)))
	require.NoError(t, err)
	//
	records := []string{
		fixture.Private,
		fixture.Malformed["short"],
		fixture.Public,
		nonResidue,
		fixture.Private,
	}
	//
	result, err := checker.BulkCheckOwnership(context.Background(), records, testutil.Int(t, fixture.ViewKey),
		fixture.Address)
	require.NoError(t, err)
	assert.Equal(t, Backend, result.Backend)
	assert.Equal(t, []int{0, 2, 4}, result.Owned)
	require.Len(t, result.Errors, 2)
	assert.True(t, errors.Is(result.Errors[1], protocol.ErrDecode))
	assert.True(t, errors.Is(result.Errors[3], protocol.ErrNonResidue))
}
