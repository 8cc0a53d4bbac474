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
package cmd

import (
	"bytes"
	"context"
	"math/big"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/protocol"
	testutil "github.com/consensys/go-recordscan/pkg/test/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReadRecords_00(t *testing.T) {
	fixture := testutil.LoadOwnership(t)
	filename := filepath.Join(t.TempDir(), "records.txt")
	contents := fixture.Private + "\n\n  " + fixture.Public + "  \n"
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o600))
	//
	records, err := readRecords(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{fixture.Private, fixture.Public}, records)
	//
	_, err = readRecords(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func Test_PrintScan_00(t *testing.T) {
	var buf bytes.Buffer
	//
	result := &protocol.BulkResult{
		Backend: protocol.CPUBackend,
		Owned:   []int{0},
		Errors:  map[int]error{2: errors.New("malformed record")},
	}
	//
	printScan(&buf, []string{"record1a", "record1b", "record1c"}, result, false, false)
	assert.Equal(t,
		" index |           status |   record |\n"+
			"     0 |            owned | record1a |\n"+
			"     2 | malformed record | record1c |\n"+
			"1 owned, 1 errors, 3 records (cpu)\n", buf.String())
	// Unowned records on request
	buf.Reset()
	printScan(&buf, []string{"record1a", "record1b", "record1c"}, result, true, false)
	assert.Contains(t, buf.String(), "not owned | record1b")
}

func Test_Bench_00(t *testing.T) {
	bench, err := newBenchmark(protocol.DefaultConfig(), 4, 1)
	require.NoError(t, err)
	assert.Len(t, bench.records, 4)
	assert.Equal(t, []int{0, 2}, bench.owned)
	//
	checker, err := protocol.NewChecker(protocol.DefaultConfig(), protocol.WithExecutor(protocol.CPUExecutor{}))
	require.NoError(t, err)
	//
	result, err := checker.BulkCheckOwnership(context.Background(), bench.records, bench.viewKey, bench.address)
	require.NoError(t, err)
	assert.Equal(t, bench.owned, result.Owned)
	assert.Empty(t, result.Errors)
}

func Test_Bench_01(t *testing.T) {
	var (
		rng   = rand.New(rand.NewPCG(1, 2))
		bound = big.NewInt(1000)
	)
	//
	for range 100 {
		v := randomElement(rng, bound)
		assert.True(t, v.Sign() >= 0 && v.Cmp(bound) < 0, "%s out of range", v)
	}
}

func Test_Metrics_00(t *testing.T) {
	var buf bytes.Buffer
	//
	fixture := testutil.LoadOwnership(t)
	registry := prometheus.NewRegistry()
	metrics, err := protocol.NewMetrics(registry)
	require.NoError(t, err)
	//
	checker, err := protocol.NewChecker(protocol.DefaultConfig(), protocol.WithExecutor(protocol.CPUExecutor{}),
		protocol.WithMetrics(metrics))
	require.NoError(t, err)
	//
	_, err = checker.BulkCheckOwnership(context.Background(), []string{fixture.Public},
		testutil.Int(t, fixture.ViewKey), fixture.Address)
	require.NoError(t, err)
	//
	printMetrics(&buf, registry)
	assert.Contains(t, buf.String(), `recordscan_records_checked_total{backend="cpu",outcome="owned"} 1`)
	assert.Contains(t, buf.String(), `recordscan_batch_duration_seconds_count{backend="cpu"} 1`)
}
