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
	"context"
	"fmt"
	"io"
	"math/big"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/consensys/go-recordscan/pkg/address"
	"github.com/consensys/go-recordscan/pkg/protocol"
	"github.com/consensys/go-recordscan/pkg/record"
	"github.com/consensys/go-recordscan/pkg/util"
	"github.com/consensys/go-recordscan/pkg/util/termio"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench [flags]",
	Short: "Measure the throughput of bulk ownership checks.",
	Long: `Measure the throughput of bulk ownership checks for each backend.
	A set of private records is synthesised, a fraction of which are owned by
	the view key, and then checked using every requested backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			config   = getConfig(cmd)
			n        = GetUint(cmd, "records")
			seed     = GetUint(cmd, "seed")
			backends = protocol.Backends()
		)
		//
		if names := GetString(cmd, "backend"); names != "" {
			backends = strings.Split(names, ",")
		}
		//
		registry := prometheus.NewRegistry()
		//
		metrics, err := protocol.NewMetrics(registry)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		bench, err := newBenchmark(config, n, uint64(seed))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		table := termio.NewTablePrinter("backend", "records", "owned", "seconds", "records/s")
		//
		for _, backend := range backends {
			config.Backend = backend
			//
			checker, err := protocol.NewChecker(config, protocol.WithMetrics(metrics))
			if err != nil {
				log.Warnf("skipping backend %s (%v)", backend, err)
				continue
			}
			//
			stats := util.NewPerfStats()
			//
			result, err := checker.BulkCheckOwnership(context.Background(), bench.records, bench.viewKey, bench.address)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			if !slices.Equal(result.Owned, bench.owned) {
				fmt.Printf("backend %s misclassified records\n", result.Backend)
				os.Exit(1)
			}
			//
			table.AddRow("", result.Backend, strconv.Itoa(len(bench.records)), strconv.Itoa(len(result.Owned)),
				fmt.Sprintf("%.3f", stats.Elapsed().Seconds()), fmt.Sprintf("%.1f", stats.Throughput(len(bench.records))))
		}
		//
		table.AnsiEscapes(termio.IsTerminal(os.Stdout))
		table.Print(os.Stdout)
		//
		if GetFlag(cmd, "metrics") {
			printMetrics(os.Stdout, registry)
		}
	},
}

// benchmark is a synthesised set of records.
type benchmark struct {
	viewKey *big.Int
	address string
	records []string
	// Indices of owned records
	owned []int
}

// newBenchmark synthesises n private records, every other one of which is
// owned by a randomly chosen view key and address.
func newBenchmark(config protocol.Config, n uint, seed uint64) (*benchmark, error) {
	checker, err := protocol.NewChecker(config, protocol.WithExecutor(protocol.CPUExecutor{}))
	if err != nil {
		return nil, err
	}
	//
	var (
		rng      = rand.New(rand.NewPCG(seed, seed))
		c        = checker.Curve()
		f        = c.Field()
		viewKey  = randomElement(rng, c.Order())
		addressX = randomElement(rng, f.Modulus())
		bench    = &benchmark{viewKey: viewKey}
	)
	//
	if bench.address, err = address.Encode(addressX); err != nil {
		return nil, err
	}
	//
	for i := range int(n) {
		nonceX, _ := c.ToAffine(c.ScalarMul(c.Generator(), randomElement(rng, c.Order())))
		owner := randomElement(rng, f.Modulus())
		//
		if i%2 == 0 {
			if owner, err = protocol.BlindOwner(c, checker.Hasher(), nonceX, viewKey, addressX); err != nil {
				return nil, err
			}
			//
			bench.owned = append(bench.owned, i)
		}
		//
		encoded, err := record.Encode(record.Build(record.Private, owner, nil, nonceX))
		if err != nil {
			return nil, err
		}
		//
		bench.records = append(bench.records, encoded)
	}
	//
	log.Infof("synthesised %d records (%d owned)", n, len(bench.owned))
	//
	return bench, nil
}

// randomElement returns a uniformly random value in [0, bound).
func randomElement(rng *rand.Rand, bound *big.Int) *big.Int {
	var (
		bytes = make([]byte, (bound.BitLen()+7)/8)
		v     = new(big.Int)
	)
	//
	for {
		for i := range bytes {
			bytes[i] = byte(rng.Uint32())
		}
		//
		v.SetBytes(bytes)
		v.Rsh(v, uint(8*len(bytes)-bound.BitLen()))
		//
		if v.Cmp(bound) < 0 {
			return v
		}
	}
}

// printMetrics writes the value of every counter in a registry.
func printMetrics(w io.Writer, registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	//
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			var labels []string
			//
			for _, label := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
			}
			//
			switch {
			case metric.GetCounter() != nil:
				fmt.Fprintf(w, "%s{%s} %v\n", family.GetName(), strings.Join(labels, ","), metric.GetCounter().GetValue())
			case metric.GetHistogram() != nil:
				fmt.Fprintf(w, "%s_count{%s} %v\n", family.GetName(), strings.Join(labels, ","),
					metric.GetHistogram().GetSampleCount())
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Uint("records", 64, "number of records to synthesise")
	benchCmd.Flags().Uint("seed", 0, "seed for synthesising records")
	benchCmd.Flags().Bool("metrics", false, "print collected metrics")
}
