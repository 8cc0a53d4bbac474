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
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/curve"
	"github.com/consensys/go-recordscan/pkg/protocol"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// getConfig constructs the checker configuration from the global flags.
func getConfig(cmd *cobra.Command) protocol.Config {
	config := protocol.DefaultConfig()
	//
	c, err := curve.ParseType(GetString(cmd, "curve"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	config.Curve = c
	config.Backend = GetString(cmd, "backend")
	config.WorkgroupSize = GetUint(cmd, "workgroup")
	config.Workers = GetUint(cmd, "workers")
	config.MaxBatchSize = GetUint(cmd, "max-batch")
	//
	return config
}

// newChecker constructs a checker from the global flags, or exits if this is
// not possible.
func newChecker(cmd *cobra.Command, options ...protocol.Option) *protocol.Checker {
	checker, err := protocol.NewChecker(getConfig(cmd), options...)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return checker
}

// getViewKey parses the view key scalar given as a decimal string.
func getViewKey(cmd *cobra.Command) *big.Int {
	str := GetString(cmd, "view-key")
	//
	viewKey, ok := new(big.Int).SetString(str, 10)
	if !ok || viewKey.Sign() < 0 {
		fmt.Printf("invalid view key %q\n", str)
		os.Exit(2)
	}
	//
	return viewKey
}

// readRecords reads one record per line from a given file, where "-" denotes
// stdin.  Blank lines are skipped.
func readRecords(filename string) ([]string, error) {
	var reader io.Reader = os.Stdin
	//
	if filename != "-" {
		file, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		//
		defer file.Close()
		//
		reader = file
	}
	//
	var (
		records []string
		scanner = bufio.NewScanner(reader)
	)
	// Records have no length limit
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<30)
	//
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			records = append(records, line)
		}
	}
	//
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	//
	return records, nil
}
