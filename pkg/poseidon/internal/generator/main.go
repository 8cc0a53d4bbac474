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
package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
	"github.com/consensys/go-recordscan/pkg/field"
	"github.com/consensys/go-recordscan/pkg/poseidon"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-recordscan")

	specs := []tableSpecs{
		{File: "edwards_bls12", Ident: "edwardsBls12", Description: "the scalar field of BLS12-377",
			Field: field.EdwardsBls12Base()},
		{File: "bn254", Ident: "bn254", Description: "the base field of BN254", Field: field.BN254Base()},
	}

	for _, spec := range specs {
		cfg := spec.config()

		assertNoError(bgen.Generate(cfg, "poseidon", "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../constants_%s.go", spec.File),
				Templates: []string{"constants.go.tmpl"},
			},
		), "for table \"%s\"", spec.File)
	}
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type tableSpecs struct {
	File        string
	Ident       string
	Description string
	Field       *field.Field
}

type tableConfig struct {
	tableSpecs
	Ark [][]string
	Mds [][]string
}

func (t tableSpecs) config() *tableConfig {
	params := poseidon.Derive(t.Field, poseidon.Rate, poseidon.FullRounds, poseidon.PartialRounds)

	return &tableConfig{
		tableSpecs: t,
		Ark:        toStrings(params.Ark),
		Mds:        toStrings(params.Mds),
	}
}

func toStrings(table [][]*big.Int) [][]string {
	rows := make([][]string, len(table))

	for i, row := range table {
		for _, v := range row {
			rows[i] = append(rows[i], v.String())
		}
	}

	return rows
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
