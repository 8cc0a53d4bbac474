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
	"fmt"
	"os"
	"runtime/debug"

	// Data-parallel backend
	_ "github.com/consensys/go-recordscan/pkg/gpu"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recordscan",
	Short: "Detect ownership of encrypted records.",
	Long: `Detect which encrypted records are owned by a given view key and address.
	Records are given as bech32m strings with the "record" prefix, and addresses
	with the "aleo" prefix.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "debug") {
			log.SetLevel(log.DebugLevel)
		} else if GetFlag(cmd, "verbose") {
			log.SetLevel(log.InfoLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if !GetFlag(cmd, "version") {
			fmt.Println(cmd.UsageString())
			return
		}
		//
		fmt.Print("recordscan ")
		//
		if Version != "" {
			// Built via "make"
			fmt.Printf("%s", Version)
		} else if info, ok := debug.ReadBuildInfo(); ok {
			// Built via "go install"
			fmt.Printf("%s", info.Main.Version)
		} else {
			// Unknown, perhaps "go run"
			fmt.Printf("(unknown version)")
		}
		//
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("debug", false, "report debugging information (e.g. timings)")
	rootCmd.PersistentFlags().String("curve", "edwards-bls12", "curve over which records are defined")
	rootCmd.PersistentFlags().String("backend", "", "executor backend for bulk checks (e.g. cpu, gpu)")
	rootCmd.PersistentFlags().Uint("workgroup", 64, "lanes per workgroup for parallel backends")
	rootCmd.PersistentFlags().Uint("workers", 0, "concurrent workgroups (0 means one per CPU)")
	rootCmd.PersistentFlags().Uint("max-batch", 0, "maximum records per dispatch (0 means unbounded)")
}
