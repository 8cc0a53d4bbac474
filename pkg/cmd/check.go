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
	"os"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] record",
	Short: "Check whether a single record is owned by a view key.",
	Long: `Check whether a single record is owned by a given view key and address.
	Prints "owned" or "not owned", exiting with status 1 in the latter case.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			checker = newChecker(cmd)
			viewKey = getViewKey(cmd)
			addr    = GetString(cmd, "address")
		)
		//
		owned, err := checker.CheckOwnership(context.Background(), args[0], viewKey, addr)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if !owned {
			fmt.Println("not owned")
			os.Exit(1)
		}
		//
		fmt.Println("owned")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("view-key", "", "view key scalar (decimal)")
	checkCmd.Flags().String("address", "", "owner address (aleo1...)")
	_ = checkCmd.MarkFlagRequired("view-key")
	_ = checkCmd.MarkFlagRequired("address")
}
