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
	"math/big"
	"os"

	"github.com/consensys/go-recordscan/pkg/address"
	"github.com/spf13/cobra"
)

// addressCmd groups the address conversions
var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Convert between addresses and their x-coordinates.",
}

var addressDecodeCmd = &cobra.Command{
	Use:   "decode address",
	Short: "Print the x-coordinate (decimal) of an address.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		x, err := address.Decode(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(x)
	},
}

var addressEncodeCmd = &cobra.Command{
	Use:   "encode x",
	Short: "Print the address of a (decimal) x-coordinate.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		x, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			fmt.Printf("invalid x-coordinate %q\n", args[0])
			os.Exit(2)
		}
		//
		encoded, err := address.Encode(x)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(encoded)
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)
	addressCmd.AddCommand(addressDecodeCmd)
	addressCmd.AddCommand(addressEncodeCmd)
}
