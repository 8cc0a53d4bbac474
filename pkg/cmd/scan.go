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
	"os"
	"os/signal"
	"strconv"

	"github.com/consensys/go-recordscan/pkg/protocol"
	"github.com/consensys/go-recordscan/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [flags] records_file",
	Short: "Determine which of a list of records are owned by a view key.",
	Long: `Determine which of a list of records are owned by a given view key and address.
	Records are read one per line from the given file, or from stdin when this
	is "-".  Malformed records are reported individually and never owned.`,
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
			all     = GetFlag(cmd, "all")
		)
		//
		records, err := readRecords(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Infof("scanning %d records using %s backend", len(records), checker.Executor().Name())
		// Cancel on interrupt
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		//
		result, err := checker.BulkCheckOwnership(ctx, records, viewKey, addr)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		printScan(os.Stdout, records, result, all, termio.IsTerminal(os.Stdout))
	},
}

// printScan reports the owned records, and those which could not be
// classified.  Unowned records are included only when requested.
func printScan(w io.Writer, records []string, result *protocol.BulkResult, all bool, escapes bool) {
	var (
		table = termio.NewTablePrinter("index", "status", "record")
		owned = make(map[int]bool, len(result.Owned))
		green = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN).Build()
		red   = termio.NewAnsiEscape().FgColour(termio.TERM_RED).Build()
	)
	//
	for _, i := range result.Owned {
		owned[i] = true
	}
	//
	for i, record := range records {
		index := strconv.Itoa(i)
		//
		if err, ok := result.Errors[i]; ok {
			table.AddRow(red, index, err.Error(), record)
		} else if owned[i] {
			table.AddRow(green, index, "owned", record)
		} else if all {
			table.AddRow("", index, "not owned", record)
		}
	}
	//
	table.SetMaxWidth(termio.DefaultWidth / 2)
	table.AnsiEscapes(escapes)
	table.Print(w)
	//
	fmt.Fprintf(w, "%d owned, %d errors, %d records (%s)\n", len(result.Owned), len(result.Errors), len(records),
		result.Backend)
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().String("view-key", "", "view key scalar (decimal)")
	scanCmd.Flags().String("address", "", "owner address (aleo1...)")
	scanCmd.Flags().BoolP("all", "a", false, "report unowned records as well")
	_ = scanCmd.MarkFlagRequired("view-key")
	_ = scanCmd.MarkFlagRequired("address")
}
