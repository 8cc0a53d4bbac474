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
package termio

import (
	"fmt"
	"io"
)

// TablePrinter is useful for printing tables to the terminal.  Rows are added
// one at a time, and column widths grow to fit their contents.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       []string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with a given header row.
func NewTablePrinter(header ...string) *TablePrinter {
	p := &TablePrinter{widths: make([]uint, len(header)), enableEscapes: true}
	p.AddRow("", header...)
	//
	return p
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// AddRow appends a row to this table, printed using a given escape (where ""
// means no escape).
func (p *TablePrinter) AddRow(escape string, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], uint(len(val)))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, escape)
}

// SetMaxWidth puts an upper bound on the width of every column.
func (p *TablePrinter) SetMaxWidth(width uint) {
	for i := range p.widths {
		p.widths[i] = min(p.widths[i], width)
	}
}

// Height returns the number of rows in this table, including the header.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// Print the table to a given writer.
func (p *TablePrinter) Print(w io.Writer) {
	for i, row := range p.rows {
		escape := p.escapes[i]
		// Print colour (if applicable)
		if p.enableEscapes && escape != "" {
			fmt.Fprint(w, escape)
		}
		//
		for j, col := range row {
			width := p.widths[j]
			// Truncate over-long cells
			if uint(len(col)) > width && width > 2 {
				fmt.Fprintf(w, " %*s.. |", width-2, col[0:width-2])
			} else {
				fmt.Fprintf(w, " %*s |", width, col)
			}
		}
		// Cancel colour (if applicable)
		if p.enableEscapes && escape != "" {
			fmt.Fprint(w, ResetAnsiEscape().Build())
		}
		//
		fmt.Fprintln(w)
	}
}
