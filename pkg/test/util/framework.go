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
package util

import (
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// TestDir determines the (relative) location of the test directory, as seen
// from any package directly under pkg/.
const TestDir = "../../testdata"

// OwnershipFile is the name of the ownership fixture within the test directory.
const OwnershipFile = "ownership.json"

// Ownership captures a known-good ownership scenario: a view key, the address
// it derives, and two records owned by that address (one private, one public)
// along with the intermediate values of the private check.
type Ownership struct {
	ViewKey   string            `json:"view_key"`
	Address   string            `json:"address"`
	AddressX  string            `json:"address_x"`
	NonceX    string            `json:"nonce_x"`
	NonceY    string            `json:"nonce_y"`
	Shared    string            `json:"shared"`
	Mask      string            `json:"mask"`
	Owner     string            `json:"owner"`
	Private   string            `json:"private"`
	Public    string            `json:"public"`
	Malformed map[string]string `json:"malformed"`
}

// LoadOwnership reads the ownership fixture, failing the test if it cannot be
// read.
func LoadOwnership(t *testing.T) *Ownership {
	t.Helper()
	//
	bytes, err := os.ReadFile(filepath.Join(TestDir, OwnershipFile))
	if err != nil {
		t.Fatal(err)
	}
	//
	var fixture Ownership
	//
	if err := json.Unmarshal(bytes, &fixture); err != nil {
		t.Fatal(err)
	}
	//
	return &fixture
}

// Int parses a decimal fixture value.
func Int(t *testing.T, s string) *big.Int {
	t.Helper()
	//
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("invalid integer %q", s)
	}
	//
	return v
}

// MalformedRecords returns the malformed records of a fixture in a stable
// order, along with their names.
func (o *Ownership) MalformedRecords() (names []string, records []string) {
	for name := range o.Malformed {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	for _, name := range names {
		records = append(records, o.Malformed[name])
	}
	//
	return names, records
}
