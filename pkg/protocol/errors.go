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
package protocol

import (
	"github.com/cockroachdb/errors"
	"github.com/consensys/go-recordscan/pkg/curve"
	"github.com/consensys/go-recordscan/pkg/record"
)

var (
	// ErrDecode marks a record which could not be decoded.  This includes bad
	// encodings, short buffers, unknown visibility flags and embedded values
	// which are not field elements.
	ErrDecode = record.ErrDecode
	// ErrNonResidue marks a record whose nonce does not correspond to any
	// curve point.
	ErrNonResidue = curve.ErrNonResidue
	// ErrUnsupportedCurve marks a request for a curve with no implementation.
	ErrUnsupportedCurve = curve.ErrUnsupportedCurve
	// ErrSDK marks a failure reported by the SDK oracle.
	ErrSDK = errors.New("sdk failure")
	// ErrExecutor marks a failure of a batch executor as a whole.
	ErrExecutor = errors.New("executor failure")
	// ErrMismatch indicates the native result disagrees with the SDK oracle.
	ErrMismatch = errors.New("result mismatch")
)
