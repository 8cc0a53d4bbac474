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
	"context"
	"math/big"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
)

// SDK is an external implementation of the record protocol.  This is used to
// decrypt records, and as an oracle against which native results can be
// checked.  View keys are passed in whatever string form the SDK accepts.
type SDK interface {
	// IsOwner determines whether a view key owns a record.
	IsOwner(ciphertext string, viewKey string) (bool, error)
	// Decrypt a record, returning its plaintext.  This fails if the view key
	// cannot decrypt the record.
	Decrypt(ciphertext string, viewKey string) (string, error)
}

// Decrypt a record using the SDK.  SDK failures are returned verbatim, marked
// with ErrSDK.
func (c *Checker) Decrypt(ciphertext string, viewKey string) (string, error) {
	if c.sdk == nil {
		return "", errors.Wrap(ErrSDK, "no sdk configured")
	}
	//
	plaintext, err := c.sdk.Decrypt(ciphertext, viewKey)
	if err != nil {
		return "", errors.Mark(err, ErrSDK)
	}
	//
	return plaintext, nil
}

// CrossCheck classifies a record natively and using the SDK, returning the
// native result.  Disagreement is reported as ErrMismatch.  Here, sdkViewKey is
// the SDK's encoding of viewKey.
func (c *Checker) CrossCheck(ctx context.Context, ciphertext string, viewKey *big.Int, sdkViewKey string,
	addr string) (bool, error) {
	if c.sdk == nil {
		return false, errors.Wrap(ErrSDK, "no sdk configured")
	}
	//
	native, err := c.CheckOwnership(ctx, ciphertext, viewKey, addr)
	if err != nil {
		return false, err
	}
	//
	oracle, err := c.sdk.IsOwner(ciphertext, sdkViewKey)
	if err != nil {
		return native, errors.Mark(err, ErrSDK)
	}
	//
	if native != oracle {
		log.Debugf("ownership mismatch (native %t, sdk %t) for %s", native, oracle, ciphertext)
		//
		return native, errors.Wrapf(ErrMismatch, "native %t, sdk %t", native, oracle)
	}
	//
	return native, nil
}
