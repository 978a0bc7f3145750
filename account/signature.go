// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/ed25519"
	"encoding/hex"

	"github.com/bitmark-inc/challenged/fault"
)

// Signature - raw ed25519 signature bytes, hex in text form
type Signature []byte

// Sign - sign message with an ed25519 private key
func Sign(privateKey ed25519.PrivateKey, message []byte) Signature {
	return Signature(ed25519.Sign(privateKey, message))
}

// CheckSignature - verify a message signed by the key the identifier names
func (id Identifier) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) ||
		!ed25519.Verify(ed25519.PublicKey(id[:]), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - for %#v
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - lower case hex
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - hex of any length, validated when checked
func (signature *Signature) UnmarshalText(s []byte) error {
	b, err := hex.DecodeString(string(s))
	if nil != err {
		return err
	}
	*signature = b
	return nil
}
