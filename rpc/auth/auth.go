// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth - signed RPC requests
//
// a mutating request carries the caller's identifier, the unix time it
// was made and an ed25519 signature by the caller's key over:
//
//   method ++ 0x00 ++ payload ++ decimal timestamp
//
// where payload is the call's packed arguments
package auth

import (
	"crypto/ed25519"
	"encoding/binary"
	"strconv"
	"time"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/fault"
)

// MaximumSkew - how far a request timestamp may be from server time
const MaximumSkew = 5 * time.Minute

// Request - the signature block of a mutating call
type Request struct {
	Caller    account.Identifier `json:"caller"`
	Timestamp int64              `json:"timestamp,string"`
	Signature account.Signature  `json:"signature"`
}

// Payload - pack identifiers and numbers into signed bytes
type Payload []byte

// Identifier - append an identifier
func (p Payload) Identifier(id account.Identifier) Payload {
	return append(p, id[:]...)
}

// Uint64 - append a big endian number
func (p Payload) Uint64(n uint64) Payload {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return append(p, buffer...)
}

// Text - append a zero terminated string
func (p Payload) Text(s string) Payload {
	p = append(p, s...)
	return append(p, 0)
}

// Message - the bytes that are signed
func Message(method string, payload []byte, timestamp int64) []byte {
	ts := strconv.FormatInt(timestamp, 10)
	message := make([]byte, 0, len(method)+1+len(payload)+len(ts))
	message = append(message, method...)
	message = append(message, 0)
	message = append(message, payload...)
	return append(message, ts...)
}

// Sign - produce the signature block for a call
func Sign(privateKey ed25519.PrivateKey, method string, payload []byte, now time.Time) Request {
	var caller account.Identifier
	copy(caller[:], privateKey.Public().(ed25519.PublicKey))

	timestamp := now.Unix()
	return Request{
		Caller:    caller,
		Timestamp: timestamp,
		Signature: account.Sign(privateKey, Message(method, payload, timestamp)),
	}
}

// Verify - check the timestamp window and the signature
//
// returns the authenticated caller
func (r *Request) Verify(method string, payload []byte, now time.Time) (account.Identifier, error) {
	if r.Caller.IsZero() || 0 == len(r.Signature) {
		return account.Identifier{}, fault.MissingParameters
	}

	skew := now.Sub(time.Unix(r.Timestamp, 0))
	if skew > MaximumSkew || skew < -MaximumSkew {
		return account.Identifier{}, fault.SignatureExpired
	}

	err := r.Caller.CheckSignature(Message(method, payload, r.Timestamp), r.Signature)
	if nil != err {
		return account.Identifier{}, err
	}
	return r.Caller, nil
}
