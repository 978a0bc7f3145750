// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test helpers and sample identities
package fixtures

import (
	"crypto/ed25519"
	"fmt"
	"os"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed participants used across package tests
var (
	Owner   account.Identifier
	Player1 account.Identifier
	Player2 account.Identifier
	Level1  account.Identifier
	Level2  account.Identifier
	Ledger  account.Identifier

	// signing key whose public key is OwnerKey
	OwnerPrivateKey ed25519.PrivateKey
)

func init() {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	OwnerPrivateKey = ed25519.NewKeyFromSeed(seed)
	copy(Owner[:], OwnerPrivateKey.Public().(ed25519.PublicKey))

	Player1 = fill(0x11)
	Player2 = fill(0x22)
	Level1 = account.ToIdentifier(address(0xa1))
	Level2 = account.ToIdentifier(address(0xa2))
	Ledger = fill(0x5e)
}

func fill(b byte) account.Identifier {
	id := account.Identifier{}
	for i := range id {
		id[i] = b
	}
	return id
}

func address(b byte) account.Address {
	a := account.Address{}
	for i := range a {
		a[i] = b
	}
	return a
}

// SetupTestLogger - start a logger that writes only critical messages
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
