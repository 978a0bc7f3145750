// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/command/challenge-cli/configuration"
	"github.com/bitmark-inc/challenged/fault"
)

// command line errors - keep in alphabetic order
var (
	ErrRequiredAction      = fault.InvalidError("action is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredInstance    = fault.InvalidError("instance is required")
	ErrRequiredLevel       = fault.InvalidError("level is required")
	ErrRequiredStatistics  = fault.InvalidError("statistics ledger is required")
	ErrRequiredSubscribe   = fault.InvalidError("subscribe address is required")
)

// identity name defaults to the configured default
func checkName(name string, config *configuration.Configuration) (string, error) {
	if "" == name && nil != config {
		name = config.DefaultIdentity
	}
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

// seed is optional, if absent a new one is generated
func checkSeed(seed string) (string, error) {
	if "" == seed {
		return configuration.NewSeed()
	}
	return seed, nil
}

// a name from the configuration or an identifier as text
func checkIdentifier(s string, required error, config *configuration.Configuration) (account.Identifier, error) {
	if "" == s {
		return account.Identifier{}, required
	}
	return config.Identifier(s)
}

// optional identifier
func checkOptionalIdentifier(s string, config *configuration.Configuration) (*account.Identifier, error) {
	if "" == s {
		return nil, nil
	}
	id, err := config.Identifier(s)
	if nil != err {
		return nil, err
	}
	return &id, nil
}

// action arguments must be a JSON object, default is empty
func checkArguments(s string) (string, error) {
	if "" == s {
		return "{}", nil
	}
	var v map[string]interface{}
	if err := json.Unmarshal([]byte(s), &v); nil != err {
		return "", err
	}
	return s, nil
}

// returns:
//   true  if path exists and is a directory
//   false if path exists and is not a directory
//   error if path does not exist
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
