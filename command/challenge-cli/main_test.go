// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/challenged/command/challenge-cli/configuration"
	"github.com/bitmark-inc/challenged/fixtures"
)

const (
	testConfigFile = "test-cli.json"
	testPassword   = "12345678"
)

func removeTestFiles() {
	os.Remove(testConfigFile)
	os.Remove(testConfigFile + ".bk")
	os.Remove(testConfigFile + ".new")
}

func run(t *testing.T, args ...string) (string, error) {
	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out
	app.ErrWriter = &bytes.Buffer{}

	err := app.Run(append([]string{"challenge-cli", "--config", testConfigFile, "--password", testPassword}, args...))
	return out.String(), err
}

func TestSetupAddInfo(t *testing.T) {
	removeTestFiles()
	defer removeTestFiles()

	seed := hex.EncodeToString(fixtures.OwnerPrivateKey.Seed())
	_, err := run(t, "--identity", "owner", "setup", "--connect", "127.0.0.1:2130", "--description", "the owner", "--seed", seed)
	assert.Nil(t, err, "wrong setup")

	_, err = run(t, "--identity", "owner", "setup", "--connect", "127.0.0.1:2130", "--description", "again")
	assert.NotNil(t, err, "setup overwrote configuration")

	_, err = run(t, "--identity", "player", "add", "--description", "a player", "--default")
	assert.Nil(t, err, "wrong add")

	out, err := run(t, "info")
	assert.Nil(t, err, "wrong info")

	var info configuration.Info
	err = json.Unmarshal([]byte(out), &info)
	assert.Nil(t, err, "info is not JSON")
	assert.Equal(t, "player", info.DefaultIdentity, "default not changed")
	assert.Equal(t, "127.0.0.1:2130", info.Connect, "wrong connect")
	assert.Equal(t, 2, len(info.Identities), "wrong identity count")
	assert.Equal(t, "owner", info.Identities[0].Name, "wrong first name")
	assert.Equal(t, fixtures.Owner, info.Identities[0].Identifier, "wrong owner identifier")

	config, err := configuration.Load(testConfigFile)
	assert.Nil(t, err, "wrong Load")
	private, err := config.Private(testPassword, "owner")
	assert.Nil(t, err, "stored identity does not decrypt")
	assert.Equal(t, fixtures.Owner, private.Identifier, "wrong stored identifier")
}

func TestSetupRequiresConnect(t *testing.T) {
	removeTestFiles()
	defer removeTestFiles()

	_, err := run(t, "--identity", "owner", "setup", "--description", "the owner")
	assert.Equal(t, ErrRequiredConnect, err, "missing connect accepted")
}

func TestGenerate(t *testing.T) {
	out, err := run(t, "generate")
	assert.Nil(t, err, "wrong generate")

	var result struct {
		Seed       string `json:"seed"`
		Identifier string `json:"identifier"`
	}
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "generate is not JSON")

	id, err := configuration.IdentifierFromSeed(result.Seed)
	assert.Nil(t, err, "wrong seed")
	assert.Equal(t, id.String(), result.Identifier, "identifier does not match seed")
}

func TestCheckArguments(t *testing.T) {
	s, err := checkArguments("")
	assert.Nil(t, err, "empty arguments rejected")
	assert.Equal(t, "{}", s, "wrong default arguments")

	s, err = checkArguments(`{"n":"1"}`)
	assert.Nil(t, err, "object rejected")
	assert.Equal(t, `{"n":"1"}`, s, "arguments changed")

	_, err = checkArguments("[1,2]")
	assert.NotNil(t, err, "array accepted")
}
