// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/challenged/configuration"
	"github.com/bitmark-inc/challenged/fault"
)

const (
	configFileName = "test-configuration.conf"
)

type level struct {
	Identifier string `gluamapper:"identifier"`
	Script     string `gluamapper:"script"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Owner         string            `gluamapper:"owner"`
	Connections   int               `gluamapper:"connections"`
	Listen        []string          `gluamapper:"listen"`
	Levels        []level           `gluamapper:"levels"`
	Logging       map[string]string `gluamapper:"logging"`
}

const configText = `
local M = {}
M.data_directory = "."
M.owner = "owner-" .. arg[1]
M.connections = 5
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.levels = {
  { identifier = "0x01", script = "vault.lua" },
}
M.logging = { DEFAULT = "info" }
return M
`

func TestParseConfigurationFile(t *testing.T) {
	defer os.Remove(configFileName)
	if err := ioutil.WriteFile(configFileName, []byte(configText), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}

	config := &testConfiguration{
		Connections: 99,
	}
	err := configuration.ParseConfigurationFile(configFileName, config, "x")
	assert.Nil(t, err, "wrong parse")

	assert.Equal(t, &testConfiguration{
		DataDirectory: ".",
		Owner:         "owner-x",
		Connections:   5,
		Listen:        []string{"127.0.0.1:2130", "[::1]:2130"},
		Levels: []level{
			{Identifier: "0x01", Script: "vault.lua"},
		},
		Logging: map[string]string{"DEFAULT": "info"},
	}, config, "wrong configuration")
}

func TestParseErrors(t *testing.T) {
	defer os.Remove(configFileName)

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(configFileName, config)
	assert.Equal(t, fault.InvalidStructPointer, err, "non-pointer accepted")

	err = configuration.ParseConfigurationFile(configFileName, &config)
	assert.NotNil(t, err, "missing file accepted")

	if err := ioutil.WriteFile(configFileName, []byte("return {"), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	err = configuration.ParseConfigurationFile(configFileName, &config)
	assert.NotNil(t, err, "bad syntax accepted")
}
