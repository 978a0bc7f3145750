// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/challenged/command/challenge-cli/configuration"
	"github.com/bitmark-inc/challenged/fault"
)

const (
	minimumPasswordLength = 8
	passwordTag           = "challenge-cli:password:"
)

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// new password with confirmation
func promptNewPassword() (string, error) {
	password, err := readPassword("Set identity password (length >= 8): ")
	if nil != err {
		return "", err
	}
	if len(password) < minimumPasswordLength {
		return "", fault.InvalidPasswordLength
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verifyPassword {
		return "", fault.PasswordMismatch
	}

	return password, nil
}

// expect to execute agent with parameters
//   --confirm=1         - for additional confirm
//   cache-id            - allows password to be cached for a time
//   error-message       - blank
//   prompt              - names the identity
//   description         - shows the operation
func passwordFromAgent(name string, title string, agent string, clear bool) (string, error) {

	arguments := []string{}
	if clear {
		arguments = append(arguments, "--clear")
	}
	arguments = append(arguments,
		"--confirm=1",
		passwordTag+name,
		"",
		"Password for: "+name,
		"Enter password to: "+title,
	)

	out, err := exec.Command(agent, arguments...).Output()
	if nil != err {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// password for an identity from flag, agent or prompt
func identityPassword(m *metadata, name string, title string) (string, error) {
	if "" != m.password {
		return m.password, nil
	}
	if "" != m.agent {
		return passwordFromAgent(name, title, m.agent, m.clearAgent)
	}
	return readPassword("Password for " + name + ": ")
}

// decrypt the selected identity
func promptAndDecrypt(m *metadata, name string, title string) (*configuration.Private, error) {
	password, err := identityPassword(m, name, title)
	if nil != err {
		return nil, err
	}
	return m.config.Private(password, name)
}
