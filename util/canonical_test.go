// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/util"
)

func TestCanonical(t *testing.T) {

	testData := []struct {
		in  string
		out string
		v6  bool
	}{
		{"127.0.0.1:1234", "tcp://127.0.0.1:1234", false},
		{" 127.0.0.1:1 ", "tcp://127.0.0.1:1", false},
		{"127.0.0.1:65535", "tcp://127.0.0.1:65535", false},
		{"0.0.0.0:1234", "tcp://0.0.0.0:1234", false},
		{"[::1]:1234", "tcp://[::1]:1234", true},
		{"[0:0::0:0]:1234", "tcp://[::]:1234", true},
		{"[0:0:0:0::1]:1234", "tcp://[::1]:1234", true},
	}

	for i, d := range testData {
		c, err := util.NewConnection(d.in)
		if !assert.Nil(t, err, "%d: %q", i, d.in) {
			continue
		}
		s, v6 := c.CanonicalIPandPort("tcp://")
		assert.Equal(t, d.out, s, "%d: wrong canonical form", i)
		assert.Equal(t, d.v6, v6, "%d: wrong IPv6 flag", i)
	}
}

func TestCanonicalErrors(t *testing.T) {

	testData := []struct {
		in  string
		err error
	}{
		{"127.1:1234", fault.InvalidIpAddress},
		{"256.0.0.0:1234", fault.InvalidIpAddress},
		{"[as34::]:1234", fault.InvalidIpAddress},
		{"*:1234", fault.InvalidIpAddress},
		{"127.0.0.1", fault.InvalidIpAddress},
		{"127.0.0.1:0", fault.InvalidPortNumber},
		{"127.0.0.1:65536", fault.InvalidPortNumber},
		{"127.0.0.1:port", fault.InvalidPortNumber},
	}

	for i, d := range testData {
		_, err := util.NewConnection(d.in)
		assert.Equal(t, d.err, err, "%d: %q", i, d.in)
	}

	_, err := util.NewConnections(nil)
	assert.Equal(t, fault.MissingParameters, err, "empty list accepted")
}
