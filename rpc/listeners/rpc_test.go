// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/challenged/counter"
	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/fixtures"
	"github.com/bitmark-inc/challenged/rpc/certificate"
	"github.com/bitmark-inc/challenged/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

const (
	certificateFile = "test-listener.crt"
	keyFile         = "test-listener.key"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func tlsConfig(t *testing.T) *tls.Config {
	removeFiles()
	err := certificate.MakeSelfSigned("test", certificateFile, keyFile, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("make certificate error: %s", err)
	}
	c, _, err := certificate.Get(logger.New("test"), "test", certificateFile, keyFile)
	if nil != err {
		t.Fatalf("get certificate error: %s", err)
	}
	return c
}

func removeFiles() {
	os.Remove(certificateFile)
	os.Remove(keyFile)
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	defer removeFiles()

	port := rand.Intn(30000) + 30000
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	l, err := listeners.NewRPC(&con, logger.New("test"), &count, s, tlsConfig(t))
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	c, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}

	client := jsonrpc.NewClient(c)
	defer client.Close()

	arg := AddArg{A: 2, B: 5}
	var reply int
	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRpcListenerConfigurationErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	s := rpc.NewServer()
	log := logger.New("test")

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:1234"},
	}, log, &count, s, &tls.Config{})
	assert.Equal(t, fault.MissingParameters, err, "zero connections accepted")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 5,
	}, log, &count, s, &tls.Config{})
	assert.Equal(t, fault.MissingParameters, err, "empty listen accepted")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"localhost:1234"},
	}, log, &count, s, &tls.Config{})
	assert.Equal(t, fault.InvalidIpAddress, err, "host name accepted")
}

func TestRpcListenerListenForms(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	s := rpc.NewServer()

	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"*:2130", "[::1]:2130"},
	}
	_, err := listeners.NewRPC(&con, logger.New("test"), &count, s, &tls.Config{})
	assert.Nil(t, err, "wrong NewRPC")
	assert.Equal(t, "*:2130", con.Listen[0], "configuration modified")
}
