// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - JSON RPC client for challenged
package rpccalls

import (
	"crypto/ed25519"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/rpc/auth"
)

// Client - to hold RPC connections streams
type Client struct {
	conn       net.Conn
	client     *rpc.Client
	privateKey ed25519.PrivateKey
	verbose    bool
	handle     io.Writer // if verbose is set output items here
	now        func() time.Time
}

// NewClient - create a RPC connection to a challenged
//
// privateKey may be nil for read only calls
func NewClient(connect string, privateKey ed25519.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:       conn,
		client:     jsonrpc.NewClient(conn),
		privateKey: privateKey,
		verbose:    verbose,
		handle:     handle,
		now:        time.Now,
	}
	return r, nil
}

// Close - shutdown the challenged connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// sign a mutating call
func (c *Client) sign(method string, payload auth.Payload) (auth.Request, error) {
	if nil == c.privateKey {
		return auth.Request{}, fault.NotPrivateKey
	}
	r := auth.Sign(c.privateKey, method, payload, c.now())
	if c.verbose {
		fmt.Fprintf(c.handle, "%s caller: %s  timestamp: %d\n", method, r.Caller, r.Timestamp)
	}
	return r, nil
}

func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if c.verbose {
		fmt.Fprintf(c.handle, "%s: %+v\n", method, arguments)
	}
	return c.client.Call(method, arguments, reply)
}
