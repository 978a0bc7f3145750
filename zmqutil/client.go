// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/util"
)

// NewSubscriber - connect a SUB socket to a CURVE secured publisher
// subscribed to everything
func NewSubscriber(privateKey []byte, publicKey []byte, serverPublicKey []byte, address string) (*zmq.Socket, error) {
	if publicLength != len(publicKey) || publicLength != len(serverPublicKey) {
		return nil, fault.InvalidPublicKeyFile
	}
	if privateLength != len(privateKey) {
		return nil, fault.InvalidPrivateKeyFile
	}

	conn, err := util.NewConnection(address)
	if nil != err {
		return nil, err
	}
	connectTo, v6 := conn.CanonicalIPandPort("tcp://")

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	// set up as client
	if err = socket.SetCurveServer(0); nil != err {
		goto failure
	}
	if err = socket.SetCurvePublickey(string(publicKey)); nil != err {
		goto failure
	}
	if err = socket.SetCurveSecretkey(string(privateKey)); nil != err {
		goto failure
	}
	if err = socket.SetCurveServerkey(string(serverPublicKey)); nil != err {
		goto failure
	}
	if err = socket.SetLinger(0); nil != err {
		goto failure
	}
	if err = socket.SetIpv6(v6); nil != err {
		goto failure
	}
	if err = socket.SetSubscribe(""); nil != err {
		goto failure
	}
	if err = socket.Connect(connectTo); nil != err {
		goto failure
	}
	return socket, nil

failure:
	socket.Close()
	return nil, err
}
