// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/challenged/util"
	"github.com/bitmark-inc/logger"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// NewBind - bind every listen address to a CURVE server socket
//
// IPv4 and IPv6 addresses share one socket per family, so either
// returned socket may be nil
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []*util.Connection) (*zmq.Socket, *zmq.Socket, error) {

	sockets := [2]*zmq.Socket{} // [0] IPv4, [1] IPv6
	closeAll := func() {
		for _, s := range sockets {
			if nil != s {
				s.Close()
			}
		}
	}

	for i, address := range listen {
		bindTo, v6 := address.CanonicalIPandPort("tcp://")
		family := 0
		if v6 {
			family = 1
		}

		if nil == sockets[family] {
			s, err := newServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				closeAll()
				return nil, nil, err
			}
			sockets[family] = s
		}

		if err := sockets[family].Bind(bindTo); nil != err {
			log.Errorf("bind[%d]: %q  error: %s", i, bindTo, err)
			closeAll()
			return nil, nil, err
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}
	return sockets[0], sockets[1], nil
}

// server side socket that accepts any CURVE client
func newServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	options := []func() error{
		func() error { return socket.SetCurveServer(1) },
		func() error { return socket.SetCurveSecretkey(string(privateKey)) },
		func() error { return socket.SetZapDomain(zapDomain) },
		func() error { return socket.SetIdentity(string(publicKey)) },
		func() error { return socket.SetIpv6(v6) },
		func() error { return socket.SetLinger(0) },
		func() error { return socket.SetHeartbeatIvl(heartbeatInterval) },
		func() error { return socket.SetHeartbeatTimeout(heartbeatTimeout) },
		func() error { return socket.SetHeartbeatTtl(heartbeatTTL) },
	}
	for _, set := range options {
		if err := set(); nil != err {
			socket.Close()
			return nil, err
		}
	}
	return socket, nil
}
