// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zmqutil - CURVE secured ZeroMQ sockets and key files
package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"
)

// the ZAP handler is process wide
var authentication struct {
	sync.Mutex
	running bool
}

// StartAuthentication - run the ZAP handler needed by CURVE servers
//
// extra calls while running do nothing
func StartAuthentication() error {
	authentication.Lock()
	defer authentication.Unlock()

	if authentication.running {
		return nil
	}

	zmq.AuthSetVerbose(false)
	if err := zmq.AuthStart(); nil != err {
		return err
	}
	authentication.running = true
	return nil
}

// StopAuthentication - stop the ZAP handler after all servers closed
func StopAuthentication() {
	authentication.Lock()
	defer authentication.Unlock()

	if authentication.running {
		zmq.AuthStop()
		authentication.running = false
	}
}
