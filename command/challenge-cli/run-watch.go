// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/challenged/coordinator"
	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/zmqutil"
)

const (
	watchPollInterval = time.Second
)

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address := c.String("subscribe")
	if "" == address {
		address = m.config.Subscribe
	}
	if "" == address {
		return ErrRequiredSubscribe
	}

	serverPublicKey, err := publisherKey(c, m)
	if nil != err {
		return err
	}

	publicKey, privateKey, err := zmqutil.NewKeyPair()
	if nil != err {
		return err
	}

	socket, err := zmqutil.NewSubscriber(privateKey, publicKey, serverPublicKey, address)
	if nil != err {
		return err
	}
	defer socket.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "subscribed: %s\n", address)
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	poller := zmq.NewPoller()
	poller.Add(socket, zmq.POLLIN)

	limit := c.Int("count")
	received := 0
	for limit <= 0 || received < limit {
		select {
		case <-ch:
			return nil
		default:
		}

		polled, err := poller.Poll(watchPollInterval)
		if nil != err {
			return err
		}
		if 0 == len(polled) {
			continue
		}

		data, err := socket.RecvMessageBytes(0)
		if nil != err {
			return err
		}
		if 0 == len(data) {
			continue
		}

		e, err := coordinator.EventFromBroadcast(string(data[0]), data[1:])
		if nil != err {
			fmt.Fprintf(m.e, "ignored message: %q  error: %s\n", data[0], err)
			continue
		}
		printJson(m.w, e)
		received += 1
	}
	return nil
}

// server key from the flag or from the node
func publisherKey(c *cli.Context, m *metadata) ([]byte, error) {
	if s := c.String("server-key"); "" != s {
		return zmqutil.ReadPublicKey(s)
	}

	client, err := queryClient(m)
	if nil != err {
		return nil, err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return nil, err
	}
	if "" == info.PublicKey {
		return nil, fault.InvalidPublicKeyFile
	}
	return hex.DecodeString(info.PublicKey)
}
