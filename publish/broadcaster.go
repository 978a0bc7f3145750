// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/challenged/messagebus"
	"github.com/bitmark-inc/challenged/util"
	"github.com/bitmark-inc/challenged/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	publisherZapDomain = "publisher"
	queueSize          = 1000
)

// the parts of a socket used to send a multipart message
type sender interface {
	Send(string, zmq.Flag) (int, error)
	SendBytes([]byte, zmq.Flag) (int, error)
}

type broadcaster struct {
	log     *logger.L
	queue   <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	c, err := util.NewConnections(broadcast)
	if nil != err {
		log.Errorf("ip and port error: %s", err)
		return err
	}

	// allocate IPv4 and IPv6 sockets
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, publisherZapDomain, privateKey, publicKey, c)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	// listen now so events committed before Run starts are kept
	brdc.queue = messagebus.Bus.Broadcast.Chan(queueSize)

	return nil
}

// Run - forward each event to all subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-brdc.queue:
			log.Debugf("sending: %s  data: %x", item.Command, item.Parameters)
			if nil != brdc.socket4 {
				send(log, brdc.socket4, &item)
			}
			if nil != brdc.socket6 {
				send(log, brdc.socket6, &item)
			}
		}
	}

	messagebus.Bus.Broadcast.Release(brdc.queue)

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send one message as: command, parameter...
//
// subscribers that cannot keep up lose the message
func send(log *logger.L, socket sender, item *messagebus.Message) {
	last := len(item.Parameters) - 1
	flag := zmq.DONTWAIT
	if last >= 0 {
		flag |= zmq.SNDMORE
	}
	_, err := socket.Send(item.Command, flag)
	if nil != err {
		log.Warnf("send command: %s  error: %s", item.Command, err)
		return
	}
	for i, p := range item.Parameters {
		flag := zmq.SNDMORE | zmq.DONTWAIT
		if i == last {
			flag = zmq.DONTWAIT
		}
		_, err = socket.SendBytes(p, flag)
		if nil != err {
			log.Warnf("send parameter[%d] error: %s", i, err)
			return
		}
	}
}
