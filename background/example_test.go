// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/challenged/background"
	"github.com/bitmark-inc/challenged/messagebus"
)

// prints broadcast events until shutdown
type eventPrinter struct {
	queue <-chan messagebus.Message
	done  chan struct{}
}

func (p *eventPrinter) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return
		case m := <-p.queue:
			fmt.Printf("%s %x\n", m.Command, m.Parameters[0])
			close(p.done)
		}
	}
}

func Example() {
	queue := messagebus.Bus.Broadcast.Chan(10)
	defer messagebus.Bus.Broadcast.Release(queue)

	printer := &eventPrinter{
		queue: queue,
		done:  make(chan struct{}),
	}

	p := background.Start(background.Processes{printer}, nil)

	messagebus.Bus.Broadcast.Send("level-registered", []byte{0x00, 0x01})
	<-printer.done

	p.Stop()

	// Output: level-registered 0001
}
