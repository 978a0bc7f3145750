// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// default listener queue size when zero is requested
const (
	defaultQueueSize = 1000
)

// Message - a command and its packed parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - fan out every message to all current listeners
type BroadcastQueue struct {
	sync.Mutex
	listeners []chan Message
}

// BusType - the set of available queues
type BusType struct {
	Broadcast *BroadcastQueue
}

// Bus - the global message bus
var Bus = BusType{
	Broadcast: &BroadcastQueue{},
}

// Send - deliver to every listener that has room
//
// messages sent when no listener exists are dropped
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.Lock()
	defer queue.Unlock()

	for _, l := range queue.listeners {
		select {
		case l <- m:
		default:
		}
	}
}

// Chan - register a new listener and return its channel
//
// size <= 0 selects the default queue size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - remove a listener and close its channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, l := range queue.listeners {
		if (<-chan Message)(l) == c {
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			close(l)
			return
		}
	}
}

// Listeners - number of registered listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.Lock()
	defer queue.Unlock()
	return len(queue.listeners)
}
