// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"errors"
	"testing"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/challenged/fixtures"
	"github.com/bitmark-inc/challenged/messagebus"
	"github.com/bitmark-inc/logger"
)

type frame struct {
	data []byte
	flag zmq.Flag
}

type recorder struct {
	frames []frame
	failAt int
}

func (r *recorder) Send(s string, flag zmq.Flag) (int, error) {
	return r.SendBytes([]byte(s), flag)
}

func (r *recorder) SendBytes(b []byte, flag zmq.Flag) (int, error) {
	if len(r.frames) == r.failAt {
		return 0, errors.New("resource temporarily unavailable")
	}
	r.frames = append(r.frames, frame{data: b, flag: flag})
	return len(b), nil
}

func TestSendMultipart(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r := &recorder{failAt: -1}
	item := messagebus.Message{
		Command:    "created",
		Parameters: [][]byte{{1}, {2, 3}},
	}
	send(logger.New("test"), r, &item)

	assert.Equal(t, 3, len(r.frames), "wrong frame count")
	assert.Equal(t, []byte("created"), r.frames[0].data, "wrong command")
	assert.Equal(t, zmq.SNDMORE|zmq.DONTWAIT, r.frames[0].flag, "command not marked more")
	assert.Equal(t, zmq.SNDMORE|zmq.DONTWAIT, r.frames[1].flag, "middle frame not marked more")
	assert.Equal(t, zmq.DONTWAIT, r.frames[2].flag, "last frame marked more")
	assert.Equal(t, []byte{2, 3}, r.frames[2].data, "wrong last parameter")
}

func TestSendCommandOnly(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r := &recorder{failAt: -1}
	send(logger.New("test"), r, &messagebus.Message{Command: "ping"})

	assert.Equal(t, 1, len(r.frames), "wrong frame count")
	assert.Equal(t, zmq.DONTWAIT, r.frames[0].flag, "single frame marked more")
}

func TestSendStopsOnError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r := &recorder{failAt: 1}
	item := messagebus.Message{
		Command:    "failed",
		Parameters: [][]byte{{1}, {2}, {3}},
	}
	send(logger.New("test"), r, &item)

	assert.Equal(t, 1, len(r.frames), "frames sent after error")
}
