// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coordinator

import (
	"encoding/binary"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/fault"
)

// InstanceRecord - ownership and completion of one instance
type InstanceRecord struct {
	Player    account.Identifier `json:"player"`
	Level     account.Identifier `json:"level"`
	Completed bool               `json:"completed"`
}

const (
	recordLength = 2*account.IdentifierLength + 1
	eventLength  = 1 + 3*account.IdentifierLength
)

func (r *InstanceRecord) pack() []byte {
	buffer := make([]byte, recordLength)
	copy(buffer, r.Player[:])
	copy(buffer[account.IdentifierLength:], r.Level[:])
	if r.Completed {
		buffer[2*account.IdentifierLength] = 1
	}
	return buffer
}

func unpackRecord(buffer []byte) (*InstanceRecord, error) {
	if recordLength != len(buffer) {
		return nil, fault.InvalidStateRecord
	}
	r := &InstanceRecord{
		Completed: 0 != buffer[2*account.IdentifierLength],
	}
	copy(r.Player[:], buffer)
	copy(r.Level[:], buffer[account.IdentifierLength:])
	return r, nil
}

// EventKind - what happened
type EventKind byte

// event kinds
const (
	LevelRegistered     EventKind = 1
	InstanceCreated     EventKind = 2
	SubmissionSucceeded EventKind = 3
	SubmissionFailed    EventKind = 4
)

func (k EventKind) String() string {
	switch k {
	case LevelRegistered:
		return "level-registered"
	case InstanceCreated:
		return "instance-created"
	case SubmissionSucceeded:
		return "submission-succeeded"
	case SubmissionFailed:
		return "submission-failed"
	default:
		return "unknown"
	}
}

// MarshalText - kind as its name
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - kind from its name
func (k *EventKind) UnmarshalText(s []byte) error {
	for _, kind := range []EventKind{LevelRegistered, InstanceCreated, SubmissionSucceeded, SubmissionFailed} {
		if kind.String() == string(s) {
			*k = kind
			return nil
		}
	}
	return fault.InvalidEventKind
}

// Event - an orchestration event
//
// Instance is zero for level registration
type Event struct {
	Sequence uint64             `json:"sequence"`
	Kind     EventKind          `json:"kind"`
	Player   account.Identifier `json:"player"`
	Instance account.Identifier `json:"instance"`
	Level    account.Identifier `json:"level"`
}

func (e *Event) pack() []byte {
	buffer := make([]byte, eventLength)
	buffer[0] = byte(e.Kind)
	copy(buffer[1:], e.Player[:])
	copy(buffer[1+account.IdentifierLength:], e.Instance[:])
	copy(buffer[1+2*account.IdentifierLength:], e.Level[:])
	return buffer
}

func unpackEvent(key []byte, buffer []byte) (*Event, error) {
	if 8 != len(key) || eventLength != len(buffer) {
		return nil, fault.InvalidStateRecord
	}
	e := &Event{
		Sequence: binary.BigEndian.Uint64(key),
		Kind:     EventKind(buffer[0]),
	}
	copy(e.Player[:], buffer[1:])
	copy(e.Instance[:], buffer[1+account.IdentifierLength:])
	copy(e.Level[:], buffer[1+2*account.IdentifierLength:])
	return e, nil
}

// BroadcastParts - the published form of an event
//
//   kind name, 8 byte big endian sequence, player, instance, level
func (e *Event) BroadcastParts() (string, [][]byte) {
	return e.Kind.String(), [][]byte{sequenceKey(e.Sequence), e.Player[:], e.Instance[:], e.Level[:]}
}

// EventFromBroadcast - decode a published event
func EventFromBroadcast(kind string, parameters [][]byte) (*Event, error) {
	if 4 != len(parameters) || 8 != len(parameters[0]) {
		return nil, fault.InvalidStateRecord
	}
	e := &Event{
		Sequence: binary.BigEndian.Uint64(parameters[0]),
	}
	if err := e.Kind.UnmarshalText([]byte(kind)); nil != err {
		return nil, err
	}
	for i, id := range []*account.Identifier{&e.Player, &e.Instance, &e.Level} {
		v, err := account.IdentifierFromBytes(parameters[i+1])
		if nil != err {
			return nil, err
		}
		*id = v
	}
	return e, nil
}

func sequenceKey(n uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, n)
	return k
}
