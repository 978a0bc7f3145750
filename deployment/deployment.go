// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package deployment - persistent allocation of level instances
//
// record layout:
//
//   level ++ player ++ endowment(8) ++ state
//
// the instance identifier is SHA3-256(level ++ player ++ salt) so a
// level choosing the player as its salt can never allocate two
// instances for one player
package deployment

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/level"
	"github.com/bitmark-inc/challenged/storage"
	"github.com/bitmark-inc/logger"
)

const (
	endowmentLength = 8
	headerLength    = 2*account.IdentifierLength + endowmentLength
)

// Host - the storage backed deployer
type Host struct {
	log  *logger.L
	pool storage.Handle
}

// New - create a deployer writing to a pool
//
// writes must happen inside a storage transaction
func New(pool storage.Handle) *Host {
	return &Host{
		log:  logger.New("deployment"),
		pool: pool,
	}
}

// InstanceIdentifier - the identifier Deploy would assign
func InstanceIdentifier(lvl account.Identifier, player account.Identifier, salt []byte) account.Identifier {
	h := sha3.New256()
	h.Write(lvl[:])
	h.Write(player[:])
	h.Write(salt)

	var id account.Identifier
	copy(id[:], h.Sum(nil))
	return id
}

// Deploy - allocate a new instance
func (h *Host) Deploy(lvl account.Identifier, player account.Identifier, salt []byte, endowment uint64, state []byte) (account.Identifier, error) {
	instance := InstanceIdentifier(lvl, player, salt)

	if h.pool.Has(instance[:]) {
		h.log.Warnf("instance: %v already deployed for level: %v", instance, lvl)
		return account.Identifier{}, fault.InstanceAlreadyDeployed
	}

	h.pool.Put(instance[:], pack(lvl, player, endowment, state))
	h.log.Debugf("deployed instance: %v  level: %v  player: %v  endowment: %d", instance, lvl, player, endowment)

	return instance, nil
}

// Get - fetch an instance
func (h *Host) Get(instance account.Identifier) (*level.Deployment, error) {
	record := h.pool.Get(instance[:])
	if nil == record {
		return nil, fault.InstanceNotFound
	}
	return unpack(record)
}

// SetState - replace the state of an existing instance
func (h *Host) SetState(instance account.Identifier, state []byte) error {
	d, err := h.Get(instance)
	if nil != err {
		return err
	}
	h.pool.Put(instance[:], pack(d.Level, d.Player, d.Endowment, state))
	return nil
}

func pack(lvl account.Identifier, player account.Identifier, endowment uint64, state []byte) []byte {
	record := make([]byte, headerLength, headerLength+len(state))
	copy(record[0:], lvl[:])
	copy(record[account.IdentifierLength:], player[:])
	binary.BigEndian.PutUint64(record[2*account.IdentifierLength:], endowment)
	return append(record, state...)
}

func unpack(record []byte) (*level.Deployment, error) {
	if len(record) < headerLength {
		return nil, fault.InvalidStateRecord
	}

	d := &level.Deployment{
		Endowment: binary.BigEndian.Uint64(record[2*account.IdentifierLength:]),
		State:     make([]byte, len(record)-headerLength),
	}
	copy(d.Level[:], record[:account.IdentifierLength])
	copy(d.Player[:], record[account.IdentifierLength:])
	copy(d.State, record[headerLength:])

	return d, nil
}
