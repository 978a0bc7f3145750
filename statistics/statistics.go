// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package statistics

import (
	"encoding/binary"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/storage"
	"github.com/bitmark-inc/logger"
)

// maximum page size for instance lists
const (
	MaximumCount = 100
)

var registeredFlag = []byte{0x01}

// Ledger - one statistics ledger
type Ledger struct {
	log      *logger.L
	identity account.Identifier
	owner    account.Identifier
}

// New - a ledger writable only by owner
func New(identity account.Identifier, owner account.Identifier) *Ledger {
	return &Ledger{
		log:      logger.New("statistics"),
		identity: identity,
		owner:    owner,
	}
}

// Identifier - the ledger's own identifier
func (l *Ledger) Identifier() account.Identifier {
	return l.identity
}

// Owner - the only caller allowed to write
func (l *Ledger) Owner() account.Identifier {
	return l.owner
}

// SaveNewLevel - flag a level and reset its instance total
//
// the total is zeroed on every call, so calling this for a level that
// already has instances loses its count
func (l *Ledger) SaveNewLevel(caller account.Identifier, level account.Identifier) error {
	if caller != l.owner {
		return fault.Unauthorized
	}

	k := l.levelKey(level)
	storage.Pool.StatLevels.Put(k, registeredFlag)
	storage.Pool.StatTotals.PutN(k, 0)

	l.log.Debugf("new level: %v", level)
	return nil
}

// CreateNewInstance - count an instance and append it to the player's list
func (l *Ledger) CreateNewInstance(caller account.Identifier, instance account.Identifier, level account.Identifier, player account.Identifier) error {
	if caller != l.owner {
		return fault.Unauthorized
	}

	lk := l.levelKey(level)
	total, _ := storage.Pool.StatTotals.GetN(lk)
	storage.Pool.StatTotals.PutN(lk, total+1)

	pk := l.playerKey(player, level)
	n, _ := storage.Pool.StatNextCount.GetN(pk)
	storage.Pool.StatInstances.Put(indexKey(pk, n), instance[:])
	storage.Pool.StatNextCount.PutN(pk, n+1)

	l.log.Debugf("instance: %v  level: %v  player: %v  index: %d", instance, level, player, n)
	return nil
}

// SubmitSuccess - count a successful submission
func (l *Ledger) SubmitSuccess(caller account.Identifier, instance account.Identifier, level account.Identifier, player account.Identifier) error {
	if caller != l.owner {
		return fault.Unauthorized
	}
	increment(storage.Pool.StatSuccess, l.playerKey(player, level))
	l.log.Debugf("success: instance: %v  player: %v", instance, player)
	return nil
}

// SubmitFailure - count a failed submission
func (l *Ledger) SubmitFailure(caller account.Identifier, instance account.Identifier, level account.Identifier, player account.Identifier) error {
	if caller != l.owner {
		return fault.Unauthorized
	}
	increment(storage.Pool.StatFailure, l.playerKey(player, level))
	l.log.Debugf("failure: instance: %v  player: %v", instance, player)
	return nil
}

// IsLevelRegistered - true once SaveNewLevel was called for level
func (l *Ledger) IsLevelRegistered(level account.Identifier) bool {
	return storage.Pool.StatLevels.Has(l.levelKey(level))
}

// TotalInstances - instances created for a level
func (l *Ledger) TotalInstances(level account.Identifier) uint64 {
	n, _ := storage.Pool.StatTotals.GetN(l.levelKey(level))
	return n
}

// Successes - successful submissions by a player on a level
func (l *Ledger) Successes(player account.Identifier, level account.Identifier) uint64 {
	n, _ := storage.Pool.StatSuccess.GetN(l.playerKey(player, level))
	return n
}

// Failures - failed submissions by a player on a level
func (l *Ledger) Failures(player account.Identifier, level account.Identifier) uint64 {
	n, _ := storage.Pool.StatFailure.GetN(l.playerKey(player, level))
	return n
}

// InstanceCount - length of a player's instance list on a level
func (l *Ledger) InstanceCount(player account.Identifier, level account.Identifier) uint64 {
	n, _ := storage.Pool.StatNextCount.GetN(l.playerKey(player, level))
	return n
}

// Instances - page through a player's instances in creation order
//
// returns the instances and the index to start the next page
func (l *Ledger) Instances(player account.Identifier, level account.Identifier, start uint64, count int) ([]account.Identifier, uint64, error) {
	if count <= 0 || count > MaximumCount {
		return nil, start, fault.InvalidCount
	}

	pk := l.playerKey(player, level)
	cursor := storage.Pool.StatInstances.NewFetchCursor().Within(pk).Seek(indexKey(pk, start))

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, start, err
	}

	instances := make([]account.Identifier, 0, len(elements))
	next := start
	for _, e := range elements {
		id, err := account.IdentifierFromBytes(e.Value)
		if nil != err {
			l.log.Errorf("corrupt instance list entry: %x", e.Key)
			return nil, start, err
		}
		instances = append(instances, id)
		next = binary.BigEndian.Uint64(e.Key[len(pk):]) + 1
	}
	return instances, next, nil
}

func increment(pool storage.Handle, key []byte) {
	n, _ := pool.GetN(key)
	pool.PutN(key, n+1)
}

func (l *Ledger) levelKey(level account.Identifier) []byte {
	k := make([]byte, 0, 2*account.IdentifierLength)
	k = append(k, l.identity[:]...)
	return append(k, level[:]...)
}

func (l *Ledger) playerKey(player account.Identifier, level account.Identifier) []byte {
	k := make([]byte, 0, 3*account.IdentifierLength+8)
	k = append(k, l.identity[:]...)
	k = append(k, player[:]...)
	return append(k, level[:]...)
}

func indexKey(pk []byte, n uint64) []byte {
	k := make([]byte, len(pk)+8)
	copy(k, pk)
	binary.BigEndian.PutUint64(k[len(pk):], n)
	return k
}
