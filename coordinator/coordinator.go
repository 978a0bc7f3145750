// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coordinator

import (
	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/level"
	"github.com/bitmark-inc/challenged/messagebus"
	"github.com/bitmark-inc/challenged/storage"
	"github.com/bitmark-inc/logger"
)

// maximum page size for events
const (
	MaximumEventCount = 100
)

var (
	registeredFlag = []byte{0x01}
	statisticsKey  = []byte("statistics")
	eventCountKey  = []byte("count")
)

// Statistics - the ledger writes the coordinator mirrors outcomes to
type Statistics interface {
	SaveNewLevel(caller account.Identifier, level account.Identifier) error
	CreateNewInstance(caller account.Identifier, instance account.Identifier, level account.Identifier, player account.Identifier) error
	SubmitSuccess(caller account.Identifier, instance account.Identifier, level account.Identifier, player account.Identifier) error
	SubmitFailure(caller account.Identifier, instance account.Identifier, level account.Identifier, player account.Identifier) error
}

// Resolver - find the ledger behind a statistics identifier
type Resolver func(account.Identifier) (Statistics, bool)

// Coordinator - the orchestration core
type Coordinator struct {
	log      *logger.L
	owner    account.Identifier
	identity account.Identifier
	levels   level.Directory
	ledgers  Resolver
}

// New - create a coordinator
//
// owner is the administrator, identity is the caller presented to
// statistics ledgers
func New(owner account.Identifier, identity account.Identifier, levels level.Directory, ledgers Resolver) *Coordinator {
	return &Coordinator{
		log:      logger.New("coordinator"),
		owner:    owner,
		identity: identity,
		levels:   levels,
		ledgers:  ledgers,
	}
}

// GetOwner - the administrator
func (c *Coordinator) GetOwner() account.Identifier {
	return c.owner
}

// Identity - the caller identity used towards statistics ledgers
func (c *Coordinator) Identity() account.Identifier {
	return c.identity
}

// RegisterLevel - mark a level as registered
//
// registering again changes nothing; only the first registration
// informs statistics and emits an event
func (c *Coordinator) RegisterLevel(caller account.Identifier, lvl account.Identifier) error {
	if caller != c.owner {
		c.log.Warnf("register level: %v by non-owner: %v", lvl, caller)
		return fault.Unauthorized
	}

	var events []*Event
	err := storage.RunTransactionThen(func() error {
		first := !storage.Pool.Levels.Has(lvl[:])
		storage.Pool.Levels.Put(lvl[:], registeredFlag)
		if !first {
			return nil
		}

		c.mirror("save new level", func(s Statistics) error {
			return s.SaveNewLevel(c.identity, lvl)
		})
		events = append(events, c.appendEvent(LevelRegistered, caller, account.Identifier{}, lvl))
		return nil
	}, func() {
		broadcast(events)
	})
	if nil != err {
		return err
	}

	c.log.Infof("registered level: %v", lvl)
	return nil
}

// SetStatistics - replace the statistics ledger reference
//
// the identifier is not checked, an unknown ledger only means that
// mirroring is skipped
func (c *Coordinator) SetStatistics(caller account.Identifier, stats account.Identifier) error {
	if caller != c.owner {
		c.log.Warnf("set statistics: %v by non-owner: %v", stats, caller)
		return fault.Unauthorized
	}

	err := storage.RunTransaction(func() error {
		storage.Pool.Settings.Put(statisticsKey, stats[:])
		return nil
	})
	if nil != err {
		return err
	}

	c.log.Infof("statistics ledger: %v", stats)
	return nil
}

// GetStatistics - the current statistics ledger reference
func (c *Coordinator) GetStatistics() (account.Identifier, bool) {
	buffer := storage.Pool.Settings.Get(statisticsKey)
	if nil == buffer {
		return account.Identifier{}, false
	}
	id, err := account.IdentifierFromBytes(buffer)
	if nil != err {
		c.log.Errorf("corrupt statistics setting: %x", buffer)
		return account.Identifier{}, false
	}
	return id, true
}

// IsLevelRegistered - true if level was registered
func (c *Coordinator) IsLevelRegistered(lvl account.Identifier) bool {
	return storage.Pool.Levels.Has(lvl[:])
}

// GetInstanceData - the record of an instance if it exists
func (c *Coordinator) GetInstanceData(instance account.Identifier) (*InstanceRecord, bool) {
	buffer := storage.Pool.Instances.Get(instance[:])
	if nil == buffer {
		return nil, false
	}
	r, err := unpackRecord(buffer)
	if nil != err {
		c.log.Errorf("corrupt instance record: %v: %x", instance, buffer)
		return nil, false
	}
	return r, true
}

// CreateLevelInstance - have a level allocate an instance for caller
//
// the endowment is passed to the level unchanged and nothing is kept
// when creation fails
func (c *Coordinator) CreateLevelInstance(caller account.Identifier, lvl account.Identifier, endowment uint64) (account.Identifier, error) {
	var instance account.Identifier
	var events []*Event

	err := storage.RunTransactionThen(func() error {
		if !storage.Pool.Levels.Has(lvl[:]) {
			return fault.LevelNotRegistered
		}

		impl, ok := c.levels.Get(lvl)
		if !ok {
			c.log.Errorf("registered level: %v has no implementation", lvl)
			return fault.InstanceCreationFailed
		}

		id, err := impl.CreateInstance(caller, endowment)
		if nil != err {
			c.log.Warnf("level: %v  player: %v  create error: %s", lvl, caller, err)
			return fault.InstanceCreationFailed
		}

		// an instance record is never re-created
		if storage.Pool.Instances.Has(id[:]) {
			c.log.Errorf("level: %v returned existing instance: %v", lvl, id)
			return fault.InstanceCreationFailed
		}

		r := InstanceRecord{
			Player:    caller,
			Level:     lvl,
			Completed: false,
		}
		storage.Pool.Instances.Put(id[:], r.pack())

		c.mirror("create new instance", func(s Statistics) error {
			return s.CreateNewInstance(c.identity, id, lvl, caller)
		})
		events = append(events, c.appendEvent(InstanceCreated, caller, id, lvl))

		instance = id
		return nil
	}, func() {
		broadcast(events)
	})
	if nil != err {
		return account.Identifier{}, err
	}

	c.log.Infof("created instance: %v  level: %v  player: %v", instance, lvl, caller)
	return instance, nil
}

// SubmitLevelInstance - ask the level whether caller has won
//
// an unknown instance and another player's instance give the same
// error
func (c *Coordinator) SubmitLevelInstance(caller account.Identifier, instance account.Identifier) (bool, error) {
	result := false
	var events []*Event

	err := storage.RunTransactionThen(func() error {
		r, ok := c.GetInstanceData(instance)
		if !ok || r.Player != caller {
			return fault.InstanceNotOwned
		}
		if r.Completed {
			return fault.AlreadyCompleted
		}

		impl, ok := c.levels.Get(r.Level)
		if !ok {
			c.log.Errorf("level: %v of instance: %v has no implementation", r.Level, instance)
			return fault.ValidationFailed
		}

		won, err := impl.ValidateInstance(instance, caller)
		if nil != err {
			c.log.Warnf("instance: %v  validate error: %s", instance, err)
			return fault.ValidationFailed
		}

		if won {
			r.Completed = true
			storage.Pool.Instances.Put(instance[:], r.pack())
			c.mirror("submit success", func(s Statistics) error {
				return s.SubmitSuccess(c.identity, instance, r.Level, caller)
			})
			events = append(events, c.appendEvent(SubmissionSucceeded, caller, instance, r.Level))
		} else {
			c.mirror("submit failure", func(s Statistics) error {
				return s.SubmitFailure(c.identity, instance, r.Level, caller)
			})
			events = append(events, c.appendEvent(SubmissionFailed, caller, instance, r.Level))
		}

		result = won
		return nil
	}, func() {
		broadcast(events)
	})
	if nil != err {
		return false, err
	}

	c.log.Infof("submitted instance: %v  player: %v  result: %t", instance, caller, result)
	return result, nil
}

// Events - page through the persisted events
//
// returns the events and the sequence to start the next page
func (c *Coordinator) Events(start uint64, count int) ([]Event, uint64, error) {
	if count <= 0 || count > MaximumEventCount {
		return nil, start, fault.InvalidCount
	}

	elements, err := storage.Pool.Events.NewFetchCursor().Seek(sequenceKey(start)).Fetch(count)
	if nil != err {
		return nil, start, err
	}

	events := make([]Event, 0, len(elements))
	next := start
	for _, element := range elements {
		e, err := unpackEvent(element.Key, element.Value)
		if nil != err {
			c.log.Errorf("corrupt event: %x", element.Key)
			return nil, start, err
		}
		events = append(events, *e)
		next = e.Sequence + 1
	}
	return events, next, nil
}

// call the current ledger, any failure is only logged
func (c *Coordinator) mirror(operation string, f func(Statistics) error) {
	id, ok := c.GetStatistics()
	if !ok {
		c.log.Debugf("%s: no statistics ledger", operation)
		return
	}
	ledger, ok := c.ledgers(id)
	if !ok {
		c.log.Warnf("%s: statistics ledger: %v not available", operation, id)
		return
	}
	if err := f(ledger); nil != err {
		c.log.Warnf("%s: statistics ledger: %v error: %s", operation, id, err)
	}
}

// persist an event in the current transaction
func (c *Coordinator) appendEvent(kind EventKind, player account.Identifier, instance account.Identifier, lvl account.Identifier) *Event {
	n, _ := storage.Pool.EventCount.GetN(eventCountKey)

	e := &Event{
		Sequence: n,
		Kind:     kind,
		Player:   player,
		Instance: instance,
		Level:    lvl,
	}
	storage.Pool.Events.Put(sequenceKey(n), e.pack())
	storage.Pool.EventCount.PutN(eventCountKey, n+1)

	return e
}

// called after commit while the writer lock is still held, so
// messages leave in sequence order
func broadcast(events []*Event) {
	for _, e := range events {
		kind, parameters := e.BroadcastParts()
		messagebus.Bus.Broadcast.Send(kind, parameters...)
	}
}
