// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package statistics

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/rpc/ratelimit"
	core "github.com/bitmark-inc/challenged/statistics"
	"github.com/bitmark-inc/challenged/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitStatistics = 200
	rateBurstStatistics = 100
)

// Ledger - the read side of a statistics ledger
type Ledger interface {
	IsLevelRegistered(account.Identifier) bool
	TotalInstances(account.Identifier) uint64
	Successes(account.Identifier, account.Identifier) uint64
	Failures(account.Identifier, account.Identifier) uint64
	InstanceCount(account.Identifier, account.Identifier) uint64
	Instances(account.Identifier, account.Identifier, uint64, int) ([]account.Identifier, uint64, error)
}

// Statistics - type for RPC calls
type Statistics struct {
	Log     *logger.L
	Limiter *rate.Limiter
	current func() (account.Identifier, bool)
	ledgers func(account.Identifier) (Ledger, bool)
}

// New - create the RPC service
//
// current gives the ledger used when a request names none
func New(log *logger.L, current func() (account.Identifier, bool), ledgers func(account.Identifier) (Ledger, bool)) *Statistics {
	return &Statistics{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitStatistics, rateBurstStatistics),
		current: current,
		ledgers: ledgers,
	}
}

// select the requested or current ledger
func (s *Statistics) ledger(id *account.Identifier) (Ledger, error) {
	var which account.Identifier
	if nil != id {
		which = *id
	} else {
		current, ok := s.current()
		if !ok {
			return nil, fault.MissingStatistics
		}
		which = current
	}
	l, ok := s.ledgers(which)
	if !ok {
		return nil, fault.MissingStatistics
	}
	return l, nil
}

// ---

// LevelArguments - arguments for Level
type LevelArguments struct {
	Ledger *account.Identifier `json:"ledger,omitempty"`
	Level  account.Identifier  `json:"level"`
}

// LevelReply - result of Level
type LevelReply struct {
	Registered bool   `json:"registered"`
	Total      uint64 `json:"total,string"`
}

// Level - registration and instance total of a level
func (s *Statistics) Level(arguments *LevelArguments, reply *LevelReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	var err error
	storage.View(func() {
		var l Ledger
		l, err = s.ledger(arguments.Ledger)
		if nil != err {
			return
		}
		reply.Registered = l.IsLevelRegistered(arguments.Level)
		reply.Total = l.TotalInstances(arguments.Level)
	})
	return err
}

// ---

// PlayerArguments - arguments for Player
type PlayerArguments struct {
	Ledger *account.Identifier `json:"ledger,omitempty"`
	Player account.Identifier  `json:"player"`
	Level  account.Identifier  `json:"level"`
	Start  uint64              `json:"start,string"`
	Count  int                 `json:"count"`
}

// PlayerReply - result of Player
type PlayerReply struct {
	Successes     uint64               `json:"successes,string"`
	Failures      uint64               `json:"failures,string"`
	InstanceCount uint64               `json:"instanceCount,string"`
	Instances     []account.Identifier `json:"instances"`
	NextStart     uint64               `json:"nextStart,string"`
}

// Player - counters and a page of instances of a player at a level
func (s *Statistics) Player(arguments *PlayerArguments, reply *PlayerReply) error {
	if err := ratelimit.LimitN(s.Limiter, arguments.Count, core.MaximumCount); nil != err {
		return err
	}

	var err error
	storage.View(func() {
		var l Ledger
		l, err = s.ledger(arguments.Ledger)
		if nil != err {
			return
		}

		instances, next, e := l.Instances(arguments.Player, arguments.Level, arguments.Start, arguments.Count)
		if nil != e {
			err = e
			return
		}

		reply.Successes = l.Successes(arguments.Player, arguments.Level)
		reply.Failures = l.Failures(arguments.Player, arguments.Level)
		reply.InstanceCount = l.InstanceCount(arguments.Player, arguments.Level)
		reply.Instances = instances
		reply.NextStart = next
	})
	return err
}
