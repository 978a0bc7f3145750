// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coordinator

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/challenged/account"
	core "github.com/bitmark-inc/challenged/coordinator"
	"github.com/bitmark-inc/challenged/rpc/auth"
	"github.com/bitmark-inc/challenged/rpc/ratelimit"
	"github.com/bitmark-inc/challenged/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitCoordinator = 200
	rateBurstCoordinator = 100
)

// Orchestrator - the coordinator operations reachable over RPC
type Orchestrator interface {
	GetOwner() account.Identifier
	Identity() account.Identifier
	RegisterLevel(account.Identifier, account.Identifier) error
	SetStatistics(account.Identifier, account.Identifier) error
	GetStatistics() (account.Identifier, bool)
	IsLevelRegistered(account.Identifier) bool
	GetInstanceData(account.Identifier) (*core.InstanceRecord, bool)
	CreateLevelInstance(account.Identifier, account.Identifier, uint64) (account.Identifier, error)
	SubmitLevelInstance(account.Identifier, account.Identifier) (bool, error)
	Events(uint64, int) ([]core.Event, uint64, error)
}

// Coordinator - type for RPC calls
type Coordinator struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Orchestrator Orchestrator
	now          func() time.Time
}

// New - create the RPC service
func New(log *logger.L, o Orchestrator) *Coordinator {
	return &Coordinator{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitCoordinator, rateBurstCoordinator),
		Orchestrator: o,
		now:          time.Now,
	}
}

// ---

// RegisterArguments - arguments for RegisterLevel
type RegisterArguments struct {
	auth.Request
	Level account.Identifier `json:"level"`
}

// RegisterPayload - signed part of RegisterLevel
func RegisterPayload(lvl account.Identifier) auth.Payload {
	return auth.Payload{}.Identifier(lvl)
}

// RegisterReply - result of RegisterLevel
type RegisterReply struct {
	Level account.Identifier `json:"level"`
}

// RegisterLevel - owner registers a level
func (c *Coordinator) RegisterLevel(arguments *RegisterArguments, reply *RegisterReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	caller, err := arguments.Verify("Coordinator.RegisterLevel", RegisterPayload(arguments.Level), c.now())
	if nil != err {
		return err
	}

	c.Log.Infof("register level: %v", arguments.Level)

	if err := c.Orchestrator.RegisterLevel(caller, arguments.Level); nil != err {
		return err
	}
	reply.Level = arguments.Level
	return nil
}

// ---

// StatisticsArguments - arguments for SetStatistics
type StatisticsArguments struct {
	auth.Request
	Statistics account.Identifier `json:"statistics"`
}

// StatisticsPayload - signed part of SetStatistics
func StatisticsPayload(stats account.Identifier) auth.Payload {
	return auth.Payload{}.Identifier(stats)
}

// StatisticsReply - result of SetStatistics
type StatisticsReply struct {
	Statistics account.Identifier `json:"statistics"`
}

// SetStatistics - owner points the coordinator at a ledger
func (c *Coordinator) SetStatistics(arguments *StatisticsArguments, reply *StatisticsReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	caller, err := arguments.Verify("Coordinator.SetStatistics", StatisticsPayload(arguments.Statistics), c.now())
	if nil != err {
		return err
	}

	if err := c.Orchestrator.SetStatistics(caller, arguments.Statistics); nil != err {
		return err
	}
	reply.Statistics = arguments.Statistics
	return nil
}

// ---

// CreateArguments - arguments for CreateInstance
type CreateArguments struct {
	auth.Request
	Level     account.Identifier `json:"level"`
	Endowment uint64             `json:"endowment,string"`
}

// CreatePayload - signed part of CreateInstance
func CreatePayload(lvl account.Identifier, endowment uint64) auth.Payload {
	return auth.Payload{}.Identifier(lvl).Uint64(endowment)
}

// CreateReply - result of CreateInstance
type CreateReply struct {
	Instance account.Identifier `json:"instance"`
	Level    account.Identifier `json:"level"`
}

// CreateInstance - a player starts an attempt at a level
func (c *Coordinator) CreateInstance(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	caller, err := arguments.Verify("Coordinator.CreateInstance", CreatePayload(arguments.Level, arguments.Endowment), c.now())
	if nil != err {
		return err
	}

	instance, err := c.Orchestrator.CreateLevelInstance(caller, arguments.Level, arguments.Endowment)
	if nil != err {
		return err
	}
	reply.Instance = instance
	reply.Level = arguments.Level
	return nil
}

// ---

// SubmitArguments - arguments for Submit
type SubmitArguments struct {
	auth.Request
	Instance account.Identifier `json:"instance"`
}

// SubmitPayload - signed part of Submit
func SubmitPayload(instance account.Identifier) auth.Payload {
	return auth.Payload{}.Identifier(instance)
}

// SubmitReply - result of Submit
type SubmitReply struct {
	Instance account.Identifier `json:"instance"`
	Success  bool               `json:"success"`
}

// Submit - a player claims to have solved an instance
func (c *Coordinator) Submit(arguments *SubmitArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	caller, err := arguments.Verify("Coordinator.Submit", SubmitPayload(arguments.Instance), c.now())
	if nil != err {
		return err
	}

	won, err := c.Orchestrator.SubmitLevelInstance(caller, arguments.Instance)
	if nil != err {
		return err
	}
	reply.Instance = arguments.Instance
	reply.Success = won
	return nil
}

// ---

// IsRegisteredArguments - arguments for IsRegistered
type IsRegisteredArguments struct {
	Level account.Identifier `json:"level"`
}

// IsRegisteredReply - result of IsRegistered
type IsRegisteredReply struct {
	Registered bool `json:"registered"`
}

// IsRegistered - query the level registry
func (c *Coordinator) IsRegistered(arguments *IsRegisteredArguments, reply *IsRegisteredReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	storage.View(func() {
		reply.Registered = c.Orchestrator.IsLevelRegistered(arguments.Level)
	})
	return nil
}

// ---

// InstanceArguments - arguments for Instance
type InstanceArguments struct {
	Instance account.Identifier `json:"instance"`
}

// InstanceReply - result of Instance
type InstanceReply struct {
	Found  bool                 `json:"found"`
	Record *core.InstanceRecord `json:"record,omitempty"`
}

// Instance - query an instance record
func (c *Coordinator) Instance(arguments *InstanceArguments, reply *InstanceReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	storage.View(func() {
		reply.Record, reply.Found = c.Orchestrator.GetInstanceData(arguments.Instance)
	})
	return nil
}

// ---

// OwnerArguments - empty arguments for Owner
type OwnerArguments struct{}

// OwnerReply - result of Owner
type OwnerReply struct {
	Owner      account.Identifier  `json:"owner"`
	Identity   account.Identifier  `json:"identity"`
	Statistics *account.Identifier `json:"statistics,omitempty"`
}

// Owner - the administrator, the coordinator identity and the current ledger
func (c *Coordinator) Owner(_ *OwnerArguments, reply *OwnerReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	reply.Owner = c.Orchestrator.GetOwner()
	reply.Identity = c.Orchestrator.Identity()
	storage.View(func() {
		if stats, ok := c.Orchestrator.GetStatistics(); ok {
			reply.Statistics = &stats
		}
	})
	return nil
}

// ---

// EventsArguments - arguments for Events
type EventsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// EventsReply - result of Events
type EventsReply struct {
	Events    []core.Event `json:"events"`
	NextStart uint64       `json:"nextStart,string"`
}

// Events - page through the event log
func (c *Coordinator) Events(arguments *EventsArguments, reply *EventsReply) error {
	if err := ratelimit.LimitN(c.Limiter, arguments.Count, core.MaximumEventCount); nil != err {
		return err
	}

	var events []core.Event
	var next uint64
	var err error
	storage.View(func() {
		events, next, err = c.Orchestrator.Events(arguments.Start, arguments.Count)
	})
	if nil != err {
		return err
	}
	reply.Events = events
	reply.NextStart = next
	return nil
}
