// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instance

import (
	"encoding/json"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/challenged/account"
	core "github.com/bitmark-inc/challenged/coordinator"
	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/rpc/auth"
	"github.com/bitmark-inc/challenged/rpc/ratelimit"
	"github.com/bitmark-inc/challenged/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitInstance = 100
	rateBurstInstance = 50
)

// Scripted - a level whose instances hold inspectable state
type Scripted interface {
	State(account.Identifier) (interface{}, error)
	Invoke(account.Identifier, account.Identifier, string, map[string]interface{}) (interface{}, error)
}

// Records - lookup of instance ownership
type Records interface {
	GetInstanceData(account.Identifier) (*core.InstanceRecord, bool)
}

// Instance - type for RPC calls
type Instance struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	records  Records
	scripts  func(account.Identifier) (Scripted, bool)
	transact func(func() error) error
}

// New - create the RPC service
//
// transact runs an invocation as one storage transaction
func New(log *logger.L, records Records, scripts func(account.Identifier) (Scripted, bool), transact func(func() error) error) *Instance {
	return &Instance{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitInstance, rateBurstInstance),
		records:  records,
		scripts:  scripts,
		transact: transact,
	}
}

// find the scripted level of an instance
func (i *Instance) script(instance account.Identifier) (*core.InstanceRecord, Scripted, error) {
	r, ok := i.records.GetInstanceData(instance)
	if !ok {
		return nil, nil, fault.InstanceNotFound
	}
	s, ok := i.scripts(r.Level)
	if !ok {
		return nil, nil, fault.LevelNotFound
	}
	return r, s, nil
}

// ---

// StateArguments - arguments for State
type StateArguments struct {
	Instance account.Identifier `json:"instance"`
}

// StateReply - result of State
type StateReply struct {
	Player    account.Identifier `json:"player"`
	Level     account.Identifier `json:"level"`
	Completed bool               `json:"completed"`
	State     interface{}        `json:"state"`
}

// State - the current state of an instance
func (i *Instance) State(arguments *StateArguments, reply *StateReply) error {
	if err := ratelimit.Limit(i.Limiter); nil != err {
		return err
	}

	var r *core.InstanceRecord
	var state interface{}
	var err error
	storage.View(func() {
		var s Scripted
		r, s, err = i.script(arguments.Instance)
		if nil != err {
			return
		}
		state, err = s.State(arguments.Instance)
	})
	if nil != err {
		return err
	}

	reply.Player = r.Player
	reply.Level = r.Level
	reply.Completed = r.Completed
	reply.State = state
	return nil
}

// ---

// InvokeArguments - arguments for Invoke
//
// Arguments is a JSON object text, signed exactly as sent
type InvokeArguments struct {
	auth.Request
	Instance  account.Identifier `json:"instance"`
	Action    string             `json:"action"`
	Arguments string             `json:"arguments"`
}

// InvokePayload - signed part of Invoke
func InvokePayload(instance account.Identifier, action string, arguments string) auth.Payload {
	return auth.Payload{}.Identifier(instance).Text(action).Text(arguments)
}

// InvokeReply - result of Invoke
type InvokeReply struct {
	Instance account.Identifier `json:"instance"`
	Result   interface{}        `json:"result"`
}

// Invoke - run an action on the caller's own unfinished instance
func (i *Instance) Invoke(arguments *InvokeArguments, reply *InvokeReply) error {
	if err := ratelimit.Limit(i.Limiter); nil != err {
		return err
	}

	payload := InvokePayload(arguments.Instance, arguments.Action, arguments.Arguments)
	caller, err := arguments.Verify("Instance.Invoke", payload, time.Now())
	if nil != err {
		return err
	}

	if "" == arguments.Action {
		return fault.InvalidActionName
	}

	args := map[string]interface{}{}
	if "" != arguments.Arguments {
		if err := json.Unmarshal([]byte(arguments.Arguments), &args); nil != err {
			return fault.MissingParameters
		}
	}

	var result interface{}
	err = i.transact(func() error {
		r, s, err := i.script(arguments.Instance)
		if nil != err {
			return err
		}
		if r.Player != caller {
			return fault.InstanceNotOwned
		}
		if r.Completed {
			return fault.AlreadyCompleted
		}
		result, err = s.Invoke(arguments.Instance, caller, arguments.Action, args)
		return err
	})
	if nil != err {
		return err
	}

	i.Log.Debugf("instance: %v  action: %s  by: %v", arguments.Instance, arguments.Action, caller)

	reply.Instance = arguments.Instance
	reply.Result = result
	return nil
}
