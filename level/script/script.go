// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/level"
	"github.com/bitmark-inc/logger"
)

// limit on a single script call
const (
	defaultTimeout = 2 * time.Second
)

// descriptive fields of a script
type definition struct {
	Name        string `gluamapper:"name"`
	Description string `gluamapper:"description"`
}

// Level - a level implemented by a Lua script
type Level struct {
	sync.RWMutex
	log        *logger.L
	identifier account.Identifier
	fileName   string
	proto      *lua.FunctionProto
	info       definition
	deployer   level.Deployer
	timeout    time.Duration
}

// New - compile a script file into a level
func New(identifier account.Identifier, fileName string, deployer level.Deployer) (*Level, error) {
	l := &Level{
		log:        logger.New("script"),
		identifier: identifier,
		fileName:   fileName,
		deployer:   deployer,
		timeout:    defaultTimeout,
	}
	if err := l.Reload(); nil != err {
		return nil, err
	}
	return l, nil
}

// Reload - recompile the script, the previous version stays in use
// if the new one is rejected
func (l *Level) Reload() error {
	f, err := os.Open(l.fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	chunk, err := parse.Parse(f, l.fileName)
	if nil != err {
		l.log.Errorf("parse: %q  error: %s", l.fileName, err)
		return fault.InvalidLevelScript
	}
	proto, err := lua.Compile(chunk, l.fileName)
	if nil != err {
		l.log.Errorf("compile: %q  error: %s", l.fileName, err)
		return fault.InvalidLevelScript
	}

	// check the shape before accepting it
	L, t, cancel, err := l.run(proto)
	if nil != err {
		return err
	}
	defer cancel()
	defer L.Close()

	for _, name := range []string{"create", "validate"} {
		if _, ok := t.RawGetString(name).(*lua.LFunction); !ok {
			l.log.Errorf("script: %q has no function: %s", l.fileName, name)
			return fault.InvalidLevelScript
		}
	}

	info := definition{}
	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string {
				return s
			},
			TagName: "gluamapper",
		},
	}
	if err := mapper.Map(t, &info); nil != err {
		l.log.Errorf("script: %q  definition error: %s", l.fileName, err)
		return fault.InvalidLevelScript
	}

	l.Lock()
	l.proto = proto
	l.info = info
	l.Unlock()

	l.log.Infof("loaded level: %v  name: %q  from: %q", l.identifier, info.Name, l.fileName)
	return nil
}

// Identifier - the level's identifier
func (l *Level) Identifier() account.Identifier {
	return l.identifier
}

// FileName - the script file
func (l *Level) FileName() string {
	return l.fileName
}

// Name - the name declared by the script
func (l *Level) Name() string {
	l.RLock()
	defer l.RUnlock()
	return l.info.Name
}

// Description - the description declared by the script
func (l *Level) Description() string {
	l.RLock()
	defer l.RUnlock()
	return l.info.Description
}

// CreateInstance - run create and deploy the resulting state
//
// the player is the salt so each player gets at most one instance
func (l *Level) CreateInstance(player account.Identifier, endowment uint64) (account.Identifier, error) {
	L, t, cancel, err := l.load()
	if nil != err {
		return account.Identifier{}, err
	}
	defer cancel()
	defer L.Close()

	result, err := call(L, t.RawGetString("create"), lua.LString(player.String()), lua.LNumber(endowment))
	if nil != err {
		l.log.Warnf("level: %v  create error: %s", l.identifier, err)
		return account.Identifier{}, err
	}

	state, err := encodeState(result)
	if nil != err {
		return account.Identifier{}, err
	}

	return l.deployer.Deploy(l.identifier, player, player[:], endowment, state)
}

// ValidateInstance - run validate on a copy of the state
func (l *Level) ValidateInstance(instance account.Identifier, player account.Identifier) (bool, error) {
	d, err := l.deployment(instance)
	if nil != err {
		return false, err
	}

	L, t, cancel, err := l.load()
	if nil != err {
		return false, err
	}
	defer cancel()
	defer L.Close()

	state, err := decodeState(L, d.State)
	if nil != err {
		return false, err
	}

	result, err := call(L, t.RawGetString("validate"), state, lua.LString(player.String()))
	if nil != err {
		l.log.Warnf("instance: %v  validate error: %s", instance, err)
		return false, err
	}
	return lua.LVAsBool(result), nil
}

// Invoke - run an action against an instance and store the new state
//
// must be called inside a storage transaction
func (l *Level) Invoke(instance account.Identifier, caller account.Identifier, action string, args map[string]interface{}) (interface{}, error) {
	d, err := l.deployment(instance)
	if nil != err {
		return nil, err
	}

	L, t, cancel, err := l.load()
	if nil != err {
		return nil, err
	}
	defer cancel()
	defer L.Close()

	actions, ok := t.RawGetString("actions").(*lua.LTable)
	if !ok {
		return nil, fault.InvalidActionName
	}
	fn, ok := actions.RawGetString(action).(*lua.LFunction)
	if !ok {
		return nil, fault.InvalidActionName
	}

	state, err := decodeState(L, d.State)
	if nil != err {
		return nil, err
	}

	result, err := call(L, fn, state, lua.LString(caller.String()), toLua(L, args))
	if nil != err {
		l.log.Warnf("instance: %v  action: %s  error: %s", instance, action, err)
		return nil, err
	}

	newState, err := encodeState(state)
	if nil != err {
		return nil, err
	}
	if err := l.deployer.SetState(instance, newState); nil != err {
		return nil, err
	}

	return toGo(result, 0)
}

// State - the decoded state of an instance
func (l *Level) State(instance account.Identifier) (interface{}, error) {
	d, err := l.deployment(instance)
	if nil != err {
		return nil, err
	}
	var state interface{}
	if err := json.Unmarshal(d.State, &state); nil != err {
		return nil, fault.InvalidStateRecord
	}
	return state, nil
}

// fetch an instance checking that it belongs to this level
func (l *Level) deployment(instance account.Identifier) (*level.Deployment, error) {
	d, err := l.deployer.Get(instance)
	if nil != err {
		return nil, err
	}
	if d.Level != l.identifier {
		return nil, fault.InstanceNotFound
	}
	return d, nil
}

// execute the current script
func (l *Level) load() (*lua.LState, *lua.LTable, context.CancelFunc, error) {
	l.RLock()
	proto := l.proto
	l.RUnlock()
	return l.run(proto)
}

// fresh sandbox per call, Lua states are not safe for concurrent use
func (l *Level) run(proto *lua.FunctionProto) (*lua.LState, *lua.LTable, context.CancelFunc, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	// loading files from a level script is not allowed
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	L.SetContext(ctx)

	L.Push(L.NewFunctionFromProto(proto))
	if err := L.PCall(0, 1, nil); nil != err {
		cancel()
		L.Close()
		l.log.Errorf("script: %q  error: %s", l.fileName, err)
		return nil, nil, nil, fault.InvalidLevelScript
	}

	t, ok := L.Get(-1).(*lua.LTable)
	L.Pop(1)
	if !ok {
		cancel()
		L.Close()
		l.log.Errorf("script: %q did not return a table", l.fileName)
		return nil, nil, nil, fault.InvalidLevelScript
	}
	return L, t, cancel, nil
}

// call a function returning its single result
func call(L *lua.LState, fn lua.LValue, args ...lua.LValue) (lua.LValue, error) {
	if _, ok := fn.(*lua.LFunction); !ok {
		return lua.LNil, fault.InvalidLevelScript
	}
	err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...)
	if nil != err {
		return lua.LNil, err
	}
	result := L.Get(-1)
	L.Pop(1)
	return result, nil
}

func encodeState(lv lua.LValue) ([]byte, error) {
	if _, ok := lv.(*lua.LTable); !ok {
		return nil, fmt.Errorf("state must be a table not: %s", lv.Type())
	}
	v, err := toGo(lv, 0)
	if nil != err {
		return nil, err
	}
	return json.Marshal(v)
}

func decodeState(L *lua.LState, buffer []byte) (lua.LValue, error) {
	var v interface{}
	if err := json.Unmarshal(buffer, &v); nil != err {
		return lua.LNil, fault.InvalidStateRecord
	}
	return toLua(L, v), nil
}
