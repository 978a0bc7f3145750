// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/challenged/fault"
)

// field names are taken verbatim from the gluamapper tags
var mapper = gluamapper.Mapper{
	Option: gluamapper.Option{
		NameFunc: func(s string) string { return s },
		TagName:  "gluamapper",
	},
}

// ParseConfigurationFile - run a Lua script and decode the table it
// returns into config, which must point to a struct
//
// the script sees its own name as arg[0] and args as arg[1]…
func ParseConfigurationFile(fileName string, config interface{}, args ...string) error {
	v := reflect.ValueOf(config)
	if reflect.Ptr != v.Kind() || v.IsNil() || reflect.Struct != v.Elem().Kind() {
		return fault.InvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("arg", argTable(fileName, args))

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	result, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return fault.InvalidStructPointer
	}
	return mapper.Map(result, config)
}

func argTable(fileName string, args []string) *lua.LTable {
	t := &lua.LTable{}
	t.RawSetInt(0, lua.LString(fileName))
	for i, a := range args {
		t.RawSetInt(i+1, lua.LString(a))
	}
	return t
}
