// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"
)

// maximum depth of nested tables
const (
	maximumDepth = 32
)

// convert a Lua value into something encoding/json accepts
func toGo(lv lua.LValue, depth int) (interface{}, error) {
	if depth > maximumDepth {
		return nil, fmt.Errorf("state nested deeper than: %d", maximumDepth)
	}

	switch v := lv.(type) {
	case *lua.LNilType:
		return nil, nil
	case lua.LBool:
		return bool(v), nil
	case lua.LNumber:
		return float64(v), nil
	case lua.LString:
		return string(v), nil
	case *lua.LTable:
		return tableToGo(v, depth)
	default:
		return nil, fmt.Errorf("cannot store Lua type: %s", lv.Type())
	}
}

// a table keyed exactly by 1..n becomes a slice and a table keyed
// only by strings becomes a map; other tables would not decode to the
// same keys so they are refused
func tableToGo(t *lua.LTable, depth int) (interface{}, error) {
	n := t.MaxN()
	count := 0
	indexed := 0
	named := 0
	t.ForEach(func(key lua.LValue, _ lua.LValue) {
		count += 1
		switch k := key.(type) {
		case lua.LString:
			named += 1
		case lua.LNumber:
			if i := int(k); lua.LNumber(i) == k && i >= 1 && i <= n {
				indexed += 1
			}
		}
	})

	switch {
	case n > 0 && indexed == n && count == n:
		a := make([]interface{}, 0, n)
		for i := 1; i <= n; i += 1 {
			item, err := toGo(t.RawGetInt(i), depth+1)
			if nil != err {
				return nil, err
			}
			a = append(a, item)
		}
		return a, nil

	case named == count:
		m := make(map[string]interface{}, count)
		var err error
		t.ForEach(func(key lua.LValue, value lua.LValue) {
			if nil != err {
				return
			}
			item, e := toGo(value, depth+1)
			if nil != e {
				err = e
				return
			}
			m[string(key.(lua.LString))] = item
		})
		if nil != err {
			return nil, err
		}
		return m, nil

	default:
		return nil, fmt.Errorf("cannot store table with: %d entries  %d in sequence  %d named", count, indexed, named)
	}
}

// convert a decoded JSON value into a Lua value
func toLua(L *lua.LState, v interface{}) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(x)
	case float64:
		return lua.LNumber(x)
	case int:
		return lua.LNumber(x)
	case uint64:
		return lua.LNumber(x)
	case string:
		return lua.LString(x)
	case []interface{}:
		t := L.CreateTable(len(x), 0)
		for i, item := range x {
			t.RawSetInt(i+1, toLua(L, item))
		}
		return t
	case map[string]interface{}:
		t := L.CreateTable(0, len(x))

		// deterministic insertion order
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t.RawSetString(k, toLua(L, x[k]))
		}
		return t
	default:
		return lua.LString(fmt.Sprintf("%v", x))
	}
}
