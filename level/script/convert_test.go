// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	lua "github.com/yuin/gopher-lua"
)

// evaluate a Lua expression
func evaluate(t *testing.T, L *lua.LState, expression string) lua.LValue {
	if err := L.DoString("return " + expression); nil != err {
		t.Fatalf("evaluate: %q  error: %s", expression, err)
	}
	lv := L.Get(-1)
	L.Pop(1)
	return lv
}

func TestStateRoundTrip(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	tests := []struct {
		expression string
		json       string
	}{
		{`{}`, `{}`},
		{`{ list = {10, 20, 30} }`, `{"list":[10,20,30]}`},
		{`{ owner = "alice", balances = { alice = 5, bob = 7 } }`, `{"balances":{"alice":5,"bob":7},"owner":"alice"}`},
		{`{ nested = { { a = true }, { b = "x" } } }`, `{"nested":[{"a":true},{"b":"x"}]}`},
	}

	for i, test := range tests {
		buffer, err := encodeState(evaluate(t, L, test.expression))
		assert.Nil(t, err, "%d: wrong encode", i)
		assert.Equal(t, test.json, string(buffer), "%d: wrong json", i)

		lv, err := decodeState(L, buffer)
		assert.Nil(t, err, "%d: wrong decode", i)

		again, err := encodeState(lv)
		assert.Nil(t, err, "%d: wrong re-encode", i)
		assert.Equal(t, test.json, string(again), "%d: state changed by round trip", i)
	}
}

func TestStateRejectsLossyTables(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	tests := []string{
		`{ 10, 20, owner = "alice" }`,
		`{ balances = { alice = 5, [1] = 3 } }`,
		`(function() local t = {} t[5] = "x" return { sparse = t } end)()`,
		`{ holes = { 1, nil, 3 } }`,
		`{ keyed = { [2] = "b", [3] = "c" } }`,
		`{ fraction = { [1.5] = "x" } }`,
		`{ flags = { [true] = 1 } }`,
	}

	for i, expression := range tests {
		buffer, err := encodeState(evaluate(t, L, expression))
		assert.NotNil(t, err, "%d: lossy table encoded as: %s", i, buffer)
	}
}

func TestDecodeKeepsArrayPositions(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	lv, err := decodeState(L, []byte(`{"list":["a",null,"c"]}`))
	assert.Nil(t, err, "wrong decode")

	list := lv.(*lua.LTable).RawGetString("list").(*lua.LTable)
	assert.Equal(t, lua.LString("a"), list.RawGetInt(1), "wrong first item")
	assert.Equal(t, lua.LNil, list.RawGetInt(2), "wrong missing item")
	assert.Equal(t, lua.LString("c"), list.RawGetInt(3), "third item moved")
}
