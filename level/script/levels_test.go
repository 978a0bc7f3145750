// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/fixtures"
	"github.com/bitmark-inc/challenged/level/script"
	"github.com/bitmark-inc/challenged/storage"
)

// the levels shipped with the daemon
const levelDirectory = "../../command/challenged/levels"

type args map[string]interface{}

func invoke(l *script.Level, instance account.Identifier, caller account.Identifier, action string, a args) (interface{}, error) {
	var result interface{}
	err := storage.RunTransaction(func() error {
		var err error
		result, err = l.Invoke(instance, caller, action, a)
		return err
	})
	return result, err
}

func stateOf(t *testing.T, l *script.Level, instance account.Identifier) map[string]interface{} {
	state, err := l.State(instance)
	if nil != err {
		t.Fatalf("state error: %s", err)
	}
	return state.(map[string]interface{})
}

func TestShippedLevels(t *testing.T) {
	player := fixtures.Player1
	other := fixtures.Player2

	tests := []struct {
		file  string
		name  string
		solve func(t *testing.T, l *script.Level, instance account.Identifier)
	}{
		{
			file: "vault.lua",
			name: "vault",
			solve: func(t *testing.T, l *script.Level, instance account.Identifier) {
				password := stateOf(t, l, instance)["password"]
				result, err := invoke(l, instance, player, "unlock", args{"password": password})
				assert.Nil(t, err, "wrong unlock")
				assert.Equal(t, true, result, "vault still locked")
			},
		},
		{
			file: "instance.lua",
			name: "instance",
			solve: func(t *testing.T, l *script.Level, instance account.Identifier) {
				result, err := invoke(l, instance, player, "authenticate", args{"passkey": "guess"})
				assert.Nil(t, err, "wrong authenticate")
				assert.Equal(t, false, result, "wrong passkey accepted")

				password, err := invoke(l, instance, player, "password", args{})
				assert.Nil(t, err, "wrong password")

				result, err = invoke(l, instance, player, "authenticate", args{"passkey": password})
				assert.Nil(t, err, "wrong authenticate")
				assert.Equal(t, true, result, "right passkey refused")
			},
		},
		{
			file: "coinflip.lua",
			name: "coinflip",
			solve: func(t *testing.T, l *script.Level, instance account.Identifier) {
				_, err := invoke(l, instance, player, "flip", args{"guess": "heads"})
				assert.NotNil(t, err, "non boolean guess accepted")

				// the next block is 1, an odd block gives true
				result, err := invoke(l, instance, player, "flip", args{"guess": false})
				assert.Nil(t, err, "wrong flip")
				assert.Equal(t, false, result, "wrong guess won")

				for i := 0; i < 10; i += 1 {
					block := stateOf(t, l, instance)["block"].(float64)
					guess := 1 == (int(block)+1)%2
					result, err := invoke(l, instance, player, "flip", args{"guess": guess})
					assert.Nil(t, err, "%d: wrong flip", i)
					assert.Equal(t, true, result, "%d: predicted guess lost", i)
				}
			},
		},
		{
			file: "fallback.lua",
			name: "fallback",
			solve: func(t *testing.T, l *script.Level, instance account.Identifier) {
				_, err := invoke(l, instance, player, "withdraw", args{})
				assert.NotNil(t, err, "non owner withdrew")

				_, err = invoke(l, instance, player, "fallback", args{"value": 1})
				assert.NotNil(t, err, "fallback without contribution accepted")

				_, err = invoke(l, instance, player, "contribute", args{"value": 1000000000})
				assert.NotNil(t, err, "large contribution accepted")

				total, err := invoke(l, instance, player, "contribute", args{"value": 1})
				assert.Nil(t, err, "wrong contribute")
				assert.Equal(t, float64(1), total, "wrong contribution")

				_, err = invoke(l, instance, player, "fallback", args{"value": 1})
				assert.Nil(t, err, "wrong fallback")
				assert.Equal(t, player.String(), stateOf(t, l, instance)["owner"], "ownership not taken")

				amount, err := invoke(l, instance, player, "withdraw", args{})
				assert.Nil(t, err, "wrong withdraw")
				assert.Equal(t, float64(101), amount, "wrong amount withdrawn")
			},
		},
		{
			file: "king.lua",
			name: "king",
			solve: func(t *testing.T, l *script.Level, instance account.Identifier) {
				_, err := invoke(l, instance, player, "claim_throne", args{"value": 99})
				assert.NotNil(t, err, "claim below prize accepted")

				_, err = invoke(l, instance, player, "refuse_payment", args{})
				assert.Nil(t, err, "wrong refuse_payment")

				king, err := invoke(l, instance, player, "claim_throne", args{"value": 100})
				assert.Nil(t, err, "wrong claim_throne")
				assert.Equal(t, player.String(), king, "throne not taken")

				_, err = invoke(l, instance, other, "claim_throne", args{"value": 500})
				assert.NotNil(t, err, "refusing king was replaced")
			},
		},
		{
			file: "reentrance.lua",
			name: "reentrance",
			solve: func(t *testing.T, l *script.Level, instance account.Identifier) {
				_, err := invoke(l, instance, player, "donate", args{"value": 25})
				assert.Nil(t, err, "wrong donate")

				_, err = invoke(l, instance, player, "donate", args{"value": 5, "to": 1})
				assert.NotNil(t, err, "numeric recipient accepted")
				balances := stateOf(t, l, instance)["balances"].(map[string]interface{})
				assert.Equal(t, float64(25), balances[player.String()], "balances damaged")

				// a plain withdrawal only returns the donation
				funds, err := invoke(l, instance, player, "withdraw", args{"amount": 25})
				assert.Nil(t, err, "wrong withdraw")
				assert.Equal(t, float64(100), funds, "wrong funds after withdraw")

				_, err = invoke(l, instance, player, "donate", args{"value": 25})
				assert.Nil(t, err, "wrong donate")
				_, err = invoke(l, instance, player, "set_reentry", args{"depth": 4})
				assert.Nil(t, err, "wrong set_reentry")

				funds, err = invoke(l, instance, player, "withdraw", args{"amount": 25})
				assert.Nil(t, err, "wrong reentrant withdraw")
				assert.Equal(t, float64(0), funds, "funds not drained")
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			host := setup(t)
			defer teardown()

			fileName, _ := filepath.Abs(filepath.Join(levelDirectory, test.file))
			l, err := script.New(fixtures.Level1, fileName, host)
			if nil != err {
				t.Fatalf("load %s error: %s", test.file, err)
			}
			assert.Equal(t, test.name, l.Name(), "wrong name")

			instance, err := create(l, player)
			assert.Nil(t, err, "wrong create")

			won, err := l.ValidateInstance(instance, player)
			assert.Nil(t, err, "wrong initial validate")
			assert.False(t, won, "new instance already solved")

			test.solve(t, l, instance)

			won, err = l.ValidateInstance(instance, player)
			assert.Nil(t, err, "wrong validate")
			assert.True(t, won, "solution not accepted")
		})
	}
}
