// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/rpc/statistics"
)

// LevelStatistics - registration and total for a level
//
// a nil ledger selects the coordinator's current ledger
func (c *Client) LevelStatistics(ledger *account.Identifier, level account.Identifier) (*statistics.LevelReply, error) {
	arguments := statistics.LevelArguments{
		Ledger: ledger,
		Level:  level,
	}
	var reply statistics.LevelReply
	if err := c.call("Statistics.Level", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// PlayerStatistics - a player's record on one level
func (c *Client) PlayerStatistics(ledger *account.Identifier, player account.Identifier, level account.Identifier, start uint64, count int) (*statistics.PlayerReply, error) {
	arguments := statistics.PlayerArguments{
		Ledger: ledger,
		Player: player,
		Level:  level,
		Start:  start,
		Count:  count,
	}
	var reply statistics.PlayerReply
	if err := c.call("Statistics.Player", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
