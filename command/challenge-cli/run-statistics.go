// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runLevelStatistics(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ledger, err := checkOptionalIdentifier(c.String("ledger"), m.config)
	if nil != err {
		return err
	}

	level, err := checkIdentifier(c.String("level"), ErrRequiredLevel, m.config)
	if nil != err {
		return err
	}

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.LevelStatistics(ledger, level)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runPlayerStatistics(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ledger, err := checkOptionalIdentifier(c.String("ledger"), m.config)
	if nil != err {
		return err
	}

	level, err := checkIdentifier(c.String("level"), ErrRequiredLevel, m.config)
	if nil != err {
		return err
	}

	// player defaults to the current identity
	p := c.String("player")
	if "" == p {
		p, err = checkName(c.GlobalString("identity"), m.config)
		if nil != err {
			return err
		}
	}
	player, err := m.config.Identifier(p)
	if nil != err {
		return err
	}

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.PlayerStatistics(ledger, player, level, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
