// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/challenged/command/challenge-cli/rpccalls"
)

// connect with the selected identity able to sign
func signingClient(c *cli.Context, m *metadata, title string) (*rpccalls.Client, error) {
	name, err := checkName(c.GlobalString("identity"), m.config)
	if nil != err {
		return nil, err
	}

	private, err := promptAndDecrypt(m, name, title)
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s  identifier: %s\n", name, private.Identifier)
	}

	return rpccalls.NewClient(m.config.Connect, private.PrivateKey, m.verbose, m.e)
}

// connect for read only calls
func queryClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.config.Connect, nil, m.verbose, m.e)
}

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	level, err := checkIdentifier(c.String("level"), ErrRequiredLevel, m.config)
	if nil != err {
		return err
	}

	client, err := signingClient(c, m, "register level")
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.RegisterLevel(level)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runSetStatistics(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	stats, err := checkIdentifier(c.String("statistics"), ErrRequiredStatistics, m.config)
	if nil != err {
		return err
	}

	client, err := signingClient(c, m, "set statistics ledger")
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.SetStatistics(stats)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	level, err := checkIdentifier(c.String("level"), ErrRequiredLevel, m.config)
	if nil != err {
		return err
	}

	client, err := signingClient(c, m, "create instance")
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateInstance(level, c.Uint64("endowment"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runSubmit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	instance, err := checkIdentifier(c.String("instance"), ErrRequiredInstance, m.config)
	if nil != err {
		return err
	}

	client, err := signingClient(c, m, "submit instance")
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Submit(instance)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runRegistered(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	level, err := checkIdentifier(c.String("level"), ErrRequiredLevel, m.config)
	if nil != err {
		return err
	}

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.IsRegistered(level)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runInstance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	instance, err := checkIdentifier(c.String("instance"), ErrRequiredInstance, m.config)
	if nil != err {
		return err
	}

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Instance(instance)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runOwner(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Owner()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runEvents(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Events(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runNodeInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := queryClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
