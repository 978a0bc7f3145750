// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runState(c *cli.Context) error {

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

	reply, err := client.State(instance)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runInvoke(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	instance, err := checkIdentifier(c.String("instance"), ErrRequiredInstance, m.config)
	if nil != err {
		return err
	}

	action := c.String("action")
	if "" == action {
		return ErrRequiredAction
	}

	arguments, err := checkArguments(c.String("arguments"))
	if nil != err {
		return err
	}

	client, err := signingClient(c, m, "invoke "+action)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Invoke(instance, action, arguments)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
