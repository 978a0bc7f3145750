// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/rpc/instance"
)

// State - read the state of a scripted instance
func (c *Client) State(id account.Identifier) (*instance.StateReply, error) {
	arguments := instance.StateArguments{
		Instance: id,
	}
	var reply instance.StateReply
	if err := c.call("Instance.State", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Invoke - run an action on a scripted instance
//
// actionArguments is JSON text and is signed as given
func (c *Client) Invoke(id account.Identifier, action string, actionArguments string) (*instance.InvokeReply, error) {
	method := "Instance.Invoke"
	request, err := c.sign(method, instance.InvokePayload(id, action, actionArguments))
	if nil != err {
		return nil, err
	}

	arguments := instance.InvokeArguments{
		Request:   request,
		Instance:  id,
		Action:    action,
		Arguments: actionArguments,
	}
	var reply instance.InvokeReply
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
