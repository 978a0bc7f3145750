// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/rpc/coordinator"
)

// RegisterLevel - owner registers a level
func (c *Client) RegisterLevel(level account.Identifier) (*coordinator.RegisterReply, error) {
	method := "Coordinator.RegisterLevel"
	request, err := c.sign(method, coordinator.RegisterPayload(level))
	if nil != err {
		return nil, err
	}

	arguments := coordinator.RegisterArguments{
		Request: request,
		Level:   level,
	}
	var reply coordinator.RegisterReply
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SetStatistics - owner selects the statistics ledger
func (c *Client) SetStatistics(stats account.Identifier) (*coordinator.StatisticsReply, error) {
	method := "Coordinator.SetStatistics"
	request, err := c.sign(method, coordinator.StatisticsPayload(stats))
	if nil != err {
		return nil, err
	}

	arguments := coordinator.StatisticsArguments{
		Request:    request,
		Statistics: stats,
	}
	var reply coordinator.StatisticsReply
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CreateInstance - start an attempt at a level
func (c *Client) CreateInstance(level account.Identifier, endowment uint64) (*coordinator.CreateReply, error) {
	method := "Coordinator.CreateInstance"
	request, err := c.sign(method, coordinator.CreatePayload(level, endowment))
	if nil != err {
		return nil, err
	}

	arguments := coordinator.CreateArguments{
		Request:   request,
		Level:     level,
		Endowment: endowment,
	}
	var reply coordinator.CreateReply
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Submit - claim an instance is solved
func (c *Client) Submit(instance account.Identifier) (*coordinator.SubmitReply, error) {
	method := "Coordinator.Submit"
	request, err := c.sign(method, coordinator.SubmitPayload(instance))
	if nil != err {
		return nil, err
	}

	arguments := coordinator.SubmitArguments{
		Request:  request,
		Instance: instance,
	}
	var reply coordinator.SubmitReply
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// IsRegistered - check the level registry
func (c *Client) IsRegistered(level account.Identifier) (*coordinator.IsRegisteredReply, error) {
	arguments := coordinator.IsRegisteredArguments{
		Level: level,
	}
	var reply coordinator.IsRegisteredReply
	if err := c.call("Coordinator.IsRegistered", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Instance - fetch an instance record
func (c *Client) Instance(instance account.Identifier) (*coordinator.InstanceReply, error) {
	arguments := coordinator.InstanceArguments{
		Instance: instance,
	}
	var reply coordinator.InstanceReply
	if err := c.call("Coordinator.Instance", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Owner - coordinator administrator and current ledger
func (c *Client) Owner() (*coordinator.OwnerReply, error) {
	var reply coordinator.OwnerReply
	if err := c.call("Coordinator.Owner", &coordinator.OwnerArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Events - one page of the event log
func (c *Client) Events(start uint64, count int) (*coordinator.EventsReply, error) {
	arguments := coordinator.EventsArguments{
		Start: start,
		Count: count,
	}
	var reply coordinator.EventsReply
	if err := c.call("Coordinator.Events", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
