// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - assemble the RPC services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/challenged/account"
	core "github.com/bitmark-inc/challenged/coordinator"
	"github.com/bitmark-inc/challenged/counter"
	"github.com/bitmark-inc/challenged/level/script"
	"github.com/bitmark-inc/challenged/rpc/coordinator"
	"github.com/bitmark-inc/challenged/rpc/instance"
	"github.com/bitmark-inc/challenged/rpc/node"
	"github.com/bitmark-inc/challenged/rpc/statistics"
	ledger "github.com/bitmark-inc/challenged/statistics"
	"github.com/bitmark-inc/challenged/storage"
	"github.com/bitmark-inc/logger"
)

// Services - the running components exposed over RPC
type Services struct {
	Coordinator *core.Coordinator
	Ledgers     map[account.Identifier]*ledger.Ledger
	Scripts     *script.Set
	PublicKey   func() []byte
}

// Create - register every service on a new RPC server
func Create(log *logger.L, version string, rpcCount *counter.Counter, services *Services) *rpc.Server {

	start := time.Now().UTC()

	ledgers := func(id account.Identifier) (statistics.Ledger, bool) {
		l, ok := services.Ledgers[id]
		if !ok {
			return nil, false
		}
		return l, true
	}

	scripts := func(id account.Identifier) (instance.Scripted, bool) {
		l, ok := services.Scripts.Get(id)
		if !ok {
			return nil, false
		}
		return l, true
	}

	levels := func() []node.LevelInfo {
		all := services.Scripts.Levels()
		info := make([]node.LevelInfo, len(all))
		for i, l := range all {
			info[i] = node.LevelInfo{
				Identifier:  l.Identifier(),
				Name:        l.Name(),
				Description: l.Description(),
				Registered:  services.Coordinator.IsLevelRegistered(l.Identifier()),
			}
		}
		return info
	}

	publicKey := services.PublicKey
	if nil == publicKey {
		publicKey = func() []byte { return nil }
	}

	server := rpc.NewServer()

	_ = server.Register(coordinator.New(log, services.Coordinator))
	_ = server.Register(statistics.New(log, services.Coordinator.GetStatistics, ledgers))
	_ = server.Register(instance.New(log, services.Coordinator, scripts, storage.RunTransaction))
	_ = server.Register(node.New(log, start, version, rpcCount, services.Coordinator, publicKey, levels))

	return server
}
