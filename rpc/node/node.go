// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/counter"
	"github.com/bitmark-inc/challenged/rpc/ratelimit"
	"github.com/bitmark-inc/challenged/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Owners - who runs this node
type Owners interface {
	GetOwner() account.Identifier
	Identity() account.Identifier
	GetStatistics() (account.Identifier, bool)
}

// LevelInfo - a level served by this node
type LevelInfo struct {
	Identifier  account.Identifier `json:"identifier"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Registered  bool               `json:"registered"`
}

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	owners    Owners
	counter   *counter.Counter
	publicKey func() []byte
	levels    func() []LevelInfo
}

// New - create the RPC service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, owners Owners, publicKey func() []byte, levels func() []LevelInfo) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		owners:    owners,
		counter:   counter,
		publicKey: publicKey,
		levels:    levels,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version    string              `json:"version"`
	Uptime     string              `json:"uptime"`
	RPCs       uint64              `json:"rpcs"`
	Owner      account.Identifier  `json:"owner"`
	Identity   account.Identifier  `json:"identity"`
	Statistics *account.Identifier `json:"statistics,omitempty"`
	PublicKey  string              `json:"publicKey"`
	Levels     []LevelInfo         `json:"levels"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Owner = node.owners.GetOwner()
	reply.Identity = node.owners.Identity()
	storage.View(func() {
		if stats, ok := node.owners.GetStatistics(); ok {
			reply.Statistics = &stats
		}
	})
	reply.PublicKey = hex.EncodeToString(node.publicKey())
	reply.Levels = node.levels()
	return nil
}
