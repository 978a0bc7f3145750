// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package level

import (
	"github.com/bitmark-inc/challenged/account"
)

// Level - the two operations of a challenge
type Level interface {
	// allocate a new instance scoped to player, the endowment is
	// recorded verbatim on the instance
	CreateInstance(player account.Identifier, endowment uint64) (account.Identifier, error)

	// report whether the instance meets the win condition
	// must not change any instance state
	ValidateInstance(instance account.Identifier, player account.Identifier) (bool, error)
}

// Directory - resolve a level identifier to its implementation
type Directory interface {
	Get(account.Identifier) (Level, bool)
}

// Deployment - an allocated instance as the host sees it
type Deployment struct {
	Level     account.Identifier
	Player    account.Identifier
	Endowment uint64
	State     []byte
}

// Deployer - host facility that allocates and stores instances
type Deployer interface {
	Deploy(level account.Identifier, player account.Identifier, salt []byte, endowment uint64, state []byte) (account.Identifier, error)
	Get(instance account.Identifier) (*Deployment, error)
	SetState(instance account.Identifier, state []byte) error
}
