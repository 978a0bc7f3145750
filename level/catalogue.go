// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package level

import (
	"bytes"
	"sort"
	"sync"

	"github.com/bitmark-inc/challenged/account"
)

// Catalogue - an in-memory Directory that can be changed while in use
type Catalogue struct {
	sync.RWMutex
	levels map[account.Identifier]Level
}

// NewCatalogue - create an empty catalogue
func NewCatalogue() *Catalogue {
	return &Catalogue{
		levels: make(map[account.Identifier]Level),
	}
}

// Set - add or replace the implementation of a level
func (c *Catalogue) Set(id account.Identifier, l Level) {
	c.Lock()
	c.levels[id] = l
	c.Unlock()
}

// Remove - forget a level implementation
func (c *Catalogue) Remove(id account.Identifier) {
	c.Lock()
	delete(c.levels, id)
	c.Unlock()
}

// Get - fetch the implementation of a level
func (c *Catalogue) Get(id account.Identifier) (Level, bool) {
	c.RLock()
	defer c.RUnlock()
	l, ok := c.levels[id]
	return l, ok
}

// Identifiers - all known levels in byte order
func (c *Catalogue) Identifiers() []account.Identifier {
	c.RLock()
	ids := make([]account.Identifier, 0, len(c.levels))
	for id := range c.levels {
		ids = append(ids, id)
	}
	c.RUnlock()

	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}
