// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - a gauge of concurrently held resources
package counter

import (
	"sync/atomic"
)

// Counter - number of resources currently held
type Counter uint64

// Acquire - take one resource if fewer than limit are held
//
// returns false, leaving the count unchanged, when the limit is reached
func (c *Counter) Acquire(limit uint64) bool {
	if atomic.AddUint64((*uint64)(c), 1) <= limit {
		return true
	}
	c.Release()
	return false
}

// Release - give back a resource taken by Acquire
func (c *Counter) Release() {
	atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}
