// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token bucket throttling of RPC calls
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/challenged/fault"
)

// Limit - wait for a single token
func Limit(limiter *rate.Limiter) error {
	return wait(limiter, 1)
}

// LimitN - wait for one token per requested item
//
// a count outside 1..maximumCount is charged one token and rejected
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count > 0 && count <= maximumCount {
		return wait(limiter, count)
	}
	if err := wait(limiter, 1); nil != err {
		return err
	}
	return fault.InvalidCount
}

// a reservation larger than the burst can never be met
func wait(limiter *rate.Limiter, n int) error {
	reservation := limiter.ReserveN(time.Now(), n)
	if !reservation.OK() {
		return fault.RateLimiting
	}
	if d := reservation.Delay(); d > 0 {
		time.Sleep(d)
	}
	return nil
}
