// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/challenged/counter"
)

func TestAcquireRelease(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.Acquire(2), "first acquire refused")
	assert.True(t, c.Acquire(2), "second acquire refused")
	assert.False(t, c.Acquire(2), "acquire beyond limit")
	assert.Equal(t, uint64(2), c.Uint64(), "refused acquire changed count")

	c.Release()
	assert.Equal(t, uint64(1), c.Uint64(), "wrong count after release")
	assert.True(t, c.Acquire(2), "acquire after release refused")
}

func TestConcurrentAcquire(t *testing.T) {
	var c counter.Counter
	const limit = 10

	var wg sync.WaitGroup
	granted := make(chan bool, 100)
	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			granted <- c.Acquire(limit)
		}()
	}
	wg.Wait()
	close(granted)

	n := 0
	for ok := range granted {
		if ok {
			n += 1
		}
	}
	assert.Equal(t, limit, n, "wrong number granted")
	assert.Equal(t, uint64(limit), c.Uint64(), "wrong final count")
}
