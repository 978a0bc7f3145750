// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/storage"
)

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestReadYourWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	trx := storage.DBTransaction()

	err := trx.Begin()
	assert.Nil(t, err, "wrong Begin")

	p.Put([]byte("key-one"), []byte("data-one"))
	p.PutN([]byte("key-n"), 12345)

	assert.Equal(t, []byte("data-one"), p.Get([]byte("key-one")), "uncommitted value not visible")
	assert.True(t, p.Has([]byte("key-one")), "uncommitted key not found")

	n, found := p.GetN([]byte("key-n"))
	assert.True(t, found, "uncommitted number not found")
	assert.Equal(t, uint64(12345), n, "wrong uncommitted number")

	err = trx.Commit()
	assert.Nil(t, err, "wrong Commit")

	assert.Equal(t, []byte("data-one"), p.Get([]byte("key-one")), "committed value lost")
}

func TestAbortLeavesNoTrace(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	commit(t, func() {
		p.Put([]byte("kept"), []byte("v1"))
	})

	trx := storage.DBTransaction()
	_ = trx.Begin()
	p.Put([]byte("kept"), []byte("v2"))
	p.Put([]byte("discarded"), []byte("v3"))
	trx.Abort()

	assert.Equal(t, []byte("v1"), p.Get([]byte("kept")), "aborted overwrite visible")
	assert.Nil(t, p.Get([]byte("discarded")), "aborted write visible")
	assert.False(t, p.Has([]byte("discarded")), "aborted key found")
}

func TestMissingKeys(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	assert.Nil(t, p.Get([]byte("/nonexistent")), "found missing key")
	n, found := p.GetN([]byte("/nonexistent"))
	assert.False(t, found, "found missing number")
	assert.Equal(t, uint64(0), n, "missing number not zero")
}

func TestPutOutsideTransactionPanics(t *testing.T) {
	setup(t)
	defer teardown(t)

	assert.Panics(t, func() {
		storage.Pool.TestData.Put([]byte("key"), []byte("value"))
	}, "put outside transaction did not panic")
}

func TestCursorPages(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	// include leading zero bytes to check restart after a page
	keys := [][]byte{
		{0x00, 0x00, 0x01},
		{0x00, 0x00, 0x02},
		{0x00, 0x01, 0x00},
		{0x01, 0x00, 0x00},
		{0x02, 0x00, 0x00},
	}
	commit(t, func() {
		for i, k := range keys {
			p.PutN(k, uint64(i))
		}
	})

	cursor := p.NewFetchCursor()
	first, err := cursor.Fetch(2)
	assert.Nil(t, err, "wrong first Fetch")
	second, err := cursor.Fetch(2)
	assert.Nil(t, err, "wrong second Fetch")
	third, err := cursor.Fetch(2)
	assert.Nil(t, err, "wrong third Fetch")

	all := append(append(first, second...), third...)
	assert.Equal(t, len(keys), len(all), "wrong element count")
	for i, e := range all {
		assert.Equal(t, keys[i], e.Key, "%d: wrong key", i)
	}

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count accepted")
}

func TestCursorWithin(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	commit(t, func() {
		p.Put([]byte("aa-1"), []byte{1})
		p.Put([]byte("aa-2"), []byte{2})
		p.Put([]byte("ab-1"), []byte{3})
	})

	elements, err := p.NewFetchCursor().Within([]byte("aa-")).Fetch(10)
	assert.Nil(t, err, "wrong Fetch")
	assert.Equal(t, 2, len(elements), "prefix not applied")

	elements, err = p.NewFetchCursor().Within([]byte("aa-")).Seek([]byte("aa-2")).Fetch(10)
	assert.Nil(t, err, "wrong Fetch")
	assert.Equal(t, 1, len(elements), "seek not applied")
	assert.Equal(t, []byte("aa-2"), elements[0].Key, "wrong key after seek")

	count := 0
	err = p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		return nil
	})
	assert.Nil(t, err, "wrong Map")
	assert.Equal(t, 3, count, "wrong Map count")
}

func TestRunTransaction(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	err := storage.RunTransaction(func() error {
		p.Put([]byte("one"), []byte{1})
		return nil
	})
	assert.Nil(t, err, "wrong RunTransaction")
	assert.Equal(t, []byte{1}, p.Get([]byte("one")), "write not committed")

	err = storage.RunTransaction(func() error {
		p.Put([]byte("two"), []byte{2})
		return fault.InvalidCount
	})
	assert.Equal(t, fault.InvalidCount, err, "error not returned")
	assert.False(t, p.Has([]byte("two")), "failed transaction left a write")
	assert.False(t, storage.DBTransaction().InUse(), "transaction not released")
}

func TestRunTransactionThen(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	calls := 0
	err := storage.RunTransactionThen(func() error {
		p.Put([]byte("one"), []byte{1})
		return nil
	}, func() {
		calls += 1
		assert.False(t, storage.DBTransaction().InUse(), "called before commit")
		assert.Equal(t, []byte{1}, p.Get([]byte("one")), "write not committed")
	})
	assert.Nil(t, err, "wrong RunTransactionThen")
	assert.Equal(t, 1, calls, "committed not called")

	err = storage.RunTransactionThen(func() error {
		return fault.InvalidCount
	}, func() {
		calls += 1
	})
	assert.Equal(t, fault.InvalidCount, err, "error not returned")
	assert.Equal(t, 1, calls, "committed called after abort")
}

func TestViewSeesOnlyCommittedData(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	commit(t, func() {
		p.Put([]byte("key"), []byte("committed"))
	})

	written := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error)
	go func() {
		done <- storage.RunTransaction(func() error {
			p.Put([]byte("key"), []byte("pending"))
			close(written)
			<-release
			return fault.InvalidCount
		})
	}()
	<-written

	seen := make(chan []byte)
	go storage.View(func() {
		seen <- p.Get([]byte("key"))
	})

	select {
	case value := <-seen:
		t.Fatalf("read during open transaction: %q", value)
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	assert.Equal(t, fault.InvalidCount, <-done, "wrong transaction result")
	assert.Equal(t, []byte("committed"), <-seen, "aborted write visible")
}
