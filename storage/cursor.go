// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/challenged/fault"
)

// FetchCursor - a resumable scan over part of a pool
type FetchCursor struct {
	pool     *PoolHandle
	keyRange util.Range
}

// NewFetchCursor - cursor covering the whole pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		keyRange: util.Range{
			Start: []byte{p.prefix},
			Limit: p.limit,
		},
	}
}

// Seek - start at key, or the first key after it
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.keyRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Within - only keys beginning with prefix
//
// call before Seek, as this resets the start of the range
func (cursor *FetchCursor) Within(prefix []byte) *FetchCursor {
	cursor.keyRange = *util.BytesPrefix(cursor.pool.prefixKey(prefix))
	return cursor
}

// Fetch - up to count elements, the next call continues after the last
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.each(func(e Element) bool {
		results = append(results, e)
		return len(results) < count
	})

	if n := len(results); n > 0 {
		// smallest key greater than the last one returned
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.keyRange.Start = append(next, 0x00)
	}
	return results, err
}

// Map - call f for every element in the range, stopping at the first error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	var err error
	iterErr := cursor.each(func(e Element) bool {
		err = f(e.Key, e.Value)
		return nil == err
	})
	if nil != err {
		return err
	}
	return iterErr
}

// visit copies of the elements until f returns false
func (cursor *FetchCursor) each(f func(Element) bool) error {
	if nil == cursor.pool.dataAccess {
		return nil
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.keyRange)
	defer iter.Release()

	for iter.Next() {
		// iterator slices are reused by Next
		key := iter.Key()
		e := Element{
			Key:   append([]byte(nil), key[1:]...),
			Value: append([]byte(nil), iter.Value()...),
		}
		if !f(e) {
			break
		}
	}
	return iter.Error()
}
