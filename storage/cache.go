// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - values written by the open transaction, keyed by the
// prefixed database key, so reads see them before Commit
type Cache interface {
	Get(string) ([]byte, bool)
	Set(string, []byte)
	Clear()
}

// Abort and a failed Commit Clear the entries; after a successful
// Commit they match the database and are left to expire
const (
	pendingLifetime = 2 * time.Minute
	purgeInterval   = time.Minute
)

type pendingWrites struct {
	*cache.Cache
}

func newCache() Cache {
	return pendingWrites{cache.New(pendingLifetime, purgeInterval)}
}

func (w pendingWrites) Get(key string) ([]byte, bool) {
	if v, ok := w.Cache.Get(key); ok {
		return v.([]byte), true
	}
	return nil, false
}

func (w pendingWrites) Set(key string, value []byte) {
	w.Cache.Set(key, value, cache.DefaultExpiration)
}

func (w pendingWrites) Clear() {
	w.Flush()
}
