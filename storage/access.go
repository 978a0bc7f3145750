// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/challenged/fault"
)

// Transaction - groups writes so they reach the database together
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
}

// Access - the database operations a pool needs
type Access interface {
	Transaction
	DumpTx() []byte
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - one pending batch over a LevelDB handle
type AccessData struct {
	sync.Mutex
	inUse   bool
	db      *leveldb.DB
	batch   *leveldb.Batch
	pending Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, pending Cache) Access {
	return &AccessData{
		db:      db,
		batch:   batch,
		pending: pending,
	}
}

// Begin - open the batch, only one may be open at a time
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionAlreadyStarted
	}
	d.inUse = true
	return nil
}

// Put - queue a write and make it visible to Get and Has
func (d *AccessData) Put(key []byte, value []byte) {
	d.pending.Set(string(key), value)
	d.batch.Put(key, value)
}

// Commit - write the batch atomically and close it
//
// on success the cached values match the database and are kept
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotStarted
	}

	err := d.db.Write(d.batch, nil)
	d.release(nil != err)
	return err
}

// Abort - drop every write queued since Begin
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()
	d.release(true)
}

// must hold lock
func (d *AccessData) release(discard bool) {
	d.batch.Reset()
	if discard {
		d.pending.Clear()
	}
	d.inUse = false
}

// InUse - whether a batch is open
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// DumpTx - raw contents of the open batch
func (d *AccessData) DumpTx() []byte {
	return d.batch.Dump()
}

// Get - a queued value, or else the stored one
func (d *AccessData) Get(key []byte) ([]byte, error) {
	if value, ok := d.pending.Get(string(key)); ok {
		return value, nil
	}
	return d.db.Get(key, nil)
}

// Has - true for queued as well as stored keys
func (d *AccessData) Has(key []byte) (bool, error) {
	if _, ok := d.pending.Get(string(key)); ok {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// Iterator - committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
