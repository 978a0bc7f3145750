// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Levels        *PoolHandle `prefix:"L"`
	Instances     *PoolHandle `prefix:"I"`
	Settings      *PoolHandle `prefix:"S"`
	Events        *PoolHandle `prefix:"E"`
	EventCount    *PoolHandle `prefix:"e"`
	Deployments   *PoolHandle `prefix:"D"`
	StatLevels    *PoolHandle `prefix:"l"`
	StatTotals    *PoolHandle `prefix:"t"`
	StatSuccess   *PoolHandle `prefix:"s"`
	StatFailure   *PoolHandle `prefix:"f"`
	StatNextCount *PoolHandle `prefix:"n"`
	StatInstances *PoolHandle `prefix:"i"`
	TestData      *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
	versionLength    = 4
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	db     *leveldb.DB
	access Access

	// held exclusively for a whole transaction and shared by View
	writer sync.RWMutex
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open the database and bind every pool
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return err
	}
	poolData.db = db

	err = checkVersion(database, version, readOnly)
	if nil == err {
		poolData.access = newDA(db, new(leveldb.Batch), newCache())
		err = bindPools(poolData.access)
	}
	if nil != err {
		dbClose()
	}
	return err
}

// refuse a downgrade, and tag a new database
func checkVersion(database string, version int, readOnly bool) error {
	switch {
	case version > currentDBVersion:
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	case 0 != version:
		return nil
	case readOnly:
		return fmt.Errorf("database: %q is empty", database)
	default:
		return putVersion(poolData.db, currentDBVersion)
	}
}

// give each field of Pool a handle using the one byte prefix tag
func bindPools(access Access) error {
	poolValue := reflect.ValueOf(&Pool).Elem()
	poolType := poolValue.Type()

	for i := 0; i < poolType.NumField(); i += 1 {
		field := poolType.Field(i)

		tag := field.Tag.Get("prefix")
		if 1 != len(tag) {
			return fmt.Errorf("pool: %s has invalid prefix: %q", field.Name, tag)
		}

		p := &PoolHandle{
			prefix:     tag[0],
			dataAccess: access,
		}
		if tag[0] < 0xff {
			p.limit = []byte{tag[0] + 1}
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

func dbClose() {
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
	poolData.access = nil
	Pool = pools{}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// DBTransaction - the transaction shared by all pools
func DBTransaction() Transaction {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.access {
		logger.Panic("storage not initialised")
	}
	return poolData.access
}

// RunTransaction - run f inside the shared transaction
//
// writers are serialised; f returning an error aborts every write it
// made, otherwise the batch is committed
func RunTransaction(f func() error) error {
	return RunTransactionThen(f, nil)
}

// RunTransactionThen - RunTransaction that calls committed after a
// successful commit and before the next transaction can begin
func RunTransactionThen(f func() error, committed func()) error {
	poolData.writer.Lock()
	defer poolData.writer.Unlock()

	trx := DBTransaction()
	err := trx.Begin()
	if nil != err {
		return err
	}

	err = f()
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}
	if nil != committed {
		committed()
	}
	return nil
}

// View - run f while no transaction is open
//
// reads made by f see only committed data; f must not start a
// transaction
func View(f func()) {
	poolData.writer.RLock()
	defer poolData.writer.RUnlock()
	f()
}

// open the database and read its version, 0 if untagged
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	db, err := leveldb.OpenFile(name, &ldb_opt.Options{
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	})
	if nil != err {
		return nil, 0, err
	}

	version, err := readVersion(db)
	if nil != err {
		db.Close()
		return nil, 0, err
	}
	return db, version, nil
}

func readVersion(db *leveldb.DB) (int, error) {
	value, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	}
	if nil != err {
		return 0, err
	}
	if versionLength != len(value) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", versionLength, len(value))
	}
	return int(binary.BigEndian.Uint32(value)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	value := make([]byte, versionLength)
	binary.BigEndian.PutUint32(value, uint32(version))
	return db.Put(versionKey, value, nil)
}
