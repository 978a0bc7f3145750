// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/storage/mocks"
)

const (
	dbName     = "data-access"
	defaultKey = "key"
)

var (
	defaultValue = []byte{'a'}
)

func openTestDB(t *testing.T) *leveldb.DB {
	removeDir(dbName)
	db, err := leveldb.OpenFile(dbName, nil)
	if nil != err {
		t.Fatalf("open database error: %s", err)
	}
	return db
}

func removeDir(dirName string) {
	dirPath, _ := filepath.Abs(dirName)
	_ = os.RemoveAll(dirPath)
}

func teardownTestDataAccess(db *leveldb.DB) {
	_ = db.Close()
	removeDir(dbName)
}

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestDB(t)
	defer teardownTestDataAccess(db)

	da := newDA(db, new(leveldb.Batch), mocks.NewMockCache(ctl))

	err := da.Begin()
	assert.Nil(t, err, "first time Begin should not error")

	err = da.Begin()
	assert.Equal(t, fault.TransactionAlreadyStarted, err, "second time Begin should return error")
}

func TestCommitReleasesTransaction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestDB(t)
	defer teardownTestDataAccess(db)

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(defaultKey, defaultValue).Times(1)

	da := newDA(db, new(leveldb.Batch), mc)

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	err := da.Commit()
	assert.Nil(t, err, "wrong Commit")
	assert.False(t, da.InUse(), "Commit did not release transaction")
	assert.Equal(t, 0, len(da.DumpTx()), "Commit did not reset batch")

	err = da.Begin()
	assert.Nil(t, err, "Begin after Commit should not error")
}

func TestCommitWithoutBegin(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestDB(t)
	defer teardownTestDataAccess(db)

	da := newDA(db, new(leveldb.Batch), mocks.NewMockCache(ctl))

	err := da.Commit()
	assert.Equal(t, fault.TransactionNotStarted, err, "Commit without Begin")
}

func TestCommitWriteToDB(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestDB(t)
	defer teardownTestDataAccess(db)

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(defaultKey, defaultValue).Times(1)
	mc.EXPECT().Get(defaultKey).Return(nil, false).Times(1)

	da := newDA(db, new(leveldb.Batch), mc)

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	_ = da.Commit()

	actual, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, defaultValue, actual, "commit not write to db")
}

func TestAbortDiscardsWrites(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestDB(t)
	defer teardownTestDataAccess(db)

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(defaultKey, defaultValue).Times(1)
	mc.EXPECT().Clear().Times(1)
	mc.EXPECT().Get(defaultKey).Return(nil, false).Times(1)

	da := newDA(db, new(leveldb.Batch), mc)

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	da.Abort()

	assert.False(t, da.InUse(), "Abort did not release transaction")
	_, err := da.Get([]byte(defaultKey))
	assert.Equal(t, leveldb.ErrNotFound, err, "aborted write reached db")
}

func TestGetActionReadsFromCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestDB(t)
	defer teardownTestDataAccess(db)

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(defaultKey, defaultValue).Times(1)
	mc.EXPECT().Get(defaultKey).Return(defaultValue, true).Times(1)

	da := newDA(db, new(leveldb.Batch), mc)

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	actual, _ := da.Get([]byte(defaultKey))

	assert.Equal(t, defaultValue, actual, "wrong cached value")
}

func TestHasActionReadsFromCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := openTestDB(t)
	defer teardownTestDataAccess(db)

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Get("cached").Return([]byte{1}, true).Times(1)
	mc.EXPECT().Get("missing").Return(nil, false).Times(1)

	da := newDA(db, new(leveldb.Batch), mc)

	found, err := da.Has([]byte("cached"))
	assert.Nil(t, err, "wrong Has")
	assert.True(t, found, "cached key not found")

	found, err = da.Has([]byte("missing"))
	assert.Nil(t, err, "wrong Has")
	assert.False(t, found, "missing key found")
}
