// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/challenged/util"
)

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/data/db", util.ResolvePath("/data", "db"), "relative not joined")
	assert.Equal(t, "/data/x/db", util.ResolvePath("/data", "x/./db"), "relative not cleaned")
	assert.Equal(t, "/etc/key", util.ResolvePath("/data", "/etc//key"), "absolute changed")
}

func TestWriteNewFile(t *testing.T) {
	const name = "test-new-file"
	os.Remove(name)
	defer os.Remove(name)

	assert.False(t, util.FileExists(name), "file exists before write")

	err := util.WriteNewFile(name, []byte("one"), 0600)
	assert.Nil(t, err, "wrong first write")
	assert.True(t, util.FileExists(name), "file missing after write")

	err = util.WriteNewFile(name, []byte("two"), 0600)
	assert.True(t, os.IsExist(err), "existing file overwritten")

	data, err := ioutil.ReadFile(name)
	assert.Nil(t, err, "wrong read")
	assert.Equal(t, []byte("one"), data, "content replaced")
}
