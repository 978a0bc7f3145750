// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// ResolvePath - name relative to directory unless already absolute
func ResolvePath(directory string, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(directory, name)
}

// FileExists - true if anything exists at name
func FileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// WriteNewFile - write data to a file that must not already exist
//
// the existing file check and the create are one operation; use
// os.IsExist on the error to detect a collision
func WriteNewFile(name string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if nil != err {
		return err
	}

	_, err = f.Write(data)
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		os.Remove(name)
	}
	return err
}
