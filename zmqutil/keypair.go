// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/util"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
	publicLength  = 32
	privateLength = 32
)

// MakeKeyPair - create a new CURVE keypair and write each half to
// its own file as tagged hex
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.FileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	publicKey, privateKey, err := NewKeyPair()
	if nil != err {
		return err
	}

	err = util.WriteNewFile(publicKeyFileName, []byte(taggedPublic+hex.EncodeToString(publicKey)+"\n"), 0666)
	if os.IsExist(err) {
		return fault.KeyFileAlreadyExists
	} else if nil != err {
		return err
	}

	err = util.WriteNewFile(privateKeyFileName, []byte(taggedPrivate+hex.EncodeToString(privateKey)+"\n"), 0600)
	if nil != err {
		os.Remove(publicKeyFileName)
		if os.IsExist(err) {
			return fault.KeyFileAlreadyExists
		}
		return err
	}

	return nil
}

// NewKeyPair - create an in-memory public/private keypair
func NewKeyPair() ([]byte, []byte, error) {
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return nil, nil, err
	}
	return []byte(zmq.Z85decode(publicKey)), []byte(zmq.Z85decode(privateKey)), nil
}

// ReadPublicKeyFile - read a public key file
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, false)
}

// ReadPrivateKeyFile - read a private key file
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, true)
}

// ReadPublicKey - decode a tagged public key
func ReadPublicKey(key string) ([]byte, error) {
	return readKey(key, false)
}

// ReadPrivateKey - decode a tagged private key
func ReadPrivateKey(key string) ([]byte, error) {
	return readKey(key, true)
}

func readKeyFile(fileName string, private bool) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return readKey(string(data), private)
}

// decode and check the key is the expected half
func readKey(key string, private bool) ([]byte, error) {
	data, isPrivate, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if private != isPrivate {
		return nil, keyError(private)
	}
	return data, nil
}

func keyError(private bool) error {
	if private {
		return fault.InvalidPrivateKeyFile
	}
	return fault.InvalidPublicKeyFile
}

// ParseKey - decode either kind of tagged key
//
// second result is true for a private key
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	private := strings.HasPrefix(s, taggedPrivate)
	tag, length := taggedPublic, publicLength
	if private {
		tag, length = taggedPrivate, privateLength
	} else if !strings.HasPrefix(s, taggedPublic) {
		return nil, false, fault.InvalidPublicKeyFile
	}

	h, err := hex.DecodeString(s[len(tag):])
	if nil != err || length != len(h) {
		return nil, false, keyError(private)
	}
	return h, private, nil
}
