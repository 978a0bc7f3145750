// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - forward committed coordinator events to ZeroMQ
// subscribers
package publish

import (
	"sync"

	"github.com/bitmark-inc/challenged/background"
	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/zmqutil"
	"github.com/bitmark-inc/logger"
)

// Configuration - the publishing block of the daemon configuration
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

var publisher struct {
	sync.RWMutex

	log        *logger.L
	brdc       broadcaster
	publicKey  []byte
	background *background.T
}

// Initialise - bind the publisher sockets and start forwarding events
func Initialise(configuration *Configuration) error {
	publisher.Lock()
	defer publisher.Unlock()

	if nil != publisher.background {
		return fault.AlreadyInitialised
	}

	log := logger.New("publish")
	publisher.log = log

	privateKey, publicKey, err := loadKeys(log, configuration)
	if nil != err {
		return err
	}

	err = publisher.brdc.initialise(privateKey, publicKey, configuration.Broadcast)
	if nil != err {
		return err
	}

	publisher.publicKey = publicKey
	publisher.background = background.Start(background.Processes{&publisher.brdc}, nil)

	log.Infof("publishing on: %q", configuration.Broadcast)
	return nil
}

func loadKeys(log *logger.L, configuration *Configuration) ([]byte, []byte, error) {
	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("private key: %q  error: %s", configuration.PrivateKey, err)
		return nil, nil, err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		log.Errorf("public key: %q  error: %s", configuration.PublicKey, err)
		return nil, nil, err
	}
	log.Tracef("public key: %x", publicKey)
	return privateKey, publicKey, nil
}

// PublicKey - the publisher's CURVE public key, nil before Initialise
func PublicKey() []byte {
	publisher.RLock()
	defer publisher.RUnlock()
	return publisher.publicKey
}

// Finalise - stop forwarding and close the sockets
func Finalise() error {
	publisher.Lock()
	defer publisher.Unlock()

	if nil == publisher.background {
		return fault.NotInitialised
	}

	publisher.background.Stop()
	publisher.background = nil
	publisher.publicKey = nil

	publisher.log.Info("stopped")
	publisher.log.Flush()
	return nil
}
