// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - challenge-cli configuration file with
// password protected identities
package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Connect         string              `json:"connect"`
	Subscribe       string              `json:"subscribe,omitempty"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string             `json:"description"`
	Identifier  account.Identifier `json:"identifier"`
	Data        string             `json:"data"`
	Salt        string             `json:"salt"`
}

// InfoIdentity - an identity without the private items
type InfoIdentity struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Identifier  account.Identifier `json:"identifier"`
}

// Info - restricted view of configuration
type Info struct {
	DefaultIdentity string         `json:"default_identity"`
	Connect         string         `json:"connect"`
	Subscribe       string         `json:"subscribe,omitempty"`
	Identities      []InfoIdentity `json:"identities"`
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	options := &Configuration{}

	err := readConfiguration(filename, options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// generic JSON decoder
func readConfiguration(filename string, options interface{}) error {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return err
	}

	f, err := os.Open(filename)
	if nil != err {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	return dec.Decode(options)
}

// Info - identities sorted by name without the encrypted data
func (config *Configuration) Info() *Info {
	info := &Info{
		DefaultIdentity: config.DefaultIdentity,
		Connect:         config.Connect,
		Subscribe:       config.Subscribe,
		Identities:      make([]InfoIdentity, 0, len(config.Identities)),
	}
	for name, id := range config.Identities {
		info.Identities = append(info.Identities, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Identifier:  id.Identifier,
		})
	}
	sort.Slice(info.Identities, func(i, j int) bool {
		return info.Identities[i].Name < info.Identities[j].Name
	})
	return info
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.IdentityNameNotFound
	}

	return &id, nil
}

// Identifier - resolve a name to an identifier
//
// anything that is not a known identity name is parsed as an identifier
func (config *Configuration) Identifier(nameOrIdentifier string) (account.Identifier, error) {
	if id, ok := config.Identities[nameOrIdentifier]; ok {
		return id.Identifier, nil
	}
	return account.ParseIdentifier(nameOrIdentifier)
}

// Private - find identity and decrypt all data for a given name
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
func (config *Configuration) AddIdentity(name string, description string, seed string, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	privateKey, err := privateKeyFromSeed(seed)
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(seed, secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Identifier:  identifierOf(privateKey),
		Data:        encrypted,
		Salt:        salt.String(),
	}

	return nil
}

// ChangePassword - re-encrypt an identity under a new password
func (config *Configuration) ChangePassword(name string, oldPassword string, newPassword string) error {
	private, err := config.Private(oldPassword, name)
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(newPassword)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(private.Seed, secretKey)
	if nil != err {
		return err
	}

	id := config.Identities[name]
	id.Data = encrypted
	id.Salt = salt.String()
	config.Identities[name] = id

	return nil
}
