// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/configuration"
	"github.com/bitmark-inc/challenged/level/script"
	"github.com/bitmark-inc/challenged/publish"
	"github.com/bitmark-inc/challenged/rpc/listeners"
	"github.com/bitmark-inc/challenged/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublisherPublicKeyFile  = "publisher.public"
	defaultPublisherPrivateKeyFile = "publisher.private"
	defaultKeyFile                 = "rpc.key"
	defaultCertificateFile         = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "challenged.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "challenged.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// LedgerType - a statistics ledger hosted by this node
//
// owner defaults to the coordinator identity
type LedgerType struct {
	Identifier string `gluamapper:"identifier" json:"identifier"`
	Owner      string `gluamapper:"owner" json:"owner"`
}

// Configuration - the contents of the configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Owner      string                 `gluamapper:"owner" json:"owner"`
	Identity   string                 `gluamapper:"identity" json:"identity"`
	Ledgers    []LedgerType           `gluamapper:"ledgers" json:"ledgers"`
	Statistics string                 `gluamapper:"statistics" json:"statistics"`
	Levels     []script.Configuration `gluamapper:"levels" json:"levels"`

	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// identifiers decoded from the configuration
type identities struct {
	owner      account.Identifier
	identity   account.Identifier
	statistics *account.Identifier
	ledgers    map[account.Identifier]account.Identifier // ledger → owner
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, args ...string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublisherPublicKeyFile,
			PrivateKey: defaultPublisherPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, args...); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for i := range options.Levels {
		mustBeAbsolute = append(mustBeAbsolute, &options.Levels[i].Script)
	}
	for _, f := range mustBeAbsolute {
		*f = util.ResolvePath(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.ResolvePath(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.ResolvePath(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.ResolvePath(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// check that every identifier can be decoded
	if _, err := options.identities(); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// decode all identifiers
func (c *Configuration) identities() (*identities, error) {
	owner, err := account.ParseIdentifier(c.Owner)
	if nil != err {
		return nil, fmt.Errorf("owner: %q  error: %s", c.Owner, err)
	}
	identity, err := account.ParseIdentifier(c.Identity)
	if nil != err {
		return nil, fmt.Errorf("identity: %q  error: %s", c.Identity, err)
	}

	ids := &identities{
		owner:    owner,
		identity: identity,
		ledgers:  make(map[account.Identifier]account.Identifier),
	}

	for _, l := range c.Ledgers {
		id, err := account.ParseIdentifier(l.Identifier)
		if nil != err {
			return nil, fmt.Errorf("ledger: %q  error: %s", l.Identifier, err)
		}
		ledgerOwner := identity
		if "" != l.Owner {
			ledgerOwner, err = account.ParseIdentifier(l.Owner)
			if nil != err {
				return nil, fmt.Errorf("ledger owner: %q  error: %s", l.Owner, err)
			}
		}
		ids.ledgers[id] = ledgerOwner
	}

	if "" != c.Statistics {
		stats, err := account.ParseIdentifier(c.Statistics)
		if nil != err {
			return nil, fmt.Errorf("statistics: %q  error: %s", c.Statistics, err)
		}
		ids.statistics = &stats
	}

	for _, l := range c.Levels {
		if _, err := account.ParseIdentifier(l.Identifier); nil != err {
			return nil, fmt.Errorf("level: %q  error: %s", l.Identifier, err)
		}
	}

	return ids, nil
}
