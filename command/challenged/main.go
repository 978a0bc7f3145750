// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/background"
	"github.com/bitmark-inc/challenged/coordinator"
	"github.com/bitmark-inc/challenged/deployment"
	"github.com/bitmark-inc/challenged/level"
	"github.com/bitmark-inc/challenged/level/script"
	"github.com/bitmark-inc/challenged/publish"
	"github.com/bitmark-inc/challenged/rpc"
	"github.com/bitmark-inc/challenged/rpc/server"
	"github.com/bitmark-inc/challenged/statistics"
	"github.com/bitmark-inc/challenged/storage"
	"github.com/bitmark-inc/challenged/zmqutil"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	ids, err := theConfiguration.identities()
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Infof("owner: %v", ids.owner)
	log.Infof("identity: %v", ids.identity)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// levels
	log.Info("load level scripts")
	catalogue := level.NewCatalogue()
	host := deployment.New(storage.Pool.Deployments)
	scripts, err := script.Load(theConfiguration.Levels, host, catalogue)
	if nil != err {
		log.Criticalf("level script load error: %s", err)
		exitwithstatus.Message("level script load error: %s", err)
	}
	for _, l := range scripts.Levels() {
		log.Infof("level: %v  name: %q  script: %q", l.Identifier(), l.Name(), l.FileName())
	}

	// statistics ledgers hosted by this node
	ledgers := make(map[account.Identifier]*statistics.Ledger)
	for id, owner := range ids.ledgers {
		ledgers[id] = statistics.New(id, owner)
		log.Infof("statistics ledger: %v  owner: %v", id, owner)
	}
	resolver := func(id account.Identifier) (coordinator.Statistics, bool) {
		l, ok := ledgers[id]
		if !ok {
			return nil, false
		}
		return l, true
	}

	c := coordinator.New(ids.owner, ids.identity, catalogue, resolver)

	// the configured ledger only applies until the owner chooses one
	if _, set := c.GetStatistics(); !set && nil != ids.statistics {
		if err := c.SetStatistics(ids.owner, *ids.statistics); nil != err {
			log.Criticalf("set statistics error: %s", err)
			exitwithstatus.Message("set statistics error: %s", err)
		}
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, c) {
		return
	}

	// script hot reload
	watcher, err := script.NewWatcher(scripts)
	if nil != err {
		log.Criticalf("script watcher error: %s", err)
		exitwithstatus.Message("script watcher error: %s", err)
	}
	processes := background.Processes{
		watcher,
	}
	if len(options["memory-stats"]) > 0 {
		processes = append(processes, &memoryStats{})
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// initialise encryption
	err = zmqutil.StartAuthentication()
	if nil != err {
		log.Criticalf("zmq.AuthStart: error: %s", err)
		exitwithstatus.Message("zmq.AuthStart: error: %s", err)
	}
	defer zmqutil.StopAuthentication()

	// start up the publishing background processes
	publicKey := func() []byte { return nil }
	if 0 != len(theConfiguration.Publishing.Broadcast) {
		err = publish.Initialise(&theConfiguration.Publishing)
		if nil != err {
			log.Criticalf("publish initialise error: %s", err)
			exitwithstatus.Message("publish initialise error: %s", err)
		}
		defer publish.Finalise()
		publicKey = publish.PublicKey
	} else {
		log.Info("publishing disabled")
	}

	// start up the rpc background processes
	services := &server.Services{
		Coordinator: c,
		Ledgers:     ledgers,
		Scripts:     scripts,
		PublicKey:   publicKey,
	}
	err = rpc.Initialise(&theConfiguration.ClientRPC, services, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
