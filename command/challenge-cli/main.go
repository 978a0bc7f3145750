// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/challenged/command/challenge-cli/configuration"
)

type metadata struct {
	file       string
	config     *configuration.Configuration
	save       bool
	verbose    bool
	password   string
	agent      string
	clearAgent bool
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "challenge-cli"
	app.Usage = "challenged client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [$XDG_CONFIG_HOME/challenge-cli/challenge-cli.json]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.StringFlag{
			Name:  "use-agent, u",
			Value: "",
			Usage: " executable program that returns the password `EXE`",
		},
		cli.BoolFlag{
			Name:  "zero-agent-cache, z",
			Usage: " force re-entry of agent password",
		},
	}

	identifierUsage := "\n   (* = required)\n   identifiers are names from the configuration, base58 or 0x hex"

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a seed, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise challenge-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*challenged RPC host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "subscribe, b",
					Value: "",
					Usage: " challenged publisher host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing hex `SEED`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing hex `SEED`",
				},
				cli.BoolFlag{
					Name:  "default",
					Usage: " make this the default identity",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "password",
			Usage:  "change identity's password",
			Action: runPassword,
		},
		{
			Name:   "info",
			Usage:  "display challenge-cli identities",
			Action: runInfo,
		},
		{
			Name:   "node",
			Usage:  "display challenged status",
			Action: runNodeInfo,
		},
		{
			Name:   "owner",
			Usage:  "display coordinator owner, identity and statistics ledger",
			Action: runOwner,
		},
		{
			Name:      "register",
			Usage:     "register a level (owner only)",
			ArgsUsage: identifierUsage,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "level, l",
					Value: "",
					Usage: "*level `IDENTIFIER`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "set-statistics",
			Usage:     "select the statistics ledger (owner only)",
			ArgsUsage: identifierUsage,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "statistics, s",
					Value: "",
					Usage: "*ledger `IDENTIFIER`",
				},
			},
			Action: runSetStatistics,
		},
		{
			Name:      "registered",
			Usage:     "check if a level is registered",
			ArgsUsage: identifierUsage,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "level, l",
					Value: "",
					Usage: "*level `IDENTIFIER`",
				},
			},
			Action: runRegistered,
		},
		{
			Name:      "create",
			Usage:     "create an instance of a level",
			ArgsUsage: identifierUsage,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "level, l",
					Value: "",
					Usage: "*level `IDENTIFIER`",
				},
				cli.Uint64Flag{
					Name:  "endowment, e",
					Value: 0,
					Usage: " value passed to the level `AMOUNT`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "submit",
			Usage:     "submit an instance for validation",
			ArgsUsage: identifierUsage,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "instance, t",
					Value: "",
					Usage: "*instance `IDENTIFIER`",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "instance",
			Usage:     "display an instance record",
			ArgsUsage: identifierUsage,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "instance, t",
					Value: "",
					Usage: "*instance `IDENTIFIER`",
				},
			},
			Action: runInstance,
		},
		{
			Name:      "state",
			Usage:     "display the state of a scripted instance",
			ArgsUsage: identifierUsage,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "instance, t",
					Value: "",
					Usage: "*instance `IDENTIFIER`",
				},
			},
			Action: runState,
		},
		{
			Name:      "invoke",
			Usage:     "run an action on a scripted instance",
			ArgsUsage: identifierUsage,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "instance, t",
					Value: "",
					Usage: "*instance `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "action, a",
					Value: "",
					Usage: "*action `NAME`",
				},
				cli.StringFlag{
					Name:  "arguments, j",
					Value: "",
					Usage: " action arguments as a JSON object `JSON`",
				},
			},
			Action: runInvoke,
		},
		{
			Name:      "level-stats",
			Usage:     "display level registration and instance total",
			ArgsUsage: identifierUsage,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "level, l",
					Value: "",
					Usage: "*level `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "ledger, s",
					Value: "",
					Usage: " ledger `IDENTIFIER` default is current",
				},
			},
			Action: runLevelStatistics,
		},
		{
			Name:      "player-stats",
			Usage:     "display a player's record on a level",
			ArgsUsage: identifierUsage,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "level, l",
					Value: "",
					Usage: "*level `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "player, o",
					Value: "",
					Usage: " player `IDENTIFIER` default is global identity",
				},
				cli.StringFlag{
					Name:  "ledger, s",
					Value: "",
					Usage: " ledger `IDENTIFIER` default is current",
				},
				cli.Uint64Flag{
					Name:  "start, b",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runPlayerStatistics,
		},
		{
			Name:      "events",
			Usage:     "list coordinator events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, b",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:      "watch",
			Usage:     "print events as they are published",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "subscribe, b",
					Value: "",
					Usage: " publisher `HOST:PORT` default from config",
				},
				cli.StringFlag{
					Name:  "server-key, k",
					Value: "",
					Usage: " publisher `PUBLIC:HEX` key default from node",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " stop after `COUNT` events, 0 = forever",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display challenge-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h", "version", "generate":
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		file, err := configFile(c.GlobalString("config"), app.Name)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:       file,
			save:       false,
			verbose:    verbose,
			password:   c.GlobalString("password"),
			agent:      c.GlobalString("use-agent"),
			clearAgent: c.GlobalBool("zero-agent-cache"),
			e:          e,
			w:          w,
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}
		} else {
			config, err := configuration.Load(file)
			if nil != err {
				return err
			}
			m.config = config
		}

		c.App.Metadata["config"] = m
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.save {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
		}
		return configuration.Save(m.file, m.config)
	}

	return app
}

// explicit file or default under XDG_CONFIG_HOME
func configFile(file string, name string) (string, error) {
	if "" != file {
		return file, nil
	}

	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
	}
	dir, err := checkFileExists(p)
	if nil != err {
		return "", err
	}
	if !dir {
		return "", fmt.Errorf("not a directory: %q", p)
	}
	return path.Join(p, name, name+".json"), nil
}
