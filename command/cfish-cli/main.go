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

	"github.com/bitmark-inc/cfishd/chain"
	"github.com/bitmark-inc/cfishd/command/cfish-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	chain   string
	verbose bool
	e       io.Writer
	w       io.Writer
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
	app.Name = "cfish-cli"
	app.Usage = "client for the cfishd ledger"
	app.Version = version
	app.HideVersion = true
	app.Metadata = make(map[string]interface{})

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.CFish,
			Usage: " connect to cfishd `NETWORK` [cfish|testing|local]",
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
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate key pair, will not store in config file",
			Action: runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise cfish-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*cfishd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: "+create a new seed",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "info",
			Usage:  "display cfish-cli status",
			Action: runInfo,
		},
		{
			Name:   "node-info",
			Usage:  "display cfishd status",
			Action: runNodeInfo,
		},
		{
			Name:      "balance",
			Usage:     "display token and currency balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: " token mint `ACCOUNT` default is the program token",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "mint",
			Usage:     "create a new single unit asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*asset `NAME`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*asset `SYMBOL`",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*metadata `URI`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "asset",
			Usage:     "display an asset and a holder's balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runAsset,
		},
		{
			Name:      "list",
			Usage:     "offer an asset for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "price, P",
					Value: 0,
					Usage: "*price in currency units `AMOUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `ACCOUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "listing",
			Usage:     "display the listing of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `ACCOUNT`",
				},
			},
			Action: runListing,
		},
		{
			Name:      "stake",
			Usage:     "stake tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, A",
					Value: 0,
					Usage: "*tokens to stake `AMOUNT`",
				},
				cli.Uint64Flag{
					Name:  "days, d",
					Value: 0,
					Usage: " declared duration `DAYS`",
				},
			},
			Action: runStake,
		},
		{
			Name:   "unstake",
			Usage:  "return staked tokens with rewards",
			Action: runUnstake,
		},
		{
			Name:      "stake-info",
			Usage:     "display a stake entry",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runStakeInfo,
		},
		{
			Name:      "reward",
			Usage:     "distribute a vesting reward to the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, A",
					Value: 0,
					Usage: "*reward `AMOUNT`",
				},
			},
			Action: runReward,
		},
		{
			Name:      "release",
			Usage:     "release the vested part of a reward",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "index, x",
					Value: 0,
					Usage: "*vesting entry `INDEX`",
				},
			},
			Action: runRelease,
		},
		{
			Name:      "vesting",
			Usage:     "display reward tracker and vesting entries",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runVesting,
		},
		{
			Name:      "propose",
			Usage:     "create a governance proposal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*proposal `TITLE`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*proposal `TEXT`",
				},
				cli.Int64Flag{
					Name:  "period, P",
					Value: 7 * 24 * 60 * 60,
					Usage: " voting period `SECONDS`",
				},
			},
			Action: runPropose,
		},
		{
			Name:      "vote",
			Usage:     "vote on a proposal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "proposal, P",
					Value: "",
					Usage: "*proposal `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "no",
					Usage: " vote against",
				},
			},
			Action: runVote,
		},
		{
			Name:      "proposal",
			Usage:     "display a proposal",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "proposal, P",
					Value: "",
					Usage: "+proposal `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "proposer, o",
					Value: "",
					Usage: "+identity name or `ACCOUNT` of the proposer, with title",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: " proposal `TITLE`",
				},
				cli.StringFlag{
					Name:  "voter, V",
					Value: "",
					Usage: " also show the vote of identity name or `ACCOUNT`",
				},
			},
			Action: runProposal,
		},
		{
			Name:      "proposals",
			Usage:     "list proposals",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " start from proposal `ACCOUNT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runProposals,
		},
		{
			Name:  "version",
			Usage: "display cfish-cli version",
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
		if "version" == command || "generate" == command || "" == command || "help" == command {
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		network, ok := chain.Normalise(c.GlobalString("network"))
		if !ok {
			return fmt.Errorf("network: %q can only be cfish/testing/local", c.GlobalString("network"))
		}

		file, err := configurationFile(app.Name, network)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				chain:   network,
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configuration, err := configuration.Load(file)
			if nil != err {
				return err
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  configuration,
				chain:   network,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	return app
}

// configuration file is under XDG_CONFIG_HOME, one per network
func configurationFile(name string, network string) (string, error) {
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
	return path.Join(p, name, network+"-"+name+".json"), nil
}
