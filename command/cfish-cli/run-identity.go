// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/cfishd/command/cfish-cli/configuration"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/keypair"
)

func runGenerate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	rawKeyPair, _, err := keypair.MakeRawKeyPair()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "rawKeyPair: %#v\n", rawKeyPair)
	}

	return printJson(m.w, rawKeyPair)
}

// a given seed or a new one when blank
func seedOrNew(seed string) (string, error) {
	if "" != seed {
		_, _, err := keypair.MakeRawKeyPairFromSeed(seed)
		return seed, err
	}
	rawKeyPair, _, err := keypair.MakeRawKeyPair()
	if nil != err {
		return "", err
	}
	return rawKeyPair.Seed, nil
}

func runSetup(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		return ErrRequiredIdentity
	}

	connect := c.String("connect")
	if "" == connect {
		return ErrRequiredConnect
	}

	description := c.String("description")
	if "" == description {
		return ErrRequiredDescription
	}

	seed, err := seedOrNew(c.String("seed"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "chain: %s\n", m.chain)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// Create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if err != nil {
		if err := os.MkdirAll(configDir, 0o750); err != nil {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := &configuration.Configuration{
		DefaultIdentity: name,
		Chain:           m.chain,
		Connections:     strings.Split(connect, ","),
		Identities:      make(map[string]configuration.Identity),
	}

	password := c.GlobalString("password")
	if password == "" {
		password, err = promptNewPassword()
		if err != nil {
			return err
		}
	}

	err = config.AddIdentity(name, description, seed, password)
	if err != nil {
		return err
	}

	m.config = config
	m.save = true
	return nil
}

func runAdd(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		return ErrRequiredIdentity
	}

	description := c.String("description")
	if "" == description {
		return ErrRequiredDescription
	}

	seed := c.String("seed")
	isNew := c.Bool("new")
	acc := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
		fmt.Fprintf(m.e, "new: %t\n", isNew)
	}

	switch {
	case "" == acc && ("" != seed) != isNew:
		seed, err := seedOrNew(seed)
		if nil != err {
			return err
		}

		password := c.GlobalString("password")
		if "" == password {
			password, err = promptNewPassword()
			if nil != err {
				return err
			}
		}

		if err := m.config.AddIdentity(name, description, seed, password); nil != err {
			return err
		}

	case "" != acc && "" == seed && !isNew:
		if err := m.config.AddReceiveOnlyIdentity(name, description, acc); nil != err {
			return err
		}

	default:
		return fault.ErrIncompatibleOptions
	}

	// require configuration update
	m.save = true
	return nil
}

type infoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	CanSign     bool   `json:"canSign"`
}

type infoReply struct {
	File            string         `json:"file"`
	Chain           string         `json:"chain"`
	DefaultIdentity string         `json:"defaultIdentity"`
	Connections     []string       `json:"connections"`
	Identities      []infoIdentity `json:"identities"`
}

// runInfo - the client configuration without any secrets
func runInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	reply := infoReply{
		File:            m.file,
		Chain:           m.config.Chain,
		DefaultIdentity: m.config.DefaultIdentity,
		Connections:     m.config.Connections,
		Identities:      make([]infoIdentity, 0, len(m.config.Identities)),
	}
	for name, id := range m.config.Identities {
		reply.Identities = append(reply.Identities, infoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			CanSign:     "" != id.Data,
		})
	}
	sortIdentities(reply.Identities)

	return printJson(m.w, reply)
}

func sortIdentities(ids []infoIdentity) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Name < ids[j].Name
	})
}
