// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/command/cfish-cli/rpccalls"
	"github.com/bitmark-inc/cfishd/fault"
)

// errors local to the client
var (
	ErrRequiredAccount     = fault.InvalidError("account is required")
	ErrRequiredAmount      = fault.InvalidError("amount is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredName        = fault.InvalidError("name is required")
	ErrRequiredTitle       = fault.InvalidError("title is required")
	ErrNoConnections       = fault.NotFoundError("no connections configured")
)

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// true if path is a directory, error if it does not exist
func checkFileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return info.IsDir(), nil
}

// identity name from the global option or the configured default
func identityName(c *cli.Context, m *metadata) (string, error) {
	name := c.GlobalString("identity")
	if "" == name && nil != m.config {
		name = m.config.DefaultIdentity
	}
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

// signing key of the current identity, prompting for the password if needed
func signingKey(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	name, err := identityName(c, m)
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptCheckPassword()
		if nil != err {
			return nil, err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s  account: %s\n", name, private.PrivateKey.Account())
	}
	return private.PrivateKey, nil
}

// an identity name or Base58 account; blank selects the current identity
func accountOrIdentity(c *cli.Context, m *metadata, name string) (account.Account, error) {
	if "" == name {
		n, err := identityName(c, m)
		if nil != err {
			return account.Account{}, err
		}
		name = n
	}
	return m.config.Account(name)
}

// a required Base58 account
func requiredAccount(s string) (account.Account, error) {
	if "" == s {
		return account.Account{}, ErrRequiredAccount
	}
	return account.FromBase58(s)
}

// connect to the first configured node
func getClient(m *metadata) (*rpccalls.Client, error) {
	if 0 == len(m.config.Connections) {
		return nil, ErrNoConnections
	}
	connect := m.config.Connections[0]
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", connect)
	}
	return rpccalls.NewClient(connect, m.verbose, m.e)
}
