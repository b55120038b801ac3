// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/command/cfish-cli/configuration"
	"github.com/bitmark-inc/cfishd/fault"
)

const testPassword = "password1"

// run the client with captured output
func run(t *testing.T, arguments ...string) (string, error) {
	var out, errors bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errors
	err := app.Run(append([]string{"cfish-cli"}, arguments...))
	return out.String(), err
}

func setup(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	_, err := run(t, "-n", "local", "-i", "alice", "-p", testPassword, "setup", "-c", "127.0.0.1:2130", "-d", "first")
	assert.Nil(t, err, "setup")
	return filepath.Join(dir, "cfish-cli", "local-cfish-cli.json")
}

func TestSetup(t *testing.T) {
	file := setup(t)

	c, err := configuration.Load(file)
	assert.Nil(t, err, "load")
	assert.Equal(t, "alice", c.DefaultIdentity, "wrong default identity")
	assert.Equal(t, "local", c.Chain, "wrong chain")
	assert.Equal(t, []string{"127.0.0.1:2130"}, c.Connections, "wrong connections")

	_, err = c.Private(testPassword, "alice")
	assert.Nil(t, err, "password does not unlock identity")

	_, err = run(t, "-n", "local", "-i", "alice", "-p", testPassword, "setup", "-c", "127.0.0.1:2130", "-d", "again")
	assert.NotNil(t, err, "existing configuration overwritten")
}

func TestAddAndInfo(t *testing.T) {
	file := setup(t)

	key, err := account.NewPrivateKey()
	assert.Nil(t, err, "new private key")

	_, err = run(t, "-n", "local", "-i", "bob", "add", "-d", "receive", "-a", key.Account().String())
	assert.Nil(t, err, "add receive only")

	_, err = run(t, "-n", "local", "-i", "carol", "add", "-d", "both", "-a", key.Account().String(), "--new")
	assert.Equal(t, fault.ErrIncompatibleOptions, err, "incompatible options accepted")

	_, err = run(t, "-n", "local", "-i", "dave", "-p", testPassword, "add", "-d", "seeded", "-s", key.Base58Seed())
	assert.Nil(t, err, "add with seed")

	out, err := run(t, "-n", "local", "info")
	assert.Nil(t, err, "info")

	var reply infoReply
	assert.Nil(t, json.Unmarshal([]byte(out), &reply), "info output")
	assert.Equal(t, file, reply.File, "wrong file")
	assert.Equal(t, 3, len(reply.Identities), "wrong identity count")
	assert.Equal(t, "alice", reply.Identities[0].Name, "not sorted")
	assert.True(t, reply.Identities[0].CanSign, "alice cannot sign")
	assert.Equal(t, "bob", reply.Identities[1].Name, "not sorted")
	assert.False(t, reply.Identities[1].CanSign, "receive only can sign")
	assert.Equal(t, key.Account().String(), reply.Identities[2].Account, "wrong seeded account")
}

func TestGenerate(t *testing.T) {
	out, err := run(t, "generate")
	assert.Nil(t, err, "generate")

	var raw struct {
		Seed    string `json:"seed"`
		Account string `json:"account"`
	}
	assert.Nil(t, json.Unmarshal([]byte(out), &raw), "generate output")

	key, err := account.PrivateKeyFromBase58Seed(raw.Seed)
	assert.Nil(t, err, "seed does not decode")
	assert.Equal(t, key.Account().String(), raw.Account, "wrong account")
}

func TestUnknownNetwork(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := run(t, "-n", "bitcoin", "info")
	assert.NotNil(t, err, "unknown network accepted")
}

func TestRequiredArguments(t *testing.T) {
	setup(t)

	_, err := run(t, "-n", "local", "stake")
	assert.Equal(t, ErrRequiredAmount, err, "stake without amount")

	_, err = run(t, "-n", "local", "buy")
	assert.Equal(t, ErrRequiredAccount, err, "buy without asset")

	_, err = run(t, "-n", "local", "propose", "-d", "text")
	assert.Equal(t, ErrRequiredTitle, err, "propose without title")

	_, err = run(t, "-n", "local", "proposal")
	assert.Equal(t, fault.ErrIncompatibleOptions, err, "proposal without selector")
}
