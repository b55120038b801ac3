// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/authority"
	"github.com/bitmark-inc/cfishd/custody"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/fixtures"
	"github.com/bitmark-inc/cfishd/program"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/storage"
)

func setup(t *testing.T) *program.Context {
	fixtures.SetupTestLogger()
	fixtures.SetupTestStorage(t)

	tx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	auth := authority.New(fixtures.ProgramId)
	return &program.Context{
		Tx:        tx,
		Authority: auth,
		Tokens:    custody.NewTokens(storage.Pool.TokenAccounts, auth),
		Currency:  custody.NewCurrency(storage.Pool.NativeBalances),
		TokenMint: fixtures.TokenMint,
		Now:       fixtures.Genesis.Unix(),
	}
}

func teardown(c *program.Context) {
	c.Tx.Abort()
	fixtures.TeardownTestStorage()
	fixtures.TeardownTestLogger()
}

func TestCreateCollision(t *testing.T) {
	c := setup(t)
	defer teardown(c)

	address, _, err := c.Derive(program.StakeEntryNamespace, fixtures.Account(1).Bytes())
	assert.Nil(t, err, "derive")

	entry := &record.StakeEntry{Staker: fixtures.Account(1), Amount: 5}
	assert.Nil(t, c.Create(storage.Pool.StakeEntries, address, entry), "create")
	assert.Equal(t, fault.ErrAccountAlreadyInUse, c.Create(storage.Pool.StakeEntries, address, entry), "second create")
	assert.Equal(t, 1, len(c.Created), "created list")

	actual, err := program.GetStakeEntry(c.Tx, address)
	assert.Nil(t, err, "get")
	assert.Equal(t, entry, actual, "stored entry")

	_, err = program.GetStakeEntry(c.Tx, fixtures.Account(2))
	assert.Equal(t, fault.ErrStakeEntryNotFound, err, "missing entry")
}

func TestCreateTooLarge(t *testing.T) {
	c := setup(t)
	defer teardown(c)

	p := &record.Proposal{
		Title: string(make([]byte, record.MaxTitleLength+1)),
	}
	err := c.Create(storage.Pool.Proposals, fixtures.Account(3), p)
	assert.Equal(t, fault.ErrTitleTooLong, err, "oversize title")
	assert.False(t, c.Exists(storage.Pool.Proposals, fixtures.Account(3)), "record stored")
}

func TestSignerStoresBump(t *testing.T) {
	c := setup(t)
	defer teardown(c)

	asset := fixtures.Account(7).Bytes()
	a1, p1, err := c.Signer(program.EscrowAuthorityNamespace, asset)
	assert.Nil(t, err, "first signer")
	a2, p2, err := c.Signer(program.EscrowAuthorityNamespace, asset)
	assert.Nil(t, err, "second signer")
	assert.Equal(t, a1, a2, "signer address")
	assert.True(t, p1.Equal(p2), "signer proof")

	stored, err := program.GetAuthority(c.Tx, a1)
	assert.Nil(t, err, "authority record")
	assert.Equal(t, p1.Bump, stored.Bump, "stored bump")
}

func TestSignerRejectsChangedBump(t *testing.T) {
	c := setup(t)
	defer teardown(c)

	seed := fixtures.Account(8).Bytes()
	address, proof, err := c.Derive(program.StakeAuthorityNamespace, seed)
	assert.Nil(t, err, "derive")

	assert.Nil(t, c.Store(storage.Pool.Authorities, address, &record.Authority{Bump: proof.Bump - 1}), "store")
	_, _, err = c.Signer(program.StakeAuthorityNamespace, seed)
	assert.Equal(t, fault.ErrAuthorityMismatch, err, "changed bump accepted")
}

func TestVault(t *testing.T) {
	c := setup(t)
	defer teardown(c)

	vault, proof, err := c.Vault()
	assert.Nil(t, err, "vault")

	ta, err := c.Tokens.Get(c.Tx, vault)
	assert.Nil(t, err, "vault account")
	assert.Equal(t, fixtures.TokenMint, ta.Mint, "vault mint")
	assert.True(t, c.Authority.Verify(proof, ta.Owner), "vault owner proof")

	again, _, err := c.Vault()
	assert.Nil(t, err, "vault again")
	assert.Equal(t, vault, again, "vault moved")
}

func TestDay(t *testing.T) {
	assert.Equal(t, int64(0), program.Day(0), "epoch")
	assert.Equal(t, int64(0), program.Day(program.SecondsPerDay-1), "end of day zero")
	assert.Equal(t, int64(1), program.Day(program.SecondsPerDay), "start of day one")
	assert.Equal(t, int64(-1), program.Day(-1), "before epoch")
}
