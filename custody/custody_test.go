// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/authority"
	"github.com/bitmark-inc/cfishd/custody"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/fixtures"
	"github.com/bitmark-inc/cfishd/storage"
)

func setup(t *testing.T) (custody.Tokens, authority.Authority) {
	fixtures.SetupTestLogger()
	fixtures.SetupTestStorage(t)
	auth := authority.New(fixtures.ProgramId)
	return custody.NewTokens(storage.Pool.TokenAccounts, auth), auth
}

func teardown() {
	fixtures.TeardownTestStorage()
	fixtures.TeardownTestLogger()
}

func begin(t *testing.T) storage.Transaction {
	tx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	return tx
}

func funded(t *testing.T, tokens custody.Tokens, tx storage.Transaction, owner account.Account, amount uint64) account.Account {
	address, err := tokens.OpenAssociated(tx, owner, fixtures.TokenMint)
	assert.Nil(t, err, "open associated")
	assert.Nil(t, tokens.MintTo(tx, address, amount), "mint to")
	return address
}

func TestAssociatedIsDeterministic(t *testing.T) {
	tokens, _ := setup(t)
	defer teardown()

	owner := fixtures.Key(1).Account()
	a1, err := tokens.Associated(owner, fixtures.TokenMint)
	assert.Nil(t, err, "derive")
	a2, err := tokens.Associated(owner, fixtures.TokenMint)
	assert.Nil(t, err, "derive")
	assert.Equal(t, a1, a2, "associated address changed")
	assert.False(t, authority.IsOnCurve(a1), "associated address has a key")

	other, err := tokens.Associated(fixtures.Key(2).Account(), fixtures.TokenMint)
	assert.Nil(t, err, "derive")
	assert.NotEqual(t, a1, other, "owners share an account")
}

func TestTransfer(t *testing.T) {
	tokens, _ := setup(t)
	defer teardown()

	alice := fixtures.Key(1).Account()
	bob := fixtures.Key(2).Account()

	tx := begin(t)
	from := funded(t, tokens, tx, alice, 100)
	to := funded(t, tokens, tx, bob, 0)

	assert.Nil(t, tokens.Transfer(tx, from, to, 40, alice), "transfer")

	n, err := tokens.Balance(tx, from)
	assert.Nil(t, err, "balance")
	assert.Equal(t, uint64(60), n, "source balance")
	n, err = tokens.Balance(tx, to)
	assert.Nil(t, err, "balance")
	assert.Equal(t, uint64(40), n, "destination balance")

	_, err = tokens.Balance(storage.Committed, from)
	assert.Equal(t, fault.ErrTokenAccountNotFound, err, "visible before commit")

	assert.Nil(t, tx.Commit(), "commit")

	n, err = tokens.Balance(storage.Committed, to)
	assert.Nil(t, err, "committed balance")
	assert.Equal(t, uint64(40), n, "committed destination balance")
}

func TestTransferFailures(t *testing.T) {
	tokens, _ := setup(t)
	defer teardown()

	alice := fixtures.Key(1).Account()
	bob := fixtures.Key(2).Account()

	tx := begin(t)
	defer tx.Abort()

	from := funded(t, tokens, tx, alice, 10)
	to := funded(t, tokens, tx, bob, 0)

	assert.Equal(t, fault.ErrInsufficientFunds, tokens.Transfer(tx, from, to, 11, alice), "overdraw")
	assert.Equal(t, fault.ErrNotOwner, tokens.Transfer(tx, from, to, 1, bob), "wrong signer")
	assert.Equal(t, fault.ErrTokenAccountNotFound, tokens.Transfer(tx, from, fixtures.Account(9), 1, alice), "missing destination")

	otherMint := fixtures.Account(0x77)
	wrong, err := tokens.OpenAssociated(tx, bob, otherMint)
	assert.Nil(t, err, "open other mint")
	assert.Equal(t, fault.ErrMintMismatch, tokens.Transfer(tx, from, wrong, 1, alice), "mint mismatch")

	n, _ := tokens.Balance(tx, from)
	assert.Equal(t, uint64(10), n, "failed transfers moved funds")
}

func TestMintOverflow(t *testing.T) {
	tokens, _ := setup(t)
	defer teardown()

	tx := begin(t)
	defer tx.Abort()

	address := funded(t, tokens, tx, fixtures.Key(1).Account(), ^uint64(0))
	assert.Equal(t, fault.ErrOverflow, tokens.MintTo(tx, address, 1), "overflow")
}

func TestOpenTwice(t *testing.T) {
	tokens, _ := setup(t)
	defer teardown()

	tx := begin(t)
	defer tx.Abort()

	address := fixtures.Account(5)
	assert.Nil(t, tokens.Open(tx, address, fixtures.TokenMint, fixtures.Key(1).Account()), "open")
	assert.Equal(t, fault.ErrAccountAlreadyInUse, tokens.Open(tx, address, fixtures.TokenMint, fixtures.Key(1).Account()), "open again")
}

func TestLockAndRelease(t *testing.T) {
	tokens, auth := setup(t)
	defer teardown()

	alice := fixtures.Key(1).Account()

	vaultOwner, proof, err := auth.Derive([]byte("escrow_authority"), alice.Bytes())
	assert.Nil(t, err, "derive")

	tx := begin(t)
	defer tx.Abort()

	wallet := funded(t, tokens, tx, alice, 50)
	vault := fixtures.Account(0x30)
	assert.Nil(t, tokens.Open(tx, vault, fixtures.TokenMint, vaultOwner), "open vault")

	assert.Nil(t, tokens.Lock(tx, wallet, vault, alice, 30), "lock")
	assert.Equal(t, fault.ErrNotOwner, tokens.Transfer(tx, vault, wallet, 1, alice), "owner moved derived funds")

	forged := proof
	forged.Bump ^= 0x01
	assert.Equal(t, fault.ErrAuthorityMismatch, tokens.Release(tx, vault, wallet, 10, forged), "forged proof")

	otherProof := authority.Proof{
		Namespace: []byte("escrow_authority"),
		Seeds:     [][]byte{fixtures.Key(2).Account().Bytes()},
		Bump:      proof.Bump,
	}
	assert.Equal(t, fault.ErrAuthorityMismatch, tokens.Release(tx, vault, wallet, 10, otherProof), "other seeds")

	n, _ := tokens.Balance(tx, vault)
	assert.Equal(t, uint64(30), n, "rejected release moved funds")

	assert.Nil(t, tokens.Release(tx, vault, wallet, 30, proof), "release")
	n, _ = tokens.Balance(tx, wallet)
	assert.Equal(t, uint64(50), n, "wallet after release")
}

func TestCurrency(t *testing.T) {
	setup(t)
	defer teardown()

	c := custody.NewCurrency(storage.Pool.NativeBalances)
	alice := fixtures.Key(1).Account()
	bob := fixtures.Key(2).Account()

	tx := begin(t)
	assert.Equal(t, uint64(0), c.Balance(tx, alice), "empty balance")
	assert.Nil(t, c.Credit(tx, alice, 1000), "credit")
	assert.Equal(t, fault.ErrInsufficientFunds, c.Transfer(tx, alice, bob, 1001), "overdraw")
	assert.Nil(t, c.Transfer(tx, alice, bob, 250), "transfer")
	assert.Equal(t, fault.ErrOverflow, c.Credit(tx, bob, ^uint64(0)), "credit overflow")
	assert.Nil(t, tx.Commit(), "commit")

	assert.Equal(t, uint64(750), c.Balance(storage.Committed, alice), "alice")
	assert.Equal(t, uint64(250), c.Balance(storage.Committed, bob), "bob")
}
