// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"testing"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/authority"
	"github.com/bitmark-inc/cfishd/custody"
	"github.com/bitmark-inc/cfishd/program"
	"github.com/bitmark-inc/cfishd/storage"
)

// Authority - the derivation authority of the test program
func Authority() authority.Authority {
	return authority.New(ProgramId)
}

// Run - execute one instruction body in its own transaction
//
// commits on success and aborts on error, like the ledger
func Run(t *testing.T, now int64, body func(c *program.Context) error) error {
	tx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	auth := Authority()
	c := &program.Context{
		Tx:        tx,
		Authority: auth,
		Tokens:    custody.NewTokens(storage.Pool.TokenAccounts, auth),
		Currency:  custody.NewCurrency(storage.Pool.NativeBalances),
		TokenMint: TokenMint,
		Now:       now,
	}

	err = body(c)
	if nil != err {
		tx.Abort()
		return err
	}
	if err := tx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return nil
}

// FundTokens - credit reward tokens to an owner's associated account
func FundTokens(t *testing.T, owner account.Account, amount uint64) {
	err := Run(t, Genesis.Unix(), func(c *program.Context) error {
		address, err := c.Tokens.OpenAssociated(c.Tx, owner, TokenMint)
		if nil != err {
			return err
		}
		return c.Tokens.MintTo(c.Tx, address, amount)
	})
	if nil != err {
		t.Fatalf("fund tokens error: %s", err)
	}
}

// FundVault - credit reward tokens to the program vault
func FundVault(t *testing.T, amount uint64) {
	err := Run(t, Genesis.Unix(), func(c *program.Context) error {
		vault, _, err := c.Vault()
		if nil != err {
			return err
		}
		return c.Tokens.MintTo(c.Tx, vault, amount)
	})
	if nil != err {
		t.Fatalf("fund vault error: %s", err)
	}
}

// FundCurrency - credit native currency
func FundCurrency(t *testing.T, owner account.Account, amount uint64) {
	err := Run(t, Genesis.Unix(), func(c *program.Context) error {
		return c.Currency.Credit(c.Tx, owner, amount)
	})
	if nil != err {
		t.Fatalf("fund currency error: %s", err)
	}
}

// TokenBalance - committed balance of an owner's associated account,
// zero when the account does not exist
func TokenBalance(owner account.Account, mint account.Account) uint64 {
	tokens := custody.NewTokens(storage.Pool.TokenAccounts, Authority())
	address, err := tokens.Associated(owner, mint)
	if nil != err {
		panic(err)
	}
	n, err := tokens.Balance(storage.Committed, address)
	if nil != err {
		return 0
	}
	return n
}

// CurrencyBalance - committed native balance
func CurrencyBalance(owner account.Account) uint64 {
	return custody.NewCurrency(storage.Pool.NativeBalances).Balance(storage.Committed, owner)
}
