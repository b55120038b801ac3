// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/benbjohnson/clock"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/authority"
	"github.com/bitmark-inc/cfishd/custody"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/messagebus"
	"github.com/bitmark-inc/cfishd/program"
	"github.com/bitmark-inc/cfishd/storage"
	"github.com/bitmark-inc/logger"
)

// Allocation - an initial balance
type Allocation struct {
	Account string `gluamapper:"account" json:"account"`
	Amount  uint64 `gluamapper:"amount" json:"amount"`
}

// Configuration - program identity and genesis balances
type Configuration struct {
	ProgramId string       `gluamapper:"program_id" json:"program_id"`
	TokenMint string       `gluamapper:"token_mint" json:"token_mint"`
	Vault     uint64       `gluamapper:"vault" json:"vault"`
	Currency  []Allocation `gluamapper:"currency" json:"currency"`
	Tokens    []Allocation `gluamapper:"tokens" json:"tokens"`
}

type ledger struct {
	log       *logger.L
	clock     clock.Clock
	bus       *messagebus.BroadcastQueue
	programId account.Account
	tokenMint account.Account
	authority authority.Authority
	tokens    custody.Tokens
	currency  custody.Currency
}

// New - open the ledger over initialised storage
//
// an empty database receives the genesis allocations
func New(configuration *Configuration, clk clock.Clock, bus *messagebus.BroadcastQueue) (Ledger, error) {
	if !storage.IsInitialised() {
		return nil, fault.ErrNotInitialised
	}

	log := logger.New("ledger")

	programId, err := account.FromBase58(configuration.ProgramId)
	if nil != err {
		log.Errorf("program id: %q  error: %s", configuration.ProgramId, err)
		return nil, err
	}
	tokenMint, err := account.FromBase58(configuration.TokenMint)
	if nil != err {
		log.Errorf("token mint: %q  error: %s", configuration.TokenMint, err)
		return nil, err
	}

	auth := authority.New(programId)
	l := &ledger{
		log:       log,
		clock:     clk,
		bus:       bus,
		programId: programId,
		tokenMint: tokenMint,
		authority: auth,
		tokens:    custody.NewTokens(storage.Pool.TokenAccounts, auth),
		currency:  custody.NewCurrency(storage.Pool.NativeBalances),
	}

	if err := l.genesis(configuration); nil != err {
		return nil, err
	}

	log.Infof("program: %s  token mint: %s", programId, tokenMint)
	return l, nil
}

// context for one instruction
func (l *ledger) context(tx storage.Transaction) *program.Context {
	return &program.Context{
		Tx:        tx,
		Authority: l.authority,
		Tokens:    l.tokens,
		Currency:  l.currency,
		TokenMint: l.tokenMint,
		Now:       l.clock.Now().Unix(),
	}
}

// create the vault and apply allocations, once
func (l *ledger) genesis(configuration *Configuration) error {
	vault, err := l.vaultAddress()
	if nil != err {
		return err
	}
	if storage.Committed.Has(storage.Pool.TokenAccounts, vault.Bytes()) {
		l.log.Debug("genesis already applied")
		return nil
	}

	tx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	c := l.context(tx)

	err = applyGenesis(c, configuration)
	if nil != err {
		tx.Abort()
		l.log.Errorf("genesis error: %s", err)
		return err
	}
	if err := tx.Commit(); nil != err {
		l.log.Criticalf("genesis commit error: %s", err)
		return err
	}

	l.log.Infof("genesis: vault: %s  funded: %d  currency allocations: %d  token allocations: %d",
		vault, configuration.Vault, len(configuration.Currency), len(configuration.Tokens))
	return nil
}

func applyGenesis(c *program.Context, configuration *Configuration) error {
	vault, _, err := c.Vault()
	if nil != err {
		return err
	}
	if err := c.Tokens.MintTo(c.Tx, vault, configuration.Vault); nil != err {
		return err
	}

	for _, a := range configuration.Currency {
		owner, err := account.FromBase58(a.Account)
		if nil != err {
			return err
		}
		if err := c.Currency.Credit(c.Tx, owner, a.Amount); nil != err {
			return err
		}
	}

	for _, a := range configuration.Tokens {
		owner, err := account.FromBase58(a.Account)
		if nil != err {
			return err
		}
		holding, err := c.Tokens.OpenAssociated(c.Tx, owner, c.TokenMint)
		if nil != err {
			return err
		}
		if err := c.Tokens.MintTo(c.Tx, holding, a.Amount); nil != err {
			return err
		}
	}
	return nil
}

func (l *ledger) vaultAddress() (account.Account, error) {
	address, _, err := l.authority.Derive([]byte(program.VaultTokenAccountNamespace), l.tokenMint.Bytes())
	return address, err
}
