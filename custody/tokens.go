// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custody - token and native currency balances
//
// Tokens hold balances of a mint (fungible token or single unit
// asset) in token accounts, each with an owner.  The owner is either
// a signer, whose signature the ledger has already checked, or a
// derived address, which can only move funds when a derivation proof
// for exactly that address is supplied.
package custody

import (
	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/authority"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/storage"
	"github.com/bitmark-inc/logger"
)

// AssociatedNamespace - namespace of an owner's default account for a mint
const AssociatedNamespace = "associated_token"

// Tokens - the token custody service
type Tokens interface {
	Associated(owner account.Account, mint account.Account) (account.Account, error)
	Open(tx storage.Transaction, address account.Account, mint account.Account, owner account.Account) error
	OpenAssociated(tx storage.Transaction, owner account.Account, mint account.Account) (account.Account, error)
	Get(r storage.Reader, address account.Account) (*record.TokenAccount, error)
	Balance(r storage.Reader, address account.Account) (uint64, error)
	MintTo(tx storage.Transaction, address account.Account, amount uint64) error
	Transfer(tx storage.Transaction, from account.Account, to account.Account, amount uint64, signer account.Account) error
	Lock(tx storage.Transaction, from account.Account, to account.Account, owner account.Account, amount uint64) error
	Release(tx storage.Transaction, from account.Account, to account.Account, amount uint64, proof authority.Proof) error
}

type tokens struct {
	pool      *storage.PoolHandle
	authority authority.Authority
}

// NewTokens - token custody over a pool
func NewTokens(pool *storage.PoolHandle, auth authority.Authority) Tokens {
	return &tokens{
		pool:      pool,
		authority: auth,
	}
}

// Associated - address of the default account of owner for mint
func (t *tokens) Associated(owner account.Account, mint account.Account) (account.Account, error) {
	address, _, err := t.authority.Derive([]byte(AssociatedNamespace), owner.Bytes(), mint.Bytes())
	return address, err
}

// Open - create an empty token account
func (t *tokens) Open(tx storage.Transaction, address account.Account, mint account.Account, owner account.Account) error {
	if tx.Has(t.pool, address.Bytes()) {
		return fault.ErrAccountAlreadyInUse
	}
	return t.put(tx, address, &record.TokenAccount{
		Mint:   mint,
		Owner:  owner,
		Amount: 0,
	})
}

// OpenAssociated - the associated account, created if missing
func (t *tokens) OpenAssociated(tx storage.Transaction, owner account.Account, mint account.Account) (account.Account, error) {
	address, err := t.Associated(owner, mint)
	if nil != err {
		return account.Account{}, err
	}
	if tx.Has(t.pool, address.Bytes()) {
		return address, nil
	}
	return address, t.Open(tx, address, mint, owner)
}

// Get - read a token account
func (t *tokens) Get(r storage.Reader, address account.Account) (*record.TokenAccount, error) {
	packed := r.Get(t.pool, address.Bytes())
	if nil == packed {
		return nil, fault.ErrTokenAccountNotFound
	}
	unpacked, err := record.Packed(packed).Unpack()
	if nil != err {
		logger.Panicf("custody: corrupt token account: %s  error: %s", address, err)
	}
	ta, ok := unpacked.(*record.TokenAccount)
	if !ok {
		logger.Panicf("custody: not a token account: %s", address)
	}
	return ta, nil
}

// Balance - amount held by a token account
func (t *tokens) Balance(r storage.Reader, address account.Account) (uint64, error) {
	ta, err := t.Get(r, address)
	if nil != err {
		return 0, err
	}
	return ta.Amount, nil
}

// MintTo - create new supply in an existing account
func (t *tokens) MintTo(tx storage.Transaction, address account.Account, amount uint64) error {
	ta, err := t.Get(tx, address)
	if nil != err {
		return err
	}
	total := ta.Amount + amount
	if total < ta.Amount {
		return fault.ErrOverflow
	}
	ta.Amount = total
	return t.put(tx, address, ta)
}

// Transfer - move amount between two accounts of the same mint
//
// signer must be the owner of the source account; all checks happen
// before either account is written
func (t *tokens) Transfer(tx storage.Transaction, from account.Account, to account.Account, amount uint64, signer account.Account) error {
	source, err := t.Get(tx, from)
	if nil != err {
		return err
	}
	destination, err := t.Get(tx, to)
	if nil != err {
		return err
	}
	if source.Mint != destination.Mint {
		return fault.ErrMintMismatch
	}
	if source.Owner != signer {
		return fault.ErrNotOwner
	}
	if source.Amount < amount {
		return fault.ErrInsufficientFunds
	}
	if from == to {
		return nil
	}

	credited := destination.Amount + amount
	if credited < destination.Amount {
		return fault.ErrOverflow
	}

	source.Amount -= amount
	destination.Amount = credited

	if err := t.put(tx, from, source); nil != err {
		return err
	}
	return t.put(tx, to, destination)
}

// Lock - owner signed move into a derived account
func (t *tokens) Lock(tx storage.Transaction, from account.Account, to account.Account, owner account.Account, amount uint64) error {
	return t.Transfer(tx, from, to, amount, owner)
}

// Release - move out of a derived account under a derivation proof
//
// the proof must re-derive exactly the owner of the source account,
// otherwise nothing moves
func (t *tokens) Release(tx storage.Transaction, from account.Account, to account.Account, amount uint64, proof authority.Proof) error {
	source, err := t.Get(tx, from)
	if nil != err {
		return err
	}
	if !t.authority.Verify(proof, source.Owner) {
		return fault.ErrAuthorityMismatch
	}
	return t.Transfer(tx, from, to, amount, source.Owner)
}

func (t *tokens) put(tx storage.Transaction, address account.Account, ta *record.TokenAccount) error {
	packed, err := ta.Pack()
	if nil != err {
		return err
	}
	tx.Put(t.pool, address.Bytes(), packed)
	return nil
}
