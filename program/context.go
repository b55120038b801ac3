// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package program - the account store seen by one instruction
//
// A Context is built by the ledger for each instruction after the
// signature has been checked and the storage transaction begun.  All
// reads go through the transaction, so an instruction sees its own
// writes, and nothing is visible to anyone else until the ledger
// commits.
package program

import (
	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/authority"
	"github.com/bitmark-inc/cfishd/custody"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/storage"
)

// derived address namespaces
const (
	AssetMetadataNamespace     = "nft_metadata"
	EscrowNamespace            = "escrow"
	ListingNamespace           = "listing"
	EscrowAuthorityNamespace   = "escrow_authority"
	StakeAccountNamespace      = "stake_account"
	StakeAuthorityNamespace    = "stake_authority"
	StakeEntryNamespace        = "stake_entry"
	RewardTrackerNamespace     = "reward_tracker"
	VestingEntryNamespace      = "vesting_entry"
	ProposalNamespace          = "proposal"
	VoteRecordNamespace        = "vote_record"
	VaultAuthorityNamespace    = "authority"
	VaultTokenAccountNamespace = "authority_token_account"
)

// SecondsPerDay - length of a reward day
const SecondsPerDay = 86400

// Context - everything an instruction body may touch
type Context struct {
	Tx        storage.Transaction
	Authority authority.Authority
	Tokens    custody.Tokens
	Currency  custody.Currency
	TokenMint account.Account
	Now       int64

	// filled in while the instruction runs
	Created []account.Account
	Amount  uint64
}

// Derive - derived address in one of the program namespaces
func (c *Context) Derive(namespace string, seeds ...[]byte) (account.Account, authority.Proof, error) {
	return c.Authority.Derive([]byte(namespace), seeds...)
}

// Create - store a record at a fresh address
//
// an existing record at the address is a derived address collision
func (c *Context) Create(pool *storage.PoolHandle, address account.Account, r record.Record) error {
	if c.Tx.Has(pool, address.Bytes()) {
		return fault.ErrAccountAlreadyInUse
	}
	if err := c.Store(pool, address, r); nil != err {
		return err
	}
	c.Created = append(c.Created, address)
	return nil
}

// Store - overwrite a record
func (c *Context) Store(pool *storage.PoolHandle, address account.Account, r record.Record) error {
	packed, err := r.Pack()
	if nil != err {
		return err
	}
	c.Tx.Put(pool, address.Bytes(), packed)
	return nil
}

// Exists - true if a record is at the address
func (c *Context) Exists(pool *storage.PoolHandle, address account.Account) bool {
	return c.Tx.Has(pool, address.Bytes())
}

// Signer - a derived authority backed by an authority record
//
// the first use stores the bump, later uses must re-derive the same
// bump
func (c *Context) Signer(namespace string, seeds ...[]byte) (account.Account, authority.Proof, error) {
	address, proof, err := c.Derive(namespace, seeds...)
	if nil != err {
		return account.Account{}, authority.Proof{}, err
	}

	pool := storage.Pool.Authorities
	if !c.Exists(pool, address) {
		err := c.Create(pool, address, &record.Authority{Bump: proof.Bump})
		return address, proof, err
	}

	stored, err := GetAuthority(c.Tx, address)
	if nil != err {
		return account.Account{}, authority.Proof{}, err
	}
	if stored.Bump != proof.Bump || !c.Authority.Verify(proof, address) {
		return account.Account{}, authority.Proof{}, fault.ErrAuthorityMismatch
	}
	return address, proof, nil
}

// Vault - the program's token account for the reward mint and the
// proof of its owner
func (c *Context) Vault() (account.Account, authority.Proof, error) {
	owner, proof, err := c.Signer(VaultAuthorityNamespace)
	if nil != err {
		return account.Account{}, authority.Proof{}, err
	}
	address, _, err := c.Derive(VaultTokenAccountNamespace, c.TokenMint.Bytes())
	if nil != err {
		return account.Account{}, authority.Proof{}, err
	}
	if !c.Tx.Has(storage.Pool.TokenAccounts, address.Bytes()) {
		if err := c.Tokens.Open(c.Tx, address, c.TokenMint, owner); nil != err {
			return account.Account{}, authority.Proof{}, err
		}
		c.Created = append(c.Created, address)
	}
	return address, proof, nil
}

// Day - reward day number of a time, rounding towards the past
func Day(t int64) int64 {
	day := t / SecondsPerDay
	if t < 0 && 0 != t%SecondsPerDay {
		day -= 1
	}
	return day
}
