// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - verifies, executes and commits instructions
//
// Each instruction runs in one storage transaction: it is decoded and
// its signature checked, rejected if the same packed bytes were
// already committed, dispatched to its component, then either
// committed with a receipt or aborted with nothing written.  Storage
// allows a single transaction at a time so instructions are
// serialised.
package ledger

//go:generate mockgen -source=ledger.go -destination=mocks/ledger.go -package=mocks

import (
	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/instruction"
	"github.com/bitmark-inc/cfishd/record"
)

// Ledger - operations available to the RPC layer
type Ledger interface {
	Execute(packed instruction.Packed) (*Receipt, error)
	Info() (*Info, error)

	Asset(asset account.Account) (*record.Asset, error)
	Listing(asset account.Account) (*record.Listing, error)
	StakeEntry(staker account.Account) (*record.StakeEntry, error)
	RewardTracker(user account.Account) (*record.RewardTracker, error)
	VestingEntries(beneficiary account.Account) ([]*record.VestingEntry, error)
	Proposal(address account.Account) (*record.Proposal, error)
	ProposalAddress(proposer account.Account, title string) (account.Account, error)
	Proposals(start *account.Account, count int) ([]ProposalItem, *account.Account, error)
	VoteRecord(proposal account.Account, voter account.Account) (*record.VoteRecord, error)
	TokenBalance(owner account.Account, mint account.Account) (uint64, error)
	CurrencyBalance(owner account.Account) uint64
}

// Receipt - the result of one committed instruction
type Receipt struct {
	Id          instruction.Digest `json:"id"`
	Instruction string             `json:"instruction"`
	Signer      account.Account    `json:"signer"`
	Timestamp   int64              `json:"timestamp"`
	Created     []account.Account  `json:"created,omitempty"`
	Amount      uint64             `json:"amount,string"`
}

// Info - static program data and the vault balance
type Info struct {
	ProgramId    account.Account `json:"programId"`
	TokenMint    account.Account `json:"tokenMint"`
	Vault        account.Account `json:"vault"`
	VaultBalance uint64          `json:"vaultBalance,string"`
	Time         int64           `json:"time"`
}

// ProposalItem - a proposal and its address
type ProposalItem struct {
	Address  account.Account  `json:"address"`
	Proposal *record.Proposal `json:"proposal"`
}

// Submit - pack a signed instruction and execute it
func Submit(l Ledger, item instruction.Instruction) (*Receipt, error) {
	packed, err := item.Pack()
	if nil != err {
		return nil, err
	}
	return l.Execute(packed)
}
