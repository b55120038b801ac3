// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/governance"
	"github.com/bitmark-inc/cfishd/program"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/storage"
	"github.com/bitmark-inc/cfishd/vesting"
)

// all queries read committed data only

const maximumProposals = 100

func (l *ledger) derive(namespace string, seeds ...[]byte) (account.Account, error) {
	address, _, err := l.authority.Derive([]byte(namespace), seeds...)
	return address, err
}

// Info - program identity and vault balance
func (l *ledger) Info() (*Info, error) {
	vault, err := l.vaultAddress()
	if nil != err {
		return nil, err
	}
	balance, err := l.tokens.Balance(storage.Committed, vault)
	if nil != err {
		return nil, err
	}
	return &Info{
		ProgramId:    l.programId,
		TokenMint:    l.tokenMint,
		Vault:        vault,
		VaultBalance: balance,
		Time:         l.clock.Now().Unix(),
	}, nil
}

// Asset - metadata of an asset
func (l *ledger) Asset(asset account.Account) (*record.Asset, error) {
	address, err := l.derive(program.AssetMetadataNamespace, asset.Bytes())
	if nil != err {
		return nil, err
	}
	return program.GetAsset(storage.Committed, address)
}

// Listing - the listing of an asset
func (l *ledger) Listing(asset account.Account) (*record.Listing, error) {
	address, err := l.derive(program.ListingNamespace, asset.Bytes())
	if nil != err {
		return nil, err
	}
	return program.GetListing(storage.Committed, address)
}

// StakeEntry - a staker's entry
func (l *ledger) StakeEntry(staker account.Account) (*record.StakeEntry, error) {
	address, err := l.derive(program.StakeEntryNamespace, staker.Bytes())
	if nil != err {
		return nil, err
	}
	return program.GetStakeEntry(storage.Committed, address)
}

// RewardTracker - a user's daily grant tracker
func (l *ledger) RewardTracker(user account.Account) (*record.RewardTracker, error) {
	address, err := l.derive(program.RewardTrackerNamespace, user.Bytes())
	if nil != err {
		return nil, err
	}
	return program.GetRewardTracker(storage.Committed, address)
}

// VestingEntries - every grant made to a beneficiary, oldest first
func (l *ledger) VestingEntries(beneficiary account.Account) ([]*record.VestingEntry, error) {
	tracker, err := l.RewardTracker(beneficiary)
	if fault.ErrRewardTrackerNotFound == err {
		return []*record.VestingEntry{}, nil
	}
	if nil != err {
		return nil, err
	}

	entries := make([]*record.VestingEntry, 0, tracker.Issued)
	for index := uint64(0); index < tracker.Issued; index += 1 {
		address, err := vesting.EntryAddress(l.authority, beneficiary, l.tokenMint, index)
		if nil != err {
			return nil, err
		}
		entry, err := program.GetVestingEntry(storage.Committed, address)
		if nil != err {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Proposal - a proposal by address
func (l *ledger) Proposal(address account.Account) (*record.Proposal, error) {
	return program.GetProposal(storage.Committed, address)
}

// ProposalAddress - address of a proposer's proposal with title
func (l *ledger) ProposalAddress(proposer account.Account, title string) (account.Account, error) {
	return governance.ProposalAddress(l.authority, proposer, title)
}

// Proposals - up to count proposals in address order starting at
// start, and the address to continue from
func (l *ledger) Proposals(start *account.Account, count int) ([]ProposalItem, *account.Account, error) {
	if count <= 0 || count > maximumProposals {
		return nil, nil, fault.ErrInvalidCount
	}

	cursor := storage.Pool.Proposals.NewFetchCursor()
	if nil != start {
		cursor.Seek(start.Bytes())
	}

	// one extra to find the next start
	elements, err := cursor.Fetch(count + 1)
	if nil != err {
		return nil, nil, err
	}

	var next *account.Account
	items := make([]ProposalItem, 0, len(elements))
	for i, e := range elements {
		address, err := account.FromBytes(e.Key)
		if nil != err {
			return nil, nil, err
		}
		if i == count {
			next = &address
			break
		}
		p, err := program.GetProposal(storage.Committed, address)
		if nil != err {
			return nil, nil, err
		}
		items = append(items, ProposalItem{
			Address:  address,
			Proposal: p,
		})
	}
	return items, next, nil
}

// VoteRecord - a voter's vote on a proposal
func (l *ledger) VoteRecord(proposal account.Account, voter account.Account) (*record.VoteRecord, error) {
	address, err := governance.VoteRecordAddress(l.authority, proposal, voter)
	if nil != err {
		return nil, err
	}
	return program.GetVoteRecord(storage.Committed, address)
}

// TokenBalance - balance of an owner's associated account for a mint
//
// an account that was never opened has a zero balance
func (l *ledger) TokenBalance(owner account.Account, mint account.Account) (uint64, error) {
	address, err := l.tokens.Associated(owner, mint)
	if nil != err {
		return 0, err
	}
	n, err := l.tokens.Balance(storage.Committed, address)
	if fault.ErrTokenAccountNotFound == err {
		return 0, nil
	}
	return n, err
}

// CurrencyBalance - native currency balance
func (l *ledger) CurrencyBalance(owner account.Account) uint64 {
	return l.currency.Balance(storage.Committed, owner)
}
