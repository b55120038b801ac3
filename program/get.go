// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/storage"
	"github.com/bitmark-inc/logger"
)

// read and unpack one record, a corrupt record is fatal
func get(r storage.Reader, pool *storage.PoolHandle, address account.Account, notFound error) (record.Record, error) {
	packed := r.Get(pool, address.Bytes())
	if nil == packed {
		return nil, notFound
	}
	unpacked, err := record.Packed(packed).Unpack()
	logger.PanicIfError("program: unpack record", err)
	return unpacked, nil
}

func wrongType(address account.Account, r record.Record) {
	logger.Panicf("program: record at: %s has unexpected type: %T", address, r)
}

// GetAsset - asset metadata at its metadata address
func GetAsset(r storage.Reader, address account.Account) (*record.Asset, error) {
	unpacked, err := get(r, storage.Pool.Assets, address, fault.ErrAssetNotFound)
	if nil != err {
		return nil, err
	}
	a, ok := unpacked.(*record.Asset)
	if !ok {
		wrongType(address, unpacked)
	}
	return a, nil
}

// GetListing - a listing
func GetListing(r storage.Reader, address account.Account) (*record.Listing, error) {
	unpacked, err := get(r, storage.Pool.Listings, address, fault.ErrListingNotFound)
	if nil != err {
		return nil, err
	}
	l, ok := unpacked.(*record.Listing)
	if !ok {
		wrongType(address, unpacked)
	}
	return l, nil
}

// GetAuthority - a stored authority bump
func GetAuthority(r storage.Reader, address account.Account) (*record.Authority, error) {
	unpacked, err := get(r, storage.Pool.Authorities, address, fault.ErrAuthorityMismatch)
	if nil != err {
		return nil, err
	}
	a, ok := unpacked.(*record.Authority)
	if !ok {
		wrongType(address, unpacked)
	}
	return a, nil
}

// GetStakeEntry - a stake entry
func GetStakeEntry(r storage.Reader, address account.Account) (*record.StakeEntry, error) {
	unpacked, err := get(r, storage.Pool.StakeEntries, address, fault.ErrStakeEntryNotFound)
	if nil != err {
		return nil, err
	}
	s, ok := unpacked.(*record.StakeEntry)
	if !ok {
		wrongType(address, unpacked)
	}
	return s, nil
}

// GetRewardTracker - a reward tracker
func GetRewardTracker(r storage.Reader, address account.Account) (*record.RewardTracker, error) {
	unpacked, err := get(r, storage.Pool.RewardTrackers, address, fault.ErrRewardTrackerNotFound)
	if nil != err {
		return nil, err
	}
	t, ok := unpacked.(*record.RewardTracker)
	if !ok {
		wrongType(address, unpacked)
	}
	return t, nil
}

// GetVestingEntry - a vesting entry
func GetVestingEntry(r storage.Reader, address account.Account) (*record.VestingEntry, error) {
	unpacked, err := get(r, storage.Pool.VestingEntries, address, fault.ErrVestingEntryNotFound)
	if nil != err {
		return nil, err
	}
	v, ok := unpacked.(*record.VestingEntry)
	if !ok {
		wrongType(address, unpacked)
	}
	return v, nil
}

// GetProposal - a proposal
func GetProposal(r storage.Reader, address account.Account) (*record.Proposal, error) {
	unpacked, err := get(r, storage.Pool.Proposals, address, fault.ErrProposalNotFound)
	if nil != err {
		return nil, err
	}
	p, ok := unpacked.(*record.Proposal)
	if !ok {
		wrongType(address, unpacked)
	}
	return p, nil
}

// GetVoteRecord - a vote record
func GetVoteRecord(r storage.Reader, address account.Account) (*record.VoteRecord, error) {
	unpacked, err := get(r, storage.Pool.VoteRecords, address, fault.ErrVoteRecordNotFound)
	if nil != err {
		return nil, err
	}
	v, ok := unpacked.(*record.VoteRecord)
	if !ok {
		wrongType(address, unpacked)
	}
	return v, nil
}
