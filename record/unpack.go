// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/cfishd/fault"
)

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   switch r := result.(type) {
//   case *record.Listing:
func (packed Packed) Unpack() (Record, error) {
	r := NewReader(packed)

	tag := TagType(r.Uint64())
	if nil != r.Err() {
		return nil, r.Err()
	}

	var result Record
	switch tag {

	case AssetTag:
		result = &Asset{
			Asset:   r.Account(),
			Creator: r.Account(),
			Name:    r.String(MaxNameLength, fault.ErrNameTooLong),
			Symbol:  r.String(MaxSymbolLength, fault.ErrSymbolTooLong),
			URI:     r.String(MaxURILength, fault.ErrURITooLong),
		}

	case ListingTag:
		result = &Listing{
			Seller:          r.Account(),
			Asset:           r.Account(),
			Price:           r.Uint64(),
			EscrowAccount:   r.Account(),
			EscrowAuthority: r.Account(),
			Sold:            r.Bool(),
		}

	case AuthorityTag:
		result = &Authority{
			Bump: r.Byte(),
		}

	case StakeEntryTag:
		result = &StakeEntry{
			Staker:         r.Account(),
			Amount:         r.Uint64(),
			StakeStartTime: r.Int64(),
			DurationDays:   r.Uint64(),
			ClaimedRewards: r.Uint64(),
		}

	case RewardTrackerTag:
		result = &RewardTracker{
			LastRewardDay: r.Int64(),
			DailyCount:    r.Uint64(),
			Issued:        r.Uint64(),
		}

	case VestingEntryTag:
		result = &VestingEntry{
			Beneficiary:    r.Account(),
			Mint:           r.Account(),
			Index:          r.Uint64(),
			TotalAmount:    r.Uint64(),
			ReleasedAmount: r.Uint64(),
			StartTime:      r.Int64(),
			Duration:       r.Int64(),
		}

	case ProposalTag:
		result = &Proposal{
			Proposer:    r.Account(),
			Title:       r.String(MaxTitleLength, fault.ErrTitleTooLong),
			Description: r.String(MaxDescriptionLength, fault.ErrDescriptionTooLong),
			StartTime:   r.Int64(),
			EndTime:     r.Int64(),
			YesVotes:    r.Uint64(),
			NoVotes:     r.Uint64(),
			Executed:    r.Bool(),
			Bump:        r.Byte(),
		}

	case VoteRecordTag:
		result = &VoteRecord{
			Voter:       r.Account(),
			Proposal:    r.Account(),
			VoteYes:     r.Bool(),
			VotingPower: r.Uint64(),
		}

	case TokenAccountTag:
		result = &TokenAccount{
			Mint:   r.Account(),
			Owner:  r.Account(),
			Amount: r.Uint64(),
		}

	default:
		return nil, fault.ErrUnexpectedRecordType
	}

	if nil != r.Err() {
		return nil, r.Err()
	}
	if r.Offset() != len(packed) {
		return nil, fault.ErrUnexpectedRecordType
	}
	return result, nil
}
