// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - binary layouts of the durable ledger entities
//
// each record is Varint64(tag) followed by its fields in struct
// order; accounts are a fixed 32 bytes, numbers are Varint64, strings
// and byte fields are Varint64(length) prefixed
package record

import (
	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
)

// enumerated record types
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	AssetTag         = TagType(iota)
	ListingTag       = TagType(iota)
	AuthorityTag     = TagType(iota)
	StakeEntryTag    = TagType(iota)
	RewardTrackerTag = TagType(iota)
	VestingEntryTag  = TagType(iota)
	ProposalTag      = TagType(iota)
	VoteRecordTag    = TagType(iota)
	TokenAccountTag  = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// string limits, in bytes
const (
	MaxNameLength        = 100
	MaxSymbolLength      = 10
	MaxURILength         = 200
	MaxTitleLength       = 256
	MaxDescriptionLength = 1024
)

// the account space allotted to each record when it is created;
// a packed record never grows beyond it
const (
	AssetSpace         = 8 + 32 + 32 + 4 + MaxNameLength + 4 + MaxSymbolLength + 4 + MaxURILength
	ListingSpace       = 8 + 32 + 32 + 8 + 32 + 32 + 1
	AuthoritySpace     = 8 + 1
	StakeEntrySpace    = 8 + 32 + 8 + 8 + 8 + 8
	RewardTrackerSpace = 8 + 8 + 8 + 8
	VestingEntrySpace  = 8 + 32 + 32 + 8 + 8 + 8 + 8 + 8
	ProposalSpace      = 8 + 32 + 4 + MaxTitleLength + 4 + MaxDescriptionLength + 8 + 8 + 8 + 8 + 1 + 1
	VoteRecordSpace    = 8 + 32 + 32 + 1 + 8
	TokenAccountSpace  = 8 + 32 + 32 + 8
)

// Asset - metadata of a unique asset
type Asset struct {
	Asset   account.Account `json:"asset"`
	Creator account.Account `json:"creator"`
	Name    string          `json:"name"`
	Symbol  string          `json:"symbol"`
	URI     string          `json:"uri"`
}

// Listing - an asset held in escrow for sale
type Listing struct {
	Seller          account.Account `json:"seller"`
	Asset           account.Account `json:"asset"`
	Price           uint64          `json:"price"`
	EscrowAccount   account.Account `json:"escrowAccount"`
	EscrowAuthority account.Account `json:"escrowAuthority"`
	Sold            bool            `json:"sold"`
}

// Authority - a derived signer, only the bump is kept
type Authority struct {
	Bump uint8 `json:"bump"`
}

// StakeEntry - the staked balance of one staker
type StakeEntry struct {
	Staker         account.Account `json:"staker"`
	Amount         uint64          `json:"amount"`
	StakeStartTime int64           `json:"stakeStartTime"`
	DurationDays   uint64          `json:"durationDays"`
	ClaimedRewards uint64          `json:"claimedRewards"`
}

// RewardTracker - per beneficiary daily grant count
//
// Issued counts every grant ever made and numbers the vesting entries
type RewardTracker struct {
	LastRewardDay int64  `json:"lastRewardDay"`
	DailyCount    uint64 `json:"dailyCount"`
	Issued        uint64 `json:"issued"`
}

// VestingEntry - one linearly vesting reward grant
type VestingEntry struct {
	Beneficiary    account.Account `json:"beneficiary"`
	Mint           account.Account `json:"mint"`
	Index          uint64          `json:"index"`
	TotalAmount    uint64          `json:"totalAmount"`
	ReleasedAmount uint64          `json:"releasedAmount"`
	StartTime      int64           `json:"startTime"`
	Duration       int64           `json:"duration"`
}

// Proposal - a governance proposal and its running tally
type Proposal struct {
	Proposer    account.Account `json:"proposer"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartTime   int64           `json:"startTime"`
	EndTime     int64           `json:"endTime"`
	YesVotes    uint64          `json:"yesVotes"`
	NoVotes     uint64          `json:"noVotes"`
	Executed    bool            `json:"executed"`
	Bump        uint8           `json:"bump"`
}

// VoteRecord - one voter's vote on one proposal
type VoteRecord struct {
	Voter       account.Account `json:"voter"`
	Proposal    account.Account `json:"proposal"`
	VoteYes     bool            `json:"voteYes"`
	VotingPower uint64          `json:"votingPower"`
}

// TokenAccount - a balance of one mint held for one owner
type TokenAccount struct {
	Mint   account.Account `json:"mint"`
	Owner  account.Account `json:"owner"`
	Amount uint64          `json:"amount"`
}

// Record - anything that can be stored
type Record interface {
	Pack() (Packed, error)
}

// Pack - pack asset metadata
func (r *Asset) Pack() (Packed, error) {
	if len(r.Name) > MaxNameLength {
		return nil, fault.ErrNameTooLong
	}
	if len(r.Symbol) > MaxSymbolLength {
		return nil, fault.ErrSymbolTooLong
	}
	if len(r.URI) > MaxURILength {
		return nil, fault.ErrURITooLong
	}

	message := AppendUint64(nil, uint64(AssetTag))
	message = AppendAccount(message, r.Asset)
	message = AppendAccount(message, r.Creator)
	message = AppendString(message, r.Name)
	message = AppendString(message, r.Symbol)
	message = AppendString(message, r.URI)
	return fit(message, AssetSpace)
}

// Pack - pack a listing
func (r *Listing) Pack() (Packed, error) {
	message := AppendUint64(nil, uint64(ListingTag))
	message = AppendAccount(message, r.Seller)
	message = AppendAccount(message, r.Asset)
	message = AppendUint64(message, r.Price)
	message = AppendAccount(message, r.EscrowAccount)
	message = AppendAccount(message, r.EscrowAuthority)
	message = AppendBool(message, r.Sold)
	return fit(message, ListingSpace)
}

// Pack - pack a derived signer
func (r *Authority) Pack() (Packed, error) {
	message := AppendUint64(nil, uint64(AuthorityTag))
	message = append(message, r.Bump)
	return fit(message, AuthoritySpace)
}

// Pack - pack a stake entry
func (r *StakeEntry) Pack() (Packed, error) {
	message := AppendUint64(nil, uint64(StakeEntryTag))
	message = AppendAccount(message, r.Staker)
	message = AppendUint64(message, r.Amount)
	message = AppendInt64(message, r.StakeStartTime)
	message = AppendUint64(message, r.DurationDays)
	message = AppendUint64(message, r.ClaimedRewards)
	return fit(message, StakeEntrySpace)
}

// Pack - pack a reward tracker
func (r *RewardTracker) Pack() (Packed, error) {
	message := AppendUint64(nil, uint64(RewardTrackerTag))
	message = AppendInt64(message, r.LastRewardDay)
	message = AppendUint64(message, r.DailyCount)
	message = AppendUint64(message, r.Issued)
	return fit(message, RewardTrackerSpace)
}

// Pack - pack a vesting entry
func (r *VestingEntry) Pack() (Packed, error) {
	message := AppendUint64(nil, uint64(VestingEntryTag))
	message = AppendAccount(message, r.Beneficiary)
	message = AppendAccount(message, r.Mint)
	message = AppendUint64(message, r.Index)
	message = AppendUint64(message, r.TotalAmount)
	message = AppendUint64(message, r.ReleasedAmount)
	message = AppendInt64(message, r.StartTime)
	message = AppendInt64(message, r.Duration)
	return fit(message, VestingEntrySpace)
}

// Pack - pack a proposal
func (r *Proposal) Pack() (Packed, error) {
	if len(r.Title) > MaxTitleLength {
		return nil, fault.ErrTitleTooLong
	}
	if len(r.Description) > MaxDescriptionLength {
		return nil, fault.ErrDescriptionTooLong
	}

	message := AppendUint64(nil, uint64(ProposalTag))
	message = AppendAccount(message, r.Proposer)
	message = AppendString(message, r.Title)
	message = AppendString(message, r.Description)
	message = AppendInt64(message, r.StartTime)
	message = AppendInt64(message, r.EndTime)
	message = AppendUint64(message, r.YesVotes)
	message = AppendUint64(message, r.NoVotes)
	message = AppendBool(message, r.Executed)
	message = append(message, r.Bump)
	return fit(message, ProposalSpace)
}

// Pack - pack a vote record
func (r *VoteRecord) Pack() (Packed, error) {
	message := AppendUint64(nil, uint64(VoteRecordTag))
	message = AppendAccount(message, r.Voter)
	message = AppendAccount(message, r.Proposal)
	message = AppendBool(message, r.VoteYes)
	message = AppendUint64(message, r.VotingPower)
	return fit(message, VoteRecordSpace)
}

// Pack - pack a token account
func (r *TokenAccount) Pack() (Packed, error) {
	message := AppendUint64(nil, uint64(TokenAccountTag))
	message = AppendAccount(message, r.Mint)
	message = AppendAccount(message, r.Owner)
	message = AppendUint64(message, r.Amount)
	return fit(message, TokenAccountSpace)
}

func fit(message []byte, space int) (Packed, error) {
	if len(message) > space {
		return nil, fault.ErrRecordTooLarge
	}
	return Packed(message), nil
}
