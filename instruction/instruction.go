// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - signed caller requests
//
// Each instruction is packed as Varint64(tag) followed by its fields
// in struct order, then the signer's ed25519 signature over all of
// the preceding bytes.  The nonce is chosen by the client so that two
// otherwise identical requests have different digests.
package instruction

import (
	"github.com/bitmark-inc/cfishd/account"
)

// Packed - packed instruction bytes
type Packed []byte

// TagType - type code for instructions
type TagType uint64

// enumerated instruction types
const (
	// null marks beginning of list - not used as an instruction type
	NullTag = TagType(iota)

	MintAssetTag           = TagType(iota)
	ListAssetTag           = TagType(iota)
	BuyAssetTag            = TagType(iota)
	StakeTag               = TagType(iota)
	UnstakeTag             = TagType(iota)
	DistributeRewardTag    = TagType(iota)
	ReleaseVestedRewardTag = TagType(iota)
	CreateProposalTag      = TagType(iota)
	VoteTag                = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// instruction names as reported to callers
const (
	MintAssetName           = "mint_asset"
	ListAssetName           = "list_asset"
	BuyAssetName            = "buy_asset"
	StakeName               = "stake"
	UnstakeName             = "unstake"
	DistributeRewardName    = "distribute_reward"
	ReleaseVestedRewardName = "release_vested_reward"
	CreateProposalName      = "create_proposal"
	VoteName                = "vote"
)

const maxSignatureLength = 64

// Instruction - generic instruction interface
type Instruction interface {
	Name() string
	Signer() account.Account
	Pack() (Packed, error)
	setSignature(account.Signature)
}

// MintAsset - create a single unit asset
type MintAsset struct {
	Creator   account.Account   `json:"creator"`
	Asset     account.Account   `json:"asset"`
	AssetName string            `json:"name"`
	Symbol    string            `json:"symbol"`
	URI       string            `json:"uri"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// ListAsset - offer an asset for sale
type ListAsset struct {
	Seller    account.Account   `json:"seller"`
	Asset     account.Account   `json:"asset"`
	Price     uint64            `json:"price,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// BuyAsset - buy a listed asset
type BuyAsset struct {
	Buyer     account.Account   `json:"buyer"`
	Asset     account.Account   `json:"asset"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Stake - lock reward tokens
type Stake struct {
	Staker       account.Account   `json:"staker"`
	Amount       uint64            `json:"amount,string"`
	DurationDays uint64            `json:"durationDays"`
	Nonce        uint64            `json:"nonce,string"`
	Signature    account.Signature `json:"signature"`
}

// Unstake - withdraw all staked tokens and rewards
type Unstake struct {
	Staker    account.Account   `json:"staker"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// DistributeReward - grant a vesting reward
type DistributeReward struct {
	User      account.Account   `json:"user"`
	Amount    uint64            `json:"amount,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// ReleaseVestedReward - collect the vested part of one grant
type ReleaseVestedReward struct {
	Beneficiary account.Account   `json:"beneficiary"`
	Index       uint64            `json:"index"`
	Nonce       uint64            `json:"nonce,string"`
	Signature   account.Signature `json:"signature"`
}

// CreateProposal - open a governance proposal
type CreateProposal struct {
	Proposer     account.Account   `json:"proposer"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	VotingPeriod int64             `json:"votingPeriod"`
	Nonce        uint64            `json:"nonce,string"`
	Signature    account.Signature `json:"signature"`
}

// Vote - vote on a proposal
type Vote struct {
	Voter     account.Account   `json:"voter"`
	Proposal  account.Account   `json:"proposal"`
	VoteYes   bool              `json:"voteYes"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

func (m *MintAsset) Name() string           { return MintAssetName }
func (l *ListAsset) Name() string           { return ListAssetName }
func (b *BuyAsset) Name() string            { return BuyAssetName }
func (s *Stake) Name() string               { return StakeName }
func (u *Unstake) Name() string             { return UnstakeName }
func (d *DistributeReward) Name() string    { return DistributeRewardName }
func (r *ReleaseVestedReward) Name() string { return ReleaseVestedRewardName }
func (c *CreateProposal) Name() string      { return CreateProposalName }
func (v *Vote) Name() string                { return VoteName }

func (m *MintAsset) Signer() account.Account           { return m.Creator }
func (l *ListAsset) Signer() account.Account           { return l.Seller }
func (b *BuyAsset) Signer() account.Account            { return b.Buyer }
func (s *Stake) Signer() account.Account               { return s.Staker }
func (u *Unstake) Signer() account.Account             { return u.Staker }
func (d *DistributeReward) Signer() account.Account    { return d.User }
func (r *ReleaseVestedReward) Signer() account.Account { return r.Beneficiary }
func (c *CreateProposal) Signer() account.Account      { return c.Proposer }
func (v *Vote) Signer() account.Account                { return v.Voter }

func (m *MintAsset) setSignature(s account.Signature)           { m.Signature = s }
func (l *ListAsset) setSignature(s account.Signature)           { l.Signature = s }
func (b *BuyAsset) setSignature(s account.Signature)            { b.Signature = s }
func (s *Stake) setSignature(sig account.Signature)             { s.Signature = sig }
func (u *Unstake) setSignature(s account.Signature)             { u.Signature = s }
func (d *DistributeReward) setSignature(s account.Signature)    { d.Signature = s }
func (r *ReleaseVestedReward) setSignature(s account.Signature) { r.Signature = s }
func (c *CreateProposal) setSignature(s account.Signature)      { c.Signature = s }
func (v *Vote) setSignature(s account.Signature)                { v.Signature = s }
