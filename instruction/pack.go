// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/record"
)

// Pack - pack MintAsset
//
// NOTE: returns the "unsigned" message on signature failure - for
//       signing by clients
func (m *MintAsset) Pack() (Packed, error) {
	if len(m.AssetName) > record.MaxNameLength {
		return nil, fault.ErrNameTooLong
	}
	if len(m.Symbol) > record.MaxSymbolLength {
		return nil, fault.ErrSymbolTooLong
	}
	if len(m.URI) > record.MaxURILength {
		return nil, fault.ErrURITooLong
	}

	message := record.AppendUint64(nil, uint64(MintAssetTag))
	message = record.AppendAccount(message, m.Creator)
	message = record.AppendAccount(message, m.Asset)
	message = record.AppendString(message, m.AssetName)
	message = record.AppendString(message, m.Symbol)
	message = record.AppendString(message, m.URI)
	message = record.AppendUint64(message, m.Nonce)
	return signed(message, m.Creator, m.Signature)
}

// Pack - pack ListAsset
func (l *ListAsset) Pack() (Packed, error) {
	message := record.AppendUint64(nil, uint64(ListAssetTag))
	message = record.AppendAccount(message, l.Seller)
	message = record.AppendAccount(message, l.Asset)
	message = record.AppendUint64(message, l.Price)
	message = record.AppendUint64(message, l.Nonce)
	return signed(message, l.Seller, l.Signature)
}

// Pack - pack BuyAsset
func (b *BuyAsset) Pack() (Packed, error) {
	message := record.AppendUint64(nil, uint64(BuyAssetTag))
	message = record.AppendAccount(message, b.Buyer)
	message = record.AppendAccount(message, b.Asset)
	message = record.AppendUint64(message, b.Nonce)
	return signed(message, b.Buyer, b.Signature)
}

// Pack - pack Stake
func (s *Stake) Pack() (Packed, error) {
	message := record.AppendUint64(nil, uint64(StakeTag))
	message = record.AppendAccount(message, s.Staker)
	message = record.AppendUint64(message, s.Amount)
	message = record.AppendUint64(message, s.DurationDays)
	message = record.AppendUint64(message, s.Nonce)
	return signed(message, s.Staker, s.Signature)
}

// Pack - pack Unstake
func (u *Unstake) Pack() (Packed, error) {
	message := record.AppendUint64(nil, uint64(UnstakeTag))
	message = record.AppendAccount(message, u.Staker)
	message = record.AppendUint64(message, u.Nonce)
	return signed(message, u.Staker, u.Signature)
}

// Pack - pack DistributeReward
func (d *DistributeReward) Pack() (Packed, error) {
	message := record.AppendUint64(nil, uint64(DistributeRewardTag))
	message = record.AppendAccount(message, d.User)
	message = record.AppendUint64(message, d.Amount)
	message = record.AppendUint64(message, d.Nonce)
	return signed(message, d.User, d.Signature)
}

// Pack - pack ReleaseVestedReward
func (r *ReleaseVestedReward) Pack() (Packed, error) {
	message := record.AppendUint64(nil, uint64(ReleaseVestedRewardTag))
	message = record.AppendAccount(message, r.Beneficiary)
	message = record.AppendUint64(message, r.Index)
	message = record.AppendUint64(message, r.Nonce)
	return signed(message, r.Beneficiary, r.Signature)
}

// Pack - pack CreateProposal
func (c *CreateProposal) Pack() (Packed, error) {
	if len(c.Title) > record.MaxTitleLength {
		return nil, fault.ErrTitleTooLong
	}
	if len(c.Description) > record.MaxDescriptionLength {
		return nil, fault.ErrDescriptionTooLong
	}

	message := record.AppendUint64(nil, uint64(CreateProposalTag))
	message = record.AppendAccount(message, c.Proposer)
	message = record.AppendString(message, c.Title)
	message = record.AppendString(message, c.Description)
	message = record.AppendInt64(message, c.VotingPeriod)
	message = record.AppendUint64(message, c.Nonce)
	return signed(message, c.Proposer, c.Signature)
}

// Pack - pack Vote
func (v *Vote) Pack() (Packed, error) {
	message := record.AppendUint64(nil, uint64(VoteTag))
	message = record.AppendAccount(message, v.Voter)
	message = record.AppendAccount(message, v.Proposal)
	message = record.AppendBool(message, v.VoteYes)
	message = record.AppendUint64(message, v.Nonce)
	return signed(message, v.Voter, v.Signature)
}

// check the signature and append it last
func signed(message []byte, signer account.Account, signature account.Signature) (Packed, error) {
	if len(signature) > maxSignatureLength {
		return nil, fault.ErrInvalidSignature
	}
	if err := signer.CheckSignature(message, signature); nil != err {
		return message, err
	}
	return record.AppendBytes(message, signature), nil
}

// Sign - sign an instruction with the signer's private key
// and return the packed result
func Sign(i Instruction, key *account.PrivateKey) (Packed, error) {
	if key.Account() != i.Signer() {
		return nil, fault.ErrNotOwner
	}

	i.setSignature(nil)
	message, err := i.Pack()
	if fault.ErrInvalidSignature != err {
		if nil == err {
			err = fault.ErrInvalidSignature
		}
		return nil, err
	}

	i.setSignature(key.Sign(message))
	return i.Pack()
}
