// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/record"
)

// Unpack - turn a byte slice into a verified instruction
//
// must cast result to correct type
//
// e.g.
//   switch i := result.(type) {
//   case *instruction.Stake:
func (packed Packed) Unpack() (Instruction, error) {
	r := record.NewReader(packed)

	tag := TagType(r.Uint64())
	if nil != r.Err() {
		return nil, r.Err()
	}

	var result Instruction
	switch tag {

	case MintAssetTag:
		result = &MintAsset{
			Creator:   r.Account(),
			Asset:     r.Account(),
			AssetName: r.String(record.MaxNameLength, fault.ErrNameTooLong),
			Symbol:    r.String(record.MaxSymbolLength, fault.ErrSymbolTooLong),
			URI:       r.String(record.MaxURILength, fault.ErrURITooLong),
			Nonce:     r.Uint64(),
		}

	case ListAssetTag:
		result = &ListAsset{
			Seller: r.Account(),
			Asset:  r.Account(),
			Price:  r.Uint64(),
			Nonce:  r.Uint64(),
		}

	case BuyAssetTag:
		result = &BuyAsset{
			Buyer: r.Account(),
			Asset: r.Account(),
			Nonce: r.Uint64(),
		}

	case StakeTag:
		result = &Stake{
			Staker:       r.Account(),
			Amount:       r.Uint64(),
			DurationDays: r.Uint64(),
			Nonce:        r.Uint64(),
		}

	case UnstakeTag:
		result = &Unstake{
			Staker: r.Account(),
			Nonce:  r.Uint64(),
		}

	case DistributeRewardTag:
		result = &DistributeReward{
			User:   r.Account(),
			Amount: r.Uint64(),
			Nonce:  r.Uint64(),
		}

	case ReleaseVestedRewardTag:
		result = &ReleaseVestedReward{
			Beneficiary: r.Account(),
			Index:       r.Uint64(),
			Nonce:       r.Uint64(),
		}

	case CreateProposalTag:
		result = &CreateProposal{
			Proposer:     r.Account(),
			Title:        r.String(record.MaxTitleLength, fault.ErrTitleTooLong),
			Description:  r.String(record.MaxDescriptionLength, fault.ErrDescriptionTooLong),
			VotingPeriod: r.Int64(),
			Nonce:        r.Uint64(),
		}

	case VoteTag:
		result = &Vote{
			Voter:    r.Account(),
			Proposal: r.Account(),
			VoteYes:  r.Bool(),
			Nonce:    r.Uint64(),
		}

	default:
		return nil, fault.ErrUnknownInstruction
	}

	signedLength := r.Offset()
	signature := r.Bytes(maxSignatureLength, fault.ErrInvalidSignature)
	if nil != r.Err() {
		return nil, r.Err()
	}
	if r.Offset() != len(packed) {
		return nil, fault.ErrUnexpectedRecordType
	}

	if err := result.Signer().CheckSignature(packed[:signedLength], signature); nil != err {
		return nil, err
	}
	result.setSignature(signature)
	return result, nil
}
