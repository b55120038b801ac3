// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"

	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/governance"
	"github.com/bitmark-inc/cfishd/instruction"
	"github.com/bitmark-inc/cfishd/marketplace"
	"github.com/bitmark-inc/cfishd/program"
	"github.com/bitmark-inc/cfishd/staking"
	"github.com/bitmark-inc/cfishd/storage"
	"github.com/bitmark-inc/cfishd/vesting"
)

// Execute - run one signed instruction to completion
//
// failures are returned as fault.InstructionError and leave storage
// unchanged
func (l *ledger) Execute(packed instruction.Packed) (*Receipt, error) {
	item, err := packed.Unpack()
	if nil != err {
		l.log.Debugf("rejected: %x  error: %s", packed, err)
		return nil, err
	}
	name := item.Name()
	digest := packed.Digest()

	tx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, fault.Instruction(name, err)
	}

	if tx.Has(storage.Pool.Instructions, digest[:]) {
		tx.Abort()
		l.log.Warnf("%s: %s  error: %s", name, digest, fault.ErrTransactionAlreadyExists)
		return nil, fault.Instruction(name, fault.ErrTransactionAlreadyExists)
	}

	c := l.context(tx)
	if err := dispatch(c, item); nil != err {
		tx.Abort()
		l.log.Warnf("%s: %s  signer: %s  error: %s", name, digest, item.Signer(), err)
		return nil, fault.Instruction(name, err)
	}

	tx.Put(storage.Pool.Instructions, digest[:], packed)
	if err := tx.Commit(); nil != err {
		l.log.Criticalf("%s: %s  commit error: %s", name, digest, err)
		return nil, fault.Instruction(name, err)
	}

	receipt := &Receipt{
		Id:          digest,
		Instruction: name,
		Signer:      item.Signer(),
		Timestamp:   c.Now,
		Created:     c.Created,
		Amount:      c.Amount,
	}
	l.log.Infof("%s: %s  signer: %s  amount: %d  created: %d", name, digest, receipt.Signer, receipt.Amount, len(receipt.Created))

	if nil != l.bus {
		data, err := json.Marshal(receipt)
		if nil != err {
			l.log.Errorf("%s: %s  receipt marshal error: %s", name, digest, err)
		} else {
			l.bus.Send(name, data)
		}
	}

	return receipt, nil
}

func dispatch(c *program.Context, item instruction.Instruction) error {
	switch i := item.(type) {

	case *instruction.MintAsset:
		return marketplace.Mint(c, i.Creator, i.Asset, i.AssetName, i.Symbol, i.URI)

	case *instruction.ListAsset:
		return marketplace.List(c, i.Seller, i.Asset, i.Price)

	case *instruction.BuyAsset:
		return marketplace.Buy(c, i.Buyer, i.Asset)

	case *instruction.Stake:
		return staking.Stake(c, i.Staker, i.Amount, i.DurationDays)

	case *instruction.Unstake:
		return staking.Unstake(c, i.Staker)

	case *instruction.DistributeReward:
		return vesting.Distribute(c, i.User, i.Amount)

	case *instruction.ReleaseVestedReward:
		return vesting.Release(c, i.Beneficiary, i.Index)

	case *instruction.CreateProposal:
		_, err := governance.CreateProposal(c, i.Proposer, i.Title, i.Description, i.VotingPeriod)
		return err

	case *instruction.Vote:
		return governance.Vote(c, i.Voter, i.Proposal, i.VoteYes)

	default:
		return fault.ErrUnknownInstruction
	}
}
