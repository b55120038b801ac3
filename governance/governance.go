// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package governance - proposals and stake weighted votes
//
// A proposal is keyed by its proposer and title, a vote record by
// proposal and voter, so a repeated proposal or a second vote collides
// on its derived address.  Voting power is the voter's stake at the
// time of the vote.
package governance

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/authority"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/program"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/storage"
)

// CreateProposal - open a proposal for votingPeriod seconds
func CreateProposal(c *program.Context, proposer account.Account, title string, description string, votingPeriod int64) (account.Account, error) {
	if votingPeriod <= 0 {
		return account.Account{}, fault.ErrInvalidVotingPeriod
	}
	endTime := c.Now + votingPeriod
	if endTime < c.Now {
		return account.Account{}, fault.ErrOverflow
	}

	address, proof, err := derive(c.Authority, proposer, title)
	if nil != err {
		return account.Account{}, err
	}

	p := &record.Proposal{
		Proposer:    proposer,
		Title:       title,
		Description: description,
		StartTime:   c.Now,
		EndTime:     endTime,
		YesVotes:    0,
		NoVotes:     0,
		Executed:    false,
		Bump:        proof.Bump,
	}
	return address, c.Create(storage.Pool.Proposals, address, p)
}

// Vote - add the voter's current stake to one side of the tally
func Vote(c *program.Context, voter account.Account, proposal account.Account, voteYes bool) error {
	p, err := program.GetProposal(c.Tx, proposal)
	if nil != err {
		return err
	}
	if c.Now >= p.EndTime {
		return fault.ErrVotingClosed
	}

	stakeAddress, _, err := c.Derive(program.StakeEntryNamespace, voter.Bytes())
	if nil != err {
		return err
	}
	stake, err := program.GetStakeEntry(c.Tx, stakeAddress)
	if nil != err {
		return err
	}
	power := stake.Amount

	if voteYes {
		total := p.YesVotes + power
		if total < p.YesVotes {
			return fault.ErrOverflow
		}
		p.YesVotes = total
	} else {
		total := p.NoVotes + power
		if total < p.NoVotes {
			return fault.ErrOverflow
		}
		p.NoVotes = total
	}

	recordAddress, err := VoteRecordAddress(c.Authority, proposal, voter)
	if nil != err {
		return err
	}
	v := &record.VoteRecord{
		Voter:       voter,
		Proposal:    proposal,
		VoteYes:     voteYes,
		VotingPower: power,
	}
	if err := c.Create(storage.Pool.VoteRecords, recordAddress, v); nil != err {
		return err
	}

	c.Amount = power
	return c.Store(storage.Pool.Proposals, proposal, p)
}

// ProposalAddress - where a proposer's proposal with title is kept
func ProposalAddress(auth authority.Authority, proposer account.Account, title string) (account.Account, error) {
	address, _, err := derive(auth, proposer, title)
	return address, err
}

// VoteRecordAddress - where a voter's vote on a proposal is kept
func VoteRecordAddress(auth authority.Authority, proposal account.Account, voter account.Account) (account.Account, error) {
	address, _, err := auth.Derive([]byte(program.VoteRecordNamespace), proposal.Bytes(), voter.Bytes())
	return address, err
}

// titles may be longer than a seed, so the title digest is used
func derive(auth authority.Authority, proposer account.Account, title string) (account.Account, authority.Proof, error) {
	digest := sha3.Sum256([]byte(title))
	return auth.Derive([]byte(program.ProposalNamespace), proposer.Bytes(), digest[:])
}
