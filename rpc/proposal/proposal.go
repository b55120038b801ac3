// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposal

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/instruction"
	"github.com/bitmark-inc/cfishd/ledger"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitProposal = 200
	rateBurstProposal = 100

	maximumProposals = 100
)

// Proposal - type for the RPC
type Proposal struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create the RPC handler
func New(log *logger.L, l ledger.Ledger) *Proposal {
	return &Proposal{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitProposal, rateBurstProposal),
		Ledger:  l,
	}
}

// Create - open a proposal for voting
func (proposal *Proposal) Create(arguments *instruction.CreateProposal, reply *ledger.Receipt) error {

	if err := ratelimit.Limit(proposal.Limiter); nil != err {
		return err
	}

	proposal.Log.Infof("Proposal.Create: proposer: %s  title: %q  period: %d", arguments.Proposer, arguments.Title, arguments.VotingPeriod)

	receipt, err := ledger.Submit(proposal.Ledger, arguments)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// Vote - vote with the current staked balance
func (proposal *Proposal) Vote(arguments *instruction.Vote, reply *ledger.Receipt) error {

	if err := ratelimit.Limit(proposal.Limiter); nil != err {
		return err
	}

	proposal.Log.Infof("Proposal.Vote: proposal: %s  voter: %s  yes: %t", arguments.Proposal, arguments.Voter, arguments.VoteYes)

	receipt, err := ledger.Submit(proposal.Ledger, arguments)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// ---

// GetArguments - a proposal by address, or by proposer and title
// when the address is not given; a non-zero voter also fetches
// that voter's record
type GetArguments struct {
	Address  account.Account `json:"address"`
	Proposer account.Account `json:"proposer"`
	Title    string          `json:"title"`
	Voter    account.Account `json:"voter"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Address  account.Account    `json:"address"`
	Proposal *record.Proposal   `json:"proposal"`
	Vote     *record.VoteRecord `json:"vote,omitempty"`
}

// Get - a proposal and its tally
func (proposal *Proposal) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(proposal.Limiter); nil != err {
		return err
	}

	address := arguments.Address
	if address.IsZero() {
		a, err := proposal.Ledger.ProposalAddress(arguments.Proposer, arguments.Title)
		if nil != err {
			return err
		}
		address = a
	}

	p, err := proposal.Ledger.Proposal(address)
	if nil != err {
		return err
	}

	reply.Address = address
	reply.Proposal = p

	if !arguments.Voter.IsZero() {
		v, err := proposal.Ledger.VoteRecord(address, arguments.Voter)
		if nil != err {
			return err
		}
		reply.Vote = v
	}
	return nil
}

// ---

// ListArguments - arguments for RPC request
type ListArguments struct {
	Start *account.Account `json:"start"`
	Count int              `json:"count"`
}

// ListReply - results from list RPC request
type ListReply struct {
	Proposals []ledger.ProposalItem `json:"proposals"`
	NextStart *account.Account      `json:"nextStart,omitempty"`
}

// List - proposals in address order
func (proposal *Proposal) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(proposal.Limiter, arguments.Count, maximumProposals); nil != err {
		return err
	}

	items, next, err := proposal.Ledger.Proposals(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Proposals = items
	reply.NextStart = next
	return nil
}
