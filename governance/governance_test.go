// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/fixtures"
	"github.com/bitmark-inc/cfishd/governance"
	"github.com/bitmark-inc/cfishd/program"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/staking"
	"github.com/bitmark-inc/cfishd/storage"
)

const (
	hour = 3600
	week = 7 * program.SecondsPerDay
)

var (
	proposer = fixtures.Key(4).Account()
	start    = fixtures.Genesis.Unix()
)

func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	fixtures.SetupTestStorage(t)
}

func teardown() {
	fixtures.TeardownTestStorage()
	fixtures.TeardownTestLogger()
}

func propose(t *testing.T, title string, period int64) (account.Account, error) {
	var address account.Account
	err := fixtures.Run(t, start, func(c *program.Context) error {
		var err error
		address, err = governance.CreateProposal(c, proposer, title, "description of "+title, period)
		return err
	})
	return address, err
}

func vote(t *testing.T, now int64, voter account.Account, proposal account.Account, yes bool) error {
	return fixtures.Run(t, now, func(c *program.Context) error {
		return governance.Vote(c, voter, proposal, yes)
	})
}

func stake(t *testing.T, who account.Account, amount uint64) {
	fixtures.FundTokens(t, who, amount)
	err := fixtures.Run(t, start, func(c *program.Context) error {
		return staking.Stake(c, who, amount, 30)
	})
	assert.Nil(t, err, "stake")
}

func proposal(t *testing.T, address account.Account) *record.Proposal {
	p, err := program.GetProposal(storage.Committed, address)
	assert.Nil(t, err, "proposal")
	return p
}

func TestCreateProposal(t *testing.T) {
	setup(t)
	defer teardown()

	address, err := propose(t, "raise rewards", week)
	assert.Nil(t, err, "create")

	expected, err := governance.ProposalAddress(fixtures.Authority(), proposer, "raise rewards")
	assert.Nil(t, err, "derive")
	assert.Equal(t, expected, address, "proposal address")

	p := proposal(t, address)
	assert.Equal(t, proposer, p.Proposer, "proposer")
	assert.Equal(t, start, p.StartTime, "start time")
	assert.Equal(t, start+week, p.EndTime, "end time")
	assert.Equal(t, uint64(0), p.YesVotes+p.NoVotes, "initial tally")
	assert.False(t, p.Executed, "executed")

	_, err = propose(t, "raise rewards", hour)
	assert.Equal(t, fault.ErrAccountAlreadyInUse, err, "same title twice")

	other, err := propose(t, "lower rewards", hour)
	assert.Nil(t, err, "other title")
	assert.NotEqual(t, address, other, "titles share an address")
}

func TestCreateProposalFailures(t *testing.T) {
	setup(t)
	defer teardown()

	_, err := propose(t, "zero", 0)
	assert.Equal(t, fault.ErrInvalidVotingPeriod, err, "zero period")
	_, err = propose(t, "negative", -1)
	assert.Equal(t, fault.ErrInvalidVotingPeriod, err, "negative period")

	long := string(make([]byte, record.MaxTitleLength+1))
	_, err = propose(t, long, hour)
	assert.Equal(t, fault.ErrTitleTooLong, err, "long title")
}

func TestVoteTally(t *testing.T) {
	setup(t)
	defer teardown()

	alice := fixtures.Key(5).Account()
	bob := fixtures.Key(6).Account()
	stake(t, alice, 300)
	stake(t, bob, 200)

	address, err := propose(t, "tally", week)
	assert.Nil(t, err, "create")

	assert.Nil(t, vote(t, start+hour, alice, address, true), "alice votes")
	assert.Nil(t, vote(t, start+hour, bob, address, false), "bob votes")

	p := proposal(t, address)
	assert.Equal(t, uint64(300), p.YesVotes, "yes")
	assert.Equal(t, uint64(200), p.NoVotes, "no")

	err = vote(t, start+2*hour, alice, address, false)
	assert.Equal(t, fault.ErrAccountAlreadyInUse, err, "second vote")
	p = proposal(t, address)
	assert.Equal(t, uint64(300), p.YesVotes, "yes after second vote")
	assert.Equal(t, uint64(200), p.NoVotes, "no after second vote")

	recordAddress, err := governance.VoteRecordAddress(fixtures.Authority(), address, alice)
	assert.Nil(t, err, "derive")
	v, err := program.GetVoteRecord(storage.Committed, recordAddress)
	assert.Nil(t, err, "vote record")
	assert.True(t, v.VoteYes, "choice")
	assert.Equal(t, uint64(300), v.VotingPower, "recorded power")
}

func TestVotingClosed(t *testing.T) {
	setup(t)
	defer teardown()

	voter := fixtures.Key(5).Account()
	stake(t, voter, 100)

	address, err := propose(t, "closing", hour)
	assert.Nil(t, err, "create")

	assert.Equal(t, fault.ErrVotingClosed, vote(t, start+hour, voter, address, true), "vote at end time")
	p := proposal(t, address)
	assert.Equal(t, uint64(0), p.YesVotes, "tally changed")

	assert.Nil(t, vote(t, start+hour-1, voter, address, true), "vote before end time")
}

func TestVotingPowerIsLive(t *testing.T) {
	setup(t)
	defer teardown()

	voter := fixtures.Key(5).Account()
	stake(t, voter, 100)

	first, err := propose(t, "first", week)
	assert.Nil(t, err, "create")
	second, err := propose(t, "second", week)
	assert.Nil(t, err, "create")
	third, err := propose(t, "third", week)
	assert.Nil(t, err, "create")

	assert.Nil(t, vote(t, start+hour, voter, first, true), "first vote")

	stake(t, voter, 50)
	assert.Nil(t, vote(t, start+hour, voter, second, true), "vote after restake")

	err = fixtures.Run(t, start+hour, func(c *program.Context) error {
		return staking.Unstake(c, voter)
	})
	assert.Nil(t, err, "unstake")
	assert.Nil(t, vote(t, start+hour, voter, third, true), "zero weight vote")

	assert.Equal(t, uint64(100), proposal(t, first).YesVotes, "first tally")
	assert.Equal(t, uint64(150), proposal(t, second).YesVotes, "second tally")
	assert.Equal(t, uint64(0), proposal(t, third).YesVotes, "third tally")
}

func TestVoteFailures(t *testing.T) {
	setup(t)
	defer teardown()

	voter := fixtures.Key(5).Account()
	assert.Equal(t, fault.ErrProposalNotFound, vote(t, start, voter, fixtures.Account(9), true), "missing proposal")

	address, err := propose(t, "unstaked voter", week)
	assert.Nil(t, err, "create")
	assert.Equal(t, fault.ErrStakeEntryNotFound, vote(t, start, voter, address, true), "no stake entry")
}

func TestTallyEqualsRecordedPowerProperty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("yes plus no equals sum of vote record power", prop.ForAll(
		func(stakes []uint64, choices []bool) bool {
			fixtures.SetupTestStorage(t)
			defer fixtures.TeardownTestStorage()

			address, err := propose(t, "property", week)
			if nil != err {
				return false
			}

			voters := make([]account.Account, 0, len(stakes))
			for i, amount := range stakes {
				voter := fixtures.Key(byte(0x10 + i)).Account()
				stake(t, voter, amount)
				voters = append(voters, voter)
				if nil != vote(t, start+1, voter, address, i < len(choices) && choices[i]) {
					return false
				}
				// duplicate votes must not change anything
				if fault.ErrAccountAlreadyInUse != vote(t, start+2, voter, address, true) {
					return false
				}
			}

			sum := uint64(0)
			for _, voter := range voters {
				recordAddress, err := governance.VoteRecordAddress(fixtures.Authority(), address, voter)
				if nil != err {
					return false
				}
				v, err := program.GetVoteRecord(storage.Committed, recordAddress)
				if nil != err {
					return false
				}
				sum += v.VotingPower
			}
			p := proposal(t, address)
			return p.YesVotes+p.NoVotes == sum
		},
		gen.SliceOfN(5, gen.UInt64Range(1, 1000000)),
		gen.SliceOfN(5, gen.Bool()),
	))

	properties.TestingRun(t)
}
