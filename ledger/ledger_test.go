// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/fixtures"
	"github.com/bitmark-inc/cfishd/instruction"
	"github.com/bitmark-inc/cfishd/ledger"
	"github.com/bitmark-inc/cfishd/messagebus"
)

const day = 24 * time.Hour

var (
	alice = fixtures.Key(1)
	bob   = fixtures.Key(2)
	asset = fixtures.Account(0x41)
)

type harness struct {
	ledger ledger.Ledger
	clock  *clock.Mock
	bus    *messagebus.BroadcastQueue
	nonce  uint64
}

func configuration() *ledger.Configuration {
	return &ledger.Configuration{
		ProgramId: fixtures.ProgramId.String(),
		TokenMint: fixtures.TokenMint.String(),
		Vault:     1000000,
		Currency: []ledger.Allocation{
			{Account: bob.Account().String(), Amount: 500},
		},
		Tokens: []ledger.Allocation{
			{Account: alice.Account().String(), Amount: 1000},
			{Account: bob.Account().String(), Amount: 300},
		},
	}
}

func setup(t *testing.T) *harness {
	fixtures.SetupTestLogger()
	fixtures.SetupTestStorage(t)

	mock := clock.NewMock()
	mock.Set(fixtures.Genesis)
	bus := &messagebus.BroadcastQueue{}

	l, err := ledger.New(configuration(), mock, bus)
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}
	return &harness{
		ledger: l,
		clock:  mock,
		bus:    bus,
	}
}

func teardown() {
	fixtures.TeardownTestStorage()
	fixtures.TeardownTestLogger()
}

// sign and execute, giving every request a fresh nonce
func (h *harness) run(t *testing.T, item instruction.Instruction, key *account.PrivateKey) (*ledger.Receipt, error) {
	h.nonce += 1
	switch i := item.(type) {
	case *instruction.MintAsset:
		i.Nonce = h.nonce
	case *instruction.ListAsset:
		i.Nonce = h.nonce
	case *instruction.BuyAsset:
		i.Nonce = h.nonce
	case *instruction.Stake:
		i.Nonce = h.nonce
	case *instruction.Unstake:
		i.Nonce = h.nonce
	case *instruction.DistributeReward:
		i.Nonce = h.nonce
	case *instruction.ReleaseVestedReward:
		i.Nonce = h.nonce
	case *instruction.CreateProposal:
		i.Nonce = h.nonce
	case *instruction.Vote:
		i.Nonce = h.nonce
	}
	packed, err := instruction.Sign(item, key)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return h.ledger.Execute(packed)
}

func (h *harness) tokens(owner account.Account) uint64 {
	n, _ := h.ledger.TokenBalance(owner, fixtures.TokenMint)
	return n
}

func TestGenesis(t *testing.T) {
	h := setup(t)
	defer teardown()

	info, err := h.ledger.Info()
	assert.Nil(t, err, "info")
	assert.Equal(t, uint64(1000000), info.VaultBalance, "vault")
	assert.Equal(t, fixtures.ProgramId, info.ProgramId, "program id")
	assert.Equal(t, uint64(500), h.ledger.CurrencyBalance(bob.Account()), "bob currency")
	assert.Equal(t, uint64(1000), h.tokens(alice.Account()), "alice tokens")

	// reopening does not apply genesis again
	again, err := ledger.New(configuration(), h.clock, nil)
	assert.Nil(t, err, "reopen")
	info, err = again.Info()
	assert.Nil(t, err, "info")
	assert.Equal(t, uint64(1000000), info.VaultBalance, "vault after reopen")
	assert.Equal(t, uint64(500), again.CurrencyBalance(bob.Account()), "bob currency after reopen")
}

func TestStakeScenario(t *testing.T) {
	h := setup(t)
	defer teardown()

	_, err := h.run(t, &instruction.Stake{Staker: alice.Account(), Amount: 1000, DurationDays: 10}, alice)
	assert.Nil(t, err, "stake")

	h.clock.Add(5 * day)

	receipt, err := h.run(t, &instruction.Unstake{Staker: alice.Account()}, alice)
	assert.Nil(t, err, "unstake")
	assert.Equal(t, uint64(1050), receipt.Amount, "returned")
	assert.Equal(t, uint64(1050), h.tokens(alice.Account()), "alice tokens")

	entry, err := h.ledger.StakeEntry(alice.Account())
	assert.Nil(t, err, "stake entry")
	assert.Equal(t, uint64(0), entry.Amount, "amount")
	assert.Equal(t, uint64(50), entry.ClaimedRewards, "claimed")

	info, _ := h.ledger.Info()
	assert.Equal(t, uint64(1000000-50), info.VaultBalance, "vault paid rewards")
}

func TestMarketScenario(t *testing.T) {
	h := setup(t)
	defer teardown()

	_, err := h.run(t, &instruction.MintAsset{Creator: alice.Account(), Asset: asset, AssetName: "X", Symbol: "X"}, alice)
	assert.Nil(t, err, "mint")
	_, err = h.run(t, &instruction.ListAsset{Seller: alice.Account(), Asset: asset, Price: 500}, alice)
	assert.Nil(t, err, "list")

	_, err = h.run(t, &instruction.BuyAsset{Buyer: bob.Account(), Asset: asset}, bob)
	assert.Nil(t, err, "buy")
	assert.Equal(t, uint64(500), h.ledger.CurrencyBalance(alice.Account()), "seller paid")
	held, _ := h.ledger.TokenBalance(bob.Account(), asset)
	assert.Equal(t, uint64(1), held, "buyer holds asset")

	listing, err := h.ledger.Listing(asset)
	assert.Nil(t, err, "listing")
	assert.True(t, listing.Sold, "sold")

	_, err = h.run(t, &instruction.BuyAsset{Buyer: bob.Account(), Asset: asset}, bob)
	assert.True(t, errors.Is(err, fault.ErrAlreadySold), "second buy: %v", err)
	assert.Equal(t, "buy_asset: listing already sold", err.Error(), "error text")
	assert.Equal(t, uint64(500), h.ledger.CurrencyBalance(alice.Account()), "seller paid twice")
}

func TestInstructionErrorCarriesName(t *testing.T) {
	h := setup(t)
	defer teardown()

	_, err := h.run(t, &instruction.Unstake{Staker: bob.Account()}, bob)
	var ie *fault.InstructionError
	assert.True(t, errors.As(err, &ie), "not an instruction error: %v", err)
	assert.Equal(t, instruction.UnstakeName, ie.Instruction, "name")
	assert.Equal(t, fault.ErrStakeEntryNotFound, ie.Err, "kind")
	assert.True(t, fault.IsErrNotFound(err), "class")
}

func TestReplayRejected(t *testing.T) {
	h := setup(t)
	defer teardown()

	packed, err := instruction.Sign(&instruction.DistributeReward{User: bob.Account(), Amount: 10, Nonce: 77}, bob)
	assert.Nil(t, err, "sign")

	_, err = h.ledger.Execute(packed)
	assert.Nil(t, err, "first")
	_, err = h.ledger.Execute(packed)
	assert.True(t, errors.Is(err, fault.ErrTransactionAlreadyExists), "replay: %v", err)

	entries, err := h.ledger.VestingEntries(bob.Account())
	assert.Nil(t, err, "entries")
	assert.Equal(t, 1, len(entries), "replay created an entry")

	// a different nonce is a new request
	_, err = h.run(t, &instruction.DistributeReward{User: bob.Account(), Amount: 10}, bob)
	assert.Nil(t, err, "new nonce")
	entries, _ = h.ledger.VestingEntries(bob.Account())
	assert.Equal(t, 2, len(entries), "entries")
}

func TestBadSignature(t *testing.T) {
	h := setup(t)
	defer teardown()

	packed, err := instruction.Sign(&instruction.Unstake{Staker: bob.Account()}, bob)
	assert.Nil(t, err, "sign")
	packed[len(packed)-1] ^= 0xff

	_, err = h.ledger.Execute(packed)
	assert.Equal(t, fault.ErrInvalidSignature, err, "tampered signature")
}

func TestVestingThroughLedger(t *testing.T) {
	h := setup(t)
	defer teardown()

	for i := 0; i < 5; i += 1 {
		_, err := h.run(t, &instruction.DistributeReward{User: bob.Account(), Amount: 1800}, bob)
		assert.Nil(t, err, "grant %d", i)
	}
	_, err := h.run(t, &instruction.DistributeReward{User: bob.Account(), Amount: 1800}, bob)
	assert.True(t, errors.Is(err, fault.ErrDailyLimitExceeded), "sixth grant: %v", err)

	_, err = h.run(t, &instruction.ReleaseVestedReward{Beneficiary: bob.Account(), Index: 0}, bob)
	assert.True(t, errors.Is(err, fault.ErrVestingNotStarted), "early release: %v", err)

	h.clock.Add(day + 90*day)
	receipt, err := h.run(t, &instruction.ReleaseVestedReward{Beneficiary: bob.Account(), Index: 0}, bob)
	assert.Nil(t, err, "release")
	assert.Equal(t, uint64(900), receipt.Amount, "half vested")
	assert.Equal(t, uint64(300+900), h.tokens(bob.Account()), "bob tokens")
}

func TestGovernanceThroughLedger(t *testing.T) {
	h := setup(t)
	defer teardown()

	_, err := h.run(t, &instruction.Stake{Staker: alice.Account(), Amount: 400, DurationDays: 1}, alice)
	assert.Nil(t, err, "stake")

	receipt, err := h.run(t, &instruction.CreateProposal{Proposer: bob.Account(), Title: "t", Description: "d", VotingPeriod: 3600}, bob)
	assert.Nil(t, err, "propose")

	address, err := h.ledger.ProposalAddress(bob.Account(), "t")
	assert.Nil(t, err, "address")
	assert.Contains(t, receipt.Created, address, "receipt created")

	_, err = h.run(t, &instruction.Vote{Voter: alice.Account(), Proposal: address, VoteYes: true}, alice)
	assert.Nil(t, err, "vote")

	p, err := h.ledger.Proposal(address)
	assert.Nil(t, err, "proposal")
	assert.Equal(t, uint64(400), p.YesVotes, "yes")

	v, err := h.ledger.VoteRecord(address, alice.Account())
	assert.Nil(t, err, "vote record")
	assert.Equal(t, uint64(400), v.VotingPower, "power")

	h.clock.Add(time.Hour)
	_, err = h.run(t, &instruction.Vote{Voter: bob.Account(), Proposal: address, VoteYes: false}, bob)
	assert.True(t, errors.Is(err, fault.ErrVotingClosed), "late vote: %v", err)
}

func TestProposalsPaging(t *testing.T) {
	h := setup(t)
	defer teardown()

	titles := []string{"a", "b", "c", "d", "e"}
	for _, title := range titles {
		_, err := h.run(t, &instruction.CreateProposal{Proposer: alice.Account(), Title: title, VotingPeriod: 60}, alice)
		assert.Nil(t, err, "propose %s", title)
	}

	seen := map[account.Account]bool{}
	var start *account.Account
	pages := 0
	for {
		items, next, err := h.ledger.Proposals(start, 2)
		assert.Nil(t, err, "page")
		for _, item := range items {
			seen[item.Address] = true
		}
		pages += 1
		if nil == next {
			break
		}
		start = next
	}
	assert.Equal(t, len(titles), len(seen), "proposals")
	assert.Equal(t, 3, pages, "pages")

	_, _, err := h.ledger.Proposals(nil, 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func TestReceiptBroadcast(t *testing.T) {
	h := setup(t)
	defer teardown()

	queue := h.bus.Chan(10)
	defer h.bus.Release(queue)

	receipt, err := h.run(t, &instruction.Stake{Staker: bob.Account(), Amount: 100, DurationDays: 3}, bob)
	assert.Nil(t, err, "stake")

	_, err = h.run(t, &instruction.Stake{Staker: bob.Account(), Amount: 0, DurationDays: 3}, bob)
	assert.True(t, errors.Is(err, fault.ErrAmountTooSmall), "zero stake: %v", err)

	m := <-queue
	assert.Equal(t, instruction.StakeName, m.Command, "command")

	var sent ledger.Receipt
	assert.Nil(t, json.Unmarshal(m.Parameters[0], &sent), "unmarshal")
	assert.Equal(t, receipt.Id, sent.Id, "id")
	assert.Equal(t, uint64(100), sent.Amount, "amount")

	select {
	case m := <-queue:
		t.Errorf("failed instruction broadcast: %q", m.Command)
	default:
	}
}
