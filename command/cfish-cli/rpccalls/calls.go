// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/instruction"
	"github.com/bitmark-inc/cfishd/ledger"
	"github.com/bitmark-inc/cfishd/rpc/assets"
	"github.com/bitmark-inc/cfishd/rpc/market"
	"github.com/bitmark-inc/cfishd/rpc/node"
	"github.com/bitmark-inc/cfishd/rpc/proposal"
	"github.com/bitmark-inc/cfishd/rpc/reward"
	"github.com/bitmark-inc/cfishd/rpc/stake"
)

// sign an instruction with a fresh nonce and send it
func (client *Client) submit(method string, item instruction.Instruction, key *account.PrivateKey) (*ledger.Receipt, error) {
	if _, err := instruction.Sign(item, key); nil != err {
		return nil, err
	}

	client.printJson(method+" Request", item)

	reply := &ledger.Receipt{}
	if err := client.client.Call(method, item, reply); nil != err {
		return nil, err
	}

	client.printJson(method+" Reply", reply)
	return reply, nil
}

// Mint - create a one unit asset; the asset address comes from a new key
func (client *Client) Mint(key *account.PrivateKey, asset account.Account, name string, symbol string, uri string) (*ledger.Receipt, error) {
	return client.submit("Assets.Mint", &instruction.MintAsset{
		Creator:   key.Account(),
		Asset:     asset,
		AssetName: name,
		Symbol:    symbol,
		URI:       uri,
		Nonce:     client.nonce(),
	}, key)
}

// List - offer an asset for sale
func (client *Client) List(key *account.PrivateKey, asset account.Account, price uint64) (*ledger.Receipt, error) {
	return client.submit("Market.List", &instruction.ListAsset{
		Seller: key.Account(),
		Asset:  asset,
		Price:  price,
		Nonce:  client.nonce(),
	}, key)
}

// Buy - purchase a listed asset
func (client *Client) Buy(key *account.PrivateKey, asset account.Account) (*ledger.Receipt, error) {
	return client.submit("Market.Buy", &instruction.BuyAsset{
		Buyer: key.Account(),
		Asset: asset,
		Nonce: client.nonce(),
	}, key)
}

// Stake - lock tokens
func (client *Client) Stake(key *account.PrivateKey, amount uint64, durationDays uint64) (*ledger.Receipt, error) {
	return client.submit("Stake.Stake", &instruction.Stake{
		Staker:       key.Account(),
		Amount:       amount,
		DurationDays: durationDays,
		Nonce:        client.nonce(),
	}, key)
}

// Unstake - return the stake with its reward
func (client *Client) Unstake(key *account.PrivateKey) (*ledger.Receipt, error) {
	return client.submit("Stake.Unstake", &instruction.Unstake{
		Staker: key.Account(),
		Nonce:  client.nonce(),
	}, key)
}

// Distribute - create a vesting reward
func (client *Client) Distribute(key *account.PrivateKey, amount uint64) (*ledger.Receipt, error) {
	return client.submit("Reward.Distribute", &instruction.DistributeReward{
		User:   key.Account(),
		Amount: amount,
		Nonce:  client.nonce(),
	}, key)
}

// Release - pay out the vested part of a reward
func (client *Client) Release(key *account.PrivateKey, index uint64) (*ledger.Receipt, error) {
	return client.submit("Reward.Release", &instruction.ReleaseVestedReward{
		Beneficiary: key.Account(),
		Index:       index,
		Nonce:       client.nonce(),
	}, key)
}

// Propose - open a governance proposal
func (client *Client) Propose(key *account.PrivateKey, title string, description string, votingPeriod int64) (*ledger.Receipt, error) {
	return client.submit("Proposal.Create", &instruction.CreateProposal{
		Proposer:     key.Account(),
		Title:        title,
		Description:  description,
		VotingPeriod: votingPeriod,
		Nonce:        client.nonce(),
	}, key)
}

// Vote - cast one vote
func (client *Client) Vote(key *account.PrivateKey, address account.Account, yes bool) (*ledger.Receipt, error) {
	return client.submit("Proposal.Vote", &instruction.Vote{
		Voter:    key.Account(),
		Proposal: address,
		VoteYes:  yes,
		Nonce:    client.nonce(),
	}, key)
}

// call a query method
func (client *Client) query(method string, arguments interface{}, reply interface{}) error {
	client.printJson(method+" Request", arguments)
	if err := client.client.Call(method, arguments, reply); nil != err {
		return err
	}
	client.printJson(method+" Reply", reply)
	return nil
}

// GetInfo - request status from cfishd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := client.query("Node.Info", node.InfoArguments{}, reply)
	return reply, err
}

// GetBalance - token and currency balance, a zero mint selects the program token
func (client *Client) GetBalance(owner account.Account, mint account.Account) (*node.BalanceReply, error) {
	reply := &node.BalanceReply{}
	err := client.query("Node.Balance", node.BalanceArguments{Owner: owner, Mint: mint}, reply)
	return reply, err
}

// GetAsset - asset metadata and the owner's holding
func (client *Client) GetAsset(asset account.Account, owner account.Account) (*assets.GetReply, error) {
	reply := &assets.GetReply{}
	err := client.query("Assets.Get", assets.GetArguments{Asset: asset, Owner: owner}, reply)
	return reply, err
}

// GetListing - the listing for an asset
func (client *Client) GetListing(asset account.Account) (*market.GetReply, error) {
	reply := &market.GetReply{}
	err := client.query("Market.Get", market.GetArguments{Asset: asset}, reply)
	return reply, err
}

// GetStake - a staker's entry
func (client *Client) GetStake(staker account.Account) (*stake.GetReply, error) {
	reply := &stake.GetReply{}
	err := client.query("Stake.Get", stake.GetArguments{Staker: staker}, reply)
	return reply, err
}

// GetRewards - tracker and vesting entries of a user
func (client *Client) GetRewards(user account.Account) (*reward.GetReply, error) {
	reply := &reward.GetReply{}
	err := client.query("Reward.Get", reward.GetArguments{User: user}, reply)
	return reply, err
}

// GetProposal - a proposal and optionally a voter's record
func (client *Client) GetProposal(arguments proposal.GetArguments) (*proposal.GetReply, error) {
	reply := &proposal.GetReply{}
	err := client.query("Proposal.Get", arguments, reply)
	return reply, err
}

// ListProposals - one page of proposals
func (client *Client) ListProposals(start *account.Account, count int) (*proposal.ListReply, error) {
	reply := &proposal.ListReply{}
	err := client.query("Proposal.List", proposal.ListArguments{Start: start, Count: count}, reply)
	return reply, err
}
