// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/counter"
	"github.com/bitmark-inc/cfishd/ledger"
	"github.com/bitmark-inc/cfishd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   string
	Ledger  ledger.Ledger
	counter *counter.Counter
}

// New - create the RPC handler
func New(log *logger.L, l ledger.Ledger, start time.Time, chain string, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   chain,
		Ledger:  l,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain        string          `json:"chain"`
	Version      string          `json:"version"`
	Uptime       string          `json:"uptime"`
	RPCs         uint64          `json:"rpcs"`
	ProgramId    account.Account `json:"programId"`
	TokenMint    account.Account `json:"tokenMint"`
	Vault        account.Account `json:"vault"`
	VaultBalance uint64          `json:"vaultBalance"`
	Time         int64           `json:"time"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	info, err := node.Ledger.Info()
	if nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.ProgramId = info.ProgramId
	reply.TokenMint = info.TokenMint
	reply.Vault = info.Vault
	reply.VaultBalance = info.VaultBalance
	reply.Time = info.Time
	return nil
}

// ---

// BalanceArguments - an owner and optionally a mint, the reward token
// when the mint is not given
type BalanceArguments struct {
	Owner account.Account `json:"owner"`
	Mint  account.Account `json:"mint"`
}

// BalanceReply - results from balance request
type BalanceReply struct {
	Owner    account.Account `json:"owner"`
	Mint     account.Account `json:"mint"`
	Tokens   uint64          `json:"tokens"`
	Currency uint64          `json:"currency"`
}

// Balance - token and native currency balances of an owner
func (node *Node) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	mint := arguments.Mint
	if mint.IsZero() {
		info, err := node.Ledger.Info()
		if nil != err {
			return err
		}
		mint = info.TokenMint
	}

	tokens, err := node.Ledger.TokenBalance(arguments.Owner, mint)
	if nil != err {
		return err
	}

	reply.Owner = arguments.Owner
	reply.Mint = mint
	reply.Tokens = tokens
	reply.Currency = node.Ledger.CurrencyBalance(arguments.Owner)
	return nil
}
