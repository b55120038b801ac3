// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

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
	rateLimitStake = 200
	rateBurstStake = 100
)

// Stake - type for the RPC
type Stake struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create the RPC handler
func New(log *logger.L, l ledger.Ledger) *Stake {
	return &Stake{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitStake, rateBurstStake),
		Ledger:  l,
	}
}

// Stake - add tokens to the staked balance, restarting the reward clock
func (stake *Stake) Stake(arguments *instruction.Stake, reply *ledger.Receipt) error {

	if err := ratelimit.Limit(stake.Limiter); nil != err {
		return err
	}

	stake.Log.Infof("Stake.Stake: staker: %s  amount: %d  days: %d", arguments.Staker, arguments.Amount, arguments.DurationDays)

	receipt, err := ledger.Submit(stake.Ledger, arguments)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// Unstake - return the whole stake plus rewards
func (stake *Stake) Unstake(arguments *instruction.Unstake, reply *ledger.Receipt) error {

	if err := ratelimit.Limit(stake.Limiter); nil != err {
		return err
	}

	stake.Log.Infof("Stake.Unstake: staker: %s", arguments.Staker)

	receipt, err := ledger.Submit(stake.Ledger, arguments)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	Staker account.Account `json:"staker"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Entry *record.StakeEntry `json:"entry"`
}

// Get - the stake entry of a staker
func (stake *Stake) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(stake.Limiter); nil != err {
		return err
	}

	entry, err := stake.Ledger.StakeEntry(arguments.Staker)
	if nil != err {
		return err
	}
	reply.Entry = entry
	return nil
}
