// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reward

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/instruction"
	"github.com/bitmark-inc/cfishd/ledger"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitReward = 200
	rateBurstReward = 100
)

// Reward - type for the RPC
type Reward struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create the RPC handler
func New(log *logger.L, l ledger.Ledger) *Reward {
	return &Reward{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitReward, rateBurstReward),
		Ledger:  l,
	}
}

// Distribute - grant a vesting reward
func (reward *Reward) Distribute(arguments *instruction.DistributeReward, reply *ledger.Receipt) error {

	if err := ratelimit.Limit(reward.Limiter); nil != err {
		return err
	}

	reward.Log.Infof("Reward.Distribute: user: %s  amount: %d", arguments.User, arguments.Amount)

	receipt, err := ledger.Submit(reward.Ledger, arguments)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// Release - pay out the vested part of one grant
func (reward *Reward) Release(arguments *instruction.ReleaseVestedReward, reply *ledger.Receipt) error {

	if err := ratelimit.Limit(reward.Limiter); nil != err {
		return err
	}

	reward.Log.Infof("Reward.Release: beneficiary: %s  index: %d", arguments.Beneficiary, arguments.Index)

	receipt, err := ledger.Submit(reward.Ledger, arguments)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	User account.Account `json:"user"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Tracker *record.RewardTracker  `json:"tracker"`
	Entries []*record.VestingEntry `json:"entries"`
}

// Get - the daily grant count and all vesting entries of a user
func (reward *Reward) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(reward.Limiter); nil != err {
		return err
	}

	tracker, err := reward.Ledger.RewardTracker(arguments.User)
	if fault.ErrRewardTrackerNotFound == err {
		tracker = &record.RewardTracker{}
	} else if nil != err {
		return err
	}

	entries, err := reward.Ledger.VestingEntries(arguments.User)
	if nil != err {
		return err
	}

	reply.Tracker = tracker
	reply.Entries = entries
	return nil
}
