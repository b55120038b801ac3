// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vesting - rate limited reward grants released linearly
package vesting

import (
	"encoding/binary"
	"math/bits"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/authority"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/program"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/storage"
)

// grant limits and schedule
const (
	MaximumDailyRewards = 5
	StartDelay          = program.SecondsPerDay
	Duration            = 180 * program.SecondsPerDay
)

// Distribute - grant amount to user as a new vesting entry
//
// the daily count is incremented before it is checked, so the fifth
// grant of a day succeeds and the sixth fails
func Distribute(c *program.Context, user account.Account, amount uint64) error {
	if 0 == amount {
		return fault.ErrAmountTooSmall
	}

	trackerAddress, _, err := c.Derive(program.RewardTrackerNamespace, user.Bytes())
	if nil != err {
		return err
	}

	today := program.Day(c.Now)
	tracker := &record.RewardTracker{}
	exists := c.Exists(storage.Pool.RewardTrackers, trackerAddress)
	if exists {
		tracker, err = program.GetRewardTracker(c.Tx, trackerAddress)
		if nil != err {
			return err
		}
	}

	if !exists || tracker.LastRewardDay != today {
		tracker.LastRewardDay = today
		tracker.DailyCount = 1
	} else {
		tracker.DailyCount += 1
		if tracker.DailyCount > MaximumDailyRewards {
			return fault.ErrDailyLimitExceeded
		}
	}

	index := tracker.Issued
	tracker.Issued += 1

	entryAddress, err := EntryAddress(c.Authority, user, c.TokenMint, index)
	if nil != err {
		return err
	}
	entry := &record.VestingEntry{
		Beneficiary:    user,
		Mint:           c.TokenMint,
		Index:          index,
		TotalAmount:    amount,
		ReleasedAmount: 0,
		StartTime:      c.Now + StartDelay,
		Duration:       Duration,
	}
	if err := c.Create(storage.Pool.VestingEntries, entryAddress, entry); nil != err {
		return err
	}

	c.Amount = amount
	if exists {
		return c.Store(storage.Pool.RewardTrackers, trackerAddress, tracker)
	}
	return c.Create(storage.Pool.RewardTrackers, trackerAddress, tracker)
}

// Release - pay out whatever has vested since the last release
func Release(c *program.Context, beneficiary account.Account, index uint64) error {
	address, err := EntryAddress(c.Authority, beneficiary, c.TokenMint, index)
	if nil != err {
		return err
	}
	entry, err := program.GetVestingEntry(c.Tx, address)
	if nil != err {
		return err
	}
	if c.Now < entry.StartTime {
		return fault.ErrVestingNotStarted
	}

	vested := Vested(entry.TotalAmount, c.Now-entry.StartTime, entry.Duration)
	if vested <= entry.ReleasedAmount {
		return fault.ErrNoReleasableAmount
	}
	releasable := vested - entry.ReleasedAmount

	holding, err := c.Tokens.OpenAssociated(c.Tx, beneficiary, entry.Mint)
	if nil != err {
		return err
	}
	vault, proof, err := c.Vault()
	if nil != err {
		return err
	}
	if err := c.Tokens.Release(c.Tx, vault, holding, releasable, proof); nil != err {
		return err
	}

	entry.ReleasedAmount = vested
	c.Amount = releasable
	return c.Store(storage.Pool.VestingEntries, address, entry)
}

// Vested - floor(total * elapsed / duration) with elapsed clamped to
// [0, duration], so the result never exceeds total
func Vested(total uint64, elapsed int64, duration int64) uint64 {
	if duration <= 0 || elapsed >= duration {
		return total
	}
	if elapsed <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(total, uint64(elapsed))
	quotient, _ := bits.Div64(hi, lo, uint64(duration))
	return quotient
}

// EntryAddress - address of a beneficiary's index'th grant
func EntryAddress(auth authority.Authority, beneficiary account.Account, mint account.Account, index uint64) (account.Account, error) {
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, index)
	address, _, err := auth.Derive([]byte(program.VestingEntryNamespace), beneficiary.Bytes(), mint.Bytes(), n)
	return address, err
}
