// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package staking - lock reward tokens and earn 1% of principal per day
//
// Every stake restarts the reward clock for the whole accumulated
// balance.  Unstake returns the principal from the staker's stake
// account and pays the rewards from the program vault.
package staking

import (
	"math/bits"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/program"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/storage"
)

// reward rate is 1/RatePerDay of principal for each whole day
const RatePerDay = 100

// Stake - lock amount from the staker's token account
func Stake(c *program.Context, staker account.Account, amount uint64, durationDays uint64) error {
	if 0 == amount {
		return fault.ErrAmountTooSmall
	}

	holding, err := c.Tokens.Associated(staker, c.TokenMint)
	if nil != err {
		return err
	}

	stakeAccount, err := openStakeAccount(c, staker)
	if nil != err {
		return err
	}
	if err := c.Tokens.Lock(c.Tx, holding, stakeAccount, staker, amount); nil != err {
		return err
	}

	address, _, err := c.Derive(program.StakeEntryNamespace, staker.Bytes())
	if nil != err {
		return err
	}

	if !c.Exists(storage.Pool.StakeEntries, address) {
		entry := &record.StakeEntry{
			Staker:         staker,
			Amount:         amount,
			StakeStartTime: c.Now,
			DurationDays:   durationDays,
			ClaimedRewards: 0,
		}
		c.Amount = amount
		return c.Create(storage.Pool.StakeEntries, address, entry)
	}

	entry, err := program.GetStakeEntry(c.Tx, address)
	if nil != err {
		return err
	}
	total := entry.Amount + amount
	if total < entry.Amount {
		return fault.ErrOverflow
	}

	entry.Amount = total
	entry.StakeStartTime = c.Now
	entry.DurationDays = durationDays
	entry.ClaimedRewards = 0

	c.Amount = amount
	return c.Store(storage.Pool.StakeEntries, address, entry)
}

// Unstake - return principal plus rewards to the staker
func Unstake(c *program.Context, staker account.Account) error {
	address, _, err := c.Derive(program.StakeEntryNamespace, staker.Bytes())
	if nil != err {
		return err
	}
	entry, err := program.GetStakeEntry(c.Tx, address)
	if nil != err {
		return err
	}
	if 0 == entry.Amount {
		return fault.ErrNothingStaked
	}

	rewards, err := Rewards(entry.Amount, ElapsedDays(entry.StakeStartTime, c.Now))
	if nil != err {
		return err
	}
	total := entry.Amount + rewards
	if total < entry.Amount {
		return fault.ErrOverflow
	}
	claimed := entry.ClaimedRewards + rewards
	if claimed < entry.ClaimedRewards {
		return fault.ErrOverflow
	}

	holding, err := c.Tokens.OpenAssociated(c.Tx, staker, c.TokenMint)
	if nil != err {
		return err
	}

	stakeAccount, _, err := c.Derive(program.StakeAccountNamespace, staker.Bytes())
	if nil != err {
		return err
	}
	_, proof, err := c.Signer(program.StakeAuthorityNamespace, staker.Bytes())
	if nil != err {
		return err
	}
	if err := c.Tokens.Release(c.Tx, stakeAccount, holding, entry.Amount, proof); nil != err {
		return err
	}

	if rewards > 0 {
		vault, vaultProof, err := c.Vault()
		if nil != err {
			return err
		}
		if err := c.Tokens.Release(c.Tx, vault, holding, rewards, vaultProof); nil != err {
			return err
		}
	}

	entry.Amount = 0
	entry.ClaimedRewards = claimed

	c.Amount = total
	return c.Store(storage.Pool.StakeEntries, address, entry)
}

// ElapsedDays - whole days from start to now, never negative
func ElapsedDays(start int64, now int64) uint64 {
	if now <= start {
		return 0
	}
	return uint64(now-start) / program.SecondsPerDay
}

// Rewards - floor(amount * days / RatePerDay) without an intermediate
// overflow; fails only if the result itself does not fit
func Rewards(amount uint64, days uint64) (uint64, error) {
	hi, lo := bits.Mul64(amount, days)
	if hi >= RatePerDay {
		return 0, fault.ErrOverflow
	}
	quotient, _ := bits.Div64(hi, lo, RatePerDay)
	return quotient, nil
}

func openStakeAccount(c *program.Context, staker account.Account) (account.Account, error) {
	stakeAuthority, _, err := c.Signer(program.StakeAuthorityNamespace, staker.Bytes())
	if nil != err {
		return account.Account{}, err
	}
	stakeAccount, _, err := c.Derive(program.StakeAccountNamespace, staker.Bytes())
	if nil != err {
		return account.Account{}, err
	}
	if c.Tx.Has(storage.Pool.TokenAccounts, stakeAccount.Bytes()) {
		return stakeAccount, nil
	}
	if err := c.Tokens.Open(c.Tx, stakeAccount, c.TokenMint, stakeAuthority); nil != err {
		return account.Account{}, err
	}
	c.Created = append(c.Created, stakeAccount)
	return stakeAccount, nil
}
