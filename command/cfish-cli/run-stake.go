// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runStake(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrRequiredAmount
	}

	key, err := signingKey(c, m)
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.Stake(key, amount, c.Uint64("days"))
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runUnstake(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := signingKey(c, m)
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.Unstake(key)
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runStakeInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	staker, err := accountOrIdentity(c, m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetStake(staker)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
