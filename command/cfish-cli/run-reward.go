// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runReward(c *cli.Context) error {
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

	receipt, err := client.Distribute(key, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runRelease(c *cli.Context) error {
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

	receipt, err := client.Release(key, c.Uint64("index"))
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runVesting(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	user, err := accountOrIdentity(c, m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetRewards(user)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
