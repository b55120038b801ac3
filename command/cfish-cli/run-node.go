// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/cfishd/account"
)

func runNodeInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, info)
}

func runBalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := accountOrIdentity(c, m, c.String("owner"))
	if nil != err {
		return err
	}

	mint := account.Account{}
	if s := c.String("mint"); "" != s {
		mint, err = account.FromBase58(s)
		if nil != err {
			return err
		}
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetBalance(owner, mint)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
