// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/rpc/proposal"
)

func runPropose(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	title := c.String("title")
	if "" == title {
		return ErrRequiredTitle
	}
	description := c.String("description")
	if "" == description {
		return ErrRequiredDescription
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

	receipt, err := client.Propose(key, title, description, c.Int64("period"))
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runVote(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	address, err := requiredAccount(c.String("proposal"))
	if nil != err {
		return err
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

	receipt, err := client.Vote(key, address, !c.Bool("no"))
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runProposal(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	arguments := proposal.GetArguments{}

	switch p, proposer := c.String("proposal"), c.String("proposer"); {
	case "" != p && "" == proposer:
		a, err := account.FromBase58(p)
		if nil != err {
			return err
		}
		arguments.Address = a

	case "" == p && "" != proposer:
		a, err := accountOrIdentity(c, m, proposer)
		if nil != err {
			return err
		}
		title := c.String("title")
		if "" == title {
			return ErrRequiredTitle
		}
		arguments.Proposer = a
		arguments.Title = title

	default:
		return fault.ErrIncompatibleOptions
	}

	if voter := c.String("voter"); "" != voter {
		a, err := accountOrIdentity(c, m, voter)
		if nil != err {
			return err
		}
		arguments.Voter = a
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetProposal(arguments)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runProposals(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	var start *account.Account
	if s := c.String("start"); "" != s {
		a, err := account.FromBase58(s)
		if nil != err {
			return err
		}
		start = &a
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListProposals(start, c.Int("count"))
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
