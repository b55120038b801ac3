// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/cfishd/account"
)

func runMint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return ErrRequiredName
	}
	symbol := c.String("symbol")
	uri := c.String("uri")

	key, err := signingKey(c, m)
	if nil != err {
		return err
	}

	// the asset address is the account of a throwaway key
	assetKey, err := account.NewPrivateKey()
	if nil != err {
		return err
	}
	asset := assetKey.Account()

	if m.verbose {
		fmt.Fprintf(m.e, "asset: %s  name: %q  symbol: %q  uri: %q\n", asset, name, symbol, uri)
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.Mint(key, asset, name, symbol, uri)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Asset   account.Account `json:"asset"`
		Receipt interface{}     `json:"receipt"`
	}{
		Asset:   asset,
		Receipt: receipt,
	})
}

func runAsset(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	asset, err := requiredAccount(c.String("asset"))
	if nil != err {
		return err
	}
	owner, err := accountOrIdentity(c, m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetAsset(asset, owner)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	asset, err := requiredAccount(c.String("asset"))
	if nil != err {
		return err
	}
	price := c.Uint64("price")
	if 0 == price {
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

	receipt, err := client.List(key, asset, price)
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runBuy(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	asset, err := requiredAccount(c.String("asset"))
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

	receipt, err := client.Buy(key, asset)
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runListing(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	asset, err := requiredAccount(c.String("asset"))
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetListing(asset)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
