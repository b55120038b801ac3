// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/instruction"
	"github.com/bitmark-inc/cfishd/ledger"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Assets - type for the RPC
type Assets struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// New - create the RPC handler
func New(log *logger.L, l ledger.Ledger) *Assets {
	return &Assets{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Ledger:  l,
	}
}

// Mint - create an asset with a supply of one owned by its creator
func (assets *Assets) Mint(arguments *instruction.MintAsset, reply *ledger.Receipt) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	assets.Log.Infof("Assets.Mint: asset: %s  creator: %s  name: %q", arguments.Asset, arguments.Creator, arguments.AssetName)

	receipt, err := ledger.Submit(assets.Ledger, arguments)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	Asset account.Account `json:"asset"`
	Owner account.Account `json:"owner"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Asset   *record.Asset `json:"asset"`
	Balance uint64        `json:"balance"`
}

// Get - asset metadata, and optionally how many units an owner holds
func (assets *Assets) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	assets.Log.Debugf("Assets.Get: %+v", arguments)

	a, err := assets.Ledger.Asset(arguments.Asset)
	if nil != err {
		return err
	}
	reply.Asset = a

	if !arguments.Owner.IsZero() {
		balance, err := assets.Ledger.TokenBalance(arguments.Owner, arguments.Asset)
		if nil != err {
			return err
		}
		reply.Balance = balance
	}
	return nil
}
