// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

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
	rateLimitMarket = 200
	rateBurstMarket = 100
)

// Market - type for the RPC
type Market struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create the RPC handler
func New(log *logger.L, l ledger.Ledger) *Market {
	return &Market{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitMarket, rateBurstMarket),
		Ledger:  l,
	}
}

// List - move an asset into escrow at a fixed price
func (market *Market) List(arguments *instruction.ListAsset, reply *ledger.Receipt) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	market.Log.Infof("Market.List: asset: %s  seller: %s  price: %d", arguments.Asset, arguments.Seller, arguments.Price)

	receipt, err := ledger.Submit(market.Ledger, arguments)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// Buy - pay the seller and take the asset out of escrow
func (market *Market) Buy(arguments *instruction.BuyAsset, reply *ledger.Receipt) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	market.Log.Infof("Market.Buy: asset: %s  buyer: %s", arguments.Asset, arguments.Buyer)

	receipt, err := ledger.Submit(market.Ledger, arguments)
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
}

// GetReply - results from get RPC request
type GetReply struct {
	Listing *record.Listing `json:"listing"`
}

// Get - the listing of an asset
func (market *Market) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	listing, err := market.Ledger.Listing(arguments.Asset)
	if nil != err {
		return err
	}
	reply.Listing = listing
	return nil
}
