// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package marketplace - escrow sale of single unit assets
//
// A listing moves its asset unit into an escrow token account owned by
// a derived authority.  The only way out is a buy, which pays the
// seller in native currency and releases the unit to the buyer under
// the escrow authority proof.  A listing is single use: once sold it
// stays sold and its address cannot be listed again.
package marketplace

import (
	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/program"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/storage"
)

// Mint - create an asset with a supply of one, held by its creator
func Mint(c *program.Context, creator account.Account, asset account.Account, name string, symbol string, uri string) error {
	if asset == c.TokenMint {
		return fault.ErrAssetIsTokenMint
	}

	metadata, _, err := c.Derive(program.AssetMetadataNamespace, asset.Bytes())
	if nil != err {
		return err
	}

	a := &record.Asset{
		Asset:   asset,
		Creator: creator,
		Name:    name,
		Symbol:  symbol,
		URI:     uri,
	}
	if err := c.Create(storage.Pool.Assets, metadata, a); nil != err {
		return err
	}

	// the single unit only ever goes into a fresh account
	holding, err := c.Tokens.Associated(creator, asset)
	if nil != err {
		return err
	}
	if err := c.Tokens.Open(c.Tx, holding, asset, creator); nil != err {
		return err
	}
	c.Created = append(c.Created, holding)
	c.Amount = 1
	return c.Tokens.MintTo(c.Tx, holding, 1)
}

// List - put the seller's unit of an asset into escrow at a fixed price
func List(c *program.Context, seller account.Account, asset account.Account, price uint64) error {
	metadata, _, err := c.Derive(program.AssetMetadataNamespace, asset.Bytes())
	if nil != err {
		return err
	}
	if !c.Exists(storage.Pool.Assets, metadata) {
		return fault.ErrAssetNotFound
	}

	listingAddress, _, err := c.Derive(program.ListingNamespace, asset.Bytes())
	if nil != err {
		return err
	}
	if c.Exists(storage.Pool.Listings, listingAddress) {
		return fault.ErrAccountAlreadyInUse
	}

	holding, err := c.Tokens.Associated(seller, asset)
	if nil != err {
		return err
	}
	units, err := c.Tokens.Balance(c.Tx, holding)
	if nil != err {
		return err
	}
	if 1 != units {
		return fault.ErrWrongAssetAmount
	}

	escrowAuthority, _, err := c.Signer(program.EscrowAuthorityNamespace, asset.Bytes())
	if nil != err {
		return err
	}
	escrow, _, err := c.Derive(program.EscrowNamespace, asset.Bytes())
	if nil != err {
		return err
	}
	if err := c.Tokens.Open(c.Tx, escrow, asset, escrowAuthority); nil != err {
		return err
	}
	c.Created = append(c.Created, escrow)

	if err := c.Tokens.Lock(c.Tx, holding, escrow, seller, 1); nil != err {
		return err
	}

	listing := &record.Listing{
		Seller:          seller,
		Asset:           asset,
		Price:           price,
		EscrowAccount:   escrow,
		EscrowAuthority: escrowAuthority,
		Sold:            false,
	}
	c.Amount = price
	return c.Create(storage.Pool.Listings, listingAddress, listing)
}

// Buy - pay the seller and take the escrowed unit
//
// a sold listing fails before any transfer is attempted
func Buy(c *program.Context, buyer account.Account, asset account.Account) error {
	listingAddress, _, err := c.Derive(program.ListingNamespace, asset.Bytes())
	if nil != err {
		return err
	}
	listing, err := program.GetListing(c.Tx, listingAddress)
	if nil != err {
		return err
	}
	if listing.Sold {
		return fault.ErrAlreadySold
	}

	if err := c.Currency.Transfer(c.Tx, buyer, listing.Seller, listing.Price); nil != err {
		return err
	}

	holding, err := c.Tokens.OpenAssociated(c.Tx, buyer, asset)
	if nil != err {
		return err
	}
	_, proof, err := c.Signer(program.EscrowAuthorityNamespace, asset.Bytes())
	if nil != err {
		return err
	}
	if err := c.Tokens.Release(c.Tx, listing.EscrowAccount, holding, 1, proof); nil != err {
		return err
	}

	listing.Sold = true
	c.Amount = listing.Price
	return c.Store(storage.Pool.Listings, listingAddress, listing)
}
