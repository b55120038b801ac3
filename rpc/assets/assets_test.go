// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/fixtures"
	"github.com/bitmark-inc/cfishd/instruction"
	"github.com/bitmark-inc/cfishd/ledger"
	"github.com/bitmark-inc/cfishd/ledger/mocks"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/rpc/assets"
	"github.com/bitmark-inc/logger"
)

func TestMint(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	a := assets.New(logger.New(fixtures.LogCategory), l)

	creator := fixtures.Key(1)
	arg := &instruction.MintAsset{
		Creator:   creator.Account(),
		Asset:     fixtures.Account(0x41),
		AssetName: "fish",
		Symbol:    "FSH",
		URI:       "https://example.com/fish.json",
		Nonce:     1,
	}
	packed, err := instruction.Sign(arg, creator)
	assert.Nil(t, err, "sign")

	receipt := &ledger.Receipt{
		Id:          packed.Digest(),
		Instruction: instruction.MintAssetName,
		Signer:      creator.Account(),
		Amount:      1,
	}
	l.EXPECT().Execute(packed).Return(receipt, nil).Times(1)

	var reply ledger.Receipt
	err = a.Mint(arg, &reply)
	assert.Nil(t, err, "wrong Mint")
	assert.Equal(t, *receipt, reply, "wrong receipt")
}

func TestMintFailure(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	a := assets.New(logger.New(fixtures.LogCategory), l)

	creator := fixtures.Key(1)
	arg := &instruction.MintAsset{
		Creator: creator.Account(),
		Asset:   fixtures.Account(0x41),
		Nonce:   2,
	}
	_, err := instruction.Sign(arg, creator)
	assert.Nil(t, err, "sign")

	failure := fault.Instruction(instruction.MintAssetName, fault.ErrAccountAlreadyInUse)
	l.EXPECT().Execute(gomock.Any()).Return(nil, failure).Times(1)

	var reply ledger.Receipt
	err = a.Mint(arg, &reply)
	assert.Equal(t, failure, err, "wrong error")
	assert.Equal(t, "mint_asset: account already in use", err.Error(), "wrong text")
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	a := assets.New(logger.New(fixtures.LogCategory), l)

	asset := fixtures.Account(0x41)
	owner := fixtures.Account(7)
	metadata := &record.Asset{
		Asset:   asset,
		Creator: owner,
		Name:    "fish",
	}
	l.EXPECT().Asset(asset).Return(metadata, nil).Times(2)
	l.EXPECT().TokenBalance(owner, asset).Return(uint64(1), nil).Times(1)

	var reply assets.GetReply
	err := a.Get(&assets.GetArguments{Asset: asset, Owner: owner}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, metadata, reply.Asset, "wrong asset")
	assert.Equal(t, uint64(1), reply.Balance, "wrong balance")

	// no owner, no balance lookup
	reply = assets.GetReply{}
	err = a.Get(&assets.GetArguments{Asset: asset}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(0), reply.Balance, "wrong balance")
}
