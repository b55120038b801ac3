// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/fixtures"
	"github.com/bitmark-inc/cfishd/instruction"
	"github.com/bitmark-inc/cfishd/ledger"
	"github.com/bitmark-inc/cfishd/ledger/mocks"
	"github.com/bitmark-inc/cfishd/record"
	"github.com/bitmark-inc/cfishd/rpc/market"
	"github.com/bitmark-inc/logger"
)

func TestListAndBuy(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	m := market.New(logger.New(fixtures.LogCategory), l)

	seller := fixtures.Key(1)
	buyer := fixtures.Key(2)
	asset := fixtures.Account(0x41)

	list := &instruction.ListAsset{Seller: seller.Account(), Asset: asset, Price: 500, Nonce: 1}
	listPacked, err := instruction.Sign(list, seller)
	assert.Nil(t, err, "sign list")

	buy := &instruction.BuyAsset{Buyer: buyer.Account(), Asset: asset, Nonce: 1}
	buyPacked, err := instruction.Sign(buy, buyer)
	assert.Nil(t, err, "sign buy")

	gomock.InOrder(
		l.EXPECT().Execute(listPacked).Return(&ledger.Receipt{Instruction: instruction.ListAssetName}, nil),
		l.EXPECT().Execute(buyPacked).Return(&ledger.Receipt{Instruction: instruction.BuyAssetName, Amount: 500}, nil),
		l.EXPECT().Execute(buyPacked).Return(nil, fault.Instruction(instruction.BuyAssetName, fault.ErrAlreadySold)),
	)

	var reply ledger.Receipt
	assert.Nil(t, m.List(list, &reply), "wrong List")
	assert.Equal(t, instruction.ListAssetName, reply.Instruction, "wrong list receipt")

	assert.Nil(t, m.Buy(buy, &reply), "wrong Buy")
	assert.Equal(t, uint64(500), reply.Amount, "wrong buy receipt")

	err = m.Buy(buy, &reply)
	assert.True(t, errors.Is(err, fault.ErrAlreadySold), "wrong second Buy: %v", err)
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	m := market.New(logger.New(fixtures.LogCategory), l)

	asset := fixtures.Account(0x41)
	listing := &record.Listing{Asset: asset, Price: 10}
	l.EXPECT().Listing(asset).Return(listing, nil).Times(1)

	var reply market.GetReply
	err := m.Get(&market.GetArguments{Asset: asset}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, listing, reply.Listing, "wrong listing")
}
