// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/counter"
	"github.com/bitmark-inc/cfishd/fixtures"
	"github.com/bitmark-inc/cfishd/ledger"
	"github.com/bitmark-inc/cfishd/ledger/mocks"
	"github.com/bitmark-inc/cfishd/rpc/node"
	"github.com/bitmark-inc/logger"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	ctr := counter.Counter(3)
	n := node.New(logger.New(fixtures.LogCategory), l, time.Now(), "testing", "1.2", &ctr)

	info := &ledger.Info{
		ProgramId:    fixtures.ProgramId,
		TokenMint:    fixtures.TokenMint,
		Vault:        fixtures.Account(9),
		VaultBalance: 1000,
		Time:         fixtures.Genesis.Unix(),
	}
	l.EXPECT().Info().Return(info, nil).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "testing", reply.Chain, "wrong chain")
	assert.Equal(t, "1.2", reply.Version, "wrong version")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, fixtures.ProgramId, reply.ProgramId, "wrong program id")
	assert.Equal(t, uint64(1000), reply.VaultBalance, "wrong vault balance")
	assert.Equal(t, fixtures.Genesis.Unix(), reply.Time, "wrong time")
}

func TestNodeBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	ctr := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), l, time.Now(), "testing", "1.2", &ctr)

	owner := fixtures.Account(4)
	asset := fixtures.Account(0x41)

	l.EXPECT().Info().Return(&ledger.Info{TokenMint: fixtures.TokenMint}, nil).Times(1)
	l.EXPECT().TokenBalance(owner, fixtures.TokenMint).Return(uint64(250), nil).Times(1)
	l.EXPECT().TokenBalance(owner, asset).Return(uint64(1), nil).Times(1)
	l.EXPECT().CurrencyBalance(owner).Return(uint64(700)).Times(2)

	var reply node.BalanceReply
	err := n.Balance(&node.BalanceArguments{Owner: owner}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, fixtures.TokenMint, reply.Mint, "default mint")
	assert.Equal(t, uint64(250), reply.Tokens, "wrong tokens")
	assert.Equal(t, uint64(700), reply.Currency, "wrong currency")

	err = n.Balance(&node.BalanceArguments{Owner: owner, Mint: asset}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(1), reply.Tokens, "wrong asset units")
}
