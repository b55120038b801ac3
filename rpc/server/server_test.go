// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/counter"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/fixtures"
	"github.com/bitmark-inc/cfishd/instruction"
	"github.com/bitmark-inc/cfishd/ledger"
	"github.com/bitmark-inc/cfishd/ledger/mocks"
	"github.com/bitmark-inc/cfishd/rpc/assets"
	"github.com/bitmark-inc/cfishd/rpc/market"
	"github.com/bitmark-inc/cfishd/rpc/node"
	"github.com/bitmark-inc/cfishd/rpc/proposal"
	"github.com/bitmark-inc/cfishd/rpc/reward"
	"github.com/bitmark-inc/cfishd/rpc/server"
	"github.com/bitmark-inc/cfishd/rpc/stake"
	"github.com/bitmark-inc/logger"
)

// a JSON-RPC client connected to a server over an in-memory pipe
func connect(t *testing.T, l ledger.Ledger) *rpc.Client {
	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), l, "testing", "1.0", &c)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return jsonrpc.NewClient(clientConn)
}

// every error below comes from a specific ledger call, so each test
// shows the method is registered and routed to that call

func TestAssetsGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Asset(gomock.Any()).Return(nil, fault.ErrAssetNotFound).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply assets.GetReply
	err := client.Call("Assets.Get", &assets.GetArguments{}, &reply)
	assert.NotNil(t, err, "wrong Assets.Get")
	assert.Equal(t, fault.ErrAssetNotFound.Error(), err.Error(), "wrong reply")
}

func TestMarketGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Listing(gomock.Any()).Return(nil, fault.ErrListingNotFound).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply market.GetReply
	err := client.Call("Market.Get", &market.GetArguments{}, &reply)
	assert.Equal(t, fault.ErrListingNotFound.Error(), err.Error(), "wrong reply")
}

func TestStakeGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().StakeEntry(gomock.Any()).Return(nil, fault.ErrStakeEntryNotFound).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply stake.GetReply
	err := client.Call("Stake.Get", &stake.GetArguments{}, &reply)
	assert.Equal(t, fault.ErrStakeEntryNotFound.Error(), err.Error(), "wrong reply")
}

func TestRewardGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().RewardTracker(gomock.Any()).Return(nil, fault.ErrOverflow).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply reward.GetReply
	err := client.Call("Reward.Get", &reward.GetArguments{}, &reply)
	assert.Equal(t, fault.ErrOverflow.Error(), err.Error(), "wrong reply")
}

func TestProposalList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := connect(t, mocks.NewMockLedger(ctl))
	defer client.Close()

	var reply proposal.ListReply
	err := client.Call("Proposal.List", &proposal.ListArguments{Count: 0}, &reply)
	assert.Equal(t, fault.ErrInvalidCount.Error(), err.Error(), "wrong reply")
}

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Info().Return(&ledger.Info{VaultBalance: 99}, nil).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "testing", reply.Chain, "wrong chain")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, uint64(99), reply.VaultBalance, "wrong vault balance")
}

func TestStakeUnstakeRejectsUnsigned(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := connect(t, mocks.NewMockLedger(ctl))
	defer client.Close()

	arg := instruction.Unstake{
		Staker: account.Account{1},
		Nonce:  1,
	}
	var reply ledger.Receipt
	err := client.Call("Stake.Unstake", &arg, &reply)
	assert.Equal(t, fault.ErrInvalidSignature.Error(), err.Error(), "wrong reply")
}
