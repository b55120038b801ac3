// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/cfishd/counter"
	"github.com/bitmark-inc/cfishd/ledger"
	"github.com/bitmark-inc/cfishd/rpc/assets"
	"github.com/bitmark-inc/cfishd/rpc/market"
	"github.com/bitmark-inc/cfishd/rpc/node"
	"github.com/bitmark-inc/cfishd/rpc/proposal"
	"github.com/bitmark-inc/cfishd/rpc/reward"
	"github.com/bitmark-inc/cfishd/rpc/stake"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with every handler registered
func Create(log *logger.L, l ledger.Ledger, chain string, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, l))
	_ = server.Register(market.New(log, l))
	_ = server.Register(stake.New(log, l))
	_ = server.Register(reward.New(log, l))
	_ = server.Register(proposal.New(log, l))
	_ = server.Register(node.New(log, l, start, chain, version, rpcCount))

	return server
}
