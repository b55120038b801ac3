// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/fixtures"
	"github.com/bitmark-inc/cfishd/ledger"
	"github.com/bitmark-inc/cfishd/ledger/mocks"
	"github.com/bitmark-inc/cfishd/rpc"
	"github.com/bitmark-inc/cfishd/rpc/listeners"
	"github.com/bitmark-inc/cfishd/rpc/node"
)

func TestInitialiseAndFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Info().Return(&ledger.Info{VaultBalance: 42}, nil).Times(1)

	probe, err := net.Listen("tcp4", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	listen := fmt.Sprintf("127.0.0.1:%d", probe.Addr().(*net.TCPAddr).Port)
	_ = probe.Close()

	cer, key := fixtures.Certificate(t)
	configuration := &listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{listen},
		Certificate:        cer,
		PrivateKey:         key,
	}

	err = rpc.Initialise(configuration, l, "testing", "0.1")
	assert.Nil(t, err, "wrong Initialise")

	err = rpc.Initialise(configuration, l, "testing", "0.1")
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second Initialise")

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)

	var reply node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, uint64(42), reply.VaultBalance, "wrong vault balance")
	_ = client.Close()

	assert.Nil(t, rpc.Finalise(), "wrong Finalise")
	assert.Equal(t, fault.ErrNotInitialised, rpc.Finalise(), "second Finalise")
}

func TestInitialiseBadCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	configuration := &listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:2130"},
		Certificate:        "not a certificate",
		PrivateKey:         "not a key",
	}

	err := rpc.Initialise(configuration, mocks.NewMockLedger(ctl), "testing", "0.1")
	assert.NotNil(t, err, "bad certificate accepted")
}
