// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/cfishd/messagebus"
	"github.com/bitmark-inc/cfishd/util"
	"github.com/bitmark-inc/cfishd/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	broadcastZapDomain = "publish"
	heartbeatInterval  = 60 * time.Second
	heartbeatCommand   = "heart"
)

// sender - the part of a PUB socket used for sending
type sender interface {
	SendMessage(parts ...interface{}) (int, error)
}

type broadcaster struct {
	log     *logger.L
	chain   string
	queue   *messagebus.BroadcastQueue
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(chain string, privateKey []byte, publicKey []byte, broadcast []string, queue *messagebus.BroadcastQueue) error {
	log := logger.New("broadcaster")

	brdc.log = log
	brdc.chain = chain
	brdc.queue = queue

	log.Info("initialising…")

	// allocate IPv4 and IPv6 sockets
	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcastZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// Run - wait for committed receipts and send them
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

	queue := brdc.queue.Chan(0)
	defer brdc.queue.Release(queue)

	sockets := make([]sender, 0, 2)
	if nil != brdc.socket4 {
		sockets = append(sockets, brdc.socket4)
	}
	if nil != brdc.socket6 {
		sockets = append(sockets, brdc.socket6)
	}

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

loop:
	for {
		log.Debug("waiting…")

		select {
		case <-shutdown:
			break loop

		case item := <-queue:
			if err := send(sockets, brdc.chain, item.Command, item.Parameters...); nil != err {
				log.Errorf("send: %q  error: %s", item.Command, err)
			}

		case <-ticker.C:
			now := util.ToVarint64(uint64(time.Now().Unix()))
			if err := send(sockets, brdc.chain, heartbeatCommand, now); nil != err {
				log.Errorf("heartbeat send error: %s", err)
			}
		}
	}

	log.Info("shutting down…")
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// frames: chain, command, parameters...
func send(sockets []sender, chain string, command string, parameters ...[]byte) error {
	parts := make([]interface{}, 0, 2+len(parameters))
	parts = append(parts, chain, command)
	for _, p := range parameters {
		parts = append(parts, p)
	}

	for _, socket := range sockets {
		if _, err := socket.SendMessage(parts...); nil != err {
			return err
		}
	}
	return nil
}
