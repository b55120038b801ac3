// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/messagebus"
)

func TestBroadcast(t *testing.T) {
	queue := &messagebus.BroadcastQueue{}

	// nothing listening so this is dropped
	queue.Send("ignored")

	const listeners = 5
	commands := []string{"stake", "vote", "buy_asset"}

	channels := make([]<-chan messagebus.Message, listeners)
	for i := range channels {
		channels[i] = queue.Chan(len(commands))
	}
	assert.Equal(t, listeners, queue.Listeners(), "listeners")

	for _, c := range commands {
		queue.Send(c, []byte(c+"-data"))
	}

	var wg sync.WaitGroup
	received := make([][]string, listeners)
	for i, ch := range channels {
		wg.Add(1)
		go func(n int, ch <-chan messagebus.Message) {
			defer wg.Done()
			for range commands {
				m := <-ch
				received[n] = append(received[n], m.Command)
			}
		}(i, ch)
	}
	wg.Wait()

	for i := range received {
		assert.Equal(t, commands, received[i], "listener %d", i)
	}

	for _, ch := range channels {
		queue.Release(ch)
	}
	assert.Equal(t, 0, queue.Listeners(), "listeners after release")
}

func TestFullListenerDoesNotBlock(t *testing.T) {
	queue := &messagebus.BroadcastQueue{}
	ch := queue.Chan(1)

	queue.Send("first")
	queue.Send("second")

	m := <-ch
	assert.Equal(t, "first", m.Command, "first message")
	select {
	case m := <-ch:
		t.Errorf("unexpected message: %q", m.Command)
	default:
	}

	queue.Release(ch)
	_, ok := <-ch
	assert.False(t, ok, "channel not closed")
}
