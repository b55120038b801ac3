// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
	"sync/atomic"
)

const (
	defaultQueueSize = 1000
)

// Message - a command and its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - send every message to every listener
type BroadcastQueue struct {
	sync.RWMutex
	out     []chan Message
	dropped atomic.Uint64
}

// the exported buses
type busses struct {
	Broadcast *BroadcastQueue
}

// Bus - all available message buses
var Bus = busses{
	Broadcast: &BroadcastQueue{},
}

// Send - queue a message for all current listeners
//
// never blocks; a full listener misses the message
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, out := range queue.out {
		select {
		case out <- m:
		default:
			queue.dropped.Add(1)
		}
	}
}

// Chan - a new listener channel, size 0 selects the default
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.out = append(queue.out, c)
	queue.Unlock()

	return c
}

// Release - stop sending to a listener and close its channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, out := range queue.out {
		if (<-chan Message)(out) == c {
			queue.out = append(queue.out[:i], queue.out[i+1:]...)
			close(out)
			return
		}
	}
}

// Listeners - number of registered listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.out)
}

// Dropped - messages lost by slow listeners
func (queue *BroadcastQueue) Dropped() uint64 {
	return queue.dropped.Load()
}
