// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/cfishd/fault"
)

// Transaction - all-or-nothing group of writes
//
// only one transaction exists; Begin blocks until the previous
// holder has called Commit or Abort
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

type transaction struct {
	sync.Mutex
	inUse  atomic.Bool
	access DataAccess
}

func newTransaction(access DataAccess) Transaction {
	return &transaction{
		access: access,
	}
}

func (t *transaction) Begin() error {
	t.Lock()
	t.inUse.Store(true)
	t.access.Begin()
	return nil
}

func (t *transaction) InUse() bool {
	return t.inUse.Load()
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	return handle.get(key)
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.getN(key)
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	return handle.has(key)
}

// Commit - write every pending change in one leveldb batch
func (t *transaction) Commit() error {
	if !t.inUse.CompareAndSwap(true, false) {
		return fault.ErrTransactionNotInUse
	}
	defer t.Unlock()

	return t.access.Write()
}

// Abort - drop every pending change
func (t *transaction) Abort() {
	if !t.inUse.CompareAndSwap(true, false) {
		return
	}
	defer t.Unlock()

	t.access.Abort()
}
