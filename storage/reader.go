// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Reader - read access to pools
//
// a Transaction reads its own pending writes; Committed reads only
// what has been committed and is safe to use from queries while a
// transaction is in progress
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

type committed struct{}

// Committed - reader of committed data
var Committed Reader = committed{}

func (committed) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (committed) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (committed) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}
