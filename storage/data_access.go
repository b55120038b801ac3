// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// DataAccess - batched writes over a database with read-your-writes
type DataAccess interface {
	Begin()
	Put([]byte, []byte)
	Delete([]byte)
	Write() error
	Abort()
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Committed([]byte) ([]byte, error)
	Iterator(*ldb_util.Range) iterator.Iterator
}

type dataAccess struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) DataAccess {
	return &dataAccess{
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *dataAccess) Begin() {
	d.batch.Reset()
	d.cache.Clear()
}

func (d *dataAccess) Put(key []byte, value []byte) {
	v := append([]byte{}, value...)
	d.batch.Put(key, v)
	d.cache.Set(dbPut, string(key), v)
}

func (d *dataAccess) Delete(key []byte) {
	d.batch.Delete(key)
	d.cache.Set(dbDelete, string(key), nil)
}

// Write - apply the whole batch atomically
func (d *dataAccess) Write() error {
	err := d.db.Write(d.batch, nil)
	d.Begin()
	return err
}

// Abort - forget every pending write
func (d *dataAccess) Abort() {
	d.Begin()
}

// Get - pending value if any, otherwise the committed value
//
// a missing key returns nil, nil
func (d *dataAccess) Get(key []byte) ([]byte, error) {
	if value, found, deleted := d.cache.Get(string(key)); found {
		if deleted {
			return nil, nil
		}
		return value, nil
	}
	return d.Committed(key)
}

func (d *dataAccess) Has(key []byte) (bool, error) {
	if _, found, deleted := d.cache.Get(string(key)); found {
		return !deleted, nil
	}
	return d.db.Has(key, nil)
}

// Committed - ignore pending writes
func (d *dataAccess) Committed(key []byte) ([]byte, error) {
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

func (d *dataAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
