// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/storage/mocks"
)

func setupTestTransaction(t *testing.T) (Transaction, *mocks.MockDataAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockDataAccess(ctl)
	return newTransaction(mock), mock, ctl
}

func TestCommit(t *testing.T) {
	tx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	handle := &PoolHandle{prefix: 'Z', dataAccess: mock}

	gomock.InOrder(
		mock.EXPECT().Begin().Times(1),
		mock.EXPECT().Put([]byte("Zkey"), []byte("value")).Times(1),
		mock.EXPECT().Write().Return(nil).Times(1),
	)

	err := tx.Begin()
	assert.Nil(t, err, "begin")
	assert.True(t, tx.InUse(), "not in use after begin")

	tx.Put(handle, []byte("key"), []byte("value"))

	err = tx.Commit()
	assert.Nil(t, err, "commit")
	assert.False(t, tx.InUse(), "in use after commit")
}

func TestCommitWriteError(t *testing.T) {
	tx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	writeErr := errors.New("disk full")
	mock.EXPECT().Begin().Times(1)
	mock.EXPECT().Write().Return(writeErr).Times(1)

	_ = tx.Begin()
	assert.Equal(t, writeErr, tx.Commit(), "write error not returned")
	assert.False(t, tx.InUse(), "in use after failed commit")
}

func TestAbort(t *testing.T) {
	tx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	handle := &PoolHandle{prefix: 'Z', dataAccess: mock}

	gomock.InOrder(
		mock.EXPECT().Begin().Times(1),
		mock.EXPECT().Delete([]byte("Zkey")).Times(1),
		mock.EXPECT().Abort().Times(1),
	)
	mock.EXPECT().Write().Times(0)

	_ = tx.Begin()
	tx.Delete(handle, []byte("key"))
	tx.Abort()
	assert.False(t, tx.InUse(), "in use after abort")

	// second abort is harmless
	tx.Abort()
}

func TestCommitWithoutBegin(t *testing.T) {
	tx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Write().Times(0)

	assert.Equal(t, fault.ErrTransactionNotInUse, tx.Commit(), "commit without begin")
}

func TestBeginBlocksUntilCommit(t *testing.T) {
	tx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Times(2)
	mock.EXPECT().Write().Return(nil).Times(2)

	_ = tx.Begin()

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		_ = tx.Begin()
		_ = tx.Commit()
		close(done)
	}()

	<-started
	select {
	case <-done:
		t.Fatal("second begin did not wait")
	default:
	}

	_ = tx.Commit()
	<-done
}
