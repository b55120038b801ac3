// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for tests
package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	LogCategory = "testing"
)

// Genesis - a fixed clock start, midday so day boundaries are explicit in tests
var Genesis = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

var logDirectory string

// SetupTestLogger - log to a temporary directory, critical only
func SetupTestLogger() {
	dir, err := os.MkdirTemp("", "cfishd-testing-")
	if nil != err {
		panic(err)
	}
	logDirectory = dir

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the files
func TeardownTestLogger() {
	logger.Finalise()
	if "" != logDirectory {
		_ = os.RemoveAll(logDirectory)
		logDirectory = ""
	}
}

// SetupTestStorage - open a fresh database under the test's temporary directory
func SetupTestStorage(t *testing.T) {
	err := storage.Initialise(filepath.Join(t.TempDir(), "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// TeardownTestStorage - close the database
func TeardownTestStorage() {
	storage.Finalise()
}

// Key - a deterministic signing key, distinct for each n
func Key(n byte) *account.PrivateKey {
	key, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{n}, 32))
	if nil != err {
		panic(err)
	}
	return key
}

// Account - a deterministic non-signing account value
func Account(n byte) account.Account {
	a := account.Account{}
	copy(a[:], bytes.Repeat([]byte{n}, account.KeyLength))
	return a
}

// well known accounts
var (
	ProgramId = Account(0xc0)
	TokenMint = Account(0xc1)
)
