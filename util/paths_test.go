// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/lib/cfishd/data", util.EnsureAbsolute("/var/lib/cfishd", "data"), "relative")
	assert.Equal(t, "/tmp/x", util.EnsureAbsolute("/var/lib/cfishd", "/tmp/x"), "absolute")
	assert.Equal(t, "/var/lib/x", util.EnsureAbsolute("/var/lib/cfishd", "../x"), "parent")
}

func TestEnsureDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	assert.False(t, util.EnsureFileExists(dir), "exists before create")
	assert.Nil(t, util.EnsureDirectory(dir), "create")
	assert.True(t, util.EnsureFileExists(dir), "missing after create")
}
