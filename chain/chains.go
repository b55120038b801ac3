// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the ledgers a node can run
//
// the name is part of every published frame, keeps databases of
// different ledgers apart and selects the default database file
package chain

import (
	"strings"
)

// names of all chains
const (
	CFish   = "cfish"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case CFish, Testing, Local:
		return true
	default:
		return false
	}
}

// Normalise - lower case and check a configured chain name
func Normalise(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	return name, Valid(name)
}

// IsTesting - true for every chain except the live one
func IsTesting(name string) bool {
	return CFish != name
}
