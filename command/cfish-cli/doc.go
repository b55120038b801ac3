// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package main - command line client for cfishd
//
// identities are kept in a JSON file per network under
// $XDG_CONFIG_HOME/cfish-cli, seeds are encrypted with a key derived
// from the identity password
package main
