// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in process fan out of committed ledger events
//
// the ledger sends one message per committed instruction; every
// listener gets its own buffered channel and a listener that falls
// behind loses messages rather than blocking the ledger
package messagebus
