// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - a lock free count of things in use, such as
// client connections
package counter

import (
	"sync/atomic"
)

// Counter - an unsigned count safe for concurrent use
type Counter uint64

// Increment - add one and return the new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract one and return the new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - nothing in use
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
