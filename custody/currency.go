// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody

import (
	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/storage"
)

// Currency - the native currency ledger
type Currency interface {
	Balance(r storage.Reader, owner account.Account) uint64
	Credit(tx storage.Transaction, owner account.Account, amount uint64) error
	Transfer(tx storage.Transaction, from account.Account, to account.Account, amount uint64) error
}

type currency struct {
	pool *storage.PoolHandle
}

// NewCurrency - native balances over a pool
func NewCurrency(pool *storage.PoolHandle) Currency {
	return &currency{
		pool: pool,
	}
}

// Balance - missing balances are zero
func (c *currency) Balance(r storage.Reader, owner account.Account) uint64 {
	n, _ := r.GetN(c.pool, owner.Bytes())
	return n
}

// Credit - add new funds, used for genesis allocations
func (c *currency) Credit(tx storage.Transaction, owner account.Account, amount uint64) error {
	balance := c.Balance(tx, owner)
	total := balance + amount
	if total < balance {
		return fault.ErrOverflow
	}
	tx.PutN(c.pool, owner.Bytes(), total)
	return nil
}

// Transfer - debit one account and credit another
func (c *currency) Transfer(tx storage.Transaction, from account.Account, to account.Account, amount uint64) error {
	source := c.Balance(tx, from)
	if source < amount {
		return fault.ErrInsufficientFunds
	}
	if from == to {
		return nil
	}

	destination := c.Balance(tx, to)
	credited := destination + amount
	if credited < destination {
		return fault.ErrOverflow
	}

	tx.PutN(c.pool, from.Bytes(), source-amount)
	tx.PutN(c.pool, to.Bytes(), credited)
	return nil
}
