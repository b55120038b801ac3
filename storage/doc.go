// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. address  = 32 byte account, normally a derived address
// 4. txId     = 32 byte SHA3-256 of the packed signed instruction
// 5. record   = varint tagged record from the record package
//
// Entities:
//
//   A ++ address        - asset metadata (address derived from asset id)
//                         data: asset record
//   L ++ address        - marketplace listing
//                         data: listing record
//   U ++ address        - derived signer (escrow, stake, program vault)
//                         data: authority record (bump)
//   S ++ address        - stake entry
//                         data: stake entry record
//   R ++ address        - reward tracker
//                         data: reward tracker record
//   V ++ address        - vesting entry
//                         data: vesting entry record
//   P ++ address        - governance proposal
//                         data: proposal record
//   W ++ address        - vote record
//                         data: vote record
//
// Custody:
//
//   T ++ address        - token account
//                         data: token account record (mint, owner, amount)
//   N ++ account        - native currency balance
//                         data: big endian uint64
//
// Host:
//
//   I ++ txId           - applied instructions (replay guard)
//                         data: packed signed instruction
//
// Testing:
//   Z ++ key            - testing data
package storage
