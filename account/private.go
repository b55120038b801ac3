// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/cfishd/fault"
)

// seed text is base58(header ‖ 32 byte seed ‖ checksum)
var seedHeader = []byte{0x5a, 0xfe, 0x01}

const (
	seedLength         = ed25519.SeedSize
	seedChecksumLength = 4
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - create a key from secure random data
func NewPrivateKey() (*PrivateKey, error) {
	seed := make([]byte, seedLength)
	if _, err := rand.Read(seed); nil != err {
		return nil, err
	}
	return PrivateKeyFromSeed(seed)
}

// PrivateKeyFromSeed - expand a raw 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if seedLength != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &PrivateKey{
		key: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// PrivateKeyFromBase58Seed - decode and check a seed in text form
func PrivateKeyFromBase58Seed(s string) (*PrivateKey, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return nil, fault.ErrNotPrivateKey
	}
	if len(seedHeader)+seedLength+seedChecksumLength != len(decoded) {
		return nil, fault.ErrInvalidKeyLength
	}
	if !bytes.Equal(seedHeader, decoded[:len(seedHeader)]) {
		return nil, fault.ErrNotPrivateKey
	}

	checksumStart := len(decoded) - seedChecksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return PrivateKeyFromSeed(decoded[len(seedHeader):checksumStart])
}

// Account - the public half as an account
func (p *PrivateKey) Account() Account {
	a := Account{}
	copy(a[:], p.key.Public().(ed25519.PublicKey))
	return a
}

// Sign - sign a message
func (p *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(p.key, message))
}

// Seed - the raw 32 byte seed
func (p *PrivateKey) Seed() []byte {
	return p.key.Seed()
}

// Base58Seed - the seed in text form
func (p *PrivateKey) Base58Seed() string {
	buffer := make([]byte, 0, len(seedHeader)+seedLength+seedChecksumLength)
	buffer = append(buffer, seedHeader...)
	buffer = append(buffer, p.key.Seed()...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:seedChecksumLength]...)
	return base58.Encode(buffer)
}
