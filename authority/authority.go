// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - deterministic address derivation
//
// A derived address is computed from a namespace tag, some seeds
// (normally owner accounts) and a bump byte.  The bump is chosen so
// that the address is not a point on the ed25519 curve, which means
// no private key can exist for it and only the ledger itself can
// authorise moves out of accounts owned by it.
package authority

import (
	"bytes"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
)

// limits on derivation input
const (
	MaxSeeds      = 16 // including the namespace
	MaxSeedLength = 32
)

const addressMarker = "cfish derived address"

// Proof - everything needed to re-derive an address
type Proof struct {
	Namespace []byte   `json:"namespace"`
	Seeds     [][]byte `json:"seeds"`
	Bump      uint8    `json:"bump"`
}

// Authority - a signer that has no private key
type Authority interface {
	Derive(namespace []byte, seeds ...[]byte) (account.Account, Proof, error)
	Verify(proof Proof, address account.Account) bool
}

type programAuthority struct {
	program account.Account
}

// New - an authority bound to one program id
//
// the same namespace and seeds give different addresses under
// different program ids
func New(program account.Account) Authority {
	return &programAuthority{
		program: program,
	}
}

// Derive - find the highest bump that gives an off-curve address
func (p *programAuthority) Derive(namespace []byte, seeds ...[]byte) (account.Account, Proof, error) {
	if err := checkSeeds(namespace, seeds); nil != err {
		return account.Account{}, Proof{}, err
	}

	for bump := 255; bump >= 0; bump -= 1 {
		address := p.candidate(namespace, seeds, uint8(bump))
		if !IsOnCurve(address) {
			proof := Proof{
				Namespace: copyBytes(namespace),
				Seeds:     make([][]byte, len(seeds)),
				Bump:      uint8(bump),
			}
			for i, s := range seeds {
				proof.Seeds[i] = copyBytes(s)
			}
			return address, proof, nil
		}
	}
	return account.Account{}, Proof{}, fault.ErrNoViableBump
}

// Verify - check that a proof re-derives exactly this address
func (p *programAuthority) Verify(proof Proof, address account.Account) bool {
	if nil != checkSeeds(proof.Namespace, proof.Seeds) {
		return false
	}
	candidate := p.candidate(proof.Namespace, proof.Seeds, proof.Bump)
	if IsOnCurve(candidate) {
		return false
	}
	return candidate == address
}

func (p *programAuthority) candidate(namespace []byte, seeds [][]byte, bump uint8) account.Account {
	h := sha3.New256()
	h.Write(namespace)
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write(p.program[:])
	h.Write([]byte(addressMarker))

	a := account.Account{}
	copy(a[:], h.Sum(nil))
	return a
}

// IsOnCurve - true if the bytes decode as an ed25519 point,
// i.e. a private key could exist for the address
func IsOnCurve(a account.Account) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}

// Equal - compare two proofs
func (proof Proof) Equal(other Proof) bool {
	if proof.Bump != other.Bump || !bytes.Equal(proof.Namespace, other.Namespace) {
		return false
	}
	if len(proof.Seeds) != len(other.Seeds) {
		return false
	}
	for i := range proof.Seeds {
		if !bytes.Equal(proof.Seeds[i], other.Seeds[i]) {
			return false
		}
	}
	return true
}

func checkSeeds(namespace []byte, seeds [][]byte) error {
	if 1+len(seeds) > MaxSeeds {
		return fault.ErrTooManySeeds
	}
	if len(namespace) > MaxSeedLength {
		return fault.ErrSeedTooLong
	}
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return fault.ErrSeedTooLong
		}
	}
	return nil
}

func copyBytes(b []byte) []byte {
	return append([]byte{}, b...)
}
