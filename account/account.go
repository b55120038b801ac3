// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/cfishd/fault"
)

// miscellaneous constants
const (
	KeyLength      = 32
	checksumLength = 4
)

// Account - a 32 byte ledger address
//
// either an ed25519 public key of a signer or a derived address
// that has no private key
type Account [KeyLength]byte

// FromBytes - convert raw bytes to an account
func FromBytes(b []byte) (Account, error) {
	a := Account{}
	if KeyLength != len(b) {
		return a, fault.ErrInvalidKeyLength
	}
	copy(a[:], b)
	return a, nil
}

// FromBase58 - decode the text form: base58(key ‖ checksum)
func FromBase58(s string) (Account, error) {
	a := Account{}

	decoded, err := base58.Decode(s)
	if nil != err || 0 == len(decoded) {
		return a, fault.ErrCannotDecodeAccount
	}
	if KeyLength+checksumLength != len(decoded) {
		return a, fault.ErrInvalidKeyLength
	}

	checksum := sha3.Sum256(decoded[:KeyLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[KeyLength:]) {
		return a, fault.ErrChecksumMismatch
	}

	copy(a[:], decoded[:KeyLength])
	return a, nil
}

// Bytes - the raw key bytes
func (a Account) Bytes() []byte {
	return a[:]
}

// IsZero - true for the unset account
func (a Account) IsZero() bool {
	return Account{} == a
}

// String - base58 text with checksum
func (a Account) String() string {
	checksum := sha3.Sum256(a[:])
	buffer := make([]byte, 0, KeyLength+checksumLength)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (a Account) GoString() string {
	return "<account:" + a.String() + ">"
}

// MarshalText - convert an account to its text form
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert text into an account
func (a *Account) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// CheckSignature - verify an ed25519 signature made by this account
func (a Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(a[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
