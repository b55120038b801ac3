// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/cfishd/fault"
)

// DigestLength - number of bytes in a digest
const DigestLength = 32

// Digest - identifies one packed instruction, the transaction id
type Digest [DigestLength]byte

// Digest - sha3-256 of the packed bytes, signature included
func (packed Packed) Digest() Digest {
	return sha3.Sum256(packed)
}

// String - hex form
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(digest))
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(DigestLength) != len(s) {
		return fault.ErrInvalidKeyLength
	}
	_, err := hex.Decode(digest[:], s)
	return err
}
