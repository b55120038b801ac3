// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintBytes - sha256 of a DER certificate
type FingerprintBytes [sha256.Size]byte

// Fingerprint - fingerprint a certificate
//
// the fingerprint is SHA256 because of:
// openssl x509 -noout -in ~/.config/cfishd/rpc.crt -text -fingerprint -sha256
// so this provides a way to double check on the command line
func Fingerprint(certificate []byte) FingerprintBytes {
	return sha256.Sum256(certificate)
}

// String - hex form
func (f FingerprintBytes) String() string {
	return hex.EncodeToString(f[:])
}
