// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"encoding/hex"

	"github.com/bitmark-inc/cfishd/account"
)

// KeyPair - structure to hold the signing key and the seed
// that was used to generate it
type KeyPair struct {
	Seed       string
	PrivateKey *account.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed      string `json:"seed"`
	Account   string `json:"account"`
	PublicKey string `json:"public_key"`
}

// MakeRawKeyPair - create new seed and generate keys from it
func MakeRawKeyPair() (*RawKeyPair, *KeyPair, error) {
	privateKey, err := account.NewPrivateKey()
	if nil != err {
		return nil, nil, err
	}
	return MakeRawKeyPairFromSeed(privateKey.Base58Seed())
}

// MakeRawKeyPairFromSeed - generate keys from an existing seed
func MakeRawKeyPairFromSeed(seed string) (*RawKeyPair, *KeyPair, error) {
	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, nil, err
	}

	owner := privateKey.Account()

	keyPair := KeyPair{
		Seed:       seed,
		PrivateKey: privateKey,
	}
	rawKeyPair := RawKeyPair{
		Seed:      seed,
		Account:   owner.String(),
		PublicKey: hex.EncodeToString(owner.Bytes()),
	}
	return &rawKeyPair, &keyPair, nil
}

// AccountFromHexPublicKey - create an account from a hexadecimal public key
func AccountFromHexPublicKey(publicKey string) (account.Account, error) {
	k, err := hex.DecodeString(publicKey)
	if nil != err {
		return account.Account{}, err
	}
	return account.FromBytes(k)
}
