// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/keypair"
)

func TestMakeRawKeyPair(t *testing.T) {
	raw, kp, err := keypair.MakeRawKeyPair()
	assert.Nil(t, err, "make")
	assert.Equal(t, raw.Seed, kp.Seed, "seed")
	assert.Equal(t, kp.PrivateKey.Account().String(), raw.Account, "account")

	again, _, err := keypair.MakeRawKeyPairFromSeed(raw.Seed)
	assert.Nil(t, err, "from seed")
	assert.Equal(t, raw, again, "seed not deterministic")

	a, err := keypair.AccountFromHexPublicKey(raw.PublicKey)
	assert.Nil(t, err, "from hex")
	assert.Equal(t, raw.Account, a.String(), "hex public key")
}

func TestBadSeed(t *testing.T) {
	_, _, err := keypair.MakeRawKeyPairFromSeed("not a seed")
	assert.NotNil(t, err, "bad seed accepted")
}
