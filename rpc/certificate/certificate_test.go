// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/sha256"
	"crypto/tls"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cfishd/fixtures"
	"github.com/bitmark-inc/cfishd/rpc/certificate"
	"github.com/bitmark-inc/cfishd/util"
	"github.com/bitmark-inc/logger"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key := fixtures.Certificate(t)

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, util.FingerprintBytes(sha256.Sum256(pair.Certificate[0])), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
}

func TestGetMismatchedKey(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, _ := fixtures.Certificate(t)
	_, other := fixtures.Certificate(t)

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, other)
	assert.NotNil(t, err, "mismatched key accepted")
}
