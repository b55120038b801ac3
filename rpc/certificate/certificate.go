// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS for the client RPC listeners
package certificate

import (
	"crypto/tls"

	"github.com/bitmark-inc/cfishd/util"
	"github.com/bitmark-inc/logger"
)

// Get - build the listener TLS configuration from the PEM contents the
// daemon read from its rpc certificate and key files
//
// the returned fingerprint is logged at start so cfish-cli users can
// check the node they connect to
func Get(log *logger.L, name, certificate, key string) (*tls.Config, util.FingerprintBytes, error) {
	var fin util.FingerprintBytes

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s: certificate and key do not form a pair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = util.Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}
