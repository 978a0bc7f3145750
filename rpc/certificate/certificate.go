// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS server certificates for the RPC listeners
package certificate

import (
	"crypto/tls"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/util"
	"github.com/bitmark-inc/logger"
)

// Get - load a certificate and its key from files
// and return the TLS configuration and the certificate fingerprint
func Get(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Fingerprint - the SHA3-256 of a DER certificate
//
// openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// MakeSelfSigned - create a self-signed certificate and key
//
// extraHosts are added to the certificate's alternate names
func MakeSelfSigned(name string, certificateFileName string, keyFileName string, extraHosts []string) error {

	// key is checked first so a failure leaves nothing behind
	if util.FileExists(keyFileName) {
		return fault.KeyFileAlreadyExists
	}

	org := "challenged self signed cert for: " + name
	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	override := 0 != len(extraHosts)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if nil != err {
		return err
	}

	err = util.WriteNewFile(certificateFileName, cert, 0666)
	if os.IsExist(err) {
		return fault.CertificateFileExists
	} else if nil != err {
		return err
	}

	err = util.WriteNewFile(keyFileName, key, 0600)
	if nil != err {
		os.Remove(certificateFileName)
		if os.IsExist(err) {
			return fault.KeyFileAlreadyExists
		}
		return err
	}

	return nil
}
