/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signing

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"github.com/trustbloc/biowallet/pkg/walleterr"
)

// Verify checks an ASN.1 ECDSA signature over SHA-256 of signed with a DER (PKIX) encoded public key.
func Verify(publicKeyDER, signed, sig []byte) error {
	pub, err := x509.ParsePKIXPublicKey(publicKeyDER)
	if err != nil {
		return fmt.Errorf("parse public key: %w: %w", walleterr.ErrInvalidInput, err)
	}

	ecKey, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return fmt.Errorf("public key type %T: %w", pub, walleterr.ErrInvalidInput)
	}

	digest := sha256.Sum256(signed)

	if !ecdsa.VerifyASN1(ecKey, digest[:], sig) {
		return ErrInvalidSignature
	}

	return nil
}
