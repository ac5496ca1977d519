/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package identity

import (
	"crypto/x509"
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"

	"github.com/trustbloc/biowallet/pkg/walleterr"
)

// MethodPrefix is the prefix of every wallet identifier.
const MethodPrefix = "did:bio:"

// DeriveIdentifier derives the identifier from the PKIX DER public key: the base58btc multibase
// encoding of its sha2-256 multihash.
func DeriveIdentifier(publicKeyDER []byte) (string, error) {
	if len(publicKeyDER) == 0 {
		return "", fmt.Errorf("empty public key: %w", walleterr.ErrInvalidInput)
	}

	if _, err := x509.ParsePKIXPublicKey(publicKeyDER); err != nil {
		return "", fmt.Errorf("parse public key: %w: %w", walleterr.ErrInvalidInput, err)
	}

	mh, err := multihash.Sum(publicKeyDER, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("hash public key: %w", err)
	}

	fingerprint, err := multibase.Encode(multibase.Base58BTC, mh)
	if err != nil {
		return "", fmt.Errorf("encode fingerprint: %w", err)
	}

	return MethodPrefix + fingerprint, nil
}

// IsIdentifier reports whether id has the shape of a wallet identifier.
func IsIdentifier(id string) bool {
	fingerprint, ok := strings.CutPrefix(id, MethodPrefix)
	if !ok || fingerprint == "" {
		return false
	}

	encoding, data, err := multibase.Decode(fingerprint)
	if err != nil || encoding != multibase.Base58BTC {
		return false
	}

	decoded, err := multihash.Decode(data)

	return err == nil && decoded.Code == multihash.SHA2_256
}
