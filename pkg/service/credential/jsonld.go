/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"fmt"

	"github.com/multiformats/go-multibase"
	"github.com/tidwall/sjson"

	"github.com/trustbloc/biowallet/pkg/walleterr"
)

const (
	credentialsContext = "https://www.w3.org/2018/credentials/v1"
	baseCredentialType = "VerifiableCredential"
)

// ToJSONLD exports the credential as a W3C verifiable credential document. The signed message and
// the signature are multibase (base64url) encoded.
func ToJSONLD(cred *Credential) ([]byte, error) {
	if cred == nil {
		return nil, fmt.Errorf("export credential: nil credential: %w", walleterr.ErrInvalidInput)
	}

	claims, err := canonicalClaims(cred.Claims)
	if err != nil {
		return nil, fmt.Errorf("export credential: %w", err)
	}

	doc := []byte(`{}`)

	set := func(path string, value interface{}) {
		if err != nil {
			return
		}

		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("@context", []string{credentialsContext})
	set("id", cred.ID)
	set("type", []string{baseCredentialType, cred.Type})
	set("issuer", cred.Issuer)
	set("issuanceDate", formatTime(cred.IssuedAt))

	if cred.ExpiresAt != nil {
		set("expirationDate", formatTime(*cred.ExpiresAt))
	}

	set("credentialSubject.id", cred.OwnerIdentityID)

	if err == nil {
		doc, err = sjson.SetRawBytes(doc, "credentialSubject.claims", claims)
	}

	if cred.Proof != nil {
		set("proof.type", cred.Proof.Type)
		set("proof.created", formatTime(cred.Proof.Created))
		set("proof.verificationMethod", cred.Proof.VerificationMethod)
		set("proof.proofPurpose", cred.Proof.ProofPurpose)
		set("proof.signedMessage", encode(cred.Proof.SignedMessage))
		set("proof.proofValue", encode(cred.Proof.SignatureValue))
	}

	if err != nil {
		return nil, fmt.Errorf("export credential: %w", err)
	}

	return doc, nil
}

var base64url = multibase.MustNewEncoder(multibase.Base64url)

func encode(b []byte) string {
	return base64url.Encode(b)
}
