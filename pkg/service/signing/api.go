/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination api_mocks_test.go -self_package signing -package signing -source=api.go -mock_names NonceRegistry=MockNonceRegistry

package signing

import (
	"context"
	"errors"
	"time"
)

// Purpose tells why a signature was requested. It is recorded on the Signature and never changes the
// signed bytes.
type Purpose string

const (
	PurposeAuthenticate    Purpose = "authenticate"
	PurposeIssueCredential Purpose = "issue-credential"
)

// ErrInvalidSignature is returned when a signature does not verify.
var ErrInvalidSignature = errors.New("invalid signature")

// Signature is the result of SignAsIdentity.
type Signature struct {
	IdentityID    string    `json:"identityID"`
	KeyAlias      string    `json:"keyAlias"`
	Purpose       Purpose   `json:"purpose"`
	Timestamp     time.Time `json:"timestamp"`
	Nonce         string    `json:"nonce"`
	SignedMessage []byte    `json:"signedMessage"`
	// Value is an ASN.1 DER encoded ECDSA signature over SHA-256 of SignedMessage.
	Value []byte `json:"value"`
}

// NonceRegistry remembers the nonces of issued signatures.
type NonceRegistry interface {
	// Reserve returns walleterr.ErrNonceReused if nonce was reserved before.
	Reserve(ctx context.Context, nonce string) error
}

type ServiceInterface interface {
	SignAsIdentity(ctx context.Context, identityID string, payload []byte, purpose Purpose) (*Signature, error)
	VerifySignature(ctx context.Context, sig *Signature) error
}
