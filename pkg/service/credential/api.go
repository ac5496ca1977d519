/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination api_mocks_test.go -self_package credential -package credential -source=api.go -mock_names Store=MockStore

package credential

import (
	"context"
	"encoding/json"
	"time"
)

const (
	ProofType         = "EcdsaSecp256r1Signature2019"
	ProofPurpose      = "assertionMethod"
	verificationKeyID = "#key-1"
	idPrefix          = "urn:uuid:"
)

// Credential is a verifiable credential owned by one identity.
type Credential struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Issuer          string          `json:"issuer"`
	Claims          json.RawMessage `json:"claims"`
	IssuedAt        time.Time       `json:"issuedAt"`
	ExpiresAt       *time.Time      `json:"expiresAt,omitempty"`
	OwnerIdentityID string          `json:"ownerIdentityID"`
	Proof           *Proof          `json:"proof,omitempty"`
}

// Proof binds a credential to its owner's key.
type Proof struct {
	Type               string    `json:"type"`
	Created            time.Time `json:"created"`
	VerificationMethod string    `json:"verificationMethod"`
	ProofPurpose       string    `json:"proofPurpose"`
	// SignedMessage is the exact byte sequence that was signed. Its payload is the canonical body.
	SignedMessage  []byte `json:"signedMessage"`
	SignatureValue []byte `json:"signatureValue"`
}

// Validity sets the validity window of a new credential. A zero IssuedAt means now.
type Validity struct {
	IssuedAt  time.Time
	ExpiresAt *time.Time
}

type Status string

const (
	StatusValid            Status = "Valid"
	StatusExpired          Status = "Expired"
	StatusMalformedClaims  Status = "MalformedClaims"
	StatusSignatureInvalid Status = "SignatureInvalid"
	StatusOwnerNotFound    Status = "OwnerNotFound"
)

// VerificationResult is the outcome of Verify.
type VerificationResult struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Valid reports whether the credential passed every check.
func (r *VerificationResult) Valid() bool {
	return r.Status == StatusValid
}

// Store persists credentials. Get and Delete return walleterr.ErrDataNotFound for an unknown ID.
type Store interface {
	Put(ctx context.Context, cred *Credential) error
	Get(ctx context.Context, id string) (*Credential, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Credential, error)
	// ListValid returns credentials without expiry or expiring after now.
	ListValid(ctx context.Context, now time.Time) ([]*Credential, error)
	Delete(ctx context.Context, id string) error
}

type ServiceInterface interface {
	Issue(ctx context.Context, ownerID, credentialType, issuer string, claims json.RawMessage,
		validity Validity) (*Credential, error)
	ListForIdentity(ctx context.Context, identityID string) ([]*Credential, error)
	GetByID(ctx context.Context, id string) (*Credential, error)
	DeleteByID(ctx context.Context, id string) error
	ListValid(ctx context.Context, now time.Time) ([]*Credential, error)
	Verify(ctx context.Context, cred *Credential) (*VerificationResult, error)
	VerifyByID(ctx context.Context, id string) (*VerificationResult, error)
}

// IsValidAt reports whether the credential has not expired at now.
func (c *Credential) IsValidAt(now time.Time) bool {
	return c.ExpiresAt == nil || c.ExpiresAt.After(now)
}
