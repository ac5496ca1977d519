/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination kms_mocks_test.go -self_package kms -package kms -source=kms.go -mock_names SecureKeyStore=MockSecureKeyStore

package kms

import (
	"context"
)

type Type string

const (
	AWS   Type = "aws"
	Local Type = "local"
)

// Config configures the key store that holds identity signing keys.
type Config struct {
	KMSType     Type `json:"kmsType"`
	Endpoint    string
	Region      string
	AliasPrefix string
}

// SecurityLevel is the protection tier reported by a key store for a key.
type SecurityLevel int

const (
	SecurityLevelSoftware SecurityLevel = iota
	SecurityLevelTrustedEnvironment
	SecurityLevelStrongBox
)

func (l SecurityLevel) String() string {
	switch l {
	case SecurityLevelTrustedEnvironment:
		return "trusted-environment"
	case SecurityLevelStrongBox:
		return "strongbox"
	default:
		return "software"
	}
}

// Strength is the authenticator class required to unlock a key.
type Strength string

const (
	StrengthBiometricStrong Strength = "biometric-strong"
	StrengthBiometricWeak   Strength = "biometric-weak"
)

// Policy is the access policy attached to a key at generation time.
type Policy struct {
	UserAuthenticationRequired bool
	Strength                   Strength
	InvalidatedByEnrollment    bool
}

// BoundKeyPolicy is the policy of every identity key.
func BoundKeyPolicy() Policy {
	return Policy{
		UserAuthenticationRequired: true,
		Strength:                   StrengthBiometricStrong,
		InvalidatedByEnrollment:    true,
	}
}

// KeyHandle refers to a key held by a key store. It never carries private key material.
type KeyHandle struct {
	Alias string
	KeyID string
}

// PublicKey is an exported public key.
type PublicKey struct {
	Alias string
	// DER is the PKIX SubjectPublicKeyInfo encoding.
	DER []byte
	PEM string
}

// SecureKeyStore is a hardware-backed (or emulated) store of non-exportable signing keys.
type SecureKeyStore interface {
	Generate(ctx context.Context, alias string, policy Policy) (*KeyHandle, error)
	Handle(ctx context.Context, alias string) (*KeyHandle, error)
	Exists(ctx context.Context, alias string) (bool, error)
	PublicKey(ctx context.Context, handle *KeyHandle) ([]byte, error)
	Sign(ctx context.Context, handle *KeyHandle, msg []byte) ([]byte, error)
	Delete(ctx context.Context, handle *KeyHandle) error
	SecurityLevel(ctx context.Context, alias string) (SecurityLevel, error)
	// Validate returns walleterr.ErrKeyNotFound or walleterr.ErrKeyInvalidated when the key can no
	// longer sign.
	Validate(ctx context.Context, handle *KeyHandle) error
}
