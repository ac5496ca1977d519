/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walleterr

type Component string

const (
	KeyCustodianComponent    Component = "key-custodian"
	BiometricGateComponent   Component = "biometric-gate"
	IdentityLedgerComponent  Component = "identity-ledger"
	SigningProtocolComponent Component = "signing-protocol"
	CredentialVaultComponent Component = "credential-vault"
	IdentityStoreComponent   Component = "identity-store"
	CredentialStoreComponent Component = "credential-store"
	NonceStoreComponent      Component = "nonce-store"
)

type ErrorCode string

const (
	InvalidValue ErrorCode = "invalid-value"
	NotFound     ErrorCode = "not-found"
	KeyFailure   ErrorCode = "key-failure"
	AuthFailure  ErrorCode = "auth-failure"
	AuthCanceled ErrorCode = "auth-canceled"
	AuthError    ErrorCode = "auth-error"
	Conflict     ErrorCode = "conflict"
	SystemError  ErrorCode = "system-error"
)
