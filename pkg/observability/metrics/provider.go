/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "biowallet"

	// KMS key store operations.
	KMS                           = "kms"
	KMSSignCountMetric            = "sign_total"
	KMSSignTimeMetric             = "sign_seconds"
	KMSExportPublicKeyCountMetric = "export_public_key_total"
	KMSExportPublicKeyTimeMetric  = "export_public_key_seconds"
	KMSCreateKeyCountMetric       = "create_key_total"
	KMSCreateKeyTimeMetric        = "create_key_seconds"
	KMSKeyOperationTimeMetric     = "custodian_operation_seconds"

	// Biometric ceremonies.
	Biometric               = "biometric"
	BiometricCeremonyMetric = "ceremony_total"

	// Service operations.
	Service                   = "service"
	SignAsIdentityTimeMetric  = "signAsIdentity_seconds"
	IssueCredentialTimeMetric = "issueCredential_seconds"
	VerifyCredentialMetric    = "verifyCredential_total"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
//
//nolint:interfacebloat
type Metrics interface {
	SignCount()
	SignTime(value time.Duration)
	ExportPublicKeyCount()
	ExportPublicKeyTime(value time.Duration)
	CreateKeyCount()
	CreateKeyTime(value time.Duration)
	KeyOperationTime(operation string, value time.Duration)
	CeremonyOutcome(outcome string)
	SignAsIdentityTime(value time.Duration)
	IssueCredentialTime(value time.Duration)
	VerifyCredentialResult(status string)
}
