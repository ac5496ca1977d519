/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/trustbloc/biowallet/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) SignCount()                                 {}
func (n *NoMetrics) SignTime(_ time.Duration)                   {}
func (n *NoMetrics) ExportPublicKeyCount()                      {}
func (n *NoMetrics) ExportPublicKeyTime(_ time.Duration)        {}
func (n *NoMetrics) CreateKeyCount()                            {}
func (n *NoMetrics) CreateKeyTime(_ time.Duration)              {}
func (n *NoMetrics) KeyOperationTime(_ string, _ time.Duration) {}
func (n *NoMetrics) CeremonyOutcome(_ string)                   {}
func (n *NoMetrics) SignAsIdentityTime(_ time.Duration)         {}
func (n *NoMetrics) IssueCredentialTime(_ time.Duration)        {}
func (n *NoMetrics) VerifyCredentialResult(_ string)            {}
