/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/biowallet/internal/logfields"
	"github.com/trustbloc/biowallet/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider and starts serving /metrics.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics HTTP server stopped", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the wallet.
type PromMetrics struct {
	signCount            prometheus.Counter
	signTime             prometheus.Histogram
	exportPublicKeyCount prometheus.Counter
	exportPublicKeyTime  prometheus.Histogram
	createKeyCount       prometheus.Counter
	createKeyTime        prometheus.Histogram
	keyOperationTime     *prometheus.HistogramVec
	ceremonyOutcome      *prometheus.CounterVec
	signAsIdentityTime   prometheus.Histogram
	issueCredentialTime  prometheus.Histogram
	verifyCredential     *prometheus.CounterVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		signCount: newCounter(metrics.KMS, metrics.KMSSignCountMetric,
			"The number of sign calls sent to the key store.", nil),
		signTime: newHistogram(metrics.KMS, metrics.KMSSignTimeMetric,
			"The time (in seconds) it takes the key store to sign.", nil),
		exportPublicKeyCount: newCounter(metrics.KMS, metrics.KMSExportPublicKeyCountMetric,
			"The number of public key exports.", nil),
		exportPublicKeyTime: newHistogram(metrics.KMS, metrics.KMSExportPublicKeyTimeMetric,
			"The time (in seconds) it takes to export a public key.", nil),
		createKeyCount: newCounter(metrics.KMS, metrics.KMSCreateKeyCountMetric,
			"The number of keys created.", nil),
		createKeyTime: newHistogram(metrics.KMS, metrics.KMSCreateKeyTimeMetric,
			"The time (in seconds) it takes to create a key.", nil),
		keyOperationTime: newHistogramVec(metrics.KMS, metrics.KMSKeyOperationTimeMetric,
			"The time (in seconds) of a key custodian operation.", "operation"),
		ceremonyOutcome: newCounterVec(metrics.Biometric, metrics.BiometricCeremonyMetric,
			"The number of biometric ceremonies by outcome.", "outcome"),
		signAsIdentityTime: newHistogram(metrics.Service, metrics.SignAsIdentityTimeMetric,
			"The time (in seconds) it takes to sign as an identity, prompt included.", nil),
		issueCredentialTime: newHistogram(metrics.Service, metrics.IssueCredentialTimeMetric,
			"The time (in seconds) it takes to issue a credential.", nil),
		verifyCredential: newCounterVec(metrics.Service, metrics.VerifyCredentialMetric,
			"The number of credential verifications by status.", "status"),
	}

	registerMetrics(pm)

	return pm
}

// SignCount increments the number of key store sign calls.
func (pm *PromMetrics) SignCount() {
	pm.signCount.Inc()
}

// SignTime records the time for sign.
func (pm *PromMetrics) SignTime(value time.Duration) {
	pm.signTime.Observe(value.Seconds())

	logger.Debug("kms sign time", logfields.WithDuration(value))
}

// ExportPublicKeyCount increments the number of public key exports.
func (pm *PromMetrics) ExportPublicKeyCount() {
	pm.exportPublicKeyCount.Inc()
}

// ExportPublicKeyTime records the time for public key export.
func (pm *PromMetrics) ExportPublicKeyTime(value time.Duration) {
	pm.exportPublicKeyTime.Observe(value.Seconds())

	logger.Debug("kms export public key time", logfields.WithDuration(value))
}

// CreateKeyCount increments the number of created keys.
func (pm *PromMetrics) CreateKeyCount() {
	pm.createKeyCount.Inc()
}

// CreateKeyTime records the time for key creation.
func (pm *PromMetrics) CreateKeyTime(value time.Duration) {
	pm.createKeyTime.Observe(value.Seconds())

	logger.Debug("kms create key time", logfields.WithDuration(value))
}

// KeyOperationTime records the time of a key custodian operation.
func (pm *PromMetrics) KeyOperationTime(operation string, value time.Duration) {
	pm.keyOperationTime.WithLabelValues(operation).Observe(value.Seconds())
}

// CeremonyOutcome counts a finished biometric ceremony.
func (pm *PromMetrics) CeremonyOutcome(outcome string) {
	pm.ceremonyOutcome.WithLabelValues(outcome).Inc()
}

// SignAsIdentityTime records the time for SignAsIdentity service call.
func (pm *PromMetrics) SignAsIdentityTime(value time.Duration) {
	pm.signAsIdentityTime.Observe(value.Seconds())

	logger.Debug("SignAsIdentity service call time", logfields.WithDuration(value))
}

// IssueCredentialTime records the time for IssueCredential service call.
func (pm *PromMetrics) IssueCredentialTime(value time.Duration) {
	pm.issueCredentialTime.Observe(value.Seconds())

	logger.Debug("IssueCredential service call time", logfields.WithDuration(value))
}

// VerifyCredentialResult counts a credential verification by status.
func (pm *PromMetrics) VerifyCredentialResult(status string) {
	pm.verifyCredential.WithLabelValues(status).Inc()
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.signCount, pm.signTime, pm.exportPublicKeyCount, pm.exportPublicKeyTime,
		pm.createKeyCount, pm.createKeyTime, pm.keyOperationTime, pm.ceremonyOutcome,
		pm.signAsIdentityTime, pm.issueCredentialTime, pm.verifyCredential,
	)
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCounterVec(subsystem, name, help string, labelNames ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newHistogramVec(subsystem, name, help string, labelNames ...string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}
