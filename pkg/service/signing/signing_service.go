/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package signing -package signing -source=signing_service.go -mock_names identityLedger=MockIdentityLedger,keyCustodian=MockKeyCustodian,biometricGate=MockBiometricGate,metricsProvider=MockMetricsProvider

package signing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/biowallet/internal/logfields"
	"github.com/trustbloc/biowallet/pkg/biometric"
	"github.com/trustbloc/biowallet/pkg/kms"
	"github.com/trustbloc/biowallet/pkg/service/identity"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

var logger = log.New("signing-protocol")

var _ ServiceInterface = (*Service)(nil)

type identityLedger interface {
	GetIdentity(ctx context.Context, id string) (*identity.Identity, error)
}

type keyCustodian interface {
	Handle(ctx context.Context, alias string) (*kms.KeyHandle, error)
	GetPublicKey(ctx context.Context, alias string) (*kms.PublicKey, error)
}

type biometricGate interface {
	Authenticate(ctx context.Context, handle *kms.KeyHandle, strength kms.Strength) (*biometric.Capability, error)
}

type metricsProvider interface {
	SignAsIdentityTime(value time.Duration)
}

type Config struct {
	Ledger    identityLedger
	Custodian keyCustodian
	Gate      biometricGate
	// Nonces is optional. Without it nonce uniqueness rests on crypto/rand alone.
	Nonces  NonceRegistry
	Metrics metricsProvider
	Now     func() time.Time
}

type Service struct {
	ledger    identityLedger
	custodian keyCustodian
	gate      biometricGate
	nonces    NonceRegistry
	metrics   metricsProvider
	now       func() time.Time
}

func New(config *Config) *Service {
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		ledger:    config.Ledger,
		custodian: config.Custodian,
		gate:      config.Gate,
		nonces:    config.Nonces,
		metrics:   config.Metrics,
		now:       now,
	}
}

// SignAsIdentity runs a biometric ceremony for the identity's key and signs a fresh message that
// embeds payload. Errors from the ceremony are returned wrapped, so walleterr.IsRecoverable and
// errors.Is work on them.
func (s *Service) SignAsIdentity(
	ctx context.Context,
	identityID string,
	payload []byte,
	purpose Purpose,
) (*Signature, error) {
	start := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.SignAsIdentityTime(time.Since(start))
		}
	}()

	if purpose != PurposeAuthenticate && purpose != PurposeIssueCredential {
		return nil, fmt.Errorf("unsupported purpose %q: %w", purpose, walleterr.ErrInvalidInput)
	}

	ident, err := s.ledger.GetIdentity(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("sign as identity: %w", err)
	}

	handle, err := s.custodian.Handle(ctx, ident.KeyAlias)
	if err != nil {
		return nil, fmt.Errorf("sign as identity: %w", err)
	}

	capability, err := s.gate.Authenticate(ctx, handle, kms.StrengthBiometricStrong)
	if err != nil {
		return nil, fmt.Errorf("sign as identity: %w", err)
	}

	msg, err := newMessage(s.now(), payload)
	if err != nil {
		capability.Invalidate()

		return nil, err
	}

	if s.nonces != nil {
		if err = s.nonces.Reserve(ctx, msg.Nonce); err != nil {
			capability.Invalidate()

			return nil, fmt.Errorf("reserve nonce: %w", err)
		}
	}

	signed := msg.Bytes()

	value, err := capability.Sign(ctx, signed)
	if err != nil {
		logger.Warn("Signing failed", logfields.WithIdentityID(identityID),
			logfields.WithPurpose(string(purpose)), log.WithError(err))

		return nil, fmt.Errorf("sign as identity: %w", err)
	}

	logger.Debug("Signed as identity", logfields.WithIdentityID(identityID),
		logfields.WithPurpose(string(purpose)))

	return &Signature{
		IdentityID:    identityID,
		KeyAlias:      ident.KeyAlias,
		Purpose:       purpose,
		Timestamp:     msg.Timestamp,
		Nonce:         msg.Nonce,
		SignedMessage: signed,
		Value:         value,
	}, nil
}

// VerifySignature checks sig against the current key of the identity that produced it.
func (s *Service) VerifySignature(ctx context.Context, sig *Signature) error {
	if sig == nil {
		return fmt.Errorf("verify signature: nil signature: %w", walleterr.ErrInvalidInput)
	}

	msg, err := ParseMessage(sig.SignedMessage)
	if err != nil {
		return fmt.Errorf("verify signature: %w", err)
	}

	if msg.Nonce != sig.Nonce || !msg.Timestamp.Equal(sig.Timestamp) {
		return fmt.Errorf("verify signature: envelope does not match signature metadata: %w", ErrInvalidSignature)
	}

	ident, err := s.ledger.GetIdentity(ctx, sig.IdentityID)
	if err != nil {
		return fmt.Errorf("verify signature: %w", err)
	}

	pk, err := s.custodian.GetPublicKey(ctx, ident.KeyAlias)
	if err != nil {
		return fmt.Errorf("verify signature: %w", err)
	}

	if err = Verify(pk.DER, sig.SignedMessage, sig.Value); err != nil {
		if errors.Is(err, ErrInvalidSignature) {
			logger.Info("Signature rejected", logfields.WithIdentityID(sig.IdentityID))
		}

		return fmt.Errorf("verify signature: %w", err)
	}

	return nil
}
