/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package credential -package credential -source=credential_service.go -mock_names identityLedger=MockIdentityLedger,signer=MockSigner,keyCustodian=MockKeyCustodian,claimsValidator=MockClaimsValidator,metricsProvider=MockMetricsProvider

package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/biowallet/internal/logfields"
	"github.com/trustbloc/biowallet/pkg/doc/validator/jsonschema"
	"github.com/trustbloc/biowallet/pkg/kms"
	"github.com/trustbloc/biowallet/pkg/service/identity"
	"github.com/trustbloc/biowallet/pkg/service/signing"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

var logger = log.New("credential-vault")

var _ ServiceInterface = (*Service)(nil)

type identityLedger interface {
	GetIdentity(ctx context.Context, id string) (*identity.Identity, error)
}

type signer interface {
	SignAsIdentity(ctx context.Context, identityID string, payload []byte,
		purpose signing.Purpose) (*signing.Signature, error)
}

type keyCustodian interface {
	GetPublicKey(ctx context.Context, alias string) (*kms.PublicKey, error)
}

type claimsValidator interface {
	ValidateClaims(credentialType string, claims []byte) error
}

type metricsProvider interface {
	IssueCredentialTime(value time.Duration)
	VerifyCredentialResult(status string)
}

type Config struct {
	Store     Store
	Ledger    identityLedger
	Signer    signer
	Custodian keyCustodian
	// Schemas is optional.
	Schemas claimsValidator
	// RequiredClaims lists, per credential type, gjson paths that must be present in the claims.
	RequiredClaims map[string][]string
	Metrics        metricsProvider
	Now            func() time.Time
}

// Service is the credential vault.
type Service struct {
	store          Store
	ledger         identityLedger
	signer         signer
	custodian      keyCustodian
	schemas        claimsValidator
	requiredClaims map[string][]string
	metrics        metricsProvider
	now            func() time.Time
}

func New(config *Config) *Service {
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		store:          config.Store,
		ledger:         config.Ledger,
		signer:         config.Signer,
		custodian:      config.Custodian,
		schemas:        config.Schemas,
		requiredClaims: config.RequiredClaims,
		metrics:        config.Metrics,
		now:            now,
	}
}

// Issue signs a new credential as ownerID and stores it. Nothing is stored if any step fails.
func (s *Service) Issue(
	ctx context.Context,
	ownerID, credentialType, issuer string,
	claims json.RawMessage,
	validity Validity,
) (*Credential, error) {
	start := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.IssueCredentialTime(time.Since(start))
		}
	}()

	cred, err := s.prepare(ownerID, credentialType, issuer, claims, validity)
	if err != nil {
		return nil, err
	}

	if _, err = s.ledger.GetIdentity(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("issue credential: owner: %w", err)
	}

	body, err := CanonicalBody(cred)
	if err != nil {
		return nil, fmt.Errorf("issue credential: %w", err)
	}

	sig, err := s.signer.SignAsIdentity(ctx, ownerID, body, signing.PurposeIssueCredential)
	if err != nil {
		return nil, fmt.Errorf("issue credential: %w", err)
	}

	cred.Proof = &Proof{
		Type:               ProofType,
		Created:            sig.Timestamp,
		VerificationMethod: ownerID + verificationKeyID,
		ProofPurpose:       ProofPurpose,
		SignedMessage:      sig.SignedMessage,
		SignatureValue:     sig.Value,
	}

	if err = s.store.Put(ctx, cred); err != nil {
		return nil, fmt.Errorf("issue credential: persist: %w", err)
	}

	logger.Info("Credential issued", logfields.WithCredentialID(cred.ID),
		logfields.WithCredentialType(cred.Type), logfields.WithIdentityID(ownerID))

	return cred, nil
}

func (s *Service) prepare(
	ownerID, credentialType, issuer string,
	claims json.RawMessage,
	validity Validity,
) (*Credential, error) {
	credentialType = strings.TrimSpace(credentialType)
	issuer = strings.TrimSpace(issuer)

	switch {
	case ownerID == "":
		return nil, fmt.Errorf("owner is empty: %w", walleterr.ErrInvalidInput)
	case credentialType == "":
		return nil, fmt.Errorf("credential type is empty: %w", walleterr.ErrInvalidInput)
	case issuer == "":
		return nil, fmt.Errorf("issuer is empty: %w", walleterr.ErrInvalidInput)
	}

	canonical, err := canonicalClaims(claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", walleterr.ErrInvalidInput, err)
	}

	if reason := s.checkClaims(credentialType, canonical); reason != "" {
		return nil, fmt.Errorf("%s: %w", reason, walleterr.ErrInvalidInput)
	}

	issuedAt := validity.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = s.now()
	}

	cred := &Credential{
		ID:              idPrefix + uuid.NewString(),
		Type:            credentialType,
		Issuer:          issuer,
		Claims:          canonical,
		IssuedAt:        truncate(issuedAt),
		OwnerIdentityID: ownerID,
	}

	if validity.ExpiresAt != nil {
		expiresAt := truncate(*validity.ExpiresAt)

		if expiresAt.Before(cred.IssuedAt) {
			return nil, fmt.Errorf("expiry precedes issuance: %w", walleterr.ErrInvalidInput)
		}

		cred.ExpiresAt = &expiresAt
	}

	return cred, nil
}

// ListForIdentity returns the credentials owned by identityID, oldest first.
func (s *Service) ListForIdentity(ctx context.Context, identityID string) ([]*Credential, error) {
	creds, err := s.store.ListByOwner(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}

	sortByIssuance(creds)

	return creds, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Credential, error) {
	cred, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, walleterr.ErrDataNotFound) {
			return nil, fmt.Errorf("credential %s: %w", id, walleterr.ErrNotFound)
		}

		return nil, fmt.Errorf("get credential: %w", err)
	}

	return cred, nil
}

func (s *Service) DeleteByID(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, walleterr.ErrDataNotFound) {
			return fmt.Errorf("credential %s: %w", id, walleterr.ErrNotFound)
		}

		return fmt.Errorf("delete credential: %w", err)
	}

	logger.Info("Credential deleted", logfields.WithCredentialID(id))

	return nil
}

// ListValid returns credentials that have no expiry or expire after now.
func (s *Service) ListValid(ctx context.Context, now time.Time) ([]*Credential, error) {
	creds, err := s.store.ListValid(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list valid credentials: %w", err)
	}

	sortByIssuance(creds)

	return creds, nil
}

// checkClaims returns a non-empty reason if claims miss a required path or violate the type's
// schema.
func (s *Service) checkClaims(credentialType string, claims []byte) string {
	if path, ok := missingClaim(claims, s.requiredClaims[credentialType]); !ok {
		return fmt.Sprintf("required claim %q is missing", path)
	}

	if s.schemas != nil {
		if err := s.schemas.ValidateClaims(credentialType, claims); err != nil {
			if errors.Is(err, jsonschema.ErrSchemaViolation) {
				return err.Error()
			}

			return fmt.Sprintf("claims schema: %s", err)
		}
	}

	return ""
}

func sortByIssuance(creds []*Credential) {
	sort.SliceStable(creds, func(i, j int) bool {
		return creds[i].IssuedAt.Before(creds[j].IssuedAt)
	})
}
