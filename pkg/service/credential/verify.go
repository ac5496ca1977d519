/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/biowallet/internal/logfields"
	"github.com/trustbloc/biowallet/pkg/service/signing"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

// Verify checks, in order, expiry, claims, owner and proof. A credential that fails a check is
// reported through the result; the error is only for failures to reach the stores.
func (s *Service) Verify(ctx context.Context, cred *Credential) (*VerificationResult, error) {
	if cred == nil {
		return nil, fmt.Errorf("verify credential: nil credential: %w", walleterr.ErrInvalidInput)
	}

	result, err := s.verify(ctx, cred)
	if err != nil {
		logger.Error("Credential verification failed", logfields.WithCredentialID(cred.ID), log.WithError(err))

		return nil, err
	}

	if s.metrics != nil {
		s.metrics.VerifyCredentialResult(string(result.Status))
	}

	logger.Debug("Credential verified", logfields.WithCredentialID(cred.ID), logfields.WithVerification(result))

	return result, nil
}

// VerifyByID loads a stored credential and verifies it.
func (s *Service) VerifyByID(ctx context.Context, id string) (*VerificationResult, error) {
	cred, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.Verify(ctx, cred)
}

func (s *Service) verify(ctx context.Context, cred *Credential) (*VerificationResult, error) {
	if !cred.IsValidAt(s.now()) {
		return failed(StatusExpired, "credential expired at %s", formatTime(*cred.ExpiresAt)), nil
	}

	if strings.TrimSpace(cred.Type) == "" {
		return failed(StatusMalformedClaims, "credential type is empty"), nil
	}

	if strings.TrimSpace(cred.Issuer) == "" {
		return failed(StatusMalformedClaims, "issuer is empty"), nil
	}

	claims, err := canonicalClaims(cred.Claims)
	if err != nil {
		return failed(StatusMalformedClaims, "%s", err), nil
	}

	if reason := s.checkClaims(cred.Type, claims); reason != "" {
		return failed(StatusMalformedClaims, "%s", reason), nil
	}

	owner, err := s.ledger.GetIdentity(ctx, cred.OwnerIdentityID)
	if err != nil {
		if errors.Is(err, walleterr.ErrNotFound) {
			return failed(StatusOwnerNotFound, "identity %s does not exist", cred.OwnerIdentityID), nil
		}

		return nil, fmt.Errorf("verify credential: owner: %w", err)
	}

	pk, err := s.custodian.GetPublicKey(ctx, owner.KeyAlias)
	if err != nil {
		if errors.Is(err, walleterr.ErrKeyNotFound) {
			return failed(StatusOwnerNotFound, "key of identity %s does not exist", owner.ID), nil
		}

		return nil, fmt.Errorf("verify credential: owner key: %w", err)
	}

	if reason := checkProof(cred, pk.DER); reason != "" {
		return failed(StatusSignatureInvalid, "%s", reason), nil
	}

	return &VerificationResult{Status: StatusValid}, nil
}

func checkProof(cred *Credential, publicKeyDER []byte) string {
	proof := cred.Proof

	switch {
	case proof == nil:
		return "credential has no proof"
	case proof.Type != ProofType:
		return fmt.Sprintf("unsupported proof type %q", proof.Type)
	case proof.VerificationMethod != cred.OwnerIdentityID+verificationKeyID:
		return fmt.Sprintf("verification method %q does not belong to the owner", proof.VerificationMethod)
	}

	msg, err := signing.ParseMessage(proof.SignedMessage)
	if err != nil {
		return err.Error()
	}

	body, err := CanonicalBody(cred)
	if err != nil {
		return err.Error()
	}

	if !bytes.Equal(msg.Payload, body) {
		return "signed payload does not match the credential"
	}

	if err = signing.Verify(publicKeyDER, proof.SignedMessage, proof.SignatureValue); err != nil {
		return err.Error()
	}

	return ""
}

func missingClaim(claims []byte, paths []string) (string, bool) {
	for _, path := range paths {
		if !gjson.GetBytes(claims, path).Exists() {
			return path, false
		}
	}

	return "", true
}

func failed(status Status, format string, args ...interface{}) *VerificationResult {
	return &VerificationResult{
		Status: status,
		Reason: fmt.Sprintf(format, args...),
	}
}
