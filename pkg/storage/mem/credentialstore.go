/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/trustbloc/biowallet/pkg/service/credential"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

// CredentialStore keeps credentials in memory.
type CredentialStore struct {
	mu          sync.RWMutex
	credentials map[string]*credential.Credential
}

// NewCredentialStore creates an empty CredentialStore.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		credentials: map[string]*credential.Credential{},
	}
}

func (s *CredentialStore) Put(_ context.Context, cred *credential.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credentials[cred.ID] = clone(cred)

	return nil
}

func (s *CredentialStore) Get(_ context.Context, id string) (*credential.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, ok := s.credentials[id]
	if !ok {
		return nil, walleterr.ErrDataNotFound
	}

	return clone(cred), nil
}

func (s *CredentialStore) ListByOwner(_ context.Context, ownerID string) ([]*credential.Credential, error) {
	return s.filter(func(cred *credential.Credential) bool {
		return cred.OwnerIdentityID == ownerID
	}), nil
}

func (s *CredentialStore) ListValid(_ context.Context, now time.Time) ([]*credential.Credential, error) {
	return s.filter(func(cred *credential.Credential) bool {
		return cred.IsValidAt(now)
	}), nil
}

func (s *CredentialStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.credentials[id]; !ok {
		return walleterr.ErrDataNotFound
	}

	delete(s.credentials, id)

	return nil
}

func (s *CredentialStore) filter(keep func(cred *credential.Credential) bool) []*credential.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.FilterMap(lo.Values(s.credentials), func(cred *credential.Credential, _ int) (*credential.Credential, bool) {
		if !keep(cred) {
			return nil, false
		}

		return clone(cred), true
	})
}

func clone(cred *credential.Credential) *credential.Credential {
	c := *cred
	c.Claims = append([]byte(nil), cred.Claims...)

	if cred.ExpiresAt != nil {
		expiresAt := *cred.ExpiresAt
		c.ExpiresAt = &expiresAt
	}

	if cred.Proof != nil {
		proof := *cred.Proof
		proof.SignedMessage = append([]byte(nil), cred.Proof.SignedMessage...)
		proof.SignatureValue = append([]byte(nil), cred.Proof.SignatureValue...)
		c.Proof = &proof
	}

	return &c
}
