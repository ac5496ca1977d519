/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"

	"github.com/trustbloc/biowallet/pkg/service/identity"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

// IdentityStore keeps identities in memory.
type IdentityStore struct {
	mu         sync.RWMutex
	identities map[string]identity.Identity
	selected   string
}

// NewIdentityStore creates an empty IdentityStore.
func NewIdentityStore() *IdentityStore {
	return &IdentityStore{
		identities: map[string]identity.Identity{},
	}
}

func (s *IdentityStore) Create(_ context.Context, item *identity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.identities[item.ID]; ok {
		return fmt.Errorf("identity %s already exists", item.ID)
	}

	s.identities[item.ID] = stored(item)

	return nil
}

func (s *IdentityStore) Get(_ context.Context, id string) (*identity.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.identities[id]
	if !ok {
		return nil, walleterr.ErrDataNotFound
	}

	return &item, nil
}

func (s *IdentityStore) List(_ context.Context) ([]*identity.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.MapToSlice(s.identities, func(_ string, item identity.Identity) *identity.Identity {
		return &item
	}), nil
}

func (s *IdentityStore) Update(_ context.Context, item *identity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.identities[item.ID]; !ok {
		return walleterr.ErrDataNotFound
	}

	s.identities[item.ID] = stored(item)

	return nil
}

func (s *IdentityStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.identities[id]; !ok {
		return walleterr.ErrDataNotFound
	}

	delete(s.identities, id)

	return nil
}

func (s *IdentityStore) GetSelected(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selected, nil
}

func (s *IdentityStore) SetSelected(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = id

	return nil
}

func stored(item *identity.Identity) identity.Identity {
	c := *item
	c.IsSelected = false

	return c
}
