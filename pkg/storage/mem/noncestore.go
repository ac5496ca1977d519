/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"sync"
	"time"

	"github.com/trustbloc/biowallet/pkg/walleterr"
)

// NonceStore remembers reserved nonces until they expire.
type NonceStore struct {
	mu     sync.Mutex
	nonces map[string]time.Time
	ttl    time.Duration
	now    func() time.Time
}

const defaultNonceTTL = 24 * time.Hour

// NewNonceStore creates a NonceStore that forgets nonces after ttl; zero selects one day.
func NewNonceStore(ttl time.Duration) *NonceStore {
	if ttl <= 0 {
		ttl = defaultNonceTTL
	}

	return &NonceStore{
		nonces: map[string]time.Time{},
		ttl:    ttl,
		now:    time.Now,
	}
}

// Reserve records nonce. It returns walleterr.ErrNonceReused if nonce is already reserved.
func (s *NonceStore) Reserve(_ context.Context, nonce string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	for n, expiresAt := range s.nonces {
		if !expiresAt.After(now) {
			delete(s.nonces, n)
		}
	}

	if _, ok := s.nonces[nonce]; ok {
		return walleterr.ErrNonceReused
	}

	s.nonces[nonce] = now.Add(s.ttl)

	return nil
}
