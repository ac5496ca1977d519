/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noncestore

import (
	"context"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/trustbloc/biowallet/pkg/walleterr"
)

const (
	keyPrefix  = "biowallet-nonce"
	defaultTTL = 24 * time.Hour
)

type redisClient interface {
	API() redisapi.UniversalClient
	ContextWithTimeout(ctx context.Context) (context.Context, context.CancelFunc)
}

// Store reserves signing nonces in Redis so that every wallet instance sharing the Redis sees the
// same set of used nonces.
type Store struct {
	ttl         time.Duration
	redisClient redisClient
}

// New creates Store. Reserved nonces expire after ttl; zero selects one day.
func New(redisClient redisClient, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Reserve records nonce. It returns walleterr.ErrNonceReused if nonce is already reserved.
func (s *Store) Reserve(ctx context.Context, nonce string) error {
	if nonce == "" {
		return fmt.Errorf("reserve nonce: %w", walleterr.ErrInvalidInput)
	}

	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	ok, err := s.redisClient.API().SetNX(ctxWithTimeout, resolveRedisKey(nonce), time.Now().UTC().UnixMilli(), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("reserve nonce: %w", err)
	}

	if !ok {
		return walleterr.ErrNonceReused
	}

	return nil
}

func resolveRedisKey(nonce string) string {
	return fmt.Sprintf("%s-%s", keyPrefix, nonce)
}
