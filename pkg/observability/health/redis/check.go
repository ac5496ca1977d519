/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisClient interface {
	API() redis.UniversalClient
}

// New returns a health check of the Redis client shared by the nonce registry and the locker.
func New(client redisClient) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := client.API().Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}

		return nil
	}
}
