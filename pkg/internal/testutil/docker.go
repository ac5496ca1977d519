/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	dctest "github.com/ory/dockertest/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	dockerMongoDBImage = "mongo"
	dockerMongoDBTag   = "4.0.0"
	dockerRedisImage   = "redis"
	dockerRedisTag     = "7.0.11"
	maxRetries         = 30
)

// StartMongoDB runs a MongoDB container for the test and returns its connection string. The test is
// skipped when Docker is not available.
func StartMongoDB(t *testing.T) string {
	t.Helper()

	pool := newPool(t)

	resource, err := pool.RunWithOptions(&dctest.RunOptions{
		Repository: dockerMongoDBImage,
		Tag:        dockerMongoDBTag,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pool.Purge(resource), "failed to purge MongoDB resource")
	})

	connString := fmt.Sprintf("mongodb://%s", resource.GetHostPort("27017/tcp"))

	require.NoError(t, retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		client, connErr := mongo.Connect(ctx, options.Client().ApplyURI(connString))
		if connErr != nil {
			return connErr
		}

		defer client.Disconnect(ctx) //nolint:errcheck

		return client.Ping(ctx, nil)
	}))

	return connString
}

// StartRedis runs a Redis container for the test and returns its address. The test is skipped when
// Docker is not available.
func StartRedis(t *testing.T) string {
	t.Helper()

	pool := newPool(t)

	resource, err := pool.RunWithOptions(&dctest.RunOptions{
		Repository: dockerRedisImage,
		Tag:        dockerRedisTag,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pool.Purge(resource), "failed to purge Redis resource")
	})

	addr := resource.GetHostPort("6379/tcp")

	require.NoError(t, retry(func() error {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()

		return client.Ping(context.Background()).Err()
	}))

	return addr
}

func newPool(t *testing.T) *dctest.Pool {
	t.Helper()

	pool, err := dctest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	return pool
}

func retry(fn func() error) error {
	return backoff.Retry(fn, backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), maxRetries))
}
