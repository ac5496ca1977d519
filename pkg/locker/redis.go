/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package locker

import (
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	redisapi "github.com/redis/go-redis/v9"
)

const keyPrefix = "biowallet-lock:"

type redisClient interface {
	API() redisapi.UniversalClient
}

// RedisLocker is a distributed locker shared by every wallet instance that uses the same Redis.
type RedisLocker struct {
	rs *redsync.Redsync
}

// NewRedisLocker returns a locker backed by redsync.
func NewRedisLocker(client redisClient) *RedisLocker {
	return &RedisLocker{
		rs: redsync.New(goredis.NewPool(client.API())),
	}
}

// NewMutex returns a redsync mutex for key.
func (r *RedisLocker) NewMutex(key string, opts ...redsync.Option) Lock {
	return r.rs.NewMutex(keyPrefix+key, opts...)
}
