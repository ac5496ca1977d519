/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package locker

import (
	"context"
	"sync"

	"github.com/go-redsync/redsync/v4"
)

// Locker hands out named mutexes.
type Locker interface {
	NewMutex(key string, opts ...redsync.Option) Lock
}

// Lock is a mutex that locks based on a key.
type Lock interface {
	LockContext(ctx context.Context) error
	UnlockContext(ctx context.Context) (bool, error)
	Unlock() (bool, error)
}

// KeyedMutexLocker is an in-process mutex locker that locks based on a key. A key's entry lives only
// while the mutex is held or awaited.
type KeyedMutexLocker struct {
	mu      sync.Mutex
	mutexes map[string]*keyedEntry
}

type keyedEntry struct {
	sem  chan struct{}
	refs int
}

// NewKeyedMutex creates a new mutex locker.
func NewKeyedMutex() *KeyedMutexLocker {
	return &KeyedMutexLocker{
		mutexes: make(map[string]*keyedEntry),
	}
}

// NewMutex returns the mutex for key. Mutexes with equal keys exclude each other.
func (k *KeyedMutexLocker) NewMutex(key string, _ ...redsync.Option) Lock {
	return &KeyedMutex{
		key:    key,
		locker: k,
	}
}

func (k *KeyedMutexLocker) acquire(key string) *keyedEntry {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.mutexes[key]
	if !ok {
		e = &keyedEntry{sem: make(chan struct{}, 1)}
		k.mutexes[key] = e
	}

	e.refs++

	return e
}

func (k *KeyedMutexLocker) lookup(key string) (*keyedEntry, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.mutexes[key]

	return e, ok
}

func (k *KeyedMutexLocker) release(key string, e *keyedEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(k.mutexes, key)
	}
}

// KeyedMutex is a mutex that locks based on a key. Waiting for it can be abandoned through the context.
type KeyedMutex struct {
	key    string
	locker *KeyedMutexLocker
}

// LockContext locks the mutex or returns the context error.
func (k *KeyedMutex) LockContext(ctx context.Context) error {
	e := k.locker.acquire(k.key)

	select {
	case e.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		k.locker.release(k.key, e)

		return ctx.Err()
	}
}

// UnlockContext unlocks the mutex.
func (k *KeyedMutex) UnlockContext(_ context.Context) (bool, error) {
	return k.Unlock()
}

// Unlock unlocks the mutex. It reports false if the mutex was not locked.
func (k *KeyedMutex) Unlock() (bool, error) {
	e, ok := k.locker.lookup(k.key)
	if !ok {
		return false, nil
	}

	select {
	case <-e.sem:
		k.locker.release(k.key, e)

		return true, nil
	default:
		return false, nil
	}
}
