/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"context"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/biowallet/internal/logfields"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

var logger = log.New("key-custodian")

type metricsProvider interface {
	KeyOperationTime(operation string, value time.Duration)
}

// Custodian owns every identity key. Private key material never leaves the key store.
type Custodian struct {
	store   SecureKeyStore
	metrics metricsProvider
}

// NewCustodian returns a custodian over the given key store.
func NewCustodian(store SecureKeyStore, metrics metricsProvider) *Custodian {
	return &Custodian{
		store:   store,
		metrics: metrics,
	}
}

// GenerateBoundKey creates an EC P-256 key that requires strong biometric authentication for every
// use and is invalidated when the biometric enrollment changes.
func (c *Custodian) GenerateBoundKey(ctx context.Context, alias string) (*KeyHandle, error) {
	defer c.observe("generate", time.Now())

	handle, err := c.store.Generate(ctx, alias, BoundKeyPolicy())
	if err != nil {
		logger.Error("Key generation failed", logfields.WithKeyAlias(alias), log.WithError(err))

		return nil, fmt.Errorf("generate key %s: %w: %w", alias, walleterr.ErrKeyGeneration, err)
	}

	logger.Debug("Key generated", logfields.WithKeyAlias(alias))

	return handle, nil
}

// GetPublicKey exports the public half of the key as DER and PEM.
func (c *Custodian) GetPublicKey(ctx context.Context, alias string) (*PublicKey, error) {
	defer c.observe("public-key", time.Now())

	handle, err := c.handle(ctx, alias)
	if err != nil {
		return nil, err
	}

	der, err := c.store.PublicKey(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("export public key %s: %w", alias, err)
	}

	return &PublicKey{
		Alias: alias,
		DER:   der,
		PEM:   string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
	}, nil
}

// Exists reports whether the key store holds a key with the given alias.
func (c *Custodian) Exists(ctx context.Context, alias string) (bool, error) {
	exists, err := c.store.Exists(ctx, alias)
	if err != nil {
		return false, fmt.Errorf("check key %s: %w", alias, err)
	}

	return exists, nil
}

// CheckUsable returns an error wrapping walleterr.ErrKeyNotFound or walleterr.ErrKeyInvalidated when
// the key cannot sign any more, for example after a biometric enrollment change.
func (c *Custodian) CheckUsable(ctx context.Context, alias string) error {
	handle, err := c.handle(ctx, alias)
	if err != nil {
		return err
	}

	if err = c.store.Validate(ctx, handle); err != nil {
		if errors.Is(err, walleterr.ErrKeyInvalidated) {
			logger.Warn("Key invalidated", logfields.WithKeyAlias(alias))
		}

		return fmt.Errorf("key %s unusable: %w", alias, err)
	}

	return nil
}

// IsHardwareBound reports whether the key lives in a dedicated secure element.
func (c *Custodian) IsHardwareBound(ctx context.Context, alias string) (bool, error) {
	level, err := c.store.SecurityLevel(ctx, alias)
	if err != nil {
		return false, fmt.Errorf("security level of key %s: %w", alias, err)
	}

	return level == SecurityLevelStrongBox, nil
}

// DeleteKey removes the key. Deleting a missing key is not an error.
func (c *Custodian) DeleteKey(ctx context.Context, alias string) error {
	defer c.observe("delete", time.Now())

	handle, err := c.store.Handle(ctx, alias)
	if err != nil {
		if errors.Is(err, walleterr.ErrKeyNotFound) {
			return nil
		}

		return fmt.Errorf("delete key %s: %w", alias, err)
	}

	if err = c.store.Delete(ctx, handle); err != nil && !errors.Is(err, walleterr.ErrKeyNotFound) {
		logger.Error("Key deletion failed", logfields.WithKeyAlias(alias), log.WithError(err))

		return fmt.Errorf("delete key %s: %w", alias, err)
	}

	logger.Debug("Key deleted", logfields.WithKeyAlias(alias))

	return nil
}

// Handle resolves the handle of an existing key.
func (c *Custodian) Handle(ctx context.Context, alias string) (*KeyHandle, error) {
	return c.handle(ctx, alias)
}

// Sign redeems the ticket and signs msg with the key. The ticket is consumed even if the key store
// fails to sign.
func (c *Custodian) Sign(ctx context.Context, handle *KeyHandle, ticket *AuthTicket, msg []byte) ([]byte, error) {
	defer c.observe("sign", time.Now())

	if handle == nil {
		return nil, fmt.Errorf("sign: nil key handle: %w", walleterr.ErrInvalidInput)
	}

	if err := ticket.Redeem(handle.Alias); err != nil {
		return nil, fmt.Errorf("sign with key %s: %w", handle.Alias, err)
	}

	sig, err := c.store.Sign(ctx, handle, msg)
	if err != nil {
		logger.Warn("Key store sign failed", logfields.WithKeyAlias(handle.Alias), log.WithError(err))

		return nil, fmt.Errorf("sign with key %s: %w", handle.Alias, err)
	}

	return sig, nil
}

func (c *Custodian) handle(ctx context.Context, alias string) (*KeyHandle, error) {
	handle, err := c.store.Handle(ctx, alias)
	if err != nil {
		if errors.Is(err, walleterr.ErrKeyNotFound) {
			return nil, fmt.Errorf("key %s: %w", alias, err)
		}

		return nil, fmt.Errorf("resolve key %s: %w", alias, err)
	}

	return handle, nil
}

func (c *Custodian) observe(operation string, start time.Time) {
	if c.metrics != nil {
		c.metrics.KeyOperationTime(operation, time.Since(start))
	}
}
