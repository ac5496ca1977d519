/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package identity -package identity -source=identity_service.go -mock_names keyCustodian=MockKeyCustodian

package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/biowallet/internal/logfields"
	"github.com/trustbloc/biowallet/pkg/kms"
	"github.com/trustbloc/biowallet/pkg/locker"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

var logger = log.New("identity-ledger")

const (
	keyAliasPrefix     = "did_key_"
	aliasSuffixBytes   = 4
	identityLockPrefix = "identity:"
	selectionLockKey   = "identity-selection"
)

var _ ServiceInterface = (*Service)(nil)

type keyCustodian interface {
	GenerateBoundKey(ctx context.Context, alias string) (*kms.KeyHandle, error)
	GetPublicKey(ctx context.Context, alias string) (*kms.PublicKey, error)
	DeleteKey(ctx context.Context, alias string) error
}

type Config struct {
	Store     Store
	Custodian keyCustodian
	Locker    locker.Locker
	Now       func() time.Time
}

// Service is the identity ledger.
type Service struct {
	store     Store
	custodian keyCustodian
	locker    locker.Locker
	now       func() time.Time
}

func New(config *Config) *Service {
	now := config.Now
	if now == nil {
		now = time.Now
	}

	lock := config.Locker
	if lock == nil {
		lock = locker.NewKeyedMutex()
	}

	return &Service{
		store:     config.Store,
		custodian: config.Custodian,
		locker:    lock,
		now:       now,
	}
}

// CreateIdentity generates a biometric-bound key and records a new identity for it. If the
// identity cannot be persisted the key is deleted again.
func (s *Service) CreateIdentity(ctx context.Context, displayName string) (*Identity, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("display name is empty: %w", walleterr.ErrInvalidInput)
	}

	createdAt := s.now().UTC().Truncate(time.Millisecond)

	alias, err := newKeyAlias(createdAt)
	if err != nil {
		return nil, err
	}

	if _, err = s.custodian.GenerateBoundKey(ctx, alias); err != nil {
		return nil, fmt.Errorf("create identity: %w", err)
	}

	pk, err := s.custodian.GetPublicKey(ctx, alias)
	if err != nil {
		return nil, s.rollbackKey(ctx, alias, fmt.Errorf("export public key: %w", err))
	}

	id, err := DeriveIdentifier(pk.DER)
	if err != nil {
		return nil, s.rollbackKey(ctx, alias, err)
	}

	identity := &Identity{
		ID:          id,
		DisplayName: displayName,
		KeyAlias:    alias,
		CreatedAt:   createdAt,
	}

	if err = s.store.Create(ctx, identity); err != nil {
		return nil, s.rollbackKey(ctx, alias, fmt.Errorf("persist identity: %w", err))
	}

	logger.Info("Identity created", logfields.WithIdentityID(id), logfields.WithKeyAlias(alias))

	return identity, nil
}

// ListIdentities returns all identities ordered by creation time.
func (s *Service) ListIdentities(ctx context.Context) ([]*Identity, error) {
	identities, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}

	selected, err := s.store.GetSelected(ctx)
	if err != nil {
		return nil, fmt.Errorf("get selection: %w", err)
	}

	lo.ForEach(identities, func(item *Identity, _ int) {
		item.IsSelected = selected != "" && item.ID == selected
	})

	sort.SliceStable(identities, func(i, j int) bool {
		return identities[i].CreatedAt.Before(identities[j].CreatedAt)
	})

	return identities, nil
}

// GetIdentity returns the identity or walleterr.ErrNotFound.
func (s *Service) GetIdentity(ctx context.Context, id string) (*Identity, error) {
	var identity *Identity

	err := s.withLock(ctx, identityLockPrefix+id, func() error {
		var err error

		identity, err = s.get(ctx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	selected, err := s.store.GetSelected(ctx)
	if err != nil {
		return nil, fmt.Errorf("get selection: %w", err)
	}

	identity.IsSelected = selected == identity.ID

	return identity, nil
}

// GetSelected returns the selected identity, or nil when nothing is selected or the selection points
// at an identity that no longer exists.
func (s *Service) GetSelected(ctx context.Context) (*Identity, error) {
	selected, err := s.store.GetSelected(ctx)
	if err != nil {
		return nil, fmt.Errorf("get selection: %w", err)
	}

	if selected == "" {
		return nil, nil //nolint:nilnil
	}

	identity, err := s.store.Get(ctx, selected)
	if err != nil {
		if errors.Is(err, walleterr.ErrDataNotFound) {
			logger.Warn("Selection points at a missing identity", logfields.WithIdentityID(selected))

			return nil, nil //nolint:nilnil
		}

		return nil, fmt.Errorf("get selected identity: %w", err)
	}

	identity.IsSelected = true

	return identity, nil
}

// Select makes id the selected identity.
func (s *Service) Select(ctx context.Context, id string) error {
	return s.withLock(ctx, identityLockPrefix+id, func() error {
		if _, err := s.get(ctx, id); err != nil {
			return err
		}

		return s.withLock(ctx, selectionLockKey, func() error {
			if err := s.store.SetSelected(ctx, id); err != nil {
				return fmt.Errorf("select identity: %w", err)
			}

			logger.Debug("Identity selected", logfields.WithIdentityID(id))

			return nil
		})
	})
}

// Rename changes the display name only.
func (s *Service) Rename(ctx context.Context, id, displayName string) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return fmt.Errorf("display name is empty: %w", walleterr.ErrInvalidInput)
	}

	return s.withLock(ctx, identityLockPrefix+id, func() error {
		identity, err := s.get(ctx, id)
		if err != nil {
			return err
		}

		identity.DisplayName = displayName
		identity.IsSelected = false

		if err = s.store.Update(ctx, identity); err != nil {
			return fmt.Errorf("rename identity: %w", err)
		}

		return nil
	})
}

// DeleteIdentity deletes the key, then the identity record, then clears the selection if it
// pointed at the identity. If the key cannot be deleted the record is kept.
func (s *Service) DeleteIdentity(ctx context.Context, id string) error {
	return s.withLock(ctx, identityLockPrefix+id, func() error {
		identity, err := s.get(ctx, id)
		if err != nil {
			return err
		}

		if err = s.custodian.DeleteKey(ctx, identity.KeyAlias); err != nil {
			logger.Error("Identity key deletion failed", logfields.WithIdentityID(id),
				logfields.WithKeyAlias(identity.KeyAlias), log.WithError(err))

			return fmt.Errorf("delete identity key: %w", err)
		}

		if err = s.store.Delete(ctx, id); err != nil && !errors.Is(err, walleterr.ErrDataNotFound) {
			return fmt.Errorf("delete identity: %w", err)
		}

		err = s.withLock(ctx, selectionLockKey, func() error {
			selected, selErr := s.store.GetSelected(ctx)
			if selErr != nil {
				return fmt.Errorf("get selection: %w", selErr)
			}

			if selected != id {
				return nil
			}

			return s.store.SetSelected(ctx, "")
		})
		if err != nil {
			return fmt.Errorf("clear selection: %w", err)
		}

		logger.Info("Identity deleted", logfields.WithIdentityID(id))

		return nil
	})
}

func (s *Service) get(ctx context.Context, id string) (*Identity, error) {
	identity, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, walleterr.ErrDataNotFound) {
			return nil, fmt.Errorf("identity %s: %w", id, walleterr.ErrNotFound)
		}

		return nil, fmt.Errorf("get identity: %w", err)
	}

	return identity, nil
}

func (s *Service) rollbackKey(ctx context.Context, alias string, cause error) error {
	logger.Error("Identity creation failed", logfields.WithKeyAlias(alias), log.WithError(cause))

	if err := s.custodian.DeleteKey(ctx, alias); err != nil {
		logger.Error("Key cleanup failed", logfields.WithKeyAlias(alias), log.WithError(err))

		return fmt.Errorf("create identity: %w: %w: key %s left behind: %v",
			cause, walleterr.ErrOrphanedKey, alias, err)
	}

	return fmt.Errorf("create identity: %w", cause)
}

func (s *Service) withLock(ctx context.Context, key string, fn func() error) error {
	mutex := s.locker.NewMutex(key)

	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("lock %s: %w", key, err)
	}

	defer func() {
		if _, err := mutex.Unlock(); err != nil {
			logger.Warn("Unlock failed", logfields.WithAdditionalMessage(key), log.WithError(err))
		}
	}()

	return fn()
}

func newKeyAlias(createdAt time.Time) (string, error) {
	suffix := make([]byte, aliasSuffixBytes)

	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("generate key alias: %w", err)
	}

	return fmt.Sprintf("%s%d_%s", keyAliasPrefix, createdAt.UnixMilli(), hex.EncodeToString(suffix)), nil
}
