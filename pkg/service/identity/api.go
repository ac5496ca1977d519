/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination api_mocks_test.go -self_package identity -package identity -source=api.go -mock_names Store=MockStore

package identity

import (
	"context"
	"time"
)

// Identity is a decentralized identifier bound to one biometric-gated signing key.
type Identity struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	KeyAlias    string    `json:"keyAlias"`
	CreatedAt   time.Time `json:"createdAt"`
	// IsSelected is derived from the selection pointer on every read and never stored.
	IsSelected bool `json:"isSelected"`
}

// Store persists identities and the single selection pointer.
// Get, Update and Delete return walleterr.ErrDataNotFound for an unknown ID.
type Store interface {
	Create(ctx context.Context, identity *Identity) error
	Get(ctx context.Context, id string) (*Identity, error)
	List(ctx context.Context) ([]*Identity, error)
	Update(ctx context.Context, identity *Identity) error
	Delete(ctx context.Context, id string) error
	// GetSelected returns the selected identity ID or "" when nothing is selected.
	GetSelected(ctx context.Context) (string, error)
	// SetSelected replaces the selection pointer. An empty id clears it.
	SetSelected(ctx context.Context, id string) error
}

type ServiceInterface interface {
	CreateIdentity(ctx context.Context, displayName string) (*Identity, error)
	ListIdentities(ctx context.Context) ([]*Identity, error)
	GetIdentity(ctx context.Context, id string) (*Identity, error)
	GetSelected(ctx context.Context) (*Identity, error)
	Select(ctx context.Context, id string) error
	Rename(ctx context.Context, id, displayName string) error
	DeleteIdentity(ctx context.Context, id string) error
}
