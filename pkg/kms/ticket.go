/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/trustbloc/biowallet/pkg/walleterr"
)

// AuthTicket authorizes exactly one signing operation with one key.
type AuthTicket struct {
	id       string
	alias    string
	redeemed atomic.Bool
}

// NewAuthTicket issues a ticket for the key with the given alias.
func NewAuthTicket(alias string) *AuthTicket {
	return &AuthTicket{
		id:    uuid.NewString(),
		alias: alias,
	}
}

func (t *AuthTicket) ID() string {
	return t.id
}

func (t *AuthTicket) Alias() string {
	return t.alias
}

// Redeem consumes the ticket for the given key alias.
func (t *AuthTicket) Redeem(alias string) error {
	if t == nil {
		return fmt.Errorf("no ticket: %w", walleterr.ErrInvalidTicket)
	}

	if t.alias != alias {
		return fmt.Errorf("ticket %s is not issued for key %s: %w", t.id, alias, walleterr.ErrInvalidTicket)
	}

	if !t.redeemed.CompareAndSwap(false, true) {
		return fmt.Errorf("ticket %s: %w", t.id, walleterr.ErrInvalidTicket)
	}

	return nil
}

// Redeemed reports whether the ticket was already used.
func (t *AuthTicket) Redeemed() bool {
	return t.redeemed.Load()
}
