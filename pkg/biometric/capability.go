/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package biometric

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/trustbloc/biowallet/pkg/kms"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

// Capability signs exactly one message with an authenticated key. It holds no key material.
type Capability struct {
	custodian keyCustodian
	handle    *kms.KeyHandle
	ticket    *kms.AuthTicket
	used      atomic.Bool
}

func newCapability(custodian keyCustodian, handle *kms.KeyHandle, ticket *kms.AuthTicket) *Capability {
	return &Capability{
		custodian: custodian,
		handle:    handle,
		ticket:    ticket,
	}
}

// KeyAlias returns the alias of the key the capability signs with.
func (c *Capability) KeyAlias() string {
	return c.handle.Alias
}

// Sign signs msg. The capability is spent after the first call whatever the result.
func (c *Capability) Sign(ctx context.Context, msg []byte) ([]byte, error) {
	if !c.used.CompareAndSwap(false, true) {
		return nil, walleterr.ErrCapabilityConsumed
	}

	sig, err := c.custodian.Sign(ctx, c.handle, c.ticket, msg)
	if err != nil {
		if errors.Is(err, walleterr.ErrKeyInvalidated) || errors.Is(err, walleterr.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %w", walleterr.ErrAuthentication, err)
		}

		return nil, err
	}

	return sig, nil
}

// Invalidate spends the capability without signing.
func (c *Capability) Invalidate() {
	c.used.Store(true)
}

// Used reports whether the capability is spent.
func (c *Capability) Used() bool {
	return c.used.Load()
}
