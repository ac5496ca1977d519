/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walleterr

import (
	"errors"
)

var (
	ErrDataNotFound = errors.New("data not found")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	ErrKeyGeneration  = errors.New("key generation failed")
	ErrKeyNotFound    = errors.New("key not found")
	ErrKeyInvalidated = errors.New("key permanently invalidated")
	ErrOrphanedKey    = errors.New("orphaned key")
	ErrInvalidTicket  = errors.New("invalid or already redeemed auth ticket")

	ErrBusy                   = errors.New("biometric ceremony already in progress")
	ErrAuthenticationFailed   = errors.New("biometric authentication failed")
	ErrAuthenticationCanceled = errors.New("biometric authentication canceled")
	ErrAuthentication         = errors.New("biometric authentication error")
	ErrCapabilityConsumed     = errors.New("signing capability already used")

	ErrNonceReused = errors.New("nonce already used")
)

// IsRecoverable reports whether the user may simply retry the operation that returned err.
// A failed match or a canceled prompt is recoverable; a hardware, lockout or key
// invalidation error is not.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrAuthenticationFailed) || errors.Is(err, ErrAuthenticationCanceled)
}
