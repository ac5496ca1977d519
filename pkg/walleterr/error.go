/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walleterr

import (
	"errors"
	"fmt"
	"strings"
)

// Error is an error annotated with the wallet component and operation that produced it.
type Error struct {
	Code      ErrorCode
	Component Component
	Operation string
	Err       error
}

// New creates an Error with the given code. The code is derived from err when empty.
func New(code ErrorCode, err error) *Error {
	if code == "" {
		code = CodeOf(err)
	}

	return &Error{
		Code: code,
		Err:  err,
	}
}

func (e *Error) Error() string {
	var description []string

	if e.Component != "" {
		description = append(description, fmt.Sprintf("component: %s", e.Component))
	}

	if e.Operation != "" {
		description = append(description, fmt.Sprintf("operation: %s", e.Operation))
	}

	return fmt.Sprintf("%s[%s]: %v", e.Code, strings.Join(description, "; "), e.Err)
}

func (e *Error) WithComponent(component Component) *Error {
	e.Component = component

	return e
}

func (e *Error) WithOperation(operation string) *Error {
	e.Operation = operation

	return e
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap annotates err with component and operation. Nil stays nil.
func Wrap(component Component, operation string, err error) error {
	if err == nil {
		return nil
	}

	var walletErr *Error
	if errors.As(err, &walletErr) {
		return err
	}

	return New("", err).WithComponent(component).WithOperation(operation)
}

// CodeOf maps a wallet sentinel error to its error code.
func CodeOf(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrDataNotFound), errors.Is(err, ErrKeyNotFound):
		return NotFound
	case errors.Is(err, ErrInvalidInput):
		return InvalidValue
	case errors.Is(err, ErrKeyGeneration), errors.Is(err, ErrKeyInvalidated), errors.Is(err, ErrOrphanedKey),
		errors.Is(err, ErrInvalidTicket):
		return KeyFailure
	case errors.Is(err, ErrAuthenticationFailed):
		return AuthFailure
	case errors.Is(err, ErrAuthenticationCanceled):
		return AuthCanceled
	case errors.Is(err, ErrAuthentication), errors.Is(err, ErrCapabilityConsumed):
		return AuthError
	case errors.Is(err, ErrBusy), errors.Is(err, ErrNonceReused):
		return Conflict
	default:
		return SystemError
	}
}
