/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package local

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/trustbloc/biowallet/pkg/kms"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

var ErrNoBiometricEnrolled = errors.New("no biometric enrolled")

type entry struct {
	handle     kms.KeyHandle
	privateKey *ecdsa.PrivateKey
	policy     kms.Policy
	enrollment uint64
}

// Store is an in-process emulation of a hardware key store. Keys live in memory only.
type Store struct {
	mu         sync.RWMutex
	keys       map[string]*entry
	level      kms.SecurityLevel
	enrolled   bool
	enrollment uint64
}

// Opt configures the Store.
type Opt func(s *Store)

// WithSecurityLevel sets the security tier the store reports for its keys.
func WithSecurityLevel(level kms.SecurityLevel) Opt {
	return func(s *Store) { s.level = level }
}

// WithBiometricEnrolled sets whether a biometric is enrolled on the emulated device.
func WithBiometricEnrolled(enrolled bool) Opt {
	return func(s *Store) { s.enrolled = enrolled }
}

// New returns an emulated key store with a biometric enrolled and a TEE security level.
func New(opts ...Opt) *Store {
	s := &Store{
		keys:     map[string]*entry{},
		level:    kms.SecurityLevelTrustedEnvironment,
		enrolled: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ChangeEnrollment simulates the user adding or removing a biometric. Keys created with
// InvalidatedByEnrollment become permanently unusable.
func (s *Store) ChangeEnrollment() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enrollment++
	s.enrolled = true
}

// Generate creates an EC P-256 key under alias.
func (s *Store) Generate(_ context.Context, alias string, policy kms.Policy) (*kms.KeyHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if policy.UserAuthenticationRequired && !s.enrolled {
		return nil, ErrNoBiometricEnrolled
	}

	if _, ok := s.keys[alias]; ok {
		return nil, fmt.Errorf("alias %s already exists", alias)
	}

	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate P-256 key: %w", err)
	}

	e := &entry{
		handle: kms.KeyHandle{
			Alias: alias,
			KeyID: uuid.NewString(),
		},
		privateKey: privateKey,
		policy:     policy,
		enrollment: s.enrollment,
	}

	s.keys[alias] = e

	return lo.ToPtr(e.handle), nil
}

func (s *Store) Handle(_ context.Context, alias string) (*kms.KeyHandle, error) {
	e, err := s.get(alias)
	if err != nil {
		return nil, err
	}

	return lo.ToPtr(e.handle), nil
}

func (s *Store) Exists(_ context.Context, alias string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.keys[alias]

	return ok, nil
}

// PublicKey returns the PKIX DER encoding of the public key.
func (s *Store) PublicKey(_ context.Context, handle *kms.KeyHandle) ([]byte, error) {
	e, err := s.get(handle.Alias)
	if err != nil {
		return nil, err
	}

	return x509.MarshalPKIXPublicKey(&e.privateKey.PublicKey)
}

// Sign signs the SHA-256 digest of msg and returns an ASN.1 DER ECDSA signature.
func (s *Store) Sign(_ context.Context, handle *kms.KeyHandle, msg []byte) ([]byte, error) {
	e, err := s.get(handle.Alias)
	if err != nil {
		return nil, err
	}

	if err = s.checkEnrollment(e); err != nil {
		return nil, err
	}

	digest := sha256.Sum256(msg)

	return ecdsa.SignASN1(rand.Reader, e.privateKey, digest[:])
}

// Validate fails with walleterr.ErrKeyInvalidated once the enrollment changed after the key was
// created with InvalidatedByEnrollment.
func (s *Store) Validate(_ context.Context, handle *kms.KeyHandle) error {
	e, err := s.get(handle.Alias)
	if err != nil {
		return err
	}

	return s.checkEnrollment(e)
}

func (s *Store) Delete(_ context.Context, handle *kms.KeyHandle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keys[handle.Alias]; !ok {
		return fmt.Errorf("key %s: %w", handle.Alias, walleterr.ErrKeyNotFound)
	}

	delete(s.keys, handle.Alias)

	return nil
}

func (s *Store) SecurityLevel(_ context.Context, alias string) (kms.SecurityLevel, error) {
	if _, err := s.get(alias); err != nil {
		return kms.SecurityLevelSoftware, err
	}

	return s.level, nil
}

func (s *Store) get(alias string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.keys[alias]
	if !ok {
		return nil, fmt.Errorf("key %s: %w", alias, walleterr.ErrKeyNotFound)
	}

	return e, nil
}

func (s *Store) checkEnrollment(e *entry) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e.policy.InvalidatedByEnrollment && e.enrollment != s.enrollment {
		return fmt.Errorf("key %s: %w", e.handle.Alias, walleterr.ErrKeyInvalidated)
	}

	return nil
}
