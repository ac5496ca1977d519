/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonschema

import (
	"fmt"
	"sync"

	"github.com/trustbloc/biowallet/internal/logfields"
)

type typeSchema struct {
	id     string
	schema []byte
}

// TypeRegistry holds the claims schema of each credential type. Types without a schema are not
// checked.
type TypeRegistry struct {
	validator *CachingValidator

	mu      sync.RWMutex
	schemas map[string]typeSchema
}

// NewTypeRegistry returns an empty TypeRegistry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		validator: NewCachingValidator(),
		schemas:   map[string]typeSchema{},
	}
}

// Register compiles schema and binds it to credentialType, replacing any earlier schema.
func (r *TypeRegistry) Register(credentialType string, schema []byte) error {
	doc, err := parseSchema(schema)
	if err != nil {
		return fmt.Errorf("register schema for %s: %w", credentialType, err)
	}

	id, _ := doc["$id"].(string) //nolint:errcheck

	if _, err = r.validator.get(id, schema); err != nil {
		return fmt.Errorf("register schema for %s: %w", credentialType, err)
	}

	r.mu.Lock()
	r.schemas[credentialType] = typeSchema{id: id, schema: schema}
	r.mu.Unlock()

	logger.Info("Registered claims schema", logfields.WithCredentialType(credentialType),
		logfields.WithJSONSchemaID(id))

	return nil
}

// ValidateClaims validates claims of the given credential type. It returns an error wrapping
// ErrSchemaViolation when the claims do not match the schema.
func (r *TypeRegistry) ValidateClaims(credentialType string, claims []byte) error {
	r.mu.RLock()
	s, ok := r.schemas[credentialType]
	r.mu.RUnlock()

	if !ok {
		return nil
	}

	return r.validator.Validate(claims, s.id, s.schema)
}
