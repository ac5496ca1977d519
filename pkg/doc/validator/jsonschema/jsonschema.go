/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/xeipuuv/gojsonschema"

	"github.com/trustbloc/biowallet/internal/logfields"
)

var logger = log.New("jsonschema")

// ErrSchemaViolation is returned when a document does not satisfy its schema.
var ErrSchemaViolation = errors.New("schema violation")

// Document holds the JSON schema document.
type Document map[string]interface{}

// Validator is a compiled JSON schema.
type Validator interface {
	ValidateJSON(doc []byte) error
}

type validatorFactory func(schema Document) (Validator, error)

// CachingValidator compiles each schema once, keyed by its $id, and reuses it.
type CachingValidator struct {
	cache           map[string]Validator
	createValidator validatorFactory
	mutex           sync.RWMutex
}

// NewCachingValidator returns a new caching JSON schema validator.
func NewCachingValidator() *CachingValidator {
	return &CachingValidator{
		cache:           make(map[string]Validator),
		createValidator: newValidator,
	}
}

// Validate validates the raw JSON document against the given schema.
func (c *CachingValidator) Validate(doc []byte, schemaID string, schema []byte) error {
	validator, err := c.get(schemaID, schema)
	if err != nil {
		return fmt.Errorf("get schema validator from cache: %w", err)
	}

	return validator.ValidateJSON(doc)
}

func (c *CachingValidator) get(schemaID string, schema []byte) (Validator, error) {
	c.mutex.RLock()
	v, ok := c.cache[schemaID]
	c.mutex.RUnlock()

	if ok {
		return v, nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if v, ok = c.cache[schemaID]; ok {
		return v, nil
	}

	schemaDoc, err := parseSchema(schema)
	if err != nil {
		return nil, err
	}

	if schemaDocID, _ := schemaDoc["$id"].(string); schemaDocID != schemaID {
		return nil, fmt.Errorf("the value of field '$id' in JSON schema [%s] does not match schema ID [%s]",
			schemaDocID, schemaID)
	}

	schemaValidator, err := c.createValidator(schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("create validator [%s]: %w", schemaID, err)
	}

	c.cache[schemaID] = schemaValidator

	logger.Debug("Created validator for JSON schema", logfields.WithJSONSchemaID(schemaID),
		logfields.WithJSONSchema(string(schema)))

	return schemaValidator, nil
}

func parseSchema(schema []byte) (Document, error) {
	var schemaDoc Document

	if err := json.Unmarshal(schema, &schemaDoc); err != nil {
		return nil, fmt.Errorf("unmarshal JSON schema: %w", err)
	}

	schemaIDObj, ok := schemaDoc["$id"]
	if !ok {
		return nil, fmt.Errorf("field '$id' not found in JSON schema")
	}

	if _, ok = schemaIDObj.(string); !ok {
		return nil, fmt.Errorf("expecting the value of field '$id' in JSON schema to be a string type but was %s",
			reflect.TypeOf(schemaIDObj))
	}

	return schemaDoc, nil
}

func newValidator(schema Document) (Validator, error) {
	schemaValidator, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile JSON schema: %w", err)
	}

	return &validator{schema: schemaValidator}, nil
}

type validator struct {
	schema *gojsonschema.Schema
}

func (v *validator) ValidateJSON(doc []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("loader error: %w", err)
	}

	if !result.Valid() {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, validationErrors(result.Errors()))
	}

	return nil
}

type validationErrors []gojsonschema.ResultError

func (e validationErrors) Error() string {
	msgs := make([]string, 0, len(e))

	for _, msg := range e {
		msgs = append(msgs, msg.String())
	}

	return fmt.Sprintf("[%s]", strings.Join(msgs, "; "))
}
