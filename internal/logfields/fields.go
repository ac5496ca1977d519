/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAdditionalMessage = "additionalMessage"
	FieldCeremonyState     = "ceremonyState"
	FieldCommand           = "command"
	FieldCredentialID      = "credentialID"
	FieldCredentialType    = "credentialType"
	FieldDuration          = "duration"
	FieldIdentityID        = "identityID"
	FieldJSONSchema        = "JSONSchema"
	FieldJSONSchemaID      = "JSONSchemaID"
	FieldKeyAlias          = "keyAlias"
	FieldKMSType           = "kmsType"
	FieldPurpose           = "purpose"
	FieldStorageType       = "storageType"
	FieldUserLogLevel      = "userLogLevel"
	FieldVerification      = "verification"
)

// WithAdditionalMessage sets the AdditionalMessage field.
func WithAdditionalMessage(value string) zap.Field {
	return zap.String(FieldAdditionalMessage, value)
}

// WithCeremonyState sets the state of a biometric ceremony.
func WithCeremonyState(state string) zap.Field {
	return zap.String(FieldCeremonyState, state)
}

// WithCommand sets the Command field.
func WithCommand(command string) zap.Field {
	return zap.String(FieldCommand, command)
}

// WithCredentialID sets the CredentialID field.
func WithCredentialID(id string) zap.Field {
	return zap.String(FieldCredentialID, id)
}

// WithCredentialType sets the CredentialType field.
func WithCredentialType(credentialType string) zap.Field {
	return zap.String(FieldCredentialType, credentialType)
}

// WithDuration sets the Duration field.
func WithDuration(value time.Duration) zap.Field {
	return zap.Duration(FieldDuration, value)
}

// WithIdentityID sets the IdentityID field.
func WithIdentityID(id string) zap.Field {
	return zap.String(FieldIdentityID, id)
}

// WithJSONSchema sets the JSONSchema field.
func WithJSONSchema(value string) zap.Field {
	return zap.String(FieldJSONSchema, value)
}

// WithJSONSchemaID sets the JSONSchemaID field.
func WithJSONSchemaID(value string) zap.Field {
	return zap.String(FieldJSONSchemaID, value)
}

// WithKeyAlias sets the KeyAlias field.
func WithKeyAlias(alias string) zap.Field {
	return zap.String(FieldKeyAlias, alias)
}

// WithKMSType sets the KMSType field.
func WithKMSType(kmsType string) zap.Field {
	return zap.String(FieldKMSType, kmsType)
}

// WithPurpose sets the signing Purpose field.
func WithPurpose(purpose string) zap.Field {
	return zap.String(FieldPurpose, purpose)
}

// WithStorageType sets the StorageType field.
func WithStorageType(storageType string) zap.Field {
	return zap.String(FieldStorageType, storageType)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// WithVerification sets the Verification field to the given result object.
func WithVerification(result interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldVerification, result))
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
