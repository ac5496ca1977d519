/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

var errClaimsNotObject = errors.New("claims must be a JSON object")

type canonicalBody struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Issuer    string          `json:"issuer"`
	IssuedAt  string          `json:"issuedAt"`
	ExpiresAt string          `json:"expiresAt,omitempty"`
	Owner     string          `json:"owner"`
	Claims    json.RawMessage `json:"claims"`
}

// CanonicalBody returns the byte sequence a credential proof signs. The proof itself is excluded.
func CanonicalBody(c *Credential) ([]byte, error) {
	claims, err := canonicalClaims(c.Claims)
	if err != nil {
		return nil, err
	}

	body := canonicalBody{
		ID:       c.ID,
		Type:     c.Type,
		Issuer:   c.Issuer,
		IssuedAt: formatTime(c.IssuedAt),
		Owner:    c.OwnerIdentityID,
		Claims:   claims,
	}

	if c.ExpiresAt != nil {
		body.ExpiresAt = formatTime(*c.ExpiresAt)
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal canonical body: %w", err)
	}

	return b, nil
}

// canonicalClaims re-encodes a JSON object with sorted keys, keeping number literals as they are.
func canonicalClaims(raw json.RawMessage) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]interface{}

	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: %w", errClaimsNotObject, err)
	}

	if obj == nil {
		return nil, errClaimsNotObject
	}

	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", errClaimsNotObject)
	}

	b, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("marshal claims: %w", err)
	}

	return b, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func truncate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
