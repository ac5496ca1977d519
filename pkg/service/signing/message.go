/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signing

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/trustbloc/biowallet/pkg/walleterr"
)

const (
	messagePrefix = "VC"
	separator     = ":"
	nonceSize     = 16
)

// Message is the envelope that is actually signed: VC:<unixMillis>:<nonceHex>:<payload>.
type Message struct {
	Timestamp time.Time
	Nonce     string
	Payload   []byte
}

func newMessage(now time.Time, payload []byte) (*Message, error) {
	nonce := make([]byte, nonceSize)

	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return &Message{
		Timestamp: now.UTC().Truncate(time.Millisecond),
		Nonce:     hex.EncodeToString(nonce),
		Payload:   payload,
	}, nil
}

// Bytes returns the exact byte sequence that gets signed.
func (m *Message) Bytes() []byte {
	header := messagePrefix + separator + strconv.FormatInt(m.Timestamp.UnixMilli(), 10) +
		separator + m.Nonce + separator

	b := make([]byte, 0, len(header)+len(m.Payload))
	b = append(b, header...)

	return append(b, m.Payload...)
}

// ParseMessage splits a signed message into its parts. The payload may contain separators.
func ParseMessage(b []byte) (*Message, error) {
	parts := bytes.SplitN(b, []byte(separator), 4) //nolint:gomnd
	if len(parts) != 4 || string(parts[0]) != messagePrefix {
		return nil, fmt.Errorf("parse message: unexpected layout: %w", walleterr.ErrInvalidInput)
	}

	millis, err := strconv.ParseInt(string(parts[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse message timestamp: %w: %w", walleterr.ErrInvalidInput, err)
	}

	nonce := string(parts[2])

	if decoded, decErr := hex.DecodeString(nonce); decErr != nil || len(decoded) != nonceSize {
		return nil, fmt.Errorf("parse message: malformed nonce: %w", walleterr.ErrInvalidInput)
	}

	return &Message{
		Timestamp: time.UnixMilli(millis).UTC(),
		Nonce:     nonce,
		Payload:   parts[3],
	}, nil
}
