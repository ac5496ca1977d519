/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aws

import (
	"os"
)

const defaultPendingWindowInDays = 7

type opts struct {
	keyAliasPrefix      string
	customKeyStoreID    string
	pendingWindowInDays int32
	awsClient           awsClient
}

// NewOpts create new opts populated with environment variable.
func newOpts() *opts {
	value, _ := os.LookupEnv("AWS_KEY_ALIAS_PREFIX")
	keyStoreID, _ := os.LookupEnv("AWS_CUSTOM_KEY_STORE_ID")

	return &opts{
		keyAliasPrefix:      value,
		customKeyStoreID:    keyStoreID,
		pendingWindowInDays: defaultPendingWindowInDays,
	}
}

func (o *opts) KeyAliasPrefix() string {
	return o.keyAliasPrefix
}

// Opts a Functional Options.
type Opts func(opts *opts)

// WithKeyAliasPrefix sets the given prefix in the returns Opts.
func WithKeyAliasPrefix(prefix string) Opts {
	return func(opts *opts) { opts.keyAliasPrefix = prefix }
}

// WithCustomKeyStoreID creates keys in the given CloudHSM custom key store.
func WithCustomKeyStoreID(id string) Opts {
	return func(opts *opts) { opts.customKeyStoreID = id }
}

// WithPendingWindowInDays sets the waiting period before a deleted key is destroyed.
func WithPendingWindowInDays(days int32) Opts {
	return func(opts *opts) { opts.pendingWindowInDays = days }
}

// WithAWSClient sets custom AWS client.
func WithAWSClient(client awsClient) Opts {
	return func(opts *opts) { opts.awsClient = client }
}
