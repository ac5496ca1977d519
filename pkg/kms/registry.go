/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import "fmt"

// Factory creates a key store for the given config.
type Factory func(config *Config) (SecureKeyStore, error)

type Registry struct {
	defaultCfg *Config
	factories  map[Type]Factory
}

func NewRegistry(defaultCfg *Config, factories map[Type]Factory) *Registry {
	return &Registry{
		defaultCfg: defaultCfg,
		factories:  factories,
	}
}

func (r *Registry) GetKeyStore(config *Config) (SecureKeyStore, error) {
	if config == nil {
		config = r.defaultCfg
	}

	if config == nil {
		return nil, fmt.Errorf("no kms config")
	}

	factory, ok := r.factories[config.KMSType]
	if !ok {
		return nil, fmt.Errorf("unsupported kms type %q", config.KMSType)
	}

	return factory(config)
}
