// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the API client.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the configuration of cmd/client, assembled from
// [StructuredConfig]. Command-line flags are left to the client itself.
type ClientConfig struct {
	Adapter  ClientAdapter
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from
// defaults, the .env file and the environment.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder(nil).
		withDefaults().
		withDotEnv().
		withEnv().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
