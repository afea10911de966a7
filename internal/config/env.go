// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// databaseURLEnv is the conventional PaaS variable holding the database
// connection string.
const databaseURLEnv = "DATABASE_URL"

// parseEnv populates cfg from environment variables via the `env` and
// `envPrefix` tags of [StructuredConfig]. DATABASE_URL fills the DSN when
// STORAGE_DB_DATABASE_URI is not set.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = os.Getenv(databaseURLEnv)
	}

	return nil
}
