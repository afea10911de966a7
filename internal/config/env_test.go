// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",
		"PORT":   "4000",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_BCRYPT_COST":    "11",
		"APP_LOG_LEVEL":      "warn",
		"APP_VERSION":        "1.0.0",

		"SERVER_ADDRESS":              "localhost:8080",
		"SERVER_GRPC_ADDRESS":         "localhost:9090",
		"SERVER_READ_TIMEOUT":         "5s",
		"SERVER_WRITE_TIMEOUT":        "6s",
		"SERVER_SHUTDOWN_TIMEOUT":     "7s",
		"SERVER_MAX_BODY_BYTES":       "2048",
		"SERVER_CORS_ALLOWED_ORIGINS": "http://a.test,http://b.test",

		"STORAGE_DB_DRIVER":         "sqlite",
		"STORAGE_DB_DATABASE_URI":   "file:test.db",
		"STORAGE_DB_AUTO_MIGRATE":   "true",
		"STORAGE_DB_MAX_OPEN_CONNS": "3",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "4000", cfg.Port)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 11, cfg.App.BcryptCost)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "1.0.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 6*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 7*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Storage.DB.AutoMigrate)
	assert.Equal(t, 3, cfg.Storage.DB.MaxOpenConns)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_DatabaseURLFallback(t *testing.T) {
	setEnvVars(t, map[string]string{"DATABASE_URL": "postgres://paas/db"})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "postgres://paas/db", cfg.Storage.DB.DSN)
}

func TestParseEnv_DatabaseURIWinsOverURL(t *testing.T) {
	setEnvVars(t, map[string]string{
		"DATABASE_URL":            "postgres://paas/db",
		"STORAGE_DB_DATABASE_URI": "postgres://explicit/db",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "postgres://explicit/db", cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "not-a-duration"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_BCRYPT_COST": "ten"})

	assert.Error(t, parseEnv(&StructuredConfig{}))
}

// setEnvVars clears every known config variable and sets vars for the
// duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"PORT",
		"ENV_FILE",

		"APP_TOKEN_SIGN_KEY",
		"APP_TOKEN_ISSUER",
		"APP_TOKEN_DURATION",
		"APP_BCRYPT_COST",
		"APP_LOG_LEVEL",
		"APP_VERSION",

		"SERVER_ADDRESS",
		"SERVER_GRPC_ADDRESS",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"SERVER_SHUTDOWN_TIMEOUT",
		"SERVER_MAX_BODY_BYTES",
		"SERVER_CORS_ALLOWED_ORIGINS",

		"STORAGE_DB_DRIVER",
		"STORAGE_DB_DATABASE_URI",
		"STORAGE_DB_AUTO_MIGRATE",
		"STORAGE_DB_MAX_OPEN_CONNS",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
	}
	for _, k := range keys {
		// t.Setenv registers a cleanup that restores the previous value.
		t.Setenv(k, "")
	}
}
