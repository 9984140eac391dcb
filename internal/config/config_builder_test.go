// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{SessionKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/journal"}},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultSessionName, cfg.App.SessionName)
	assert.Equal(t, DefaultSessionDuration, cfg.App.SessionDuration)
	assert.Equal(t, bcrypt.DefaultCost, cfg.App.PasswordHashCost)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs replace earlier values while zero fields keep them.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	first := minimalConfig()
	first.Server.HTTPAddress = "localhost:1000"
	first.App.PasswordHashCost = 12

	second := &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:2000"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:2000", cfg.Server.HTTPAddress)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "secret", cfg.App.SessionKey)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "empty DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty session key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = bcrypt.MaxCost + 1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_OverridesFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": "127.0.0.1:9000"},
		"app":    map[string]any{"password_hash_cost": 5},
	})

	cfg, err := newConfigBuilder().
		withFlags([]string{"-c", path, "-d", "journal.db", "-driver", "sqlite3", "-session-key", "k", "-a", "localhost:8080"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5, cfg.App.PasswordHashCost)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}
