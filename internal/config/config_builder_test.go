// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-vault-import/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// StructuredConfig holding only defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	want := &StructuredConfig{}
	want.Storage.DB.Driver = DriverPostgres
	want.Import.Delimiter = ","
	want.Server.MaxUploadSize = 32 << 20
	want.LDAP.PageSize = 500
	want.LDAP.Mapping = models.DefaultDirectoryAttributeMapping()
	assert.Equal(t, want, cfg)
}

// TestBuild_LaterConfigOverrides verifies that non-zero fields of later
// sources win.
func TestBuild_LaterConfigOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{Driver: DriverPostgres, DSN: "env"}}},
		&StructuredConfig{Storage: Storage{DB: DB{Driver: DriverSQLite}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "env", cfg.Storage.DB.DSN)
}

// TestBuild_Validates verifies that the merged config is validated.
func TestBuild_Validates(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "unknown driver",
			cfg:     &StructuredConfig{Storage: Storage{DB: DB{Driver: "mysql"}}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "http without sign key",
			cfg:     &StructuredConfig{Server: Server{HTTPAddress: ":8080"}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "ldap without base dn",
			cfg:     &StructuredConfig{LDAP: LDAP{URL: "ldap://localhost"}},
			wantErr: ErrInvalidLDAPConfigs,
		},
		{
			name:    "multi character delimiter",
			cfg:     &StructuredConfig{Import: Import{Delimiter: ";;"}},
			wantErr: ErrInvalidImportConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestRequireDatabase verifies the DSN check used by vault commands.
func TestRequireDatabase(t *testing.T) {
	cfg := &StructuredConfig{}
	assert.ErrorIs(t, cfg.RequireDatabase(), ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = "file:vault.db"
	assert.NoError(t, cfg.RequireDatabase())
}

// TestImport_DelimiterRune verifies multi-byte delimiters are decoded.
func TestImport_DelimiterRune(t *testing.T) {
	assert.Equal(t, ';', Import{Delimiter: ";"}.DelimiterRune())
	assert.Equal(t, '§', Import{Delimiter: "§"}.DelimiterRune())
}

// TestLoadConfig_ReadsJSON verifies that LoadConfig merges the given file.
func TestLoadConfig_ReadsJSON(t *testing.T) {
	clearEnvVars(t)
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "file:vault.db"
	payload.Storage.DB.Driver = DriverSQLite
	path := writeTempJSONConfig(t, payload)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:vault.db", cfg.Storage.DB.DSN)
}

func TestBuild_SourceErrorsAccumulate(t *testing.T) {
	first := errors.New("env broken")
	second := errors.New("json broken")

	b := newConfigBuilder().
		add(nil, first).
		add(&StructuredConfig{App: App{Version: "1.0.0"}}, nil).
		add(nil, second)

	assert.Len(t, b.configs, 1)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

func TestBuild_MergesDisjointLayers(t *testing.T) {
	cfg, err := newConfigBuilder().
		add(&StructuredConfig{App: App{Version: "1.0.0"}}, nil).
		add(&StructuredConfig{App: App{TokenIssuer: "vault"}}, nil).
		build()

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "vault", cfg.App.TokenIssuer)
}

func TestWithEnv(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	require.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.TokenIssuer = "json-issuer"
	good := writeTempJSONConfig(t, payload)

	malformed := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{not valid json"), 0o600))

	tests := []struct {
		name    string
		paths   []string
		wantLen int
		wantErr bool
	}{
		{name: "no path is a no-op", paths: []string{""}, wantLen: 1},
		{name: "valid file appended", paths: []string{good}, wantLen: 2},
		{name: "last path wins", paths: []string{"/nonexistent/first.json", "", good}, wantLen: 4},
		{name: "missing file", paths: []string{"/nonexistent/config.json"}, wantLen: 1, wantErr: true},
		{name: "malformed file", paths: []string{malformed}, wantLen: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			for _, p := range tt.paths {
				b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})
			}
			require.Same(t, b, b.withJSON())

			assert.Len(t, b.configs, tt.wantLen)
			if tt.wantErr {
				assert.Error(t, b.err)
				return
			}
			require.NoError(t, b.err)
			if tt.wantLen > len(tt.paths) {
				last := b.configs[len(b.configs)-1]
				assert.Equal(t, "json-version", last.App.Version)
				assert.Equal(t, "json-issuer", last.App.TokenIssuer)
			}
		})
	}

	t.Run("prior error is kept", func(t *testing.T) {
		b := newConfigBuilder()
		b.err = assert.AnError
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: good})
		b.withJSON()

		assert.ErrorIs(t, b.err, assert.AnError)
	})
}
