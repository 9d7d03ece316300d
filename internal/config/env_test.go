// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_PASSWORD_SALT":   "salt",
		"APP_MASTER_PASSWORD": "master",
		"APP_TOKEN_SIGN_KEY":  "jwt_secret",
		"APP_TOKEN_ISSUER":    "test_issuer",
		"APP_TOKEN_DURATION":  "1h",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_MAX_UPLOAD_SIZE": "1024",

		"STORAGE_DB_DRIVER":       "sqlite",
		"STORAGE_DB_DATABASE_URI": "file:vault.db",

		"IMPORT_DELIMITER": ";",

		"LDAP_URL":                "ldap://localhost:389",
		"LDAP_BASE_DN":            "dc=example,dc=org",
		"LDAP_START_TLS":          "true",
		"LDAP_MAPPING_USER_LOGIN": "sAMAccountName",
		"LDAP_DEFAULT_GROUP_ID":   "3",
		"LDAP_DEFAULT_PROFILE_ID": "4",

		"S3_BUCKET": "imports",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "salt", cfg.App.PasswordSalt)
	assert.Equal(t, "master", cfg.App.MasterPassword)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(1024), cfg.Server.MaxUploadSize)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:vault.db", cfg.Storage.DB.DSN)

	assert.Equal(t, ";", cfg.Import.Delimiter)

	assert.Equal(t, "ldap://localhost:389", cfg.LDAP.URL)
	assert.Equal(t, "dc=example,dc=org", cfg.LDAP.BaseDN)
	assert.True(t, cfg.LDAP.StartTLS)
	assert.Equal(t, "sAMAccountName", cfg.LDAP.Mapping.UserLogin)
	assert.Equal(t, int64(3), cfg.LDAP.DefaultGroupID)
	assert.Equal(t, int64(4), cfg.LDAP.DefaultProfileID)

	assert.Equal(t, "imports", cfg.S3.Bucket)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, LDAP{}, cfg.LDAP)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "forever"})

	cfg, err := parseEnv()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "read environment")
}

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

		"APP_PASSWORD_SALT",
		"APP_MASTER_PASSWORD",
		"APP_TOKEN_SIGN_KEY",
		"APP_TOKEN_ISSUER",
		"APP_TOKEN_DURATION",
		"APP_VERSION",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_MAX_UPLOAD_SIZE",

		"STORAGE_DB_DRIVER",
		"STORAGE_DB_DATABASE_URI",

		"IMPORT_DELIMITER",
		"IMPORT_BASE_DIR",

		"LDAP_URL",
		"LDAP_BASE_DN",
		"LDAP_START_TLS",
		"LDAP_MAPPING_USER_LOGIN",
		"LDAP_DEFAULT_GROUP_ID",
		"LDAP_DEFAULT_PROFILE_ID",

		"S3_BUCKET",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}
