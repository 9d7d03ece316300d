// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-import/internal/config"
	"github.com/MKhiriev/go-vault-import/internal/crypto"
	"github.com/MKhiriev/go-vault-import/models"
)

// vaultEnv points the configuration at a fresh SQLite vault.
func vaultEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_DB_DRIVER", config.DriverSQLite)
	t.Setenv("STORAGE_DB_DATABASE_URI", filepath.Join(dir, "vault.db"))
	t.Setenv("APP_MASTER_PASSWORD", "master-secret")
	t.Setenv("APP_TOKEN_SIGN_KEY", "sign-key")
	t.Setenv("CONFIG", "")
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

// ─────────────────────────────────────────────
// Commands against a SQLite vault
// ─────────────────────────────────────────────

func TestFileCommand_ImportsCSV(t *testing.T) {
	dir := vaultEnv(t)
	path := filepath.Join(dir, "accounts.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"mail;ACME;Web;https://mail.example;alice;s3cret;\n"+
			"orphan;;Web;;bob;pw;\n"), 0o600))

	out, err := execute(t, "file", path, "--delimiter", ";", "--json")
	require.NoError(t, err)

	var result models.ImportResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "csv", result.Format)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "line 2", result.Failures[0].Position)
}

// writeNativeExport writes a 3.2.0 export whose account password is
// encrypted under exportPass. The sections themselves are plain.
func writeNativeExport(t *testing.T, path, exportPass, password string) {
	t.Helper()

	pass, key, err := crypto.NewCipher(crypto.DefaultArgon2Params).Encrypt([]byte(password), exportPass)
	require.NoError(t, err)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("Root")
	meta := root.CreateElement("Meta")
	meta.CreateElement("Generator").SetText("sysPass")
	meta.CreateElement("Version").SetText("3.2.0")

	category := root.CreateElement("Categories").CreateElement("Category")
	category.CreateAttr("id", "1")
	category.CreateElement("name").SetText("Web")
	client := root.CreateElement("Clients").CreateElement("Client")
	client.CreateAttr("id", "2")
	client.CreateElement("name").SetText("ACME")

	account := root.CreateElement("Accounts").CreateElement("Account")
	account.CreateAttr("id", "3")
	account.CreateElement("name").SetText("mail")
	account.CreateElement("login").SetText("bob")
	account.CreateElement("categoryId").SetText("1")
	account.CreateElement("clientId").SetText("2")
	account.CreateElement("pass").SetText(pass)
	account.CreateElement("key").SetText(key)

	require.NoError(t, doc.WriteToFile(path))
}

func TestFileCommand_NativeExportIsRewrappedUnderVaultMaster(t *testing.T) {
	dir := vaultEnv(t)
	path := filepath.Join(dir, "export.xml")
	writeNativeExport(t, path, "export-pass", "s3cret!")

	out, err := execute(t, "file", path, "--export-pass", "export-pass", "--json")
	require.NoError(t, err)

	var result models.ImportResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, 1, result.Imported, out)

	db, err := sql.Open("sqlite3", filepath.Join(dir, "vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var pass, key string
	require.NoError(t, db.QueryRow(`SELECT pass, pass_key FROM accounts WHERE name = 'mail'`).Scan(&pass, &key))

	cipher := crypto.NewCipher(crypto.DefaultArgon2Params)
	plain, err := cipher.Decrypt(pass, key, "master-secret")
	require.NoError(t, err, "stored password must open with APP_MASTER_PASSWORD")
	assert.Equal(t, "s3cret!", string(plain))

	_, err = cipher.Decrypt(pass, key, "export-pass")
	assert.Error(t, err, "stored password must no longer open with the export passphrase")
}

func TestFileCommand_FatalErrorFails(t *testing.T) {
	dir := vaultEnv(t)
	path := filepath.Join(dir, "broken.csv")
	require.NoError(t, os.WriteFile(path, []byte("only,three,fields\n"), 0o600))

	_, err := execute(t, "file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestFileCommand_MissingFile(t *testing.T) {
	dir := vaultEnv(t)

	_, err := execute(t, "file", filepath.Join(dir, "nope.csv"))
	assert.ErrorContains(t, err, "import file not found")
}

func TestMigrateCommand(t *testing.T) {
	vaultEnv(t)

	out, err := execute(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "vault schema is up to date (sqlite)")
}

func TestTokenCommand(t *testing.T) {
	vaultEnv(t)

	_, err := execute(t, "token")
	assert.ErrorContains(t, err, "--user is required")

	out, err := execute(t, "token", "--user", "4")
	require.NoError(t, err)
	assert.Regexp(t, `^[\w-]+\.[\w-]+\.[\w-]+\n$`, out)
}

func TestLDAPCommand_NotConfigured(t *testing.T) {
	vaultEnv(t)
	t.Setenv("LDAP_URL", "")

	_, err := execute(t, "ldap", "groups")
	assert.ErrorContains(t, err, "directory import is not configured")
}

func TestCommands_RequireDatabase(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "")
	t.Setenv("CONFIG", "")

	_, err := execute(t, "migrate")
	assert.ErrorIs(t, err, config.ErrInvalidStorageConfigs)
}

// ─────────────────────────────────────────────
// Options
// ─────────────────────────────────────────────

func testApp() *app {
	return &app{cfg: &config.StructuredConfig{
		App:    config.App{MasterPassword: "configured-master"},
		Import: config.Import{Delimiter: ","},
		LDAP: config.LDAP{
			Mapping:          models.DefaultDirectoryAttributeMapping(),
			DefaultGroupID:   2,
			DefaultProfileID: 3,
		},
	}}
}

func TestImportFlags_Options(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetErr(&bytes.Buffer{})

	opts, err := (&importFlags{userID: 1, groupID: 5}).options(cmd, testApp())
	require.NoError(t, err)
	assert.Equal(t, models.ImportOptions{
		Delimiter:      ',',
		DefaultUserID:  1,
		DefaultGroupID: 5,
	}, opts, "the vault master password is never assumed to be the exporter's")

	opts, err = (&importFlags{delimiter: "\t", masterPassphrase: "given"}).options(cmd, testApp())
	require.NoError(t, err)
	assert.Equal(t, '\t', opts.Delimiter)
	assert.Equal(t, "given", opts.MasterPassphrase)

	_, err = (&importFlags{delimiter: "::"}).options(cmd, testApp())
	assert.ErrorContains(t, err, "single character")
}

func TestImportFlags_AskPass(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	var prompt bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetErr(&prompt)

	readPassword = func(int) ([]byte, error) { return []byte("typed"), nil }
	opts, err := (&importFlags{askPass: true}).options(cmd, testApp())
	require.NoError(t, err)
	assert.Equal(t, "typed", opts.ExportPassphrase)
	assert.Contains(t, prompt.String(), "Export passphrase: ")

	opts, err = (&importFlags{askPass: true, exportPassphrase: "flag"}).options(cmd, testApp())
	require.NoError(t, err)
	assert.Equal(t, "flag", opts.ExportPassphrase, "a passphrase given as flag is not prompted for")

	readPassword = func(int) ([]byte, error) { return nil, errors.New("not a terminal") }
	_, err = (&importFlags{askPass: true}).options(cmd, testApp())
	assert.ErrorContains(t, err, "not a terminal")
}

func TestDirectoryOptions(t *testing.T) {
	opts := directoryOptions(testApp(), &directoryFlags{})
	assert.Equal(t, int64(2), opts.Directory.DefaultGroupID)
	assert.Equal(t, int64(3), opts.Directory.DefaultProfileID)
	assert.Equal(t, models.DefaultDirectoryAttributeMapping(), opts.Directory.Mapping)
	assert.Empty(t, opts.Directory.Filter)

	opts = directoryOptions(testApp(), &directoryFlags{filter: "(cn=*)", userID: 9, groupID: 7, profileID: 8})
	assert.Equal(t, "(cn=*)", opts.Directory.Filter)
	assert.Equal(t, int64(9), opts.DefaultUserID)
	assert.Equal(t, int64(7), opts.Directory.DefaultGroupID)
	assert.Equal(t, int64(8), opts.Directory.DefaultProfileID)
}

// ─────────────────────────────────────────────
// Output
// ─────────────────────────────────────────────

func TestPrintResult_Text(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	result := models.ImportResult{
		ID:        "run-1",
		Format:    "ldap-users",
		Imported:  2,
		Skipped:   1,
		Warnings:  []string{"document carries no integrity hash"},
		Failures:  []models.ImportFailure{{Record: "bob", Position: "uid=bob,dc=example", Reason: "already exists"}},
		Directory: &models.DirectoryTally{Seen: 4, Synced: 2, Errored: 1},
		StartedAt: start, FinishedAt: start.Add(1500 * time.Millisecond),
	}

	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, result, false))

	out := buf.String()
	assert.Contains(t, out, "Import run-1 (ldap-users): 2 imported, 1 skipped in 1.5s")
	assert.Contains(t, out, "Directory: 4 seen, 2 synced, 1 errored")
	assert.Contains(t, out, "warning: document carries no integrity hash")
	assert.Contains(t, out, "uid=bob,dc=example")
	assert.Contains(t, out, "already exists")
}
