// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command vault-import loads CSV, native XML and KeePass XML exports and
// LDAP directories into the vault database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "vault-import",
		Short: "Import credentials, groups and users into the vault",
		Long: `vault-import loads records into the vault database in one transaction
per run: either every record of a file is imported or nothing is.

Configuration is read from the environment (STORAGE_DB_DRIVER,
STORAGE_DB_DATABASE_URI, APP_MASTER_PASSWORD, LDAP_URL, S3_BUCKET, ...)
and an optional JSON file.

Examples:
  vault-import file accounts.csv --user 1 --group 2
  vault-import file export.xml --ask-pass
  vault-import s3 exports/2026/keepass.xml
  vault-import ldap groups --filter '(objectClass=posixGroup)'
  vault-import migrate
  vault-import remote file accounts.csv --server vault:8080 --token $TOKEN`,
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("vault-import %s (built %s, commit %s)\n", buildVersion, buildDate, buildCommit))

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", os.Getenv("CONFIG"), "Path to a JSON configuration file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Print the import result as JSON")

	rootCmd.AddCommand(
		newFileCmd(opts),
		newS3Cmd(opts),
		newLDAPCmd(opts),
		newMigrateCmd(opts),
		newTokenCmd(opts),
		newRemoteCmd(opts),
	)

	return rootCmd
}

func main() {
	if buildVersion == "" {
		buildVersion = "dev"
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}
