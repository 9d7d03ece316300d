// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-import/internal/adapter"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/source"
	"github.com/MKhiriev/go-vault-import/models"
)

// newImportClient is replaced in tests.
var newImportClient = adapter.NewHTTPImportClient

// remoteOptions locate the import server.
type remoteOptions struct {
	server  string
	token   string
	timeout time.Duration
}

func (o *remoteOptions) client(g *globalOptions, cmd *cobra.Command) (adapter.ImportClient, *logger.Logger, error) {
	if o.server == "" {
		return nil, nil, errors.New("no server given: set --server or VAULT_IMPORT_SERVER")
	}

	log := logger.NewConsoleLogger("vault-import", cmd.ErrOrStderr(), g.verbose)
	c, err := newImportClient(o.server, o.token, o.timeout, log)
	if err != nil {
		return nil, nil, err
	}
	return c, log, nil
}

func newRemoteCmd(g *globalOptions) *cobra.Command {
	opts := &remoteOptions{}

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Run an import on a vault-import server instead of the local database",
		Long: `Send the import to a running vault-import server. The server applies its
own configuration; the token must be issued by it (see "vault-import token").`,
	}
	cmd.PersistentFlags().StringVar(&opts.server, "server", os.Getenv("VAULT_IMPORT_SERVER"), "Server address")
	cmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("VAULT_IMPORT_TOKEN"), "Bearer token")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", time.Minute, "Request timeout")

	cmd.AddCommand(
		newRemoteFileCmd(g, opts),
		newRemoteLDAPCmd(g, opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print the server version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, _, err := opts.client(g, cmd)
				if err != nil {
					return err
				}
				version, err := c.Version(cmdContext(cmd))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			},
		},
	)

	return cmd
}

func newRemoteFileCmd(g *globalOptions, opts *remoteOptions) *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Upload a file to the server and import it there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, log, err := opts.client(g, cmd)
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)

			upload, err := flags.upload(cmd)
			if err != nil {
				return err
			}

			file, err := source.NewLocalSource("", source.DefaultMaxSize, log).Open(ctx, args[0])
			if err != nil {
				return err
			}
			upload.Name = filepath.Base(file.Name)
			upload.Body = file.Body
			upload.ContentType = file.ContentType

			result, err := c.ImportFile(ctx, upload)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			return printResult(cmd.OutOrStdout(), result, g.jsonOutput)
		},
	}
	flags.register(cmd)

	return cmd
}

// upload builds the request options. Unset values fall back to the
// server's configuration.
func (f *importFlags) upload(cmd *cobra.Command) (adapter.FileUpload, error) {
	upload := adapter.FileUpload{
		MasterPassphrase: f.masterPassphrase,
		DefaultUserID:    f.userID,
		DefaultGroupID:   f.groupID,
	}

	if f.delimiter != "" {
		delimiter, err := parseDelimiter(f.delimiter)
		if err != nil {
			return upload, err
		}
		upload.Delimiter = delimiter
	}

	var err error
	upload.ExportPassphrase, err = f.exportPass(cmd)
	return upload, err
}

func newRemoteLDAPCmd(g *globalOptions, opts *remoteOptions) *cobra.Command {
	flags := &directoryFlags{}

	cmd := &cobra.Command{
		Use:   "ldap",
		Short: "Import groups or users from the server's LDAP directory",
	}
	flags.register(cmd)

	run := func(call func(adapter.ImportClient, context.Context, models.DirectoryImportRequest) (models.ImportResult, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			c, _, err := opts.client(g, cmd)
			if err != nil {
				return err
			}
			result, err := call(c, cmdContext(cmd), flags.request())
			if err != nil {
				return fmt.Errorf("import directory: %w", err)
			}
			return printResult(cmd.OutOrStdout(), result, g.jsonOutput)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "groups",
			Short: "Create a vault group for every directory group",
			Args:  cobra.NoArgs,
			RunE:  run(adapter.ImportClient.ImportDirectoryGroups),
		},
		&cobra.Command{
			Use:   "users",
			Short: "Create a vault user for every directory user",
			Args:  cobra.NoArgs,
			RunE:  run(adapter.ImportClient.ImportDirectoryUsers),
		},
	)

	return cmd
}

// request carries only the flags; the server fills in its LDAP defaults.
func (f *directoryFlags) request() models.DirectoryImportRequest {
	return models.DirectoryImportRequest{
		DefaultUserID: f.userID,
		Directory: models.DirectoryOptions{
			Filter:           f.filter,
			DefaultGroupID:   f.groupID,
			DefaultProfileID: f.profileID,
		},
	}
}
