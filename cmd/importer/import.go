// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-import/internal/source"
	"github.com/MKhiriev/go-vault-import/models"
)

// importFlags are the options of the file based commands.
type importFlags struct {
	delimiter        string
	exportPassphrase string
	masterPassphrase string
	askPass          bool
	userID           int64
	groupID          int64
}

func (f *importFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.delimiter, "delimiter", "d", "", "CSV field delimiter (default from IMPORT_DELIMITER or ',')")
	cmd.Flags().StringVar(&f.exportPassphrase, "export-pass", "", "Passphrase the native XML export was encrypted with")
	cmd.Flags().StringVar(&f.masterPassphrase, "master-pass", "", "Master passphrase of the exporting installation; when it matches the vault master key, exported passwords are kept as they are")
	cmd.Flags().BoolVar(&f.askPass, "ask-pass", false, "Prompt for the export passphrase")
	cmd.Flags().Int64Var(&f.userID, "user", 0, "Owner user id of imported accounts")
	cmd.Flags().Int64Var(&f.groupID, "group", 0, "Owner group id of imported accounts")
}

// options builds the import options, prompting for the export passphrase
// when asked to.
func (f *importFlags) options(cmd *cobra.Command, a *app) (models.ImportOptions, error) {
	opts := models.ImportOptions{
		Delimiter:        a.cfg.Import.DelimiterRune(),
		ExportPassphrase: f.exportPassphrase,
		MasterPassphrase: f.masterPassphrase,
		DefaultUserID:    f.userID,
		DefaultGroupID:   f.groupID,
	}

	if f.delimiter != "" {
		delimiter, err := parseDelimiter(f.delimiter)
		if err != nil {
			return opts, err
		}
		opts.Delimiter = delimiter
	}

	var err error
	opts.ExportPassphrase, err = f.exportPass(cmd)
	return opts, err
}

// exportPass returns the export passphrase, prompting for it when --ask-pass
// is set and none was given.
func (f *importFlags) exportPass(cmd *cobra.Command) (string, error) {
	if !f.askPass || f.exportPassphrase != "" {
		return f.exportPassphrase, nil
	}
	return promptPassphrase(cmd.ErrOrStderr(), "Export passphrase")
}

func parseDelimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("--delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func newFileCmd(g *globalOptions) *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Import a CSV, native XML or KeePass XML file from disk",
		Long: `Import a file from disk. The format is detected from the file: CSV rows
are name,client,category,url,login,password,notes; XML files are told apart
by their generator.

Relative paths are resolved against IMPORT_BASE_DIR when it is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.runFileImport(cmd, flags, args[0], func(_ context.Context, a *app) (source.Source, error) {
				return source.NewLocalSource(a.cfg.Import.BaseDir, a.cfg.Server.MaxUploadSize, a.log), nil
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func newS3Cmd(g *globalOptions) *cobra.Command {
	flags := &importFlags{}
	var bucket string

	cmd := &cobra.Command{
		Use:   "s3 <key>",
		Short: "Import a file stored in an S3 bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.runFileImport(cmd, flags, args[0], func(ctx context.Context, a *app) (source.Source, error) {
				if bucket == "" {
					bucket = a.cfg.S3.Bucket
				}
				if bucket == "" {
					return nil, errors.New("no bucket given: set --bucket or S3_BUCKET")
				}
				client, err := source.NewS3Client(ctx, a.cfg.S3)
				if err != nil {
					return nil, err
				}
				return source.NewS3Source(client, bucket, a.cfg.Server.MaxUploadSize, a.log), nil
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&bucket, "bucket", "", "Bucket holding the file (default S3_BUCKET)")

	return cmd
}

// runFileImport opens name through the source built by newSource and
// imports it.
func (g *globalOptions) runFileImport(cmd *cobra.Command, flags *importFlags, name string, newSource func(context.Context, *app) (source.Source, error)) error {
	a, ctx, err := g.openApp(cmdContext(cmd), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	src, err := newSource(ctx, a)
	if err != nil {
		return err
	}

	opts, err := flags.options(cmd, a)
	if err != nil {
		return err
	}

	file, err := src.Open(ctx, name)
	if err != nil {
		return err
	}

	result, err := a.services.ImportService.ImportFile(ctx, file, opts)
	if err != nil {
		return fmt.Errorf("import %s: %w", name, err)
	}

	return printResult(cmd.OutOrStdout(), result, g.jsonOutput)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
