// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-import/models"
)

type directoryFlags struct {
	filter    string
	userID    int64
	groupID   int64
	profileID int64
}

func (f *directoryFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.filter, "filter", "", "LDAP filter replacing the configured one")
	cmd.PersistentFlags().Int64Var(&f.userID, "user", 0, "Owner user id recorded for the run")
	cmd.PersistentFlags().Int64Var(&f.groupID, "group", 0, "Group assigned to imported users (default LDAP_DEFAULT_GROUP_ID)")
	cmd.PersistentFlags().Int64Var(&f.profileID, "profile", 0, "Profile assigned to imported users (default LDAP_DEFAULT_PROFILE_ID)")
}

func newLDAPCmd(g *globalOptions) *cobra.Command {
	flags := &directoryFlags{}

	cmd := &cobra.Command{
		Use:   "ldap",
		Short: "Import groups or users from the configured LDAP directory",
	}
	flags.register(cmd)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "groups",
			Short: "Create a vault group for every directory group",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return g.runDirectoryImport(cmd, flags, func(ctx context.Context, a *app, opts models.ImportOptions) (models.ImportResult, error) {
					return a.services.ImportService.ImportDirectoryGroups(ctx, opts)
				})
			},
		},
		&cobra.Command{
			Use:   "users",
			Short: "Create a vault user for every directory user",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return g.runDirectoryImport(cmd, flags, func(ctx context.Context, a *app, opts models.ImportOptions) (models.ImportResult, error) {
					return a.services.ImportService.ImportDirectoryUsers(ctx, opts)
				})
			},
		},
	)

	return cmd
}

type directoryImport func(ctx context.Context, a *app, opts models.ImportOptions) (models.ImportResult, error)

func (g *globalOptions) runDirectoryImport(cmd *cobra.Command, flags *directoryFlags, run directoryImport) error {
	a, ctx, err := g.openApp(cmdContext(cmd), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	opts := directoryOptions(a, flags)
	result, err := run(ctx, a, opts)
	if err != nil {
		return fmt.Errorf("import directory: %w", err)
	}

	return printResult(cmd.OutOrStdout(), result, g.jsonOutput)
}

// directoryOptions merges the command flags over the LDAP configuration.
func directoryOptions(a *app, flags *directoryFlags) models.ImportOptions {
	ldapCfg := a.cfg.LDAP

	opts := models.ImportOptions{
		DefaultUserID: flags.userID,
		Directory: models.DirectoryOptions{
			Filter:           flags.filter,
			Mapping:          ldapCfg.Mapping,
			DefaultGroupID:   ldapCfg.DefaultGroupID,
			DefaultProfileID: ldapCfg.DefaultProfileID,
		},
	}
	if flags.groupID != 0 {
		opts.Directory.DefaultGroupID = flags.groupID
	}
	if flags.profileID != 0 {
		opts.Directory.DefaultProfileID = flags.profileID
	}
	return opts
}
