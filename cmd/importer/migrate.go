// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the vault database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, _, err := g.openApp(cmdContext(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "vault schema is up to date (%s)\n", a.db.Dialect())
			return err
		},
	}
}
