// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// newTokenCmd issues a bearer token for the HTTP import API.
func newTokenCmd(g *globalOptions) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the HTTP import API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID <= 0 {
				return errors.New("--user is required")
			}

			a, ctx, err := g.openApp(cmdContext(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			token, err := a.services.AuthService.CreateToken(ctx, userID)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return err
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "User id the token is issued for")

	return cmd
}
