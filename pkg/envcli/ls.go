// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envcli

import (
	"github.com/spf13/cobra"
	"go.jetify.com/envsync/pkg/envsync"
)

type listCmdFlags struct {
	configFlags
	ShowValues bool
	Format     string
	Remote     bool
}

func ListCmd() *cobra.Command {
	flags := &listCmdFlags{}

	command := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the variables stored in an environment",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return envsync.ValidateListFormat(flags.Format)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCfg, err := flags.genConfig(cmd)
			if err != nil {
				return err
			}
			return cmdCfg.Envsync.List(cmd.Context(), cmd.OutOrStdout(), envsync.ListOptions{
				Remote: flags.Remote,
				Show:   flags.ShowValues,
				Format: flags.Format,
			})
		},
	}

	command.Flags().BoolVarP(
		&flags.ShowValues,
		"show",
		"s",
		false,
		"display the value of each environment variable (secrets included)",
	)
	command.Flags().StringVarP(
		&flags.Format,
		"format",
		"f",
		"table",
		"format to use for displaying keys and values, one of: table, dotenv, json",
	)
	command.Flags().BoolVar(
		&flags.Remote,
		"remote",
		false,
		"print the listing from the vercel CLI as is",
	)
	flags.register(command)

	return command
}
