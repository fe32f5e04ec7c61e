// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envcli

import (
	"github.com/spf13/cobra"
)

type removeCmdFlags struct {
	configFlags
	names []string
}

func RemoveCmd() *cobra.Command {
	flags := &removeCmdFlags{}
	command := &cobra.Command{
		Use:   "rm [<NAME1>]...",
		Short: "Delete one or more environment variables",
		Long: "Delete one or more environment variables, given as --var NAME or " +
			"as arguments. Protected names are not checked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCfg, err := flags.genConfig(cmd)
			if err != nil {
				return err
			}
			return cmdCfg.Envsync.Remove(cmd.Context(), append(flags.names, args...)...)
		},
	}

	command.Flags().StringArrayVarP(
		&flags.names, "var", "v", nil, "Name of a variable to delete (repeatable)")
	flags.configFlags.register(command)

	return command
}
