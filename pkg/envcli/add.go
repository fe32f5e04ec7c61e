// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envcli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.jetify.com/envsync/pkg/envsync"
)

type addCmdFlags struct {
	configFlags
	vars   []string
	update bool
	list   bool
}

func AddCmd() *cobra.Command {
	flags := &addCmdFlags{}
	command := &cobra.Command{
		Use:   "add [<NAME1>=<value1>]...",
		Short: "Add one or more environment variables",
		Long: heredoc.Doc(`
			Add one or more environment variables, given as --var NAME=VALUE or as
			arguments. Everything after the first '=' is the value. With --update,
			each variable is removed before it is added so existing values are
			replaced.
		`),
		Example: heredoc.Doc(`
			envsync add -v API_KEY=abc -v DB_URL=postgres://x
			envsync add --update -e production API_KEY=def
		`),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := envsync.ParseArgs(append(flags.vars, args...))
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			envVars, err := envsync.ParseArgs(append(flags.vars, args...))
			if err != nil {
				return errors.WithStack(err)
			}
			cmdCfg, err := flags.genConfig(cmd)
			if err != nil {
				return err
			}
			cmdCfg.Envsync.ListAfterAdd = flags.list
			return cmdCfg.Envsync.AddAll(cmd.Context(), envVars, flags.update)
		},
	}

	// StringArray rather than StringSlice: values may contain commas.
	command.Flags().StringArrayVarP(
		&flags.vars, "var", "v", nil, "Variable to add, as NAME=VALUE (repeatable)")
	command.Flags().BoolVarP(
		&flags.update, "update", "u", false, "Remove each variable before adding it")
	command.Flags().BoolVar(
		&flags.list, "list", true, "List the environment after each variable is added")
	flags.configFlags.register(command)

	return command
}
