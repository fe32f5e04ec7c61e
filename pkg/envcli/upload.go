// Copyright 2022 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envcli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.jetify.com/envsync/internal/envfile"
)

type uploadCmdFlags struct {
	configFlags
	file   string
	format string
	list   bool
}

func UploadCmd() *cobra.Command {
	flags := &uploadCmdFlags{}
	command := &cobra.Command{
		Use:     "upload [<file>]",
		Aliases: []string{"add-from-file"},
		Short:   "Add the variables defined in a .env file",
		Long: "Add the variables defined in a .env file. The file should have " +
			"one NAME=VALUE per line; blank lines and # comments are ignored.",
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return envfile.ValidateFormat(flags.format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.file
			if len(args) == 1 {
				path = args[0]
			}
			cmdCfg, err := flags.genConfig(cmd)
			if err != nil {
				return err
			}
			wd, err := os.Getwd()
			if err != nil {
				return errors.WithStack(err)
			}
			cmdCfg.Envsync.WorkingDir = wd
			cmdCfg.Envsync.ListAfterAdd = flags.list
			return cmdCfg.Envsync.Upload(cmd.Context(), path, flags.format)
		},
	}

	command.Flags().StringVarP(
		&flags.file, "file", "f", ".env.example", "File with the variables to add")
	command.Flags().StringVar(
		&flags.format, "format", "", "File format: raw, dotenv or json (default raw, json for .json files)")
	command.Flags().BoolVar(
		&flags.list, "list", true, "List the environment after each variable is added")
	flags.configFlags.register(command)

	return command
}
