// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envcli

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type pullCmdFlags struct {
	configFlags
	file string
	yes  bool
}

func PullCmd() *cobra.Command {
	flags := &pullCmdFlags{}
	command := &cobra.Command{
		Use:   "pull [<file>]",
		Short: "Write the environment's variables to a file",
		Long: "Write the environment's variables to a file, .env.<environment> " +
			"unless another path is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.file
			if len(args) == 1 {
				path = args[0]
			}
			cmdCfg, err := flags.genConfig(cmd)
			if err != nil {
				return err
			}
			// vercel resolves the target against --cwd when it is given.
			wd, err := filepath.Abs(flags.cwd)
			if err != nil {
				return errors.WithStack(err)
			}
			cmdCfg.Envsync.WorkingDir = wd
			cmdCfg.Envsync.CheckGitIgnore = true
			return cmdCfg.Envsync.Pull(cmd.Context(), path, flags.yes)
		},
	}

	command.Flags().StringVarP(
		&flags.file, "file", "f", "", "Target file (default .env.<environment>)")
	command.Flags().BoolVarP(
		&flags.yes, "yes", "y", false, "Overwrite the target file without asking")
	flags.configFlags.register(command)

	return command
}
