// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envcli

import (
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"go.jetify.com/envsync/internal/envvar"
	"go.jetify.com/envsync/internal/protect"
)

type removeAllCmdFlags struct {
	configFlags
	protect []string
}

func RemoveAllCmd() *cobra.Command {
	flags := &removeAllCmdFlags{}
	defaults := protect.Default()
	command := &cobra.Command{
		Use:     "rm-all",
		Aliases: []string{"remove-all"},
		Short:   "Delete every unprotected variable in an environment",
		Long: heredoc.Docf(`
			Delete every variable in an environment except the protected ones.

			Protected by default: names starting with %s, and %s.
			Add more with --protect or $ENVSYNC_PROTECTED (comma separated).
		`,
			strings.Join(defaults.Prefixes, " or "),
			strings.Join(defaults.Names, ", "),
		),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCfg, err := flags.genConfig(cmd)
			if err != nil {
				return err
			}
			protected := defaults.With(flags.protect...).With(envvar.List("ENVSYNC_PROTECTED")...)
			return cmdCfg.Envsync.RemoveAll(cmd.Context(), protected)
		},
	}

	command.Flags().StringArrayVar(
		&flags.protect, "protect", nil, "Additional variable name to keep (repeatable)")
	flags.configFlags.register(command)

	return command
}
