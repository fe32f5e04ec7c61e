// Copyright 2023 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envcli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.jetify.com/envsync/internal/build"
	"go.jetify.com/envsync/internal/tux"
)

func versionCmd() *cobra.Command {
	verbose := false
	command := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !verbose {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), build.Version)
				return err
			}
			tux.FTable(cmd.OutOrStdout(), nil, [][]string{
				{"Version", build.Version},
				{"Build Env", build.BuildEnv()},
				{"Platform", runtime.GOOS + "_" + runtime.GOARCH},
				{"Commit", build.Commit},
				{"Commit Time", build.CommitDate},
				{"Go Version", runtime.Version()},
			})
			return nil
		},
	}

	command.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"displays additional version information",
	)
	return command
}
