// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envcli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"go.jetify.com/envsync/internal/envvar"
)

type rootCmdFlags struct {
	jsonErrors bool
	debug      bool
}

func RootCmd(flags *rootCmdFlags) *cobra.Command {
	command := &cobra.Command{
		Use:   "envsync",
		Short: "Sync environment variables with Vercel",
		Long: heredoc.Doc(`
			Sync environment variables with Vercel

			Pushes, pulls and removes the environment variables of a Vercel
			project by running the vercel CLI, one variable at a time. Values are
			handed to the CLI through a private scratch file, never on the
			command line.
		`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.jsonErrors {
				// Don't print anything to stderr so we can print the error in json
				cmd.SetErr(io.Discard)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		// we're manually showing usage
		SilenceUsage: true,
		// We manually capture errors so we can print different formats
		SilenceErrors: true,
	}

	command.PersistentFlags().BoolVar(
		&flags.jsonErrors,
		"json-errors", false, "Print errors in json format",
	)
	command.Flag("json-errors").Hidden = true

	command.PersistentFlags().BoolVar(
		&flags.debug,
		debugFlagName,
		envvar.Bool("ENVSYNC_DEBUG"),
		"Log every vercel invocation",
	)

	command.AddCommand(AddCmd())
	command.AddCommand(ListCmd())
	command.AddCommand(PullCmd())
	command.AddCommand(RemoveAllCmd())
	command.AddCommand(RemoveCmd())
	command.AddCommand(UploadCmd())
	command.AddCommand(versionCmd())
	command.SetUsageFunc(UsageFunc)
	return command
}

func Execute(ctx context.Context) int {
	return execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := &rootCmdFlags{}
	cmd := RootCmd(flags)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if flags.jsonErrors {
		var jsonErr struct {
			Error string `json:"error"`
		}
		jsonErr.Error = err.Error()
		b, err := json.Marshal(jsonErr)
		if err != nil {
			fmt.Fprintln(stderr, err)
		} else {
			fmt.Fprintln(stderr, string(b))
		}
	} else {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return 1
}
