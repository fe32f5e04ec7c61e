// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envcli

import (
	"github.com/spf13/cobra"
	"go.jetify.com/envsync/internal/envvar"
	"go.jetify.com/envsync/internal/logging"
	"go.jetify.com/envsync/pkg/envsync"
	"go.jetify.com/envsync/pkg/vercel"
)

const (
	environmentFlagName = "env"
	debugFlagName       = "debug"
)

// to be composed into xyzCmdFlags structs
type configFlags struct {
	envName   string
	token     string
	scope     string
	cwd       string
	vercelBin string
	strict    bool
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(
		&f.envName,
		environmentFlagName,
		"e",
		envvar.Get("ENVSYNC_ENVIRONMENT", "development"),
		"Environment name, such as development, preview or production",
	)

	// The default is resolved in genConfig so the token never shows up in
	// --help output.
	cmd.PersistentFlags().StringVar(
		&f.token,
		"token",
		"",
		"Vercel token (defaults to $VERCEL_TOKEN)",
	)

	cmd.PersistentFlags().StringVar(
		&f.scope,
		"scope",
		"",
		"Vercel team or user scope",
	)

	cmd.PersistentFlags().StringVar(
		&f.cwd,
		"cwd",
		"",
		"Directory of the linked Vercel project",
	)

	cmd.PersistentFlags().StringVar(
		&f.vercelBin,
		"vercel-bin",
		envvar.Get("ENVSYNC_VERCEL_BIN", vercel.DefaultBin),
		"Path to the vercel CLI",
	)

	cmd.PersistentFlags().BoolVar(
		&f.strict,
		"strict",
		false,
		"Exit with an error if any variable fails",
	)
}

type CmdConfig struct {
	Envsync *envsync.Envsync
}

func (f *configFlags) genConfig(cmd *cobra.Command) (*CmdConfig, error) {
	debug, _ := cmd.Flags().GetBool(debugFlagName)
	level := "warn"
	if debug {
		level = "debug"
	}
	logger := logging.New(logging.Config{Level: level, Output: cmd.ErrOrStderr()})

	client := bootstrappedClient
	if client == nil {
		token := f.token
		if token == "" {
			token = envvar.Get("VERCEL_TOKEN", "")
		}
		client = vercel.NewClient(
			&vercel.ExecRunner{Bin: f.vercelBin, Stderr: cmd.ErrOrStderr()},
			vercel.Options{Token: token, Scope: f.scope, Cwd: f.cwd},
			logger,
		)
	}

	logger.Debug("config", "env", f.envName, "scope", f.scope, "cwd", f.cwd, "strict", f.strict)
	return &CmdConfig{
		Envsync: &envsync.Envsync{
			Client:  client,
			EnvName: f.envName,
			Logger:  logger,
			Stderr:  cmd.ErrOrStderr(),
			Stdout:  cmd.OutOrStdout(),
			Strict:  f.strict,
		},
	}, nil
}

var bootstrappedClient envsync.Client

// BootstrapClient replaces the vercel CLI client for all commands. Useful
// for using envsync programmatically or against another store.
func BootstrapClient(client envsync.Client) {
	bootstrappedClient = client
}
