// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package vercel drives the `vercel env` subcommands of the Vercel CLI.
package vercel

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"go.jetify.com/envsync/internal/logging"
)

const DefaultBin = "vercel"

// Options are the global options passed to every vercel invocation.
type Options struct {
	Token string
	Scope string
	Cwd   string
}

func (o Options) args() []string {
	var args []string
	if o.Token != "" {
		args = append(args, "--token", o.Token)
	}
	if o.Scope != "" {
		args = append(args, "--scope", o.Scope)
	}
	if o.Cwd != "" {
		args = append(args, "--cwd", o.Cwd)
	}
	return args
}

type Client struct {
	runner  Runner
	options Options
	logger  *slog.Logger
}

func NewClient(runner Runner, options Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{runner: runner, options: options, logger: logger}
}

// Add runs `vercel env add NAME ENV`, which reads the value from stdin.
func (c *Client) Add(ctx context.Context, env, name string, value io.Reader) error {
	return c.run(ctx, Invocation{
		Args:  []string{"env", "add", name, env},
		Stdin: value,
	})
}

// Remove runs `vercel env rm NAME ENV --yes`.
func (c *Client) Remove(ctx context.Context, env, name string) error {
	return c.run(ctx, Invocation{
		Args: []string{"env", "rm", name, env, "--yes"},
	})
}

// List runs `vercel env ls ENV` and copies its output to w.
func (c *Client) List(ctx context.Context, env string, w io.Writer) error {
	return c.run(ctx, Invocation{
		Args:   []string{"env", "ls", env},
		Stdout: w,
	})
}

// Pull runs `vercel env pull --environment=ENV PATH`. Without yes the CLI
// asks before overwriting an existing file.
func (c *Client) Pull(ctx context.Context, env, path string, yes bool) error {
	args := []string{"env", "pull", "--environment=" + env, path}
	if yes {
		args = append(args, "--yes")
	}
	return c.run(ctx, Invocation{Args: args})
}

func (c *Client) run(ctx context.Context, inv Invocation) error {
	// Logged before the global options are added so the token stays out of
	// the log.
	c.logger.Debug("running vercel", "args", strings.Join(inv.Args, " "))
	inv.Args = append(inv.Args, c.options.args()...)
	err := c.runner.Run(ctx, inv)
	if err != nil {
		c.logger.Debug("vercel failed", "args", strings.Join(inv.Args[:2], " "), "err", err)
	}
	return err
}
