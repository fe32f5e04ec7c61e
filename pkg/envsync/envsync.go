// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envsync

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"go.jetify.com/envsync/internal/envfile"
	"go.jetify.com/envsync/internal/logging"
)

type EnvVar = envfile.EnvVar

// Client is the remote environment variable store. *vercel.Client
// implements it.
type Client interface {
	// Add creates a variable, reading its value from value.
	Add(ctx context.Context, env, name string, value io.Reader) error
	// Remove deletes a variable.
	Remove(ctx context.Context, env, name string) error
	// List writes a human readable listing of the environment to w.
	List(ctx context.Context, env string, w io.Writer) error
	// Pull writes the environment to a dotenv file at path.
	Pull(ctx context.Context, env, path string, yes bool) error
}

// Envsync runs the sync operations against one environment. Variables are
// processed one at a time. A failure on one variable is reported on Stderr
// and the run moves on to the next one.
type Envsync struct {
	// CheckGitIgnore warns after Pull when the written file is not ignored
	// by git.
	CheckGitIgnore bool
	Client         Client
	// EnvName is the target environment, such as development or production.
	EnvName string
	Logger  *slog.Logger
	// ListAfterAdd lists the environment after every successful add.
	ListAfterAdd bool
	Stderr       io.Writer
	Stdout       io.Writer
	// Strict makes bulk operations return the collected per-variable
	// failures instead of only reporting them.
	Strict     bool
	WorkingDir string
}

func (e *Envsync) logger() *slog.Logger {
	if e.Logger == nil {
		return logging.Discard()
	}
	return e.Logger
}

func (e *Envsync) stdout() io.Writer {
	if e.Stdout == nil {
		return os.Stdout
	}
	return e.Stdout
}

func (e *Envsync) stderr() io.Writer {
	if e.Stderr == nil {
		return os.Stderr
	}
	return e.Stderr
}

// finish decides what a bulk operation returns once every variable has been
// attempted.
func (e *Envsync) finish(errs *multierror.Error) error {
	if errs == nil {
		return nil
	}
	e.logger().Debug("bulk operation finished with failures", "count", errs.Len())
	if e.Strict {
		return errs.ErrorOrNil()
	}
	return nil
}
