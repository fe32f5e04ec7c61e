// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envsync

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.jetify.com/envsync/internal/envfile"
	"go.jetify.com/envsync/internal/git"
	"go.jetify.com/envsync/internal/scratch"
	"go.jetify.com/envsync/internal/tux"
)

// DefaultPullPath is where Pull writes when no path is given.
func DefaultPullPath(envName string) string {
	return ".env." + envName
}

// Pull writes the remote environment to path. Nothing is parsed locally.
func (e *Envsync) Pull(ctx context.Context, path string, yes bool) error {
	if path == "" {
		path = DefaultPullPath(e.EnvName)
	}
	if err := e.Client.Pull(ctx, e.EnvName, path, yes); err != nil {
		return errors.WithStack(err)
	}
	err := tux.WriteHeader(e.stderr(),
		"[DONE] Pulled environment variables to %q for environment: %s\n",
		path,
		strings.ToLower(e.EnvName),
	)
	if err != nil || !e.CheckGitIgnore {
		return err
	}
	return e.warnIfTracked(ctx, path)
}

// pull reads the remote environment through a scratch directory. The
// directory is removed before pull returns.
func (e *Envsync) pull(ctx context.Context) ([]EnvVar, error) {
	var envVars []EnvVar
	err := scratch.WithDir(func(dir string) error {
		path := filepath.Join(dir, ".env")
		if err := e.Client.Pull(ctx, e.EnvName, path, true); err != nil {
			return errors.WithStack(err)
		}
		var err error
		envVars, err = envfile.ReadDotenv(path)
		return err
	})
	if err != nil {
		return nil, err
	}
	return envVars, nil
}

// warnIfTracked warns when a pulled file sits in a git work tree without
// being ignored, since it holds secret values.
func (e *Envsync) warnIfTracked(ctx context.Context, path string) error {
	abs := path
	if !filepath.IsAbs(abs) {
		if e.WorkingDir == "" {
			return nil
		}
		abs = filepath.Join(e.WorkingDir, abs)
	}
	if !git.IsInGitRepo(ctx, filepath.Dir(abs)) {
		return nil
	}
	ignored, err := git.IsIgnored(ctx, filepath.Dir(abs), abs)
	if err != nil {
		e.logger().Debug("git check-ignore failed", "path", abs, "err", err)
		return nil
	}
	if ignored {
		return nil
	}
	return tux.WriteWarning(e.stderr(),
		"Warning: %s is not ignored by git. Add it to .gitignore to avoid committing secrets.\n",
		path,
	)
}
