// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envsync

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.jetify.com/envsync/internal/envfile"
	"go.jetify.com/envsync/internal/scratch"
	"go.jetify.com/envsync/internal/tux"
)

// AddAll pushes envVars in order. With update, each variable is removed
// first so an existing value is replaced; a failed removal is ignored.
func (e *Envsync) AddAll(ctx context.Context, envVars []EnvVar, update bool) error {
	if len(envVars) == 0 {
		return tux.WriteHeader(e.stderr(), "No environment variables to push\n")
	}

	var errs *multierror.Error
	pushed := 0
	for _, envVar := range envVars {
		if err := e.add(ctx, envVar, update); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "failed to push %s", envVar.Name))
			if werr := tux.WriteError(e.stderr(),
				"Error pushing %s to environment %s: %v\n", envVar.Name, e.EnvName, err,
			); werr != nil {
				return werr
			}
			continue
		}
		pushed++
		err := tux.WriteHeader(e.stderr(),
			"[DONE] Added %s to environment: %s\n",
			envVar.Name,
			strings.ToLower(e.EnvName),
		)
		if err != nil {
			return err
		}
	}

	err := tux.WriteHeader(e.stderr(),
		"[DONE] %d of %d environment %s pushed to environment: %s\n",
		pushed,
		len(envVars),
		tux.Plural(envVars, "variable", "variables"),
		strings.ToLower(e.EnvName),
	)
	if err != nil {
		return err
	}
	return e.finish(errs)
}

func (e *Envsync) add(ctx context.Context, envVar EnvVar, update bool) error {
	if update {
		if err := e.Client.Remove(ctx, e.EnvName, envVar.Name); err != nil {
			e.logger().Debug("remove before update failed", "name", envVar.Name, "err", err)
		} else if err := tux.WriteHeader(e.stderr(),
			"Removed %s from %s environment variables\n", envVar.Name, e.EnvName,
		); err != nil {
			return err
		}
	}

	err := scratch.WithValue(envVar.Value, func(f *os.File) error {
		return e.Client.Add(ctx, e.EnvName, envVar.Name, f)
	})
	if err != nil {
		return err
	}

	if e.ListAfterAdd {
		return e.Client.List(ctx, e.EnvName, e.stdout())
	}
	return nil
}

// Upload pushes the variables defined in the file at path. format is one of
// raw, dotenv or json; empty picks raw unless the file ends in .json.
func (e *Envsync) Upload(ctx context.Context, path, format string) error {
	if path == "" {
		return errors.New("file path is required")
	}
	if err := envfile.ValidateFormat(format); err != nil {
		return err
	}
	if !filepath.IsAbs(path) && e.WorkingDir != "" {
		path = filepath.Join(e.WorkingDir, path)
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return errors.Errorf("could not find file at path: %s", path)
	}

	envVars, skipped, err := envfile.ReadFile(path, format)
	if err != nil {
		return err
	}
	for _, line := range skipped {
		err := tux.WriteWarning(e.stderr(), "Skipping line that is not NAME=VALUE: %q\n", line)
		if err != nil {
			return err
		}
	}
	return e.AddAll(ctx, envVars, false)
}

// ParseArgs turns NAME=VALUE arguments into records, keeping their order.
func ParseArgs(args []string) ([]EnvVar, error) {
	envVars := []EnvVar{}
	for _, arg := range args {
		name, value, ok := envfile.Split(arg)
		if !ok {
			return nil, errors.Errorf(
				"argument %s must have an '=' to be of the form NAME=VALUE",
				arg,
			)
		}
		envVars = append(envVars, EnvVar{Name: name, Value: value})
	}
	return envVars, nil
}
