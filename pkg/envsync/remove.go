// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envsync

import (
	"context"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.jetify.com/envsync/internal/protect"
	"go.jetify.com/envsync/internal/tux"
)

// Remove deletes each named variable. Names are not checked against the
// protected set.
func (e *Envsync) Remove(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return tux.WriteHeader(e.stderr(), "No environment variables to remove\n")
	}
	return e.removeAll(ctx, names)
}

// RemoveAll deletes every variable in the remote environment except the
// protected ones. The environment is pulled into a scratch directory that
// is gone before the first removal is issued.
func (e *Envsync) RemoveAll(ctx context.Context, protected protect.Set) error {
	envVars, err := e.pull(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to pull environment %s", e.EnvName)
	}

	names := []string{}
	for _, envVar := range envVars {
		if protected.Contains(envVar.Name) {
			if err := tux.WriteWarning(e.stderr(), "Skipping %s\n", envVar.Name); err != nil {
				return err
			}
			continue
		}
		names = append(names, envVar.Name)
	}

	if len(names) == 0 {
		return tux.WriteHeader(e.stderr(), "No environment variables to remove\n")
	}
	return e.removeAll(ctx, names)
}

func (e *Envsync) removeAll(ctx context.Context, names []string) error {
	var errs *multierror.Error
	removed := []string{}
	for _, name := range names {
		if err := e.Client.Remove(ctx, e.EnvName, name); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "failed to remove %s", name))
			if werr := tux.WriteError(e.stderr(),
				"Error removing %s from environment %s: %v\n", name, e.EnvName, err,
			); werr != nil {
				return werr
			}
			continue
		}
		removed = append(removed, name)
	}

	if len(removed) > 0 {
		err := tux.WriteHeader(e.stderr(),
			"[DONE] Removed environment %s %v from environment: %s\n",
			tux.Plural(removed, "variable", "variables"),
			strings.Join(tux.QuotedTerms(removed), ", "),
			strings.ToLower(e.EnvName),
		)
		if err != nil {
			return err
		}
	}
	return e.finish(errs)
}
