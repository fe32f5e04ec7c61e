// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envsync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.jetify.com/envsync/internal/envfile"
	"go.jetify.com/envsync/internal/tux"
)

type ListOptions struct {
	// Remote passes the listing through from `vercel env ls`.
	Remote bool
	// Show prints values instead of masking them.
	Show   bool
	Format string
}

func (e *Envsync) List(ctx context.Context, w io.Writer, opts ListOptions) error {
	if opts.Remote {
		return e.Client.List(ctx, e.EnvName, w)
	}
	if err := ValidateListFormat(opts.Format); err != nil {
		return err
	}
	envVars, err := e.pull(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to pull environment %s", e.EnvName)
	}
	return PrintEnvVars(w, e.EnvName, envVars, opts.Show, opts.Format)
}

func ValidateListFormat(format string) error {
	switch format {
	case "", "table", "dotenv", "json":
		return nil
	}
	return errors.New("incorrect format. Must be one of table|dotenv|json")
}

func PrintEnvVars(
	w io.Writer,
	envName string,
	envVars []EnvVar, // list of (name, value) pairs
	expose bool,
	format string,
) error {
	masked := []EnvVar{}
	// Masking envVar values if expose flag isn't set
	for _, envVar := range envVars {
		valueToPrint := "*****"
		if expose {
			valueToPrint = envVar.Value
		}
		masked = append(masked, EnvVar{Name: envVar.Name, Value: valueToPrint})
	}

	switch format {
	case "", "table":
		return printTableFormat(w, envName, masked)
	case "dotenv":
		return printDotenvFormat(w, masked)
	case "json":
		return printJSONFormat(w, masked)
	default:
		return ValidateListFormat(format)
	}
}

func printTableFormat(w io.Writer, envName string, envVars []EnvVar) error {
	err := tux.WriteHeader(w, "Environment: %s\n", strings.ToLower(envName))
	if err != nil {
		return err
	}

	if len(envVars) == 0 {
		_, err = fmt.Fprintln(w, "No environment variables currently defined.")
		return errors.WithStack(err)
	}

	rows := [][]string{}
	for _, envVar := range envVars {
		rows = append(rows, []string{envVar.Name, envVar.Value})
	}
	tux.FTable(w, []string{"Name", "Value"}, rows)
	return nil
}

func printDotenvFormat(w io.Writer, envVars []EnvVar) error {
	content, err := envfile.Marshal(envVars)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, content)
	return errors.WithStack(err)
}

func printJSONFormat(w io.Writer, envVars []EnvVar) error {
	data, err := json.MarshalIndent(envVars, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return errors.WithStack(err)
}
