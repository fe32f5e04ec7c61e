// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package envfile reads NAME=VALUE files into ordered environment variable
// records.
package envfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	FormatRaw    = "raw"
	FormatDotenv = "dotenv"
	FormatJSON   = "json"
)

type EnvVar struct {
	Name  string
	Value string
}

// Split splits a line on its first '='. The value keeps any further '='
// characters; whitespace around the name is dropped. ok is false when the
// line has no '=' or the name is empty.
func Split(line string) (name, value string, ok bool) {
	line = strings.TrimSuffix(line, "\r")
	name, value, ok = strings.Cut(line, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", false
	}
	return name, value, true
}

// Parse turns newline separated NAME=VALUE text into records, in file order.
// Blank lines and lines starting with '#' are ignored. Any other line that
// can't be split is returned in skipped.
func Parse(text string) (envVars []EnvVar, skipped []string) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		name, value, ok := Split(line)
		if !ok {
			skipped = append(skipped, trimmed)
			continue
		}
		envVars = append(envVars, EnvVar{Name: name, Value: value})
	}
	return envVars, skipped
}

// ReadFile reads the file at path in the given format. If format is empty,
// raw is used unless path ends in .json.
func ReadFile(path, format string) ([]EnvVar, []string, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, nil, err
	}
	if format == "" {
		format = FormatRaw
		if filepath.Ext(path) == ".json" {
			format = FormatJSON
		}
	}

	switch format {
	case FormatDotenv:
		envVars, err := ReadDotenv(path)
		return envVars, nil, err
	case FormatJSON:
		envVars, err := readJSON(path)
		return envVars, nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	envVars, skipped := Parse(string(content))
	return envVars, skipped, nil
}

// ReadDotenv parses a dotenv file, honoring quotes, comments and export
// prefixes. Files written by `vercel env pull` quote every value, so this is
// the reader used for pulled environments. Records are sorted by name.
func ReadDotenv(path string) ([]EnvVar, error) {
	envMap, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return FromMap(envMap), nil
}

func readJSON(path string) ([]EnvVar, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	envMap := map[string]string{}
	if err = json.Unmarshal(content, &envMap); err != nil {
		return nil, errors.Wrap(
			err,
			"failed to load from JSON. Ensure the file is a flat key-value "+
				"JSON formatted file",
		)
	}
	return FromMap(envMap), nil
}

// FromMap converts a map into records sorted by name.
func FromMap(envMap map[string]string) []EnvVar {
	names := lo.Keys(envMap)
	sort.Strings(names)
	return lo.Map(names, func(name string, _ int) EnvVar {
		return EnvVar{Name: name, Value: envMap[name]}
	})
}

// Marshal renders records in dotenv format.
func Marshal(envVars []EnvVar) (string, error) {
	envMap := lo.Associate(envVars, func(v EnvVar) (string, string) {
		return v.Name, v.Value
	})
	content, err := godotenv.Marshal(envMap)
	return content, errors.WithStack(err)
}

func ValidateFormat(format string) error {
	if format != "" && format != FormatRaw && format != FormatDotenv && format != FormatJSON {
		return errors.Errorf("incorrect format %q. Must be one of raw|dotenv|json", format)
	}
	return nil
}
