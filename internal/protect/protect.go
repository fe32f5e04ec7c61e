// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package protect decides which variables bulk removal must leave alone.
package protect

import (
	"strings"

	"github.com/samber/lo"
)

// Set is a list of protected names and name prefixes. Matching is case
// sensitive.
type Set struct {
	Names    []string
	Prefixes []string
}

// Default protects variables managed by Vercel and Turborepo tooling.
func Default() Set {
	return Set{
		Names: []string{
			"NX_DAEMON",
			"TURBO_REMOTE_ONLY",
			"TURBO_RUN_SUMMARY",
		},
		Prefixes: []string{"VERCEL", "TURBO"},
	}
}

// With returns a copy of s that also protects the given names.
func (s Set) With(names ...string) Set {
	return Set{
		Names:    lo.Uniq(append(append([]string{}, s.Names...), names...)),
		Prefixes: append([]string{}, s.Prefixes...),
	}
}

func (s Set) Contains(name string) bool {
	if lo.Contains(s.Names, name) {
		return true
	}
	return lo.SomeBy(s.Prefixes, func(prefix string) bool {
		return strings.HasPrefix(name, prefix)
	})
}
