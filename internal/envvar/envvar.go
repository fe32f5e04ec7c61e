// Copyright 2023 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envvar

import (
	"os"
	"strconv"
	"strings"
)

// Get gets the value of an environment variable.
// If it's empty, it will return the given default value instead.
func Get(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		val = def
	}

	return val
}

// Bool reports whether the environment variable is set to a true value as
// understood by strconv.ParseBool. Unset or unparsable values are false.
func Bool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

// List splits a comma separated environment variable into its trimmed,
// non-empty elements.
func List(key string) []string {
	var result []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
