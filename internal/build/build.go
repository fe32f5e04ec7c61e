// Copyright 2023 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package build

import (
	"os"
	"strings"
)

// These variables are set by the build script.
var (
	IsDev      = Version == "0.0.0-dev"
	Version    = "0.0.0-dev"
	Commit     = "none"
	CommitDate = "unknown"
)

func init() {
	buildEnv := strings.ToLower(os.Getenv("ENVSYNC_BUILD_ENV"))
	if buildEnv == "prod" {
		IsDev = false
	} else if buildEnv == "dev" {
		IsDev = true
	}
}

func BuildEnv() string {
	if IsDev {
		return "dev"
	}
	return "prod"
}
