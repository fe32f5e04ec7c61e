// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"

	"go.jetify.com/envsync/pkg/envcli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := envcli.Execute(ctx)
	stop()
	os.Exit(code)
}
