// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package vercel

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Invocation is one run of the vercel binary.
type Invocation struct {
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
}

// Runner runs the vercel binary. It exists so tests can record invocations
// instead of spawning processes.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// ExecRunner runs a binary found on PATH (or at an explicit path).
type ExecRunner struct {
	Bin string
	// Stderr, if set, also receives the subprocess stderr as it is written.
	Stderr io.Writer
}

func (r *ExecRunner) Run(ctx context.Context, inv Invocation) error {
	bin := r.Bin
	if bin == "" {
		bin = DefaultBin
	}
	cmd := exec.CommandContext(ctx, bin, inv.Args...)
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = io.Discard
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, r.Stderr)
	}

	if err := cmd.Run(); err != nil {
		command := bin + " " + strings.Join(redact(inv.Args), " ")
		if msg := lastLine(stderr.String()); msg != "" {
			return errors.Wrapf(err, "%s: %s", command, msg)
		}
		return errors.Wrapf(err, "%s", command)
	}
	return nil
}

// lastLine returns the last non-empty line, which is where the vercel CLI
// prints its "Error: ..." message.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

// redact hides the value following --token.
func redact(args []string) []string {
	result := append([]string{}, args...)
	for i := 0; i < len(result)-1; i++ {
		if result[i] == "--token" {
			result[i+1] = "***"
		}
	}
	return result
}
