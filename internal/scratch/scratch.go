// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package scratch holds short-lived files used to hand secret values to a
// subprocess without putting them on its command line.
package scratch

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

const pattern = "envsync-*"

// Dir is where scratch files are created. Empty means os.TempDir.
var Dir = ""

// WithValue writes value to a private (0600) temp file and calls fn with the file
// opened for reading from the start. The file is closed and removed once fn
// returns, whether or not it succeeded.
func WithValue(value string, fn func(f *os.File) error) (err error) {
	f, err := os.CreateTemp(Dir, pattern)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		f.Close()
		if rmErr := os.Remove(f.Name()); rmErr != nil && err == nil {
			err = errors.WithStack(rmErr)
		}
	}()

	if _, err := io.WriteString(f, value); err != nil {
		return errors.WithStack(err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return errors.WithStack(err)
	}
	return fn(f)
}

// WithDir creates a private temp directory, calls fn with its path and
// removes the directory and everything in it afterwards.
func WithDir(fn func(dir string) error) (err error) {
	dir, err := os.MkdirTemp(Dir, pattern)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil && err == nil {
			err = errors.WithStack(rmErr)
		}
	}()
	return fn(dir)
}
