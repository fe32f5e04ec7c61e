// Copyright 2022 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package tux

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

type Tux struct {
	outWriter  io.Writer
	styleSheet StyleSheet
}

func New() *Tux {
	// For now hardcoding the profile (because it's not working otherwise)
	// but need to change this to auto-detect appropriately.
	lipgloss.SetColorProfile(termenv.ANSI256)
	return &Tux{
		outWriter: os.Stdout,
	}
}

func (tux *Tux) SetOut(w io.Writer) {
	tux.outWriter = w
}

func (tux *Tux) SetStyleSheet(styleSheet StyleSheet) {
	tux.styleSheet = styleSheet
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// rpad adds padding to the right of a string.
func rpad(s string, padding int) string {
	template := fmt.Sprintf("%%-%ds", padding)
	return fmt.Sprintf(template, s)
}

func (tux *Tux) PrintT(text string, data any) error {
	templateFuncs := template.FuncMap{
		"trimTrailingWhitespaces": trimRight,
		"rpad":                    rpad,
		"style":                   StyleFunc(tux.styleSheet),
	}
	tpl, err := template.New("tpl").Funcs(templateFuncs).Parse(text)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(tpl.Execute(tux.outWriter, data))
}

var (
	headerColor  = color.New(color.FgHiCyan, color.Bold)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// WriteHeader writes a progress line, such as "[DONE] ...".
func WriteHeader(w io.Writer, format string, a ...any) error {
	return write(w, headerColor, format, a...)
}

// WriteWarning writes a line about something that was skipped.
func WriteWarning(w io.Writer, format string, a ...any) error {
	return write(w, warningColor, format, a...)
}

// WriteError writes a line about a failure that did not stop the command.
func WriteError(w io.Writer, format string, a ...any) error {
	return write(w, errorColor, format, a...)
}

func write(w io.Writer, c *color.Color, format string, a ...any) error {
	message := c.SprintfFunc()(format, a...)
	_, err := io.WriteString(w, message)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// QuotedTerms will wrap each term in single-quotation marks
func QuotedTerms(terms []string) []string {
	q := []string{}
	for _, term := range terms {
		// wrap the term in single-quote
		q = append(q, "'"+term+"'")
	}
	return q
}

func Plural[T any](items []T, singular string, plural string) string {
	if len(items) == 1 {
		return singular
	}
	return plural
}
