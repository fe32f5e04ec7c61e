// Copyright 2022 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package tux

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type StyleSheet struct {
	Styles map[string]StyleRule
	Tokens map[string]string
}

type StyleRule struct {
	Bold               bool
	Italic             bool
	Underline          bool
	Faint              bool
	Foreground         string
	ForegroundInverted string
	Background         string
	BackgroundInverted string
}

func Renderer(styleRule StyleRule, tokens map[string]string) lipgloss.Style {
	renderer := lipgloss.NewStyle().
		Bold(styleRule.Bold).
		Italic(styleRule.Italic).
		Underline(styleRule.Underline).
		Faint(styleRule.Faint)
	if styleRule.Foreground != "" {
		renderer = renderer.Foreground(getColor(styleRule.Foreground, styleRule.ForegroundInverted, tokens))
	}
	if styleRule.Background != "" {
		renderer = renderer.Background(getColor(styleRule.Background, styleRule.BackgroundInverted, tokens))
	}
	return renderer
}

func getColor(token string, invertedToken string, tokens map[string]string) lipgloss.TerminalColor {
	color := resolveToken(token, tokens)
	invertedColor := resolveToken(invertedToken, tokens)

	if invertedColor == "" {
		return lipgloss.Color(color)
	}
	return lipgloss.AdaptiveColor{
		Dark:  color,
		Light: invertedColor,
	}
}

func resolveToken(token string, tokens map[string]string) string {
	if strings.HasPrefix(token, "$") {
		if resolved, ok := tokens[token]; ok {
			return resolved
		}
		return ansiColors[token]
	}
	return token
}

func StyleFunc(styleSheet StyleSheet) func(class string, text string) string {
	return func(class string, text string) string {
		styleRule, exists := styleSheet.Styles[class]
		// Return the text as is if the class is not found.
		if !exists {
			return text
		}
		return Renderer(styleRule, styleSheet.Tokens).Render(text)
	}
}

// Fallbacks for tokens a style sheet doesn't define, as ANSI 256 codes.
var ansiColors = map[string]string{
	"$black":   "0",
	"$red":     "1",
	"$green":   "2",
	"$yellow":  "3",
	"$blue":    "4",
	"$magenta": "5",
	"$cyan":    "6",
	"$white":   "7",
}
