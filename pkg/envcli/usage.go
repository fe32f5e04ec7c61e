// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envcli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"go.jetify.com/envsync/internal/tux"
)

var usageTmpl = heredoc.Doc(`
{{ "Usage:" | style "h2" }}
	{{if .Runnable}}{{.UseLine | style "command" }}{{end}}
	{{- if .HasAvailableSubCommands}} {{"<command>" | style "subcommand"}}{{end}}
{{- if gt (len .Aliases) 0}}

{{ "Aliases:" | style "h2" }}
	{{.NameAndAliases}}
{{- end}}
{{- if .HasExample}}

{{ "Examples:" | style "h2" }}
{{.Example | trimTrailingWhitespaces}}
{{- end}}
{{- if .HasAvailableSubCommands}}

{{ "Commands:" | style "h2" }}
	{{- range .Commands}}
		{{- if (or .IsAvailableCommand (eq .Name "help"))}}
	{{rpad .Name .NamePadding | style "subcommand"}} {{.Short}}
		{{- end}}
	{{- end}}
{{- end}}
{{- if .HasAvailableLocalFlags}}

{{ "Flags:" | style "h2" }}
{{ .LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{- end}}
{{- if .HasAvailableInheritedFlags}}

{{ "Global Flags:" | style "h2" }}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{- end}}
{{- if .HasAvailableSubCommands}}

Use "{{.CommandPath}} <command> --help" for more information about a command.
{{- end}}
`)

var baseStyle = tux.StyleSheet{
	Styles: map[string]tux.StyleRule{
		"h2": {
			Bold: true,
		},
		"command": {
			Foreground: "$cyan",
		},
		"subcommand": {
			Foreground: "$magenta",
		},
	},
	Tokens: map[string]string{
		"$cyan":    "51",
		"$magenta": "#ff79c6",
	},
}

func UsageFunc(cmd *cobra.Command) error {
	t := tux.New()
	t.SetOut(cmd.OutOrStdout())
	t.SetStyleSheet(baseStyle)
	return t.PrintT(usageTmpl, cmd)
}
