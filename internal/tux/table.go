package tux

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// FTable renders rows as a table. header may be nil.
func FTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	if len(header) > 0 {
		table.SetHeader(header)
	}
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}
