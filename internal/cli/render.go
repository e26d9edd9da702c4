package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Output formats accepted by --format.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

func renderTable(w io.Writer, format string, header table.Row, rows []table.Row) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)

	switch format {
	case FormatTable, "":
		t.Render()
	case FormatMarkdown, "md":
		t.RenderMarkdown()
	case FormatCSV:
		t.RenderCSV()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
