package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/zoobzio/fastersql"
	"github.com/zoobzio/fastersql/resolve"
)

func newDialectsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "Show the capability matrix of the built-in dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dialects := resolve.All()

			header := table.Row{"capability"}
			for _, d := range dialects {
				header = append(header, d.Name())
			}

			var rows []table.Row
			for _, c := range fastersql.AllCapabilities() {
				row := table.Row{c.String()}
				for _, d := range dialects {
					mark := ""
					if d.Supports(c) {
						mark = "yes"
					}
					row = append(row, mark)
				}
				rows = append(rows, row)
			}
			return renderTable(cmd.OutOrStdout(), format, header, rows)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", FormatTable, "output format: table, markdown or csv")
	return cmd
}
