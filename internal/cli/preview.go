package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/zoobzio/fastersql"
	"github.com/zoobzio/fastersql/resolve"
)

func newPreviewCmd() *cobra.Command {
	var (
		limit  int64
		offset int64
		format string
	)

	cmd := &cobra.Command{
		Use:   "preview [dialect...]",
		Short: "Render a sample paginated query for each dialect",
		Long: `Render a sample paginated query to compare limit/offset strategies.

Without arguments every built-in dialect is shown. A dialect that cannot
express the query reports why instead of SQL.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dialects := resolve.All()
			if len(args) > 0 {
				dialects = dialects[:0]
				for _, name := range args {
					d, err := resolve.ByName(name)
					if err != nil {
						return err
					}
					dialects = append(dialects, d)
				}
			}

			stmt := sampleQuery(limit, offset)
			var rows []table.Row
			for _, d := range dialects {
				result, err := fastersql.Render(stmt, d)
				if err != nil {
					loggerFrom(cmd).Debug("render failed", "dialect", d.Name(), "error", err)
					rows = append(rows, table.Row{d.Name(), err.Error(), ""})
					continue
				}
				rows = append(rows, table.Row{d.Name(), result.SQL, fmt.Sprint(result.Params)})
			}
			return renderTable(cmd.OutOrStdout(), format, table.Row{"dialect", "sql", "params"}, rows)
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", 10, "row limit; 0 for none")
	cmd.Flags().Int64Var(&offset, "offset", 20, "rows to skip; 0 for none")
	cmd.Flags().StringVarP(&format, "format", "f", FormatTable, "output format: table, markdown or csv")
	return cmd
}

func sampleQuery(limit, offset int64) fastersql.SelectStatement {
	person := fastersql.NewTable("PERSON", "ID", "NAME", "AGE").As("P")

	stmt := fastersql.Select(person.Column("ID"), person.Column("NAME")).
		From(person).
		Where(person.Column("AGE").Ge(18)).
		OrderBy(person.Column("NAME").Asc())
	if limit > 0 {
		stmt = stmt.Limit(limit)
	}
	if offset > 0 {
		stmt = stmt.Offset(offset)
	}
	return stmt
}
