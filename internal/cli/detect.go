package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/fastersql/executor"
	"github.com/zoobzio/fastersql/resolve"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Resolve the dialect of the configured connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *configFrom(cmd)
			cfg.Dialect = ""
			logger := loggerFrom(cmd)

			e, err := executor.Open(cmd.Context(), &cfg, logger)
			if err != nil {
				return err
			}
			defer e.Close()

			w := cmd.OutOrStdout()
			if product, err := resolve.ProductName(cmd.Context(), e.DB()); err == nil {
				_, _ = fmt.Fprintf(w, "product: %s\n", product)
			} else {
				logger.Debug("no product banner", "error", err)
			}
			_, _ = fmt.Fprintf(w, "dialect: %s\n", e.Dialect().Name())
			return nil
		},
	}
}

