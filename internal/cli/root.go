// Package cli provides the command-line interface for fastersql.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zoobzio/fastersql/config"
)

// Version information (set at build time).
var Version = "0.1.0"

type configKey struct{}

type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "fastersql",
		Short: "fastersql - dialect-aware SQL statement builder",
		Long: `fastersql renders type-safe statements into parameterized SQL for
PostgreSQL, MySQL, MariaDB, SQLite, SQL Server, Oracle, H2, Access and ANSI SQL.

This tool inspects dialect capabilities, detects the dialect of a live
connection and previews how statements render for each dialect.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: fastersql.yaml in the working directory)")
	flags.String("dialect", "", "dialect name; empty resolves it from the connection")
	flags.String("driver", "", "database/sql driver: pgx, mysql, sqlserver or sqlite")
	flags.String("dsn", "", "data source name")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newDialectsCmd(), newDetectCmd(), newPreviewCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}

func loggerFrom(cmd *cobra.Command) *slog.Logger {
	if logger, ok := cmd.Context().Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
