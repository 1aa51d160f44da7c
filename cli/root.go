package cli

import (
	"fmt"
	"log/slog"
	"os"

	"varnix-dashboard/config"

	"github.com/spf13/cobra"
)

var dbPathFlag string

var rootCmd = &cobra.Command{
	Use:   "varnix-dashboard",
	Short: "Business dashboard API for projects, todos, finances and Varnix billing",
	Long: `Serves the dashboard JSON API over a per-user SQLite store.

Every API request is scoped to the user that owns the bearer token. Tokens are
issued with the "token create" command.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if dbPathFlag != "" {
			config.AppConfig.DBPath = dbPathFlag
		}
		slog.SetDefault(newLogger(config.AppConfig))
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "SQLite database path (overrides DB_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
}

func newLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     logLevel(cfg.LogLevel),
		AddSource: cfg.Env == "development",
	}

	if cfg.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
