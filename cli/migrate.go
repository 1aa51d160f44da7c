package cli

import (
	"log/slog"

	"varnix-dashboard/config"
	"varnix-dashboard/config/setup"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := setup.InitDatabase(config.AppConfig.DBPath, slog.Default())
		if err != nil {
			return err
		}
		return db.Close()
	},
}
