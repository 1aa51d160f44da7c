package cli

import (
	"fmt"
	"log/slog"

	"varnix-dashboard/config"
	"varnix-dashboard/config/setup"
	"varnix-dashboard/session"

	"github.com/spf13/cobra"
)

var (
	tokenLabel string
	tokenAll   bool
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage API tokens",
}

var tokenCreateCmd = &cobra.Command{
	Use:   "create <user-id>",
	Short: "Issue a bearer token for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := setup.InitDatabase(config.AppConfig.DBPath, slog.Default())
		if err != nil {
			return err
		}
		defer db.Close()

		store := session.NewStore(db, config.AppConfig.TokenTTL)
		sess, err := store.Create(cmd.Context(), args[0], tokenLabel)
		if err != nil {
			return fmt.Errorf("create token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), sess.ID)
		fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", sess.ExpiresAt.Format("2006-01-02 15:04 MST"))
		return nil
	},
}

var tokenRevokeCmd = &cobra.Command{
	Use:   "revoke <token|user-id>",
	Short: "Revoke a token, or every token of a user with --all",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := setup.InitDatabase(config.AppConfig.DBPath, slog.Default())
		if err != nil {
			return err
		}
		defer db.Close()

		store := session.NewStore(db, config.AppConfig.TokenTTL)
		if tokenAll {
			n, err := store.DeleteForUser(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("revoke tokens: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "revoked %d token(s)\n", n)
			return nil
		}

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "revoked")
		return nil
	},
}

func init() {
	tokenCreateCmd.Flags().StringVar(&tokenLabel, "label", "", "Free-form label stored with the token")
	tokenRevokeCmd.Flags().BoolVar(&tokenAll, "all", false, "Treat the argument as a user id and revoke all of its tokens")

	tokenCmd.AddCommand(tokenCreateCmd)
	tokenCmd.AddCommand(tokenRevokeCmd)
}
