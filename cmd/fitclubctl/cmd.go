package main

import (
	"encoding/json"
	"fmt"

	"fitclub/internal/auth"
	"fitclub/internal/config"
	"fitclub/internal/db"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fitclubctl",
		Short:         "Operator tooling for the FitClub scheduler",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	root.AddCommand(newTokenCmd(), newMigrateCmd())
	return root
}

func newTokenCmd() *cobra.Command {
	var (
		userID int
		role   string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access and refresh token for a session",
		Long:  `The token command signs tokens with JWT_SECRET and JWT_REFRESH_SECRET from the loaded configuration, for members, trainers and admins provisioned outside the scheduler.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			session := auth.Session{UserID: userID, Role: auth.Role(role)}
			access, refresh, err := auth.GenerateTokens(session, cfg.JWTSecret, cfg.JWTRefreshSecret)
			if err != nil {
				return fmt.Errorf("failed to issue tokens: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{
				"access_token":  access,
				"refresh_token": refresh,
				"session":       session,
			})
		},
	}

	cmd.Flags().IntVar(&userID, "user", 0, "user id carried by the session")
	cmd.Flags().StringVar(&role, "role", string(auth.RoleMember), "member, trainer or admin")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			database, err := db.Connect(cfg.DBDriver, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
