package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TahaKhan8899/goal-tracker/internal/config"
	"github.com/TahaKhan8899/goal-tracker/internal/db"
	"github.com/TahaKhan8899/goal-tracker/internal/logger"
	"github.com/TahaKhan8899/goal-tracker/internal/repository"
	"github.com/TahaKhan8899/goal-tracker/internal/service"
)

// useradd provisions users out of band. Login only recognizes emails
// already in the store, so this is how accounts come to exist.
func main() {
	var name string

	rootCmd := &cobra.Command{
		Use:   "useradd <email>",
		Short: "Provision a goal-tracker user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.IsDevelopment(), "")

			database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()

			err = db.RunMigrations(database.DB, cfg.DBDriver)
			if err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			users := service.NewUserService(repository.NewUserRepository(database))
			user, err := users.Create(args[0], name)
			if err != nil {
				return err
			}

			fmt.Printf("created user %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&name, "name", "n", "", "display name (defaults to the email)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
