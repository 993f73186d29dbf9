package cmd

import (
	"fmt"

	"modhangar/core/config"
	"modhangar/core/database"
	"modhangar/core/logger"
	"modhangar/feature/catalog/models"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog schema",
	Long:  `Creates every catalog table and seeds the fixed category vocabularies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		if err := models.Migrate(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		if err := models.SeedVocabularies(db); err != nil {
			return fmt.Errorf("vocabulary seeding failed: %w", err)
		}

		logg.Info("Migration completed")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
