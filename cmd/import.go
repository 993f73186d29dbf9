package cmd

import (
	"fmt"
	"strconv"

	"modhangar/core/config"
	"modhangar/core/database"
	"modhangar/core/logger"
	"modhangar/core/sprite"
	"modhangar/feature/ingest"
	"modhangar/feature/ingest/parse"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var updateFlag bool

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import mod content into the catalog",
	Long:  `Parses a content package directory and ingests it as one transaction.`,
}

// importModCmd represents the import mod command
var importModCmd = &cobra.Command{
	Use:   "mod <path>",
	Short: "Import a mod directory",
	Long:  `Reads mod_info.json for the mod identity and version, then imports the package.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logg, svc, err := ingestEnv()
		if err != nil {
			return err
		}

		content, err := parse.ModDir(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse mod directory: %w", err)
		}

		result, err := svc.Import(cmd.Context(), content, updateFlag)
		if err != nil {
			return err
		}

		reportImport(logg, result)
		return nil
	},
}

// importVanillaCmd represents the import vanilla command
var importVanillaCmd = &cobra.Command{
	Use:   "vanilla <major> <minor> <patch> <path>",
	Short: "Import the base-game content directory",
	Long:  `Imports base-game content. There is no mod_info.json, so the version is given explicitly.`,
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		major, minor, patch, err := versionArgs(args[0], args[1], args[2])
		if err != nil {
			return err
		}

		logg, svc, err := ingestEnv()
		if err != nil {
			return err
		}

		content, err := parse.VanillaDir(args[3])
		if err != nil {
			return fmt.Errorf("failed to parse content directory: %w", err)
		}

		result, err := svc.ImportVanilla(cmd.Context(), content, major, minor, patch, updateFlag)
		if err != nil {
			return err
		}

		reportImport(logg, result)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(importCmd)
	importCmd.AddCommand(importModCmd, importVanillaCmd)

	importModCmd.Flags().BoolVar(&updateFlag, "update", false, "Allow re-importing an existing mod version")
	importVanillaCmd.Flags().BoolVar(&updateFlag, "update", false, "Allow re-importing an existing mod version")
}

// serviceEnv loads configuration and opens the database and sprite store
// shared by the import and cleanup commands.
func serviceEnv() (*zap.Logger, *gorm.DB, sprite.Store, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database connection required: %w", err)
	}

	sprites, err := sprite.NewStore(cfg.Sprite)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create sprite store: %w", err)
	}

	return logg, db, sprites, nil
}

func ingestEnv() (*zap.Logger, *ingest.Service, error) {
	logg, db, sprites, err := serviceEnv()
	if err != nil {
		return nil, nil, err
	}
	return logg, ingest.NewService(db, sprites, logg), nil
}

func versionArgs(major, minor, patch string) (int, int, int, error) {
	var nums [3]int
	for i, s := range []string{major, minor, patch} {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("version segment %q is not an integer", s)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

func reportImport(logg *zap.Logger, result *ingest.Result) {
	logg.Info("Import completed",
		zap.String("mod", result.Mod.Code),
		zap.Int("major", result.ModVersion.Major),
		zap.Int("minor", result.ModVersion.Minor),
		zap.Int("patch", result.ModVersion.Patch),
		zap.Bool("data_changed", result.DataChanged),
	)
}
