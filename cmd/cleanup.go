package cmd

import (
	"modhangar/feature/cleanup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cleanupCmd represents the cleanup command
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete mods and reclaim orphaned shared rows",
}

// deleteModCmd represents the cleanup deleteMod command
var deleteModCmd = &cobra.Command{
	Use:   "deleteMod <code>",
	Short: "Delete a mod and everything it owns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logg, svc, err := cleanupEnv()
		if err != nil {
			return err
		}

		if err := svc.DeleteMod(cmd.Context(), args[0]); err != nil {
			return err
		}
		logg.Info("Cleanup completed", zap.String("mod", args[0]))
		return nil
	},
}

// deleteModVersionCmd represents the cleanup deleteModVersion command
var deleteModVersionCmd = &cobra.Command{
	Use:   "deleteModVersion <code> <major> <minor> <patch>",
	Short: "Delete one version of a mod",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		major, minor, patch, err := versionArgs(args[1], args[2], args[3])
		if err != nil {
			return err
		}

		logg, svc, err := cleanupEnv()
		if err != nil {
			return err
		}

		if err := svc.DeleteModVersion(cmd.Context(), args[0], major, minor, patch); err != nil {
			return err
		}
		logg.Info("Cleanup completed",
			zap.String("mod", args[0]),
			zap.Int("major", major), zap.Int("minor", minor), zap.Int("patch", patch))
		return nil
	},
}

// sweepCmd represents the cleanup cleanup command
var sweepCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Sweep orphaned shared rows without deleting a mod",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logg, svc, err := cleanupEnv()
		if err != nil {
			return err
		}

		if err := svc.Cleanup(cmd.Context()); err != nil {
			return err
		}
		logg.Info("Cleanup completed")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cleanupCmd)
	cleanupCmd.AddCommand(deleteModCmd, deleteModVersionCmd, sweepCmd)
}

func cleanupEnv() (*zap.Logger, *cleanup.Service, error) {
	logg, db, sprites, err := serviceEnv()
	if err != nil {
		return nil, nil, err
	}
	return logg, cleanup.NewService(db, sprites, logg), nil
}
