package cmd

import (
	"fmt"

	"blocks-generator/core/storage"
	"blocks-generator/feature/backup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importYes bool

// backupCmd is the parent command for generators table backups.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export, import and list generator backups in object storage",
	Long: `Backups are zstd compressed JSON snapshots of the generators table.
Import upserts rows into the table; run it while the server is stopped, since
the engine only reads the table at startup.`,
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Upload a snapshot of the generators table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackupService(func(svc *backup.Service, l *zap.Logger) error {
			info, err := svc.Export(cmd.Context())
			if err != nil {
				return err
			}
			l.Info("Backup exported",
				zap.String("object", info.Object),
				zap.Int("rows", info.Rows),
				zap.Int64("bytes", info.Bytes),
			)
			return nil
		})
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import [object]",
	Short: "Restore generator rows from a backup object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackupService(func(svc *backup.Service, l *zap.Logger) error {
			l.Warn("Import overwrites rows at the same coordinates", zap.String("object", args[0]))
			if !confirmDestructiveAction(importYes) {
				l.Warn("Operation cancelled by user. No changes were made.")
				return nil
			}
			n, err := svc.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			l.Info("Backup imported", zap.String("object", args[0]), zap.Int("rows", n))
			return nil
		})
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backup objects, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackupService(func(svc *backup.Service, l *zap.Logger) error {
			names, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			l.Info("Backups listed", zap.Int("count", len(names)))
			return nil
		})
	},
}

func init() {
	backupImportCmd.Flags().BoolVar(&importYes, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	backupCmd.AddCommand(backupExportCmd, backupImportCmd, backupListCmd)
	RootCmd.AddCommand(backupCmd)
}

func withBackupService(fn func(*backup.Service, *zap.Logger) error) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	store, err := openStore(cfg, l)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(backup.NewService(store, client, cfg.Storage, l), l)
}
