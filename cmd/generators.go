package cmd

import (
	"context"
	"fmt"

	"blocks-generator/core/generator"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	pruneWorlds []string
	pruneDryRun bool
	pruneYes    bool
)

// generatorsCmd is the parent command for offline operations on the generators table.
var generatorsCmd = &cobra.Command{
	Use:   "generators",
	Short: "Inspect and maintain persisted generators",
}

var generatorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every persisted generator row",
	RunE:  runGeneratorsList,
}

var generatorsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete rows that can no longer be restored",
	Long: `Delete generator rows whose type is no longer configured, and optionally
every row of the given worlds. The engine drops such rows at startup but never
deletes them, so they accumulate until pruned.

Examples:
  # Report only
  generators prune --dry-run

  # Remove unknown types and everything in a deleted world
  generators prune --world old_world --yes`,
	RunE: runGeneratorsPrune,
}

func init() {
	generatorsPruneCmd.Flags().StringSliceVar(&pruneWorlds, "world", nil, "Also delete every row in these worlds")
	generatorsPruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "Report what would be deleted without deleting")
	generatorsPruneCmd.Flags().BoolVar(&pruneYes, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	generatorsCmd.AddCommand(generatorsListCmd, generatorsPruneCmd)
	RootCmd.AddCommand(generatorsCmd)
}

func runGeneratorsList(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	store, err := openStore(cfg, l)
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.ScanAll(cmd.Context())
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Printf("%s\t%s\n", row.Coord(), row.Type)
	}
	l.Info("Generators listed", zap.Int("rows", len(rows)))
	return nil
}

func runGeneratorsPrune(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	store, err := openStore(cfg, l)
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.ScanAll(ctx)
	if err != nil {
		return err
	}

	plan := prunePlan(rows, newRegistry(cfg, l), pruneWorlds)
	printPrunePlan(l, len(rows), plan)

	if len(plan) == 0 {
		l.Info("Nothing to prune.")
		return nil
	}
	if pruneDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if !confirmDestructiveAction(pruneYes) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	deleted, err := applyPrune(ctx, store, plan)
	if err != nil {
		return fmt.Errorf("failed to prune generators after %d deletions: %w", deleted, err)
	}
	l.Info("Successfully pruned generators", zap.Int("count", deleted))
	return nil
}

// prunePlan returns rows with unregistered types plus every row in worlds.
func prunePlan(rows []generator.Row, registry *generator.Registry, worlds []string) []generator.Row {
	drop := make(map[string]bool, len(worlds))
	for _, w := range worlds {
		drop[w] = true
	}

	plan := generator.Unresolvable(rows, registry)
	seen := make(map[generator.Row]bool, len(plan))
	for _, row := range plan {
		seen[row] = true
	}
	for _, row := range rows {
		if drop[row.World] && !seen[row] {
			plan = append(plan, row)
			seen[row] = true
		}
	}
	return plan
}

func applyPrune(ctx context.Context, store *generator.Store, plan []generator.Row) (int, error) {
	deleted := 0
	for _, row := range plan {
		if err := store.Delete(ctx, row.Coord()); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

func printPrunePlan(l *zap.Logger, total int, plan []generator.Row) {
	l.Info("Prune report",
		zap.Int("total_rows", total),
		zap.Int("to_delete", len(plan)),
	)

	maxShow := min(5, len(plan))
	for _, row := range plan[:maxShow] {
		l.Info("Sample row",
			zap.Stringer("coord", row.Coord()),
			zap.String("type", row.Type),
		)
	}
	if len(plan) > maxShow {
		l.Info("Additional rows not shown", zap.Int("count", len(plan)-maxShow))
	}
}
