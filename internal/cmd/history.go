package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/genmake/internal/history"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent generation runs",
		Long: `Show the most recent makefile generation runs recorded in the history
database (history.db in the gen-make home directory unless history.db_path
is configured).`,
		Args: cobra.NoArgs,
		RunE: historyCommand,
	}

	cmd.Flags().IntP("limit", "l", history.DefaultLimit, "Number of runs to show")
	cmd.Flags().String("config", "", "Path to config file (default: ./.gen-make.yaml)")
	cmd.Flags().Int("prune", -1, "Delete all but the newest N runs before listing")

	return cmd
}

func historyCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, ".")
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	keep, _ := cmd.Flags().GetInt("prune")

	dbPath, err := cfg.HistoryDBPath()
	if err != nil {
		return err
	}
	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if cmd.Flags().Changed("prune") {
		removed, err := store.Prune(ctx, keep)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Pruned %d run(s)\n", removed)
	}

	runs, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	ok := color.New(color.FgGreen).SprintFunc()
	failed := color.New(color.FgRed).SprintFunc()

	for _, run := range runs {
		status := ok("OK  ")
		if !run.Success {
			status = failed("FAIL")
		}
		fmt.Fprintf(out, "%s %s %s %-8s %-8s %4d sources %s\n",
			run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			shortID(run.ID),
			status,
			run.Generator,
			run.Mode,
			run.Sources,
			run.Output,
		)
		if len(run.Categories) > 0 {
			parts := make([]string, 0, len(run.Categories))
			for _, name := range run.CategoryNames() {
				parts = append(parts, fmt.Sprintf("%s=%d", name, run.Categories[name]))
			}
			fmt.Fprintf(out, "    %s\n", strings.Join(parts, " "))
		}
		if run.Error != "" {
			fmt.Fprintf(out, "    error: %s\n", run.Error)
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
