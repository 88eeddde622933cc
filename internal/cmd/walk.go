package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/harrison/genmake/internal/walker"
)

// NewWalkCommand creates the walk command
func NewWalkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk [dir]",
		Short: "List every object below a directory with its attributes",
		Long: `Walk a directory tree the same way "generate" does and print one line
per object: attributes, size and path, followed by totals.

Attributes are shown as ADCSHR (Archive, Directory, Compressed, System,
Hidden, ReadOnly); unset flags print as '-'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: walkCommand,
	}

	cmd.Flags().BoolP("no-recurse", "r", false, "Do not descend into subdirectories")

	return cmd
}

func walkCommand(cmd *cobra.Command, args []string) error {
	return runWalk(cmd, afero.NewOsFs(), args)
}

func runWalk(cmd *cobra.Command, fsys afero.Fs, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	noRecurse, _ := cmd.Flags().GetBool("no-recurse")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Attr      Size Path")
	fmt.Fprintln(out, strings.Repeat("-", 77))

	var stats walker.Stats
	err := walker.Walk(fsys, dir, func(path string, e walker.Entry) error {
		fmt.Fprintf(out, "%s %7d %s\n", e.AttrString(), e.Size, path)
		stats.Add(e)
		return nil
	}, walker.WithRecursion(!noRecurse))

	fmt.Fprintf(out, "total: %d files, %d directories, %d bytes.\n", stats.Files, stats.Dirs, stats.Bytes)
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	return nil
}
