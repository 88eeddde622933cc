package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/genmake/internal/generator"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			name := color.New(color.FgCyan, color.Bold)

			fmt.Fprintf(out, "%-10s %-8s %-18s %s\n", "NAME", "MAKE", "FILE", "DESCRIPTION")
			for _, g := range generator.All() {
				fmt.Fprintf(out, "%s %-8s %-18s %s\n",
					name.Sprintf("%-10s", g.Name), g.Make, g.FileName, g.Description())
			}
			return nil
		},
	}
}
