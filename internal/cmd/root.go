package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for gen-make
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-make",
		Short: "A simple makefile generator for C/C++ projects",
		Long: `gen-make scans a project tree for C and C++ sources and writes a
makefile for one of the supported Windows toolchains (MinGW, Cygwin,
MSVC, Watcom, or a combined gcc/cl Windows makefile).

Run "gen-make list" to see the available generators.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewWalkCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
