package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/genmake/internal/config"
	"github.com/harrison/genmake/internal/display"
	"github.com/harrison/genmake/internal/generator"
	"github.com/harrison/genmake/internal/genmake"
	"github.com/harrison/genmake/internal/history"
	"github.com/harrison/genmake/internal/logger"
	"github.com/harrison/genmake/internal/output"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [generator]",
		Short: "Generate a makefile for the sources below a directory",
		Long: `Scan a project tree for .c, .cc, .cpp and .cxx sources (plus .rc resource
scripts and *.h.in templates) and write a makefile for the chosen generator.

The generator comes from the argument, or from the "generator" key of
.gen-make.yaml when no argument is given.

Configuration is loaded from .gen-make.yaml in the project root if present.
The CPU environment variable overrides the configured cpu, and CLI flags
override both.

Examples:
  gen-make generate mingw                 # Write Makefile.MinGW in the current directory
  gen-make generate msvc -C src/lib       # Scan src/lib and write src/lib/Makefile.MSVC
  gen-make generate watcom --stdout       # Print the makefile instead of writing it
  gen-make generate cygwin --dry-run      # Show what would change
  gen-make generate windows --cpu x64 -f  # 64-bit build, overwrite without asking
  gen-make generate mingw -r -dd          # Top directory only, trace logging`,
		Args: cobra.MaximumNArgs(1),
		RunE: generateCommand,
	}

	cmd.Flags().BoolP("no-recurse", "r", false, "Do not search recursively for source files")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing makefile without asking")
	cmd.Flags().BoolP("dry-run", "n", false, "Show the difference to the existing makefile without writing")
	cmd.Flags().Bool("stdout", false, "Write the makefile to stdout")
	cmd.Flags().StringP("output", "o", "", "Output file (default: the generator's file name in the root)")
	cmd.Flags().StringP("root", "C", ".", "Project root to scan")
	cmd.Flags().String("cpu", "", "Target CPU (x86, x64)")
	cmd.Flags().CountP("debug", "d", "Increase log verbosity (-d debug, -dd trace)")
	cmd.Flags().String("config", "", "Path to config file (default: <root>/.gen-make.yaml)")
	cmd.Flags().String("log-dir", "", "Directory for per-run log files")
	cmd.Flags().Bool("no-lib-rule", false, "Leave the library rule out of the makefile")
	cmd.Flags().Bool("no-history", false, "Do not record this run in the history database")

	return cmd
}

// loadConfig reads the config file (explicit path or <dir>/.gen-make.yaml),
// then .env and the environment.
func loadConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := config.LoadDotEnv("."); err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

// generateCommand implements the generate command logic
func generateCommand(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")

	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}

	noRecurseFlag, _ := cmd.Flags().GetBool("no-recurse")
	cpuFlag, _ := cmd.Flags().GetString("cpu")
	debugCount, _ := cmd.Flags().GetCount("debug")
	logDirFlag, _ := cmd.Flags().GetString("log-dir")
	noLibRuleFlag, _ := cmd.Flags().GetBool("no-lib-rule")
	noHistoryFlag, _ := cmd.Flags().GetBool("no-history")
	force, _ := cmd.Flags().GetBool("force")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	outputPath, _ := cmd.Flags().GetString("output")

	if dryRun && toStdout {
		return fmt.Errorf("cannot use both --dry-run and --stdout")
	}

	// Build flag pointers for merge (only non-default values)
	var genPtr *string
	if len(args) == 1 {
		genPtr = &args[0]
	}

	var recursivePtr *bool
	if cmd.Flags().Changed("no-recurse") {
		recursive := !noRecurseFlag
		recursivePtr = &recursive
	}

	var cpuPtr *string
	if cmd.Flags().Changed("cpu") {
		cpuPtr = &cpuFlag
	}

	var logLevelPtr *string
	if debugCount > 0 {
		level := "debug"
		if debugCount > 1 {
			level = "trace"
		}
		logLevelPtr = &level
	}

	var logDirPtr *string
	if cmd.Flags().Changed("log-dir") {
		logDirPtr = &logDirFlag
	}

	var libRulePtr *bool
	if cmd.Flags().Changed("no-lib-rule") {
		libRule := !noLibRuleFlag
		libRulePtr = &libRule
	}

	var historyPtr *bool
	if cmd.Flags().Changed("no-history") {
		enabled := !noHistoryFlag
		historyPtr = &enabled
	}

	// Merge CLI flags with config (flags take precedence)
	cfg.MergeWithFlags(genPtr, recursivePtr, cpuPtr, logLevelPtr, logDirPtr, libRulePtr, historyPtr)

	// Validate merged configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Generator == "" {
		return fmt.Errorf("no generator given (choose one of: %v)", generator.Names())
	}
	gen, err := generator.Lookup(cfg.Generator)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	log, closeLog, err := buildLogger(errOut, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openHistory(cfg, log, errOut)
	if store != nil {
		defer store.Close()
	}

	outOpts := output.Options{
		Mode:     output.ModeFile,
		Path:     outputPath,
		Force:    force,
		Prompter: newPrompter(cmd),
		Stdout:   cmd.OutOrStdout(),
		Color:    isTerminal(cmd.OutOrStdout()),
	}
	switch {
	case toStdout:
		outOpts.Mode = output.ModeStdout
	case dryRun:
		outOpts.Mode = output.ModeDryRun
	}

	res, err := genmake.Run(cmd.Context(), genmake.Options{
		Generator: gen,
		Config:    cfg,
		Root:      root,
		Output:    outOpts,
		Logger:    log,
		Warnings:  errOut,
		History:   store,
	})
	if err != nil {
		return err
	}

	if res.Mode == output.ModeStdout {
		fmt.Fprintln(errOut, "Generated makefile to stdout.")
	}
	return nil
}

// buildLogger returns the console logger, teamed with a file logger when a
// log directory is configured.
func buildLogger(w io.Writer, cfg *config.Config) (logger.Logger, func(), error) {
	console := logger.NewConsoleLogger(w, cfg.LogLevel)
	if cfg.LogDir == "" {
		return console, func() {}, nil
	}

	fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	console.LogDebug(fmt.Sprintf("Logging to %s", fileLog.Path()))
	return logger.NewMultiLogger(console, fileLog), func() { fileLog.Close() }, nil
}

// openHistory opens the history store. Any failure is reported as a warning
// and disables recording for this run.
func openHistory(cfg *config.Config, log logger.Logger, warnings io.Writer) *history.Store {
	if !cfg.History.Enabled {
		return nil
	}

	dbPath, err := cfg.HistoryDBPath()
	if err == nil {
		var store *history.Store
		if store, err = history.NewStore(dbPath); err == nil {
			log.LogTrace(fmt.Sprintf("Recording history in %s", dbPath))
			return store
		}
	}

	log.LogWarn(fmt.Sprintf("history disabled: %v", err))
	display.WarnHistory(dbPath, err).Display(warnings)
	return nil
}

// newPrompter reads answers from the terminal. Redirected command input is
// never treated as interactive.
func newPrompter(cmd *cobra.Command) output.Prompter {
	if in := cmd.InOrStdin(); in != os.Stdin {
		return output.NewPrompter(in, cmd.ErrOrStderr(), false)
	}
	return output.NewTerminalPrompter()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
