// Package genmake runs one makefile generation: walk the project tree,
// classify its sources, expand the generator's template and deliver the
// result.
package genmake

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/harrison/genmake/internal/classify"
	"github.com/harrison/genmake/internal/config"
	"github.com/harrison/genmake/internal/display"
	"github.com/harrison/genmake/internal/expand"
	"github.com/harrison/genmake/internal/generator"
	"github.com/harrison/genmake/internal/history"
	"github.com/harrison/genmake/internal/logger"
	"github.com/harrison/genmake/internal/output"
	"github.com/harrison/genmake/internal/project"
	"github.com/harrison/genmake/internal/walker"
)

// ErrNoSources is returned when the tree holds nothing to compile.
var ErrNoSources = errors.New("I found no .c/.cc/.cpp/.cxx sources")

// Options describes one run.
type Options struct {
	// Generator is required.
	Generator *generator.Generator

	// Config supplies scanning and expansion settings. Nil means defaults.
	Config *config.Config

	// Fs is the filesystem holding Root. Nil means the OS filesystem.
	Fs afero.Fs

	// Root is the project directory. Empty means ".".
	Root string

	// Output selects stdout, file or dry-run delivery. When Output.Path is
	// empty the generator's file name inside Root is used.
	Output output.Options

	Logger logger.Logger

	// Warnings receives user-facing warnings. Nil discards them.
	Warnings io.Writer

	// History records the run when non-nil.
	History *history.Store

	// ToolFinder and Clock replace PATH lookups and the clock.
	ToolFinder expand.ToolFinder
	Clock      func() time.Time
}

// Result describes a finished run.
type Result struct {
	Generator string
	Output    string
	Mode      output.Mode
	Sources   int
	VPaths    int
	Counts    map[classify.Category]int
	Project   string
	Written   bool
	Diff      output.DiffStats
	Duration  time.Duration
	RunID     string
}

// Run performs one generation.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Generator == nil {
		return nil, fmt.Errorf("%w: no generator", generator.ErrUnknownGenerator)
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	warnings := opts.Warnings
	if warnings == nil {
		warnings = io.Discard
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	gen := opts.Generator
	start := now()
	res := &Result{
		Generator: gen.Name,
		Output:    opts.Output.Path,
		Mode:      opts.Output.Mode,
		Counts:    make(map[classify.Category]int),
	}
	if res.Output == "" {
		res.Output = filepath.Join(root, gen.FileName)
	}

	if expand.ParseCPU(cfg.CPU) == expand.CPUUnknown {
		display.WarnUnknownCPU(cfg.CPU).Display(warnings)
		log.LogWarn(fmt.Sprintf("unknown CPU %q", cfg.CPU))
	}

	err := generate(ctx, opts, cfg, fsys, root, log, res)
	res.Duration = now().Sub(start)

	if opts.History != nil {
		res.RunID = record(ctx, opts.History, cfg, root, res, err, log, warnings)
	}
	if err != nil {
		return nil, err
	}

	log.LogSummary(logger.Summary{
		Generator: res.Generator,
		Output:    res.Output,
		Sources:   res.Sources,
		VPaths:    res.VPaths,
		Duration:  res.Duration,
		DryRun:    res.Mode == output.ModeDryRun,
	})
	return res, nil
}

func generate(ctx context.Context, opts Options, cfg *config.Config, fsys afero.Fs, root string, log logger.Logger, res *Result) error {
	gen := opts.Generator

	src := classify.NewSources()
	defer src.Free()

	cls := classify.New(src)
	cls.ForwardSlash = gen.ForwardSlash
	cls.ExcludeRC = cfg.ExcludeRC
	cls.VCSDirs = cfg.VCSDirs
	cls.Logger = log

	// paths in the makefile are relative to the project root
	tree := fsys
	if filepath.Clean(root) != "." {
		tree = afero.NewBasePathFs(fsys, root)
	}
	visit := func(path string, entry walker.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return cls.Visit(path, entry)
	}

	log.LogInfo(fmt.Sprintf("Scanning %s for %s (recursive: %v)", root, gen.Description(), cfg.Recursive))
	if err := walker.Walk(tree, ".", visit, walker.WithRecursion(cfg.Recursive)); err != nil {
		return fmt.Errorf("failed to scan %s: %w", root, err)
	}

	res.Sources = cls.Summary()
	res.VPaths = src.VPaths.Len()
	for _, cat := range classify.Categories {
		if n := src.Count(cat); n > 0 {
			res.Counts[cat] = n
		}
	}
	if res.Sources == 0 {
		return ErrNoSources
	}

	res.Project = project.Name(fsys, root)
	expOpts := []expand.Option{
		expand.WithCPU(cfg.CPU),
		expand.WithRecursive(cfg.Recursive),
		expand.WithLibRule(cfg.WriteLibRule),
		expand.WithProjectName(res.Project),
		expand.WithFormatter(cfg.FormatTool),
	}
	if opts.ToolFinder != nil {
		expOpts = append(expOpts, expand.WithToolFinder(opts.ToolFinder))
	}
	if opts.Clock != nil {
		expOpts = append(expOpts, expand.WithClock(opts.Clock))
	}

	var buf bytes.Buffer
	if err := expand.New(gen, src, expOpts...).Generate(&buf); err != nil {
		return err
	}

	outOpts := opts.Output
	outOpts.Path = res.Output
	written, err := output.Write(ctx, buf.Bytes(), outOpts)
	if err != nil {
		return err
	}
	res.Written = written.Written
	res.Diff = written.Diff

	if written.Written && outOpts.Mode == output.ModeFile {
		log.LogInfo(fmt.Sprintf("Wrote %s (%d sources, %d bytes)", res.Output, res.Sources, buf.Len()))
	}
	return nil
}

func record(ctx context.Context, store *history.Store, cfg *config.Config, root string, res *Result, runErr error, log logger.Logger, warnings io.Writer) string {
	run := &history.Run{
		Generator:  res.Generator,
		Root:       root,
		Output:     res.Output,
		Mode:       res.Mode.String(),
		CPU:        cfg.CPU,
		Sources:    res.Sources,
		VPaths:     res.VPaths,
		Categories: make(map[string]int, len(res.Counts)),
		Success:    runErr == nil,
		Duration:   res.Duration,
	}
	for cat, n := range res.Counts {
		run.Categories[cat.String()] = n
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	if err := store.Record(ctx, run); err != nil {
		log.LogWarn(fmt.Sprintf("failed to record run: %v", err))
		display.WarnHistory(store.Path(), err).Display(warnings)
		return ""
	}
	return run.ID
}
