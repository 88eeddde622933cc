// Package output delivers a generated makefile: to a writer, to its file
// after an overwrite check, or as a dry-run diff against the file on disk.
package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/harrison/genmake/internal/filelock"
)

// ErrNotConfirmed is returned when an existing makefile may not be replaced.
var ErrNotConfirmed = errors.New("not overwriting existing file")

// Mode selects where the makefile goes.
type Mode int

const (
	// ModeFile writes the makefile to Options.Path.
	ModeFile Mode = iota
	// ModeStdout writes the makefile to Options.Stdout.
	ModeStdout
	// ModeDryRun writes a diff against Options.Path to Options.Stdout.
	ModeDryRun
)

func (m Mode) String() string {
	switch m {
	case ModeFile:
		return "file"
	case ModeStdout:
		return "stdout"
	case ModeDryRun:
		return "dry-run"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options controls Write.
type Options struct {
	Mode Mode
	// Path is the makefile on disk (ModeFile, ModeDryRun).
	Path string
	// Force skips the overwrite question.
	Force bool
	// Prompter answers the overwrite question. Nil means non-interactive.
	Prompter Prompter
	// Stdout receives ModeStdout output and dry-run reports.
	Stdout io.Writer
	// Color enables colored diffs.
	Color bool
}

// Result describes what Write did.
type Result struct {
	Path    string
	Mode    Mode
	Existed bool
	Written bool
	Diff    DiffStats
}

// Write delivers data according to opts.
func Write(ctx context.Context, data []byte, opts Options) (*Result, error) {
	res := &Result{Path: opts.Path, Mode: opts.Mode}

	switch opts.Mode {
	case ModeStdout:
		if opts.Stdout == nil {
			return nil, errors.New("no writer for stdout output")
		}
		if _, err := opts.Stdout.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write makefile: %w", err)
		}
		res.Written = true
		return res, nil

	case ModeDryRun:
		return res, dryRun(data, opts, res)

	case ModeFile:
		existed, err := exists(opts.Path)
		if err != nil {
			return nil, err
		}
		res.Existed = existed
		if existed && !opts.Force {
			if err := confirmOverwrite(opts); err != nil {
				return nil, err
			}
		}
		if err := filelock.LockAndWrite(ctx, opts.Path, data); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", opts.Path, err)
		}
		res.Written = true
		return res, nil

	default:
		return nil, fmt.Errorf("unknown output mode %v", opts.Mode)
	}
}

func confirmOverwrite(opts Options) error {
	p := opts.Prompter
	if p == nil || !p.Interactive() {
		return fmt.Errorf("%w %s (use --force)", ErrNotConfirmed, opts.Path)
	}
	ok, err := p.Confirm(fmt.Sprintf("Overwrite %s?", opts.Path))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w %s", ErrNotConfirmed, opts.Path)
	}
	return nil
}

func dryRun(data []byte, opts Options, res *Result) error {
	w := opts.Stdout
	if w == nil {
		w = io.Discard
	}

	old, err := os.ReadFile(opts.Path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(w, "%s would be created (%d bytes)\n", opts.Path, len(data))
		res.Diff = DiffStats{Added: len(splitLines(string(data)))}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.Path, err)
	}
	res.Existed = true

	diff, stats := LineDiff(string(old), string(data), opts.Color)
	res.Diff = stats
	if !stats.Changed() {
		fmt.Fprintf(w, "%s is up to date\n", opts.Path)
		return nil
	}
	fmt.Fprintf(w, "--- %s\n+++ %s (generated)\n", opts.Path, opts.Path)
	io.WriteString(w, diff)
	fmt.Fprintf(w, "%s: %s lines\n", opts.Path, stats)
	return nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}
