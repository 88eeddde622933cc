package genmake

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/genmake/internal/classify"
	"github.com/harrison/genmake/internal/config"
	"github.com/harrison/genmake/internal/generator"
	"github.com/harrison/genmake/internal/history"
	"github.com/harrison/genmake/internal/logger"
	"github.com/harrison/genmake/internal/output"
)

type noTools struct{}

func (noTools) Found(string) bool { return false }

func fixedClock() time.Time {
	return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
}

func memTree(t *testing.T, root string, files ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(root, 0o755))
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fsys, filepath.Join(root, f), []byte("x"), 0o644))
	}
	return fsys
}

func TestRunScenarioAToStdout(t *testing.T) {
	fsys := memTree(t, "proj", "a.c", "sub/b.cpp", "sub/c.rc", "notes.txt")
	var out bytes.Buffer

	res, err := Run(context.Background(), Options{
		Generator:  generator.MinGW,
		Fs:         fsys,
		Root:       "proj",
		Output:     output.Options{Mode: output.ModeStdout, Stdout: &out},
		ToolFinder: noTools{},
		Clock:      fixedClock,
	})
	require.NoError(t, err)

	assert.Equal(t, "mingw", res.Generator)
	assert.Equal(t, filepath.Join("proj", "Makefile.MinGW"), res.Output)
	assert.Equal(t, 2, res.Sources)
	assert.Equal(t, 1, res.VPaths)
	assert.Equal(t, map[classify.Category]int{
		classify.CategoryC:   1,
		classify.CategoryCPP: 1,
		classify.CategoryRC:  1,
	}, res.Counts)
	assert.Equal(t, "proj", res.Project)
	assert.True(t, res.Written)

	text := out.String()
	assert.Contains(t, text, "SOURCES = a.c")
	assert.Contains(t, text, "CPP_SOURCES = sub/b.cpp")
	assert.Contains(t, text, "\nVPATH = sub   #! Found 1 VPATHs\n")
	assert.Contains(t, text, "Makefile for proj / ")
	assert.Contains(t, text, "Tue Mar  5 14:07:09 2024")
	assert.NotContains(t, text, "notes.txt")
}

func TestRunScenarioBEmptyTree(t *testing.T) {
	fsys := memTree(t, "empty")
	var out bytes.Buffer

	_, err := Run(context.Background(), Options{
		Generator: generator.MSVC,
		Fs:        fsys,
		Root:      "empty",
		Output:    output.Options{Mode: output.ModeStdout, Stdout: &out},
	})
	require.ErrorIs(t, err, ErrNoSources)
	assert.Equal(t, "I found no .c/.cc/.cpp/.cxx sources", err.Error())
	assert.Empty(t, out.String(), "nothing is written without sources")
}

func TestRunOnlyResourcesIsNoSources(t *testing.T) {
	fsys := memTree(t, "res", "app.rc", "config.h.in")

	_, err := Run(context.Background(), Options{
		Generator: generator.Cygwin,
		Fs:        fsys,
		Root:      "res",
		Output:    output.Options{Mode: output.ModeStdout, Stdout: &bytes.Buffer{}},
	})
	assert.ErrorIs(t, err, ErrNoSources)
}

func TestRunRootDot(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "main.c", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "lib/util.c", []byte("x"), 0o644))
	var out bytes.Buffer

	res, err := Run(context.Background(), Options{
		Generator:  generator.Watcom,
		Fs:         fsys,
		Output:     output.Options{Mode: output.ModeStdout, Stdout: &out},
		ToolFinder: noTools{},
	})
	require.NoError(t, err)
	assert.Equal(t, "Makefile.Watcom", res.Output)
	assert.Equal(t, 2, res.Sources)
	assert.Contains(t, out.String(), "lib/util.c")
	assert.NotContains(t, out.String(), "./main.c")
	assert.NotContains(t, out.String(), "./lib")
}

func TestRunNonRecursive(t *testing.T) {
	fsys := memTree(t, "proj", "a.c", "sub/b.c")
	cfg := config.DefaultConfig()
	cfg.Recursive = false
	var out bytes.Buffer

	res, err := Run(context.Background(), Options{
		Generator:  generator.MinGW,
		Config:     cfg,
		Fs:         fsys,
		Root:       "proj",
		Output:     output.Options{Mode: output.ModeStdout, Stdout: &out},
		ToolFinder: noTools{},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sources)
	assert.Equal(t, 0, res.VPaths)
	assert.Contains(t, out.String(), "(recursively: 0)")
}

func TestRunSkipsVCSAndExcludedResource(t *testing.T) {
	fsys := memTree(t, "proj", "a.c", ".git/hooks/x.c", "gen-make.rc", "app.rc")

	res, err := Run(context.Background(), Options{
		Generator:  generator.MinGW,
		Fs:         fsys,
		Root:       "proj",
		Output:     output.Options{Mode: output.ModeStdout, Stdout: &bytes.Buffer{}},
		ToolFinder: noTools{},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sources)
	assert.Equal(t, 1, res.Counts[classify.CategoryRC])
}

func TestRunWritesFileAndRecordsHistory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.c"), []byte("int main(void){return 0;}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# Demo Tool\n"), 0o644))

	store, err := history.NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	var logs bytes.Buffer
	res, err := Run(context.Background(), Options{
		Generator:  generator.MinGW,
		Root:       root,
		Output:     output.Options{Mode: output.ModeFile},
		Logger:     logger.NewConsoleLogger(&logs, "info"),
		History:    store,
		ToolFinder: noTools{},
	})
	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.Equal(t, "Demo Tool", res.Project)
	assert.NotEmpty(t, res.RunID)

	data, err := os.ReadFile(filepath.Join(root, "Makefile.MinGW"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Makefile for Demo Tool / ")
	assert.Contains(t, string(data), "SOURCES = a.c")

	assert.Contains(t, logs.String(), "=== Generation Summary ===")

	run, err := store.Get(context.Background(), res.RunID)
	require.NoError(t, err)
	assert.True(t, run.Success)
	assert.Equal(t, "mingw", run.Generator)
	assert.Equal(t, "file", run.Mode)
	assert.Equal(t, map[string]int{"c_files": 1}, run.Categories)
}

func TestRunRefusesOverwriteWithoutForce(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.c"), []byte("x"), 0o644))
	target := filepath.Join(root, "Makefile.MSVC")
	require.NoError(t, os.WriteFile(target, []byte("keep me\n"), 0o644))

	store, err := history.NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	_, err = Run(context.Background(), Options{
		Generator:  generator.MSVC,
		Root:       root,
		Output:     output.Options{Mode: output.ModeFile},
		History:    store,
		ToolFinder: noTools{},
	})
	require.ErrorIs(t, err, output.ErrNotConfirmed)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "keep me\n", string(data))

	runs, err := store.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.False(t, runs[0].Success)
	assert.Contains(t, runs[0].Error, "not overwriting")
}

func TestRunDryRun(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.c"), []byte("x"), 0o644))
	var out bytes.Buffer

	res, err := Run(context.Background(), Options{
		Generator:  generator.Windows,
		Root:       root,
		Output:     output.Options{Mode: output.ModeDryRun, Stdout: &out},
		ToolFinder: noTools{},
	})
	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.True(t, strings.HasPrefix(out.String(), filepath.Join(root, "Makefile.Windows")+" would be created ("))

	_, err = os.Stat(filepath.Join(root, "Makefile.Windows"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunUnknownCPUWarns(t *testing.T) {
	fsys := memTree(t, "proj", "a.c")
	cfg := config.DefaultConfig()
	cfg.CPU = "arm64"
	var out, warnings bytes.Buffer

	_, err := Run(context.Background(), Options{
		Generator:  generator.MinGW,
		Config:     cfg,
		Fs:         fsys,
		Root:       "proj",
		Output:     output.Options{Mode: output.ModeStdout, Stdout: &out},
		Warnings:   &warnings,
		ToolFinder: noTools{},
	})
	require.NoError(t, err)
	assert.Contains(t, warnings.String(), "Unknown CPU")
	assert.Contains(t, out.String(), "-m??")
}

func TestRunCancelled(t *testing.T) {
	fsys := memTree(t, "proj", "a.c", "b.c")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{
		Generator: generator.MinGW,
		Fs:        fsys,
		Root:      "proj",
		Output:    output.Options{Mode: output.ModeStdout, Stdout: &bytes.Buffer{}},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRequiresGenerator(t *testing.T) {
	_, err := Run(context.Background(), Options{})
	assert.ErrorIs(t, err, generator.ErrUnknownGenerator)
}
