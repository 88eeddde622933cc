package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/genmake/internal/genmake"
	"github.com/harrison/genmake/internal/output"
)

func TestGenerateWritesMakefile(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.c": "int main(void){return 0;}\n", "sub/b.cpp": "\n"})

	_, stderr, err := execute(t, "generate", "mingw", "-C", root, "--no-history")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "Makefile.MinGW"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "SOURCES = a.c")
	assert.Contains(t, string(data), "CPP_SOURCES = sub/b.cpp")
	assert.Contains(t, stderr, "=== Generation Summary ===")
}

func TestGenerateToStdout(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.c": "\n"})

	stdout, stderr, err := execute(t, "generate", "watcom", "-C", root, "--stdout", "--no-history")
	require.NoError(t, err)

	assert.Contains(t, stdout, "a.c")
	assert.Contains(t, stderr, "Generated makefile to stdout.")
	_, err = os.Stat(filepath.Join(root, "Makefile.Watcom"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateCustomOutput(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.c": "\n"})
	target := filepath.Join(t.TempDir(), "Makefile")

	_, _, err := execute(t, "generate", "cygwin", "-C", root, "-o", target, "--no-history")
	require.NoError(t, err)
	assert.FileExists(t, target)
}

func TestGenerateRefusesOverwrite(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.c": "\n", "Makefile.MSVC": "keep\n"})

	_, _, err := execute(t, "generate", "msvc", "-C", root, "--no-history")
	require.ErrorIs(t, err, output.ErrNotConfirmed)
	assert.Contains(t, err.Error(), "--force")

	data, err := os.ReadFile(filepath.Join(root, "Makefile.MSVC"))
	require.NoError(t, err)
	assert.Equal(t, "keep\n", string(data))

	_, _, err = execute(t, "generate", "msvc", "-C", root, "--no-history", "-f")
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(root, "Makefile.MSVC"))
	require.NoError(t, err)
	assert.NotEqual(t, "keep\n", string(data))
}

func TestGenerateDryRun(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.c": "\n"})

	stdout, _, err := execute(t, "generate", "mingw", "-C", root, "-n", "--no-history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "would be created")
	_, err = os.Stat(filepath.Join(root, "Makefile.MinGW"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateNoSources(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"README.md": "# nothing\n"})

	_, _, err := execute(t, "generate", "mingw", "-C", root, "--no-history")
	require.ErrorIs(t, err, genmake.ErrNoSources)
	assert.Equal(t, "I found no .c/.cc/.cpp/.cxx sources", err.Error())
}

func TestGenerateNoRecurse(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.c": "\n", "sub/b.c": "\n"})

	stdout, _, err := execute(t, "generate", "mingw", "-C", root, "-r", "--stdout", "--no-history")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "sub/b.c")
	assert.Contains(t, stdout, "(recursively: 0)")
}

func TestGenerateCPU(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{name: "default", want: "-m32"},
		{name: "environment", env: "x64", want: "-m64"},
		{name: "flag beats environment", env: "x64", args: []string{"--cpu", "x86"}, want: "-m32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv("CPU", tt.env)
			root := t.TempDir()
			writeFiles(t, root, map[string]string{"a.c": "\n"})

			args := append([]string{"generate", "mingw", "-C", root, "--stdout", "--no-history"}, tt.args...)
			stdout, _, err := execute(t, args...)
			require.NoError(t, err)
			assert.Contains(t, stdout, tt.want)
		})
	}
}

func TestGenerateGeneratorFromConfig(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.c":            "\n",
		".gen-make.yaml": "generator: msvc\nhistory:\n  enabled: false\n",
	})

	_, _, err := execute(t, "generate", "-C", root)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "Makefile.MSVC"))
}

func TestGenerateErrors(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.c":      "\n",
		"bad.yaml": "recursive: [not a bool\n",
		"vcs.yaml": "vcs_dirs: [\"a/b\"]\n",
	})

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no generator", args: []string{"generate", "-C", root}, wantErr: "no generator given"},
		{name: "unknown generator", args: []string{"generate", "borland", "-C", root}, wantErr: "unknown generator"},
		{name: "conflicting modes", args: []string{"generate", "mingw", "-C", root, "-n", "--stdout"}, wantErr: "cannot use both"},
		{name: "malformed config", args: []string{"generate", "mingw", "-C", root, "--config", filepath.Join(root, "bad.yaml")}, wantErr: "failed to load config from"},
		{name: "invalid vcs dir", args: []string{"generate", "mingw", "-C", root, "--config", filepath.Join(root, "vcs.yaml")}, wantErr: "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append(tt.args, "--no-history")...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateLogDir(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	logDir := filepath.Join(t.TempDir(), "logs")
	writeFiles(t, root, map[string]string{"a.c": "\n"})

	_, _, err := execute(t, "generate", "mingw", "-C", root, "--log-dir", logDir, "--no-history", "-d")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== gen-make Run Log ===")
}
