package expand

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/genmake/internal/classify"
	"github.com/harrison/genmake/internal/generator"
)

type fakeFinder map[string]bool

func (f fakeFinder) Found(tool string) bool { return f[tool] }

func sources(files map[classify.Category][]string, vpaths ...string) *classify.Sources {
	src := classify.NewSources()
	for cat, list := range files {
		for _, f := range list {
			src.Add(cat, f)
		}
	}
	for _, v := range vpaths {
		src.AddVPath(v)
	}
	return src
}

func expandLine(t *testing.T, e *Expander, line string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, e.ExpandLine(&buf, line))
	return buf.String()
}

func TestLiteralLinesPassThrough(t *testing.T) {
	e := New(generator.MinGW, classify.NewSources())

	lines := []string{
		"CC      = gcc",
		"",
		"$(OBJ_DIR)/%.o: %.c",
		"DATE = $(shell date +%d-%B-%Y)",
		`CFLAGS += -I$(%WATCOM)\h`,
		"ends with a percent %",
		"\t$(CC) $(CFLAGS) -o $@ -c $<",
	}
	for _, line := range lines {
		assert.Equal(t, line+"\n", expandLine(t, e, line))
	}
}

func TestSourcesScenarioC(t *testing.T) {
	src := sources(map[classify.Category][]string{
		classify.CategoryC: {"x.c", "yy.c"},
	})
	e := New(generator.MinGW, src)

	got := expandLine(t, e, "SOURCES = %s")

	assert.Equal(t,
		"SOURCES = x.c  \\\n"+
			"          yy.c\n"+
			"          #! 2 .c SOURCES files found (recursively: 1)\n",
		got)
}

func TestSourcesAllGroups(t *testing.T) {
	src := sources(map[classify.Category][]string{
		classify.CategoryC:   {"a.c"},
		classify.CategoryCPP: {"b.cpp", "long/c.cpp"},
		classify.CategoryHIn: {"config.h.in"},
		classify.CategoryRC:  {"app.rc", "res/dlg.rc"},
	})
	e := New(generator.MinGW, src, WithRecursive(false))

	got := expandLine(t, e, "%s")

	assert.Equal(t,
		"a.c\n"+
			"#! 1 .c SOURCES files found (recursively: 0)\n"+
			"\n#\n#! Add these $(CPP_SOURCES) to $(OBJECTS) as needed.\n#\n"+
			"CPP_SOURCES = b.cpp      \\\n"+
			"              long/c.cpp\n"+
			"#! Found 1 .h.in-file(s); add rules for these as needed.\n"+
			"#! Found 2 .rc-file(s).\n",
		got)
}

func TestSourcesCCGroupAndWatcomContinuation(t *testing.T) {
	src := sources(map[classify.Category][]string{
		classify.CategoryC:  {"main.c", "util.c"},
		classify.CategoryCC: {"x.cc", "y.cc"},
	})
	e := New(generator.Watcom, src)

	got := expandLine(t, e, "SOURCES = %s")

	assert.Equal(t,
		"SOURCES = main.c &\n"+
			"          util.c\n"+
			"          #! 2 .c SOURCES files found (recursively: 1)\n"+
			"\n#\n#! Add these $(CC_SOURCES) to $(OBJECTS) as needed.\n#\n"+
			"CC_SOURCES = x.cc &\n"+
			"             y.cc\n",
		got)
}

func TestSourcesWithoutCFiles(t *testing.T) {
	e := New(generator.MinGW, classify.NewSources())
	assert.Equal(t,
		"SOURCES =           #! 0 .c SOURCES files found (recursively: 1)\n",
		expandLine(t, e, "SOURCES = %s"))
}

func TestCompileRules(t *testing.T) {
	src := sources(map[classify.Category][]string{
		classify.CategoryC:   {"a.c"},
		classify.CategoryCPP: {"b.cpp"},
	})
	e := New(generator.MinGW, src)

	want := generator.MinGW.Rules.C + "\n" + generator.MinGW.Rules.CPP + "\n" + "\n"
	assert.Equal(t, want, expandLine(t, e, "%c"))
}

func TestCompileRulesEmpty(t *testing.T) {
	e := New(generator.MinGW, classify.NewSources())
	assert.Equal(t, "\n", expandLine(t, e, "%c"))
}

func TestVPathGNU(t *testing.T) {
	e := New(generator.MinGW, sources(nil, "sub", "lib"))
	assert.Equal(t, "VPATH = sub lib   #! Found 2 VPATHs\n", expandLine(t, e, "%v"))
}

func TestVPathWatcom(t *testing.T) {
	e := New(generator.Watcom, sources(nil, "sub", "lib"))
	assert.Equal(t,
		".c: sub;lib\n.cc: sub;lib\n.cpp: sub;lib\n.cxx: sub;lib\n.rc: sub;lib\n",
		expandLine(t, e, "%v"))
}

func TestVPathEmpty(t *testing.T) {
	for _, g := range []*generator.Generator{generator.MinGW, generator.Watcom} {
		e := New(g, classify.NewSources())
		assert.Equal(t, "", expandLine(t, e, "%v"), g.Name)
	}
}

func TestObjects(t *testing.T) {
	src := sources(map[classify.Category][]string{
		classify.CategoryC:   {"a.c", "src/b.c"},
		classify.CategoryCPP: {"x/y.cpp"},
		classify.CategoryCXX: {"z.cxx"},
	})
	e := New(generator.Watcom, src)

	assert.Equal(t,
		"OBJECTS = $(OBJ_DIR)/a.obj $(OBJ_DIR)/b.obj $(OBJ_DIR)/y.obj\n",
		expandLine(t, e, "OBJECTS = %o"))
}

func TestObjectsWrap(t *testing.T) {
	src := sources(map[classify.Category][]string{
		classify.CategoryC: {"a.c", "b.c", "c.c", "d.c", "e.c", "f.c"},
	})
	e := New(generator.Watcom, src)

	got := expandLine(t, e, "OBJECTS = %o")

	assert.Equal(t,
		"OBJECTS = $(OBJ_DIR)/a.obj $(OBJ_DIR)/b.obj $(OBJ_DIR)/c.obj &\n"+
			"          $(OBJ_DIR)/d.obj $(OBJ_DIR)/e.obj $(OBJ_DIR)/f.obj\n",
		got)
	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), wrapColumn+2)
	}
}

func TestLibRuleGate(t *testing.T) {
	tests := []struct {
		name    string
		gen     *generator.Generator
		libRule bool
		want    string
	}{
		{"gated and on", generator.MinGW, true, generator.MinGW.Rules.Lib + "\n"},
		{"gated and off", generator.MinGW, false, ""},
		{"not gated", generator.Cygwin, false, generator.Cygwin.Rules.Lib + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.gen, classify.NewSources(), WithLibRule(tt.libRule))
			assert.Equal(t, tt.want, expandLine(t, e, "%l"))
		})
	}
}

func TestRuleTextExpandsInlineDirectives(t *testing.T) {
	e := New(generator.MSVC, classify.NewSources(), WithCPU("x64"))
	got := expandLine(t, e, "%l")
	assert.Contains(t, got, "\tlib -nologo -machine:x64 -out:$@ $**\n")
	assert.NotContains(t, got, "%b")
}

func TestResourceRuleWithRCFiles(t *testing.T) {
	src := sources(map[classify.Category][]string{classify.CategoryRC: {"app.rc"}})
	e := New(generator.MSVC, src)

	assert.Equal(t, generator.MSVC.Rules.Res+"\n", expandLine(t, e, "%r"))
	assert.Equal(t, "", expandLine(t, New(generator.Windows, src), "%R"))
}

func TestResourceRuleSynthesized(t *testing.T) {
	e := New(generator.MSVC, classify.NewSources(), WithProjectName("demo"))

	got := expandLine(t, e, "%r")
	assert.True(t, strings.HasPrefix(got, "foo.res: foo.rc\n"))
	assert.Contains(t, got, "\t@echo // Resources for demo                  > $@\n")
	assert.Equal(t, len(generator.MSVC.RCRule), strings.Count(got, "\n"))
}

func TestResourceMacroSynthesized(t *testing.T) {
	e := New(generator.Windows, classify.NewSources(), WithProjectName("demo"), WithCPU("amd64"))

	got := expandLine(t, e, "%R")
	assert.Contains(t, got, "define FOO_RC\n")
	assert.Contains(t, got, `VALUE "FileDescription",  "demo"`+"\n")
	assert.Contains(t, got, `VALUE "Comments",         "Built for x64"`+"\n")
}

func TestNestedResourceDirectivesAreLiteral(t *testing.T) {
	gen := &generator.Generator{
		Name:    "test",
		LineEnd: `\`,
		RCRule:  []string{"%r", "%R", "bits %t"},
		RCMacro: []string{"%R", "%v"},
	}
	e := New(gen, sources(nil, "sub"))

	assert.Equal(t, "%r\n%R\nbits 32\n", expandLine(t, e, "%r"))
	assert.Equal(t, "%R\nVPATH = sub   #! Found 1 VPATHs\n", expandLine(t, e, "%R"))
}

func TestInlineDirectives(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC) }

	tests := []struct {
		name string
		opts []Option
		line string
		want string
	}{
		{"bits default", nil, "CFLAGS  = -m%t -Wall", "CFLAGS  = -m32 -Wall"},
		{"bits x64", []Option{WithCPU("x64")}, "-m%t", "-m64"},
		{"bits unknown", []Option{WithCPU("arm64")}, "-m%t", "-m??"},
		{"machine", []Option{WithCPU("X64")}, "-machine:%b", "-machine:x64"},
		{"target x86", nil, "--target=%T -O COFF", "--target=pe-i386 -O COFF"},
		{"target x64", []Option{WithCPU("amd64")}, "--target=%T", "--target=pe-x86-64"},
		{"date", []Option{WithClock(clock)}, "# Generated by gen-make at %D.", "# Generated by gen-make at Tue Mar  5 14:07:09 2024."},
		{"formatter found", []Option{WithToolFinder(fakeFinder{"astyle": true})}, "USE_ASTYLE = %a", "USE_ASTYLE = 1"},
		{"formatter missing", []Option{WithToolFinder(fakeFinder{})}, "USE_ASTYLE = %a", "USE_ASTYLE = 0"},
		{"custom formatter", []Option{WithFormatter("clang-format"), WithToolFinder(fakeFinder{"clang-format": true})}, "%a", "1"},
		{"project default", nil, "# Makefile for %P / MinGW.", "# Makefile for project X / MinGW."},
		{"project", []Option{WithProjectName("libfoo")}, "# Makefile for %P.", "# Makefile for libfoo."},
		{"only first directive", nil, "%t and %b", "32 and %b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(generator.MinGW, classify.NewSources(), tt.opts...)
			assert.Equal(t, tt.want+"\n", expandLine(t, e, tt.line))
		})
	}
}

func TestEntryPointComment(t *testing.T) {
	line := "all: $(GENERATED) $(PROGRAM)"

	e := New(generator.MinGW, classify.NewSources())
	assert.Equal(t, noEntryPointComment+line+"\n", expandLine(t, e, line))

	src := classify.NewSources()
	src.MainFound = true
	assert.Equal(t, line+"\n", expandLine(t, New(generator.MinGW, src), line))

	src.DllMainFound = true
	assert.Equal(t, dllMainComment+line+"\n", expandLine(t, New(generator.MinGW, src), line))

	assert.Equal(t, "all:\n", expandLine(t, e, "all:"))
	assert.Equal(t, " all: x\n", expandLine(t, e, " all: x"))
}

func TestGenerateEveryGenerator(t *testing.T) {
	src := sources(map[classify.Category][]string{
		classify.CategoryC:   {"a.c"},
		classify.CategoryCPP: {"sub/b.cpp"},
		classify.CategoryRC:  {"sub/c.rc"},
	}, "sub")

	for _, g := range generator.All() {
		t.Run(g.Name, func(t *testing.T) {
			var buf bytes.Buffer
			e := New(g, src, WithToolFinder(fakeFinder{}), WithProjectName("demo"))
			require.NoError(t, e.Generate(&buf))

			out := buf.String()
			assert.True(t, strings.HasSuffix(out, "\n\n"))
			assert.Contains(t, out, "SOURCES = a.c")
			assert.Contains(t, out, "CPP_SOURCES = sub/b.cpp")
			assert.Contains(t, out, "Makefile for demo / "+g.Title+".")
			assert.Contains(t, out, noEntryPointComment)
			assert.Contains(t, out, "USE_ASTYLE    = 0")

			for _, line := range strings.Split(out, "\n") {
				assert.NotEqual(t, "%s", strings.TrimSpace(line))
				assert.NotContains(t, line, "%P")
				assert.NotContains(t, line, "%t")
			}
		})
	}
}

func TestGenerateScenarioA(t *testing.T) {
	src := sources(map[classify.Category][]string{
		classify.CategoryC:   {"a.c"},
		classify.CategoryCPP: {"sub/b.cpp"},
		classify.CategoryRC:  {"sub/c.rc"},
	}, "sub")

	var buf bytes.Buffer
	require.NoError(t, New(generator.MinGW, src, WithToolFinder(fakeFinder{})).Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "\nVPATH = sub   #! Found 1 VPATHs\n")
	assert.Contains(t, out, "#! Found 1 .rc-file(s).\n")
	assert.Contains(t, out, generator.MinGW.Rules.C)
	assert.Contains(t, out, generator.MinGW.Rules.CPP)
	assert.NotContains(t, out, generator.MinGW.Rules.CC)
	assert.Contains(t, out, "windres --target=pe-i386 -D__MINGW32__")
	assert.True(t, strings.HasSuffix(out, "-include .depend.MinGW\n\n"))
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("disk full")
	}
	f.after--
	return len(p), nil
}

func TestGenerateReportsWriteErrors(t *testing.T) {
	e := New(generator.MinGW, classify.NewSources(), WithToolFinder(fakeFinder{}))

	err := e.Generate(&failingWriter{after: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "Makefile.MinGW")
}
