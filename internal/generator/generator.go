package generator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/harrison/genmake/internal/classify"
)

// ErrUnknownGenerator is returned by Lookup for a name no generator uses.
var ErrUnknownGenerator = errors.New("unknown generator")

// Dialect names the make program a generated file is written for.
type Dialect string

const (
	DialectGNU    Dialect = "GNU"
	DialectNmake  Dialect = "Nmake"
	DialectWatcom Dialect = "Watcom"
)

// VPathStyle selects how the %v directive renders the directory search path.
type VPathStyle int

const (
	// VPathGNU writes a single "VPATH = a b" assignment.
	VPathGNU VPathStyle = iota
	// VPathWatcom writes one ".ext: a;b" statement per source extension.
	VPathWatcom
)

// Rules holds the rule text for each source category plus the resource and
// library rules. Every rule ends in a newline.
type Rules struct {
	C   string
	CC  string
	CPP string
	CXX string
	Res string
	Lib string
}

// Generator describes one makefile flavour: its template lines and the
// values the directives substitute into them.
type Generator struct {
	Name     string
	Title    string
	Make     Dialect
	FileName string

	// ForwardSlash makes recorded source paths use '/' separators.
	ForwardSlash bool
	VPath        VPathStyle
	LineEnd      string
	ObjSuffix    string

	Rules Rules

	// GateLibRule drops the %l output when library rules are turned off.
	GateLibRule bool

	Lines   []string
	RCRule  []string
	RCMacro []string
}

// Rule returns the compile rule for a source category, or "" for
// categories without one.
func (g *Generator) Rule(c classify.Category) string {
	switch c {
	case classify.CategoryC:
		return g.Rules.C
	case classify.CategoryCC:
		return g.Rules.CC
	case classify.CategoryCPP:
		return g.Rules.CPP
	case classify.CategoryCXX:
		return g.Rules.CXX
	case classify.CategoryRC:
		return g.Rules.Res
	}
	return ""
}

// Description is the one-line summary shown by "gen-make list".
func (g *Generator) Description() string {
	return fmt.Sprintf("%s makefile for %s", g.Make, g.Title)
}

var registry = map[string]*Generator{}

func register(g *Generator) *Generator {
	registry[g.Name] = g
	return g
}

// Lookup finds a generator by name, ignoring case.
func Lookup(name string) (*Generator, error) {
	if g, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("%w %q (choose one of: %s)", ErrUnknownGenerator, name, strings.Join(Names(), ", "))
}

// Names lists the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered generator sorted by name.
func All() []*Generator {
	names := Names()
	out := make([]*Generator, 0, len(names))
	for _, name := range names {
		out = append(out, registry[name])
	}
	return out
}
