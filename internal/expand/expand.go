// Package expand turns a generator's template table into makefile text by
// substituting the classified source tree into the '%' directives.
package expand

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/harrison/genmake/internal/classify"
	"github.com/harrison/genmake/internal/generator"
)

// DefaultProjectName is used for %P when no name was detected.
const DefaultProjectName = "project X"

// wrapColumn is where %o starts a continuation line.
const wrapColumn = 72

const (
	noEntryPointComment = "#\n#! Failed to find a 'main()' or a 'WinMain()' in the SOURCES. Is it a .DLL?\n#\n"
	dllMainComment      = "#\n#! Found a 'DllMain()' in the SOURCES. Rewrite the '$(PROGRAM)' rule into a 'link_DLL' rule.\n#\n"
)

type handler func(w *writer, l Line)

// Expander writes one generator's template for one classified tree.
type Expander struct {
	gen *generator.Generator
	src *classify.Sources

	cpu          CPU
	recursive    bool
	writeLibRule bool
	project      string
	formatter    string
	finder       ToolFinder
	now          func() time.Time

	handlers map[Directive]handler
	nested   map[Directive]handler
	inline   map[Directive]handler
}

// Option configures an Expander.
type Option func(*Expander)

// WithCPU sets the CPU used by %t, %b and %T.
func WithCPU(name string) Option {
	return func(e *Expander) {
		e.cpu = ParseCPU(name)
	}
}

// WithRecursive records whether the tree was walked recursively.
func WithRecursive(on bool) Option {
	return func(e *Expander) {
		e.recursive = on
	}
}

// WithLibRule turns the gated library rule on or off.
func WithLibRule(on bool) Option {
	return func(e *Expander) {
		e.writeLibRule = on
	}
}

// WithProjectName sets the %P value.
func WithProjectName(name string) Option {
	return func(e *Expander) {
		if name != "" {
			e.project = name
		}
	}
}

// WithFormatter sets the tool %a looks for.
func WithFormatter(tool string) Option {
	return func(e *Expander) {
		if tool != "" {
			e.formatter = tool
		}
	}
}

// WithToolFinder replaces the PATH lookup used by %a.
func WithToolFinder(f ToolFinder) Option {
	return func(e *Expander) {
		e.finder = f
	}
}

// WithClock replaces the time source used by %D.
func WithClock(now func() time.Time) Option {
	return func(e *Expander) {
		e.now = now
	}
}

// New returns an expander for gen over src.
func New(gen *generator.Generator, src *classify.Sources, opts ...Option) *Expander {
	e := &Expander{
		gen:          gen,
		src:          src,
		cpu:          CPUx86,
		recursive:    true,
		writeLibRule: true,
		project:      DefaultProjectName,
		formatter:    DefaultFormatter,
		finder:       defaultFinder,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.inline = map[Directive]handler{
		DirBits:      e.value(func() string { return e.cpu.Bits() }),
		DirMachine:   e.value(func() string { return e.cpu.Machine() }),
		DirTarget:    e.value(func() string { return e.cpu.Target() }),
		DirDate:      e.value(func() string { return e.now().Format(time.ANSIC) }),
		DirFormatter: e.value(e.formatterFound),
		DirProject:   e.value(func() string { return e.project }),
	}

	e.nested = make(map[Directive]handler, len(e.inline)+5)
	for d, h := range e.inline {
		e.nested[d] = h
	}
	e.nested[DirSources] = e.sources
	e.nested[DirRules] = e.rules
	e.nested[DirObjects] = e.objects
	e.nested[DirVPath] = e.vpath
	e.nested[DirLibRule] = e.libRule

	e.handlers = make(map[Directive]handler, len(e.nested)+2)
	for d, h := range e.nested {
		e.handlers[d] = h
	}
	e.handlers[DirResRule] = e.resRule
	e.handlers[DirResMacro] = e.resMacro

	return e
}

// Generate writes every template line followed by one final newline.
func (e *Expander) Generate(out io.Writer) error {
	w := &writer{w: out}
	for _, text := range e.gen.Lines {
		e.expand(w, Parse(text), e.handlers)
	}
	w.str("\n")
	if w.err != nil {
		return fmt.Errorf("failed to write %s: %w", e.gen.FileName, w.err)
	}
	return nil
}

// ExpandLine writes the expansion of a single template line.
func (e *Expander) ExpandLine(out io.Writer, text string) error {
	w := &writer{w: out}
	e.expand(w, Parse(text), e.handlers)
	return w.err
}

func (e *Expander) expand(w *writer, l Line, handlers map[Directive]handler) {
	if h, ok := handlers[l.Directive]; ok && l.Directive != 0 {
		h(w, l)
		return
	}
	if !l.HasPercent() && strings.HasPrefix(l.Text, "all: ") {
		w.str(e.entryPointComment())
	}
	w.str(l.Text)
	w.str("\n")
}

func (e *Expander) entryPointComment() string {
	switch {
	case !e.src.MainFound && !e.src.WinMainFound:
		return noEntryPointComment
	case e.src.DllMainFound:
		return dllMainComment
	}
	return ""
}

func (e *Expander) value(fn func() string) handler {
	return func(w *writer, l Line) {
		w.str(l.Prefix)
		w.str(fn())
		w.str(l.Suffix)
		w.str("\n")
	}
}

func (e *Expander) formatterFound() string {
	if e.finder != nil && e.finder.Found(e.formatter) {
		return "1"
	}
	return "0"
}

// writeRule writes rule text line by line, substituting only the inline
// directives.
func (e *Expander) writeRule(w *writer, rule string) {
	if rule == "" {
		return
	}
	for _, text := range strings.Split(strings.TrimSuffix(rule, "\n"), "\n") {
		e.expand(w, Parse(text), e.inline)
	}
}

// writer keeps the first write error and drops everything after it.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) str(s string) {
	if w.err != nil || s == "" {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

func (w *writer) pad(n int) {
	if n > 0 {
		w.str(strings.Repeat(" ", n))
	}
}
