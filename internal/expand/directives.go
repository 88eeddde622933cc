package expand

import (
	"strings"

	"github.com/harrison/genmake/internal/classify"
	"github.com/harrison/genmake/internal/generator"
)

// extraGroups are written after the C files by %s.
var extraGroups = []struct {
	cat  classify.Category
	name string
}{
	{classify.CategoryCC, "CC_SOURCES"},
	{classify.CategoryCPP, "CPP_SOURCES"},
	{classify.CategoryCXX, "CXX_SOURCES"},
}

// compiled lists the categories with compile rules, in rule order.
var compiled = []classify.Category{
	classify.CategoryC,
	classify.CategoryCC,
	classify.CategoryCPP,
	classify.CategoryCXX,
}

// watcomVPathExts are the extensions given a Watcom search path.
var watcomVPathExts = []string{".c", ".cc", ".cpp", ".cxx", ".rc"}

func (e *Expander) sources(w *writer, l Line) {
	indent := l.Column
	w.str(l.Prefix)

	e.fileGroup(w, e.src.Files(classify.CategoryC), indent)
	w.pad(indent)
	w.printf("#! %d .c SOURCES files found (recursively: %d)\n", e.src.Count(classify.CategoryC), btoi(e.recursive))

	for _, g := range extraGroups {
		files := e.src.Files(g.cat)
		if len(files) == 0 {
			continue
		}
		head := g.name + " = "
		w.printf("\n#\n#! Add these $(%s) to $(OBJECTS) as needed.\n#\n%s", g.name, head)
		e.fileGroup(w, files, len(head))
	}

	if n := e.src.Count(classify.CategoryHIn); n > 0 {
		w.pad(indent)
		w.printf("#! Found %d .h.in-file(s); add rules for these as needed.\n", n)
	}
	if n := e.src.Count(classify.CategoryRC); n > 0 {
		w.pad(indent)
		w.printf("#! Found %d .rc-file(s).\n", n)
	}
}

// fileGroup writes files as a continuation group. The first file starts at
// the current column; the others are indented. Every line but the last is
// padded to the longest name and ends in the line continuation token.
func (e *Expander) fileGroup(w *writer, files []string, indent int) {
	longest := 0
	for _, f := range files {
		longest = max(longest, len(f))
	}

	for i, f := range files {
		if i > 0 {
			w.pad(indent)
		}
		w.str(f)
		if i < len(files)-1 {
			w.str(" ")
			w.pad(longest - len(f))
			w.str(e.gen.LineEnd)
		}
		w.str("\n")
	}
}

func (e *Expander) rules(w *writer, l Line) {
	for _, cat := range compiled {
		if e.src.Count(cat) == 0 {
			continue
		}
		e.writeRule(w, e.gen.Rule(cat))
		w.str("\n")
	}
	w.str(l.Suffix)
	w.str("\n")
}

func (e *Expander) objects(w *writer, l Line) {
	var objs []string
	for _, cat := range compiled[:3] {
		for _, f := range e.src.Files(cat) {
			objs = append(objs, "$(OBJ_DIR)/"+stem(f)+e.gen.ObjSuffix)
		}
	}

	w.str(l.Prefix)
	col := len(l.Prefix)
	for i, obj := range objs {
		if i > 0 {
			if col+1+len(obj) > wrapColumn {
				w.str(" " + e.gen.LineEnd + "\n")
				w.pad(l.Column)
				col = l.Column
			} else {
				w.str(" ")
				col++
			}
		}
		w.str(obj)
		col += len(obj)
	}
	w.str(l.Suffix)
	w.str("\n")
}

func (e *Expander) vpath(w *writer, l Line) {
	dirs := e.src.VPaths.Items()
	if len(dirs) == 0 {
		return
	}

	if e.gen.VPath == generator.VPathWatcom {
		joined := strings.Join(dirs, ";")
		for _, ext := range watcomVPathExts {
			w.printf("%s: %s\n", ext, joined)
		}
		return
	}

	w.str("VPATH = ")
	for _, d := range dirs {
		w.str(d + " ")
	}
	w.printf("  #! Found %d VPATHs\n", len(dirs))
}

func (e *Expander) libRule(w *writer, l Line) {
	if e.gen.GateLibRule && !e.writeLibRule {
		return
	}
	e.writeRule(w, e.gen.Rules.Lib)
	w.str("\n")
}

func (e *Expander) resRule(w *writer, l Line) {
	if e.src.Count(classify.CategoryRC) > 0 {
		e.writeRule(w, e.gen.Rules.Res)
		w.str("\n")
		return
	}
	for _, text := range e.gen.RCRule {
		e.expand(w, Parse(text), e.nested)
	}
}

func (e *Expander) resMacro(w *writer, l Line) {
	if e.src.Count(classify.CategoryRC) > 0 {
		return
	}
	for _, text := range e.gen.RCMacro {
		e.expand(w, Parse(text), e.nested)
	}
}

// stem returns the base name of path without its extension.
func stem(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndexByte(path, '.'); i > 0 {
		path = path[:i]
	}
	return path
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
