// Package classify sorts the files found by the walker into per-extension
// category lists and tracks the first-level directories that hold them.
package classify

import (
	"fmt"
	"strings"

	"github.com/harrison/genmake/internal/walker"
)

// DefaultExcludeRC is the resource script of gen-make itself.
const DefaultExcludeRC = "gen-make.rc"

// DefaultVCSDirs are version control metadata directories whose contents
// are never classified.
var DefaultVCSDirs = []string{".git", ".svn", ".hg"}

// longestExt bounds the extensions worth comparing.
const longestExt = len(".cpp")

// Logger receives diagnostics about classification decisions.
type Logger interface {
	LogDebug(message string)
	LogTrace(message string)
}

// Classifier is a walker.VisitFunc that records every recognized source
// file in a Sources value.
type Classifier struct {
	Sources *Sources

	// ForwardSlash converts '\' to '/' in recorded paths. GNU make and
	// Watcom generators need this.
	ForwardSlash bool

	// ExcludeRC is a resource script base name that is never recorded.
	// The comparison ignores case.
	ExcludeRC string

	VCSDirs []string
	Logger  Logger
}

// New returns a classifier with default settings writing into src.
func New(src *Sources) *Classifier {
	return &Classifier{
		Sources:   src,
		ExcludeRC: DefaultExcludeRC,
		VCSDirs:   DefaultVCSDirs,
	}
}

// Visit classifies one walked entry. It never fails, so the walk always
// continues.
func (c *Classifier) Visit(path string, entry walker.Entry) error {
	if entry.IsDir() {
		return nil
	}
	if c.underVCS(path) {
		return nil
	}

	cat, ok := c.Classify(path)
	c.trace(fmt.Sprintf("%-40s %sconsidered (%s)", path, considered(ok), categoryLabel(cat, ok)))
	if !ok {
		return nil
	}

	rel := stripCurrentDir(path)
	if c.ForwardSlash {
		rel = strings.ReplaceAll(rel, `\`, "/")
	}
	c.Sources.Add(cat, rel)

	sep := strings.IndexAny(rel, `/\`)
	if sep <= 0 {
		return nil
	}
	dir := rel[:sep]
	added := c.Sources.AddVPath(dir)
	c.trace(fmt.Sprintf("Did %sadd '%s' to vpaths", notIf(!added), dir))
	return nil
}

// Classify maps path to its category by extension. Paths without an
// extension, very short paths and unknown extensions report false.
func (c *Classifier) Classify(path string) (Category, bool) {
	if len(path) <= 2 {
		return 0, false
	}

	base := baseName(path)
	dot := strings.LastIndexByte(base, '.')
	if dot < 0 {
		return 0, false
	}
	ext := base[dot:]
	if len(ext) > longestExt {
		return 0, false
	}

	switch ext {
	case ".c":
		return CategoryC, true
	case ".cc":
		return CategoryCC, true
	case ".cpp":
		return CategoryCPP, true
	case ".cxx":
		return CategoryCXX, true
	case ".in":
		if strings.HasSuffix(base, ".h.in") {
			return CategoryHIn, true
		}
	case ".rc":
		if c.ExcludeRC == "" || !strings.EqualFold(base, c.ExcludeRC) {
			return CategoryRC, true
		}
	}
	return 0, false
}

// Summary logs the content of every list at debug level and returns the
// number of compilable sources.
func (c *Classifier) Summary() int {
	for _, cat := range Categories {
		list := c.Sources.List(cat)
		for i := 0; i < list.Len(); i++ {
			c.debug(fmt.Sprintf("%s[%2d]: '%s'", cat, i, list.Get(i)))
		}
	}
	return c.Sources.NumSources()
}

func (c *Classifier) underVCS(path string) bool {
	parts := strings.FieldsFunc(path, isSeparator)
	if len(parts) < 2 {
		return false
	}
	for _, part := range parts[:len(parts)-1] {
		for _, vcs := range c.VCSDirs {
			if part == vcs {
				return true
			}
		}
	}
	return false
}

func (c *Classifier) debug(message string) {
	if c.Logger != nil {
		c.Logger.LogDebug(message)
	}
}

func (c *Classifier) trace(message string) {
	if c.Logger != nil {
		c.Logger.LogTrace(message)
	}
}

func stripCurrentDir(path string) string {
	if strings.HasPrefix(path, "./") || strings.HasPrefix(path, `.\`) {
		return path[2:]
	}
	return path
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

func considered(ok bool) string {
	if ok {
		return ""
	}
	return "not "
}

func notIf(b bool) string {
	if b {
		return "not "
	}
	return ""
}

func categoryLabel(cat Category, ok bool) string {
	if !ok {
		return "-"
	}
	return cat.String()
}
