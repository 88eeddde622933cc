package classify

import (
	"fmt"

	"github.com/harrison/genmake/internal/smartlist"
)

// Category identifies which list a source file belongs to.
type Category int

const (
	CategoryC Category = iota
	CategoryCC
	CategoryCPP
	CategoryCXX
	CategoryRC
	CategoryHIn
	numCategories
)

// Categories lists every category in emission order.
var Categories = []Category{CategoryC, CategoryCC, CategoryCPP, CategoryCXX, CategoryRC, CategoryHIn}

var categoryNames = [...]string{
	CategoryC:   "c_files",
	CategoryCC:  "cc_files",
	CategoryCPP: "cpp_files",
	CategoryCXX: "cxx_files",
	CategoryRC:  "rc_files",
	CategoryHIn: "h_in_files",
}

var categoryExts = [...]string{
	CategoryC:   ".c",
	CategoryCC:  ".cc",
	CategoryCPP: ".cpp",
	CategoryCXX: ".cxx",
	CategoryRC:  ".rc",
	CategoryHIn: ".h.in",
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Ext returns the file suffix that selects the category.
func (c Category) Ext() string {
	if c < 0 || c >= numCategories {
		return ""
	}
	return categoryExts[c]
}

// Sources holds the category lists and the prefix set collected during a
// walk. Lists are written while walking and only read afterwards.
type Sources struct {
	lists  [numCategories]*smartlist.List[string]
	VPaths *smartlist.List[string]

	// Entry point detection is not implemented; these stay false.
	MainFound    bool
	WinMainFound bool
	DllMainFound bool
}

// NewSources returns an empty set of lists.
func NewSources() *Sources {
	s := &Sources{VPaths: smartlist.New[string]()}
	for i := range s.lists {
		s.lists[i] = smartlist.New[string]()
	}
	return s
}

// List returns the list for category c.
func (s *Sources) List(c Category) *smartlist.List[string] {
	return s.lists[c]
}

// Files returns a copy of the paths recorded for category c.
func (s *Sources) Files(c Category) []string {
	return s.lists[c].Items()
}

// Count returns how many files were recorded for category c.
func (s *Sources) Count(c Category) int {
	return s.lists[c].Len()
}

// NumSources counts the compilable files: C, CC, CPP and CXX.
func (s *Sources) NumSources() int {
	return s.Count(CategoryC) + s.Count(CategoryCC) + s.Count(CategoryCPP) + s.Count(CategoryCXX)
}

// Add records path under category c.
func (s *Sources) Add(c Category, path string) {
	s.lists[c].Add(path)
}

// AddVPath appends dir to the prefix set unless an identical entry is
// already present. It reports whether dir was added.
func (s *Sources) AddVPath(dir string) bool {
	if s.VPaths.Contains(func(v string) bool { return v == dir }) {
		return false
	}
	s.VPaths.Add(dir)
	return true
}

// Free drops every list.
func (s *Sources) Free() {
	for _, l := range s.lists {
		l.Free()
	}
	s.VPaths.Free()
}
