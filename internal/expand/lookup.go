package expand

import (
	"fmt"
	"os/exec"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultFormatter is the source formatter probed by %a.
const DefaultFormatter = "astyle"

const lookupCacheSize = 64

// ToolFinder reports whether an executable can be found.
type ToolFinder interface {
	Found(tool string) bool
}

// PathFinder searches PATH and remembers the answers.
type PathFinder struct {
	cache    *lru.Cache[string, bool]
	lookPath func(string) (string, error)
}

// NewPathFinder returns a finder caching up to size answers.
func NewPathFinder(size int) (*PathFinder, error) {
	cache, err := lru.New[string, bool](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup cache: %w", err)
	}
	return &PathFinder{cache: cache, lookPath: exec.LookPath}, nil
}

// Found reports whether tool is an executable on PATH.
func (f *PathFinder) Found(tool string) bool {
	if found, ok := f.cache.Get(tool); ok {
		return found
	}
	_, err := f.lookPath(tool)
	found := err == nil
	f.cache.Add(tool, found)
	return found
}

var defaultFinder ToolFinder = mustPathFinder()

func mustPathFinder() *PathFinder {
	f, err := NewPathFinder(lookupCacheSize)
	if err != nil {
		panic(err)
	}
	return f
}
