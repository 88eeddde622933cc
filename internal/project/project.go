// Package project works out a display name for the project being scanned.
package project

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeNames are tried in order.
var readmeNames = []string{"README.md", "readme.md", "Readme.md", "README.markdown", "README"}

// Name returns the first heading of the project's README, or the base name
// of root when there is no README heading. It returns "" when neither
// gives a usable name.
func Name(fsys afero.Fs, root string) string {
	for _, name := range readmeNames {
		content, err := afero.ReadFile(fsys, filepath.Join(root, name))
		if err != nil {
			continue
		}
		if title := Title(content); title != "" {
			return title
		}
	}
	return dirName(root)
}

// Title returns the text of the first heading in a markdown document.
func Title(source []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok {
			title = strings.TrimSpace(extractText(heading, source))
			if title != "" {
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return title
}

// extractText collects the plain text below n, including text inside
// emphasis and code spans.
func extractText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
			continue
		}
		buf.WriteString(extractText(c, source))
	}
	return buf.String()
}

func dirName(root string) string {
	base := filepath.Base(filepath.Clean(root))
	if base == "." || base == string(filepath.Separator) {
		abs, err := filepath.Abs(root)
		if err != nil {
			return ""
		}
		base = filepath.Base(abs)
	}
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return base
}
