package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is how many unchanged lines surround each change.
const contextLines = 2

// DiffStats counts changed lines.
type DiffStats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s DiffStats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// LineDiff renders a line-oriented diff from oldText to newText. Added lines start
// with "+ ", removed lines with "- " and context lines with two spaces.
// Runs of unchanged lines longer than the context are elided as "  ...".
func LineDiff(oldText, newText string, colorize bool) (string, DiffStats) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	if colorize {
		add.EnableColor()
		del.EnableColor()
	} else {
		add.DisableColor()
		del.DisableColor()
	}

	var (
		out   strings.Builder
		stats DiffStats
	)
	for i, d := range diffs {
		text := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			for _, l := range text {
				out.WriteString(add.Sprint("+ "+l) + "\n")
			}
			stats.Added += len(text)
		case diffmatchpatch.DiffDelete:
			for _, l := range text {
				out.WriteString(del.Sprint("- "+l) + "\n")
			}
			stats.Removed += len(text)
		case diffmatchpatch.DiffEqual:
			writeContext(&out, text, i > 0, i < len(diffs)-1)
		}
	}
	return out.String(), stats
}

// writeContext keeps the lines next to the neighbouring changes.
func writeContext(out *strings.Builder, text []string, after, before bool) {
	var keep []string
	elided := false
	for j, l := range text {
		nearPrev := after && j < contextLines
		nearNext := before && j >= len(text)-contextLines
		if nearPrev || nearNext {
			keep = append(keep, "  "+l)
			continue
		}
		if !elided {
			keep = append(keep, "  ...")
			elided = true
		}
	}
	if !after && !before {
		// identical content
		return
	}
	for _, l := range keep {
		out.WriteString(l + "\n")
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// String returns "+N -M".
func (s DiffStats) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}
