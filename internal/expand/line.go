package expand

import "strings"

// Directive is the letter following '%' in a template line.
type Directive byte

const (
	DirSources   Directive = 's'
	DirRules     Directive = 'c'
	DirObjects   Directive = 'o'
	DirVPath     Directive = 'v'
	DirLibRule   Directive = 'l'
	DirResRule   Directive = 'r'
	DirResMacro  Directive = 'R'
	DirBits      Directive = 't'
	DirMachine   Directive = 'b'
	DirTarget    Directive = 'T'
	DirDate      Directive = 'D'
	DirFormatter Directive = 'a'
	DirProject   Directive = 'P'
)

// Line is a template line split around its first '%'.
type Line struct {
	Text string

	// Directive is zero for lines without a '%'.
	Directive Directive

	// Column is the byte offset of the '%'.
	Column int
	Prefix string
	Suffix string
}

// Parse splits text at its first '%'. A trailing '%' yields a line without
// a directive.
func Parse(text string) Line {
	i := strings.IndexByte(text, '%')
	if i < 0 || i+1 >= len(text) {
		return Line{Text: text, Column: -1}
	}
	return Line{
		Text:      text,
		Directive: Directive(text[i+1]),
		Column:    i,
		Prefix:    text[:i],
		Suffix:    text[i+2:],
	}
}

// HasPercent reports whether the line contains a '%' anywhere.
func (l Line) HasPercent() bool {
	return strings.IndexByte(l.Text, '%') >= 0
}
