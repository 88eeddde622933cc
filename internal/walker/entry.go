package walker

import (
	"os"
	"path/filepath"
)

// Attr is a set of file attribute flags.
type Attr uint32

const (
	AttrReadOnly Attr = 1 << iota
	AttrHidden
	AttrSystem
	AttrDirectory
	AttrArchive
	AttrCompressed
)

// Has reports whether every flag in mask is set.
func (a Attr) Has(mask Attr) bool {
	return a&mask == mask
}

// Entry describes one filesystem object found during a walk. It is only
// valid for the duration of the visitor call.
type Entry struct {
	Path string
	Name string
	Attr Attr
	Size int64
	Info os.FileInfo
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Attr.Has(AttrDirectory)
}

// AttrString renders the attributes as a fixed six column string:
// Archive, Directory, Compressed, System, Hidden, ReadOnly. Unset flags
// are shown as '-'.
func (e Entry) AttrString() string {
	out := []byte("------")
	if e.Attr.Has(AttrArchive) {
		out[0] = 'A'
	}
	if e.Attr.Has(AttrDirectory) {
		out[1] = 'D'
	}
	if e.Attr.Has(AttrCompressed) {
		out[2] = 'C'
	}
	if e.Attr.Has(AttrSystem) {
		out[3] = 'S'
	}
	if e.Attr.Has(AttrHidden) {
		out[4] = 'H'
	}
	if e.Attr.Has(AttrReadOnly) {
		out[5] = 'R'
	}
	return string(out)
}

func newEntry(path string, info os.FileInfo) Entry {
	e := Entry{
		Path: path,
		Name: filepath.Base(path),
		Attr: attributes(info),
		Info: info,
	}
	if !info.IsDir() {
		e.Size = info.Size()
	}
	return e
}
