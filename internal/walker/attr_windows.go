//go:build windows

package walker

import (
	"os"
	"syscall"
)

const (
	fileAttributeReadOnly   = 0x0001
	fileAttributeHidden     = 0x0002
	fileAttributeSystem     = 0x0004
	fileAttributeDirectory  = 0x0010
	fileAttributeArchive    = 0x0020
	fileAttributeCompressed = 0x0800
)

func attributes(info os.FileInfo) Attr {
	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		var a Attr
		if info.IsDir() {
			a |= AttrDirectory
		}
		if info.Mode().Perm()&0o200 == 0 {
			a |= AttrReadOnly
		}
		return a
	}

	var a Attr
	native := data.FileAttributes
	if native&fileAttributeReadOnly != 0 {
		a |= AttrReadOnly
	}
	if native&fileAttributeHidden != 0 {
		a |= AttrHidden
	}
	if native&fileAttributeSystem != 0 {
		a |= AttrSystem
	}
	if native&fileAttributeDirectory != 0 {
		a |= AttrDirectory
	}
	if native&fileAttributeArchive != 0 {
		a |= AttrArchive
	}
	if native&fileAttributeCompressed != 0 {
		a |= AttrCompressed
	}
	return a
}
