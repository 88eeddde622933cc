//go:build !windows

package walker

import (
	"os"
	"strings"
)

func attributes(info os.FileInfo) Attr {
	var a Attr
	if info.IsDir() {
		a |= AttrDirectory
	}
	if info.Mode().Perm()&0o200 == 0 {
		a |= AttrReadOnly
	}
	if strings.HasPrefix(info.Name(), ".") {
		a |= AttrHidden
	}
	return a
}
