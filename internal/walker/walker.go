// Package walker enumerates every object below a root directory and hands
// each one to a visitor callback.
//
// The traversal is depth-first and pre-order: a directory is visited
// before its children, and its whole subtree is finished before the walk
// continues with the directory's remaining siblings. Children are visited
// in the order the filesystem returns them; nothing is sorted.
//
// Pending directories are kept on an explicit stack of open handles, so the
// depth of a tree never grows the goroutine stack.
package walker

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrInvalidArgument is returned when the root path is empty or the visitor
// is nil.
var ErrInvalidArgument = errors.New("walker: invalid argument")

// VisitFunc is called once for every entry found below the root. A non-nil
// return value stops the walk, and Walk returns that exact value.
type VisitFunc func(path string, entry Entry) error

// WalkError reports a failure enumerating a directory.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("walk %s: %v", e.Path, e.Err)
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

const defaultBatchSize = 64

type options struct {
	recursive bool
	batchSize int
}

// Option configures a walk.
type Option func(*options)

// WithRecursion turns descending into subdirectories on or off. The
// default is on.
func WithRecursion(on bool) Option {
	return func(o *options) {
		o.recursive = on
	}
}

// WithBatchSize sets how many directory entries are read per Readdir call.
func WithBatchSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.batchSize = n
		}
	}
}

// frame is one directory being enumerated.
type frame struct {
	dir     string
	file    afero.File
	pending []os.FileInfo
	done    bool
	err     error
}

type walk struct {
	fsys  afero.Fs
	opts  options
	stack []*frame
}

// Walk visits every entry below root on fsys.
//
// Permission errors and end-of-directory terminate a directory's
// enumeration normally. Any other enumeration error aborts the walk and is
// returned as a *WalkError.
func Walk(fsys afero.Fs, root string, visit VisitFunc, opts ...Option) error {
	if root == "" || visit == nil || fsys == nil {
		return ErrInvalidArgument
	}

	w := &walk{
		fsys: fsys,
		opts: options{recursive: true, batchSize: defaultBatchSize},
	}
	for _, opt := range opts {
		opt(&w.opts)
	}
	defer w.closeAll()

	if err := w.push(NormalizeRoot(root)); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]

		info, err := w.next(top)
		if err != nil {
			return err
		}
		if info == nil {
			w.pop()
			continue
		}

		name := info.Name()
		if name == "." || name == ".." {
			continue
		}

		path := joinPath(top.dir, name)
		if err := visit(path, newEntry(path, info)); err != nil {
			return err
		}

		if w.opts.recursive && info.IsDir() {
			if err := w.push(path); err != nil {
				return err
			}
		}
	}

	return nil
}

// NormalizeRoot turns a bare volume such as "C:" into "C:." and strips one
// trailing path separator.
func NormalizeRoot(root string) string {
	if strings.HasSuffix(root, ":") {
		return root + "."
	}
	if len(root) > 1 && isSeparator(root[len(root)-1]) {
		trimmed := root[:len(root)-1]
		if !strings.HasSuffix(trimmed, ":") {
			return trimmed
		}
	}
	return root
}

func (w *walk) push(dir string) error {
	f, err := w.fsys.Open(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil
		}
		return &WalkError{Path: dir, Err: err}
	}
	w.stack = append(w.stack, &frame{dir: dir, file: f})
	return nil
}

func (w *walk) pop() {
	top := w.stack[len(w.stack)-1]
	top.file.Close()
	w.stack = w.stack[:len(w.stack)-1]
}

func (w *walk) closeAll() {
	for len(w.stack) > 0 {
		w.pop()
	}
}

// next returns the frame's next entry, or nil once the directory is
// exhausted.
func (w *walk) next(fr *frame) (os.FileInfo, error) {
	for len(fr.pending) == 0 {
		if fr.done {
			return nil, fr.err
		}

		batch, err := fr.file.Readdir(w.opts.batchSize)
		fr.pending = batch
		switch {
		case err == nil:
			if len(batch) == 0 {
				fr.done = true
			}
		case errors.Is(err, io.EOF), errors.Is(err, fs.ErrPermission):
			fr.done = true
		default:
			fr.done = true
			fr.err = &WalkError{Path: fr.dir, Err: err}
		}
	}

	info := fr.pending[0]
	fr.pending = fr.pending[1:]
	return info, nil
}

func joinPath(dir, name string) string {
	if dir != "" && isSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}
