package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Candidate is one file produced by a walk. Explicit marks files named
// directly in the input list, as opposed to files discovered inside a
// directory; downstream error handling is stricter for explicit files.
type Candidate struct {
	Path     string
	Explicit bool
}

// NotSearchableError reports an input path that cannot be searched at all:
// it does not exist, cannot be inspected, or is neither a regular file nor
// a directory.
type NotSearchableError struct {
	Path string
	Err  error
}

func (e *NotSearchableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("path %s is not searchable: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("path %s is not searchable", e.Path)
}

func (e *NotSearchableError) Unwrap() error { return e.Err }

// errStopWalk signals through filepath.WalkDir that the consumer stopped
// pulling from the sequence.
var errStopWalk = errors.New("walk stopped")

// Walk lazily yields one Candidate per unique file reachable from paths,
// inputs in list order and directory contents in lexical walk order.
// A file input becomes an explicit candidate, a directory input (or a
// symlink to one) is walked recursively and its regular files become
// discovered candidates. A file
// reachable several times over, through repeated inputs, overlapping
// directories or symlinks, is yielded only the first time. An input that is
// neither a file nor a directory ends the walk with a NotSearchableError.
func Walk(paths []string) iter.Seq2[Candidate, error] {
	return func(yield func(Candidate, error) bool) {
		w := &walker{seen: make(map[string]struct{}), yield: yield}
		for _, path := range paths {
			fi, err := os.Stat(path)
			if err != nil {
				yield(Candidate{}, &NotSearchableError{Path: path, Err: err})
				return
			}
			switch {
			case fi.Mode().IsRegular():
				if !w.emit(path, true) {
					return
				}
			case fi.IsDir():
				if !w.dir(path) {
					return
				}
			default:
				yield(Candidate{}, &NotSearchableError{
					Path: path,
					Err:  fmt.Errorf("not a regular file or directory (mode %s)", fi.Mode()),
				})
				return
			}
		}
	}
}

type walker struct {
	seen  map[string]struct{}
	yield func(Candidate, error) bool
}

// emit yields a candidate unless its resolved path was already seen.
// Returns false once the consumer stops the walk.
func (w *walker) emit(path string, explicit bool) bool {
	key := resolve(path)
	if _, ok := w.seen[key]; ok {
		return true
	}
	w.seen[key] = struct{}{}
	return w.yield(Candidate{Path: path, Explicit: explicit}, nil)
}

// dir walks a directory tree, emitting regular files and symlinks that
// resolve to regular files. Entries that vanish or cannot be read mid-walk
// are skipped; strict validation applies to the input paths only.
func (w *walker) dir(root string) bool {
	// WalkDir lstats its root and will not recurse through a symlink, so
	// a linked directory walks its resolved target.
	if fi, err := os.Lstat(root); err == nil && fi.Mode()&fs.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			root = resolved
		}
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		switch t := d.Type(); {
		case t.IsRegular():
		case t&fs.ModeSymlink != 0:
			fi, err := os.Stat(path)
			if err != nil || !fi.Mode().IsRegular() {
				return nil
			}
		default:
			return nil
		}
		if !w.emit(path, false) {
			return errStopWalk
		}
		return nil
	})
	return !errors.Is(err, errStopWalk)
}

// resolve computes the dedup key for a path: absolute with symlinks
// evaluated when possible, so the same file reached through different
// spellings or links counts once.
func resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
