package site

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Dir implements fs.FS using the native file system restricted to a
// specific directory tree.
//
// While the Open and ReadFile methods take '/'-separated paths,
// a Dir's string value is a filename on the native file system,
// not a URL, so it is separated by filepath.Separator,
// which isn't necessarily '/'.
//
// An empty Dir is treated as "."
type Dir string

func (d Dir) root() string {
	if d == "" {
		return "."
	}
	return string(d)
}

// Open opens the named file for fs.WalkDir and friends.
func (d Dir) Open(name string) (fs.File, error) {
	return os.DirFS(d.root()).Open(name)
}

// ReadFile reads the file named by filename and returns the contents.
func (d Dir) ReadFile(name string) ([]byte, error) {
	fullname := filepath.Join(d.root(), filepath.FromSlash(path.Clean("/"+name)))
	return os.ReadFile(fullname)
}

// exists reports whether name can be found in fsys.
func exists(fsys fs.FS, name string) bool {
	name = path.Clean("/" + name)[1:]
	if name == "" {
		name = "."
	}
	_, err := fs.Stat(fsys, name)
	return err == nil
}

// dirExists reports whether dir is a directory on the native file system.
func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
