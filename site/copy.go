package site

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// CopyTree copies every file of src below dst, creating directories as
// needed. It returns the number of files and bytes copied.
func CopyTree(ctx context.Context, src fs.FS, dst string) (files int, size uint64, err error) {
	err = fs.WalkDir(src, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(name))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		n, err := copyFile(src, name, target)
		if err != nil {
			return errors.Wrapf(err, "copy %s", name)
		}
		tracer().Debugf("copied %s to %s (%s)", name, target, humanize.Bytes(uint64(n)))
		files++
		size += uint64(n)
		return nil
	})
	return files, size, err
}

func copyFile(src fs.FS, name, target string) (int64, error) {
	in, err := src.Open(name)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, err
	}
	out, err := os.Create(target)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// RemoveTree deletes dir and everything below it. A missing dir is not an
// error.
func RemoveTree(dir string) error {
	if !dirExists(dir) {
		tracer().Debugf("directory %s does not exist, nothing to delete", dir)
		return nil
	}
	return errors.Wrapf(os.RemoveAll(dir), "remove %s", dir)
}
