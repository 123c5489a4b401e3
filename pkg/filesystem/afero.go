package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
)

var errNotDir = errors.New("not a directory")

// aferoFS implements FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) Open(name string) (io.ReadCloser, error) {
	return a.fs.Open(name)
}

// Symlink only succeeds on backends implementing afero.Linker. MemMapFs does
// not, so links into it fail the way an unsupported filesystem would.
func (a *aferoFS) Symlink(oldname, newname string) error {
	linker, ok := a.fs.(afero.Linker)
	if !ok {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: afero.ErrNoSymlink}
	}
	return linker.SymlinkIfPossible(oldname, newname)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) Resolve(name string) (string, error) {
	if _, ok := a.fs.(*afero.OsFs); ok {
		return resolveOS(name)
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}
	if _, err := a.fs.Stat(abs); err != nil {
		return "", err
	}
	return abs, nil
}

func (a *aferoFS) Writable(dir string) error {
	info, err := a.fs.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "access", Path: dir, Err: errNotDir}
	}
	switch a.fs.(type) {
	case *afero.OsFs:
		return checkWritable(dir)
	case *afero.ReadOnlyFs:
		return &fs.PathError{Op: "access", Path: dir, Err: syscall.EPERM}
	}
	if info.Mode().Perm()&0o200 == 0 {
		return &fs.PathError{Op: "access", Path: dir, Err: fs.ErrPermission}
	}
	return nil
}
