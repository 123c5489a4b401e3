package filesystem

import (
	"io"
	"io/fs"
)

// FS is the filesystem surface used by the reader, the placer and the CLI.
type FS interface {
	// Stat follows symlinks.
	Stat(name string) (fs.FileInfo, error)
	// Lstat does not follow symlinks, so a dangling link still reports an entry.
	Lstat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)

	Symlink(oldname, newname string) error

	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Resolve returns the absolute form of name with symlinks evaluated
	// where the backend supports them.
	Resolve(name string) (string, error)
	// Writable returns nil when new entries can be created inside dir.
	Writable(dir string) error
}
