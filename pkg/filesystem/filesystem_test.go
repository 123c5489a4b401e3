package filesystem_test

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/lnlst/pkg/filesystem"
)

func TestOSFilesystem(t *testing.T) {
	fsys := filesystem.NewOS()
	tmpDir := t.TempDir()

	src := filepath.Join(tmpDir, "src.txt")
	require.NoError(t, fsys.WriteFile(src, []byte("hello"), 0644))

	t.Run("open_reads_content", func(t *testing.T) {
		f, err := fsys.Open(src)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("lstat_sees_dangling_link", func(t *testing.T) {
		link := filepath.Join(tmpDir, "dangling")
		require.NoError(t, fsys.Symlink(filepath.Join(tmpDir, "missing"), link))

		_, err := fsys.Stat(link)
		assert.True(t, errors.Is(err, fs.ErrNotExist))

		info, err := fsys.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&fs.ModeSymlink)

		target, err := os.Readlink(link)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, "missing"), target)
	})

	t.Run("resolve_follows_links", func(t *testing.T) {
		link := filepath.Join(tmpDir, "alias.txt")
		require.NoError(t, fsys.Symlink(src, link))

		resolved, err := fsys.Resolve(link)
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(src)
		require.NoError(t, err)
		assert.Equal(t, want, resolved)
	})

	t.Run("writable_directory", func(t *testing.T) {
		assert.NoError(t, fsys.Writable(tmpDir))
		assert.Error(t, fsys.Writable(src), "a file is not a valid destination")
		assert.Error(t, fsys.Writable(filepath.Join(tmpDir, "nope")))
	})

	t.Run("read_only_directory", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root bypasses permission bits")
		}
		ro := filepath.Join(tmpDir, "ro")
		require.NoError(t, fsys.MkdirAll(ro, 0555))
		assert.Error(t, fsys.Writable(ro))
	})
}

func TestAferoFilesystem(t *testing.T) {
	mem := afero.NewMemMapFs()
	fsys := filesystem.NewAferoFS(mem)

	require.NoError(t, fsys.MkdirAll("/dst", 0755))
	require.NoError(t, fsys.WriteFile("/src/a.txt", []byte("a"), 0644))

	t.Run("stat_and_lstat", func(t *testing.T) {
		_, err := fsys.Stat("/src/a.txt")
		require.NoError(t, err)
		_, err = fsys.Lstat("/src/a.txt")
		require.NoError(t, err)
		_, err = fsys.Lstat("/src/missing.txt")
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("symlink_unsupported", func(t *testing.T) {
		err := fsys.Symlink("/src/a.txt", "/dst/a.txt")
		require.Error(t, err)
		assert.True(t, errors.Is(err, afero.ErrNoSymlink))

		_, err = fsys.Lstat("/dst/a.txt")
		assert.True(t, errors.Is(err, fs.ErrNotExist), "nothing is left behind")
	})

	t.Run("resolve_requires_existence", func(t *testing.T) {
		resolved, err := fsys.Resolve("/src/../src/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "/src/a.txt", resolved)

		_, err = fsys.Resolve("/src/nope.txt")
		assert.Error(t, err)
	})

	t.Run("writable", func(t *testing.T) {
		assert.NoError(t, fsys.Writable("/dst"))
		assert.Error(t, fsys.Writable("/src/a.txt"))

		readOnly := filesystem.NewAferoFS(afero.NewReadOnlyFs(mem))
		assert.Error(t, readOnly.Writable("/dst"))
		assert.Error(t, readOnly.Symlink("/src/a.txt", "/dst/a.txt"))
	})
}

func TestAferoOsBackendSupportsSymlinks(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewOsFs())
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "a.txt")
	require.NoError(t, fsys.WriteFile(src, []byte("a"), 0644))

	link := filepath.Join(tmpDir, "link.txt")
	require.NoError(t, fsys.Symlink(src, link))

	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, src, target)
	assert.NoError(t, fsys.Writable(tmpDir))
}
