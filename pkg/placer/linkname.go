package placer

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/lnlst/pkg/errors"
	"github.com/arthur-debert/lnlst/pkg/filesystem"
)

// DefaultMaxClashingIndex bounds the suffixes tried for a taken name.
const DefaultMaxClashingIndex = 1000

// ComputeLinkName returns the first free link path for source in dstDir:
// dstDir/basename, or dstDir/stem_NNN.ext with NNN in [0, maxIndex).
func ComputeLinkName(fsys filesystem.FS, dstDir, source string, maxIndex int) (string, error) {
	candidate := filepath.Join(dstDir, filepath.Base(source))

	taken, err := exists(fsys, candidate)
	if err != nil || !taken {
		return candidate, err
	}

	parent := filepath.Dir(candidate)
	stem, ext := SplitExt(filepath.Base(candidate))

	probe := candidate
	for i := 0; i < maxIndex; i++ {
		probe = filepath.Join(parent, SuffixedName(stem, ext, i))
		taken, err := exists(fsys, probe)
		if err != nil {
			return "", err
		}
		if !taken {
			return probe, nil
		}
	}

	return "", errors.Newf(errors.ErrLinkNameExhausted,
		"Exhausted all possible names for %s: %s exists", candidate, probe).
		WithDetail("target", candidate).
		WithDetail("last_probe", probe).
		WithDetail("max_clashing_index", maxIndex)
}

// SuffixedName formats the i-th alternative name.
func SuffixedName(stem, ext string, i int) string {
	return fmt.Sprintf("%s_%03d%s", stem, i, ext)
}

// SplitExt splits a basename at its last dot. A dot in first or last
// position does not start an extension, so ".bashrc" and "name." have none.
func SplitExt(name string) (stem, ext string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}

func exists(fsys filesystem.FS, path string) (bool, error) {
	_, err := fsys.Lstat(path)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot check %s", path).
		WithDetail("path", path)
}
