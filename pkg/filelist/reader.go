package filelist

import (
	"bufio"
	stderrors "errors"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/lnlst/pkg/errors"
	"github.com/arthur-debert/lnlst/pkg/filesystem"
	"github.com/arthur-debert/lnlst/pkg/logging"
)

const (
	byteOrderMark = "\ufeff"
	commentPrefix = "#"

	initialLineBuffer = 64 * 1024
	maxLineLength     = 1024 * 1024
)

// Reader turns a list file into a sequence of existing source paths.
type Reader struct {
	fs     filesystem.FS
	logger zerolog.Logger
}

// NewReader creates a Reader on fsys. A nil fsys means the OS filesystem.
func NewReader(fsys filesystem.FS) *Reader {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Reader{
		fs:     fsys,
		logger: logging.GetLogger("filelist"),
	}
}

// Read checks that filelistPath exists and returns a lazy sequence over its
// source entries. baseDir may be empty.
//
// The sequence can be ranged once. Errors end it: a missing source
// (SOURCE_NOT_FOUND), a read failure (FILE_ACCESS) or a second range
// (INTERNAL).
func (r *Reader) Read(filelistPath, baseDir string) (iter.Seq2[string, error], error) {
	info, err := r.fs.Stat(filelistPath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrFilelistNotFound, "File '%s' does not exist", filelistPath).
				WithDetail("path", filelistPath)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access filelist '%s'", filelistPath).
			WithDetail("path", filelistPath)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrFileAccess, "filelist '%s' is a directory", filelistPath).
			WithDetail("path", filelistPath)
	}

	consumed := false
	seq := func(yield func(string, error) bool) {
		if consumed {
			yield("", errors.Newf(errors.ErrInternal, "filelist '%s' was already read", filelistPath))
			return
		}
		consumed = true
		r.entries(filelistPath, baseDir, yield)
	}
	return seq, nil
}

func (r *Reader) entries(filelistPath, baseDir string, yield func(string, error) bool) {
	f, err := r.fs.Open(filelistPath)
	if err != nil {
		yield("", errors.Wrapf(err, errors.ErrFileAccess, "cannot open filelist '%s'", filelistPath))
		return
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}

		entry, ok := ParseLine(line)
		if !ok {
			r.logger.Trace().Int("line", lineNo).Msg("Skipping blank or comment line")
			continue
		}

		source := SourcePath(entry, baseDir)
		if _, err := r.fs.Stat(source); err != nil {
			r.logger.Debug().Err(err).Str("source", source).Int("line", lineNo).Msg("Listed source is missing")
			yield("", errors.Wrapf(err, errors.ErrSourceNotFound, "File '%s' does not exist", source).
				WithDetail("source", source).
				WithDetail("line", lineNo).
				WithDetail("hint", "--base-src-dir"))
			return
		}

		r.logger.Trace().Str("source", source).Int("line", lineNo).Msg("Yielding source")
		if !yield(source, nil) {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		yield("", errors.Wrapf(err, errors.ErrFileAccess, "cannot read filelist '%s'", filelistPath).
			WithDetail("line", lineNo+1))
	}
}

// ParseLine trims line and reports whether it names a source.
func ParseLine(line string) (string, bool) {
	entry := strings.TrimSpace(line)
	if entry == "" || strings.HasPrefix(entry, commentPrefix) {
		return "", false
	}
	return entry, true
}

// SourcePath derives the path to check for an entry.
func SourcePath(entry, baseDir string) string {
	if baseDir == "" || filepath.IsAbs(entry) {
		return entry
	}
	return filepath.Join(baseDir, entry)
}
