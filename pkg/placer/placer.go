package placer

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/lnlst/pkg/errors"
	"github.com/arthur-debert/lnlst/pkg/filesystem"
	"github.com/arthur-debert/lnlst/pkg/logging"
)

// Outcome is the verdict for one placement.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeRenamed
	OutcomeFailedExhausted
	OutcomeFailedOS
	OutcomeWouldLink
	OutcomeWouldRename
)

var outcomeNames = map[Outcome]string{
	OutcomeOK:              "ok",
	OutcomeRenamed:         "renamed",
	OutcomeFailedExhausted: "failed_exhausted",
	OutcomeFailedOS:        "failed_os",
	OutcomeWouldLink:       "would_link",
	OutcomeWouldRename:     "would_rename",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the outcome by name in JSON output.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Failed reports whether no link was (or would be) created.
func (o Outcome) Failed() bool {
	return o == OutcomeFailedExhausted || o == OutcomeFailedOS
}

// Renamed reports whether the link name carries a numeric suffix.
func (o Outcome) Renamed() bool {
	return o == OutcomeRenamed || o == OutcomeWouldRename
}

// Result describes one placement attempt.
type Result struct {
	Source  string
	Link    string
	Outcome Outcome
	Err     error
}

// Options configures a Placer.
type Options struct {
	FS               filesystem.FS
	MaxClashingIndex int
	DryRun           bool
}

// Placer links sources into a destination directory.
type Placer struct {
	fs       filesystem.FS
	maxIndex int
	dryRun   bool
	logger   zerolog.Logger
}

// New creates a Placer. Zero values select the OS filesystem and
// DefaultMaxClashingIndex.
func New(opts Options) *Placer {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	maxIndex := opts.MaxClashingIndex
	if maxIndex <= 0 {
		maxIndex = DefaultMaxClashingIndex
	}
	return &Placer{
		fs:       fsys,
		maxIndex: maxIndex,
		dryRun:   opts.DryRun,
		logger:   logging.GetLogger("placer"),
	}
}

// Place links source into dstDir under a free name. It never panics on
// filesystem errors; they come back in Result.Err.
func (p *Placer) Place(dstDir, source string) Result {
	result := Result{Source: source}
	logger := p.logger.With().Str("source", source).Logger()

	link, err := ComputeLinkName(p.fs, dstDir, source, p.maxIndex)
	if err != nil {
		result.Err = err
		result.Outcome = OutcomeFailedOS
		if errors.IsErrorCode(err, errors.ErrLinkNameExhausted) {
			result.Outcome = OutcomeFailedExhausted
		}
		logger.Debug().Err(err).Msg("No link name available")
		return result
	}
	result.Link = link
	renamed := filepath.Base(link) != filepath.Base(source)

	if p.dryRun {
		result.Outcome = OutcomeWouldLink
		if renamed {
			result.Outcome = OutcomeWouldRename
		}
		logger.Debug().Str("link", link).Msg("Dry run, link not created")
		return result
	}

	target, err := p.fs.Resolve(source)
	if err != nil {
		result.Outcome = OutcomeFailedOS
		result.Err = errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %s", source).
			WithDetail("source", source)
		logger.Debug().Err(err).Msg("Failed to resolve source")
		return result
	}

	if err := p.fs.Symlink(target, link); err != nil {
		result.Outcome = OutcomeFailedOS
		result.Err = errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s to %s", link, target).
			WithDetail("link", link).
			WithDetail("target", target)
		logger.Debug().Err(err).Str("link", link).Msg("Failed to create symlink")
		return result
	}

	result.Outcome = OutcomeOK
	if renamed {
		result.Outcome = OutcomeRenamed
	}
	logger.Debug().Str("link", link).Str("target", target).Stringer("outcome", result.Outcome).Msg("Link created")
	return result
}
