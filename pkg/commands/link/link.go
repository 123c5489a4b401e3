package link

import (
	"github.com/arthur-debert/lnlst/pkg/errors"
	"github.com/arthur-debert/lnlst/pkg/filelist"
	"github.com/arthur-debert/lnlst/pkg/filesystem"
	"github.com/arthur-debert/lnlst/pkg/logging"
	"github.com/arthur-debert/lnlst/pkg/placer"
)

// Reporter receives each placement result before the next entry is read.
type Reporter interface {
	Report(result placer.Result) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(result placer.Result) error

// Report calls f(result).
func (f ReporterFunc) Report(result placer.Result) error {
	return f(result)
}

// LinkFilesOptions defines the options for the LinkFiles command.
type LinkFilesOptions struct {
	// FS defaults to the OS filesystem.
	FS filesystem.FS
	// FilelistPath is the list file to read.
	FilelistPath string
	// DstDir receives the links. It must already exist.
	DstDir string
	// BaseSrcDir, when set, is joined to every relative entry.
	BaseSrcDir string
	// MaxClashingIndex bounds the numeric suffixes tried; zero means the default.
	MaxClashingIndex int
	// DryRun computes link names without creating anything.
	DryRun bool
	// Reporter may be nil.
	Reporter Reporter
}

// Summary counts the placements of one run.
type Summary struct {
	Total   int  `json:"total"`
	Linked  int  `json:"linked"`
	Renamed int  `json:"renamed"`
	Failed  int  `json:"failed"`
	DryRun  bool `json:"dry_run"`
}

func (s *Summary) add(result placer.Result) {
	s.Total++
	switch {
	case result.Outcome.Failed():
		s.Failed++
	case result.Outcome.Renamed():
		s.Renamed++
	default:
		s.Linked++
	}
}

// LinkFiles links every source listed in the filelist into DstDir, one entry
// at a time. Placement failures are counted and reported, never returned.
// A missing filelist, a missing source or a read failure stops the run and is
// returned together with the partial summary.
func LinkFiles(opts LinkFilesOptions) (*Summary, error) {
	log := logging.GetLogger("commands.link")
	done := logging.LogOperationStart(log, "LinkFiles")
	defer done()

	summary := &Summary{DryRun: opts.DryRun}

	if opts.DstDir == "" {
		return summary, errors.New(errors.ErrInvalidInput, "destination directory is required")
	}
	if opts.MaxClashingIndex < 0 {
		return summary, errors.Newf(errors.ErrInvalidInput, "max clashing index must be positive, got %d", opts.MaxClashingIndex)
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = ReporterFunc(func(placer.Result) error { return nil })
	}

	sources, err := filelist.NewReader(fsys).Read(opts.FilelistPath, opts.BaseSrcDir)
	if err != nil {
		log.Info().Err(err).Str("filelist", opts.FilelistPath).Msg("Cannot read filelist")
		return summary, err
	}

	p := placer.New(placer.Options{
		FS:               fsys,
		MaxClashingIndex: opts.MaxClashingIndex,
		DryRun:           opts.DryRun,
	})

	for source, err := range sources {
		if err != nil {
			log.Info().Err(err).Int("processed", summary.Total).Msg("Filelist aborted the run")
			return summary, err
		}

		result := p.Place(opts.DstDir, source)
		summary.add(result)
		log.Debug().
			Str("source", result.Source).
			Str("link", result.Link).
			Stringer("outcome", result.Outcome).
			Msg("Entry processed")

		if err := reporter.Report(result); err != nil {
			return summary, errors.Wrap(err, errors.ErrFileWrite, "cannot report result")
		}
	}

	log.Info().
		Int("total", summary.Total).
		Int("linked", summary.Linked).
		Int("renamed", summary.Renamed).
		Int("failed", summary.Failed).
		Bool("dry_run", summary.DryRun).
		Msg("Link run finished")
	return summary, nil
}
