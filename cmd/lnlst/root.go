package lnlst

import (
	stderrors "errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/lnlst/internal/version"
	"github.com/arthur-debert/lnlst/pkg/commands/link"
	"github.com/arthur-debert/lnlst/pkg/config"
	"github.com/arthur-debert/lnlst/pkg/errors"
	"github.com/arthur-debert/lnlst/pkg/filesystem"
	"github.com/arthur-debert/lnlst/pkg/logging"
	"github.com/arthur-debert/lnlst/pkg/placer"
	"github.com/arthur-debert/lnlst/pkg/ui"
)

// linkFlags holds the root command's own flags.
type linkFlags struct {
	listFile         string
	dstDir           string
	baseSrcDir       string
	maxClashingIndex int
	dryRun           bool
	format           string
}

// overrides returns the explicitly set flags keyed by config setting.
func (f *linkFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()
	if flags.Changed("max-clashing-index") {
		overrides[config.KeyMaxClashingIndex] = f.maxClashingIndex
	}
	if flags.Changed("dry-run") {
		overrides[config.KeyDryRun] = f.dryRun
	}
	if flags.Changed("base-src-dir") {
		overrides[config.KeyBaseSrcDir] = f.baseSrcDir
	}
	if flags.Changed("format") {
		overrides[config.KeyFormat] = f.format
	}
	return overrides
}

// runPaths are the validated, absolute paths of one run.
type runPaths struct {
	listFile   string
	dstDir     string
	baseSrcDir string
}

// reportedError marks an error that was already rendered to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err has already been printed by the command
// that returned it.
func IsReported(err error) bool {
	var reported *reportedError
	return stderrors.As(err, &reported)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
		flags      linkFlags
	)

	rootCmd := &cobra.Command{
		Use:     "lnlst -l <list-file> -d <dst-dir>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnexpectedArgs, args)
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLoggerWithOutput(verbosity, cmd.ErrOrStderr())
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLink(cmd, configFile, &flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml")

	// Link flags
	rootCmd.Flags().StringVarP(&flags.listFile, "list-file", "l", "", MsgFlagListFile)
	rootCmd.Flags().StringVarP(&flags.dstDir, "dst-dir", "d", "", MsgFlagDstDir)
	rootCmd.Flags().StringVarP(&flags.baseSrcDir, "base-src-dir", "b", "", MsgFlagBaseSrcDir)
	rootCmd.Flags().IntVar(&flags.maxClashingIndex, "max-clashing-index", placer.DefaultMaxClashingIndex, MsgFlagMaxClashingIndex)
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().StringVar(&flags.format, "format", ui.FormatAuto.String(), MsgFlagFormat)
	_ = rootCmd.MarkFlagFilename("list-file")
	_ = rootCmd.MarkFlagDirname("dst-dir")
	_ = rootCmd.MarkFlagDirname("base-src-dir")
	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(ui.FormatNames, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenConfigCmd(&configFile))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help replaces cobra's help command
	initTopics(rootCmd)
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// runLink loads the configuration, validates the paths and links every entry
// of the filelist, rendering one status line per entry.
func runLink(cmd *cobra.Command, configFile string, flags *linkFlags) error {
	errOut := cmd.ErrOrStderr()

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Overrides:  flags.overrides(cmd),
	})
	if err != nil {
		return report(errOut, ui.FormatAuto, err)
	}
	format := cfg.OutputFormat()

	fsys := filesystem.NewOS()
	paths, err := validatePaths(fsys, flags.listFile, flags.dstDir, cfg.Filelist.BaseSrcDir)
	if err != nil {
		return report(errOut, format, err)
	}

	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return report(errOut, ui.FormatText, errors.Wrap(err, errors.ErrInternal, "cannot create renderer"))
	}

	logger := logging.WithFields(map[string]interface{}{
		"component": "cmd.lnlst",
		"listFile":  paths.listFile,
		"dstDir":    paths.dstDir,
		"dryRun":    cfg.Link.DryRun,
	})
	logger.Info().
		Str("baseSrcDir", paths.baseSrcDir).
		Int("maxClashingIndex", cfg.Link.MaxClashingIndex).
		Stringer("format", format).
		Msg("Starting link run")

	summary, err := link.LinkFiles(link.LinkFilesOptions{
		FS:               fsys,
		FilelistPath:     paths.listFile,
		DstDir:           paths.dstDir,
		BaseSrcDir:       paths.baseSrcDir,
		MaxClashingIndex: cfg.Link.MaxClashingIndex,
		DryRun:           cfg.Link.DryRun,
		Reporter:         ui.Reporter(renderer),
	})
	if err != nil {
		return report(errOut, format, err)
	}
	logger.Debug().
		Int("linked", summary.Linked).
		Int("failed", summary.Failed).
		Msg("Link run finished")

	return renderer.RenderSummary(summary)
}

// validatePaths checks the command-line paths before anything is read or
// linked, and makes them absolute.
func validatePaths(fsys filesystem.FS, listFile, dstDir, baseSrcDir string) (*runPaths, error) {
	if listFile == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, MsgErrFlagRequired, "list-file").WithDetail("flag", "list-file")
	}
	if dstDir == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, MsgErrFlagRequired, "dst-dir").WithDetail("flag", "dst-dir")
	}

	paths := &runPaths{}
	var err error

	if paths.listFile, err = absPath(listFile); err != nil {
		return nil, err
	}
	info, err := fsys.Stat(paths.listFile)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return nil, errors.Newf(errors.ErrInvalidInput, MsgErrFileNotExist, paths.listFile).WithDetail("flag", "list-file")
	case err != nil:
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrNotReadable, paths.listFile).WithDetail("flag", "list-file")
	case info.IsDir():
		return nil, errors.Newf(errors.ErrInvalidInput, MsgErrIsDirectory, paths.listFile).WithDetail("flag", "list-file")
	}
	f, err := fsys.Open(paths.listFile)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrNotReadable, paths.listFile).WithDetail("flag", "list-file")
	}
	_ = f.Close()

	if paths.dstDir, err = absPath(dstDir); err != nil {
		return nil, err
	}
	if err := fsys.Writable(paths.dstDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrDstDir, paths.dstDir).WithDetail("flag", "dst-dir")
	}

	if baseSrcDir != "" {
		if paths.baseSrcDir, err = absPath(baseSrcDir); err != nil {
			return nil, err
		}
		// The base directory may be created later, but never be a file
		if info, err := fsys.Stat(paths.baseSrcDir); err == nil && !info.IsDir() {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrBaseSrcDirIsDir, paths.baseSrcDir).WithDetail("flag", "base-src-dir")
		}
	}

	return paths, nil
}

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %s", path)
	}
	return abs, nil
}

// report renders err on w and marks it as reported. If rendering fails the
// error is returned unmarked so the caller still prints it.
func report(w io.Writer, format ui.Format, err error) error {
	renderer, rerr := ui.NewRenderer(format, w)
	if rerr != nil {
		return err
	}
	if rerr := renderer.RenderError(err); rerr != nil {
		log.Debug().Err(rerr).Msg("Failed to render error")
		return err
	}
	return &reportedError{err: err}
}
