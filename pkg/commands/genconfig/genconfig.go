package genconfig

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/lnlst/pkg/config"
	"github.com/arthur-debert/lnlst/pkg/errors"
	"github.com/arthur-debert/lnlst/pkg/filesystem"
	"github.com/arthur-debert/lnlst/pkg/logging"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Effective renders Config instead of the commented defaults.
	Effective bool
	Config    *config.Config
	// Write stores the commented defaults at Path instead of returning them
	// for printing. An existing file is left alone.
	Write bool
	// Path defaults to config.DefaultConfigPath().
	Path       string
	FileSystem filesystem.FS
}

// GenConfigResult is what the command produced.
type GenConfigResult struct {
	ConfigContent string   `json:"config_content"`
	FilesWritten  []string `json:"files_written"`
}

// GenConfig outputs or writes the configuration
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &GenConfigResult{FilesWritten: []string{}}

	if opts.Effective {
		if opts.Config == nil {
			return nil, errors.New(errors.ErrInvalidInput, "effective configuration requested without a configuration")
		}
		content, err := config.Marshal(opts.Config)
		if err != nil {
			return nil, err
		}
		result.ConfigContent = content
		logger.Debug().Msg("Rendered effective config")
		return result, nil
	}

	result.ConfigContent = config.GenerateConfigContent()
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	targetPath := opts.Path
	if targetPath == "" {
		targetPath = config.DefaultConfigPath()
	}

	if _, err := fsys.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot check %s", targetPath)
	}

	dir := filepath.Dir(targetPath)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}
	if err := fsys.WriteFile(targetPath, []byte(result.ConfigContent), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
