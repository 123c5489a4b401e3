package lnlst

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Create symbolic links for every file in a filelist"
	MsgGenConfigShort  = "Generate the default configuration file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagListFile         = "File containing the list of files to link, one path per line ('#' comments a line out) (required)"
	MsgFlagDstDir           = "Existing, writable directory that receives the links (required)"
	MsgFlagBaseSrcDir       = "Base directory for relative entries of the filelist"
	MsgFlagMaxClashingIndex = "Number of numeric suffixes tried when a link name is taken"
	MsgFlagDryRun           = "Show the links that would be created without creating them"
	MsgFlagFormat           = "Output format: auto, term, text or json"
	MsgFlagConfig           = "Config file (default $XDG_CONFIG_HOME/lnlst/config.toml)"
	MsgFlagVerbose          = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagEffective        = "Print the merged configuration instead of the commented defaults"
	MsgFlagWrite            = "Write the config file instead of printing it"

	// Validation messages
	MsgErrFlagRequired    = "--%s is required"
	MsgErrFileNotExist    = "File '%s' does not exist"
	MsgErrIsDirectory     = "'%s' is a directory, expected a file"
	MsgErrNotReadable     = "File '%s' is not readable"
	MsgErrDstDir          = "Destination '%s' must be an existing, writable directory"
	MsgErrBaseSrcDirIsDir = "Base source directory '%s' is not a directory"
	MsgErrUnexpectedArgs  = "unexpected arguments: %s (paths go in the filelist)"

	// Status messages
	MsgConfigWritten = "Configuration written to %s\n"
	MsgConfigExists  = "Configuration file already exists, not overwritten\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
