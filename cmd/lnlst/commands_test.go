package lnlst

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/lnlst/pkg/errors"
	"github.com/arthur-debert/lnlst/pkg/testutil"
)

func findCommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	require.Failf(t, "command not found", "%s", name)
	return nil
}

func TestGenConfig(t *testing.T) {
	t.Run("prints commented defaults", func(t *testing.T) {
		isolate(t)
		stdout, _, err := execute(t, "gen-config")
		require.NoError(t, err)
		assert.Contains(t, stdout, "[link]\n")
		assert.Contains(t, stdout, "# max_clashing_index = 1000\n")
		assert.Contains(t, stdout, `# format = "auto"`)
	})

	t.Run("effective merges the config file", func(t *testing.T) {
		configHome := isolate(t)
		testutil.CreateFile(t, configHome, "lnlst/config.toml", "[link]\nmax_clashing_index = 7\n")
		t.Setenv("LNLST_OUTPUT_FORMAT", "json")

		stdout, _, err := execute(t, "gen-config", "--effective")
		require.NoError(t, err)
		assert.Contains(t, stdout, "max_clashing_index = 7")
		assert.Regexp(t, `format = ['"]json['"]`, stdout)
	})

	t.Run("write creates the user config once", func(t *testing.T) {
		configHome := isolate(t)
		path := filepath.Join(configHome, "lnlst", "config.toml")

		stdout, _, err := execute(t, "gen-config", "-w")
		require.NoError(t, err)
		assert.Contains(t, stdout, path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# dry_run = false")

		_, stderr, err := execute(t, "gen-config", "-w")
		require.NoError(t, err)
		assert.Contains(t, stderr, "already exists")
	})

	t.Run("effective and write are exclusive", func(t *testing.T) {
		isolate(t)
		_, _, err := execute(t, "gen-config", "--effective", "-w")
		assert.Error(t, err)
	})

	t.Run("effective reports config errors", func(t *testing.T) {
		isolate(t)
		t.Setenv("LNLST_LINK_MAX_CLASHING_INDEX", "-3")
		_, _, err := execute(t, "gen-config", "--effective")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestHelpTopics(t *testing.T) {
	isolate(t)

	t.Run("help topics lists embedded topics", func(t *testing.T) {
		stdout, _, err := execute(t, "help", "topics")
		require.NoError(t, err)
		assert.Contains(t, stdout, "  collisions\n")
		assert.Contains(t, stdout, "  configuration\n")
		assert.Contains(t, stdout, "  filelist\n")
		assert.Contains(t, stdout, "  --base-src-dir\n")
		assert.Contains(t, stdout, "  --dry-run\n")
	})

	t.Run("topics command matches help topics", func(t *testing.T) {
		viaHelp, _, err := execute(t, "help", "topics")
		require.NoError(t, err)
		viaTopics, _, err := execute(t, "topics")
		require.NoError(t, err)
		assert.Equal(t, viaHelp, viaTopics)
	})

	t.Run("topic content is rendered", func(t *testing.T) {
		stdout, _, err := execute(t, "help", "collisions")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Name collisions")
	})

	t.Run("option topic by flag name", func(t *testing.T) {
		stdout, _, err := execute(t, "help", "base-src-dir")
		require.NoError(t, err)
		assert.Contains(t, stdout, "relative entry")
	})

	t.Run("help for a command", func(t *testing.T) {
		stdout, _, err := execute(t, "help", "gen-config")
		require.NoError(t, err)
		assert.Contains(t, stdout, "--effective")
		assert.Contains(t, stdout, "Output the default configuration")
	})
}

func TestCommandStructure(t *testing.T) {
	isolate(t)
	root := NewRootCmd()

	for _, name := range []string{"gen-config", "topics", "completion"} {
		cmd := findCommand(t, root, name)
		assert.Equal(t, "misc", cmd.GroupID, name)
	}

	for _, flag := range []string{"list-file", "dst-dir", "base-src-dir", "max-clashing-index", "dry-run", "format"} {
		assert.NotNil(t, root.Flags().Lookup(flag), flag)
	}
	assert.Equal(t, "l", root.Flags().Lookup("list-file").Shorthand)
	assert.Equal(t, "d", root.Flags().Lookup("dst-dir").Shorthand)
	assert.Equal(t, "b", root.Flags().Lookup("base-src-dir").Shorthand)
	assert.Equal(t, "1000", root.Flags().Lookup("max-clashing-index").DefValue)
	assert.NotNil(t, root.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestCompletionCommand(t *testing.T) {
	isolate(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, _, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, stdout, "lnlst")
		})
	}

	_, _, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestFormattingFuncs(t *testing.T) {
	old := stdoutIsTerminal
	t.Cleanup(func() { stdoutIsTerminal = old })

	stdoutIsTerminal = func() bool { return false }
	assert.Equal(t, "USAGE:", formatBoldUpper("Usage:"))
	assert.Equal(t, "Flags", formatBold("Flags"))

	stdoutIsTerminal = func() bool { return true }
	assert.Contains(t, formatBoldUpper("Usage:"), "USAGE:")
	assert.Equal(t, "UPPER", formatUpper("upper"))
}
