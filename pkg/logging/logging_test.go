package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateState points XDG_STATE_HOME at a temp dir and reloads xdg paths.
func isolateState(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateDir := isolateState(t)

			var console bytes.Buffer
			SetupLoggerWithOutput(tt.verbosity, &console)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(stateDir, "lnlst", "lnlst.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestLogFileReceivesRecords(t *testing.T) {
	stateDir := isolateState(t)

	var console bytes.Buffer
	SetupLoggerWithOutput(1, &console)
	logger := GetLogger("test")
	logger.Info().Str("entry", "a.txt").Msg("placed")

	data, err := os.ReadFile(filepath.Join(stateDir, "lnlst", "lnlst.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"entry":"a.txt"`)
	assert.Contains(t, console.String(), "placed")
}

func TestUnwritableStateFallsBackToConsole(t *testing.T) {
	stateDir := isolateState(t)
	// A file where the lnlst directory should be makes MkdirAll fail.
	require.NoError(t, os.WriteFile(filepath.Join(stateDir, "lnlst"), []byte("x"), 0644))

	var console bytes.Buffer
	SetupLoggerWithOutput(0, &console)

	assert.Contains(t, console.String(), "Failed to create log file")
}

func TestGetLogFilePath(t *testing.T) {
	stateDir := isolateState(t)
	assert.Equal(t, filepath.Join(stateDir, "lnlst", "lnlst.log"), getLogFilePath())
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("placer")
	logger.Debug().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"placer"`)
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := WithFields(map[string]interface{}{"dst": "/out"})
	logger.Info().Msg("run")
	assert.Contains(t, buf.String(), `"dst":"/out"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "link")
	done()

	assert.Contains(t, buf.String(), "Operation started")
	assert.Contains(t, buf.String(), "Operation completed")
}
