package loggers_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/outlierai/outlier/pkg/loggers"
	"github.com/stretchr/testify/assert"
)

func TestFormatTimestampedLogFileName(t *testing.T) {
	timeNow := time.Now().UTC().Format("20060102T150405Z")
	expectedName := fmt.Sprintf("%s-%s.log", "basename", timeNow)

	actualName := loggers.FormatTimestampedLogFileName("basename")

	if expectedName != actualName {
		t.Errorf("Expected: %s, got: %s", expectedName, actualName)
	}
}

func TestNewFileLoggerCreatesLogFile(t *testing.T) {
	runtimePath := t.TempDir()

	logger, err := loggers.NewFileLogger("outlier", runtimePath)
	if assert.NoError(t, err) {
		logger.Info("test entry")
		_ = logger.Sync()
	}

	entries, err := os.ReadDir(filepath.Join(runtimePath, "log"))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(entries), "unexpected number of log files")
}
