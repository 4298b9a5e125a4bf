package training_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/outlierai/outlier/pkg/config"
	"github.com/outlierai/outlier/pkg/training"
	"github.com/outlierai/outlier/pkg/training/loggers"
	"github.com/stretchr/testify/assert"
)

func runConfig(logger string, path string) *config.RunConfiguration {
	return &config.RunConfiguration{
		Project: config.ProjectConfig{Logger: logger, Path: path},
		Dataset: config.DatasetConfig{Name: "mvtec", Category: "bottle"},
		Model:   config.ModelConfig{Name: "patchcore"},
	}
}

func TestLoadLogger(t *testing.T) {
	t.Run("testLoggerDisabled() -- Empty and 'false' return Disabled without touching the filesystem", testLoggerDisabled())
	t.Run("testTensorboardLogger() -- Selects tensorboard with derived name and save dir, no directory created", testTensorboardLogger())
	t.Run("testWandbLogger() -- Selects wandb with derived fields and creates the log dir", testWandbLogger())
	t.Run("testWandbLoggerIdempotent() -- Selecting wandb twice against the same path succeeds", testWandbLoggerIdempotent())
	t.Run("testUnknownLogger() -- Unrecognized values fail with UnknownLoggerError", testUnknownLogger())
	t.Run("testWandbLoggerMissingFields() -- Missing required fields fail before any filesystem work", testWandbLoggerMissingFields())
}

func testLoggerDisabled() func(*testing.T) {
	return func(t *testing.T) {
		for _, value := range []string{"", "false"} {
			path := t.TempDir()

			logger, err := training.LoadLogger(runConfig(value, path))
			if !assert.NoError(t, err) {
				continue
			}

			assert.Equal(t, training.Disabled, logger)

			_, err = os.Stat(filepath.Join(path, "logs"))
			assert.True(t, os.IsNotExist(err), "no log dir should be created when logging is disabled")
		}
	}
}

func testTensorboardLogger() func(*testing.T) {
	return func(t *testing.T) {
		path := t.TempDir()

		logger, err := training.LoadLogger(runConfig("tensorboard", path))
		if !assert.NoError(t, err) {
			return
		}

		tensorboardLogger, ok := logger.(*loggers.TensorboardLogger)
		if !assert.True(t, ok, "expected a tensorboard logger, got %T", logger) {
			return
		}

		assert.Equal(t, "Tensorboard Logs", tensorboardLogger.Name())
		assert.Equal(t, filepath.Join(path, "logs"), tensorboardLogger.SaveDir())

		_, err = os.Stat(filepath.Join(path, "logs"))
		assert.True(t, os.IsNotExist(err), "selection should not create the tensorboard save dir")
	}
}

func testWandbLogger() func(*testing.T) {
	return func(t *testing.T) {
		path := t.TempDir()

		logger, err := training.LoadLogger(runConfig("wandb", path))
		if !assert.NoError(t, err) {
			return
		}

		wandbLogger, ok := logger.(*loggers.WandbLogger)
		if !assert.True(t, ok, "expected a wandb logger, got %T", logger) {
			return
		}

		assert.Equal(t, "mvtec", wandbLogger.Project())
		assert.Equal(t, "bottle patchcore", wandbLogger.Name())
		assert.Equal(t, filepath.Join(path, "logs"), wandbLogger.SaveDir())

		stat, err := os.Stat(filepath.Join(path, "logs"))
		if assert.NoError(t, err, "the log dir should exist after selection") {
			assert.True(t, stat.IsDir())
		}
	}
}

func testWandbLoggerIdempotent() func(*testing.T) {
	return func(t *testing.T) {
		path := t.TempDir()

		_, err := training.LoadLogger(runConfig("wandb", path))
		assert.NoError(t, err)

		_, err = training.LoadLogger(runConfig("wandb", path))
		assert.NoError(t, err, "an existing log dir should not fail selection")
	}
}

func testUnknownLogger() func(*testing.T) {
	return func(t *testing.T) {
		path := t.TempDir()

		_, err := training.LoadLogger(runConfig("csv", path))
		if !assert.Error(t, err) {
			return
		}

		var unknownLogger *training.UnknownLoggerError
		if !assert.True(t, errors.As(err, &unknownLogger)) {
			return
		}

		assert.Equal(t, "csv", unknownLogger.Value)
		assert.Contains(t, err.Error(), "csv")
		assert.Contains(t, err.Error(), "tensorboard")
		assert.Contains(t, err.Error(), "wandb")
		assert.Contains(t, err.Error(), "`false`")
	}
}

func testWandbLoggerMissingFields() func(*testing.T) {
	return func(t *testing.T) {
		cfg := runConfig("wandb", t.TempDir())
		cfg.Dataset.Category = ""
		cfg.Model.Name = ""

		_, err := training.LoadLogger(cfg)
		if !assert.Error(t, err) {
			return
		}

		var unknownLogger *training.UnknownLoggerError
		assert.False(t, errors.As(err, &unknownLogger), "missing fields are not an unknown logger")
		assert.Contains(t, err.Error(), "dataset.category")
		assert.Contains(t, err.Error(), "model.name")
	}
}
