package training

import (
	"fmt"
	"strings"

	"github.com/outlierai/outlier/pkg/config"
	"github.com/outlierai/outlier/pkg/training/loggers"
	"github.com/outlierai/outlier/pkg/util"
)

// AvailableLoggers are the backend identifiers LoadLogger recognizes for
// `project.logger`.
var AvailableLoggers = []string{"tensorboard", "wandb"}

// TrainingLogger is the handle a training loop logs through. Backends own
// their output lifecycle; Close flushes and releases it.
type TrainingLogger interface {
	Name() string
	Open() error
	LogMetrics(step int, metrics map[string]float64) error
	Close() error
}

// Disabled is the logger returned when the run config turns training
// logging off. All of its methods are no-ops.
var Disabled TrainingLogger = disabledLogger{}

type disabledLogger struct{}

func (disabledLogger) Name() string { return "disabled" }

func (disabledLogger) Open() error { return nil }

func (disabledLogger) LogMetrics(step int, metrics map[string]float64) error { return nil }

func (disabledLogger) Close() error { return nil }

// UnknownLoggerError is returned when `project.logger` is set to a value
// that matches none of the available backends.
type UnknownLoggerError struct {
	Value string
}

func (e *UnknownLoggerError) Error() string {
	return fmt.Sprintf(
		"unknown logger type: %s. Available loggers are: [%s].\n"+
			"To enable a logger, set `project.logger` to one of the available loggers.\n"+
			"To disable the logger, set `project.logger` to `false` or remove it.",
		e.Value, strings.Join(AvailableLoggers, ", "))
}

// LoadLogger selects and constructs the training logger backend for a run.
// Empty or "false" disables logging. The wandb branch creates the run's log
// directory up front; the tensorboard backend creates its own on Open.
func LoadLogger(cfg *config.RunConfiguration) (TrainingLogger, error) {
	switch cfg.Project.Logger {
	case "", "false":
		return Disabled, nil

	case "tensorboard":
		if cfg.Project.Path == "" {
			return nil, fmt.Errorf("project.path is required when `project.logger` is \"tensorboard\"")
		}
		return loggers.NewTensorboardLogger("Tensorboard Logs", cfg.LogDir()), nil

	case "wandb":
		if err := validateWandbConfig(cfg); err != nil {
			return nil, err
		}
		logDir := cfg.LogDir()
		if err := util.MkDirAllInheritPerm(logDir); err != nil {
			return nil, fmt.Errorf("failed to create log dir %s: %w", logDir, err)
		}
		return loggers.NewWandbLogger(cfg.Dataset.Name, cfg.RunName(), logDir), nil

	default:
		return nil, &UnknownLoggerError{Value: cfg.Project.Logger}
	}
}

func validateWandbConfig(cfg *config.RunConfiguration) error {
	var missing []string
	if cfg.Project.Path == "" {
		missing = append(missing, "project.path")
	}
	if cfg.Dataset.Name == "" {
		missing = append(missing, "dataset.name")
	}
	if cfg.Dataset.Category == "" {
		missing = append(missing, "dataset.category")
	}
	if cfg.Model.Name == "" {
		missing = append(missing, "model.name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config fields for the wandb logger: %s", strings.Join(missing, ", "))
	}
	return nil
}
