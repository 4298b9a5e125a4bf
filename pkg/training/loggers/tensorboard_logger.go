package loggers

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/outlierai/outlier/pkg/util"
	"go.uber.org/zap"
)

// TensorboardLogger writes scalar events as JSON lines under its save
// directory, one events file per run.
type TensorboardLogger struct {
	name    string
	saveDir string

	mu     sync.Mutex
	events *zap.Logger
}

func NewTensorboardLogger(name string, saveDir string) *TensorboardLogger {
	return &TensorboardLogger{
		name:    name,
		saveDir: saveDir,
	}
}

func (t *TensorboardLogger) Name() string {
	return t.name
}

func (t *TensorboardLogger) SaveDir() string {
	return t.saveDir
}

// Open creates the save directory and the scalar event sink. The directory
// is created here, on first use, not at selection time.
func (t *TensorboardLogger) Open() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.events != nil {
		return nil
	}

	if err := util.MkDirAllInheritPerm(t.saveDir); err != nil {
		return fmt.Errorf("failed to create save dir %s: %w", t.saveDir, err)
	}

	t.events = newMetricSink(filepath.Join(t.saveDir, "events.out.json"))
	return nil
}

func (t *TensorboardLogger) LogMetrics(step int, metrics map[string]float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.events == nil {
		return fmt.Errorf("tensorboard logger '%s' is not open", t.name)
	}

	for tag, value := range metrics {
		t.events.Info("scalar",
			zap.String("tag", tag),
			zap.Float64("value", value),
			zap.Int("step", step),
		)
	}

	return nil
}

func (t *TensorboardLogger) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.events == nil {
		return nil
	}

	err := t.events.Sync()
	t.events = nil
	return err
}
