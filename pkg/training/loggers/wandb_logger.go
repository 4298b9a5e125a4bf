package loggers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	outlier_http "github.com/outlierai/outlier/pkg/http"
	"github.com/outlierai/outlier/pkg/util"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// WandbLogger mirrors an experiment-tracking run locally: run metadata as
// YAML plus a metrics history file under <saveDir>/wandb/run-<stamp>. When
// OUTLIER_WANDB_BASE_URL is set, the run summary is shipped there on Close;
// otherwise the run stays offline.
type WandbLogger struct {
	project string
	name    string
	saveDir string

	mu      sync.Mutex
	runDir  string
	history *zap.Logger
	summary map[string]float64
}

type runMetadata struct {
	Project   string `yaml:"project"`
	Name      string `yaml:"name"`
	StartedAt string `yaml:"started_at"`
}

type runSummary struct {
	Project string             `json:"project"`
	Name    string             `json:"name"`
	Summary map[string]float64 `json:"summary"`
}

func NewWandbLogger(project string, name string, saveDir string) *WandbLogger {
	return &WandbLogger{
		project: project,
		name:    name,
		saveDir: saveDir,
		summary: make(map[string]float64),
	}
}

func (w *WandbLogger) Project() string {
	return w.project
}

func (w *WandbLogger) Name() string {
	return w.name
}

func (w *WandbLogger) SaveDir() string {
	return w.saveDir
}

// RunDir is the per-run directory. Empty until Open.
func (w *WandbLogger) RunDir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.runDir
}

func (w *WandbLogger) Open() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.history != nil {
		return nil
	}

	startedAt := time.Now().UTC()
	runDir := filepath.Join(w.saveDir, "wandb", fmt.Sprintf("run-%s", startedAt.Format("20060102T150405Z")))
	if err := util.MkDirAllInheritPerm(runDir); err != nil {
		return fmt.Errorf("failed to create run dir %s: %w", runDir, err)
	}

	metadata, err := yaml.Marshal(runMetadata{
		Project:   w.project,
		Name:      w.name,
		StartedAt: startedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(runDir, "run.yaml"), metadata, 0766); err != nil {
		return fmt.Errorf("failed to write run metadata: %w", err)
	}

	w.runDir = runDir
	w.history = newMetricSink(filepath.Join(runDir, "history.jsonl"))
	return nil
}

func (w *WandbLogger) LogMetrics(step int, metrics map[string]float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.history == nil {
		return fmt.Errorf("wandb logger '%s' is not open", w.name)
	}

	fields := make([]zap.Field, 0, len(metrics)+1)
	fields = append(fields, zap.Int("step", step))
	for key, value := range metrics {
		fields = append(fields, zap.Float64(key, value))
		w.summary[key] = value
	}
	w.history.Info("history", fields...)

	return nil
}

// Close flushes the history file, writes the final summary and, when a
// tracking server is configured, uploads the summary there.
func (w *WandbLogger) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.history == nil {
		return nil
	}

	err := w.history.Sync()
	w.history = nil

	summary := runSummary{
		Project: w.project,
		Name:    w.name,
		Summary: w.summary,
	}

	summaryYaml, yamlErr := yaml.Marshal(summary.Summary)
	if yamlErr == nil {
		yamlErr = os.WriteFile(filepath.Join(w.runDir, "summary.yaml"), summaryYaml, 0766)
	}
	if err == nil {
		err = yamlErr
	}

	if baseUrl := os.Getenv("OUTLIER_WANDB_BASE_URL"); baseUrl != "" {
		if uploadErr := uploadSummary(baseUrl, summary); uploadErr != nil && err == nil {
			err = uploadErr
		}
	}

	return err
}

func uploadSummary(baseUrl string, summary runSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/v1/runs", baseUrl)
	resp, err := outlier_http.Post(url, "application/json", payload)
	if err != nil {
		return fmt.Errorf("failed to upload run summary to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("failed to upload run summary to %s: %s", url, resp.Status)
	}

	return nil
}
