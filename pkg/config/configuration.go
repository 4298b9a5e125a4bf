package config

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/outlierai/outlier/pkg/util"
	"github.com/spf13/viper"
)

var (
	OutlierEnvVarPrefix string = "OUTLIER_"
)

// RunConfiguration is the typed form of a run config file. A run selects a
// dataset, a model and, optionally, a training logger backend.
type RunConfiguration struct {
	Project ProjectConfig `json:"project,omitempty" mapstructure:"project,omitempty" yaml:"project,omitempty"`
	Dataset DatasetConfig `json:"dataset,omitempty" mapstructure:"dataset,omitempty" yaml:"dataset,omitempty"`
	Model   ModelConfig   `json:"model,omitempty" mapstructure:"model,omitempty" yaml:"model,omitempty"`
}

type ProjectConfig struct {
	// Logger selects the training logger backend. Valid values are
	// "tensorboard" and "wandb". Empty or "false" disables training logging.
	// YAML booleans are accepted and decoded to their literal string.
	Logger string `json:"logger,omitempty" mapstructure:"logger,omitempty" yaml:"logger,omitempty"`
	Path   string `json:"path,omitempty" mapstructure:"path,omitempty" yaml:"path,omitempty"`
}

type DatasetConfig struct {
	Name     string `json:"name,omitempty" mapstructure:"name,omitempty" yaml:"name,omitempty"`
	Category string `json:"category,omitempty" mapstructure:"category,omitempty" yaml:"category,omitempty"`
}

type ModelConfig struct {
	Name string `json:"name,omitempty" mapstructure:"name,omitempty" yaml:"name,omitempty"`
}

// LoadRunConfiguration reads a run config file into a RunConfiguration,
// substituting OUTLIER_-prefixed environment variables in the raw content
// before decoding.
func LoadRunConfiguration(v *viper.Viper, configPath string) (*RunConfiguration, error) {
	configBytes, err := util.ReplaceEnvVariablesFromPath(configPath, OutlierEnvVarPrefix)
	if err != nil {
		return nil, err
	}

	v.SetConfigType("yaml")
	err = v.ReadConfig(bytes.NewBuffer(configBytes))
	if err != nil {
		return nil, err
	}

	var config *RunConfiguration
	err = v.Unmarshal(&config, viper.DecodeHook(boolToStringHookFunc()))
	return config, err
}

// LogDir is where the selected logger backend keeps its output for this run.
func (c *RunConfiguration) LogDir() string {
	return filepath.Join(c.Project.Path, "logs")
}

// RunName labels a single experiment for display and tracking.
func (c *RunConfiguration) RunName() string {
	return c.Dataset.Category + " " + c.Model.Name
}

// boolToStringHookFunc lets `logger: false` in YAML decode into the typed
// string field as "false" instead of failing the unmarshal.
func boolToStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.Bool || t.Kind() != reflect.String {
			return data, nil
		}
		return strconv.FormatBool(data.(bool)), nil
	}
}
