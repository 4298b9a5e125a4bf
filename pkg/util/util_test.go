package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/outlierai/outlier/pkg/util"
	"github.com/stretchr/testify/assert"
)

func TestMkDirAllInheritPerm(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")

	err := util.MkDirAllInheritPerm(nested)
	if assert.NoError(t, err) {
		stat, err := os.Stat(nested)
		if assert.NoError(t, err) {
			assert.True(t, stat.IsDir())
		}
	}

	// Creating an existing directory should not error
	assert.NoError(t, util.MkDirAllInheritPerm(nested))
}

func TestReplaceEnvVariablesFromPath(t *testing.T) {
	testEnvVar := "OUTLIER_UTIL_TEST_VALUE"
	if os.Getenv(testEnvVar) != "" {
		t.Errorf("%s must not be set during tests", testEnvVar)
	}
	os.Setenv(testEnvVar, "resolved")
	defer os.Unsetenv(testEnvVar)

	contentPath := filepath.Join(t.TempDir(), "content.yaml")
	err := os.WriteFile(contentPath, []byte("path: OUTLIER_UTIL_TEST_VALUE\n"), 0666)
	if !assert.NoError(t, err) {
		return
	}

	replaced, err := util.ReplaceEnvVariablesFromPath(contentPath, "OUTLIER_")
	if assert.NoError(t, err) {
		assert.Equal(t, "path: resolved\n", string(replaced))
	}
}
