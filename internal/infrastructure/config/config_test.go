package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inEmptyDir runs the test from a directory without a config.yaml.
func inEmptyDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	inEmptyDir(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "measure-go", cfg.App.Name)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 100, cfg.Packing.DefaultBoxQuantity)
	assert.Equal(t, "truncate", cfg.Packing.Rounding)
	assert.True(t, cfg.Packing.AllowRotation)
	assert.True(t, cfg.Output.Pretty)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("MEASURE_PACKING_ROUNDING", "ceil")
	t.Setenv("MEASURE_PACKING_DEFAULT_BOX_QUANTITY", "7")
	t.Setenv("MEASURE_PACKING_ALLOW_ROTATION", "false")
	t.Setenv("MEASURE_APP_ENVIRONMENT", "development")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "ceil", cfg.Packing.Rounding)
	assert.Equal(t, 7, cfg.Packing.DefaultBoxQuantity)
	assert.False(t, cfg.Packing.AllowRotation)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromFile(t *testing.T) {
	inEmptyDir(t)

	path := filepath.Join(t.TempDir(), "measure.yaml")
	content := []byte("packing:\n  rounding: nearest\n  default_box_quantity: 12\noutput:\n  pretty: false\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nearest", cfg.Packing.Rounding)
	assert.Equal(t, 12, cfg.Packing.DefaultBoxQuantity)
	assert.False(t, cfg.Output.Pretty)

	t.Setenv("MEASURE_PACKING_ROUNDING", "ceil")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ceil", cfg.Packing.Rounding, "environment overrides the file")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "validation/missing explicit file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
		},
		{
			name: "validation/non-positive quantity",
			setup: func(t *testing.T) string {
				t.Setenv("MEASURE_PACKING_DEFAULT_BOX_QUANTITY", "0")
				return ""
			},
		},
		{
			name: "validation/unknown log format",
			setup: func(t *testing.T) string {
				t.Setenv("MEASURE_LOG_FORMAT", "xml")
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inEmptyDir(t)
			_, err := Load(tt.setup(t))
			require.Error(t, err)
			assert.Panics(t, func() { MustLoad(tt.setup(t)) })
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Log:     LogConfig{Format: "console"},
		Packing: PackingConfig{DefaultBoxQuantity: 1},
	}
	require.NoError(t, cfg.Validate())

	cfg.Packing.DefaultBoxQuantity = -1
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
