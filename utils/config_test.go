package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigManager(t *testing.T) {
	cm := NewConfigManager()

	assert.NotNil(t, cm)
	assert.NotNil(t, cm.config)
	assert.Empty(t, cm.configPath)
	assert.Equal(t, "0.0.0.0", cm.config.Server.Host)
	assert.Equal(t, 8080, cm.config.Server.Port)
	assert.Equal(t, "data/processed/customer_segments.csv", cm.config.Data.DatasetPath)
	assert.Equal(t, "outputs/models/churn_model.json", cm.config.Data.ModelPath)
	assert.Equal(t, "outputs/models/scaler.json", cm.config.Data.ScalerPath)
	assert.InDelta(t, 0.423, cm.config.Scoring.BaselineChurnRate, 1e-12)
	assert.Equal(t, "info", cm.config.Logging.Level)
}

func TestConfigManager_LoadFromFile_YAML(t *testing.T) {
	tempDir := t.TempDir()

	configContent := `
server:
  host: "127.0.0.1"
  port: 9000
  read_timeout: 60
  write_timeout: 60
  enable_cors: false
data:
  dataset_path: "/data/segments.csv"
  model_path: "/models/tree.json"
  scaler_path: "/models/scaler.json"
scoring:
  baseline_churn_rate: 0.5
logging:
  level: "debug"
  format: "json"
  output: "stdout"
`

	configFile := filepath.Join(tempDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	cm := NewConfigManager()
	err = cm.LoadFromFile(configFile)
	assert.NoError(t, err)
	assert.Equal(t, configFile, cm.GetConfigPath())

	config := cm.GetConfig()
	assert.Equal(t, "127.0.0.1", config.Server.Host)
	assert.Equal(t, 9000, config.Server.Port)
	assert.False(t, config.Server.EnableCORS)
	assert.Equal(t, "/data/segments.csv", config.Data.DatasetPath)
	assert.Equal(t, "/models/tree.json", config.Data.ModelPath)
	assert.Equal(t, "/models/scaler.json", config.Data.ScalerPath)
	assert.InDelta(t, 0.5, config.Scoring.BaselineChurnRate, 1e-12)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

func TestConfigManager_LoadFromFile_MergesDefaults(t *testing.T) {
	tempDir := t.TempDir()

	// Partial config: unset fields fall back to defaults.
	configContent := `
server:
  port: 9999
`
	configFile := filepath.Join(tempDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	cm := NewConfigManager()
	require.NoError(t, cm.LoadFromFile(configFile))

	config := cm.GetConfig()
	assert.Equal(t, 9999, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
	assert.Equal(t, "data/processed/customer_segments.csv", config.Data.DatasetPath)
	assert.InDelta(t, 0.423, config.Scoring.BaselineChurnRate, 1e-12)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestConfigManager_LoadFromFile_Missing(t *testing.T) {
	cm := NewConfigManager()

	err := cm.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfigManager_LoadFromFile_Invalid(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad yaml",
			content: "server: [not a map",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "bad port",
			content: "server:\n  port: 99999\n",
			wantErr: "invalid server port",
		},
		{
			name:    "bad log level",
			content: "logging:\n  level: \"loud\"\n",
			wantErr: "invalid log level",
		},
		{
			name:    "bad baseline",
			content: "scoring:\n  baseline_churn_rate: 1.5\n",
			wantErr: "baseline churn rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(tempDir, "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.content), 0644))

			cm := NewConfigManager()
			err := cm.LoadFromFile(configFile)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigManager_LoadFromEnvironment(t *testing.T) {
	t.Setenv("CHURNBOARD_HOST", "10.0.0.1")
	t.Setenv("CHURNBOARD_PORT", "9090")
	t.Setenv("CHURNBOARD_LOG_LEVEL", "debug")
	t.Setenv("CHURNBOARD_DATASET_PATH", "/override/segments.csv")

	cm := NewConfigManager()
	require.NoError(t, cm.LoadFromEnvironment())

	config := cm.GetConfig()
	assert.Equal(t, "10.0.0.1", config.Server.Host)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "/override/segments.csv", config.Data.DatasetPath)
}

func TestConfigManager_GetConfig_ReturnsCopy(t *testing.T) {
	cm := NewConfigManager()

	config := cm.GetConfig()
	config.Server.Port = 12345

	assert.Equal(t, 8080, cm.GetConfig().Server.Port,
		"mutating the returned config must not affect the manager")
}
