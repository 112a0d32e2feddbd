package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config represents the main application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server"`
	Data    DataConfig    `yaml:"data" json:"data"`
	Scoring ScoringConfig `yaml:"scoring" json:"scoring"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host         string `yaml:"host" json:"host"`
	Port         int    `yaml:"port" json:"port"`
	ReadTimeout  int    `yaml:"read_timeout" json:"read_timeout"`   // seconds
	WriteTimeout int    `yaml:"write_timeout" json:"write_timeout"` // seconds
	EnableCORS   bool   `yaml:"enable_cors" json:"enable_cors"`
}

// DataConfig holds the paths of the three input artifacts
type DataConfig struct {
	DatasetPath string `yaml:"dataset_path" json:"dataset_path"`
	ModelPath   string `yaml:"model_path" json:"model_path"`
	ScalerPath  string `yaml:"scaler_path" json:"scaler_path"`
}

// ScoringConfig holds scoring-related configuration
type ScoringConfig struct {
	// BaselineChurnRate is the historical overall churn rate used as the
	// comparison anchor for prediction deltas. It is a fixed external
	// constant, not derived from the current filter.
	BaselineChurnRate float64 `yaml:"baseline_churn_rate" json:"baseline_churn_rate"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level    string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format   string `yaml:"format" json:"format"` // json, text
	Output   string `yaml:"output" json:"output"` // stdout, file
	FilePath string `yaml:"file_path" json:"file_path"`
}

// ConfigManager manages application configuration
type ConfigManager struct {
	config     *Config
	configPath string
	mutex      sync.RWMutex
}

// NewConfigManager creates a new configuration manager
func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		config: getDefaultConfig(),
	}
}

// LoadFromFile loads configuration from a YAML file
func (cm *ConfigManager) LoadFromFile(configPath string) error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var newConfig Config
	if err := yaml.Unmarshal(data, &newConfig); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	merged := mergeWithDefaults(&newConfig)
	if err := validateConfig(merged); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cm.config = merged
	cm.configPath = configPath

	return nil
}

// LoadFromEnvironment overrides configuration with environment variables
func (cm *ConfigManager) LoadFromEnvironment() error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	if host := os.Getenv("CHURNBOARD_HOST"); host != "" {
		cm.config.Server.Host = host
	}

	if port := os.Getenv("CHURNBOARD_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cm.config.Server.Port = p
		}
	}

	if logLevel := os.Getenv("CHURNBOARD_LOG_LEVEL"); logLevel != "" {
		cm.config.Logging.Level = logLevel
	}

	if dataset := os.Getenv("CHURNBOARD_DATASET_PATH"); dataset != "" {
		cm.config.Data.DatasetPath = dataset
	}

	return nil
}

// GetConfig returns a copy of the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	configCopy := *cm.config
	return &configCopy
}

// GetConfigPath returns the current configuration file path
func (cm *ConfigManager) GetConfigPath() string {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()
	return cm.configPath
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30,
			WriteTimeout: 30,
			EnableCORS:   true,
		},
		Data: DataConfig{
			DatasetPath: "data/processed/customer_segments.csv",
			ModelPath:   "outputs/models/churn_model.json",
			ScalerPath:  "outputs/models/scaler.json",
		},
		Scoring: ScoringConfig{
			BaselineChurnRate: 0.423,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stdout",
			FilePath: "./logs/churnboard.log",
		},
	}
}

// mergeWithDefaults merges user config with defaults
func mergeWithDefaults(userConfig *Config) *Config {
	merged := *getDefaultConfig()

	if userConfig.Server.Host != "" {
		merged.Server.Host = userConfig.Server.Host
	}
	if userConfig.Server.Port != 0 {
		merged.Server.Port = userConfig.Server.Port
	}
	if userConfig.Server.ReadTimeout != 0 {
		merged.Server.ReadTimeout = userConfig.Server.ReadTimeout
	}
	if userConfig.Server.WriteTimeout != 0 {
		merged.Server.WriteTimeout = userConfig.Server.WriteTimeout
	}
	merged.Server.EnableCORS = userConfig.Server.EnableCORS

	if userConfig.Data.DatasetPath != "" {
		merged.Data.DatasetPath = userConfig.Data.DatasetPath
	}
	if userConfig.Data.ModelPath != "" {
		merged.Data.ModelPath = userConfig.Data.ModelPath
	}
	if userConfig.Data.ScalerPath != "" {
		merged.Data.ScalerPath = userConfig.Data.ScalerPath
	}

	if userConfig.Scoring.BaselineChurnRate != 0 {
		merged.Scoring.BaselineChurnRate = userConfig.Scoring.BaselineChurnRate
	}

	if userConfig.Logging.Level != "" {
		merged.Logging.Level = userConfig.Logging.Level
	}
	if userConfig.Logging.Format != "" {
		merged.Logging.Format = userConfig.Logging.Format
	}
	if userConfig.Logging.Output != "" {
		merged.Logging.Output = userConfig.Logging.Output
	}
	if userConfig.Logging.FilePath != "" {
		merged.Logging.FilePath = userConfig.Logging.FilePath
	}

	return &merged
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, strings.ToLower(config.Logging.Level)) {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, strings.ToLower(config.Logging.Format)) {
		return fmt.Errorf("invalid log format: %s", config.Logging.Format)
	}

	validOutputs := []string{"stdout", "file"}
	if !contains(validOutputs, strings.ToLower(config.Logging.Output)) {
		return fmt.Errorf("invalid log output: %s", config.Logging.Output)
	}

	if config.Scoring.BaselineChurnRate < 0 || config.Scoring.BaselineChurnRate > 1 {
		return fmt.Errorf("baseline churn rate must be in [0,1], got %f", config.Scoring.BaselineChurnRate)
	}

	return nil
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// Global configuration manager instance
var globalConfigManager *ConfigManager
var configOnce sync.Once

// GetConfigManager returns the global configuration manager instance
func GetConfigManager() *ConfigManager {
	configOnce.Do(func() {
		globalConfigManager = NewConfigManager()
	})
	return globalConfigManager
}

// LoadGlobalConfig loads configuration from default locations
func LoadGlobalConfig() error {
	cm := GetConfigManager()

	configPaths := []string{
		"./config.yaml",
		"./config.yml",
		"./churnboard.yaml",
		"./churnboard.yml",
		"/etc/churnboard/config.yaml",
	}

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := cm.LoadFromFile(path); err == nil {
				break
			}
		}
	}

	// Environment variables override file config
	return cm.LoadFromEnvironment()
}
