package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/camset/internal/logging"
	"github.com/muurk/camset/internal/preference"
)

const (
	appName    = "camset"
	configFile = "config.yaml"
	logFile    = "camset.log"

	// ConfigDirEnvVar overrides the configuration directory.
	ConfigDirEnvVar = "CAMSET_CONFIG_DIR"
)

var (
	// Global registry instance (loaded lazily)
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
	globalRegistryErr  error

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// CAMSET_CONFIG_DIR takes precedence over the platform conventions:
//   - Linux: $XDG_CONFIG_HOME/camset or $HOME/.config/camset
//   - macOS: $HOME/.config/camset
//   - Windows: %LOCALAPPDATA%\camset
func GetConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnvVar); dir != "" {
		return dir, nil
	}

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// LogFilePath returns the picker's log file: the configured one, or
// camset.log in the configuration directory.
func (r *Registry) LogFilePath() (string, error) {
	if r.Preferences != nil && r.Preferences.LogFile != "" {
		return r.Preferences.LogFile, nil
	}
	if err := ensureConfigDir(); err != nil {
		return "", err
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, logFile), nil
}

// ensureConfigDir ensures the configuration directory exists.
func ensureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// LoadRegistry loads the configuration registry from disk once and returns
// the shared instance on later calls.
func LoadRegistry() (*Registry, error) {
	globalRegistryOnce.Do(func() {
		globalRegistry, globalRegistryErr = Load()
	})
	return globalRegistry, globalRegistryErr
}

// Load reads the configuration file. A missing file yields a default
// registry.
func Load() (*Registry, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return loadFile(configPath)
}

func loadFile(configPath string) (*Registry, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if registry.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", registry.Version)
	}

	if registry.Values == nil {
		registry.Values = make(map[string]string)
	}
	if registry.Preferences == nil {
		registry.Preferences = defaultPreferences()
	}
	if registry.Preferences.Mirror == nil {
		registry.Preferences.Mirror = defaultPreferences().Mirror
	}
	return &registry, nil
}

// Save writes the registry to disk through a temporary file and rename.
func (r *Registry) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := ensureConfigDir(); err != nil {
		return fmt.Errorf("failed to ensure config directory exists: %w", err)
	}
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	header := []byte(`# camset configuration file
# Selected camera settings and picker preferences.
#
# Location: ` + configPath + `

`)
	data = append(header, data...)

	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	logging.Info("Configuration saved", zap.String("path", configPath))
	return nil
}

// ApplyTo loads the saved values into group. Saved values for unknown keys,
// or values a setting no longer offers, are skipped with a warning.
// It returns the number of settings applied.
func (r *Registry) ApplyTo(group *preference.Group) int {
	applied := 0
	for key, value := range r.Values {
		pref, err := group.Find(key)
		if err != nil {
			logging.Warn("Ignoring saved value for unknown setting",
				zap.String("key", key),
				zap.String("value", value),
			)
			continue
		}
		if err := pref.SetValue(value); err != nil {
			logging.Warn("Ignoring stale saved value",
				zap.String("key", key),
				zap.Error(err),
			)
			continue
		}
		applied++
	}
	return applied
}

// CaptureFrom stores the current value of every setting in group.
func (r *Registry) CaptureFrom(group *preference.Group) {
	if r.Values == nil {
		r.Values = make(map[string]string)
	}
	for key, value := range group.Values() {
		r.Values[key] = value
	}
}

// CreateDefaultConfig writes a configuration file holding the default
// camera settings.
func CreateDefaultConfig() error {
	registry := NewRegistry()
	registry.CaptureFrom(preference.DefaultGroup())
	return registry.Save()
}
