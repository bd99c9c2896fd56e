// Package config provides configuration management for the screenlink host.
package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Config represents the host configuration
type Config struct {
	// PointerBind is the listen address of the pointer input endpoint
	PointerBind string `json:"pointer_bind"`

	// VideoBind is the listen address of the video endpoint
	VideoBind string `json:"video_bind"`

	// Secret is the shared secret clients must send as their first text
	// frame. Empty disables authentication.
	Secret string `json:"secret,omitempty"`

	// CaptureIntervalMS is the frame capture interval in milliseconds
	CaptureIntervalMS int `json:"capture_interval_ms"`

	// CaptureWindowTitle scopes capture and input to one window when set;
	// empty means whole screen
	CaptureWindowTitle string `json:"capture_window_title,omitempty"`

	// MetricsBind is the Prometheus /metrics listen address; empty
	// disables the endpoint
	MetricsBind string `json:"metrics_bind,omitempty"`

	// TrayEnabled shows a system tray icon with a Quit entry
	TrayEnabled bool `json:"tray_enabled"`
}

// DefaultConfig returns a new Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		PointerBind:       "0.0.0.0:1701",
		VideoBind:         "0.0.0.0:1702",
		CaptureIntervalMS: 100,
		MetricsBind:       "",
		TrayEnabled:       false,
	}
}

// CaptureInterval returns the capture interval as a duration, falling back to
// the default when the configured value is unusable
func (c *Config) CaptureInterval() time.Duration {
	if c.CaptureIntervalMS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.CaptureIntervalMS) * time.Millisecond
}

// Manager handles loading and saving configuration
type Manager struct {
	mu         sync.Mutex
	configPath string
	config     *Config
}

// NewManager creates a new configuration manager using the per-OS config path
func NewManager() (*Manager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	return &Manager{
		configPath: configPath,
		config:     DefaultConfig(),
	}, nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support", "screenlink")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "screenlink")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config", "screenlink")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load reads the configuration from disk
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.configPath)
	if os.IsNotExist(err) {
		// No config file, use defaults
		return nil
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, m.config)
}

// Save writes the configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}

	log.Printf("Config: Saving configuration to %s (%d bytes)", m.configPath, len(data))
	return os.WriteFile(m.configPath, data, 0644)
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.config
}

// Set updates the configuration
func (m *Manager) Set(config *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = config
}
