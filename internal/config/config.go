package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"countrydex/internal/catalog"
	"countrydex/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Source SourceSettings `toml:"source"`
	UI     UISettings     `toml:"ui"`
	Log    LogSettings    `toml:"log"`
}

// SourceSettings points at the countries dataset
type SourceSettings struct {
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	InitialVisible      int `toml:"initial_visible"`
	ShowMoreStep        int `toml:"show_more_step"`
	NotificationSeconds int `toml:"notification_seconds"`
}

// LogSettings controls the log file. An empty file disables logging.
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/countrydex/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "countrydex", "config.toml")
}

// NewConfigService creates a config service for path, or DefaultPath when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the service's file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:      cs.filePath,
			SourceURL: cfg.Source.URL,
		})
	}
	return cfg, nil
}

// Save writes the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Unset keys keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Source: SourceSettings{
			URL:            catalog.DefaultURL,
			TimeoutSeconds: int(catalog.DefaultTimeout.Seconds()),
		},
		UI: UISettings{
			InitialVisible:      16,
			ShowMoreStep:        10,
			NotificationSeconds: 3,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// fillDefaults replaces zero or negative values with defaults
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Source.URL == "" {
		c.Source.URL = def.Source.URL
	}
	if c.Source.TimeoutSeconds <= 0 {
		c.Source.TimeoutSeconds = def.Source.TimeoutSeconds
	}
	if c.UI.InitialVisible <= 0 {
		c.UI.InitialVisible = def.UI.InitialVisible
	}
	if c.UI.ShowMoreStep <= 0 {
		c.UI.ShowMoreStep = def.UI.ShowMoreStep
	}
	if c.UI.NotificationSeconds <= 0 {
		c.UI.NotificationSeconds = def.UI.NotificationSeconds
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}
