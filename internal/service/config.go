package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xolan/acme/internal/config"
	"github.com/xolan/acme/internal/osutil"
)

// ConfigService provides operations for managing configuration
type ConfigService struct {
	configPath string
	localPath  string
	config     config.Config
}

// NewConfigService creates a new ConfigService. localPath is the
// per-metrics-directory config file and may be empty.
func NewConfigService(configPath, localPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		localPath:  localPath,
		config:     cfg,
	}
}

// Get returns the effective configuration
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the path to the global config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// GetLocalPath returns the path to the metrics directory config file
func (s *ConfigService) GetLocalPath() string {
	return s.localPath
}

// Exists checks if the global config file exists
func (s *ConfigService) Exists() bool {
	return fileExists(s.configPath)
}

// LocalExists checks if the metrics directory config file exists
func (s *ConfigService) LocalExists() bool {
	return s.localPath != "" && fileExists(s.localPath)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Update validates cfg and writes it to the global config file
func (s *ConfigService) Update(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := s.writeConfig(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.config = cfg

	return nil
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	if err := osutil.Provider.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetTheme stores the report browser theme in the global config file, keeping
// the other keys of that file as they are
func (s *ConfigService) SetTheme(name string) error {
	global, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	global.Theme = name
	if err := s.writeConfig(global); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	s.config.Theme = name
	return nil
}

// Reload reloads the configuration from disk
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadLayered(s.configPath, s.localPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.config = cfg
	return nil
}

// Encoded returns the effective configuration as TOML
func (s *ConfigService) Encoded() (string, error) {
	var buf bytes.Buffer
	if err := s.config.Encode(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// writeConfig writes the config to the config file in TOML format
func (s *ConfigService) writeConfig(cfg config.Config) error {
	var buf bytes.Buffer
	buf.WriteString("# acme configuration file\n\n")
	if err := cfg.Encode(&buf); err != nil {
		return err
	}
	return os.WriteFile(s.configPath, buf.Bytes(), 0644)
}
