// Package config provides the gotron tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the main configuration for the gotron tool.
type Config struct {
	Node       NodeConfig       `toml:"node"`
	BlockStore BlockStoreConfig `toml:"blockstore"`
	Logging    LoggingConfig    `toml:"logging"`
}

// NodeConfig contains chain identity configuration.
type NodeConfig struct {
	// ChainID is the unique identifier for the blockchain network.
	ChainID string `toml:"chain_id"`

	// GenesisPath is the path to the genesis JSON document.
	GenesisPath string `toml:"genesis_path"`
}

// BlockStoreConfig contains block storage configuration.
type BlockStoreConfig struct {
	// Path is the directory path for block storage.
	Path string `toml:"path"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `toml:"level"`

	// Format is the log output format ("text" or "json").
	Format string `toml:"format"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Node: NodeConfig{
			ChainID:     "gotron-localnet",
			GenesisPath: "genesis.json",
		},
		BlockStore: BlockStoreConfig{
			Path: "data/blockstore",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a TOML file.
// Missing values are filled with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// WriteConfigFile writes the configuration to a TOML file.
func WriteConfigFile(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Validation errors.
var (
	ErrEmptyChainID        = errors.New("chain_id cannot be empty")
	ErrEmptyGenesisPath    = errors.New("genesis_path cannot be empty")
	ErrEmptyBlockStorePath = errors.New("blockstore path cannot be empty")
	ErrInvalidLogLevel     = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat    = errors.New("log format must be 'text' or 'json'")
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Node.ChainID == "" {
		return fmt.Errorf("node config: %w", ErrEmptyChainID)
	}
	if c.Node.GenesisPath == "" {
		return fmt.Errorf("node config: %w", ErrEmptyGenesisPath)
	}
	if c.BlockStore.Path == "" {
		return fmt.Errorf("blockstore config: %w", ErrEmptyBlockStorePath)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging config: %w", ErrInvalidLogLevel)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging config: %w", ErrInvalidLogFormat)
	}
	return nil
}
