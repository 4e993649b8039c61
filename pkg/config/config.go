package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultAPIURL  = "http://localhost:8080"
	DefaultGameURL = "ws://localhost:8888/ws"
)

// Config is the terminal client configuration.
type Config struct {
	APIURL     string `toml:"api_url"`
	GameURL    string `toml:"game_url"`
	PlayerName string `toml:"player_name"`
	Difficulty string `toml:"difficulty"`
	Theme      string `toml:"theme"`
}

// Default returns the configuration written on first use.
func Default() *Config {
	return &Config{
		APIURL:     DefaultAPIURL,
		GameURL:    DefaultGameURL,
		Difficulty: "easy",
		Theme:      "classic",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "pairs", "config.toml")
}

// LoadConfig loads the config file, writing the default one if it is missing.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := SaveConfig(config); err != nil {
			return nil, err
		}
		return config, nil
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return config, nil
}

// SaveConfig writes config to the config file.
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"api_url":     &c.APIURL,
		"game_url":    &c.GameURL,
		"player_name": &c.PlayerName,
		"difficulty":  &c.Difficulty,
		"theme":       &c.Theme,
	}
}

// Keys lists the settable keys in order.
func Keys() []string {
	keys := make([]string, 0)
	for key := range (&Config{}).fields() {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (string, error) {
	field, ok := c.fields()[key]
	if !ok {
		return "", fmt.Errorf("unknown config key %q (one of %s)", key, strings.Join(Keys(), ", "))
	}
	return *field, nil
}

// Set stores value under key.
func (c *Config) Set(key, value string) error {
	field, ok := c.fields()[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (one of %s)", key, strings.Join(Keys(), ", "))
	}
	*field = value
	return nil
}
