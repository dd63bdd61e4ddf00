// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName = "yapfastr"
	// DefaultAPIURL is the Twitter API root used when twitter.api_url is unset.
	DefaultAPIURL = "https://api.twitter.com"
)

// Config is the complete application configuration.
type Config struct {
	Language   string           `mapstructure:"language" yaml:"language"`
	Verified   bool             `mapstructure:"verified" yaml:"verified"`
	Clipboard  bool             `mapstructure:"clipboard" yaml:"clipboard"`
	Twitter    TwitterConfig    `mapstructure:"twitter" yaml:"twitter"`
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database"`
	History    HistoryConfig    `mapstructure:"history" yaml:"history"`
	Dictionary DictionaryConfig `mapstructure:"dictionary" yaml:"dictionary"`
}

// TwitterConfig holds the OAuth 1.0a user-context credentials.
type TwitterConfig struct {
	ConsumerKey       string `mapstructure:"consumer_key" yaml:"consumer_key"`
	ConsumerSecret    string `mapstructure:"consumer_secret" yaml:"consumer_secret"`
	AccessToken       string `mapstructure:"access_token" yaml:"access_token"`
	AccessTokenSecret string `mapstructure:"access_token_secret" yaml:"access_token_secret"`
	APIURL            string `mapstructure:"api_url" yaml:"api_url"`
}

// Missing returns the config keys of credentials that are empty.
func (t TwitterConfig) Missing() []string {
	var out []string
	if t.ConsumerKey == "" {
		out = append(out, "twitter.consumer_key")
	}
	if t.ConsumerSecret == "" {
		out = append(out, "twitter.consumer_secret")
	}
	if t.AccessToken == "" {
		out = append(out, "twitter.access_token")
	}
	if t.AccessTokenSecret == "" {
		out = append(out, "twitter.access_token_secret")
	}
	return out
}

type DatabaseConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

type DictionaryConfig struct {
	Paths []string `mapstructure:"paths" yaml:"paths"`
}

// Defaults returns the default value of every known key. Every key needs a
// default so environment variables can override it.
func Defaults() map[string]any {
	return map[string]any{
		"language":                    "en",
		"verified":                    false,
		"clipboard":                   false,
		"twitter.consumer_key":        "",
		"twitter.consumer_secret":     "",
		"twitter.access_token":        "",
		"twitter.access_token_secret": "",
		"twitter.api_url":             DefaultAPIURL,
		"database.type":               "sqlite",
		"database.dsn":                DefaultDatabaseDSN(),
		"history.enabled":             true,
		"dictionary.paths":            []string{"/usr/share/dict/words"},
	}
}

// DefaultDatabaseDSN places the history database next to the user config.
func DefaultDatabaseDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "./" + appName + ".db"
	}
	return filepath.Join(dir, appName, "history.db")
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Yapfastr")
		default:
			configDir = "/etc/" + appName
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadDotEnv loads .env files from the working directory and the user config
// directory. Variables already present in the environment win.
func LoadDotEnv() error {
	candidates := []string{".env"}
	if p, err := GetConfigPath(false); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(p), ".env"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
		if err := godotenv.Load(c); err != nil {
			return fmt.Errorf("could not load %s: %w", c, err)
		}
	}
	return nil
}

// LoadConfig merges defaults, the config file, YAPFASTR_* environment
// variables and the flags of cmd, in increasing precedence.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	// An explicit --config path takes precedence over the search paths.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// DefaultConfig decodes Defaults alone. It never consults files, the
// environment or flags, so it is safe to persist.
func DefaultConfig() (Config, error) {
	var c Config
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// WriteConfigFile persists c as YAML to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo persists c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the file may hold API secrets.
	return os.WriteFile(path, data, 0o600)
}
