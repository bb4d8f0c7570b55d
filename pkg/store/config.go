package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is where journal data lives when nothing is configured.
	DefaultPath = "~/.writersblock.db"
	// ConfigPathEnv overrides the directory searched for .writersblock.yaml.
	ConfigPathEnv = "WRITERSBLOCK_CONFIG_PATH"
)

// Config locates the journal data.
type Config interface {
	BasePath() string
	Backend() string
}

// LoadConfig reads .writersblock.yaml (from $WRITERSBLOCK_CONFIG_PATH or the
// working directory) and WRITERSBLOCK_* environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("backend", BackendDiskv)
	v.SetConfigName(".writersblock") // .yaml is implicit
	v.SetEnvPrefix("WRITERSBLOCK")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path, Kind: v.GetString("backend"), File: v.ConfigFileUsed()}, nil
}

// NewConfig builds a Config without consulting viper.
func NewConfig(path, backend string) Config {
	return &fileConfig{Path: path, Kind: backend}
}

type fileConfig struct {
	Path string `json:"path"`
	Kind string `json:"backend"`
	File string `json:"file,omitempty"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() string {
	return f.Kind
}

// ConfigFile returns the config file that was read, if any.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.File
	}
	return ""
}
