package config

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/spf13/viper"
)

// FileProvider provides configuration values from a YAML, TOML, JSON or
// dotenv file. Keys are matched case-insensitively.
type FileProvider struct {
	path string
	v    *viper.Viper
}

// NewFileProvider reads the file at path. The format is taken from its extension.
func NewFileProvider(path string) (FileProvider, error) {
	if path == "" {
		return FileProvider{}, fmt.Errorf("path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return FileProvider{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return FileProvider{path: path, v: v}, nil
}

// Get returns the value for key, or an error when the file does not set it.
func (fp FileProvider) Get(_ context.Context, key string) (string, error) {
	if !fp.v.IsSet(key) {
		return "", fmt.Errorf("config file %s does not contain key %s", fp.path, key)
	}
	return fp.v.GetString(key), nil
}

// Ensure FileProvider implements config.Provider interface.
var _ config.Provider = (*FileProvider)(nil)
