// Package config loads YAML configuration from disk.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/linara-sh/linara/assets"
	"github.com/linara-sh/linara/internal/domain"
	"github.com/linara-sh/linara/internal/pkg/filesystem"
	"github.com/linara-sh/linara/internal/ports"
)

// FileLoader loads YAML configuration from ~/.linara/config.yaml
// (overridable via LINARA_CONFIG or an explicit path).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. The embedded default configuration
// is written on first run.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
				return domain.Config{}, err
			}
			data = assets.DefaultConfigYAML
		} else {
			return domain.Config{}, err
		}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv("LINARA_CONFIG"); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".linara", "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

// hydrateDefaults fills in zero values so a hand-edited partial config still
// produces a working pipeline.
func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Inference.Endpoint == "" {
		cfg.Inference.Endpoint = "https://openrouter.ai/api/v1/chat/completions"
	}
	if cfg.Inference.ModelID == "" {
		cfg.Inference.ModelID = "meta-llama/llama-3.2-3b-instruct:free"
	}
	if cfg.Inference.AuthEnvVar == "" {
		cfg.Inference.AuthEnvVar = "OPENROUTER_API_KEY"
	}
	if cfg.Inference.MaxTokens == 0 {
		cfg.Inference.MaxTokens = domain.DefaultMaxTokens
	}
	if cfg.Inference.Temperature == 0 {
		cfg.Inference.Temperature = domain.DefaultTemperature
	}
	if cfg.Inference.TimeoutSeconds == 0 {
		cfg.Inference.TimeoutSeconds = int(domain.DefaultInferenceTimeout.Seconds())
	}
	if cfg.Inference.TransportTimeoutSeconds == 0 {
		cfg.Inference.TransportTimeoutSeconds = int(domain.DefaultTransportTimeout.Seconds())
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = int(domain.DefaultCacheTTL.Seconds())
	}
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = domain.DefaultMaxCacheEntries
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
