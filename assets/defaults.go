package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration, written to
// ~/.linara/config.yaml on first run.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte
