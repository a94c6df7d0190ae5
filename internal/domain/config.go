package domain

// Config mirrors ~/.linara/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Inference           InferenceSettings `yaml:"inference"`
	Cache               CacheSettings     `yaml:"cache"`
	Validator           ValidatorSettings `yaml:"validator"`
	History             HistorySettings   `yaml:"history"`
	Phrases             map[string]string `yaml:"phrases"`
}

// InferenceSettings describes the external completion endpoint. The
// credential itself is resolved once at startup from AuthEnvVar and handed to
// the client constructor; nothing reads ambient process state afterwards.
type InferenceSettings struct {
	Endpoint                string  `yaml:"endpoint"`
	ModelID                 string  `yaml:"model_id"`
	AuthEnvVar              string  `yaml:"auth_env_var"`
	MaxTokens               int     `yaml:"max_tokens"`
	Temperature             float64 `yaml:"temperature"`
	TimeoutSeconds          int     `yaml:"timeout"`
	TransportTimeoutSeconds int     `yaml:"transport_timeout"`
}

// CacheSettings bounds the in-memory translation cache.
type CacheSettings struct {
	TTLSeconds int `yaml:"ttl"`
	MaxEntries int `yaml:"max_entries"`
}

// ValidatorSettings configures command validation.
type ValidatorSettings struct {
	// Builtins are accepted without a PATH lookup (shell builtins and
	// launchers that may live outside PATH).
	Builtins []string `yaml:"builtins"`
}

// HistorySettings controls the translation history store.
type HistorySettings struct {
	Enabled bool `yaml:"enabled"`
}
