// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). Following the Ports and Adapters
// (Hexagonal) pattern, these interfaces allow the application to remain
// independent of specific implementations like HTTP clients, databases, or
// CLI frameworks.
package ports

import (
	"context"

	"github.com/linara-sh/linara/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.linara/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Classifier decides whether raw text looks like an already-valid command,
// natural language, or gibberish.
type Classifier interface {
	Classify(text string) domain.Classification
}

// PhraseTable is the static phrase-to-command mapping consulted before any
// network activity. Immutable after construction, safe for concurrent use.
type PhraseTable interface {
	Lookup(text string) (string, bool)
}

// TranslationCache is the bounded, time-limited store of previously accepted
// translations, keyed by the exact raw input text. Implementations must be
// safe under concurrent access.
type TranslationCache interface {
	Get(key string) (string, bool)
	Put(key, command string)
}

// CommandValidator checks whether a candidate string's leading token resolves
// to a runnable program or recognized builtin. When the candidate is invalid
// the returned reason describes why.
type CommandValidator interface {
	LooksValid(candidate string) (bool, string)
}

// InferenceProvider calls an external text-completion service and returns a
// single raw candidate command (not yet validated). A single attempt per
// call; implementations never retry.
type InferenceProvider interface {
	Name() string
	Model() string
	Complete(ctx context.Context, naturalInput string) (string, error)
}

// HistoryRepository persists completed translations.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
}

// CommandExecutor runs a validated command in the caller's working directory.
// This sits outside the translation core; the pipeline itself never executes.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
