// Package app wires application services with infrastructure adapters.
package app

import (
	"context"
	"os"
	"time"

	"github.com/linara-sh/linara/internal/domain"
	"github.com/linara-sh/linara/internal/infrastructure"
	"github.com/linara-sh/linara/internal/infrastructure/ai"
	"github.com/linara-sh/linara/internal/infrastructure/cache"
	"github.com/linara-sh/linara/internal/infrastructure/classify"
	"github.com/linara-sh/linara/internal/infrastructure/config"
	"github.com/linara-sh/linara/internal/infrastructure/history"
	"github.com/linara-sh/linara/internal/infrastructure/phrases"
	"github.com/linara-sh/linara/internal/infrastructure/validate"
	"github.com/linara-sh/linara/internal/pkg/logger"
	"github.com/linara-sh/linara/internal/ports"
	"github.com/linara-sh/linara/internal/services"
)

// Container holds the constructed dependency graph.
type Container struct {
	Translator   *services.Translator
	Executor     ports.CommandExecutor
	HistoryStore ports.HistoryRepository
	Config       domain.Config
	Logger       ports.Logger
}

// BuildContainer loads configuration and constructs the translation pipeline.
// The provider credential is read from the environment exactly once, here.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)

	phraseTable := phrases.NewStaticTable(cfg.Phrases)
	translationCache := cache.NewMemoryCache(
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		cfg.Cache.MaxEntries,
	)
	validator := validate.NewPathValidator(cfg.Validator.Builtins)
	provider := ai.NewClient(cfg.Inference, os.Getenv(cfg.Inference.AuthEnvVar))

	var historyStore ports.HistoryRepository
	if cfg.History.Enabled {
		historyStore = history.NewSQLiteStore("")
	}

	translator := &services.Translator{
		Classifier: classify.NewRuleClassifier(),
		Phrases:    phraseTable,
		Cache:      translationCache,
		Validator:  validator,
		Provider:   provider,
		History:    historyStore,
		Logger:     log,
	}

	return &Container{
		Translator:   translator,
		Executor:     infrastructure.NewLocalExecutor(),
		HistoryStore: historyStore,
		Config:       cfg,
		Logger:       log,
	}, nil
}
