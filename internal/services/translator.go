// Package services orchestrates the translation pipeline end-to-end.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/linara-sh/linara/internal/domain"
	"github.com/linara-sh/linara/internal/ports"
)

// asyncResultBuffer bounds the background notification channel; results past
// the bound are dropped rather than blocking the producing goroutine.
const asyncResultBuffer = 8

// Translator turns raw input into a single validated command. The pipeline
// is terminal on first match: passthrough, rejection, phrase table, cache,
// then inference guarded by validation. Two concurrent translations of the
// same input may each reach the inference service; there is no in-flight
// request coalescing.
type Translator struct {
	Classifier ports.Classifier
	Phrases    ports.PhraseTable
	Cache      ports.TranslationCache
	Validator  ports.CommandValidator
	Provider   ports.InferenceProvider
	History    ports.HistoryRepository
	Logger     ports.Logger

	resultsOnce sync.Once
	results     chan string
}

// Translate processes a single input and blocks until the pipeline completes
// or the inference timeout elapses.
func (t *Translator) Translate(req domain.TranslationRequest) (domain.TranslationResult, error) {
	if t.Classifier == nil || t.Phrases == nil || t.Cache == nil ||
		t.Validator == nil || t.Provider == nil || t.Logger == nil {
		return domain.TranslationResult{}, errors.New("services.Translator dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	switch t.Classifier.Classify(req.Input) {
	case domain.ClassAlreadyCommand:
		return t.finish(req, req.Input, domain.SourcePassthrough, "", start), nil
	case domain.ClassGibberish:
		return domain.TranslationResult{}, fmt.Errorf("%w: input reads as gibberish", domain.ErrInputRejected)
	}

	if command, ok := t.Phrases.Lookup(req.Input); ok {
		return t.finish(req, command, domain.SourceLocal, "", start), nil
	}

	if command, ok := t.Cache.Get(req.Input); ok {
		return t.finish(req, command, domain.SourceCache, "", start), nil
	}

	t.Logger.Debug("calling inference provider", map[string]interface{}{
		"provider":   t.Provider.Name(),
		"model":      t.Provider.Model(),
		"request_id": req.ID,
	})

	candidate, err := t.Provider.Complete(ctx, req.Input)
	if err != nil {
		return domain.TranslationResult{}, fmt.Errorf("inference: %w", err)
	}

	if candidate == domain.SentinelNoCommand {
		return domain.TranslationResult{}, fmt.Errorf("%w: model could not convert the input", domain.ErrTranslationAmbiguous)
	}
	if candidate == strings.TrimSpace(req.Input) {
		return domain.TranslationResult{}, fmt.Errorf("%w: model echoed the input", domain.ErrTranslationAmbiguous)
	}
	if candidate == "" || len(candidate) > domain.MaxCommandLength || !hasAlphanumeric(candidate) {
		return domain.TranslationResult{}, fmt.Errorf("%w: candidate is not command-shaped", domain.ErrTranslationAmbiguous)
	}

	if ok, reason := t.Validator.LooksValid(candidate); !ok {
		return domain.TranslationResult{}, fmt.Errorf("%w: %s", domain.ErrValidationFailed, reason)
	}

	// Keyed by the exact raw input as typed.
	t.Cache.Put(req.Input, candidate)

	return t.finish(req, candidate, domain.SourceInference, t.Provider.Model(), start), nil
}

// TranslateAsync runs the same pipeline on an independent goroutine. A
// successful command is delivered on the Results channel; every failure is
// dropped silently and nothing surfaces to the caller.
func (t *Translator) TranslateAsync(req domain.TranslationRequest) {
	ch := t.resultsChannel()
	go func() {
		result, err := t.Translate(req)
		if err != nil {
			if t.Logger != nil {
				t.Logger.Debug("background translation dropped", map[string]interface{}{
					"request_id": req.ID,
					"error":      err.Error(),
				})
			}
			return
		}
		select {
		case ch <- result.Command:
		default:
			t.Logger.Warn("background result dropped, notification channel full", map[string]interface{}{
				"request_id": req.ID,
			})
		}
	}()
}

// Results exposes the one-way notification channel fed by TranslateAsync.
func (t *Translator) Results() <-chan string {
	return t.resultsChannel()
}

func (t *Translator) resultsChannel() chan string {
	t.resultsOnce.Do(func() {
		t.results = make(chan string, asyncResultBuffer)
	})
	return t.results
}

func (t *Translator) finish(req domain.TranslationRequest, command string, source domain.TranslationSource, model string, start time.Time) domain.TranslationResult {
	result := domain.TranslationResult{
		Command:    command,
		Source:     source,
		Model:      model,
		DurationMS: time.Since(start).Milliseconds(),
	}

	if t.History != nil {
		record := domain.HistoryRecord{
			Timestamp:  time.Now(),
			RequestID:  req.ID,
			Prompt:     req.Input,
			Command:    command,
			Source:     source,
			Model:      model,
			DurationMS: result.DurationMS,
		}
		if err := t.History.Save(record); err != nil {
			t.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return result
}

func hasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Compile-time interface compliance check
var _ domain.TranslationService = (*Translator)(nil)
