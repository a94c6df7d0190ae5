package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/linara-sh/linara/internal/domain"
	"github.com/linara-sh/linara/internal/infrastructure/classify"
	"github.com/linara-sh/linara/internal/infrastructure/phrases"
	"github.com/linara-sh/linara/internal/pkg/logger"
)

func newTranslator(provider *stubProvider) (*Translator, *stubCache) {
	cache := &stubCache{entries: map[string]string{}}
	return &Translator{
		Classifier: classify.NewRuleClassifier(),
		Phrases:    phrases.NewStaticTable(nil),
		Cache:      cache,
		Validator:  stubValidator{valid: true},
		Provider:   provider,
		Logger:     logger.New(false),
	}, cache
}

func TestTranslateAlreadyCommandPassesThrough(t *testing.T) {
	provider := &stubProvider{}
	svc, _ := newTranslator(provider)

	resp, err := svc.Translate(domain.TranslationRequest{Input: "git status"})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if resp.Command != "git status" || resp.Source != domain.SourcePassthrough {
		t.Fatalf("Translate() = %+v, want unchanged passthrough", resp)
	}
	if provider.calls != 0 {
		t.Fatalf("provider called %d times, want 0", provider.calls)
	}
}

func TestTranslateGibberishIsRejectedWithoutInference(t *testing.T) {
	provider := &stubProvider{}
	svc, _ := newTranslator(provider)

	for _, input := range []string{"aaaaaa", "hello world", "how are", "sdasdasdasdas"} {
		_, err := svc.Translate(domain.TranslationRequest{Input: input})
		if !errors.Is(err, domain.ErrInputRejected) {
			t.Errorf("Translate(%q) error = %v, want ErrInputRejected", input, err)
		}
	}
	if provider.calls != 0 {
		t.Fatalf("provider called %d times, want 0", provider.calls)
	}
}

func TestTranslatePhraseTableHitSkipsInferenceAndCache(t *testing.T) {
	provider := &stubProvider{}
	svc, cache := newTranslator(provider)

	resp, err := svc.Translate(domain.TranslationRequest{Input: "list files"})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if resp.Command != "ls" || resp.Source != domain.SourceLocal {
		t.Fatalf("Translate() = %+v, want ls from local table", resp)
	}
	if provider.calls != 0 {
		t.Fatal("provider called for a phrase-table hit")
	}
	if cache.puts != 0 {
		t.Fatal("cache written for a phrase-table hit")
	}
}

func TestTranslateCacheHitSkipsInference(t *testing.T) {
	provider := &stubProvider{}
	svc, cache := newTranslator(provider)
	cache.entries["fetch the weather"] = "curl wttr.in"

	resp, err := svc.Translate(domain.TranslationRequest{Input: "fetch the weather"})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if resp.Command != "curl wttr.in" || resp.Source != domain.SourceCache {
		t.Fatalf("Translate() = %+v, want cache hit", resp)
	}
	if provider.calls != 0 {
		t.Fatal("provider called for a cache hit")
	}
}

func TestTranslateInferenceSuccessIsCached(t *testing.T) {
	provider := &stubProvider{candidate: `rm -r "my folder"`, model: "llama"}
	svc, cache := newTranslator(provider)

	input := "remove my folder please now"
	resp, err := svc.Translate(domain.TranslationRequest{Input: input})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if resp.Command != `rm -r "my folder"` || resp.Source != domain.SourceInference {
		t.Fatalf("Translate() = %+v, want inference result", resp)
	}
	if resp.Model != "llama" {
		t.Fatalf("Model = %q, want llama", resp.Model)
	}
	if got, ok := cache.entries[input]; !ok || got != `rm -r "my folder"` {
		t.Fatalf("cache entry = %q, %v, want stored under raw input", got, ok)
	}
}

func TestTranslateSentinelIsAmbiguousAndLeavesCacheUntouched(t *testing.T) {
	provider := &stubProvider{candidate: domain.SentinelNoCommand}
	svc, cache := newTranslator(provider)

	_, err := svc.Translate(domain.TranslationRequest{Input: "please do the thing somehow"})
	if !errors.Is(err, domain.ErrTranslationAmbiguous) {
		t.Fatalf("Translate() error = %v, want ErrTranslationAmbiguous", err)
	}
	if cache.puts != 0 {
		t.Fatal("cache modified on sentinel response")
	}
}

func TestTranslateEchoedInputIsAmbiguous(t *testing.T) {
	input := "please frobnicate the widget"
	provider := &stubProvider{candidate: input}
	svc, _ := newTranslator(provider)

	_, err := svc.Translate(domain.TranslationRequest{Input: "  " + input + " "})
	if !errors.Is(err, domain.ErrTranslationAmbiguous) {
		t.Fatalf("Translate() error = %v, want ErrTranslationAmbiguous", err)
	}
}

func TestTranslateMalformedCandidatesAreAmbiguous(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
	}{
		{"empty", ""},
		{"oversized", strings.Repeat("x", domain.MaxCommandLength+1)},
		{"no alphanumeric", "!!! ???"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{candidate: tt.candidate}
			svc, cache := newTranslator(provider)

			_, err := svc.Translate(domain.TranslationRequest{Input: "please do something odd"})
			if !errors.Is(err, domain.ErrTranslationAmbiguous) {
				t.Fatalf("Translate() error = %v, want ErrTranslationAmbiguous", err)
			}
			if cache.puts != 0 {
				t.Fatal("cache modified on rejected candidate")
			}
		})
	}
}

func TestTranslateInvalidCandidateFailsValidation(t *testing.T) {
	provider := &stubProvider{candidate: "banana"}
	svc, cache := newTranslator(provider)
	svc.Validator = stubValidator{valid: false, reason: `no executable named "banana" found in PATH`}

	_, err := svc.Translate(domain.TranslationRequest{Input: "please peel the banana"})
	if !errors.Is(err, domain.ErrValidationFailed) {
		t.Fatalf("Translate() error = %v, want ErrValidationFailed", err)
	}
	if cache.puts != 0 {
		t.Fatal("cache modified on invalid candidate")
	}
}

func TestTranslatePropagatesProviderErrorKinds(t *testing.T) {
	for _, kind := range []error{domain.ErrConfiguration, domain.ErrTransport, domain.ErrUpstream} {
		provider := &stubProvider{err: fmt.Errorf("%w: boom", kind)}
		svc, _ := newTranslator(provider)

		_, err := svc.Translate(domain.TranslationRequest{Input: "please download the report"})
		if !errors.Is(err, kind) {
			t.Errorf("Translate() error = %v, want %v", err, kind)
		}
	}
}

func TestTranslateAsyncDeliversSuccessOnChannel(t *testing.T) {
	provider := &stubProvider{candidate: "mkdir test"}
	svc, _ := newTranslator(provider)

	svc.TranslateAsync(domain.TranslationRequest{Input: "please create a folder named test"})

	select {
	case got := <-svc.Results():
		if got != "mkdir test" {
			t.Fatalf("Results() = %q, want mkdir test", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}
}

func TestTranslateAsyncSwallowsFailures(t *testing.T) {
	provider := &stubProvider{candidate: domain.SentinelNoCommand}
	svc, _ := newTranslator(provider)

	svc.TranslateAsync(domain.TranslationRequest{Input: "please do the thing somehow"})

	select {
	case got := <-svc.Results():
		t.Fatalf("Results() = %q, want nothing", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTranslateRecordsHistory(t *testing.T) {
	provider := &stubProvider{candidate: "mkdir test", model: "llama"}
	svc, _ := newTranslator(provider)
	history := &stubHistory{}
	svc.History = history

	_, err := svc.Translate(domain.TranslationRequest{ID: "req-1", Input: "please create a folder named test"})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if len(history.records) != 1 {
		t.Fatalf("history records = %d, want 1", len(history.records))
	}
	rec := history.records[0]
	if rec.Command != "mkdir test" || rec.Source != domain.SourceInference || rec.RequestID != "req-1" {
		t.Fatalf("record = %+v", rec)
	}
}

type stubProvider struct {
	candidate string
	model     string
	err       error
	calls     int
}

func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return s.model }
func (s *stubProvider) Complete(context.Context, string) (string, error) {
	s.calls++
	return s.candidate, s.err
}

type stubCache struct {
	entries map[string]string
	puts    int
}

func (s *stubCache) Get(key string) (string, bool) {
	command, ok := s.entries[key]
	return command, ok
}

func (s *stubCache) Put(key, command string) {
	s.puts++
	s.entries[key] = command
}

type stubValidator struct {
	valid  bool
	reason string
}

func (s stubValidator) LooksValid(string) (bool, string) {
	return s.valid, s.reason
}

type stubHistory struct {
	records []domain.HistoryRecord
}

func (s *stubHistory) Save(record domain.HistoryRecord) error {
	s.records = append(s.records, record)
	return nil
}

func (s *stubHistory) Records(int, string) ([]domain.HistoryRecord, error) {
	return s.records, nil
}
