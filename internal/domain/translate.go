// Package domain defines core business entities and value objects for Linara.
//
// The domain layer is independent of infrastructure concerns and represents
// pure business logic and data structures.
package domain

import "context"

// Classification is the verdict on one piece of raw input.
type Classification string

const (
	// ClassAlreadyCommand means the text starts with a known command token and
	// should be returned as-is, never sent for inference.
	ClassAlreadyCommand Classification = "already_command"
	// ClassGibberish means the text is rejected before any external call.
	ClassGibberish Classification = "gibberish"
	// ClassNaturalLanguage means the text contains a natural-language indicator.
	ClassNaturalLanguage Classification = "natural_language"
	// ClassAmbiguous means no rule matched; the text still enters the pipeline.
	ClassAmbiguous Classification = "ambiguous"
)

// TranslationSource identifies which pipeline stage produced a command.
type TranslationSource string

const (
	SourcePassthrough TranslationSource = "passthrough"
	SourceLocal       TranslationSource = "local"
	SourceCache       TranslationSource = "cache"
	SourceInference   TranslationSource = "inference"
)

// TranslationRequest captures one unit of raw user input. It has no
// persistent identity and exists only for the duration of one call.
type TranslationRequest struct {
	Context context.Context
	ID      string
	Input   string
	Debug   bool
}

// TranslationResult is the canonical outcome propagated back to the CLI.
type TranslationResult struct {
	Command    string
	Source     TranslationSource
	Model      string
	DurationMS int64
}

// TranslationService exposes the use-case boundary for translating input.
type TranslationService interface {
	Translate(TranslationRequest) (TranslationResult, error)
}
