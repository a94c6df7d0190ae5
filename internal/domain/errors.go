package domain

import "errors"

// Failure kinds surfaced by the translation pipeline. Callers decide which
// user-facing message to show by matching with errors.Is, never by inspecting
// message text.
var (
	// ErrConfiguration signals missing or unusable process configuration,
	// typically an unset API credential. Never retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrInputRejected signals input classified as gibberish; no external
	// call is made.
	ErrInputRejected = errors.New("input rejected")

	// ErrTranslationAmbiguous signals that inference produced the sentinel,
	// echoed the input, or returned a structurally unusable candidate.
	ErrTranslationAmbiguous = errors.New("translation ambiguous")

	// ErrValidationFailed signals a candidate whose leading token does not
	// resolve to a builtin or executable.
	ErrValidationFailed = errors.New("validation failed")

	// ErrTransport signals a timeout or network failure reaching the
	// inference service.
	ErrTransport = errors.New("transport failure")

	// ErrUpstream signals a non-success HTTP status from the inference
	// service.
	ErrUpstream = errors.New("upstream error")
)
