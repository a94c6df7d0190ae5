package domain

import "time"

// HistoryRecord captures one completed translation for the history store.
type HistoryRecord struct {
	Timestamp  time.Time         `json:"timestamp"`
	RequestID  string            `json:"request_id"`
	Prompt     string            `json:"prompt"`
	Command    string            `json:"command"`
	Source     TranslationSource `json:"source"`
	Model      string            `json:"model"`
	DurationMS int64             `json:"duration_ms"`
}

// CacheEntry stores one accepted translation. Entries are owned exclusively
// by the response cache and keyed by the exact raw input text.
type CacheEntry struct {
	Key       string    `json:"key"`
	Command   string    `json:"command"`
	CreatedAt time.Time `json:"created_at"`
}
