// Package phrases provides the static phrase-to-command table consulted
// before any network activity.
package phrases

import (
	"sort"
	"strings"

	"github.com/linara-sh/linara/internal/ports"
)

// StaticTable maps normalized phrases to commands. Built once at startup,
// immutable thereafter, so it needs no synchronization.
type StaticTable struct {
	entries map[string]string
	// keys sorted by length descending, then lexicographically. Fuzzy
	// matching walks this order so overlapping keys resolve the same way
	// every time: the longest (most specific) match wins.
	keys []string
}

// NewStaticTable normalizes the given mappings and builds the lookup table.
// When mappings is empty the default table is used.
func NewStaticTable(mappings map[string]string) *StaticTable {
	if len(mappings) == 0 {
		mappings = Defaults()
	}
	entries := make(map[string]string, len(mappings))
	keys := make([]string, 0, len(mappings))
	for phrase, command := range mappings {
		key := strings.ToLower(strings.TrimSpace(phrase))
		if key == "" || command == "" {
			continue
		}
		if _, ok := entries[key]; !ok {
			keys = append(keys, key)
		}
		entries[key] = command
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return &StaticTable{entries: entries, keys: keys}
}

// Lookup implements ports.PhraseTable. Exact matches on the normalized input
// win; otherwise the first key (in deterministic order) that contains the
// input or is contained by it is returned.
func (t *StaticTable) Lookup(text string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return "", false
	}

	if command, ok := t.entries[normalized]; ok {
		return command, true
	}

	for _, key := range t.keys {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			return t.entries[key], true
		}
	}

	return "", false
}

// Len reports the number of distinct phrases.
func (t *StaticTable) Len() int {
	return len(t.entries)
}

// Defaults returns the built-in phrase table covering the most common
// requests so they resolve instantly, with no API call.
func Defaults() map[string]string {
	return map[string]string{
		"list files":          "ls",
		"show files":          "ls",
		"list directory":      "ls",
		"show directory":      "ls",
		"what files are here": "ls",
		"see files":           "ls",

		"list all files":    "ls -la",
		"show all files":    "ls -la",
		"list hidden files": "ls -la",
		"show hidden files": "ls -la",

		"go up":        "cd ..",
		"go back":      "cd ..",
		"go to parent": "cd ..",
		"up one level": "cd ..",

		"go home":        "cd ~",
		"go to home":     "cd ~",
		"home directory": "cd ~",

		"show current directory":  "pwd",
		"where am i":              "pwd",
		"current location":        "pwd",
		"print working directory": "pwd",

		"clear screen":   "clear",
		"clear terminal": "clear",
		"clean screen":   "clear",

		"show date":       "date",
		"what time is it": "date",
		"current time":    "date",

		"show calendar": "cal",
		"calendar":      "cal",
		"show month":    "cal",

		"remove folder":    "rm -r",
		"delete folder":    "rm -r",
		"remove directory": "rm -r",
		"delete directory": "rm -r",
	}
}

var _ ports.PhraseTable = (*StaticTable)(nil)
