// Package classify decides whether raw input is an already-valid command,
// natural language, or gibberish. All rules are fixed lexical checks; the
// classifier performs no I/O and is safe for concurrent use.
package classify

import (
	"strings"
	"unicode"

	"github.com/linara-sh/linara/internal/domain"
	"github.com/linara-sh/linara/internal/ports"
)

// commandPrefixes short-circuit the pipeline: input starting with one of
// these tokens is returned as-is and never sent for inference.
var commandPrefixes = []string{
	"mkdir", "ls", "cd", "rm", "cp", "mv", "git", "curl", "wget",
	"sudo", "chmod", "grep", "open",
}

// meaningfulTokens exempt input from the remaining gibberish rules. Editor
// and filesystem words show up in short requests ("open here") that the
// pattern rules would otherwise flag.
var meaningfulTokens = []string{
	"open", "cursor", "vscode", "editor", "ide", "folder", "directory",
	"file", "this", "here", "current",
}

// incoherentPhrases are two-word fragments that read like noise rather than
// a command request.
var incoherentPhrases = []string{
	"how hello", "hello how", "what hello", "hello what",
	"why hello", "hello why", "when hello", "hello when",
	"where hello", "hello where", "who hello", "hello who",
	"how what", "what how", "why what", "what why",
	"how are", "what are", "why are", "when are", "where are", "who are",
	"hello world", "world hello", "test hello", "hello test",
}

var questionWords = map[string]bool{
	"how": true, "what": true, "why": true, "when": true,
	"where": true, "who": true, "which": true,
}

var actionVerbs = map[string]bool{
	"create": true, "make": true, "delete": true, "remove": true,
	"list": true, "show": true, "find": true, "search": true,
	"copy": true, "move": true, "download": true, "install": true,
	"update": true, "open": true, "close": true, "start": true,
	"stop": true,
}

// naturalIndicators mark input that reads like a plain-English request.
var naturalIndicators = []string{
	"create a", "make a", "delete", "remove", "list", "show me", "find",
	"search for", "copy", "move", "download", "install", "update",
	"how to", "i want to", "can you", "please", "help me",
	"open this", "open file", "open in", "launch", "start",
	"open folder", "open current", "open here", "open directory",
	"cursor", "vscode", "editor", "ide",
}

// RuleClassifier implements ports.Classifier with fixed lexical rules.
type RuleClassifier struct{}

// NewRuleClassifier builds a classifier.
func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

// Classify implements ports.Classifier.
func (c *RuleClassifier) Classify(text string) domain.Classification {
	normalized := strings.ToLower(strings.TrimSpace(text))

	for _, prefix := range commandPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return domain.ClassAlreadyCommand
		}
	}

	if isGibberish(normalized) {
		return domain.ClassGibberish
	}

	for _, indicator := range naturalIndicators {
		if strings.Contains(normalized, indicator) {
			return domain.ClassNaturalLanguage
		}
	}

	// No rule matched: the input is still forwarded to the pipeline rather
	// than rejected outright.
	return domain.ClassAmbiguous
}

// isGibberish applies the rejection rules in order; any match is gibberish.
// The input must already be trimmed and lower-cased.
func isGibberish(input string) bool {
	runes := []rune(input)
	if len(runes) < 2 {
		return true
	}

	for _, token := range meaningfulTokens {
		if strings.Contains(input, token) {
			return false
		}
	}

	if hasRepeatedRun(runes, 4) {
		return true
	}

	if !hasAlphanumeric(runes) {
		return true
	}

	// Short-period repetition across the whole string ("ababab",
	// "sdasdasdasdas") reads like keyboard noise.
	if len(runes) >= 6 && (isPeriodic(runes, 2) || isPeriodic(runes, 3)) {
		return true
	}

	for _, phrase := range incoherentPhrases {
		if strings.Contains(input, phrase) {
			return true
		}
	}

	words := strings.Fields(input)
	if len(words) <= 3 {
		hasQuestion := false
		hasAction := false
		for _, word := range words {
			if questionWords[word] {
				hasQuestion = true
			}
			if actionVerbs[word] {
				hasAction = true
			}
		}
		if hasQuestion && !hasAction {
			return true
		}
	}

	return false
}

// hasRepeatedRun reports whether the input contains a run of at least n
// identical consecutive characters.
func hasRepeatedRun(runes []rune, n int) bool {
	count := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			count++
			if count >= n {
				return true
			}
		} else {
			count = 1
		}
	}
	return false
}

func hasAlphanumeric(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// isPeriodic reports whether every character equals the one period positions
// before it, i.e. the string is a repetition of its first period characters.
func isPeriodic(runes []rune, period int) bool {
	if len(runes) <= period {
		return false
	}
	for i := period; i < len(runes); i++ {
		if runes[i] != runes[i-period] {
			return false
		}
	}
	return true
}

var _ ports.Classifier = (*RuleClassifier)(nil)
