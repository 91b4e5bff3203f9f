// Package heuristic scores text content for misinformation indicators.
// Scoring is pure and deterministic, a Scorer is immutable after New and
// safe for concurrent use
package heuristic

import (
	"regexp"
	"strings"
)

// suspiciousPatterns flag clickbait and misinformation framing
var suspiciousPatterns = []string{
	`\bSHOCKING\b`,
	`\bBREAKING[:\s]`,
	`\bURGENT[:\s]`,
	`you won'?t believe`,
	`doctors hate`,
	`this one (trick|secret|weird trick)`,
	`what .+ don'?t want you to know`,
	`share (this )?before (it'?s|they) (deleted?|remove)`,
	`big pharma`,
	`they don'?t want you to know`,
	`mainstream media (won'?t|refuses to)`,
	`\bcure for (cancer|aids|diabetes)`,
	`secret(s)? (they|the government)`,
}

// crediblePatterns flag sourcing and research language
var crediblePatterns = []string{
	`according to (a )?(study|research|report)`,
	`published in`,
	`(scientists?|researchers?) (say|found|discovered)`,
	`peer[- ]reviewed`,
	`study shows?`,
	`research indicates?`,
}

// emotionalWords are sensational words counted as plain substrings
var emotionalWords = []string{
	"shocking", "amazing", "incredible", "unbelievable", "mindblowing",
	"devastating", "terrifying", "outrageous", "scandal", "bombshell",
}

// compileSet joins patterns into a single case insensitive alternation so
// overlapping alternatives count once per position, same as matching the
// union left to right
func compileSet(patterns []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + strings.Join(patterns, "|"))
}
