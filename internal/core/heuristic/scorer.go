package heuristic

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"credscan/internal/core/normalize"
)

// Breakdown holds the five sub scores, each in [0,1]
type Breakdown struct {
	Suspicious float64 `json:"suspicious_score"`
	Credible   float64 `json:"credible_score"`
	Sentiment  float64 `json:"sentiment_score"`
	Complexity float64 `json:"complexity_score"`
	Emotional  float64 `json:"emotional_score"`
}

// Scorer evaluates text against the fixed pattern sets
// construct once and share, all state is read only after New
type Scorer struct {
	suspicious *regexp.Regexp
	credible   *regexp.Regexp
	norm       *normalize.Normalizer
}

// New constructs a Scorer with precompiled pattern sets
func New() *Scorer {
	return &Scorer{
		suspicious: compileSet(suspiciousPatterns),
		credible:   compileSet(crediblePatterns),
		norm:       normalize.New(),
	}
}

// Hash returns the sha256 hex digest of the raw content bytes
func Hash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Score computes all sub scores for text
// pattern sets run against the normalized fold so homoglyph padding does not
// evade them, everything else reads the raw text
func (s *Scorer) Score(text string) Breakdown {
	folded := s.norm.Normalize(text)
	return Breakdown{
		Suspicious: s.suspiciousScore(folded),
		Credible:   s.credibleScore(folded),
		Sentiment:  sentimentScore(text),
		Complexity: complexityScore(text),
		Emotional:  emotionalScore(text),
	}
}

// Composite collapses a breakdown into a 0..100 credibility score
// weights: suspicious -40, credible +30, sentiment +15, complexity +10,
// emotional -15, starting from a neutral 50
func Composite(b Breakdown) int {
	score := 50.0
	score -= b.Suspicious * 40
	score += b.Credible * 30
	score += b.Sentiment * 15
	score += b.Complexity * 10
	score -= b.Emotional * 15

	n := int(score)
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// suspiciousScore counts pattern hits, each adds 0.2 up to 1.0
func (s *Scorer) suspiciousScore(text string) float64 {
	matches := len(s.suspicious.FindAllStringIndex(text, -1))
	return math.Min(float64(matches)*0.2, 1.0)
}

// credibleScore counts pattern hits, each adds 0.25 up to 1.0
func (s *Scorer) credibleScore(text string) float64 {
	matches := len(s.credible.FindAllStringIndex(text, -1))
	return math.Min(float64(matches)*0.25, 1.0)
}

// sentimentScore rewards moderate tone, 1.0 at neutral polarity falling off
// toward either extreme
func sentimentScore(text string) float64 {
	p := (polarity(text) + 1) / 2
	return 1 - math.Abs(p-0.5)
}

// complexityScore compares average word length against 5 chars and words per
// sentence against 20, both on fixed slopes, then averages the two
// empty text scores zero
func complexityScore(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	var chars int
	for _, w := range words {
		chars += utf8.RuneCountInString(w)
	}
	avgWordLen := float64(chars) / float64(len(words))

	sentences := strings.Count(text, ".") + 1
	avgSentenceLen := float64(len(words)) / float64(sentences)

	wordScore := 1 - math.Abs(avgWordLen-5)/10
	sentenceScore := 1 - math.Abs(avgSentenceLen-20)/30

	return clamp01((wordScore + sentenceScore) / 2)
}

// emotionalScore combines sensational word hits, the uppercase ratio, and
// exclamation marks, capped at 1.0
func emotionalScore(text string) float64 {
	lower := strings.ToLower(text)
	var hits int
	for _, w := range emotionalWords {
		if strings.Contains(lower, w) {
			hits++
		}
	}

	var upper, runes int
	for _, r := range text {
		runes++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	capsRatio := 0.0
	if runes > 0 {
		capsRatio = float64(upper) / float64(runes)
	}

	bangs := strings.Count(text, "!")

	return math.Min(float64(hits)*0.2+capsRatio*2+float64(bangs)*0.1, 1.0)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
