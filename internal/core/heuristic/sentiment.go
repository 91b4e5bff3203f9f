package heuristic

import "strings"

// polarity lexicon, deliberately small and fixed so scoring stays
// deterministic across builds

var positiveWords = map[string]struct{}{
	"good": {}, "great": {}, "excellent": {}, "positive": {}, "strong": {},
	"success": {}, "successful": {}, "benefit": {}, "beneficial": {},
	"improve": {}, "improved": {}, "improvement": {}, "safe": {},
	"effective": {}, "breakthrough": {}, "promising": {}, "hope": {},
	"hopeful": {}, "win": {}, "better": {}, "best": {}, "gain": {},
	"growth": {}, "progress": {}, "praised": {}, "remarkable": {},
	"celebrated": {}, "healthy": {}, "recovery": {}, "support": {},
	"love": {}, "loved": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "terrible": {}, "horrible": {}, "awful": {}, "worst": {},
	"disaster": {}, "disastrous": {}, "crisis": {}, "dangerous": {},
	"danger": {}, "deadly": {}, "threat": {}, "fear": {}, "panic": {},
	"toxic": {}, "scandal": {}, "outrage": {}, "corrupt": {},
	"corruption": {}, "lie": {}, "lies": {}, "fraud": {}, "hoax": {},
	"fake": {}, "collapse": {}, "fail": {}, "failed": {}, "failure": {},
	"death": {}, "killed": {}, "victim": {}, "poison": {},
	"hate": {}, "hated": {},
}

// polarity returns a sentiment polarity in [-1,1]
// zero lexicon hits mean a neutral zero
func polarity(text string) float64 {
	var pos, neg int
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,!?;:\"'()[]")
		if w == "" {
			continue
		}
		if _, ok := positiveWords[w]; ok {
			pos++
		}
		if _, ok := negativeWords[w]; ok {
			neg++
		}
	}
	total := pos + neg
	if total == 0 {
		return 0
	}
	return float64(pos-neg) / float64(total)
}
