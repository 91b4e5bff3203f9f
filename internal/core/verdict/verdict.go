// Package verdict resolves a final verdict from the heuristic score and the
// source aggregation signals. Pure, no transport or storage concerns
package verdict

// Verdict is the final classification for a piece of content
type Verdict string

// Verdict values
const (
	Verified      Verdict = "VERIFIED"
	Unclear       Verdict = "UNCLEAR"
	LikelyFake    Verdict = "LIKELY_FAKE"
	ConfirmedFake Verdict = "CONFIRMED_FAKE"
)

// Signals summarizes what source aggregation found
type Signals struct {
	Total       int
	Trusted     int
	Agreeing    int
	Disagreeing int
}

// FromScore maps a bare heuristic score to a provisional verdict and
// confidence, used when no source signals are in play
func FromScore(score int) (Verdict, float64) {
	switch {
	case score >= 70:
		return Verified, 0.8
	case score >= 50:
		return Unclear, 0.6
	case score >= 30:
		return LikelyFake, 0.7
	default:
		return LikelyFake, 0.9
	}
}

// Adjust shifts the heuristic score by the source signals
// trusted coverage earns +10, a total blank costs -15, result stays in 0..100
func Adjust(score int, sig Signals) int {
	switch {
	case sig.Trusted > 0:
		score += 10
		if score > 100 {
			score = 100
		}
	case sig.Total == 0:
		score -= 15
		if score < 0 {
			score = 0
		}
	}
	return score
}

// Resolve applies the fixed tie-break ladder to an adjusted score
// the ladder never yields ConfirmedFake, that verdict is reserved for the
// known fake registry
func Resolve(adjusted int, sig Signals) (Verdict, float64) {
	if sig.Disagreeing >= 2 {
		return LikelyFake, 0.85
	}
	switch {
	case adjusted >= 70 && sig.Agreeing >= 2:
		return Verified, 0.9
	case adjusted >= 70:
		return Verified, 0.75
	case adjusted >= 50:
		return Unclear, 0.65
	case adjusted >= 30:
		return LikelyFake, 0.75
	default:
		return LikelyFake, 0.85
	}
}
