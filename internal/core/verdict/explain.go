package verdict

import "fmt"

// Explanation is the merged human readable outcome
type Explanation struct {
	Summary         string   `json:"summary"`
	Reasons         []string `json:"reasons"`
	CounterEvidence []string `json:"counter_evidence,omitempty"`
}

// MergeExplanation combines heuristic reasons with one source level reason
// and re-derives the summary from the adjusted score, reasons cap at three
// preserving order
func MergeExplanation(heuristicReasons []string, sig Signals, adjusted int) Explanation {
	reasons := append([]string(nil), heuristicReasons...)

	if sig.Trusted > 0 {
		reasons = append(reasons, fmt.Sprintf("%d trusted sources found", sig.Trusted))
	} else if sig.Total == 0 {
		reasons = append(reasons, "No verifying sources found")
	}

	var summary string
	switch {
	case adjusted >= 70:
		summary = "Content appears credible and well-sourced"
	case adjusted >= 50:
		summary = "Unable to verify - proceed with caution"
	default:
		summary = "Content shows multiple signs of misinformation"
	}

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return Explanation{Summary: summary, Reasons: reasons}
}
