package heuristic

// Explain turns a breakdown and composite score into a summary plus reasons
// reasons follow a fixed priority order and are capped at three
func Explain(b Breakdown, score int) (summary string, reasons []string) {
	if b.Suspicious > 0.3 {
		reasons = append(reasons, "Sensational or clickbait language detected")
	}
	if b.Suspicious > 0.6 {
		reasons = append(reasons, "Multiple suspicious patterns found")
	}

	if b.Credible > 0.3 {
		reasons = append(reasons, "References to studies or research found")
	}
	if b.Credible > 0.6 {
		reasons = append(reasons, "Multiple credible sources referenced")
	}

	if b.Emotional > 0.4 {
		reasons = append(reasons, "Excessive emotional or sensational language")
	} else if b.Emotional < 0.2 {
		reasons = append(reasons, "Neutral, factual tone")
	}

	switch {
	case score >= 70:
		if len(reasons) == 0 {
			reasons = append(reasons, "Content appears factual and well-sourced")
		}
		summary = "Content appears credible"
	case score >= 50:
		if len(reasons) == 0 {
			reasons = append(reasons, "Unable to verify with high confidence")
		}
		summary = "Credibility unclear - needs more verification"
	default:
		if len(reasons) == 0 {
			reasons = append(reasons, "Multiple indicators of potential misinformation")
		}
		summary = "Content shows signs of misinformation"
	}

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return summary, reasons
}
