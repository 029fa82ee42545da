package analyze

import (
	"math"

	"truthguard/internal/domain"
)

// Classify maps indicator counts and sentiment polarity to a verdict.
// Clauses are evaluated in order with the fake clause first; the
// sentiment comparisons are strict, so exactly -0.25, 0.15, or 0.5 does
// not cross a threshold.
func Classify(indicators int, sentiment float64) domain.Label {
	switch {
	case indicators >= 3 || sentiment < -0.25 || sentiment > 0.5:
		return domain.LabelFake
	case indicators >= 1 || math.Abs(sentiment) > 0.15:
		return domain.LabelSuspicious
	default:
		return domain.LabelReal
	}
}

// AdjustForCorroboration downgrades weakly corroborated verdicts: with
// fewer than 3 search results, real becomes suspicious and uncertain
// becomes fake. Suspicious and fake are fixed points, so applying the
// adjustment again with the same count changes nothing.
func AdjustForCorroboration(label domain.Label, resultCount int) domain.Label {
	if resultCount >= 3 {
		return label
	}
	switch label {
	case domain.LabelReal:
		return domain.LabelSuspicious
	case domain.LabelUncertain:
		return domain.LabelFake
	default:
		return label
	}
}
