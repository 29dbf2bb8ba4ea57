package mood

import (
	"math"
	"strings"
)

// ScoreDistribution maps a classifier label to its confidence weight.
// It is not required to be normalized or non-empty.
type ScoreDistribution map[string]float64

// labelToState translates lower-cased emotion-classifier labels to
// states. Labels absent from this map yield no emotion-derived target.
var labelToState = map[string]State{
	"joy":          Happy,
	"happy":        Happy,
	"sadness":      Sad,
	"sad":          Sad,
	"anger":        Angry,
	"angry":        Angry,
	"surprise":     Surprised,
	"surprised":    Surprised,
	"fear":         Fearful,
	"fearful":      Fearful,
	"neutral":      Neutral,
	"disgust":      Angry,
	"trust":        Curious,
	"anticipation": Curious,
	"curious":      Curious,
}

// Select reduces one emotion distribution and one sentiment
// distribution to a single target state. Emotion takes precedence: the
// top-weight emotion label, lower-cased, is looked up in the fixed
// label map. If that yields nothing, the top-weight sentiment label
// decides: POSITIVE means Happy, NEGATIVE means Sad, anything else
// Neutral. With no usable input at all the result is Neutral.
//
// Select is pure and total; it never fails. Ties on the maximum weight
// are broken by the lexicographically smallest label so the result is
// reproducible regardless of map iteration order. NaN weights are
// ignored.
func Select(emotion, sentiment ScoreDistribution) State {
	if label, ok := topLabel(emotion); ok {
		if state, ok := labelToState[strings.ToLower(label)]; ok {
			return state
		}
	}

	if label, ok := topLabel(sentiment); ok {
		switch strings.ToUpper(label) {
		case "POSITIVE":
			return Happy
		case "NEGATIVE":
			return Sad
		default:
			return Neutral
		}
	}

	return Neutral
}

// topLabel returns the label carrying the greatest weight. Ties go to
// the lexicographically smallest label.
func topLabel(scores ScoreDistribution) (string, bool) {
	best := ""
	bestWeight := math.Inf(-1)
	found := false
	for label, weight := range scores {
		if math.IsNaN(weight) {
			continue
		}
		if !found || weight > bestWeight || (weight == bestWeight && label < best) {
			best = label
			bestWeight = weight
			found = true
		}
	}
	return best, found
}
