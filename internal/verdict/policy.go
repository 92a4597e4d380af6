package verdict

import "strings"

// Markers are checked in this order; the first group with a hit wins, so a
// label that mentions both "fresh" and "mold" is Edible.
var (
	freshMarkers    = []string{"fresh", "edible", "tasty"}
	spoilageMarkers = []string{"rotten", "mold"}
)

// Result pairs a verdict with the label it came from.
type Result struct {
	Label   string
	Verdict Verdict
}

// Classify maps label to a verdict. Matching is case-sensitive.
func Classify(label string) Result {
	switch {
	case containsAny(label, freshMarkers):
		return Result{Label: label, Verdict: Edible}
	case containsAny(label, spoilageMarkers):
		return Result{Label: label, Verdict: Unsafe}
	default:
		return Result{Label: label, Verdict: NotFood}
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
