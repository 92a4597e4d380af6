// Package verdict turns the label an image model picked into one of three
// answers for the user: the food is edible, unsafe, or not food at all.
//
// The model itself is outside this package. It ranks a fixed list of
// candidate labels (see DefaultCandidates) against an image; Top picks the
// winner and Classify maps it to a Verdict with plain substring tests.
package verdict

// Verdict is the user-facing outcome of a food check.
type Verdict int

const (
	NotFood Verdict = iota
	Edible
	Unsafe
)

func (v Verdict) String() string {
	switch v {
	case Edible:
		return "edible"
	case Unsafe:
		return "unsafe"
	default:
		return "not food"
	}
}

// Message is the sentence shown under the model's label.
func Message(v Verdict) string {
	switch v {
	case Edible:
		return "This food is safe to eat!"
	case Unsafe:
		return "Do not eat this food!"
	default:
		return "This is not food!"
	}
}

// DefaultCandidates is the ordered label set offered to the model. Every
// verdict is reachable from at least one entry.
var DefaultCandidates = []string{
	"not food",
	"fresh food",
	"edible food",
	"tasty food",
	"rotten food",
	"food with mold",
}
