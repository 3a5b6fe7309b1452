package classorder

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// minSuggestRatio is the similarity a known tier must reach to be suggested.
const minSuggestRatio = .6

// Suggest returns the known tier closest to an unrecognized label, eg. "Nursary" -> "Nursery".
// ok is false when label is already recognized or nothing is similar enough.
func Suggest(label string) (tier string, ok bool) {
	name := Normalize(label)
	if name == "" || classify(name).Recognized() {
		return "", false
	}

	chars := strings.Split(name, "")
	var best float64
	for _, known := range KnownTiers() {
		ratio := difflib.NewMatcher(strings.Split(Normalize(known), ""), chars).Ratio()
		if ratio > best {
			best, tier = ratio, known
		}
	}
	if best < minSuggestRatio {
		return "", false
	}
	return tier, true
}
