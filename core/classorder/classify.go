package classorder

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	digitsRegex = regexp.MustCompile("[0-9]+")

	romanNumerals = map[string]int{
		"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5, "vi": 6,
		"vii": 7, "viii": 8, "ix": 9, "x": 10, "xi": 11, "xii": 12,
	}
)

// Normalize folds compatibility characters (full-width letters, the Unicode roman numerals block..),
// drops everything but ASCII letters, digits and whitespace, lowers and trims the result.
func Normalize(label string) string {
	label = norm.NFKC.String(label)

	var b strings.Builder
	b.Grow(len(label))
	for _, char := range label {
		switch {
		case 'a' <= char && char <= 'z', '0' <= char && char <= '9':
			b.WriteRune(char)
		case 'A' <= char && char <= 'Z':
			b.WriteRune(char + ('a' - 'A'))
		case char == ' ', char == '\t', char == '\n', char == '\v', char == '\f', char == '\r':
			b.WriteRune(char)
		}
	}
	return strings.TrimSpace(b.String())
}

// Classify returns the Rank of a raw class label. It never fails:
// labels matching no tier rank after every known tier, by first character.
func Classify(label string) Rank {
	return classify(Normalize(label))
}

// classify ranks a normalized label. The order of the checks matters: first match wins.
func classify(name string) Rank {
	if name == "" {
		return RankEmpty
	}

	hasPre := strings.Contains(name, "pre")
	hasNursery := strings.Contains(name, "nursery")
	switch {
	case hasPre && hasNursery:
		return RankPreNursery
	case hasNursery:
		return RankNursery
	case strings.Contains(name, "kg"):
		if strings.Contains(name, "lkg") {
			return RankLKG
		}
		if strings.Contains(name, "ukg") {
			return RankUKG
		}
		return RankKG
	case strings.Contains(name, "prep"):
		return RankPrep
	}

	// the first digit sequence in 1..12 counts: "Class 10 (2024)" is Class 10, "2024 Class 5" is Class 5
	for _, digits := range digitsRegex.FindAllString(name, -1) {
		if grade, err := strconv.Atoi(digits); err == nil {
			if rank, ok := GradeRank(grade); ok {
				return rank
			}
		}
	}

	// roman numerals rank like their decimal value: "ix" == "9"
	for _, word := range strings.Fields(name) {
		if grade, ok := romanNumerals[word]; ok {
			rank, _ := GradeRank(grade)
			return rank
		}
	}

	return RankUnrecognized + Rank(name[0])
}
