// Package classorder orders school records by academic class: Pre-Nursery, Nursery,
// KG, LKG, UKG, Prep, then Class 1 to 12, then any other label alphabetically.
package classorder

import "strconv"

// Rank is the position of a class label in the academic progression. Lower ranks come first.
type Rank int

// Known ranks
const (
	RankPreNursery Rank = 1
	RankNursery    Rank = 2
	RankKG         Rank = 3
	RankLKG        Rank = 4
	RankUKG        Rank = 5
	RankPrep       Rank = 6

	// Class N ranks as gradeOffset + N (Class 1: 7 .. Class 12: 18)
	gradeOffset Rank = 6
	minGrade         = 1
	maxGrade         = 12

	// RankUnrecognized is the base rank of labels matching no tier.
	// The code point of the label's first normalized character is added to it.
	RankUnrecognized Rank = 100

	// RankEmpty is given to labels that normalize to nothing. It sorts after everything else.
	RankEmpty Rank = 999
)

var tierNames = map[Rank]string{
	RankPreNursery: "Pre-Nursery",
	RankNursery:    "Nursery",
	RankKG:         "KG",
	RankLKG:        "LKG",
	RankUKG:        "UKG",
	RankPrep:       "Prep",
}

// GradeRank returns the rank of Class `grade` and whether grade is within 1..12.
func GradeRank(grade int) (Rank, bool) {
	if grade < minGrade || grade > maxGrade {
		return 0, false
	}
	return gradeOffset + Rank(grade), true
}

// Grade returns the class number of r, if r is a Class 1..12 rank.
func (r Rank) Grade() (int, bool) {
	grade := int(r - gradeOffset)
	if grade < minGrade || grade > maxGrade {
		return 0, false
	}
	return grade, true
}

// Recognized reports whether r is one of the known tiers.
func (r Rank) Recognized() bool {
	return r >= RankPreNursery && r < RankUnrecognized
}

// Tier returns the display name of r.
func (r Rank) Tier() string {
	if name, ok := tierNames[r]; ok {
		return name
	}
	if grade, ok := r.Grade(); ok {
		return "Class " + strconv.Itoa(grade)
	}
	if r == RankEmpty {
		return "Empty"
	}
	return "Unrecognized"
}

// KnownTiers lists every recognized tier name in rank order.
func KnownTiers() []string {
	tiers := make([]string, 0, int(gradeOffset)+maxGrade)
	for r := RankPreNursery; r <= gradeOffset+maxGrade; r++ {
		tiers = append(tiers, r.Tier())
	}
	return tiers
}
