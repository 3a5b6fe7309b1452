package classorder

import "sort"

// Record is the part of a school record (fee, attendance sheet..) that decides its position.
type Record struct {
	ClassName    string `json:"class_name"`
	AcademicYear string `json:"academic_year"` // YYYY-YYYY
}

type sortKey struct {
	rank Rank
	name string // normalized class name
	year string
}

func keyOf(rec Record) sortKey {
	name := Normalize(rec.ClassName)
	return sortKey{rank: classify(name), name: name, year: rec.AcademicYear}
}

// before orders by rank, then alphabetically among unrecognized labels,
// then by academic year, most recent first ("YYYY-YYYY" compares lexically).
func (k sortKey) before(other sortKey) bool {
	if k.rank != other.rank {
		return k.rank < other.rank
	}
	if !k.rank.Recognized() && k.name != other.name {
		return k.name < other.name
	}
	return k.year > other.year
}

// Less reports whether a comes before b in class order.
func Less(a, b Record) bool {
	return keyOf(a).before(keyOf(b))
}

// Sort returns a class ordered copy of records. Records with equal keys keep their relative order.
func Sort(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	SortSlice(sorted, func(r Record) Record { return r })
	return sorted
}

// SortSlice stably sorts s in place, in the class order of key(elem).
// Keys are computed once per element, before any element moves.
func SortSlice[T any](s []T, key func(T) Record) {
	n := len(s)
	if n < 2 {
		return
	}

	keys := make([]sortKey, n)
	perm := make([]int, n)
	for i := range keys {
		keys[i] = keyOf(key(s[i]))
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return keys[perm[i]].before(keys[perm[j]]) })

	sorted := make([]T, n)
	for i, j := range perm {
		sorted[i] = s[j]
	}
	copy(s, sorted)
}
