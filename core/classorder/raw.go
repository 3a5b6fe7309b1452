package classorder

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// RecordErrors maps the index of each record that could not be decoded to its error.
type RecordErrors map[int]error

func (errs RecordErrors) Error() string {
	idxs := make([]int, 0, len(errs))
	for i := range errs {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)

	msgs := make([]string, 0, len(idxs))
	for _, i := range idxs {
		msgs = append(msgs, "record "+strconv.Itoa(i)+": "+errs[i].Error())
	}
	return strings.Join(msgs, "; ")
}

// SortRaw sorts raw JSON records in class order, in place, and returns them decoded in the same order.
// raws is left untouched when any record fails to decode; the error is then a RecordErrors.
func SortRaw(raws []json.RawMessage) ([]Record, error) {
	records := make([]Record, len(raws))
	errs := make(RecordErrors)
	for i, raw := range raws {
		if err := json.Unmarshal(raw, &records[i]); err != nil {
			errs[i] = err
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	perm := make([]int, len(raws))
	for i := range perm {
		perm[i] = i
	}
	SortSlice(perm, func(i int) Record { return records[i] })

	sortedRaws := make([]json.RawMessage, len(raws))
	sortedRecs := make([]Record, len(raws))
	for i, j := range perm {
		sortedRaws[i], sortedRecs[i] = raws[j], records[j]
	}
	copy(raws, sortedRaws)
	return sortedRecs, nil
}
