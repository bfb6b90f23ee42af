package engine

import (
	"strings"

	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/dataset"
)

// Predicate reports whether a record passes a filter.
type Predicate func(dataset.CrimeRecord) bool

// Filter returns the records matching all predicates, single pass.
// Predicates are AND-combined; no predicates means no restriction.
func Filter(records []dataset.CrimeRecord, preds ...Predicate) []dataset.CrimeRecord {
	if len(preds) == 0 {
		return records
	}

	out := make([]dataset.CrimeRecord, 0, len(records))
	for _, rec := range records {
		pass := true
		for _, pred := range preds {
			if !pred(rec) {
				pass = false
				break
			}
		}
		if pass {
			out = append(out, rec)
		}
	}
	return out
}

// CrimeTypeIs matches records of one major crime type, case-insensitively.
func CrimeTypeIs(crimeType string) Predicate {
	want := strings.ToLower(crimeType)
	return func(rec dataset.CrimeRecord) bool {
		return strings.ToLower(rec.MajorCrime) == want
	}
}

// BoroughIs matches records of one borough, case-insensitively.
func BoroughIs(borough string) Predicate {
	want := strings.ToLower(borough)
	return func(rec dataset.CrimeRecord) bool {
		return strings.ToLower(rec.Borough) == want
	}
}

// BoroughIn matches records whose borough is in the set (OR within the
// dimension, as elsewhere). An empty set matches nothing.
func BoroughIn(boroughs []string) Predicate {
	set := make(map[string]bool, len(boroughs))
	for _, b := range boroughs {
		set[strings.ToLower(b)] = true
	}
	return func(rec dataset.CrimeRecord) bool {
		return set[strings.ToLower(rec.Borough)]
	}
}
