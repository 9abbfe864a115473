package reconcile

import (
	"maps"
	"slices"

	"count-diff/core/upstream"
)

// Difference is the raw outcome of comparing two materialized sets.
type Difference struct {
	OnlyIn1         []upstream.Record
	OnlyIn2         []upstream.Record
	DuplicateHint   Side
	DuplicateSample upstream.Record
	Status          Status
}

// Diff computes the symmetric difference of two sets by key and classifies it:
//
//  1. delta == 0 is a match and nothing else is computed.
//  2. No unique records on either side with delta != 0 is attributed to a
//     duplicate listing on the side matching the sign of delta.
//  3. Otherwise the unique records are the explanation. The status is
//     explained when their count difference equals delta.
//
// Only one cause is assumed per comparison. A mix of unique gaps and
// duplicates is reported by rule 3 alone.
func Diff(left, right *MaterializedSet, delta int) Difference {
	if delta == 0 {
		return Difference{
			OnlyIn1: []upstream.Record{},
			OnlyIn2: []upstream.Record{},
			Status:  StatusMatch,
		}
	}

	d := Difference{
		OnlyIn1: onlyIn(left, right),
		OnlyIn2: onlyIn(right, left),
	}

	switch {
	case len(d.OnlyIn1) == 0 && len(d.OnlyIn2) == 0:
		d.Status = StatusDuplicate
		if delta > 0 {
			d.DuplicateHint = SideLeft
			d.DuplicateSample = left.DuplicateSample
		} else {
			d.DuplicateHint = SideRight
			d.DuplicateSample = right.DuplicateSample
		}
	case len(d.OnlyIn1)-len(d.OnlyIn2) == delta:
		d.Status = StatusExplained
	default:
		d.Status = StatusUnexplained
	}
	return d
}

// onlyIn returns records of a whose key is absent from b, ordered by key.
func onlyIn(a, b *MaterializedSet) []upstream.Record {
	out := []upstream.Record{}
	for _, key := range slices.Sorted(maps.Keys(a.Records)) {
		if _, ok := b.Records[key]; !ok {
			out = append(out, a.Records[key])
		}
	}
	return out
}

// uniqueCounts returns |a\b| and |b\a| without building the lists.
func uniqueCounts(a, b *MaterializedSet) (int, int) {
	var n1, n2 int
	for key := range a.Records {
		if _, ok := b.Records[key]; !ok {
			n1++
		}
	}
	for key := range b.Records {
		if _, ok := a.Records[key]; !ok {
			n2++
		}
	}
	return n1, n2
}
