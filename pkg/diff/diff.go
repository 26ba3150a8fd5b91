// Package diff compares two transaction record collections by id.
package diff

import (
	"slices"

	"github.com/ypbank/txconv/pkg/record"
)

// Result holds the outcome of comparing two record collections. Each slice is
// sorted ascending so output is deterministic regardless of map iteration
// order.
type Result struct {
	// OnlyInFirst lists ids present only in the first collection.
	OnlyInFirst []uint64
	// OnlyInSecond lists ids present only in the second collection.
	OnlyInSecond []uint64
	// Different lists ids present in both collections whose records are not
	// structurally equal.
	Different []uint64
}

// Identical reports whether the two collections matched exactly.
func (r Result) Identical() bool {
	return len(r.OnlyInFirst) == 0 && len(r.OnlyInSecond) == 0 && len(r.Different) == 0
}

// Compare indexes both collections by record id and computes the three
// difference sets. Neither input is mutated. If a collection contains
// duplicate ids the last record wins; duplicates are not an error at this
// layer.
func Compare(first, second []record.Record) Result {
	a := indexByID(first)
	b := indexByID(second)

	var result Result
	for id, recA := range a {
		recB, ok := b[id]
		switch {
		case !ok:
			result.OnlyInFirst = append(result.OnlyInFirst, id)
		case recA != recB:
			result.Different = append(result.Different, id)
		}
	}
	for id := range b {
		if _, ok := a[id]; !ok {
			result.OnlyInSecond = append(result.OnlyInSecond, id)
		}
	}

	slices.Sort(result.OnlyInFirst)
	slices.Sort(result.OnlyInSecond)
	slices.Sort(result.Different)
	return result
}

func indexByID(records []record.Record) map[uint64]record.Record {
	index := make(map[uint64]record.Record, len(records))
	for _, rec := range records {
		index[rec.ID] = rec
	}
	return index
}
