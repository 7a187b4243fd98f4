package reduce

import (
	"fmt"
	"sort"
)

// FromBlockLengths builds a SparseReduce that aggregates contiguous runs of
// the given lengths: run i spans input rows [Σ lengths[:i], Σ lengths[:i+1])
// and folds into one output row. A zero length yields an all-zero output row.
//
// Returns ErrEmptyInput when lengths is empty or the total length is zero,
// ErrBadIndex on a negative length.
func FromBlockLengths(lengths []int, average bool) (*SparseReduce, error) {
	if len(lengths) == 0 {
		return nil, ErrEmptyInput
	}

	total := 0
	blocks := make([]IndexBlock, 0, len(lengths))
	for _, l := range lengths {
		if l < 0 {
			return nil, fmt.Errorf("%w: run length %d", ErrBadIndex, l)
		}
		run := make([]int, l)
		for i := range run {
			run[i] = total + i
		}
		blocks = append(blocks, IndexBlock{run})
		total += l
	}
	if total == 0 {
		return nil, ErrEmptyInput
	}

	return NewSparseReduceMax(blocks, average, total-1)
}

// FromUnique clusters the equal values of a 1-D slice and builds a
// SparseReduce that sums (or averages) each value's occurrences. Unique
// values sharing the same multiplicity land in a single index block (one
// row per unique value), so a single dense pass handles all equally-sized
// groups without per-group branching.
//
// ⚠ Output order contract: output rows follow multiplicity-then-value
// order — unique values sorted by ascending occurrence count, ties by
// ascending value — NOT the order of appearance in values. Use the returned
// unique slice to recover alignment; downstream code depends on this order.
//
// Returns the reordered unique values, their matching counts, and the
// reduction. Returns ErrEmptyInput for an empty slice.
func FromUnique(values []float64, average bool) (unique []float64, counts []int, r *SparseReduce, err error) {
	if len(values) == 0 {
		return nil, nil, nil, ErrEmptyInput
	}

	// Cluster occurrence indices per distinct value.
	byValue := make(map[float64][]int, len(values))
	for i, v := range values {
		byValue[v] = append(byValue[v], i)
	}
	unique = make([]float64, 0, len(byValue))
	for v := range byValue {
		unique = append(unique, v)
	}
	sort.Float64s(unique)

	// Reorder by multiplicity, ties keeping ascending value order.
	sort.SliceStable(unique, func(i, j int) bool {
		return len(byValue[unique[i]]) < len(byValue[unique[j]])
	})

	// One block per run of equal multiplicity.
	counts = make([]int, len(unique))
	var blocks []IndexBlock
	var cur IndexBlock
	for i, v := range unique {
		idcs := byValue[v]
		counts[i] = len(idcs)
		if len(cur) > 0 && cur.Width() != len(idcs) {
			blocks = append(blocks, cur)
			cur = nil
		}
		cur = append(cur, idcs)
	}
	blocks = append(blocks, cur)

	r, err = NewSparseReduceMax(blocks, average, len(values)-1)
	if err != nil {
		return nil, nil, nil, err
	}

	return unique, counts, r, nil
}
