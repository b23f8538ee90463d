package engine

import (
	"encoding/binary"
	"slices"

	"github.com/zeebo/xxh3"
)

// visitedSet records explored search states.
//
// A state is the pair (depth, multiset of team loads). Loads are sorted
// before encoding so permutations of interchangeable teams share a key.
// Keys are bucketed by their xxh3 hash and compared byte-for-byte inside a
// bucket, so a hash collision never prunes an unexplored state.
//
// Once limit states are recorded the set stops growing: new states are
// reported as unseen and not stored, so pruning stays sound while memory
// stays bounded.
type visitedSet struct {
	buckets map[uint64][]string
	size    int
	limit   int // 0 = unlimited

	// scratch buffers reused across inserts
	sorted []int
	buf    []byte
}

func newVisitedSet(teamCount, limit int) *visitedSet {
	return &visitedSet{
		buckets: make(map[uint64][]string),
		limit:   max(limit, 0),
		sorted:  make([]int, teamCount),
		buf:     make([]byte, 0, (teamCount+1)*binary.MaxVarintLen64),
	}
}

// insert adds the state and reports whether it was new.
func (v *visitedSet) insert(depth int, loads []int) bool {
	copy(v.sorted, loads)
	slices.Sort(v.sorted)

	v.buf = binary.AppendUvarint(v.buf[:0], uint64(depth)) //nolint:gosec // depth is a slice index
	for _, l := range v.sorted {
		v.buf = binary.AppendUvarint(v.buf, uint64(l)) //nolint:gosec // loads are non-negative
	}

	h := xxh3.Hash(v.buf)
	bucket := v.buckets[h]
	for _, key := range bucket {
		if key == string(v.buf) {
			return false
		}
	}

	if v.full() {
		return true
	}

	v.buckets[h] = append(bucket, string(v.buf))
	v.size++

	return true
}

// full reports whether the state ceiling has been reached.
func (v *visitedSet) full() bool {
	return v.limit > 0 && v.size >= v.limit
}

// len returns the number of distinct states recorded.
func (v *visitedSet) len() int {
	return v.size
}
