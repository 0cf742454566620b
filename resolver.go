// Copyright 2025 Robert Snedegar
//
// Licensed under the Apache License, Version 2.0 (the License);
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an AS IS BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lazysort

import "sort"

// searchBound returns the smallest buffer position p in [0, n] such that
// cond holds for buf[p] (and, by the monotonicity cond must respect
// under the active order, for every position after p as well). It is
// the shared machinery behind lowerBound and upperBound: the Range
// Resolver's binary search over the Pivot Index, augmented with
// on-demand partitioning of whichever gap the search narrows into, per
// spec §4.3's count/index lowering.
//
// cond must be monotonic over the active order: false for every element
// before the boundary, true for every element at or after it. Callers
// build cond from buf.cmp so that reversal is already accounted for.
func searchBound[T any, K any](buf *buffer[T, K], idx *pivotIndex, cond func(K) bool) int {
	n := buf.len()

	entryCond := func(i int) bool {
		e := idx.entries[i]
		switch e.pos {
		case -1:
			return false
		case n:
			return true
		default:
			return cond(buf.keys[e.pos])
		}
	}

	i := sort.Search(len(idx.entries), entryCond)

	for {
		l := idx.entries[i-1]
		r := idx.entries[i]

		if r.pos == l.pos+1 {
			return r.pos
		}

		p, sortedGap := partition(buf, l.pos+1, r.pos)
		if sortedGap {
			idx.insert(r.pos, true)
			lo, hi := l.pos+1, r.pos
			off := sort.Search(hi-lo, func(k int) bool { return cond(buf.keys[lo+k]) })
			return lo + off
		}

		idx.insert(p, false)
		pIdx, _ := idx.locate(p)
		if cond(buf.keys[p]) {
			i = pIdx
		} else {
			i = pIdx + 1
		}
	}
}

// lowerBound returns the leftmost buffer position whose element is
// greater than or equal to xk under the active order, or n (buf.len())
// if every element sorts before xk.
func lowerBound[T any, K any](buf *buffer[T, K], idx *pivotIndex, xk K) int {
	return searchBound(buf, idx, func(k K) bool { return buf.cmp(k, xk) >= 0 })
}

// upperBound returns the leftmost buffer position whose element sorts
// strictly after xk under the active order, or n if no such element
// exists.
func upperBound[T any, K any](buf *buffer[T, K], idx *pivotIndex, xk K) int {
	return searchBound(buf, idx, func(k K) bool { return buf.cmp(k, xk) > 0 })
}

// indexOf implements spec §4.3's index(x) lowering: the minimum position
// a fully sorted buffer would place xk at, or errNotFound if xk is
// absent. lowerBound(xk) already lands exactly there when xk is present,
// because every Partitioner split used along the way keeps strictly
// lesser elements strictly to the left of the settled pivot (see
// partition's Lomuto-style split in partitioner.go): nothing before the
// returned position can compare equal to xk.
func indexOf[T any, K any](buf *buffer[T, K], idx *pivotIndex, xk K) (int, error) {
	pos := lowerBound(buf, idx, xk)
	if pos >= buf.len() || buf.cmp(buf.keys[pos], xk) != 0 {
		return 0, errNotFound
	}
	return pos, nil
}

// countOf implements spec §4.3's count(x) lowering: the number of
// elements equal to xk, found by bracketing the run of equal elements
// with one lowerBound and one upperBound search.
func countOf[T any, K any](buf *buffer[T, K], idx *pivotIndex, xk K) int {
	lo := lowerBound(buf, idx, xk)
	if lo >= buf.len() || buf.cmp(buf.keys[lo], xk) != 0 {
		return 0
	}
	hi := upperBound(buf, idx, xk)
	return hi - lo
}

// between implements spec §4.3's between(lo, hi) lowering: set-equivalent
// enumeration of every element whose key falls in [lo, hi] under the
// active order. Order of the result is not guaranteed, matching spec's
// "set-equivalence only is required".
func between[T any, K any](buf *buffer[T, K], idx *pivotIndex, lo, hi K) []T {
	start := lowerBound(buf, idx, lo)
	end := upperBound(buf, idx, hi)
	if end <= start {
		return []T{}
	}

	out := make([]T, end-start)
	copy(out, buf.items[start:end])
	return out
}

// materializeAt ensures buf[pos] holds its final order statistic, doing
// no partitioning work if pos is already covered by a settled pivot or a
// sorted-gap flag. This is the same single-position check the Cursor
// performs on every advance.
func materializeAt[T any, K any](buf *buffer[T, K], idx *pivotIndex, pos int) {
	r := idx.firstAfter(pos)
	if !r.sortedLeftGap && !idx.resolved(pos) {
		resolve(buf, idx, pos)
	}
}

// contiguousSlice implements spec §4.3's step-1 positional slice
// lowering: resolve the two endpoints first to narrow the bracket around
// [a, b), then walk the interior one position at a time. Interior
// positions already covered by a sorted-gap flag - the common case once
// the endpoints are settled - cost a single pivot-index lookup each; only
// positions outside any sorted gap fall through to resolve.
func contiguousSlice[T any, K any](buf *buffer[T, K], idx *pivotIndex, a, b int) []T {
	if b <= a {
		return []T{}
	}

	resolve(buf, idx, a)
	resolve(buf, idx, b-1)
	for pos := a; pos < b; pos++ {
		materializeAt(buf, idx, pos)
	}

	out := make([]T, b-a)
	copy(out, buf.items[a:b])
	return out
}

// stridedSlice implements spec §4.3's step != 1 positional slice
// lowering: each visited position is resolved individually, since a
// strided walk cannot benefit from the step-1 case's sorted-gap
// shortcut (the positions it skips are never materialized).
func stridedSlice[T any, K any](buf *buffer[T, K], idx *pivotIndex, a, b, step int) []T {
	n := 0
	if step > 0 {
		for p := a; p < b; p += step {
			n++
		}
	} else {
		for p := a; p > b; p += step {
			n++
		}
	}

	out := make([]T, 0, n)
	if step > 0 {
		for p := a; p < b; p += step {
			resolve(buf, idx, p)
			out = append(out, buf.items[p])
		}
	} else {
		for p := a; p > b; p += step {
			resolve(buf, idx, p)
			out = append(out, buf.items[p])
		}
	}
	return out
}
