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

import "math/rand/v2"

// sortThresh is the small-span cutoff below which the Partitioner fully
// sorts the span instead of partitioning it. Spec allows any value in
// 5-16; this picks a value between the stub's SORT_THRESH = 5 and the
// generous end of that range.
const sortThresh = 12

// partition rearranges buf[lo:hi] in place around a chosen pivot so that
// buf[lo:p] is strictly less than buf[p] and buf[p] is less than or equal
// to everything in buf[p+1:hi], under buf's active comparison direction.
// When hi-lo <= sortThresh, it instead fully sorts buf[lo:hi] and reports
// sortedGap = true; the pivot position returned in that case is
// meaningless and must not be used by the caller.
//
// Pivot selection combines median-of-three (grounded in the standard
// library's historical quicksort, see doPivot in Go's old sort package)
// with a randomized middle candidate, so that no fixed adversarial input
// can force worst-case partitioning on every call.
func partition[T any, K any](buf *buffer[T, K], lo, hi int) (pivotPos int, sortedGap bool) {
	if hi-lo <= sortThresh {
		buf.insertionSort(lo, hi)
		return 0, true
	}

	mid := lo + rand.IntN(hi-lo-2) + 1 // a random index strictly inside (lo, hi-1)
	pivotIdx := medianOfThreeIndex(buf, lo, mid, hi-1)
	buf.swap(pivotIdx, hi-1)

	store := lo
	for i := lo; i < hi-1; i++ {
		if buf.less(i, hi-1) {
			buf.swap(i, store)
			store++
		}
	}
	buf.swap(store, hi-1)

	return store, false
}

// medianOfThreeIndex returns whichever of a, m, c holds the median value,
// without mutating the buffer. Ties may break either way; spec requires
// no particular stability from the Partitioner.
func medianOfThreeIndex[T any, K any](buf *buffer[T, K], a, m, c int) int {
	if buf.less(m, a) {
		a, m = m, a
	}
	if buf.less(c, m) {
		m, c = c, m
	}
	if buf.less(m, a) {
		a, m = m, a
	}
	return m
}
