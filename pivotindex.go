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

// pivotEntry records a single settled order-statistic position and
// whether the open gap immediately to its left is already fully sorted.
type pivotEntry struct {
	pos           int
	sortedLeftGap bool
}

// pivotIndex is the ordered record of buffer positions already known to
// hold their final order statistic (spec §3's Pivot Index P). It is kept
// as a flat slice ordered by pos and searched with binary search, per the
// "Pivot-Index representation" design note: expected size is
// O(queries * log n), so a sorted slice beats the bookkeeping of a tree
// for the sizes this package targets.
//
// The two sentinels (-1, false) and (N, false) are always present and are
// never removed; every other entry is inserted once by the Selector or
// the Range Resolver and is never removed. The only in-place change to an
// entry, sentinels included, is insert upgrading its sortedLeftGap from
// false to true once the gap to its left has been fully sorted.
type pivotIndex struct {
	entries []pivotEntry

	// trace, when non-nil, is invoked once per new entry this index
	// records and once per sortedLeftGap upgrade of an existing entry:
	// "settle" for a plain Selector/Partitioner pivot, "sort" for an
	// entry recorded or upgraded with a fully sorted left gap. It is the hook
	// behind the Trace construction option and defaults to nil (no-op)
	// so untraced handles pay nothing for it.
	trace func(event string, pos int)
}

func newPivotIndex(n int, trace func(event string, pos int)) *pivotIndex {
	return &pivotIndex{
		entries: []pivotEntry{
			{pos: -1, sortedLeftGap: false},
			{pos: n, sortedLeftGap: false},
		},
		trace: trace,
	}
}

// locate returns the index into p.entries of the first entry whose pos is
// >= k, and whether that entry's pos is exactly k.
func (p *pivotIndex) locate(k int) (idx int, exact bool) {
	idx = sort.Search(len(p.entries), func(i int) bool {
		return p.entries[i].pos >= k
	})
	return idx, idx < len(p.entries) && p.entries[idx].pos == k
}

// resolved reports whether position k already has a settled entry.
func (p *pivotIndex) resolved(k int) bool {
	_, exact := p.locate(k)
	return exact
}

// bracket returns the two adjacent entries (L, R) such that
// L.pos < k < R.pos. It panics if k is already resolved; callers must
// check resolved(k) first, as the Selector's resolve does.
func (p *pivotIndex) bracket(k int) (l, r pivotEntry, lIdx, rIdx int) {
	idx, exact := p.locate(k)
	if exact {
		panic("lazysort: bracket called on an already-resolved position")
	}
	return p.entries[idx-1], p.entries[idx], idx - 1, idx
}

// insert records a newly settled position pos, with sortedLeftGap true
// iff the gap immediately to its left is now known to be fully sorted.
// insert maintains I3 (monotone order) by placing the new entry between
// its bracketing neighbors.
func (p *pivotIndex) insert(pos int, sortedLeftGap bool) {
	idx, exact := p.locate(pos)
	if exact {
		// Idempotent: resolving the same position twice is a no-op. The
		// one exception is the sortedLeftGap flag, which is upgraded
		// false->true (never back): after a small-range sort of the gap to
		// pos's left, the Selector and the Range Resolver call insert on
		// the gap's existing right endpoint to record it.
		if sortedLeftGap && !p.entries[idx].sortedLeftGap {
			p.entries[idx].sortedLeftGap = true
			p.traceEvent("sort", pos)
		}
		return
	}

	p.entries = append(p.entries, pivotEntry{})
	copy(p.entries[idx+1:], p.entries[idx:])
	p.entries[idx] = pivotEntry{pos: pos, sortedLeftGap: sortedLeftGap}

	if sortedLeftGap {
		p.traceEvent("sort", pos)
	} else {
		p.traceEvent("settle", pos)
	}
}

func (p *pivotIndex) traceEvent(event string, pos int) {
	if p.trace != nil {
		p.trace(event, pos)
	}
}

// firstAfter returns the entry with the smallest pos strictly greater
// than next, used by the Cursor to find its current right boundary.
func (p *pivotIndex) firstAfter(next int) pivotEntry {
	idx := sort.Search(len(p.entries), func(i int) bool {
		return p.entries[i].pos > next
	})
	return p.entries[idx]
}
