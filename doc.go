// Copyright 2025 Robert Snedegar
//
//   Licensed under the Apache License, Version 2.0 (the License);
//   you may not use this file except in compliance with the License.
//   You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an AS IS BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.

/*
Package lazysort presents a multiset as a virtual sorted sequence, paying
only the partitioning cost needed to answer the queries actually issued.

A LazySorted[T, K] wraps an input collection once, at construction, and
from then on behaves as if the collection were fully sorted under a
caller-supplied key function: positional access, positional slicing,
value-range membership, containment, first-occurrence index, occurrence
counting, and forward iteration through a Cursor are all supported. There
is no reverse Cursor; reverse-order traversal is available through a
negative-step Slice or a handle built with Reverse. None of these
queries sort the whole collection up front. Each one is lowered to a
small number of quickselect-style partitioning steps against one or more
positions, and the positions already settled by earlier queries (the
pivot index) are reused by every later query on the same handle.

Asking for a single element near one end of the collection costs roughly
the work a single quickselect would, not a full sort. Repeated queries
amortize further, since each partitioning step narrows the unresolved
gaps for every query that follows.

	ls := lazysort.NewOrdered([]int{3, 1, 4, 1, 5, 9, 2, 6})
	v, _ := ls.At(2)      // partitions just enough to learn index 2
	n := ls.Len()         // O(1)
	ok := ls.Contains(9)  // localizes 9 without sorting the rest

A LazySorted value is not safe for concurrent use, and none of its
queries are read-only in the usual sense: every one of them, including
ones that look read-only such as At, may mutate the underlying buffer and
pivot index. Cursor is the one form of suspended computation this package
supports; a Cursor may be interleaved with arbitrary queries on the same
handle between advances.
*/
package lazysort
