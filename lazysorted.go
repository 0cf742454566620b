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

import "cmp"

// LazySorted is the opaque handle described in spec §4.5: it composes the
// Buffer, the Pivot Index, the Partitioner/Selector, the Range Resolver,
// and the Cursor, parameterized by an item type T and the comparable key
// type K produced from it.
//
// No LazySorted method is safe for concurrent use on the same handle,
// and none of them are read-only in the conventional sense: every one,
// including At, may partition part of the underlying buffer and record
// new entries in the pivot index.
type LazySorted[T any, K any] struct {
	buf *buffer[T, K]
	idx *pivotIndex
	key func(T) K
}

// Option configures a LazySorted at construction time.
type Option func(*settings)

type settings struct {
	reverse bool
	trace   func(event string, pos int)
}

// Reverse selects descending order: the handle behaves as though indexed
// from the largest key to the smallest. Per spec I5, this is implemented
// by reversing the comparator; every other invariant and operation is
// unaffected.
func Reverse() Option {
	return func(s *settings) { s.reverse = true }
}

// Trace installs a callback invoked once per position the pivot index
// newly records, and once each time an already recorded position is
// marked as closing a fully sorted gap: "settle" for an ordinary
// Selector/Partitioner pivot, "sort" for a position whose left gap is
// fully sorted (as after the small-range fallback). It is opt-in
// instrumentation for observing partition behavior; a handle built
// without it pays nothing for tracing.
func Trace(fn func(event string, pos int)) Option {
	return func(s *settings) { s.trace = fn }
}

// New builds a LazySorted view over items, keyed by key, with options
// such as Reverse applied left to right. It takes ownership of a private
// copy of items; the caller's slice is never mutated.
//
// New returns a *TypeError if key is nil - the Go analogue of spec §6's
// "key must be invocable on each item", since a nil function value is the
// only way Go's static typing lets an invalid key argument reach here at
// all. A non-boolean reverse argument and a missing iterable, the other
// two constructor type errors spec.md names, cannot occur in Go: both
// are ruled out by New's signature before the caller ever holds a value
// to pass in.
func New[T any, K cmp.Ordered](items []T, key func(T) K, opts ...Option) (*LazySorted[T, K], error) {
	if key == nil {
		return nil, newTypeError("key function must not be nil")
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	return newHandle(items, key, cmp.Compare[K], s.reverse, s.trace), nil
}

// NewOrdered is the common-case convenience constructor for item types
// that are already their own key, such as ints or strings: it calls New
// with the identity key function.
func NewOrdered[T cmp.Ordered](items []T, opts ...Option) *LazySorted[T, T] {
	h, _ := New(items, identity[T], opts...)
	return h
}

func identity[T any](v T) T { return v }

func newHandle[T any, K any](items []T, key func(T) K, compare func(a, b K) int, reverse bool, trace func(event string, pos int)) *LazySorted[T, K] {
	cp := make([]T, len(items))
	copy(cp, items)

	return &LazySorted[T, K]{
		buf: newBuffer(cp, key, compare, reverse),
		idx: newPivotIndex(len(cp), trace),
		key: key,
	}
}

// Len returns the number of elements in the sequence - O(1).
func (h *LazySorted[T, K]) Len() int {
	return h.buf.len()
}

// At returns the element at position k in the active order, after
// performing just enough partitioning to settle that position. Negative
// k are normalized by adding Len() once, per spec §6; k outside
// [-Len(), Len()) returns an *IndexError.
func (h *LazySorted[T, K]) At(k int) (T, error) {
	var zero T

	n := h.buf.len()
	orig := k
	k = normalizeIndex(k, n)
	if k < 0 || k >= n {
		return zero, newIndexError("index %d out of range for length %d", orig, n)
	}

	resolve(h.buf, h.idx, k)
	return h.buf.items[k], nil
}

// Slice returns a freshly allocated copy of the elements selected by
// (a, b, step), normalized per spec §6. A nil component uses its
// direction-dependent default; a zero step returns a *ValueError.
func (h *LazySorted[T, K]) Slice(a, b, step *int) ([]T, error) {
	start, stop, stp, err := normalizeSlice(h.buf.len(), a, b, step)
	if err != nil {
		return nil, err
	}

	if stp == 1 {
		return contiguousSlice(h.buf, h.idx, start, stop), nil
	}
	return stridedSlice(h.buf, h.idx, start, stop, stp), nil
}

// Contains reports whether x is present in the sequence, per spec
// §4.3's "contains(x) = index(x) succeeding".
func (h *LazySorted[T, K]) Contains(x T) bool {
	_, err := h.Index(x)
	return err == nil
}

// Index returns the smallest position a fully sorted view of the
// sequence would place x at, or a *ValueError if x is absent.
func (h *LazySorted[T, K]) Index(x T) (int, error) {
	pos, err := indexOf(h.buf, h.idx, h.key(x))
	if err != nil {
		return 0, newValueError("%v is not present in the sequence", x)
	}
	return pos, nil
}

// Count returns the number of elements equal to x under the active key
// and comparator.
func (h *LazySorted[T, K]) Count(x T) int {
	return countOf(h.buf, h.idx, h.key(x))
}

// Between returns every element whose key falls within [lo, hi] under
// the active order, in unspecified order - spec §4.3 requires only
// set-equivalence for this operation, not a particular ordering of the
// result.
func (h *LazySorted[T, K]) Between(lo, hi T) []T {
	return between(h.buf, h.idx, h.key(lo), h.key(hi))
}
