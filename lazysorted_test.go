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

import (
	"sort"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
)

func TestNewRejectsNilKey(t *testing.T) {
	_, err := New[int, int](nil, nil)
	if _, ok := err.(*TypeError); !ok {
		t.Fatalf("New with a nil key returned error %v (%T), want *TypeError", err, err)
	}
}

func TestNewDoesNotMutateCallerSlice(t *testing.T) {
	in := []int{3, 1, 2}
	orig := append([]int(nil), in...)

	h := NewOrdered(in)
	for i := 0; i < h.Len(); i++ {
		h.At(i)
	}

	if !gocmp.Equal(in, orig) {
		t.Errorf("New mutated the caller's input slice: got %v, want %v", in, orig)
	}
}

func TestAtMatchesFullSort(t *testing.T) {
	in := []int{38, 27, 43, 3, 9, 82, 10}
	want := append([]int(nil), in...)
	sort.Ints(want)

	h := NewOrdered(append([]int(nil), in...))
	for k, w := range want {
		got, err := h.At(k)
		if err != nil {
			t.Fatalf("At(%d) returned error %v", k, err)
		}
		if got != w {
			t.Errorf("At(%d) = %d, want %d", k, got, w)
		}
	}
}

func TestAtNegativeIndexWrapsOnce(t *testing.T) {
	in := []int{5, 1, 4, 2, 3}
	want := append([]int(nil), in...)
	sort.Ints(want)

	h := NewOrdered(append([]int(nil), in...))
	got, err := h.At(-1)
	if err != nil {
		t.Fatalf("At(-1) returned error %v", err)
	}
	if got != want[len(want)-1] {
		t.Errorf("At(-1) = %d, want %d", got, want[len(want)-1])
	}
}

func TestAtOutOfRangeReturnsIndexError(t *testing.T) {
	h := NewOrdered([]int{1, 2, 3})

	tests := []int{3, -4, 100, -100}
	for _, k := range tests {
		_, err := h.At(k)
		if _, ok := err.(*IndexError); !ok {
			t.Errorf("At(%d) error = %v (%T), want *IndexError", k, err, err)
		}
	}
}

func TestReverseOption(t *testing.T) {
	in := []int{3, 1, 4, 1, 5, 9, 2, 6}
	want := append([]int(nil), in...)
	sort.Sort(sort.Reverse(sort.IntSlice(want)))

	h := NewOrdered(append([]int(nil), in...), Reverse())
	for k, w := range want {
		got, err := h.At(k)
		if err != nil {
			t.Fatalf("At(%d) returned error %v", k, err)
		}
		if got != w {
			t.Errorf("reverse At(%d) = %d, want %d", k, got, w)
		}
	}
}

func TestSliceContiguous(t *testing.T) {
	in := []int{9, 2, 7, 1, 5, 3, 8, 4, 6, 0}
	want := append([]int(nil), in...)
	sort.Ints(want)

	h := NewOrdered(append([]int(nil), in...))
	a, b := 2, 7
	got, err := h.Slice(&a, &b, nil)
	if err != nil {
		t.Fatalf("Slice(2, 7, nil) returned error %v", err)
	}
	if !gocmp.Equal(got, want[2:7]) {
		t.Errorf("Slice(2, 7, nil) = %v, want %v", got, want[2:7])
	}
}

func TestSliceFullDefaultsViaNilComponents(t *testing.T) {
	in := []int{4, 2, 9, 1}
	want := append([]int(nil), in...)
	sort.Ints(want)

	h := NewOrdered(append([]int(nil), in...))
	got, err := h.Slice(nil, nil, nil)
	if err != nil {
		t.Fatalf("Slice(nil, nil, nil) returned error %v", err)
	}
	if !gocmp.Equal(got, want) {
		t.Errorf("Slice(nil, nil, nil) = %v, want %v", got, want)
	}
}

func TestSliceZeroStepIsValueError(t *testing.T) {
	h := NewOrdered([]int{1, 2, 3})
	step := 0
	_, err := h.Slice(nil, nil, &step)
	if _, ok := err.(*ValueError); !ok {
		t.Errorf("Slice with step 0 returned error %v (%T), want *ValueError", err, err)
	}
}

func TestContainsIndexCount(t *testing.T) {
	in := []int{5, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	h := NewOrdered(append([]int(nil), in...))

	if !h.Contains(5) {
		t.Errorf("Contains(5) = false, want true")
	}
	if h.Contains(100) {
		t.Errorf("Contains(100) = true, want false")
	}

	idx, err := h.Index(1)
	if err != nil {
		t.Fatalf("Index(1) returned error %v", err)
	}
	sorted := append([]int(nil), in...)
	sort.Ints(sorted)
	wantIdx := sort.SearchInts(sorted, 1)
	if idx != wantIdx {
		t.Errorf("Index(1) = %d, want %d", idx, wantIdx)
	}

	if _, err := h.Index(100); err == nil {
		t.Errorf("Index(100) returned nil error, want *ValueError")
	} else if _, ok := err.(*ValueError); !ok {
		t.Errorf("Index(100) error = %v (%T), want *ValueError", err, err)
	}

	if got := h.Count(5); got != 3 {
		t.Errorf("Count(5) = %d, want 3", got)
	}
	if got := h.Count(100); got != 0 {
		t.Errorf("Count(100) = %d, want 0", got)
	}
}

func TestBetweenHandle(t *testing.T) {
	in := []int{5, 1, 9, 3, 7, 2, 8, 4, 6}
	h := NewOrdered(append([]int(nil), in...))

	got := h.Between(3, 7)
	sort.Ints(got)
	want := []int{3, 4, 5, 6, 7}
	if !gocmp.Equal(got, want) {
		t.Errorf("Between(3, 7) (sorted) = %v, want %v", got, want)
	}
}

type person struct {
	name string
	age  int
}

func TestNewWithCustomKey(t *testing.T) {
	people := []person{
		{"carol", 35}, {"alice", 30}, {"bob", 25}, {"dave", 30},
	}

	h, err := New(people, func(p person) int { return p.age })
	if err != nil {
		t.Fatalf("New returned error %v", err)
	}

	first, err := h.At(0)
	if err != nil {
		t.Fatalf("At(0) returned error %v", err)
	}
	if first.age != 25 {
		t.Errorf("At(0).age = %d, want 25", first.age)
	}

	if got := h.Count(person{age: 30}); got != 2 {
		t.Errorf("Count(age=30) = %d, want 2", got)
	}
}

func TestTraceOptionObservesSettling(t *testing.T) {
	var fired int
	in := make([]int, 200)
	for i := range in {
		in[i] = (i*31 + 7) % 200
	}

	h, err := New(in, identity[int], Trace(func(event string, pos int) { fired++ }))
	if err != nil {
		t.Fatalf("New returned error %v", err)
	}

	if _, err := h.At(100); err != nil {
		t.Fatalf("At(100) returned error %v", err)
	}
	if fired == 0 {
		t.Errorf("Trace callback never fired during At on a 200-element handle")
	}
}
