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

// normalizeSlice applies spec §6's slice-normalization rules to a triple
// of possibly-absent slice components. A nil pointer means "absent" -
// the Go stand-in for Python's omitted slice component.
func normalizeSlice(n int, a, b, step *int) (start, stop, stp int, err error) {
	if step == nil {
		stp = 1
	} else {
		stp = *step
	}
	if stp == 0 {
		return 0, 0, 0, newValueError("slice step cannot be zero")
	}

	if stp > 0 {
		start = clamp(resolveComponent(a, 0, n), 0, n)
		stop = clamp(resolveComponent(b, n, n), 0, n)
		return start, stop, stp, nil
	}

	start = clamp(resolveComponent(a, n-1, n), -1, n-1)
	stop = clamp(resolveComponent(b, -1, n), -1, n-1)
	return start, stop, stp, nil
}

// resolveComponent applies a single slice component's default and
// negative-wraps-once rule. def is the value used when v is nil.
func resolveComponent(v *int, def, n int) int {
	if v == nil {
		return def
	}
	c := *v
	if c < 0 {
		c += n
	}
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalizeIndex applies spec §6's positional-index normalization: a
// negative index wraps once by adding n. It does not bounds-check the
// result; callers that need IndexError semantics (At) check the range
// themselves so they can report the pre-wrap index in the error.
func normalizeIndex(k, n int) int {
	if k < 0 {
		return k + n
	}
	return k
}
