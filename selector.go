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

// resolve guarantees that buf[k] holds the k-th order statistic by the
// time it returns, recording every pivot it settles along the way in idx.
// It is idempotent: if k is already settled, it returns immediately.
//
// The descent is written as a loop rather than recursion, per spec
// §4.2's "must be realised as iteration" — a single resolve on an
// adversarial input must not grow the call stack with the input size.
func resolve[T any, K any](buf *buffer[T, K], idx *pivotIndex, k int) {
	for {
		if idx.resolved(k) {
			return
		}

		l, r, _, _ := idx.bracket(k)

		if r.sortedLeftGap {
			// The gap (l.pos, r.pos) is already fully sorted, so every
			// position within it - including k - is its own order
			// statistic.
			idx.insert(k, true)
			return
		}

		p, sortedGap := partition(buf, l.pos+1, r.pos)
		if sortedGap {
			idx.insert(r.pos, true)
			if k == r.pos {
				return
			}
			continue
		}

		idx.insert(p, false)
		switch {
		case k == p:
			return
		case k < p:
			// continue the loop; next bracket call finds (l, p)
		default:
			// continue the loop; next bracket call finds (p, r)
		}
	}
}
