// Copyright 2025 The AxisRange Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ranges

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/axisrange/ranges/internal/num"
)

// SearchNearest returns the 1-based index of the element of seq closest
// to x. seq must be sorted in ascending order. The index of the first
// element ≥ x is taken as the candidate and moved down one position only
// when the previous element is strictly closer, so runs of equal
// elements resolve to their first index when x ≤ them and to their last
// index when x ≥ them.
func SearchNearest[T Number](seq []T, x T) int {
	idx := sort.Search(len(seq), func(i int) bool { return seq[i] >= x }) + 1
	// seq[idx-1] ≥ x and seq[idx-2] < x, so both differences below are
	// non-negative even for unsigned element types.
	if idx > 1 && (idx > len(seq) || seq[idx-1]-x > x-seq[idx-2]) {
		idx--
	}
	return idx
}

// UnsafeSearchNearest is SearchNearest over an arithmetic progression,
// built on the closed-form first-index search and direct element access.
// Element access is total here, so no bounds guard is needed: it
// tolerates x outside the represented span and may return an index
// outside [1, r.Len].
func UnsafeSearchNearest[T constraints.Float](r Range[T], x T) (int, error) {
	idx, err := UnsafeSearchFirst(r, x)
	if err != nil {
		return 0, err
	}
	// At(idx) ≥ x and At(idx-1) < x per the first-index contract; step
	// down only when the element below is strictly closer.
	if num.Abs(r.At(idx)-x) > num.Abs(x-r.At(idx-1)) {
		idx--
	}
	return idx, nil
}
