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
	"math"

	"golang.org/x/exp/constraints"

	"github.com/axisrange/ranges/internal/num"
)

// The closed-form searches come in three explicit specializations rather
// than one generic routine: floating-point progressions need a
// round-then-nudge discipline to absorb rounding error, integer
// progressions admit exact floor-division identities, and unsigned
// queries against signed progressions must widen before subtracting.
// Which one applies is a property of the progression's declared types, so
// the selection is made by the caller, once, by name.

// UnsafeSearchFirst returns the smallest 1-based index whose element is
// ≥ x. The index is not clamped to [1, r.Len]; for x beyond the
// represented span the result extrapolates past either end.
func UnsafeSearchFirst[T constraints.Float](r Range[T], x T) (int, error) {
	if r.Step == 0 {
		return 0, ErrInvalidStep
	}
	n := int(math.Round(float64((x-r.Start)/r.Step))) + 1
	// Rounding the real-valued index can land one position short.
	if x > r.At(n) {
		n++
	}
	return n, nil
}

// UnsafeSearchLast returns the largest 1-based index whose element is
// ≤ x, without clamping.
func UnsafeSearchLast[T constraints.Float](r Range[T], x T) (int, error) {
	if r.Step == 0 {
		return 0, ErrInvalidStep
	}
	n := int(math.Round(float64((x-r.Start)/r.Step))) + 1
	if x < r.At(n) {
		n--
	}
	return n, nil
}

// UnsafeSearchFirstInt is the integer specialization of
// UnsafeSearchFirst. The query need not share the progression's type: a
// fractional query is reduced to its ceiling first, after which floored
// division makes the result exact with no correction step, agreeing with
// the floating-point specialization wherever both apply.
func UnsafeSearchFirstInt[T constraints.Signed, Q Number](r Range[T], x Q) (int, error) {
	if r.Step == 0 {
		return 0, ErrInvalidStep
	}
	return -int(num.FloorDiv(r.Start-ceilInt[T](x), r.Step)) + 1, nil
}

// UnsafeSearchLastInt is the integer specialization of UnsafeSearchLast.
// A fractional query is reduced to its floor first.
func UnsafeSearchLastInt[T constraints.Signed, Q Number](r Range[T], x Q) (int, error) {
	if r.Step == 0 {
		return 0, ErrInvalidStep
	}
	return int(num.FloorDiv(floorInt[T](x)-r.Start, r.Step)) + 1, nil
}

// floorInt returns ⌊x⌋ in the progression's index type. Conversion to T
// truncates toward zero, so a negative fractional query needs one step
// down; an integer query converts exactly and is left untouched.
func floorInt[T constraints.Signed, Q Number](x Q) T {
	t := T(x)
	if Q(t) > x {
		t--
	}
	return t
}

// ceilInt returns ⌈x⌉ in the progression's index type.
func ceilInt[T constraints.Signed, Q Number](x Q) T {
	t := T(x)
	if Q(t) < x {
		t++
	}
	return t
}

// UnsafeSearchFirstUint searches a signed integer progression with an
// unsigned query. The subtraction is performed in int64 so that
// r.Start - x cannot underflow the unsigned domain. Queries above
// math.MaxInt64 are outside the supported index range.
func UnsafeSearchFirstUint[T constraints.Signed, U constraints.Unsigned](r Range[T], x U) (int, error) {
	if r.Step == 0 {
		return 0, ErrInvalidStep
	}
	return -int(num.FloorDiv(int64(r.Start)-int64(x), int64(r.Step))) + 1, nil
}

// UnsafeSearchLastUint is the unsigned-query counterpart of
// UnsafeSearchLastInt.
func UnsafeSearchLastUint[T constraints.Signed, U constraints.Unsigned](r Range[T], x U) (int, error) {
	if r.Step == 0 {
		return 0, ErrInvalidStep
	}
	return int(num.FloorDiv(int64(x)-int64(r.Start), int64(r.Step))) + 1, nil
}

// SearchFirst is UnsafeSearchFirst with the result clamped to the valid
// insertion range [1, r.Len+1].
func SearchFirst[T constraints.Float](r Range[T], x T) (int, error) {
	n, err := UnsafeSearchFirst(r, x)
	if err != nil {
		return 0, err
	}
	return clamp(n, 1, r.Len+1), nil
}

// SearchLast is UnsafeSearchLast with the result clamped to [0, r.Len].
func SearchLast[T constraints.Float](r Range[T], x T) (int, error) {
	n, err := UnsafeSearchLast(r, x)
	if err != nil {
		return 0, err
	}
	return clamp(n, 0, r.Len), nil
}

// SearchFirstInt is UnsafeSearchFirstInt clamped to [1, r.Len+1].
func SearchFirstInt[T constraints.Signed, Q Number](r Range[T], x Q) (int, error) {
	n, err := UnsafeSearchFirstInt(r, x)
	if err != nil {
		return 0, err
	}
	return clamp(n, 1, r.Len+1), nil
}

// SearchLastInt is UnsafeSearchLastInt clamped to [0, r.Len].
func SearchLastInt[T constraints.Signed, Q Number](r Range[T], x Q) (int, error) {
	n, err := UnsafeSearchLastInt(r, x)
	if err != nil {
		return 0, err
	}
	return clamp(n, 0, r.Len), nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
