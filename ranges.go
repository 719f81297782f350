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

// Package ranges provides constant-time sorted-position lookup over
// arithmetic progressions.
//
// A progression is described by a start value, a nonzero step, and a
// length; its elements are never materialized. Because the element at any
// index is a closed-form expression of the index, the usual binary search
// over a sorted slice collapses to a division and a correction step. The
// "unsafe" family of functions deliberately skips bounds checks so that
// callers can extrapolate beyond the represented span.
//
// Indices are 1-based: the element at index i is Start + (i-1)*Step. An
// insertion search may therefore report index 0 (before the first
// element) or Len+1 (after the last), and the unsafe variants may report
// any integer at all.
package ranges

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvalidStep is returned by every search that would otherwise divide
// by a zero step.
var ErrInvalidStep = errors.New("ranges: step must be nonzero")

// Number is the union of element types a Range may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is an arithmetic progression of Len elements starting at Start
// and advancing by Step. The zero value is an empty progression but has
// an invalid (zero) step.
type Range[T Number] struct {
	Start T
	Step  T
	Len   int
}

// At returns the element at the 1-based index i, computed directly from
// the progression parameters. No bounds check is performed: i may lie
// anywhere on the integer line, and the result is the extrapolated value
// Start + (i-1)*Step.
func (r Range[T]) At(i int) T {
	return r.Start + T(i-1)*r.Step
}

// Slice returns the progression of r's elements at the indices described
// by idx, itself a progression of 1-based indices. No bounds check is
// performed, so idx may select extrapolated elements.
func Slice[T Number](r Range[T], idx Range[int]) Range[T] {
	return Range[T]{
		Start: r.At(idx.Start),
		Step:  r.Step * T(idx.Step),
		Len:   idx.Len,
	}
}

// Interval is a closed interval of coordinate values. Left ≤ Right is the
// caller's responsibility; a reversed interval yields an empty window.
type Interval[T Number] struct {
	Left  T
	Right T
}

// Span is a contiguous run of 1-based indices, inclusive on both ends.
// It is empty when Last < First. Spans produced by the unsafe searches
// may extend outside a progression's valid index range.
type Span struct {
	First int
	Last  int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	if s.Last < s.First {
		return 0
	}
	return s.Last - s.First + 1
}

// Range converts the span to a unit-step progression of indices, suitable
// for Slice.
func (s Span) Range() Range[int] {
	return Range[int]{Start: s.First, Step: 1, Len: s.Len()}
}
