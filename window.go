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

import "golang.org/x/exp/constraints"

// UnsafeWindow maps a closed interval of coordinate values to the span of
// indices whose elements fall inside it: first index ≥ iv.Left through
// last index ≤ iv.Right. The span is not clamped and may extend outside
// [1, r.Len].
func UnsafeWindow[T constraints.Float](r Range[T], iv Interval[T]) (Span, error) {
	first, err := UnsafeSearchFirst(r, iv.Left)
	if err != nil {
		return Span{}, err
	}
	last, err := UnsafeSearchLast(r, iv.Right)
	if err != nil {
		return Span{}, err
	}
	return Span{First: first, Last: last}, nil
}

// UnsafeWindowInt is UnsafeWindow for integer progressions, built on the
// exact integer searches. The interval may carry fractional endpoints.
func UnsafeWindowInt[T constraints.Signed, Q Number](r Range[T], iv Interval[Q]) (Span, error) {
	first, err := UnsafeSearchFirstInt(r, iv.Left)
	if err != nil {
		return Span{}, err
	}
	last, err := UnsafeSearchLastInt(r, iv.Right)
	if err != nil {
		return Span{}, err
	}
	return Span{First: first, Last: last}, nil
}

// Window is UnsafeWindow with both ends clamped to the valid index range.
func Window[T constraints.Float](r Range[T], iv Interval[T]) (Span, error) {
	first, err := SearchFirst(r, iv.Left)
	if err != nil {
		return Span{}, err
	}
	last, err := SearchLast(r, iv.Right)
	if err != nil {
		return Span{}, err
	}
	return Span{First: first, Last: last}, nil
}

// WindowInt is UnsafeWindowInt with both ends clamped to the valid index
// range.
func WindowInt[T constraints.Signed, Q Number](r Range[T], iv Interval[Q]) (Span, error) {
	first, err := SearchFirstInt(r, iv.Left)
	if err != nil {
		return Span{}, err
	}
	last, err := SearchLastInt(r, iv.Right)
	if err != nil {
		return Span{}, err
	}
	return Span{First: first, Last: last}, nil
}

// WindowValues returns the clamped window together with the progression
// of coordinate values at those indices.
func WindowValues[T constraints.Float](r Range[T], iv Interval[T]) (Span, Range[T], error) {
	sp, err := Window(r, iv)
	if err != nil {
		return Span{}, Range[T]{}, err
	}
	return sp, Slice(r, sp.Range()), nil
}

// RelativeWindow treats the interval endpoints as displacements from the
// progression's reference point rather than absolute positions. The
// returned span counts whole steps from zero (so its indices are relative
// offsets, not 1-based positions), and the returned progression holds the
// corresponding multiples of the step: vals.At(k+1) == idx*step for the
// k'th offset idx in the span.
func RelativeWindow[T constraints.Float](r Range[T], iv Interval[T]) (Span, Range[T], error) {
	if r.Step == 0 {
		return Span{}, Range[T]{}, ErrInvalidStep
	}
	step := float64(r.Step)
	idx := Span{
		First: Nsteps(float64(iv.Left), step),
		Last:  Nsteps(float64(iv.Right), step),
	}
	vals := Range[T]{
		Start: T(float64(idx.First) * step),
		Step:  r.Step,
		Len:   idx.Len(),
	}
	return idx, vals, nil
}
