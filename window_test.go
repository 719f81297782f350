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
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func elems[T Number](r Range[T]) []T {
	out := make([]T, r.Len)
	for i := range out {
		out[i] = r.At(i + 1)
	}
	return out
}

func TestUnsafeWindow(t *testing.T) {
	sp, err := UnsafeWindow(base, Interval[float64]{Left: 7, Right: 22})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sp, Span{First: 3, Last: 5}))
	qt.Assert(t, qt.DeepEquals(elems(Slice(base, sp.Range())), []float64{10, 15, 20}))

	// Ends beyond the represented span are not clamped.
	sp, err = UnsafeWindow(base, Interval[float64]{Left: -10, Right: 100})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sp, Span{First: -1, Last: 21}))

	// A reversed interval produces an empty span.
	sp, err = UnsafeWindow(base, Interval[float64]{Left: 22, Right: 7})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sp.Len(), 0))
}

func TestWindow(t *testing.T) {
	sp, err := Window(base, Interval[float64]{Left: 7, Right: 22})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sp, Span{First: 3, Last: 5}))

	sp, err = Window(base, Interval[float64]{Left: -100, Right: 7})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sp, Span{First: 1, Last: 2}))

	sp, err = Window(base, Interval[float64]{Left: -10, Right: 100})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sp, Span{First: 1, Last: 10}))
}

func TestWindowInt(t *testing.T) {
	ri := Range[int]{Start: 0, Step: 5, Len: 10}

	sp, err := UnsafeWindowInt(ri, Interval[int]{Left: 7, Right: 22})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sp, Span{First: 3, Last: 5}))

	// Fractional endpoints over an integer progression.
	sp, err = UnsafeWindowInt(ri, Interval[float64]{Left: 7.5, Right: 22.5})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sp, Span{First: 3, Last: 5}))

	sp, err = WindowInt(ri, Interval[float64]{Left: -100, Right: 7.5})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sp, Span{First: 1, Last: 2}))

	_, err = UnsafeWindowInt(Range[int]{Start: 0, Step: 0, Len: 5}, Interval[int]{Left: 1, Right: 2})
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidStep))
	_, err = WindowInt(Range[int]{Start: 0, Step: 0, Len: 5}, Interval[int]{Left: 1, Right: 2})
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidStep))
}

func TestWindowValues(t *testing.T) {
	sp, vals, err := WindowValues(base, Interval[float64]{Left: 7, Right: 22})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sp, Span{First: 3, Last: 5}))
	qt.Assert(t, qt.Equals(vals, Range[float64]{Start: 10, Step: 5, Len: 3}))
}

func TestRelativeWindow(t *testing.T) {
	idx, vals, err := RelativeWindow(base, Interval[float64]{Left: 7, Right: 22})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(idx, Span{First: 1, Last: 4}))
	qt.Assert(t, qt.Equals(vals, Range[float64]{Start: 5, Step: 5, Len: 4}))

	idx, vals, err = RelativeWindow(base, Interval[float64]{Left: -7, Right: 12})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(idx, Span{First: -1, Last: 2}))
	qt.Assert(t, qt.CmpEquals(elems(vals), []float64{-5, 0, 5, 10}, cmpopts.EquateApprox(0, 1e-12)))

	// Round trip: every value is its offset times the step.
	for k := 0; k < idx.Len(); k++ {
		qt.Assert(t, qt.Equals(vals.At(k+1), float64(idx.First+k)*base.Step))
	}
}

func TestWindowInvalidStep(t *testing.T) {
	r := Range[float64]{Start: 0, Step: 0, Len: 10}
	iv := Interval[float64]{Left: 1, Right: 2}

	_, err := UnsafeWindow(r, iv)
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidStep))
	_, err = Window(r, iv)
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidStep))
	_, _, err = WindowValues(r, iv)
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidStep))
	_, _, err = RelativeWindow(r, iv)
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidStep))
}
