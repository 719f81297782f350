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

// Package twoprec implements double-double arithmetic: a real number is
// carried as an unevaluated sum of two float64 limbs, roughly doubling the
// available precision. The package provides only the operations needed to
// keep a step offset accurate across many steps of an arithmetic
// progression: construction by splitting, multiplication by a scalar, and
// reciprocal.
package twoprec

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// Float is an extended-precision value represented as Hi + Lo, where Hi
// carries the leading bits and Lo the correction, with |Lo| no larger than
// half an ulp of Hi. Values are immutable; every operation returns a new
// Float.
type Float struct {
	Hi float64
	Lo float64
}

// New returns the Float with the given limbs. The caller is responsible
// for the non-overlap of hi and lo.
func New(hi, lo float64) Float {
	return Float{Hi: hi, Lo: lo}
}

// Split decomposes x into two non-overlapping limbs whose sum is exactly
// x. The high limb has its low 27 mantissa bits zeroed, leaving room for
// exact products of high limbs.
func Split(x float64) Float {
	hi := upper(x)
	return Float{Hi: hi, Lo: x - hi}
}

// upper zeroes the low 27 mantissa bits of x.
func upper(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ (1<<27 - 1))
}

// Float64 collapses the two limbs into a single float64.
func (f Float) Float64() float64 {
	return f.Hi + f.Lo
}

// IsZero reports whether f represents zero.
func (f Float) IsZero() bool {
	return f.Hi == 0 && f.Lo == 0
}

// Neg returns -f.
func (f Float) Neg() Float {
	return Float{Hi: -f.Hi, Lo: -f.Lo}
}

// Abs returns |f|.
func (f Float) Abs() Float {
	if f.Hi < 0 || (f.Hi == 0 && f.Lo < 0) {
		return f.Neg()
	}
	return f
}

// mul12 returns the exact product of x and y as a double-double: the high
// limb is the rounded product, the low limb the rounding error recovered
// from the partial products of the split operands.
func mul12(x, y float64) Float {
	xh := upper(x)
	xl := x - xh
	yh := upper(y)
	yl := y - yh
	p := x * y
	return Float{Hi: p, Lo: xh*yh - p + xl*yh + xh*yl + xl*yl}
}

// Mul returns f*v. The high limb is the rounded product Hi*v; the low
// limb carries that product's rounding error plus the cross term Lo*v.
func (f Float) Mul(v float64) Float {
	p := mul12(f.Hi, v)
	return Float{Hi: p.Hi, Lo: p.Lo + f.Lo*v}
}

// Recip returns 1/f via one Newton residual correction: an ordinary
// reciprocal of the high limb, then the residual of c*f folded back in.
//
// f.Hi must be nonzero.
func (f Float) Recip() Float {
	c := 1 / f.Hi
	u := mul12(c, f.Hi)
	cc := ((1 - u.Hi - u.Lo) - c*f.Lo) / f.Hi
	return Float{Hi: c, Lo: cc}
}

// Normalize returns f with the limbs renormalized so that Hi is the
// float64 nearest the represented value and |Lo| is at most half an ulp
// of Hi. Mul can leave Lo slightly above that bound.
func (f Float) Normalize() Float {
	s := f.Hi + f.Lo
	return Float{Hi: s, Lo: f.Hi - s + f.Lo}
}

// Cmp compares f with y, returning -1, 0, or 1. The comparison is exact;
// collapsing f to a float64 first would round away sub-ulp differences.
func (f Float) Cmp(y float64) int {
	n := f.Normalize()
	switch {
	case n.Hi < y:
		return -1
	case n.Hi > y:
		return 1
	case n.Lo < 0:
		return -1
	case n.Lo > 0:
		return 1
	}
	return 0
}

// decimalCtx has enough precision to hold the exact decimal expansion of
// any finite float64 sum.
var decimalCtx = apd.BaseContext.WithPrecision(800)

// Decimal returns the exact decimal value of Hi + Lo. Both limbs are
// binary floating-point values, so their sum has a finite decimal
// expansion. Decimal fails only for non-finite limbs.
func (f Float) Decimal() (*apd.Decimal, error) {
	var hi, lo apd.Decimal
	if _, err := hi.SetFloat64(f.Hi); err != nil {
		return nil, err
	}
	if _, err := lo.SetFloat64(f.Lo); err != nil {
		return nil, err
	}
	var sum apd.Decimal
	if _, err := decimalCtx.Add(&sum, &hi, &lo); err != nil {
		return nil, err
	}
	return &sum, nil
}
