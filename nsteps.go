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

	"github.com/axisrange/ranges/twoprec"
)

// Nsteps returns the signed number of whole steps from zero to x: the n
// with |n*step| the largest multiple of |step| not exceeding |x|, with
// the sign of x. Nsteps(0, step) is 0.
//
// step must be nonzero.
func Nsteps(x, step float64) int {
	n := int(math.Floor(math.Abs(x / step)))
	if x < 0 {
		return -n
	}
	return n
}

// NstepsTwice is Nsteps for an extended-precision step. There is no
// direct division of a float64 by a twoprec.Float, so the quotient is
// approximated against the collapsed step; the ceiling candidate is then
// verified against the extended-precision product, since the approximate
// division may round across a step boundary.
//
// step must be nonzero.
func NstepsTwice(x float64, step twoprec.Float) int {
	nf := math.Abs(x / step.Float64())
	nc := math.Ceil(nf)
	n := int(nc)
	if step.Mul(nc).Abs().Cmp(math.Abs(x)) > 0 {
		n = int(math.Floor(nf))
	}
	if x < 0 {
		return -n
	}
	return n
}
