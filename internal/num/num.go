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

// Package num provides small generic arithmetic helpers shared by the
// range search routines.
package num

import "golang.org/x/exp/constraints"

// Number is the union of all built-in numeric types except complex.
type Number interface {
	constraints.Integer | constraints.Float
}

// FloorDiv returns the quotient of a and b rounded toward negative
// infinity. Go's native integer division truncates toward zero, which
// disagrees with floored division whenever the operands have mixed signs
// and the division is inexact.
//
// b must be nonzero.
func FloorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Abs returns the absolute value of v.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0, or 1 according to the sign of v.
func Sign[T Number](v T) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
