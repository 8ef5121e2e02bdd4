/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package vec provides the small value types carried by property widgets:
// two-component integer and float vectors and an RGB color triple.
// All types are plain values; no operation mutates its receiver.
package vec

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivisionByZero is returned when a divisor has a zero component.
var ErrDivisionByZero = errors.New("division by zero component")

// Int2 is a two-component integer vector.
type Int2 struct {
	X, Y int
}

// Float2 is a two-component float vector.
type Float2 struct {
	X, Y float64
}

// Int2Of builds an Int2 from float components. Components are floored
// (toward negative infinity), not truncated: Int2Of(1.9, -1.9) is (1, -2).
func Int2Of(x, y float64) Int2 {
	return Int2{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// Float2Of builds a Float2; kept for symmetry with Int2Of.
func Float2Of(x, y float64) Float2 { return Float2{X: x, Y: y} }

func (v Int2) String() string   { return fmt.Sprintf("(%d, %d)", v.X, v.Y) }
func (v Float2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Float2 converts to the float variant.
func (v Int2) Float2() Float2 { return Float2{X: float64(v.X), Y: float64(v.Y)} }

// Int2 converts to the integer variant, flooring each component.
func (v Float2) Int2() Int2 { return Int2Of(v.X, v.Y) }

// XY returns the components as an ordered pair.
func (v Int2) XY() (int, int)         { return v.X, v.Y }
func (v Float2) XY() (float64, float64) { return v.X, v.Y }

func (v Int2) Add(o Int2) Int2 { return Int2{v.X + o.X, v.Y + o.Y} }
func (v Int2) Sub(o Int2) Int2 { return Int2{v.X - o.X, v.Y - o.Y} }
func (v Int2) Mul(o Int2) Int2 { return Int2{v.X * o.X, v.Y * o.Y} }

// AddN, SubN and MulN broadcast a scalar to both components.
func (v Int2) AddN(n int) Int2 { return Int2{v.X + n, v.Y + n} }
func (v Int2) SubN(n int) Int2 { return Int2{v.X - n, v.Y - n} }
func (v Int2) MulN(n int) Int2 { return Int2{v.X * n, v.Y * n} }

// Div divides componentwise. The integer variant keeps integer components,
// so true division and floor division coincide here.
func (v Int2) Div(o Int2) (Int2, error) { return v.FloorDiv(o) }

// FloorDiv divides componentwise, flooring each quotient.
func (v Int2) FloorDiv(o Int2) (Int2, error) {
	if o.X == 0 || o.Y == 0 {
		return Int2{}, fmt.Errorf("%v floordiv %v: %w", v, o, ErrDivisionByZero)
	}
	return Int2Of(float64(v.X)/float64(o.X), float64(v.Y)/float64(o.Y)), nil
}

// DivN divides both components by a scalar, flooring each quotient.
func (v Int2) DivN(n int) (Int2, error) { return v.FloorDiv(Int2{n, n}) }

func (v Float2) Add(o Float2) Float2 { return Float2{v.X + o.X, v.Y + o.Y} }
func (v Float2) Sub(o Float2) Float2 { return Float2{v.X - o.X, v.Y - o.Y} }
func (v Float2) Mul(o Float2) Float2 { return Float2{v.X * o.X, v.Y * o.Y} }

func (v Float2) AddN(n float64) Float2 { return Float2{v.X + n, v.Y + n} }
func (v Float2) SubN(n float64) Float2 { return Float2{v.X - n, v.Y - n} }
func (v Float2) MulN(n float64) Float2 { return Float2{v.X * n, v.Y * n} }

// Div divides componentwise (true division).
func (v Float2) Div(o Float2) (Float2, error) {
	if o.X == 0 || o.Y == 0 {
		return Float2{}, fmt.Errorf("%v div %v: %w", v, o, ErrDivisionByZero)
	}
	return Float2{v.X / o.X, v.Y / o.Y}, nil
}

// FloorDiv divides componentwise and floors each quotient.
func (v Float2) FloorDiv(o Float2) (Float2, error) {
	q, err := v.Div(o)
	if err != nil {
		return Float2{}, err
	}
	return Float2{math.Floor(q.X), math.Floor(q.Y)}, nil
}

// DivN divides both components by a scalar.
func (v Float2) DivN(n float64) (Float2, error) { return v.Div(Float2{n, n}) }
