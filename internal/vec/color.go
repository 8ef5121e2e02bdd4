/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vec

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is a color triple with components in [0, 1].
type RGB struct {
	R, G, B float64
}

func RGBOf(r, g, b float64) RGB { return RGB{R: r, G: g, B: b} }

func (c RGB) String() string { return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B) }

// Clamp returns the triple with each component clamped to [0, 1].
func (c RGB) Clamp() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// NRGBA converts to an 8-bit color for rendering. Components are clamped.
func (c RGB) NRGBA() color.NRGBA {
	cc := c.Clamp()
	return color.NRGBA{
		R: uint8(math.Round(cc.R * 255)),
		G: uint8(math.Round(cc.G * 255)),
		B: uint8(math.Round(cc.B * 255)),
		A: 255,
	}
}

// RGBFromColor converts any color.Color to an RGB triple, dropping alpha.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
