/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package props

import (
	"gopropedit/internal/native"
	"gopropedit/internal/vec"
)

// ColorConfig configures an RGB property: one float editor per component,
// a swatch button that opens the color picker, and the current value
// painted onto the swatch. Zero bounds default to [0, 1]; a zero Decimals
// defaults to 2.
type ColorConfig struct {
	Name     string
	Label    string
	Default  vec.RGB
	Min      float64
	Max      float64
	Decimals int
}

func (c ColorConfig) PropertyName() string                   { return c.Name }
func (c ColorConfig) build(f native.Factory) (Widget, error) { return NewColor(f, c) }

func (c *ColorConfig) applyDefaults() {
	if c.Min == 0 && c.Max == 0 {
		c.Max = 1
	}
	if c.Decimals == 0 {
		c.Decimals = 2
	}
}

type Color struct {
	base
	cfg     ColorConfig
	factory native.Factory
	value   vec.RGB
	r, g, b *lineEdit
	swatch  native.Button
}

func NewColor(f native.Factory, cfg ColorConfig) (*Color, error) {
	cfg.applyDefaults()
	b, err := newBase(cfg.Name, cfg.Label)
	if err != nil {
		return nil, err
	}

	w := &Color{base: b, cfg: cfg, factory: f, value: cfg.Default}
	w.r = newFloatLine(f, cfg.Min, cfg.Max, cfg.Decimals)
	w.g = newFloatLine(f, cfg.Min, cfg.Max, cfg.Decimals)
	w.b = newFloatLine(f, cfg.Min, cfg.Max, cfg.Decimals)
	w.swatch = f.NewButton("")
	w.swatch.OnTapped(w.Pick)

	w.r.onChanged = func(v float64) { w.component(&w.value.R, v) }
	w.g.onChanged = func(v float64) { w.component(&w.value.G, v) }
	w.b.onChanged = func(v float64) { w.component(&w.value.B, v) }

	w.push(cfg.Default)
	return w, nil
}

func (w *Color) component(dst *float64, v float64) {
	*dst = v
	w.swatch.SetColor(w.value.NRGBA())
	w.emit()
}

func (w *Color) Value() any   { return w.value }
func (w *Color) Default() any { return w.cfg.Default }

func (w *Color) Config() ColorConfig { return w.cfg }

func (w *Color) SetValue(v any) error {
	c, ok := v.(vec.RGB)
	if !ok {
		return typeErr(w.name, "vec.RGB", v)
	}
	w.value = c
	w.push(c)
	w.emit()
	return nil
}

// push updates the three editors and the swatch without notification.
func (w *Color) push(c vec.RGB) {
	w.r.setValue(c.R, false)
	w.g.setValue(c.G, false)
	w.b.setValue(c.B, false)
	w.swatch.SetColor(c.NRGBA())
}

// Pick opens the color dialog. A chosen color replaces all three components
// and the swatch in one update; cancellation changes nothing.
func (w *Color) Pick() {
	w.factory.PickColor(w.value, func(c vec.RGB, ok bool) {
		if !ok {
			return
		}
		w.value = c
		w.push(c)
		w.emit()
	})
}

func (w *Color) Reset() { _ = w.SetValue(w.cfg.Default) }

func (w *Color) Clone(f native.Factory) (Widget, error) { return NewColor(f, w.cfg) }

func (w *Color) SetEnabled(enabled bool) {
	w.r.control().SetEnabled(enabled)
	w.g.control().SetEnabled(enabled)
	w.b.control().SetEnabled(enabled)
	w.swatch.SetEnabled(enabled)
}

// Lines exposes the component editors in r, g, b order.
func (w *Color) Lines() (native.TextInput, native.TextInput, native.TextInput) {
	return w.r.control(), w.g.control(), w.b.control()
}

func (w *Color) Swatch() native.Button { return w.swatch }
