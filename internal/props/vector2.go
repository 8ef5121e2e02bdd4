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
	"gopropedit/internal/numedit"
	"gopropedit/internal/vec"
)

// Int2Config configures a two-component integer property rendered as a
// pair of numeric text editors. Zero bounds default to the full integer
// range for both components.
type Int2Config struct {
	Name    string
	Label   string
	Default vec.Int2
	Min     int
	Max     int
}

func (c Int2Config) PropertyName() string                   { return c.Name }
func (c Int2Config) build(f native.Factory) (Widget, error) { return NewInt2(f, c) }

func (c *Int2Config) applyDefaults() {
	if c.Min == 0 && c.Max == 0 {
		c.Min = -numedit.MaxInt
		c.Max = numedit.MaxInt
	}
}

// Int2 edits a vec.Int2. Each component has its own editor; an edit to one
// component re-emits the whole pair.
type Int2 struct {
	base
	cfg   Int2Config
	value vec.Int2
	x, y  *lineEdit
}

func NewInt2(f native.Factory, cfg Int2Config) (*Int2, error) {
	cfg.applyDefaults()
	b, err := newBase(cfg.Name, cfg.Label)
	if err != nil {
		return nil, err
	}

	w := &Int2{base: b, cfg: cfg, value: cfg.Default}
	w.x = newIntLine(f, cfg.Min, cfg.Max)
	w.y = newIntLine(f, cfg.Min, cfg.Max)

	w.x.onChanged = func(v float64) {
		w.value.X = int(v)
		w.emit()
	}
	w.y.onChanged = func(v float64) {
		w.value.Y = int(v)
		w.emit()
	}

	w.push(cfg.Default)
	return w, nil
}

func (w *Int2) Value() any   { return w.value }
func (w *Int2) Default() any { return w.cfg.Default }

func (w *Int2) Config() Int2Config { return w.cfg }

func (w *Int2) SetValue(v any) error {
	p, ok := v.(vec.Int2)
	if !ok {
		return typeErr(w.name, "vec.Int2", v)
	}
	w.value = p
	w.push(p)
	w.emit()
	return nil
}

func (w *Int2) push(p vec.Int2) {
	w.x.setValue(float64(p.X), false)
	w.y.setValue(float64(p.Y), false)
}

func (w *Int2) Reset() { _ = w.SetValue(w.cfg.Default) }

func (w *Int2) Clone(f native.Factory) (Widget, error) { return NewInt2(f, w.cfg) }

func (w *Int2) SetEnabled(enabled bool) {
	w.x.control().SetEnabled(enabled)
	w.y.control().SetEnabled(enabled)
}

// Lines exposes the two text controls in x, y order.
func (w *Int2) Lines() (native.TextInput, native.TextInput) {
	return w.x.control(), w.y.control()
}

// Float2Config configures a two-component float property. A zero Decimals
// defaults to 2; zero bounds default to the full integer range.
type Float2Config struct {
	Name     string
	Label    string
	Default  vec.Float2
	Min      float64
	Max      float64
	Decimals int
}

func (c Float2Config) PropertyName() string                   { return c.Name }
func (c Float2Config) build(f native.Factory) (Widget, error) { return NewFloat2(f, c) }

func (c *Float2Config) applyDefaults() {
	if c.Min == 0 && c.Max == 0 {
		c.Min = -numedit.MaxInt
		c.Max = numedit.MaxInt
	}
	if c.Decimals == 0 {
		c.Decimals = 2
	}
}

// Float2 edits a vec.Float2 through a pair of float editors.
type Float2 struct {
	base
	cfg   Float2Config
	value vec.Float2
	x, y  *lineEdit
}

func NewFloat2(f native.Factory, cfg Float2Config) (*Float2, error) {
	cfg.applyDefaults()
	b, err := newBase(cfg.Name, cfg.Label)
	if err != nil {
		return nil, err
	}

	w := &Float2{base: b, cfg: cfg, value: cfg.Default}
	w.x = newFloatLine(f, cfg.Min, cfg.Max, cfg.Decimals)
	w.y = newFloatLine(f, cfg.Min, cfg.Max, cfg.Decimals)

	w.x.onChanged = func(v float64) {
		w.value.X = v
		w.emit()
	}
	w.y.onChanged = func(v float64) {
		w.value.Y = v
		w.emit()
	}

	w.push(cfg.Default)
	return w, nil
}

func (w *Float2) Value() any   { return w.value }
func (w *Float2) Default() any { return w.cfg.Default }

func (w *Float2) Config() Float2Config { return w.cfg }

// SetValue accepts a vec.Float2 or a vec.Int2, which is converted.
func (w *Float2) SetValue(v any) error {
	var p vec.Float2
	switch x := v.(type) {
	case vec.Float2:
		p = x
	case vec.Int2:
		p = x.Float2()
	default:
		return typeErr(w.name, "vec.Float2 or vec.Int2", v)
	}
	w.value = p
	w.push(p)
	w.emit()
	return nil
}

func (w *Float2) push(p vec.Float2) {
	w.x.setValue(p.X, false)
	w.y.setValue(p.Y, false)
}

func (w *Float2) Reset() { _ = w.SetValue(w.cfg.Default) }

func (w *Float2) Clone(f native.Factory) (Widget, error) { return NewFloat2(f, w.cfg) }

func (w *Float2) SetEnabled(enabled bool) {
	w.x.control().SetEnabled(enabled)
	w.y.control().SetEnabled(enabled)
}

func (w *Float2) Lines() (native.TextInput, native.TextInput) {
	return w.x.control(), w.y.control()
}
