/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package props

import "gopropedit/internal/native"

// BoolConfig configures a checkbox property.
type BoolConfig struct {
	Name    string
	Label   string
	Default bool
}

func (c BoolConfig) PropertyName() string                   { return c.Name }
func (c BoolConfig) build(f native.Factory) (Widget, error) { return NewBool(f, c) }

type Bool struct {
	base
	cfg   BoolConfig
	value bool
	check native.Checkbox
}

func NewBool(f native.Factory, cfg BoolConfig) (*Bool, error) {
	b, err := newBase(cfg.Name, cfg.Label)
	if err != nil {
		return nil, err
	}

	w := &Bool{base: b, cfg: cfg, value: cfg.Default}
	w.check = f.NewCheckbox()
	w.check.SetChecked(cfg.Default, false)
	w.check.OnToggled(func(v bool) {
		w.value = v
		w.emit()
	})
	return w, nil
}

func (w *Bool) Value() any   { return w.value }
func (w *Bool) Default() any { return w.cfg.Default }

func (w *Bool) Config() BoolConfig { return w.cfg }

func (w *Bool) SetValue(v any) error {
	x, ok := v.(bool)
	if !ok {
		return typeErr(w.name, "bool", v)
	}
	w.value = x
	w.check.SetChecked(x, false)
	w.emit()
	return nil
}

func (w *Bool) Clone(f native.Factory) (Widget, error) { return NewBool(f, w.cfg) }

func (w *Bool) SetEnabled(enabled bool) { w.check.SetEnabled(enabled) }

// Checkbox exposes the native control for the rendering layer.
func (w *Bool) Checkbox() native.Checkbox { return w.check }

// StringConfig configures a free-text property. The value commits on every
// keystroke, unlike the numeric editors which commit on step or focus loss.
type StringConfig struct {
	Name    string
	Label   string
	Default string
}

func (c StringConfig) PropertyName() string                   { return c.Name }
func (c StringConfig) build(f native.Factory) (Widget, error) { return NewString(f, c) }

type String struct {
	base
	cfg   StringConfig
	value string
	entry native.TextInput
}

func NewString(f native.Factory, cfg StringConfig) (*String, error) {
	b, err := newBase(cfg.Name, cfg.Label)
	if err != nil {
		return nil, err
	}

	w := &String{base: b, cfg: cfg, value: cfg.Default}
	w.entry = f.NewTextInput()
	w.entry.SetText(cfg.Default, false)
	w.entry.OnChanged(func(text string) {
		w.value = text
		w.emit()
	})
	return w, nil
}

func (w *String) Value() any   { return w.value }
func (w *String) Default() any { return w.cfg.Default }

func (w *String) Config() StringConfig { return w.cfg }

func (w *String) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return typeErr(w.name, "string", v)
	}
	w.value = s
	w.entry.SetText(s, false)
	w.emit()
	return nil
}

func (w *String) Clone(f native.Factory) (Widget, error) { return NewString(f, w.cfg) }

func (w *String) SetEnabled(enabled bool) { w.entry.SetEnabled(enabled) }

func (w *String) Entry() native.TextInput { return w.entry }
