/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package props

import "gopropedit/internal/native"

// EnumConfig configures a dropdown over a fixed set of enumerants. Options
// is required; an empty Default selects the first enumerant. The dropdown
// displays title-cased option text but Value always reports the raw
// enumerant identifier.
type EnumConfig struct {
	Name    string
	Label   string
	Options []string
	Default string
}

func (c EnumConfig) PropertyName() string                   { return c.Name }
func (c EnumConfig) build(f native.Factory) (Widget, error) { return NewEnum(f, c) }

type Enum struct {
	base
	cfg   EnumConfig
	index int
	sel   native.Select
}

func NewEnum(f native.Factory, cfg EnumConfig) (*Enum, error) {
	b, err := newBase(cfg.Name, cfg.Label)
	if err != nil {
		return nil, err
	}
	if len(cfg.Options) == 0 {
		return nil, configErr(cfg.Name, "enum options are required")
	}
	if cfg.Default == "" {
		cfg.Default = cfg.Options[0]
	}
	defIdx := indexOf(cfg.Options, cfg.Default)
	if defIdx < 0 {
		return nil, configErr(cfg.Name, "default %q is not an option", cfg.Default)
	}

	labels := make([]string, len(cfg.Options))
	for i, o := range cfg.Options {
		labels[i] = Title(o)
	}

	w := &Enum{base: b, cfg: cfg, index: defIdx}
	w.sel = f.NewSelect(labels)
	w.sel.SetSelectedIndex(defIdx, false)
	w.sel.OnSelected(func(i int) {
		w.index = i
		w.emit()
	})
	return w, nil
}

func (w *Enum) Value() any   { return w.cfg.Options[w.index] }
func (w *Enum) Default() any { return w.cfg.Default }

func (w *Enum) Config() EnumConfig { return w.cfg }

// SetValue accepts an enumerant identifier; values outside the option set
// are rejected as type errors.
func (w *Enum) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return typeErr(w.name, "string", v)
	}
	i := indexOf(w.cfg.Options, s)
	if i < 0 {
		return typeErr(w.name, "one of the enum options", v)
	}
	w.index = i
	w.sel.SetSelectedIndex(i, false)
	w.emit()
	return nil
}

func (w *Enum) Clone(f native.Factory) (Widget, error) { return NewEnum(f, w.cfg) }

func (w *Enum) SetEnabled(enabled bool) { w.sel.SetEnabled(enabled) }

func (w *Enum) Select() native.Select { return w.sel }

func indexOf(opts []string, s string) int {
	for i, o := range opts {
		if o == s {
			return i
		}
	}
	return -1
}
