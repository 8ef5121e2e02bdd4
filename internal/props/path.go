/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package props

import (
	"path/filepath"

	"gopropedit/internal/native"
)

// PathConfig configures a filesystem path property: a text line plus a
// browse button that opens the picker matching Mode. A zero Mode defaults
// to OpenFile.
type PathConfig struct {
	Name    string
	Label   string
	Default string
	Mode    native.FileMode
}

func (c PathConfig) PropertyName() string                   { return c.Name }
func (c PathConfig) build(f native.Factory) (Widget, error) { return NewPath(f, c) }

type Path struct {
	base
	cfg     PathConfig
	factory native.Factory
	value   string
	entry   native.TextInput
	browse  native.Button
}

func NewPath(f native.Factory, cfg PathConfig) (*Path, error) {
	b, err := newBase(cfg.Name, cfg.Label)
	if err != nil {
		return nil, err
	}
	if cfg.Mode == 0 {
		cfg.Mode = native.OpenFile
	}

	w := &Path{base: b, cfg: cfg, factory: f, value: cfg.Default}
	w.entry = f.NewTextInput()
	w.entry.SetText(cfg.Default, false)
	w.entry.OnChanged(func(text string) {
		w.value = text
		w.emit()
	})
	w.browse = f.NewButton("...")
	w.browse.OnTapped(w.Browse)
	return w, nil
}

func (w *Path) Value() any   { return w.value }
func (w *Path) Default() any { return w.cfg.Default }

func (w *Path) Config() PathConfig { return w.cfg }

func (w *Path) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return typeErr(w.name, "string", v)
	}
	w.value = s
	w.entry.SetText(s, false)
	w.emit()
	return nil
}

// Browse opens the picker. A cancelled dialog or empty result leaves the
// value untouched; the picker starts in the directory of the current path.
func (w *Path) Browse() {
	w.factory.PickFile(w.cfg.Mode, filepath.Dir(w.value), func(path string, ok bool) {
		if !ok || path == "" {
			return
		}
		w.value = path
		w.entry.SetText(path, false)
		w.emit()
	})
}

func (w *Path) Clone(f native.Factory) (Widget, error) { return NewPath(f, w.cfg) }

func (w *Path) SetEnabled(enabled bool) {
	w.entry.SetEnabled(enabled)
	w.browse.SetEnabled(enabled)
}

func (w *Path) Entry() native.TextInput { return w.entry }
func (w *Path) Button() native.Button   { return w.browse }
