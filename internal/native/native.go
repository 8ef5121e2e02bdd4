/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package native declares the UI substrate consumed by the property widgets:
// input primitives with read/set access to their displayed state, change
// subscriptions, enable/disable, and modal pickers. The Fyne layer provides
// the on-screen implementation; Headless provides an in-memory one so the
// core builds and tests without a display.
package native

import (
	"image/color"

	"gopropedit/internal/vec"
)

// FileMode selects the kind of file picker shown for a path property.
type FileMode int

const (
	OpenFile FileMode = iota + 1
	SaveFile
	ExistingDir
)

// Control is the capability shared by every native primitive.
type Control interface {
	SetEnabled(enabled bool)
	Enabled() bool
	SetVisible(visible bool)
	Visible() bool
}

// TextInput is a single-line text control with caret and selection access.
// Setters take an explicit notify flag; programmatic pushes pass false so
// synchronization never re-enters the change handler.
type TextInput interface {
	Control
	Text() string
	SetText(s string, notify bool)
	Caret() int
	SetCaret(pos int)
	Select(start, length int)
	Selection() (start, length int)
	OnChanged(fn func(text string))
	OnEditingFinished(fn func())
	// OnStep receives up/down key presses and wheel scrolls.
	OnStep(fn func(up bool))
}

// Slider is a horizontal slider over a numeric range.
type Slider interface {
	Control
	Value() float64
	SetValue(v float64, notify bool)
	SetRange(min, max float64)
	SetSteps(single, page float64)
	OnChanged(fn func(v float64))
}

// Checkbox is a boolean toggle.
type Checkbox interface {
	Control
	Checked() bool
	SetChecked(v bool, notify bool)
	OnToggled(fn func(v bool))
}

// Select is a dropdown over a fixed option list.
type Select interface {
	Control
	Options() []string
	SelectedIndex() int
	SetSelectedIndex(i int, notify bool)
	OnSelected(fn func(i int))
}

// Button is a push button; SetColor styles it as a color swatch.
type Button interface {
	Control
	SetLabel(s string)
	SetColor(c color.NRGBA)
	OnTapped(fn func())
}

// Factory creates controls and shows modal pickers. Picker callbacks run
// synchronously from the UI loop with ok=false on cancellation.
type Factory interface {
	NewTextInput() TextInput
	NewSlider() Slider
	NewCheckbox() Checkbox
	NewSelect(options []string) Select
	NewButton(label string) Button
	PickFile(mode FileMode, startDir string, fn func(path string, ok bool))
	PickColor(initial vec.RGB, fn func(c vec.RGB, ok bool))
}
