/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package native

import (
	"image/color"

	"gopropedit/internal/vec"
)

// Headless is an in-memory Factory. It backs the demo CLI and the core
// tests, which drive controls through the same callbacks a real UI would
// fire (Type, Drag, Toggle, ...).
type Headless struct {
	// Canned picker replies. CancelPickers wins over both.
	FilePick      string
	ColorPick     vec.RGB
	CancelPickers bool
}

func NewHeadless() *Headless { return &Headless{} }

func (h *Headless) NewTextInput() TextInput         { return &HeadlessText{ctl: ctl{enabled: true, visible: true}} }
func (h *Headless) NewSlider() Slider               { return &HeadlessSlider{ctl: ctl{enabled: true, visible: true}} }
func (h *Headless) NewCheckbox() Checkbox           { return &HeadlessCheck{ctl: ctl{enabled: true, visible: true}} }
func (h *Headless) NewSelect(opts []string) Select  { return &HeadlessSelect{ctl: ctl{enabled: true, visible: true}, opts: opts} }
func (h *Headless) NewButton(label string) Button   { return &HeadlessButton{ctl: ctl{enabled: true, visible: true}, label: label} }

func (h *Headless) PickFile(_ FileMode, _ string, fn func(string, bool)) {
	if h.CancelPickers {
		fn("", false)
		return
	}
	fn(h.FilePick, h.FilePick != "")
}

func (h *Headless) PickColor(_ vec.RGB, fn func(vec.RGB, bool)) {
	if h.CancelPickers {
		fn(vec.RGB{}, false)
		return
	}
	fn(h.ColorPick, true)
}

type ctl struct {
	enabled bool
	visible bool
}

func (c *ctl) SetEnabled(v bool) { c.enabled = v }
func (c *ctl) Enabled() bool     { return c.enabled }
func (c *ctl) SetVisible(v bool) { c.visible = v }
func (c *ctl) Visible() bool     { return c.visible }

// HeadlessText mimics a single-line entry.
type HeadlessText struct {
	ctl
	text     string
	caret    int
	selStart int
	selLen   int

	changed  func(string)
	finished func()
	step     func(bool)
}

func (t *HeadlessText) Text() string { return t.text }

func (t *HeadlessText) SetText(s string, notify bool) {
	t.text = s
	if t.caret > len(s) {
		t.caret = len(s)
	}
	if notify && t.changed != nil {
		t.changed(s)
	}
}

func (t *HeadlessText) Caret() int { return t.caret }

func (t *HeadlessText) SetCaret(pos int) {
	t.caret = pos
	t.selLen = 0
}

func (t *HeadlessText) Select(start, length int) {
	t.caret = start
	t.selStart = start
	t.selLen = length
}

func (t *HeadlessText) Selection() (int, int)          { return t.selStart, t.selLen }
func (t *HeadlessText) OnChanged(fn func(string))      { t.changed = fn }
func (t *HeadlessText) OnEditingFinished(fn func())    { t.finished = fn }
func (t *HeadlessText) OnStep(fn func(bool))           { t.step = fn }

// Type simulates the user replacing the text.
func (t *HeadlessText) Type(s string) { t.SetText(s, true) }

// FinishEditing simulates focus leaving the control.
func (t *HeadlessText) FinishEditing() {
	if t.finished != nil {
		t.finished()
	}
}

// PressStep simulates an up/down key press or wheel scroll.
func (t *HeadlessText) PressStep(up bool) {
	if t.step != nil {
		t.step(up)
	}
}

// HeadlessSlider mimics a horizontal slider.
type HeadlessSlider struct {
	ctl
	value        float64
	min, max     float64
	single, page float64
	changed      func(float64)
}

func (s *HeadlessSlider) Value() float64 { return s.value }

func (s *HeadlessSlider) SetValue(v float64, notify bool) {
	s.value = v
	if notify && s.changed != nil {
		s.changed(v)
	}
}

func (s *HeadlessSlider) SetRange(min, max float64)     { s.min, s.max = min, max }
func (s *HeadlessSlider) Range() (float64, float64)     { return s.min, s.max }
func (s *HeadlessSlider) SetSteps(single, page float64) { s.single, s.page = single, page }
func (s *HeadlessSlider) Steps() (float64, float64)     { return s.single, s.page }
func (s *HeadlessSlider) OnChanged(fn func(float64))    { s.changed = fn }

// Drag simulates the user moving the slider.
func (s *HeadlessSlider) Drag(v float64) { s.SetValue(v, true) }

// HeadlessCheck mimics a checkbox.
type HeadlessCheck struct {
	ctl
	checked bool
	toggled func(bool)
}

func (c *HeadlessCheck) Checked() bool { return c.checked }

func (c *HeadlessCheck) SetChecked(v bool, notify bool) {
	c.checked = v
	if notify && c.toggled != nil {
		c.toggled(v)
	}
}

func (c *HeadlessCheck) OnToggled(fn func(bool)) { c.toggled = fn }

// Toggle simulates a user click.
func (c *HeadlessCheck) Toggle() { c.SetChecked(!c.checked, true) }

// HeadlessSelect mimics a dropdown.
type HeadlessSelect struct {
	ctl
	opts     []string
	selected int
	changed  func(int)
}

func (s *HeadlessSelect) Options() []string  { return s.opts }
func (s *HeadlessSelect) SelectedIndex() int { return s.selected }

func (s *HeadlessSelect) SetSelectedIndex(i int, notify bool) {
	s.selected = i
	if notify && s.changed != nil {
		s.changed(i)
	}
}

func (s *HeadlessSelect) OnSelected(fn func(int)) { s.changed = fn }

// Choose simulates the user picking an option.
func (s *HeadlessSelect) Choose(i int) { s.SetSelectedIndex(i, true) }

// HeadlessButton mimics a push button / color swatch.
type HeadlessButton struct {
	ctl
	label  string
	color  color.NRGBA
	tapped func()
}

func (b *HeadlessButton) SetLabel(s string)       { b.label = s }
func (b *HeadlessButton) Label() string           { return b.label }
func (b *HeadlessButton) SetColor(c color.NRGBA)  { b.color = c }
func (b *HeadlessButton) Color() color.NRGBA      { return b.color }
func (b *HeadlessButton) OnTapped(fn func())      { b.tapped = fn }

// Tap simulates a user click.
func (b *HeadlessButton) Tap() {
	if b.tapped != nil {
		b.tapped()
	}
}
