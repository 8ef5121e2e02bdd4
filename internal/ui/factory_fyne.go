//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fstorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"gopropedit/internal/native"
	"gopropedit/internal/vec"
)

// fyneFactory implements native.Factory on Fyne widgets. Pickers attach to
// the owning window.
type fyneFactory struct {
	win fyne.Window
}

func newFactory(win fyne.Window) *fyneFactory { return &fyneFactory{win: win} }

func (f *fyneFactory) NewTextInput() native.TextInput { return newStepEntry() }

func (f *fyneFactory) NewSlider() native.Slider {
	s := &fyneSlider{slider: widget.NewSlider(0, 1)}
	s.slider.OnChanged = func(v float64) {
		if s.muted == 0 && s.changed != nil {
			s.changed(v)
		}
	}
	return s
}

func (f *fyneFactory) NewCheckbox() native.Checkbox {
	c := &fyneCheck{}
	c.check = widget.NewCheck("", func(v bool) {
		if c.muted == 0 && c.toggled != nil {
			c.toggled(v)
		}
	})
	return c
}

func (f *fyneFactory) NewSelect(options []string) native.Select {
	s := &fyneSelect{opts: options}
	s.sel = widget.NewSelect(options, func(label string) {
		if s.muted > 0 || s.changed == nil {
			return
		}
		for i, o := range options {
			if o == label {
				s.changed(i)
				return
			}
		}
	})
	return s
}

func (f *fyneFactory) NewButton(label string) native.Button {
	b := &fyneButton{}
	b.btn = widget.NewButton(label, func() {
		if b.tapped != nil {
			b.tapped()
		}
	})
	b.rect = canvas.NewRectangle(color.Transparent)
	b.box = container.NewStack(b.rect, b.btn)
	return b
}

func (f *fyneFactory) PickFile(mode native.FileMode, startDir string, fn func(string, bool)) {
	loc, _ := fstorage.ListerForURI(fstorage.NewFileURI(startDir))
	switch mode {
	case native.SaveFile:
		d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				fn("", false)
				return
			}
			path := wc.URI().Path()
			_ = wc.Close()
			fn(path, true)
		}, f.win)
		if loc != nil {
			d.SetLocation(loc)
		}
		d.Show()
	case native.ExistingDir:
		d := dialog.NewFolderOpen(func(lu fyne.ListableURI, err error) {
			if err != nil || lu == nil {
				fn("", false)
				return
			}
			fn(lu.Path(), true)
		}, f.win)
		if loc != nil {
			d.SetLocation(loc)
		}
		d.Show()
	default:
		d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil || rc == nil {
				fn("", false)
				return
			}
			path := rc.URI().Path()
			_ = rc.Close()
			fn(path, true)
		}, f.win)
		if loc != nil {
			d.SetLocation(loc)
		}
		d.Show()
	}
}

func (f *fyneFactory) PickColor(initial vec.RGB, fn func(vec.RGB, bool)) {
	picked := false
	d := dialog.NewColorPicker("Pick Color", "", func(c color.Color) {
		picked = true
		fn(vec.RGBFromColor(c), true)
	}, f.win)
	d.Advanced = true
	d.SetColor(initial.NRGBA())
	d.SetOnClosed(func() {
		if !picked {
			fn(vec.RGB{}, false)
		}
	})
	d.Show()
}

// stepEntry is a single-line entry that reports arrow-key presses and
// wheel scrolls as step events instead of moving the cursor.
type stepEntry struct {
	widget.Entry

	muted    int
	changed  func(string)
	finished func()
	step     func(bool)
}

func newStepEntry() *stepEntry {
	e := &stepEntry{}
	e.ExtendBaseWidget(e)
	e.Entry.OnChanged = func(text string) {
		if e.muted == 0 && e.changed != nil {
			e.changed(text)
		}
	}
	e.Entry.OnSubmitted = func(string) {
		if e.finished != nil {
			e.finished()
		}
	}
	return e
}

func (e *stepEntry) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyUp:
		if e.step != nil {
			e.step(true)
		}
	case fyne.KeyDown:
		if e.step != nil {
			e.step(false)
		}
	default:
		e.Entry.TypedKey(ev)
	}
}

func (e *stepEntry) Scrolled(ev *fyne.ScrollEvent) {
	if e.step == nil || ev.Scrolled.DY == 0 {
		return
	}
	e.step(ev.Scrolled.DY > 0)
}

func (e *stepEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.finished != nil {
		e.finished()
	}
}

func (e *stepEntry) Text() string { return e.Entry.Text }

func (e *stepEntry) SetText(s string, notify bool) {
	if !notify {
		e.muted++
		defer func() { e.muted-- }()
	}
	e.Entry.SetText(s)
}

func (e *stepEntry) Caret() int { return e.CursorColumn }

func (e *stepEntry) SetCaret(pos int) {
	e.CursorColumn = pos
	e.Refresh()
}

// Select positions the caret at the selection start; Fyne entries expose
// no programmatic selection range.
func (e *stepEntry) Select(start, _ int) { e.SetCaret(start) }

func (e *stepEntry) Selection() (int, int) { return e.CursorColumn, len(e.SelectedText()) }

func (e *stepEntry) OnChanged(fn func(string))   { e.changed = fn }
func (e *stepEntry) OnEditingFinished(fn func()) { e.finished = fn }
func (e *stepEntry) OnStep(fn func(bool))        { e.step = fn }

func (e *stepEntry) SetEnabled(enabled bool) {
	if enabled {
		e.Enable()
	} else {
		e.Disable()
	}
}

func (e *stepEntry) Enabled() bool { return !e.Disabled() }

func (e *stepEntry) SetVisible(visible bool) {
	if visible {
		e.Show()
	} else {
		e.Hide()
	}
}

// fyneSlider adapts widget.Slider. Programmatic pushes mute OnChanged so
// synchronization never re-enters the handler.
type fyneSlider struct {
	slider  *widget.Slider
	muted   int
	changed func(float64)
}

func (s *fyneSlider) Value() float64 { return s.slider.Value }

func (s *fyneSlider) SetValue(v float64, notify bool) {
	if !notify {
		s.muted++
		defer func() { s.muted-- }()
	}
	s.slider.SetValue(v)
}

func (s *fyneSlider) SetRange(min, max float64) {
	s.slider.Min = min
	s.slider.Max = max
	s.slider.Refresh()
}

func (s *fyneSlider) SetSteps(single, _ float64) {
	s.slider.Step = single
	s.slider.Refresh()
}

func (s *fyneSlider) OnChanged(fn func(float64)) { s.changed = fn }

func (s *fyneSlider) SetEnabled(enabled bool) {
	if enabled {
		s.slider.Enable()
	} else {
		s.slider.Disable()
	}
}

func (s *fyneSlider) Enabled() bool { return !s.slider.Disabled() }

func (s *fyneSlider) SetVisible(visible bool) {
	if visible {
		s.slider.Show()
	} else {
		s.slider.Hide()
	}
}

func (s *fyneSlider) Visible() bool { return s.slider.Visible() }

type fyneCheck struct {
	check   *widget.Check
	muted   int
	toggled func(bool)
}

func (c *fyneCheck) Checked() bool { return c.check.Checked }

func (c *fyneCheck) SetChecked(v bool, notify bool) {
	if !notify {
		c.muted++
		defer func() { c.muted-- }()
	}
	c.check.SetChecked(v)
}

func (c *fyneCheck) OnToggled(fn func(bool)) { c.toggled = fn }

func (c *fyneCheck) SetEnabled(enabled bool) {
	if enabled {
		c.check.Enable()
	} else {
		c.check.Disable()
	}
}

func (c *fyneCheck) Enabled() bool { return !c.check.Disabled() }

func (c *fyneCheck) SetVisible(visible bool) {
	if visible {
		c.check.Show()
	} else {
		c.check.Hide()
	}
}

func (c *fyneCheck) Visible() bool { return c.check.Visible() }

type fyneSelect struct {
	sel     *widget.Select
	opts    []string
	muted   int
	changed func(int)
}

func (s *fyneSelect) Options() []string { return s.opts }

func (s *fyneSelect) SelectedIndex() int { return s.sel.SelectedIndex() }

func (s *fyneSelect) SetSelectedIndex(i int, notify bool) {
	if !notify {
		s.muted++
		defer func() { s.muted-- }()
	}
	s.sel.SetSelectedIndex(i)
}

func (s *fyneSelect) OnSelected(fn func(int)) { s.changed = fn }

func (s *fyneSelect) SetEnabled(enabled bool) {
	if enabled {
		s.sel.Enable()
	} else {
		s.sel.Disable()
	}
}

func (s *fyneSelect) Enabled() bool { return !s.sel.Disabled() }

func (s *fyneSelect) SetVisible(visible bool) {
	if visible {
		s.sel.Show()
	} else {
		s.sel.Hide()
	}
}

func (s *fyneSelect) Visible() bool { return s.sel.Visible() }

// fyneButton stacks the button over a color rectangle so it can double as
// a swatch.
type fyneButton struct {
	btn    *widget.Button
	rect   *canvas.Rectangle
	box    *fyne.Container
	tapped func()
}

func (b *fyneButton) SetLabel(s string) { b.btn.SetText(s) }

func (b *fyneButton) SetColor(c color.NRGBA) {
	b.rect.FillColor = c
	b.rect.Refresh()
}

func (b *fyneButton) OnTapped(fn func()) { b.tapped = fn }

func (b *fyneButton) SetEnabled(enabled bool) {
	if enabled {
		b.btn.Enable()
	} else {
		b.btn.Disable()
	}
}

func (b *fyneButton) Enabled() bool { return !b.btn.Disabled() }

func (b *fyneButton) SetVisible(visible bool) {
	if visible {
		b.box.Show()
	} else {
		b.box.Hide()
	}
}

func (b *fyneButton) Visible() bool { return b.box.Visible() }
