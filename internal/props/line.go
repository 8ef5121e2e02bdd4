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
)

// lineEdit binds a numedit state machine to a native text control. The
// state machine is the source of truth for text, caret and value; the
// control mirrors it. User events flow in through the control callbacks,
// programmatic pushes flow out with notify=false.
type lineEdit struct {
	ed    *numedit.Editor
	ctl   native.TextInput
	muted int

	onChanged func(v float64)
}

func newIntLine(f native.Factory, min, max int) *lineEdit {
	ed := numedit.NewInt()
	ed.SetMinimum(float64(min))
	ed.SetMaximum(float64(max))
	return newLine(f, ed)
}

func newFloatLine(f native.Factory, min, max float64, decimals int) *lineEdit {
	ed := numedit.NewFloat(decimals)
	ed.SetMinimum(min)
	ed.SetMaximum(max)
	return newLine(f, ed)
}

func newLine(f native.Factory, ed *numedit.Editor) *lineEdit {
	l := &lineEdit{ed: ed, ctl: f.NewTextInput()}

	ed.OnChanged = func(v float64) {
		if l.muted == 0 && l.onChanged != nil {
			l.onChanged(v)
		}
	}
	l.ctl.SetText(ed.Text(), false)

	l.ctl.OnChanged(func(text string) {
		// typing only updates the text; the value commits on step or focus loss
		ed.SetText(text)
	})
	l.ctl.OnEditingFinished(func() {
		ed.FinishEditing()
		l.ctl.SetText(ed.Text(), false)
	})
	l.ctl.OnStep(func(up bool) {
		if start, n := l.ctl.Selection(); n > 0 {
			ed.Select(start, n)
		} else {
			ed.SetCaret(l.ctl.Caret())
		}
		if ed.Step(up) {
			l.ctl.SetText(ed.Text(), false)
			l.ctl.Select(ed.Selection())
		}
	})
	return l
}

func (l *lineEdit) value() float64 { return l.ed.Value() }

// setValue pushes a value into the editor and control. With notify=false
// the committed change is not forwarded to onChanged.
func (l *lineEdit) setValue(v float64, notify bool) {
	if !notify {
		l.muted++
		defer func() { l.muted-- }()
	}
	if !l.ed.SetValue(v) {
		return
	}
	l.ctl.SetText(l.ed.Text(), false)
}

func (l *lineEdit) control() native.TextInput { return l.ctl }
