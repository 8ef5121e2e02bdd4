/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package numedit implements the text-editing state machine behind numeric
// input controls: parsing, bound validation, zero-padding preservation and
// caret-relative power-of-ten stepping. It holds no native widget state;
// the UI layer feeds it text, caret and key events and renders the result.
package numedit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxInt is the default magnitude bound for editors without explicit bounds.
const MaxInt = 1<<31 - 1

// Editor is a single numeric text editor. The integer/float split lives in
// the injected behavior; everything else (text, caret, selection, bounds,
// change notification) is shared.
type Editor struct {
	beh behavior

	text     string
	caret    int
	selStart int
	selLen   int

	min, max float64
	decimals int

	value float64

	// OnChanged is called once per committed value change.
	OnChanged func(value float64)
}

// NewInt returns an integer editor with bounds [-MaxInt, MaxInt].
func NewInt() *Editor {
	return &Editor{beh: intBehavior{}, min: -MaxInt, max: MaxInt, text: "0"}
}

// NewFloat returns a float editor with the given decimal precision and
// bounds [-MaxInt, MaxInt].
func NewFloat(decimals int) *Editor {
	return &Editor{beh: floatBehavior{}, min: -MaxInt, max: MaxInt, decimals: decimals, text: "0"}
}

func (e *Editor) SetMinimum(min float64) { e.min = min }
func (e *Editor) SetMaximum(max float64) { e.max = max }
func (e *Editor) Minimum() float64       { return e.min }
func (e *Editor) Maximum() float64       { return e.max }

// Decimals reports the configured precision (0 for integer editors).
func (e *Editor) Decimals() int { return e.decimals }

// Text returns the raw displayed text.
func (e *Editor) Text() string { return e.text }

// SetText replaces the displayed text, as if typed by the user. The cached
// committed value is not touched; Value derives from the text on read.
func (e *Editor) SetText(s string) {
	e.text = s
	e.clampCaret()
}

// Value parses the current text. Unparseable text reads as 0.
func (e *Editor) Value() float64 { return e.beh.parse(e.text) }

// Int returns the current value as an integer (floored float text included).
func (e *Editor) Int() int { return int(e.Value()) }

// Caret returns the caret position (index of the character to its right).
func (e *Editor) Caret() int { return e.caret }

func (e *Editor) SetCaret(pos int) {
	e.caret = pos
	e.selLen = 0
	e.clampCaret()
}

// Select sets the selection and moves the caret to its start.
func (e *Editor) Select(start, length int) {
	e.caret = start
	e.selStart = start
	e.selLen = length
	e.clampCaret()
}

// Selection returns the selection start and length (length 0 if none).
func (e *Editor) Selection() (start, length int) { return e.selStart, e.selLen }

// SetValue formats v into text, validates it against bounds and precision
// and commits only if valid. Returns false with no side effect otherwise.
// A committed change that differs from the previous value notifies once.
func (e *Editor) SetValue(v float64) bool {
	text := e.beh.fixup(e, e.beh.formatPlain(v))
	if !e.beh.validate(e, text) {
		return false
	}
	e.text = text
	e.clampCaret()
	e.FinishEditing()
	return true
}

// FinishEditing strips trailing padding, collapsing an integer-valued float
// to its integer text form, and commits the parsed value. Call on focus loss.
func (e *Editor) FinishEditing() {
	v := e.Value()
	e.text = strconv.FormatFloat(v, 'f', -1, 64)
	e.clampCaret()
	e.commit(v)
}

// Fixup normalizes free-form text the way the validator would: thousands
// separators stripped, non-numeric residue filtered, floats clamped and
// rounded to the configured precision.
func (e *Editor) Fixup(s string) string { return e.beh.fixup(e, s) }

// Valid reports whether s is acceptable for this editor.
func (e *Editor) Valid(s string) bool { return e.beh.validate(e, s) }

// Step increments (up) or decrements the value by a power of ten chosen from
// the caret position, preserving the padding width of the displayed text.
// It reports false, leaving all state untouched, when the caret sits on a
// character that cannot be edited or when the result fails validation.
func (e *Editor) Step(up bool) bool {
	text := e.text
	if text == "" {
		text = "0"
	}
	pos := e.caret
	if e.selLen > 0 {
		pos = e.selStart
	}

	if pos < len(text) && !e.beh.editable(text[pos]) {
		return false
	}

	idx := e.beh.stepIndex(text, pos)
	exponent := e.beh.stepExponent(idx)

	amount := 1.0
	if !up {
		amount = -1
	}
	value := e.Value() + amount*math.Pow(10, float64(exponent))

	// re-render preserving the original padding width
	newText := e.beh.matchText(value, text, exponent)
	if !e.beh.validate(e, newText) {
		return false
	}
	value = e.beh.parse(newText)
	e.text = newText
	e.commit(value)

	// keep the caret over the digit that was being edited
	pos = e.beh.indexToPosition(idx, newText)
	e.Select(pos, 1)
	return true
}

func (e *Editor) commit(v float64) {
	if v != e.value {
		e.value = v
		if e.OnChanged != nil {
			e.OnChanged(v)
		}
	}
}

func (e *Editor) clampCaret() {
	if e.caret > len(e.text) {
		e.caret = len(e.text)
	}
	if e.caret < 0 {
		e.caret = 0
	}
	if e.selStart+e.selLen > len(e.text) {
		e.selLen = 0
	}
}

// behavior is the integer/float strategy split of the stepping machine.
type behavior interface {
	parse(text string) float64
	formatPlain(v float64) string
	fixup(e *Editor, text string) string
	validate(e *Editor, text string) bool
	// editable reports whether the caret may sit on c for a step.
	editable(c byte) bool
	// stepIndex converts a caret position to a digit index relative to the
	// text end (integer) or the decimal point (float).
	stepIndex(text string, pos int) int
	stepExponent(idx int) int
	// matchText renders value preserving the digit padding of text.
	matchText(value float64, text string, exponent int) string
	indexToPosition(idx int, text string) int
}

type intBehavior struct{}

func (intBehavior) parse(text string) float64 {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return float64(n)
}

func (intBehavior) formatPlain(v float64) string { return strconv.Itoa(int(v)) }

// fixup strips thousands separators; out-of-range integers are left for
// validate to reject.
func (intBehavior) fixup(_ *Editor, text string) string {
	return strings.ReplaceAll(text, ",", "")
}

func (intBehavior) validate(e *Editor, text string) bool {
	n, err := strconv.Atoi(text)
	if err != nil {
		return false
	}
	return float64(n) >= e.min && float64(n) <= e.max
}

func (intBehavior) editable(c byte) bool { return isDigit(c) }

func (intBehavior) stepIndex(text string, pos int) int {
	idx := len(text) - pos
	// caret at the end edits the ones digit
	if idx < 1 {
		idx = 1
	}
	return idx
}

func (intBehavior) stepExponent(idx int) int { return idx - 1 }

func (intBehavior) matchText(value float64, text string, _ int) string {
	padding := countDigits(text)
	if value < 0 {
		padding++
	}
	return fmt.Sprintf("%0*d", padding, int(value))
}

func (intBehavior) indexToPosition(idx int, text string) int { return len(text) - idx }

type floatBehavior struct{}

func (floatBehavior) parse(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return v
}

func (floatBehavior) formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fixup filters non-numeric residue down to "+-0123456789.", then clamps to
// the bounds and rounds to the configured precision.
func (floatBehavior) fixup(e *Editor, text string) string {
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		var b strings.Builder
		for i := 0; i < len(text); i++ {
			if c := text[i]; isDigit(c) || c == '+' || c == '-' || c == '.' {
				b.WriteByte(c)
			}
		}
		text = b.String()
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	v = math.Min(math.Max(v, e.min), e.max)
	v = roundTo(v, e.decimals)
	return strconv.FormatFloat(v, 'f', e.decimals, 64)
}

func (floatBehavior) validate(e *Editor, text string) bool {
	if strings.ContainsAny(text, "eE") {
		return false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return false
	}
	if v < e.min || v > e.max {
		return false
	}
	if di := strings.IndexByte(text, '.'); di >= 0 && len(text)-1-di > e.decimals {
		return false
	}
	return true
}

// The decimal point itself is steppable; it edits the first decimal.
func (floatBehavior) editable(c byte) bool { return isDigit(c) || c == '.' }

// stepIndex is the distance from the caret to the decimal point. Without a
// decimal point it is the distance to the text end, so a caret at the end
// addresses the first (not yet displayed) decimal.
func (floatBehavior) stepIndex(text string, pos int) int {
	di := strings.IndexByte(text, '.')
	if di == -1 {
		return len(text) - pos
	}
	return di - pos
}

// stepExponent shifts non-negative indices down by one so that a caret on or
// right of the decimal point edits the first decimal place.
func (floatBehavior) stepExponent(idx int) int {
	if idx >= 0 {
		return idx - 1
	}
	return idx
}

func (floatBehavior) matchText(value float64, text string, exponent int) string {
	di := strings.IndexByte(text, '.')

	paddingDecimal := 0
	if di != -1 {
		paddingDecimal = len(text) - 1 - di
		text = text[:di]
	}

	// extend the decimal width when the step needs more places to stay exact
	if -exponent > paddingDecimal {
		paddingDecimal = -exponent
	}
	paddingInt := countDigits(text)
	if value < 0 {
		paddingInt++
	}
	if paddingDecimal > 0 {
		paddingInt += paddingDecimal + 1
	}

	value = roundTo(value, paddingDecimal)
	return fmt.Sprintf("%0*.*f", paddingInt, paddingDecimal, value)
}

func (floatBehavior) indexToPosition(idx int, text string) int {
	di := strings.IndexByte(text, '.')
	if di == -1 {
		return len(text) - idx
	}
	// a caret that was on the decimal point moves to the first decimal
	if idx == 0 {
		idx = -1
	}
	return di - idx
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			n++
		}
	}
	return n
}

func roundTo(v float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
