/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package numedit

import (
	"math"
	"testing"
)

func TestIntSetValueRoundTrip(t *testing.T) {
	e := NewInt()
	e.SetMinimum(-100)
	e.SetMaximum(100)
	for _, v := range []int{0, 1, -1, 99, -100, 100} {
		if !e.SetValue(float64(v)) {
			t.Fatalf("SetValue(%d) rejected", v)
		}
		if e.Int() != v {
			t.Fatalf("read back %d, want %d", e.Int(), v)
		}
	}
}

func TestIntSetValueOutOfRangeRejected(t *testing.T) {
	e := NewInt()
	e.SetMinimum(0)
	e.SetMaximum(10)
	if !e.SetValue(5) {
		t.Fatalf("in-range value rejected")
	}
	if e.SetValue(11) {
		t.Fatalf("out-of-range value accepted")
	}
	if e.Text() != "5" || e.Int() != 5 {
		t.Fatalf("state changed after rejected set: %q", e.Text())
	}
}

func TestFloatSetValueClampsAndRounds(t *testing.T) {
	e := NewFloat(2)
	e.SetMinimum(0)
	e.SetMaximum(1)
	// float fixup clamps out-of-range input, so the set commits clamped
	if !e.SetValue(1.5) {
		t.Fatalf("clamped set rejected")
	}
	if e.Value() != 1 {
		t.Fatalf("expected clamp to 1, got %v", e.Value())
	}
	if !e.SetValue(0.125) {
		t.Fatalf("set rejected")
	}
	if math.Abs(e.Value()-0.13) > 1e-9 {
		t.Fatalf("expected round to 0.13, got %v", e.Value())
	}
}

func TestParseFailureReadsZero(t *testing.T) {
	e := NewInt()
	e.SetText("abc")
	if e.Value() != 0 {
		t.Fatalf("expected 0 for unparseable text, got %v", e.Value())
	}
	f := NewFloat(2)
	f.SetText("--")
	if f.Value() != 0 {
		t.Fatalf("expected 0, got %v", f.Value())
	}
}

func TestFinishEditingStripsPadding(t *testing.T) {
	cases := []struct {
		decimals int
		text     string
		want     string
	}{
		{0, "007", "7"},
		{4, "1.50", "1.5"},
		{4, "2.00", "2"},
		{4, "-03.10", "-3.1"},
	}
	for _, c := range cases {
		var e *Editor
		if c.decimals == 0 {
			e = NewInt()
		} else {
			e = NewFloat(c.decimals)
		}
		e.SetText(c.text)
		e.FinishEditing()
		if e.Text() != c.want {
			t.Fatalf("FinishEditing(%q) = %q, want %q", c.text, e.Text(), c.want)
		}
	}
}

func TestIntStepAtCaret(t *testing.T) {
	cases := []struct {
		text     string
		caret    int
		up       bool
		wantText string
		wantPos  int
	}{
		{"15", 2, true, "16", 1},  // caret at end edits the ones digit
		{"15", 1, true, "16", 1},  // on the ones digit
		{"15", 0, true, "25", 0},  // on the tens digit
		{"15", 1, false, "14", 1},
		{"007", 2, true, "008", 2}, // zero padding preserved
		{"007", 0, true, "107", 0},
		{"10", 0, false, "00", 0}, // width kept when leading digit drops
		{"-5", 1, true, "-4", 1},
		{"0", 0, false, "-1", 1},
	}
	for _, c := range cases {
		e := NewInt()
		e.SetText(c.text)
		e.SetCaret(c.caret)
		if !e.Step(c.up) {
			t.Fatalf("step(%q@%d) failed", c.text, c.caret)
		}
		if e.Text() != c.wantText {
			t.Fatalf("step(%q@%d) text = %q, want %q", c.text, c.caret, e.Text(), c.wantText)
		}
		if start, n := e.Selection(); start != c.wantPos || n != 1 {
			t.Fatalf("step(%q@%d) selection = (%d,%d), want (%d,1)", c.text, c.caret, start, n, c.wantPos)
		}
	}
}

// Caret-position cases around the decimal point: before it, on it, one and
// two digits after, and past the end of undecorated text.
func TestFloatStepAtCaret(t *testing.T) {
	cases := []struct {
		text     string
		caret    int
		up       bool
		wantText string
		wantPos  int
	}{
		{"1.5", 0, true, "2.5", 0},   // before the decimal: ones digit
		{"1.5", 1, true, "1.6", 2},   // on the decimal point: first decimal
		{"1.5", 2, true, "1.6", 2},   // first decimal digit
		{"1.25", 3, true, "1.26", 3}, // second decimal digit
		{"1.5", 3, true, "1.51", 3},  // past the end: next decimal place
		{"15", 2, true, "15.1", 3},   // no decimal point, caret at end
		{"0.50", 4, true, "0.501", 4},
		{"1.5", 2, false, "1.4", 2},
		{"-1.5", 1, true, "-0.5", 1}, // sign column is skipped, digit is not
	}
	for _, c := range cases {
		e := NewFloat(4)
		e.SetText(c.text)
		e.SetCaret(c.caret)
		if !e.Step(c.up) {
			t.Fatalf("step(%q@%d) failed", c.text, c.caret)
		}
		if e.Text() != c.wantText {
			t.Fatalf("step(%q@%d) text = %q, want %q", c.text, c.caret, e.Text(), c.wantText)
		}
		if start, n := e.Selection(); start != c.wantPos || n != 1 {
			t.Fatalf("step(%q@%d) selection = (%d,%d), want (%d,1)", c.text, c.caret, start, n, c.wantPos)
		}
	}
}

func TestStepUpDownReturnsToOriginal(t *testing.T) {
	e := NewFloat(4)
	e.SetText("3.141")
	e.SetCaret(4)
	if !e.Step(true) || !e.Step(false) {
		t.Fatalf("step up/down failed")
	}
	if e.Text() != "3.141" {
		t.Fatalf("expected original text, got %q", e.Text())
	}
	if start, _ := e.Selection(); start != 4 {
		t.Fatalf("expected caret back over the same digit, got %d", start)
	}
}

func TestStepOutOfBoundsAborts(t *testing.T) {
	e := NewInt()
	e.SetMinimum(0)
	e.SetMaximum(10)
	e.SetText("10")
	e.SetCaret(0)
	var fired int
	e.OnChanged = func(float64) { fired++ }
	if e.Step(true) { // 10 + 10 exceeds max
		t.Fatalf("expected step to abort")
	}
	if e.Text() != "10" || e.Caret() != 0 || fired != 0 {
		t.Fatalf("state changed after aborted step: %q caret=%d fired=%d", e.Text(), e.Caret(), fired)
	}
	if e.Step(false) { // 10 - 10 = 0 is fine
	} else {
		t.Fatalf("in-range step rejected")
	}
}

func TestStepOnNonDigitFails(t *testing.T) {
	e := NewInt()
	e.SetText("-15")
	e.SetCaret(0) // on the sign
	if e.Step(true) {
		t.Fatalf("expected no-op on sign")
	}
	if e.Text() != "-15" {
		t.Fatalf("text changed: %q", e.Text())
	}
}

func TestStepDecimalsOverflowAborts(t *testing.T) {
	e := NewFloat(2)
	e.SetText("0.50")
	e.SetCaret(4) // would need a third decimal place
	if e.Step(true) {
		t.Fatalf("expected abort when precision would be exceeded")
	}
	if e.Text() != "0.50" {
		t.Fatalf("text changed: %q", e.Text())
	}
}

func TestStepUsesSelectionStart(t *testing.T) {
	e := NewInt()
	e.SetText("15")
	e.Select(0, 2)
	if !e.Step(true) {
		t.Fatalf("step failed")
	}
	if e.Text() != "25" {
		t.Fatalf("expected tens digit edit, got %q", e.Text())
	}
}

func TestChangeNotificationOncePerCommit(t *testing.T) {
	e := NewInt()
	var fired int
	e.OnChanged = func(float64) { fired++ }

	e.SetValue(5)
	if fired != 1 {
		t.Fatalf("expected 1 notification, got %d", fired)
	}
	e.SetValue(5) // same value, no event
	if fired != 1 {
		t.Fatalf("expected no notification for equal value, got %d", fired)
	}
	e.SetText("9") // typing alone does not commit
	if fired != 1 {
		t.Fatalf("typing fired a notification")
	}
	e.FinishEditing()
	if fired != 2 {
		t.Fatalf("expected commit on editing finished, got %d", fired)
	}
}

func TestFixup(t *testing.T) {
	i := NewInt()
	if got := i.Fixup("1,234"); got != "1234" {
		t.Fatalf("int fixup: %q", got)
	}
	f := NewFloat(2)
	f.SetMinimum(0)
	f.SetMaximum(100)
	if got := f.Fixup("12a.3b4"); got != "12.34" {
		t.Fatalf("float fixup: %q", got)
	}
	if got := f.Fixup("250"); got != "100.00" {
		t.Fatalf("float fixup clamp: %q", got)
	}
}

func TestValid(t *testing.T) {
	f := NewFloat(2)
	f.SetMinimum(0)
	f.SetMaximum(10)
	cases := map[string]bool{
		"5":     true,
		"5.25":  true,
		"5.255": false, // too many decimals
		"11":    false, // out of range
		"1e1":   false, // exponent notation is not accepted
		"x":     false,
	}
	for in, want := range cases {
		if got := f.Valid(in); got != want {
			t.Fatalf("Valid(%q) = %v, want %v", in, got, want)
		}
	}
}
