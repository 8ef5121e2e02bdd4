/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package props

import (
	"testing"

	"gopropedit/internal/native"
	"gopropedit/internal/vec"
)

func TestInt2Widget(t *testing.T) {
	f := native.NewHeadless()
	w, err := NewInt2(f, Int2Config{Name: "resolution", Default: vec.Int2{X: 1920, Y: 1080}})
	if err != nil {
		t.Fatalf("NewInt2: %v", err)
	}

	x, y := w.Lines()
	if x.Text() != "1920" || y.Text() != "1080" {
		t.Fatalf("initial texts = %q, %q", x.Text(), y.Text())
	}

	events := 0
	w.OnChanged(func() { events++ })

	// editing one component reconstructs the whole pair
	yt := y.(*native.HeadlessText)
	yt.Type("720")
	yt.FinishEditing()
	if events != 1 {
		t.Fatalf("component edit fired %d events, want 1", events)
	}
	if got := w.Value().(vec.Int2); got != (vec.Int2{X: 1920, Y: 720}) {
		t.Fatalf("value = %v", got)
	}

	if err := w.SetValue(vec.Int2{X: 640, Y: 480}); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if events != 2 {
		t.Fatalf("SetValue fired %d events, want 2 total", events)
	}
	if x.Text() != "640" || y.Text() != "480" {
		t.Fatalf("after SetValue: texts = %q, %q", x.Text(), y.Text())
	}

	if err := w.SetValue(vec.Float2{X: 1, Y: 2}); err == nil {
		t.Fatalf("SetValue(Float2) on Int2 did not fail")
	}
}

func TestFloat2Widget(t *testing.T) {
	f := native.NewHeadless()
	w, err := NewFloat2(f, Float2Config{Name: "pivot", Default: vec.Float2{X: 0.5, Y: 0.5}})
	if err != nil {
		t.Fatalf("NewFloat2: %v", err)
	}

	events := 0
	w.OnChanged(func() { events++ })

	x, _ := w.Lines()
	xt := x.(*native.HeadlessText)
	xt.Type("0.75")
	xt.FinishEditing()
	if events != 1 {
		t.Fatalf("component edit fired %d events, want 1", events)
	}
	if got := w.Value().(vec.Float2); got != (vec.Float2{X: 0.75, Y: 0.5}) {
		t.Fatalf("value = %v", got)
	}

	// Int2 assignments convert componentwise
	if err := w.SetValue(vec.Int2{X: 1, Y: 2}); err != nil {
		t.Fatalf("SetValue(Int2): %v", err)
	}
	if got := w.Value().(vec.Float2); got != (vec.Float2{X: 1, Y: 2}) {
		t.Fatalf("value = %v", got)
	}
}
