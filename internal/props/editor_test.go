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

func buildEditor(t *testing.T) *Editor {
	t.Helper()
	e := NewEditor(native.NewHeadless())
	add := func(cfg Config, tab, group string) {
		t.Helper()
		if _, err := e.AddProperty(cfg, tab, group, ""); err != nil {
			t.Fatalf("AddProperty(%T): %v", cfg, err)
		}
	}
	add(IntConfig{Name: "samples", Default: 16}, "render", "quality")
	add(FloatConfig{Name: "gamma", Default: 2.2, SliderMin: 0, SliderMax: 4}, "render", "quality")
	add(StringConfig{Name: "camera", Default: "persp"}, "render", "scene")
	add(BoolConfig{Name: "verbose"}, NoTab, "general")
	return e
}

func TestEditorLazyCreation(t *testing.T) {
	e := buildEditor(t)

	if tabs := e.TabNames(); len(tabs) != 2 || tabs[0] != "render" || tabs[1] != NoTab {
		t.Fatalf("tabs = %q", tabs)
	}
	if groups := e.GroupNames("render"); len(groups) != 2 || groups[0] != "quality" || groups[1] != "scene" {
		t.Fatalf("render groups = %q", groups)
	}

	// re-requesting an existing placement reuses the containers
	g1, err := e.Group("render", "quality")
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	g2, err := e.Group("render", "quality")
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if g1 != g2 {
		t.Fatalf("lazy creation duplicated a group")
	}
}

func TestEditorValuesTree(t *testing.T) {
	e := buildEditor(t)

	got := e.Values()
	if got["render"]["quality"]["samples"] != 16 {
		t.Fatalf("samples = %v", got["render"]["quality"]["samples"])
	}
	if got["render"]["quality"]["gamma"] != 2.2 {
		t.Fatalf("gamma = %v", got["render"]["quality"]["gamma"])
	}
	if got[NoTab]["general"]["verbose"] != false {
		t.Fatalf("verbose = %v", got[NoTab]["general"]["verbose"])
	}
}

func TestEditorSetValuesPartialMerge(t *testing.T) {
	e := buildEditor(t)

	in := ValueTree{
		"render": {
			"quality": {"samples": 64},
			"unknownGroup": {"x": 1},
		},
		"unknownTab": {"g": {"y": 2}},
	}
	if err := e.SetValues(in); err != nil {
		t.Fatalf("SetValues: %v", err)
	}

	got := e.Values()
	if got["render"]["quality"]["samples"] != 64 {
		t.Fatalf("samples not merged: %v", got["render"]["quality"]["samples"])
	}
	// untouched entries keep their prior values
	if got["render"]["quality"]["gamma"] != 2.2 {
		t.Fatalf("gamma clobbered: %v", got["render"]["quality"]["gamma"])
	}
	if got["render"]["scene"]["camera"] != "persp" {
		t.Fatalf("camera clobbered: %v", got["render"]["scene"]["camera"])
	}
	// unknown keys never materialize
	if _, ok := got["unknownTab"]; ok {
		t.Fatalf("unknown tab materialized")
	}
	if _, ok := got["render"]["unknownGroup"]; ok {
		t.Fatalf("unknown group materialized")
	}
}

func TestEditorSingleAggregateEvent(t *testing.T) {
	e := buildEditor(t)

	var trees []ValueTree
	e.OnChanged(func(tree ValueTree) { trees = append(trees, tree) })

	g, err := e.Group("render", "quality")
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if err := g.Row("samples").Widget().SetValue(32); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("widget change produced %d editor events, want 1", len(trees))
	}
	// the payload is the full tree, not a delta
	if trees[0]["render"]["quality"]["samples"] != 32 {
		t.Fatalf("event tree samples = %v", trees[0]["render"]["quality"]["samples"])
	}
	if trees[0]["render"]["scene"]["camera"] != "persp" {
		t.Fatalf("event tree missing unrelated entries")
	}
}

func TestEditorMixedVariantsRoundTrip(t *testing.T) {
	e := NewEditor(native.NewHeadless())
	cfgs := []Config{
		Int2Config{Name: "resolution", Default: vec.Int2{X: 1920, Y: 1080}},
		ColorConfig{Name: "background", Default: vec.RGB{R: 0.18, G: 0.18, B: 0.18}},
		EnumConfig{Name: "rotationOrder", Options: []string{"xyz", "zxy"}},
	}
	for _, cfg := range cfgs {
		if _, err := e.AddProperty(cfg, NoTab, "scene", ""); err != nil {
			t.Fatalf("AddProperty(%T): %v", cfg, err)
		}
	}

	in := ValueTree{
		NoTab: {
			"scene": {
				"resolution":    vec.Int2{X: 640, Y: 480},
				"background":    vec.RGB{R: 1, G: 1, B: 1},
				"rotationOrder": "zxy",
			},
		},
	}
	if err := e.SetValues(in); err != nil {
		t.Fatalf("SetValues: %v", err)
	}
	got := e.Values()[NoTab]["scene"]
	if got["resolution"] != (vec.Int2{X: 640, Y: 480}) {
		t.Fatalf("resolution = %v", got["resolution"])
	}
	if got["background"] != (vec.RGB{R: 1, G: 1, B: 1}) {
		t.Fatalf("background = %v", got["background"])
	}
	if got["rotationOrder"] != "zxy" {
		t.Fatalf("rotationOrder = %v", got["rotationOrder"])
	}
}

func TestEditorGroupNameRequired(t *testing.T) {
	e := NewEditor(native.NewHeadless())
	if _, err := e.Group("tab", ""); err == nil {
		t.Fatalf("empty group name accepted")
	}
}
