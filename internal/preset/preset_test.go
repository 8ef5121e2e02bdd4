/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package preset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopropedit/internal/native"
	"gopropedit/internal/props"
	"gopropedit/internal/vec"
)

func testTree() map[string]map[string]map[string]any {
	return map[string]map[string]map[string]any{
		"render": {
			"quality": {"samples": 16, "gamma": 2.2},
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	s, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer s.Close()

	if err := s.Save(Document{Name: "draft", Values: testTree()}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	doc, err := s.Load("draft")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Name != "draft" {
		t.Fatalf("name = %q", doc.Name)
	}
	if doc.SavedAt.IsZero() {
		t.Fatalf("SavedAt not stamped")
	}
	got := doc.Values["render"]["quality"]
	if got["samples"] != 16 || got["gamma"] != 2.2 {
		t.Fatalf("values = %v", got)
	}
}

func TestStoreBackupFallback(t *testing.T) {
	root := t.TempDir()
	s, err := OpenStore(root)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer s.Close()

	if err := s.Save(Document{Name: "draft", Values: testTree()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// a second save backs up the first file
	time.Sleep(1100 * time.Millisecond) // distinct backup timestamp
	if err := s.Save(Document{Name: "draft", Values: testTree()}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	// corrupt the current file; Load must fall back to the backup
	if err := os.WriteFile(s.Path("draft"), []byte("{not yaml:::"), 0o644); err != nil {
		t.Fatalf("corrupt: %v", err)
	}
	doc, err := s.Load("draft")
	if err != nil {
		t.Fatalf("Load after corruption: %v", err)
	}
	if doc.Name != "draft" {
		t.Fatalf("backup doc name = %q", doc.Name)
	}
}

func TestStoreListDelete(t *testing.T) {
	s, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer s.Close()

	for _, name := range []string{"beta", "alpha"} {
		if err := s.Save(Document{Name: name, Values: testTree()}); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}
	names, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Fatalf("names = %v", names)
	}

	if err := s.Delete("alpha"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	names, err = s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 1 || names[0] != "beta" {
		t.Fatalf("after delete: %v", names)
	}
}

func TestSnapshotApplyRoundTrip(t *testing.T) {
	e := props.NewEditor(native.NewHeadless())
	cfgs := []props.Config{
		props.IntConfig{Name: "samples", Default: 16},
		props.Int2Config{Name: "resolution", Default: vec.Int2{X: 1920, Y: 1080}},
		props.ColorConfig{Name: "background", Default: vec.RGB{R: 0.18, G: 0.18, B: 0.18}},
		props.EnumConfig{Name: "rotationOrder", Options: []string{"xyz", "zxy"}},
	}
	for _, cfg := range cfgs {
		if _, err := e.AddProperty(cfg, "render", "scene", ""); err != nil {
			t.Fatalf("AddProperty(%T): %v", cfg, err)
		}
	}

	doc := Snapshot("shot010", e)
	if doc.Values["render"]["scene"]["samples"] != 16 {
		t.Fatalf("snapshot samples = %v", doc.Values["render"]["scene"]["samples"])
	}
	// vectors flatten to lists
	res, ok := doc.Values["render"]["scene"]["resolution"].([]any)
	if !ok || len(res) != 2 || res[0] != 1920 {
		t.Fatalf("snapshot resolution = %v", doc.Values["render"]["scene"]["resolution"])
	}

	// mutate, then apply the snapshot back
	g, err := e.Group("render", "scene")
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if err := g.SetValues(map[string]any{"samples": 99, "resolution": vec.Int2{X: 1, Y: 1}}); err != nil {
		t.Fatalf("SetValues: %v", err)
	}
	if err := Apply(e, doc); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got := e.Values()["render"]["scene"]
	if got["samples"] != 16 {
		t.Fatalf("samples = %v", got["samples"])
	}
	if got["resolution"] != (vec.Int2{X: 1920, Y: 1080}) {
		t.Fatalf("resolution = %v", got["resolution"])
	}
	if got["background"] != (vec.RGB{R: 0.18, G: 0.18, B: 0.18}) {
		t.Fatalf("background = %v", got["background"])
	}
}

func TestApplyCoercesAndSkipsUnknown(t *testing.T) {
	e := props.NewEditor(native.NewHeadless())
	if _, err := e.AddProperty(props.ColorConfig{Name: "tint"}, props.NoTab, "look", ""); err != nil {
		t.Fatalf("AddProperty: %v", err)
	}
	if _, err := e.AddProperty(props.FloatConfig{Name: "exposure"}, props.NoTab, "look", ""); err != nil {
		t.Fatalf("AddProperty: %v", err)
	}

	doc := Document{
		Name: "p",
		Values: map[string]map[string]map[string]any{
			"": {
				"look": {
					"tint":     "red", // named color coerces to a triple
					"exposure": 2,     // int coerces to float
					"unknown":  true,  // ignored
				},
			},
		},
	}
	if err := Apply(e, doc); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got := e.Values()[props.NoTab]["look"]
	if got["tint"] != (vec.RGB{R: 1}) {
		t.Fatalf("tint = %v", got["tint"])
	}
	if got["exposure"] != 2.0 {
		t.Fatalf("exposure = %v", got["exposure"])
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want vec.RGB
	}{
		{"red", vec.RGB{R: 1}},
		{"Black", vec.RGB{}},
		{"#ff0000", vec.RGB{R: 1}},
		{"#fff", vec.RGB{R: 1, G: 1, B: 1}},
		{"#000080", vec.RGB{B: 128.0 / 255}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	for _, bad := range []string{"", "notacolor", "#12345"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) did not fail", bad)
		}
	}
}

func TestValidate(t *testing.T) {
	doc := Document{Name: "ok", Values: testTree()}
	errs, err := Validate(doc)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("valid document reported errors: %v", errs)
	}

	bad := Document{Values: testTree()} // missing name
	errs, err = Validate(bad)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(errs) == 0 {
		t.Fatalf("missing name passed validation")
	}
}

func TestValidateFile(t *testing.T) {
	root := t.TempDir()
	s, err := OpenStore(root)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer s.Close()
	if err := s.Save(Document{Name: "draft", Values: testTree()}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	errs, err := ValidateFile(s.Path("draft"))
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("saved preset reported errors: %v", errs)
	}

	badPath := filepath.Join(root, "bad.preset.yaml")
	if err := os.WriteFile(badPath, []byte("values: {a: {b: {c: [1,2,3,4]}}}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	errs, err = ValidateFile(badPath)
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if len(errs) == 0 {
		t.Fatalf("oversized component list passed validation")
	}
}

func TestRecents(t *testing.T) {
	s, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer s.Close()

	for _, name := range []string{"a", "b", "c"} {
		if err := s.Save(Document{Name: name, Values: testTree()}); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}
	// re-touch "a" so it sorts first
	if _, err := s.Load("a"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	entries, err := s.Recents().List(2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "a" {
		t.Fatalf("recents = %+v", entries)
	}

	if err := s.Delete("a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	entries, err = s.Recents().List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, e := range entries {
		if e.Name == "a" {
			t.Fatalf("deleted preset still in recents")
		}
	}
}
