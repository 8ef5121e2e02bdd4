/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package ui renders property editors with Fyne and hosts the demo window.
// The Fyne parts compile only with the "fyne" build tag so headless builds
// and CI stay free of display dependencies.
package ui

import (
	"gopropedit/internal/native"
	"gopropedit/internal/props"
	"gopropedit/internal/vec"
)

// BuildDemo fills an editor with a representative property roster covering
// every variant, plus a linked group.
func BuildDemo(e *props.Editor) error {
	placements := []struct {
		cfg  props.Config
		tab  string
		grp  string
		box  string
	}{
		{props.Float2Config{Name: "translate"}, "transform", "main", "placement"},
		{props.FloatConfig{Name: "rotate", SliderMin: -180, SliderMax: 180, Decimals: 1}, "transform", "main", "placement"},
		{props.Float2Config{Name: "scale", Default: vec.Float2{X: 1, Y: 1}}, "transform", "main", "placement"},
		{props.EnumConfig{Name: "rotationOrder", Options: []string{"xyz", "zxy", "yzx"}}, "transform", "main", ""},
		{props.BoolConfig{Name: "visible", Default: true}, "transform", "main", ""},
		{props.IntConfig{Name: "samples", Default: 16, SliderMin: 1, SliderMax: 256}, "render", "quality", ""},
		{props.FloatConfig{Name: "gamma", Default: 2.2, SliderMin: 0.1, SliderMax: 4}, "render", "quality", ""},
		{props.Int2Config{Name: "resolution", Default: vec.Int2{X: 1920, Y: 1080}}, "render", "output", ""},
		{props.PathConfig{Name: "outputPath", Mode: native.SaveFile}, "render", "output", ""},
		{props.ColorConfig{Name: "backgroundColor", Default: vec.RGB{R: 0.18, G: 0.18, B: 0.18}}, "render", "output", ""},
		{props.StringConfig{Name: "camera", Default: "persp"}, props.NoTab, "scene", ""},
	}
	for _, p := range placements {
		if _, err := e.AddProperty(p.cfg, p.tab, p.grp, p.box); err != nil {
			return err
		}
	}

	// a linked group mirroring the transform main group, per-row overridable
	src, err := e.Group("transform", "main")
	if err != nil {
		return err
	}
	linked, err := e.Group("transform", "secondary")
	if err != nil {
		return err
	}
	return linked.Link(e.Factory(), src)
}
