/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package preset

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"gopropedit/internal/props"
	"gopropedit/internal/vec"
)

// Snapshot flattens an editor's value tree into plain YAML kinds:
// vectors become two-element lists, colors three-element lists.
func Snapshot(name string, e *props.Editor) Document {
	tree := e.Values()
	values := make(map[string]map[string]map[string]any, len(tree))
	for tab, groups := range tree {
		gm := make(map[string]map[string]any, len(groups))
		for group, entries := range groups {
			pm := make(map[string]any, len(entries))
			for prop, v := range entries {
				pm[prop] = encodeValue(v)
			}
			gm[group] = pm
		}
		values[tab] = gm
	}
	return Document{Name: name, Values: values}
}

// Apply merges a document into an editor. Entries whose tab, group or
// property does not exist are skipped; values are coerced to each target
// widget's current kind before assignment.
func Apply(e *props.Editor, doc Document) error {
	tree := make(props.ValueTree, len(doc.Values))
	for tab, groups := range doc.Values {
		gm := make(map[string]map[string]any, len(groups))
		for group, entries := range groups {
			pm := make(map[string]any, len(entries))
			for prop, raw := range entries {
				cur, ok := currentValue(e, tab, group, prop)
				if !ok {
					continue
				}
				v, err := decodeValue(cur, raw)
				if err != nil {
					return fmt.Errorf("preset %q: %s/%s/%s: %w", doc.Name, tab, group, prop, err)
				}
				pm[prop] = v
			}
			gm[group] = pm
		}
		tree[tab] = gm
	}
	return e.SetValues(tree)
}

func currentValue(e *props.Editor, tab, group, prop string) (any, bool) {
	groups, ok := e.Values()[tab]
	if !ok {
		return nil, false
	}
	entries, ok := groups[group]
	if !ok {
		return nil, false
	}
	v, ok := entries[prop]
	return v, ok
}

func encodeValue(v any) any {
	switch x := v.(type) {
	case vec.Int2:
		return []any{x.X, x.Y}
	case vec.Float2:
		return []any{x.X, x.Y}
	case vec.RGB:
		return []any{x.R, x.G, x.B}
	default:
		return v
	}
}

// decodeValue coerces a plain YAML value to the kind of cur, the target
// widget's current value.
func decodeValue(cur, raw any) (any, error) {
	switch cur.(type) {
	case int:
		n, ok := asFloat(raw)
		if !ok {
			return nil, fmt.Errorf("expected number, got %T", raw)
		}
		return int(n), nil
	case float64:
		n, ok := asFloat(raw)
		if !ok {
			return nil, fmt.Errorf("expected number, got %T", raw)
		}
		return n, nil
	case bool:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", raw)
		}
		return b, nil
	case string:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", raw)
		}
		return s, nil
	case vec.Int2:
		xs, err := asFloats(raw, 2)
		if err != nil {
			return nil, err
		}
		return vec.Int2{X: int(xs[0]), Y: int(xs[1])}, nil
	case vec.Float2:
		xs, err := asFloats(raw, 2)
		if err != nil {
			return nil, err
		}
		return vec.Float2{X: xs[0], Y: xs[1]}, nil
	case vec.RGB:
		if s, ok := raw.(string); ok {
			return ParseColor(s)
		}
		xs, err := asFloats(raw, 3)
		if err != nil {
			return nil, err
		}
		return vec.RGB{R: xs[0], G: xs[1], B: xs[2]}, nil
	default:
		return nil, fmt.Errorf("unsupported target kind %T", cur)
	}
}

// ParseColor accepts a named SVG 1.1 color ("cornflowerblue"), or a hex
// triple "#rrggbb" / "#rgb", and returns the normalized triple.
func ParseColor(s string) (vec.RGB, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return vec.RGB{}, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return vec.RGBFromColor(c), nil
	}
	return vec.RGB{}, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(s string) (vec.RGB, error) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return vec.RGB{}, fmt.Errorf("hex color must have 3 or 6 digits")
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return vec.RGB{}, fmt.Errorf("parse hex color: %w", err)
	}
	return vec.RGB{
		R: float64(n>>16&0xff) / 255,
		G: float64(n>>8&0xff) / 255,
		B: float64(n&0xff) / 255,
	}, nil
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

func asFloats(v any, n int) ([]float64, error) {
	xs, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of %d numbers, got %T", n, v)
	}
	if len(xs) != n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(xs))
	}
	out := make([]float64, n)
	for i, x := range xs {
		f, ok := asFloat(x)
		if !ok {
			return nil, fmt.Errorf("component %d: expected number, got %T", i, x)
		}
		out[i] = f
	}
	return out, nil
}
