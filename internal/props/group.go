/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package props

import (
	"fmt"

	"gopropedit/internal/native"
)

// Row is one widget placed in a group. A row created through Link starts
// mirrored: it tracks its source widget and its controls are disabled
// until the override is toggled on.
type Row struct {
	group  *Group
	widget Widget
	box    string

	// link state; nil source means the row was added directly
	source   Widget
	override bool
	mirror   *Subscription
}

func (r *Row) Widget() Widget { return r.widget }

// Box names the sub-section this row belongs to; empty for ungrouped rows.
func (r *Row) Box() string { return r.box }

// Linked reports whether this row mirrors a source widget.
func (r *Row) Linked() bool { return r.source != nil }

// Overridden reports whether a linked row has been detached from its source.
func (r *Row) Overridden() bool { return r.override }

// SetOverride toggles a linked row between mirrored and overridden state.
// Entering override cancels the mirror subscription and enables the row.
// Leaving it pulls the source's current value, re-subscribes and disables
// the row again. At most one subscription is live at any time.
func (r *Row) SetOverride(override bool) {
	if r.source == nil || override == r.override {
		return
	}
	r.override = override
	if override {
		r.mirror.Cancel()
		r.mirror = nil
		r.widget.SetEnabled(true)
	} else {
		r.pull()
		r.mirror = r.source.OnChanged(r.pull)
		r.widget.SetEnabled(false)
	}
	if r.group.onRowState != nil {
		r.group.onRowState(r)
	}
}

func (r *Row) pull() {
	// a mirrored push must not loop back through the source
	_ = r.widget.SetValue(r.source.Value())
}

func (r *Row) close() {
	r.mirror.Cancel()
	r.mirror = nil
	r.widget.Close()
}

// GroupConfig configures a property group.
type GroupConfig struct {
	Name  string
	Label string
}

// Group is a named ordered collection of property widgets, optionally
// boxed into sub-sections and optionally linked to another group.
type Group struct {
	name    string
	label   string
	rows    []*Row
	byName  map[string]*Row
	boxes   []string
	boxOpen map[string]bool
	changed signal

	// onRowState fires when a row's override state flips, so the
	// rendering layer can restyle the row.
	onRowState func(*Row)
}

func NewGroup(cfg GroupConfig) (*Group, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("group: name is required")
	}
	if cfg.Label == "" {
		cfg.Label = Title(cfg.Name)
	}
	return &Group{
		name:    cfg.Name,
		label:   cfg.Label,
		byName:  map[string]*Row{},
		boxOpen: map[string]bool{},
	}, nil
}

func (g *Group) Name() string  { return g.name }
func (g *Group) Label() string { return g.label }

// Add appends a widget as a new row. An empty box name leaves the row
// outside any sub-section. Duplicate widget names are rejected.
func (g *Group) Add(w Widget, box string) (*Row, error) {
	if _, dup := g.byName[w.Name()]; dup {
		return nil, fmt.Errorf("group %q: duplicate property %q", g.name, w.Name())
	}
	row := &Row{group: g, widget: w, box: box}
	g.rows = append(g.rows, row)
	g.byName[w.Name()] = row
	if box != "" {
		if _, seen := g.boxOpen[box]; !seen {
			g.boxes = append(g.boxes, box)
			g.boxOpen[box] = true
		}
	}
	w.OnChanged(func() { g.changed.emit() })
	return row, nil
}

// Link clones every widget of src into this group as a mirrored row.
// The clones track the source values and render disabled until their
// override is toggled. Cloning happens through each widget's stored
// configuration, so the linked group is built with fresh native controls.
func (g *Group) Link(f native.Factory, src *Group) error {
	for _, srcRow := range src.rows {
		w, err := srcRow.widget.Clone(f)
		if err != nil {
			return fmt.Errorf("group %q: link %q: %w", g.name, srcRow.widget.Name(), err)
		}
		row, err := g.Add(w, srcRow.box)
		if err != nil {
			w.Close()
			return err
		}
		row.source = srcRow.widget
		row.pull()
		row.mirror = row.source.OnChanged(row.pull)
		w.SetEnabled(false)
	}
	return nil
}

// Row returns the row for a property name, or nil.
func (g *Group) Row(name string) *Row { return g.byName[name] }

// Rows returns the rows in insertion order.
func (g *Group) Rows() []*Row { return g.rows }

// Boxes returns the sub-section names in first-use order.
func (g *Group) Boxes() []string { return g.boxes }

// BoxOpen reports the collapsible state of a sub-section.
func (g *Group) BoxOpen(box string) bool { return g.boxOpen[box] }

func (g *Group) SetBoxOpen(box string, open bool) {
	if _, seen := g.boxOpen[box]; seen {
		g.boxOpen[box] = open
	}
}

// Values reads the group-local value map: property name to value.
func (g *Group) Values() map[string]any {
	out := make(map[string]any, len(g.rows))
	for _, r := range g.rows {
		out[r.widget.Name()] = r.widget.Value()
	}
	return out
}

// SetValues assigns every entry present in both the group and the mapping.
// Unknown keys are ignored and absent keys keep their prior values.
func (g *Group) SetValues(values map[string]any) error {
	for _, r := range g.rows {
		v, ok := values[r.widget.Name()]
		if !ok {
			continue
		}
		if err := r.widget.SetValue(v); err != nil {
			return err
		}
	}
	return nil
}

// OnChanged subscribes to any widget change within the group.
func (g *Group) OnChanged(fn func()) *Subscription { return g.changed.subscribe(fn) }

// OnRowState registers the hook invoked when a row's override flips.
func (g *Group) OnRowState(fn func(*Row)) { g.onRowState = fn }

// Close cancels all mirror subscriptions and closes every widget. Rows in
// other groups linked to this one keep working; their subscriptions were
// dropped by the widgets' close.
func (g *Group) Close() {
	for _, r := range g.rows {
		r.close()
	}
	g.changed.close()
}
