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

// NoTab is the sentinel tab name for widgets placed outside any tab. It
// appears as a key in the value tree like a regular tab name.
const NoTab = ""

// ValueTree is the externally exchanged shape: tab name to group name to
// property name to value.
type ValueTree = map[string]map[string]map[string]any

// Editor composes tabs, groups and widgets, aggregates their values into
// one tree and funnels every widget change into a single editor-level
// change event carrying the full tree.
type Editor struct {
	factory native.Factory

	tabOrder []string
	tabs     map[string]*tab

	// onChanged receives the entire current tree, not a delta.
	onChanged func(ValueTree)
}

type tab struct {
	name   string
	order  []string
	groups map[string]*Group
}

func NewEditor(f native.Factory) *Editor {
	return &Editor{factory: f, tabs: map[string]*tab{}}
}

func (e *Editor) Factory() native.Factory { return e.factory }

// CreateTab ensures the tab container for name exists. NoTab addresses the
// unqualified scope. Placement calls create tabs lazily anyway; this only
// pins an explicit ordering.
func (e *Editor) CreateTab(name string) { e.tab(name) }

func (e *Editor) tab(name string) *tab {
	t, ok := e.tabs[name]
	if !ok {
		t = &tab{name: name, groups: map[string]*Group{}}
		e.tabs[name] = t
		e.tabOrder = append(e.tabOrder, name)
	}
	return t
}

// Group returns the group under (tab, group), creating both lazily.
func (e *Editor) Group(tabName, groupName string) (*Group, error) {
	if groupName == "" {
		return nil, fmt.Errorf("editor: group name is required")
	}
	t := e.tab(tabName)
	g, ok := t.groups[groupName]
	if !ok {
		var err error
		g, err = NewGroup(GroupConfig{Name: groupName})
		if err != nil {
			return nil, err
		}
		t.groups[groupName] = g
		t.order = append(t.order, groupName)
		g.OnChanged(func() { e.emit() })
	}
	return g, nil
}

// AddProperty builds a widget from cfg and appends it as a row under
// (tab, group, box). Tab and group containers are created as needed.
func (e *Editor) AddProperty(cfg Config, tabName, groupName, box string) (Widget, error) {
	g, err := e.Group(tabName, groupName)
	if err != nil {
		return nil, err
	}
	w, err := Create(e.factory, cfg)
	if err != nil {
		return nil, err
	}
	if _, err := g.Add(w, box); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// TabNames returns the tab names in creation order, NoTab included where used.
func (e *Editor) TabNames() []string { return append([]string(nil), e.tabOrder...) }

// GroupNames returns a tab's group names in creation order.
func (e *Editor) GroupNames(tabName string) []string {
	t, ok := e.tabs[tabName]
	if !ok {
		return nil
	}
	return append([]string(nil), t.order...)
}

// Values reads the full value tree.
func (e *Editor) Values() ValueTree {
	out := make(ValueTree, len(e.tabs))
	for name, t := range e.tabs {
		groups := make(map[string]map[string]any, len(t.groups))
		for gname, g := range t.groups {
			groups[gname] = g.Values()
		}
		out[name] = groups
	}
	return out
}

// SetValues merges a value tree into the editor. Only entries whose tab,
// group and property all exist are assigned; unknown keys are ignored and
// absent keys keep their prior values. Every assignment emits one change
// event through the normal widget path.
func (e *Editor) SetValues(values ValueTree) error {
	for tname, groups := range values {
		t, ok := e.tabs[tname]
		if !ok {
			continue
		}
		for gname, props := range groups {
			g, ok := t.groups[gname]
			if !ok {
				continue
			}
			if err := g.SetValues(props); err != nil {
				return err
			}
		}
	}
	return nil
}

// OnChanged registers the aggregate change handler. A single widget change
// produces exactly one invocation with the entire current tree.
func (e *Editor) OnChanged(fn func(ValueTree)) { e.onChanged = fn }

func (e *Editor) emit() {
	if e.onChanged != nil {
		e.onChanged(e.Values())
	}
}

// Close closes every group and its widgets.
func (e *Editor) Close() {
	for _, t := range e.tabs {
		for _, g := range t.groups {
			g.Close()
		}
	}
	e.tabs = map[string]*tab{}
	e.tabOrder = nil
}
