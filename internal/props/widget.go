/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package props implements the data-bound property widgets and their
// composition into groups, tabs and editors. Widgets own native controls
// through the native.Factory substrate and keep a typed value, the displayed
// control state and change notifications mutually consistent: programmatic
// pushes into sub-controls never notify, so each externally observable value
// change emits exactly once.
package props

import (
	"fmt"

	"gopropedit/internal/native"
)

// Widget is the capability surface shared by every property variant.
type Widget interface {
	// Name identifies the widget inside its group; immutable.
	Name() string
	// Label is the display text, derived from Name unless configured.
	Label() string
	// Value returns the current typed value.
	Value() any
	// SetValue validates v against the variant's accepted kinds, pushes it
	// into the owned native controls without re-notification, and emits one
	// change event.
	SetValue(v any) error
	// Default returns the configured default value.
	Default() any
	// OnChanged subscribes to value changes; observers read Value.
	OnChanged(fn func()) *Subscription
	// Clone builds a new widget of the same variant from this widget's
	// original configuration.
	Clone(f native.Factory) (Widget, error)
	// SetEnabled enables or disables every owned native control.
	SetEnabled(enabled bool)
	// Close releases subscriptions; a closed widget no longer notifies.
	Close()
}

// Config is implemented by the per-variant configuration structs. Each
// config carries the full set of constructor options so an equivalent
// widget can be rebuilt later (cloning, group linking).
type Config interface {
	PropertyName() string
	// build constructs the widget; called by Create.
	build(f native.Factory) (Widget, error)
}

// Create constructs a property widget from a variant configuration.
// Configuration problems (missing name, empty enum set, bad bounds) fail
// here, before any native control is created.
func Create(f native.Factory, cfg Config) (Widget, error) {
	return cfg.build(f)
}

// typeErr reports an assignment outside a widget's accepted kinds.
func typeErr(name, expected string, got any) error {
	return fmt.Errorf("property %q: value has incorrect type (expected %s, got %T)", name, expected, got)
}

// configErr reports an invalid construction-time option.
func configErr(name, format string, args ...any) error {
	return fmt.Errorf("property %q: %s", name, fmt.Sprintf(format, args...))
}

// base carries the identity and notification plumbing shared by variants.
type base struct {
	name    string
	label   string
	changed signal
}

func newBase(name, label string) (base, error) {
	if name == "" {
		return base{}, fmt.Errorf("property: name is required")
	}
	if label == "" {
		label = Title(name)
	}
	return base{name: name, label: label}, nil
}

func (b *base) Name() string  { return b.name }
func (b *base) Label() string { return b.label }

func (b *base) OnChanged(fn func()) *Subscription { return b.changed.subscribe(fn) }

func (b *base) emit() { b.changed.emit() }

func (b *base) Close() { b.changed.close() }
