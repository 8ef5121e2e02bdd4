//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"gopropedit/internal/crash"
	applog "gopropedit/internal/log"
	"gopropedit/internal/preset"
	"gopropedit/internal/props"
	"gopropedit/internal/version"
)

// Run starts the desktop demo editor. presetDir selects the preset store
// location; empty uses the given directory resolution from config.
func Run(presetDir string) error {
	l := applog.WithComponent("ui")
	l.Info("starting ui", slog.String("version", version.String()))

	fyneApp := app.NewWithID("gopropedit")
	w := fyneApp.NewWindow("GoPropEdit " + version.String())
	w.Resize(fyne.NewSize(900, 700))

	factory := newFactory(w)
	editor := props.NewEditor(factory)
	if err := BuildDemo(editor); err != nil {
		return fmt.Errorf("build demo editor: %w", err)
	}

	var store *preset.Store
	if presetDir != "" {
		var err error
		store, err = preset.OpenStore(presetDir)
		if err != nil {
			return fmt.Errorf("open preset store: %w", err)
		}
		defer store.Close()
	}

	snap := &crash.Snapshot{
		Store:   store,
		Current: func() preset.Document { return preset.Snapshot("unsaved", editor) },
	}
	defer crash.Recover(snap)

	editor.OnChanged(func(tree props.ValueTree) {
		l.Debug("values changed", slog.Int("tabs", len(tree)))
	})

	tabs := container.NewAppTabs()
	for _, tabName := range editor.TabNames() {
		title := tabName
		if title == props.NoTab {
			title = "General"
		}
		tabs.Append(container.NewTabItem(title, renderTab(editor, tabName)))
	}

	toolbar := container.NewHBox(
		widget.NewButton("Save Preset...", func() {
			if store == nil {
				dialog.ShowInformation("Presets", "No preset store configured. Pass a directory to the ui command.", w)
				return
			}
			entry := widget.NewEntry()
			entry.SetPlaceHolder("preset name")
			dialog.ShowForm("Save Preset", "Save", "Cancel", []*widget.FormItem{
				widget.NewFormItem("Name", entry),
			}, func(ok bool) {
				if !ok || entry.Text == "" {
					return
				}
				if err := store.Save(preset.Snapshot(entry.Text, editor)); err != nil {
					dialog.ShowError(err, w)
				}
			}, w)
		}),
		widget.NewButton("Load Preset...", func() {
			if store == nil {
				dialog.ShowInformation("Presets", "No preset store configured. Pass a directory to the ui command.", w)
				return
			}
			names, err := store.List()
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if len(names) == 0 {
				dialog.ShowInformation("Presets", "No presets saved yet.", w)
				return
			}
			sel := widget.NewSelect(names, nil)
			dialog.NewCustomConfirm("Load Preset", "Load", "Cancel", sel, func(ok bool) {
				if !ok || sel.Selected == "" {
					return
				}
				doc, err := store.Load(sel.Selected)
				if err != nil {
					dialog.ShowError(err, w)
					return
				}
				if err := preset.Apply(editor, doc); err != nil {
					dialog.ShowError(err, w)
				}
			}, w).Show()
		}),
	)

	w.SetContent(container.NewBorder(toolbar, nil, nil, nil, tabs))
	w.ShowAndRun()
	return nil
}

func renderTab(editor *props.Editor, tabName string) fyne.CanvasObject {
	groups := container.NewVBox()
	for _, groupName := range editor.GroupNames(tabName) {
		g, err := editor.Group(tabName, groupName)
		if err != nil {
			continue
		}
		groups.Add(widget.NewCard(g.Label(), "", renderGroup(g)))
	}
	return container.NewVScroll(groups)
}

func renderGroup(g *props.Group) fyne.CanvasObject {
	boxed := map[string]*fyne.Container{}
	root := container.NewVBox()
	acc := widget.NewAccordion()
	for _, box := range g.Boxes() {
		c := container.NewVBox()
		boxed[box] = c
		item := widget.NewAccordionItem(props.Title(box), c)
		item.Open = g.BoxOpen(box)
		acc.Append(item)
	}

	for _, row := range g.Rows() {
		obj := renderRow(row)
		if c, ok := boxed[row.Box()]; ok {
			c.Add(obj)
		} else {
			root.Add(obj)
		}
	}
	if len(g.Boxes()) > 0 {
		root.Add(acc)
	}
	return root
}

// resetLabel is a row label that resets the property on double-click.
type resetLabel struct {
	widget.Label
	reset func()
}

func newResetLabel(text string, reset func()) *resetLabel {
	l := &resetLabel{reset: reset}
	l.SetText(text)
	l.ExtendBaseWidget(l)
	return l
}

func (l *resetLabel) DoubleTapped(_ *fyne.PointEvent) {
	if l.reset != nil {
		l.reset()
	}
}

// renderRow lays out one property: label, override checkbox for linked
// rows, then the variant's controls. Double-clicking the label restores
// the configured default.
func renderRow(row *props.Row) fyne.CanvasObject {
	w := row.Widget()
	label := newResetLabel(w.Label(), func() { _ = w.SetValue(w.Default()) })

	var controls fyne.CanvasObject
	switch v := w.(type) {
	case *props.Int:
		controls = container.NewBorder(nil, nil, nil, asObject(v.Slider()), asObject(v.Line()))
	case *props.Float:
		controls = container.NewBorder(nil, nil, nil, asObject(v.Slider()), asObject(v.Line()))
	case *props.Int2:
		x, y := v.Lines()
		controls = container.NewGridWithColumns(2, asObject(x), asObject(y))
	case *props.Float2:
		x, y := v.Lines()
		controls = container.NewGridWithColumns(2, asObject(x), asObject(y))
	case *props.Bool:
		controls = asObject(v.Checkbox())
	case *props.String:
		controls = asObject(v.Entry())
	case *props.Path:
		controls = container.NewBorder(nil, nil, nil, asObject(v.Button()), asObject(v.Entry()))
	case *props.Enum:
		controls = asObject(v.Select())
	case *props.Color:
		r, g, b := v.Lines()
		controls = container.NewGridWithColumns(4, asObject(r), asObject(g), asObject(b), asObject(v.Swatch()))
	default:
		controls = widget.NewLabel(fmt.Sprintf("%v", w.Value()))
	}

	left := container.NewHBox(label)
	if row.Linked() {
		override := widget.NewCheck("", func(on bool) { row.SetOverride(on) })
		override.SetChecked(row.Overridden())
		left.Add(override)
	}
	return container.NewBorder(nil, nil, left, nil, controls)
}

// asObject unwraps a native control back to its Fyne object.
func asObject(c any) fyne.CanvasObject {
	switch x := c.(type) {
	case *stepEntry:
		return x
	case *fyneSlider:
		return x.slider
	case *fyneCheck:
		return x.check
	case *fyneSelect:
		return x.sel
	case *fyneButton:
		return x.box
	case fyne.CanvasObject:
		return x
	default:
		return widget.NewLabel("")
	}
}

