/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopropedit/internal/config"
	"gopropedit/internal/crash"
	applog "gopropedit/internal/log"
	"gopropedit/internal/native"
	"gopropedit/internal/preset"
	"gopropedit/internal/props"
	"gopropedit/internal/ui"
	"gopropedit/internal/version"
)

func usage() {
	fmt.Println("GoPropEdit — property editing toolkit")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gopropedit version|-v|--version      Show version")
	fmt.Println("  gopropedit demo                       Build the demo editor headless and print its value tree")
	fmt.Println("  gopropedit validate <file>            Check a preset file against the document schema")
	fmt.Println("  gopropedit recent [<dir>]             List recently used presets in a store")
	fmt.Println("  gopropedit ui [<dir>]                 Launch desktop UI (build with -tags fyne for full UI)")
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	defer func() { crash.Recover(nil) }()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("GoPropEdit — property editing toolkit")
			fmt.Println(version.String())
			return
		case "demo":
			e := props.NewEditor(native.NewHeadless())
			if err := ui.BuildDemo(e); err != nil {
				l.Error("demo build failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			doc := preset.Snapshot("demo", e)
			for _, tab := range e.TabNames() {
				name := tab
				if name == props.NoTab {
					name = "(no tab)"
				}
				fmt.Printf("%s:\n", name)
				for _, group := range e.GroupNames(tab) {
					fmt.Printf("  %s:\n", group)
					for prop, v := range doc.Values[tab][group] {
						fmt.Printf("    %s: %v\n", prop, v)
					}
				}
			}
			return
		case "validate":
			if len(args) < 3 {
				fmt.Println("validate requires <file>")
				usage()
				os.Exit(2)
			}
			path, _ := filepath.Abs(args[2])
			l.Info("validate preset", slog.String("path", path))
			errs, err := preset.ValidateFile(path)
			if err != nil {
				l.Error("validate failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			if len(errs) > 0 {
				for _, e := range errs {
					fmt.Println("Invalid:", e)
				}
				os.Exit(1)
			}
			fmt.Println("Valid.")
			return
		case "recent":
			dir, err := resolvePresetDir(args)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			store, err := preset.OpenStore(dir)
			if err != nil {
				l.Error("open store failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			defer store.Close()
			cfg, _ := config.Load()
			entries, err := store.Recents().List(cfg.General.RecentLimit)
			if err != nil {
				l.Error("list recents failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			for _, e := range entries {
				fmt.Printf("%s\t%s\n", e.Name, e.Path)
			}
			return
		case "ui":
			dir, err := resolvePresetDir(args)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			if err := ui.Run(dir); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}

// resolvePresetDir uses an explicit directory argument when given and the
// configured store location otherwise.
func resolvePresetDir(args []string) (string, error) {
	if len(args) >= 3 {
		return filepath.Abs(args[2])
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return config.DefaultPresetDir(cfg)
}
