/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"os"
	"testing"
)

func TestEnvOverridesPresetDir(t *testing.T) {
	old := os.Getenv(EnvPresetDir)
	_ = os.Setenv(EnvPresetDir, "/srv/presets")
	t.Cleanup(func() { _ = os.Setenv(EnvPresetDir, old) })
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got, want := cfg.General.PresetDir, "/srv/presets"; got != want {
		t.Fatalf("General.PresetDir = %q, want %q", got, want)
	}
}

func TestEnvOverridesRecentLimit(t *testing.T) {
	old := os.Getenv(EnvRecentLimit)
	_ = os.Setenv(EnvRecentLimit, "25")
	t.Cleanup(func() { _ = os.Setenv(EnvRecentLimit, old) })
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.General.RecentLimit != 25 {
		t.Fatalf("General.RecentLimit = %d, want 25", cfg.General.RecentLimit)
	}
}

func TestMergeIncludesEditor(t *testing.T) {
	// Given a file config that sets editor fields, mergeInto should carry them through
	dst := Defaults()
	src := Defaults()
	src.Editor.SliderHideWidth = 320
	src.Editor.ConfirmReset = true
	mergeInto(&dst, &src)
	if dst.Editor.SliderHideWidth != 320 || !dst.Editor.ConfirmReset {
		t.Fatalf("editor fields not merged correctly: %#v", dst.Editor)
	}
}

func TestMergeIncludesLogging(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Logging.Level = "debug"
	src.Logging.Format = "json"
	src.Logging.Source = true
	src.Logging.File = "C:/tmp/gpe.log"
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" || !dst.Logging.Source || dst.Logging.File != "C:/tmp/gpe.log" {
		t.Fatalf("logging fields not merged correctly: %#v", dst.Logging)
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	oldLevel := os.Getenv(EnvLogLevel)
	oldFmt := os.Getenv(EnvLogFormat)
	oldSrc := os.Getenv(EnvLogSource)
	oldFile := os.Getenv(EnvLogFile)
	_ = os.Setenv(EnvLogLevel, "error")
	_ = os.Setenv(EnvLogFormat, "json")
	_ = os.Setenv(EnvLogSource, "1")
	_ = os.Setenv(EnvLogFile, "X:/gpe.log")
	t.Cleanup(func() {
		_ = os.Setenv(EnvLogLevel, oldLevel)
		_ = os.Setenv(EnvLogFormat, oldFmt)
		_ = os.Setenv(EnvLogSource, oldSrc)
		_ = os.Setenv(EnvLogFile, oldFile)
	})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" || !cfg.Logging.Source || cfg.Logging.File != "X:/gpe.log" {
		t.Fatalf("env overrides not applied to logging: %#v", cfg.Logging)
	}
}

func TestEnvOverrideFor(t *testing.T) {
	old := os.Getenv(EnvTheme)
	_ = os.Setenv(EnvTheme, "dark")
	t.Cleanup(func() { _ = os.Setenv(EnvTheme, old) })
	name, ok := EnvOverrideFor("general.theme")
	if !ok || name != EnvTheme {
		t.Fatalf("EnvOverrideFor = %q, %v", name, ok)
	}
	if _, ok := EnvOverrideFor("general.unknown"); ok {
		t.Fatalf("unknown key reported as overridden")
	}
}
