/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package preset persists editor value trees as named YAML documents.
// Saves are transactional with timestamped backups of the previous file;
// loads fall back to the latest backup when the current file is unreadable.
// A small SQLite index under the store root tracks recently used presets.
package preset

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	applog "gopropedit/internal/log"
	"log/slog"
)

const (
	fileExt        = ".preset.yaml"
	BackupsDirName = "backups"
)

// Document is the on-disk preset shape. Values holds only plain YAML
// kinds; the codec flattens vector and color values into lists.
type Document struct {
	Name    string                                   `yaml:"name" json:"name"`
	SavedAt time.Time                                `yaml:"saved_at" json:"saved_at"`
	Values  map[string]map[string]map[string]any     `yaml:"values" json:"values"`
}

// Store reads and writes presets below a root directory.
type Store struct {
	Root    string
	recents *Recents
}

// OpenStore creates the store root if needed and opens the recents index.
func OpenStore(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("store root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create store root: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(root, BackupsDirName), 0o755); err != nil {
		return nil, fmt.Errorf("create backups dir: %w", err)
	}
	rec, err := OpenRecents(root)
	if err != nil {
		return nil, err
	}
	return &Store{Root: root, recents: rec}, nil
}

// Close releases the recents index.
func (s *Store) Close() error {
	if s.recents == nil {
		return nil
	}
	return s.recents.Close()
}

// Recents exposes the recently-used index.
func (s *Store) Recents() *Recents { return s.recents }

// Path returns the preset file path for a name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Root, name+fileExt)
}

// Save writes a preset transactionally. An existing file of the same name
// is copied to a timestamped backup before being replaced.
func (s *Store) Save(doc Document) error {
	if strings.TrimSpace(doc.Name) == "" {
		return errors.New("preset name is required")
	}
	l := applog.WithOperation(applog.WithComponent("preset"), "save").With(
		slog.String("name", doc.Name),
	)
	if doc.SavedAt.IsZero() {
		doc.SavedAt = time.Now().UTC()
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal preset: %w", err)
	}

	target := s.Path(doc.Name)
	if _, statErr := os.Stat(target); statErr == nil {
		stamp := time.Now().Format("20060102-150405")
		bname := fmt.Sprintf("%s.%s.bak", filepath.Base(target), stamp)
		bpath := filepath.Join(s.Root, BackupsDirName, bname)
		if old, rerr := os.ReadFile(target); rerr == nil {
			if werr := os.WriteFile(bpath, old, 0o644); werr != nil {
				return fmt.Errorf("backup preset: %w", werr)
			}
		}
	}

	// write to a temp file in the same directory, then rename over the target
	temp := filepath.Join(s.Root, fmt.Sprintf(".%s.tmp-%d-%d", filepath.Base(target), os.Getpid(), rand.Int()))
	if err := writeFileSync(temp, data); err != nil {
		return fmt.Errorf("write temp preset: %w", err)
	}
	if _, err := os.Stat(target); err == nil {
		_ = os.Remove(target)
	}
	if err := os.Rename(temp, target); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("replace preset: %w", err)
	}

	if err := s.recents.Touch(doc.Name, target); err != nil {
		l.Warn("recents update failed", slog.Any("err", err))
	}
	l.Info("preset saved", slog.String("path", target))
	return nil
}

// Load reads a preset by name. If the current file is missing or does not
// parse, the latest backup is tried before giving up.
func (s *Store) Load(name string) (Document, error) {
	target := s.Path(name)
	doc, err := readDocument(target)
	if err != nil {
		bdoc, berr := s.loadLatestBackup(name)
		if berr != nil {
			return Document{}, fmt.Errorf("load preset: %w; backup attempt: %v", err, berr)
		}
		doc = bdoc
	}
	if terr := s.recents.Touch(name, target); terr != nil {
		applog.WithComponent("preset").Warn("recents update failed", slog.Any("err", terr))
	}
	return doc, nil
}

// List returns the preset names in the store, sorted.
func (s *Store) List() ([]string, error) {
	ents, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("read store root: %w", err)
	}
	var names []string
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a preset file. Backups are kept.
func (s *Store) Delete(name string) error {
	if err := os.Remove(s.Path(name)); err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	return s.recents.Forget(name)
}

func (s *Store) loadLatestBackup(name string) (Document, error) {
	bdir := filepath.Join(s.Root, BackupsDirName)
	ents, err := os.ReadDir(bdir)
	if err != nil {
		return Document{}, fmt.Errorf("read backups dir: %w", err)
	}
	prefix := name + fileExt + "."
	var candidates []string
	for _, e := range ents {
		if strings.HasPrefix(e.Name(), prefix) && strings.HasSuffix(e.Name(), ".bak") {
			candidates = append(candidates, filepath.Join(bdir, e.Name()))
		}
	}
	if len(candidates) == 0 {
		return Document{}, errors.New("no backups found")
	}
	sort.Strings(candidates) // timestamp in name yields lexicographic order
	return readDocument(candidates[len(candidates)-1])
}

func readDocument(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return Document{}, fmt.Errorf("parse preset: %w", err)
	}
	return doc, nil
}

// writeFileSync writes data and flushes it to disk before returning.
func writeFileSync(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
