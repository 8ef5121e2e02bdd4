/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// documentSchema constrains the preset file shape: a name, a timestamp and
// a three-level value tree whose leaves are scalars or short number lists.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "values"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "saved_at": {"type": "string"},
    "values": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": {
          "type": "object",
          "additionalProperties": {
            "anyOf": [
              {"type": "number"},
              {"type": "boolean"},
              {"type": "string"},
              {
                "type": "array",
                "items": {"type": "number"},
                "minItems": 2,
                "maxItems": 3
              }
            ]
          }
        }
      }
    }
  }
}`

// ValidationError describes one schema violation in a preset file.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Message) }

// ValidateFile checks a preset file on disk against the document schema.
// It returns the violations, empty when the file conforms.
func ValidateFile(path string) ([]ValidationError, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	return validate(doc)
}

// Validate checks an in-memory document against the schema.
func Validate(doc Document) ([]ValidationError, error) {
	// round-trip through YAML so the checked shape matches the file format
	b, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal preset: %w", err)
	}
	var plain any
	if err := yaml.Unmarshal(b, &plain); err != nil {
		return nil, fmt.Errorf("reparse preset: %w", err)
	}
	return validate(plain)
}

func validate(doc any) ([]ValidationError, error) {
	// gojsonschema wants JSON-compatible input; YAML maps already use
	// string keys with yaml.v3
	jb, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode for validation: %w", err)
	}
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	docLoader := gojsonschema.NewBytesLoader(jb)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validate: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   strings.TrimPrefix(e.Field(), "(root)."),
			Message: e.Description(),
		})
	}
	return errs, nil
}
