/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package issue

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxlint/dxcore/errors"
	"dirpx.dev/dxlint/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Severity classifies an issue as a hard error or an advisory hint.
//
// Errors make the lint run fail with a non-zero exit code. Hints are
// advisory: they are printed unless suppressed with `--no-hints` and never
// affect the exit code.
//
// This type implements the model.Model interface. The zero value
// (SeverityUnknown) is invalid; every issue carries a concrete severity.
type Severity uint8

const (
	// SeverityUnknown is the zero value and never appears on an emitted
	// issue.
	SeverityUnknown Severity = iota

	// SeverityError marks an issue that fails the lint run.
	SeverityError

	// SeverityHint marks an advisory issue that never fails the lint run
	// and can be silenced with the `--no-hints` flag.
	SeverityHint
)

const (
	// SeverityErrorStr is the string representation of SeverityError.
	SeverityErrorStr = "error"

	// SeverityHintStr is the string representation of SeverityHint.
	SeverityHintStr = "hint"
)

// ParseSeverity parses a string into a validated Severity value. The input
// is trimmed and lowercased before matching against "error" and "hint".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case SeverityErrorStr:
		return SeverityError, nil
	case SeverityHintStr:
		return SeverityHint, nil
	default:
		return SeverityUnknown, &errors.ParseError{Type: "Severity", Value: s}
	}
}

// Compile-time assertion that Severity implements model.Model.
var _ model.Model = (*Severity)(nil)

// String returns the lowercase severity name, or "unknown" for the zero
// value.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return SeverityErrorStr
	case SeverityHint:
		return SeverityHintStr
	default:
		return "unknown"
	}
}

// Redacted returns a form of the Severity suitable for logging; identical
// to String.
func (s Severity) Redacted() string {
	return s.String()
}

// TypeName returns the name of this type for error messages and debugging.
func (s Severity) TypeName() string {
	return "Severity"
}

// IsZero reports whether this Severity is the zero value.
func (s Severity) IsZero() bool {
	return s == SeverityUnknown
}

// Valid reports whether this Severity is one of the known constants.
func (s Severity) Valid() bool {
	return s == SeverityError || s == SeverityHint
}

// Validate checks whether this Severity is a known constant.
func (s Severity) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{Type: "Severity", Reason: "unknown severity value", Value: uint8(s)}
	}
	return nil
}

// MarshalJSON serializes this Severity to its JSON string name.
func (s Severity) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Severity", Value: int(s)}
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON deserializes a Severity from a JSON string name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return &errors.UnmarshalError{Type: "Severity", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return &errors.UnmarshalError{Type: "Severity", Data: data, Reason: "unknown value '" + name + "'"}
	}
	*s = parsed
	return nil
}

// MarshalYAML serializes this Severity to its YAML string name.
func (s Severity) MarshalYAML() (interface{}, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Severity", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML deserializes a Severity from a YAML string name.
func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return &errors.UnmarshalError{Type: "Severity", Reason: err.Error()}
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return &errors.UnmarshalError{Type: "Severity", Reason: "unknown value '" + name + "'"}
	}
	*s = parsed
	return nil
}
