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

package git

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxlint/dxcore/errors"
	"dirpx.dev/dxlint/dxcore/model"
	"gopkg.in/yaml.v3"
)

// scissorsMarker is the part of Git's scissors line after the comment
// character. The full line is "<commentChar> <scissorsMarker>".
const scissorsMarker = "------------------------ >8 ------------------------"

// CleanupMode mirrors Git's commit.cleanup configuration. It controls how a
// raw commit message file is normalized before the subject and body are
// extracted.
//
// This type implements the model.Model interface. The zero value
// (CleanupDefault) is valid; it is what Git uses when commit.cleanup is not
// configured and behaves like CleanupStrip.
type CleanupMode uint8

const (
	// CleanupDefault is Git's behavior without explicit configuration,
	// equivalent to CleanupStrip for committed messages.
	CleanupDefault CleanupMode = iota

	// CleanupStrip trims trailing whitespace, drops comment lines and
	// leading blank lines, and collapses runs of blank lines.
	CleanupStrip

	// CleanupWhitespace behaves like CleanupStrip but keeps comment lines.
	CleanupWhitespace

	// CleanupVerbatim leaves the message untouched, except for the
	// scissors cut which applies in every mode.
	CleanupVerbatim

	// CleanupScissors behaves like CleanupWhitespace; content at and after
	// the scissors line is always discarded.
	CleanupScissors
)

// cleanupModeNames maps every valid CleanupMode to its Git config value.
var cleanupModeNames = map[CleanupMode]string{
	CleanupDefault:    "default",
	CleanupStrip:      "strip",
	CleanupWhitespace: "whitespace",
	CleanupVerbatim:   "verbatim",
	CleanupScissors:   "scissors",
}

// ParseCleanupMode parses a Git commit.cleanup config value into a
// CleanupMode. The input is trimmed and lowercased before matching.
// Unknown values return CleanupDefault with an errors.ParseError; callers
// fall back on the default mode the way Git does.
func ParseCleanupMode(s string) (CleanupMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return CleanupDefault, nil
	case "strip":
		return CleanupStrip, nil
	case "whitespace":
		return CleanupWhitespace, nil
	case "verbatim":
		return CleanupVerbatim, nil
	case "scissors":
		return CleanupScissors, nil
	default:
		return CleanupDefault, &errors.ParseError{Type: "CleanupMode", Value: s}
	}
}

// Compile-time assertion that CleanupMode implements model.Model.
var _ model.Model = (*CleanupMode)(nil)

// String returns the Git config value for the mode.
func (m CleanupMode) String() string {
	if name, ok := cleanupModeNames[m]; ok {
		return name
	}
	return "default"
}

// Redacted returns a form of the CleanupMode suitable for logging;
// identical to String.
func (m CleanupMode) Redacted() string {
	return m.String()
}

// TypeName returns the name of this type for error messages and debugging.
func (m CleanupMode) TypeName() string {
	return "CleanupMode"
}

// IsZero reports whether this CleanupMode is the zero value.
func (m CleanupMode) IsZero() bool {
	return m == CleanupDefault
}

// Valid reports whether this CleanupMode is one of the known constants.
func (m CleanupMode) Valid() bool {
	_, ok := cleanupModeNames[m]
	return ok
}

// Validate checks whether this CleanupMode is a known constant.
func (m CleanupMode) Validate() error {
	if !m.Valid() {
		return &errors.ValidationError{Type: "CleanupMode", Reason: "unknown cleanup mode value", Value: uint8(m)}
	}
	return nil
}

// MarshalJSON serializes this CleanupMode to its JSON string name.
func (m CleanupMode) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "CleanupMode", Value: int(m)}
	}
	return json.Marshal(m.String())
}

// UnmarshalJSON deserializes a CleanupMode from a JSON string name.
func (m *CleanupMode) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return &errors.UnmarshalError{Type: "CleanupMode", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseCleanupMode(name)
	if err != nil {
		return &errors.UnmarshalError{Type: "CleanupMode", Data: data, Reason: "unknown value '" + name + "'"}
	}
	*m = parsed
	return nil
}

// MarshalYAML serializes this CleanupMode to its YAML string name.
func (m CleanupMode) MarshalYAML() (interface{}, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "CleanupMode", Value: int(m)}
	}
	return m.String(), nil
}

// UnmarshalYAML deserializes a CleanupMode from a YAML string name.
func (m *CleanupMode) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return &errors.UnmarshalError{Type: "CleanupMode", Reason: err.Error()}
	}
	parsed, err := ParseCleanupMode(name)
	if err != nil {
		return &errors.UnmarshalError{Type: "CleanupMode", Reason: "unknown value '" + name + "'"}
	}
	*m = parsed
	return nil
}

// ScissorsLine returns the full scissors marker line for a comment
// character, e.g. "# ------------------------ >8 ------------------------".
func ScissorsLine(commentChar string) string {
	return commentChar + " " + scissorsMarker
}

// ParseMessageFile normalizes a raw commit message file per the cleanup
// mode and splits it into subject and message.
//
// The scissors cut applies in every mode, not only CleanupScissors:
// `git commit --verbose` appends a diff below the scissors line regardless
// of the configured cleanup mode, and that content never counts towards
// subject or body.
//
// In every mode except CleanupVerbatim the first non-blank, non-dropped
// line becomes the subject and leading blank lines are discarded. In
// CleanupVerbatim the very first line is the subject, whatever it contains.
// The returned message is everything after the subject line, including the
// blank separator line when present.
func ParseMessageFile(contents string, mode CleanupMode, commentChar string) (string, string) {
	if commentChar == "" {
		commentChar = "#"
	}
	scissors := ScissorsLine(commentChar)

	var subject string
	subjectFound := false
	var messageLines []string
	lastBlank := false

	for _, line := range strings.Split(contents, "\n") {
		if line == scissors {
			break
		}

		if !subjectFound {
			if mode == CleanupVerbatim {
				subject = line
				subjectFound = true
			} else if cleaned, keep := cleanupLine(line, mode, commentChar); keep && cleaned != "" {
				subject = cleaned
				subjectFound = true
			}
			continue
		}

		cleaned, keep := cleanupLine(line, mode, commentChar)
		if !keep {
			continue
		}
		// Runs of blank lines collapse to a single one outside verbatim
		// mode, mirroring git stripspace.
		if mode != CleanupVerbatim && cleaned == "" {
			if lastBlank {
				continue
			}
			lastBlank = true
		} else {
			lastBlank = false
		}
		messageLines = append(messageLines, cleaned)
	}

	message := strings.Join(messageLines, "\n")
	if mode != CleanupVerbatim {
		message = strings.TrimRight(message, "\n")
	}
	return subject, message
}

// cleanupLine normalizes a single line for the cleanup mode. The second
// return value is false when the line is dropped entirely.
func cleanupLine(line string, mode CleanupMode, commentChar string) (string, bool) {
	switch mode {
	case CleanupDefault, CleanupStrip:
		if strings.HasPrefix(line, commentChar) {
			return "", false
		}
		return strings.TrimRight(line, " \t"), true
	case CleanupWhitespace, CleanupScissors:
		return strings.TrimRight(line, " \t"), true
	default:
		return line, true
	}
}
