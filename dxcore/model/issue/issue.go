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

// Package issue defines the data model for lint findings: the Rule and
// Severity enums, source positions, context lines with annotated byte
// spans, and the Issue value that ties them together.
//
// Issues are pure data. The rule engine produces them and the renderer
// consumes them; neither side re-parses the other's output. Span offsets
// are byte offsets into the context line content and always lie on UTF-8
// code point boundaries. Display widths never appear in spans; they are
// used only for length limits inside the rules.
package issue

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"dirpx.dev/dxlint/dxcore/errors"
	"dirpx.dev/dxlint/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Source identifies which displayed text a context line or position refers
// to.
type Source uint8

const (
	// SourceNone marks purely visual gap lines between context blocks.
	SourceNone Source = iota

	// SourceSubject is the commit subject, always line 1.
	SourceSubject

	// SourceMessage is the commit message body. Line numbers continue the
	// combined display: the line directly after the subject is line 2.
	SourceMessage

	// SourceBranch is the checked-out branch name.
	SourceBranch

	// SourceDiff is the commit's diff summary (changed file paths).
	SourceDiff
)

// String returns a short lowercase name for the source.
func (s Source) String() string {
	switch s {
	case SourceSubject:
		return "subject"
	case SourceMessage:
		return "message"
	case SourceBranch:
		return "branch"
	case SourceDiff:
		return "diff"
	default:
		return "none"
	}
}

// MarshalJSON serializes the Source as its string name.
func (s Source) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON deserializes a Source from its string name.
func (s *Source) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return &errors.UnmarshalError{Type: "Source", Data: data, Reason: err.Error()}
	}
	switch name {
	case "subject":
		*s = SourceSubject
	case "message":
		*s = SourceMessage
	case "branch":
		*s = SourceBranch
	case "diff":
		*s = SourceDiff
	case "none":
		*s = SourceNone
	default:
		return &errors.UnmarshalError{Type: "Source", Data: data, Reason: "unknown value '" + name + "'"}
	}
	return nil
}

// SpanKind describes how the renderer should present a span.
type SpanKind uint8

const (
	// SpanUnderline underlines the offending range in the existing line.
	SpanUnderline SpanKind = iota

	// SpanAddition marks a suggested line or range to add.
	SpanAddition

	// SpanRemoval marks a range the user should remove.
	SpanRemoval
)

// String returns a short lowercase name for the span kind.
func (k SpanKind) String() string {
	switch k {
	case SpanAddition:
		return "addition"
	case SpanRemoval:
		return "removal"
	default:
		return "underline"
	}
}

// MarshalJSON serializes the SpanKind as its string name.
func (k SpanKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON deserializes a SpanKind from its string name.
func (k *SpanKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return &errors.UnmarshalError{Type: "SpanKind", Data: data, Reason: err.Error()}
	}
	switch name {
	case "underline":
		*k = SpanUnderline
	case "addition":
		*k = SpanAddition
	case "removal":
		*k = SpanRemoval
	default:
		return &errors.UnmarshalError{Type: "SpanKind", Data: data, Reason: "unknown value '" + name + "'"}
	}
	return nil
}

// Span annotates a byte range within a context line. Start is inclusive,
// End exclusive; both are byte offsets into the line content and MUST lie
// on code point boundaries. The Annotation is the human-readable suggestion
// shown next to the marker.
type Span struct {
	Start      int      `json:"start" yaml:"start"`
	End        int      `json:"end" yaml:"end"`
	Kind       SpanKind `json:"kind" yaml:"kind"`
	Annotation string   `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// ContextLine is one line of source text shown with an issue, with zero or
// more annotated spans. Line numbers are 1-based over the combined
// displayed source: the subject is line 1 and the first line after it is
// line 2. Gap lines (Source == SourceNone) carry no number and no content.
type ContextLine struct {
	Source  Source `json:"source" yaml:"source"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Content string `json:"content" yaml:"content"`
	Spans   []Span `json:"spans,omitempty" yaml:"spans,omitempty"`
}

// Position pinpoints where an issue starts in the displayed source.
// Line is 1-based over the combined display (0 for diff and branch
// positions, which have no line). Column is the 1-based grapheme column.
type Position struct {
	Source Source `json:"source" yaml:"source"`
	Line   int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column int    `json:"column,omitempty" yaml:"column,omitempty"`
}

// Issue is a single lint finding: the rule that fired, its severity, a
// short human-readable message, the position of the problem and the
// context lines the renderer prints below it.
//
// This type implements the model.Model interface. Issues are immutable
// once constructed; the rule engine appends them to a report and never
// touches them again.
type Issue struct {
	Rule     Rule          `json:"rule" yaml:"rule"`
	Severity Severity      `json:"severity" yaml:"severity"`
	Message  string        `json:"message" yaml:"message"`
	Position Position      `json:"position" yaml:"position"`
	Context  []ContextLine `json:"context" yaml:"context"`
}

// Error constructs an error-severity issue.
func Error(rule Rule, message string, position Position, context []ContextLine) Issue {
	return Issue{
		Rule:     rule,
		Severity: SeverityError,
		Message:  message,
		Position: position,
		Context:  context,
	}
}

// Hint constructs a hint-severity issue.
func Hint(rule Rule, message string, position Position, context []ContextLine) Issue {
	return Issue{
		Rule:     rule,
		Severity: SeverityHint,
		Message:  message,
		Position: position,
		Context:  context,
	}
}

// Subject returns a plain subject context line without spans.
func Subject(content string) ContextLine {
	return ContextLine{Source: SourceSubject, Line: 1, Content: content}
}

// SubjectUnderline returns a subject context line underlining [start, end).
func SubjectUnderline(content string, start, end int, annotation string) ContextLine {
	return ContextLine{
		Source:  SourceSubject,
		Line:    1,
		Content: content,
		Spans:   []Span{{Start: start, End: end, Kind: SpanUnderline, Annotation: annotation}},
	}
}

// SubjectRemoval returns a subject context line with a removal suggestion
// over [start, end).
func SubjectRemoval(content string, start, end int, annotation string) ContextLine {
	return ContextLine{
		Source:  SourceSubject,
		Line:    1,
		Content: content,
		Spans:   []Span{{Start: start, End: end, Kind: SpanRemoval, Annotation: annotation}},
	}
}

// SubjectAddition returns a subject context line presenting suggested
// content, with an addition span over [start, end).
func SubjectAddition(content string, start, end int, annotation string) ContextLine {
	return ContextLine{
		Source:  SourceSubject,
		Line:    1,
		Content: content,
		Spans:   []Span{{Start: start, End: end, Kind: SpanAddition, Annotation: annotation}},
	}
}

// MessageLine returns a plain message context line without spans.
func MessageLine(line int, content string) ContextLine {
	return ContextLine{Source: SourceMessage, Line: line, Content: content}
}

// MessageLineUnderline returns a message context line underlining
// [start, end).
func MessageLineUnderline(line int, content string, start, end int, annotation string) ContextLine {
	return ContextLine{
		Source:  SourceMessage,
		Line:    line,
		Content: content,
		Spans:   []Span{{Start: start, End: end, Kind: SpanUnderline, Annotation: annotation}},
	}
}

// MessageLineAddition returns a message context line presenting suggested
// content, with an addition span over [start, end).
func MessageLineAddition(line int, content string, start, end int, annotation string) ContextLine {
	return ContextLine{
		Source:  SourceMessage,
		Line:    line,
		Content: content,
		Spans:   []Span{{Start: start, End: end, Kind: SpanAddition, Annotation: annotation}},
	}
}

// MessageLineRemoval returns a message context line with a removal
// suggestion over [start, end).
func MessageLineRemoval(line int, content string, start, end int, annotation string) ContextLine {
	return ContextLine{
		Source:  SourceMessage,
		Line:    line,
		Content: content,
		Spans:   []Span{{Start: start, End: end, Kind: SpanRemoval, Annotation: annotation}},
	}
}

// DiffLine returns a plain diff context line without spans.
func DiffLine(content string) ContextLine {
	return ContextLine{Source: SourceDiff, Content: content}
}

// DiffUnderline returns a diff context line underlining [start, end).
func DiffUnderline(content string, start, end int, annotation string) ContextLine {
	return ContextLine{
		Source:  SourceDiff,
		Content: content,
		Spans:   []Span{{Start: start, End: end, Kind: SpanUnderline, Annotation: annotation}},
	}
}

// DiffAddition returns a diff context line presenting suggested content.
func DiffAddition(content string, start, end int, annotation string) ContextLine {
	return ContextLine{
		Source:  SourceDiff,
		Content: content,
		Spans:   []Span{{Start: start, End: end, Kind: SpanAddition, Annotation: annotation}},
	}
}

// BranchUnderline returns a branch context line underlining [start, end).
func BranchUnderline(content string, start, end int, annotation string) ContextLine {
	return ContextLine{
		Source:  SourceBranch,
		Content: content,
		Spans:   []Span{{Start: start, End: end, Kind: SpanUnderline, Annotation: annotation}},
	}
}

// BranchRemoval returns a branch context line with a removal suggestion
// over [start, end).
func BranchRemoval(content string, start, end int, annotation string) ContextLine {
	return ContextLine{
		Source:  SourceBranch,
		Content: content,
		Spans:   []Span{{Start: start, End: end, Kind: SpanRemoval, Annotation: annotation}},
	}
}

// Gap returns a purely visual separator between context blocks.
func Gap() ContextLine {
	return ContextLine{Source: SourceNone}
}

// Compile-time assertion that Issue implements model.Model.
var _ model.Model = (*Issue)(nil)

// String returns the issue as "Rule: message" plus its context line count.
func (i Issue) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", i.Rule, i.Message)
	if len(i.Context) > 0 {
		fmt.Fprintf(&b, " (%d context lines)", len(i.Context))
	}
	return b.String()
}

// Redacted returns the rule name and position without the message or
// context content.
func (i Issue) Redacted() string {
	return fmt.Sprintf("%s@%s:%d:%d", i.Rule, i.Position.Source, i.Position.Line, i.Position.Column)
}

// TypeName returns the name of this type for error messages and debugging.
func (i Issue) TypeName() string {
	return "Issue"
}

// IsZero reports whether this Issue is the zero value.
func (i Issue) IsZero() bool {
	return i.Rule.IsZero() && i.Severity.IsZero() && i.Message == "" && len(i.Context) == 0
}

// Validate checks the issue invariants:
//
//   - Rule and Severity are known constants.
//   - Message is non-empty.
//   - At least one context line exists, and at least one carries a
//     non-empty span.
//   - Every span satisfies 0 <= Start < End <= len(Content) and both
//     offsets lie on code point boundaries.
func (i Issue) Validate() error {
	if err := i.Rule.Validate(); err != nil {
		return err
	}
	if err := i.Severity.Validate(); err != nil {
		return err
	}
	if i.Message == "" {
		return &errors.ValidationError{Type: "Issue", Field: "Message", Reason: "must not be empty"}
	}
	if len(i.Context) == 0 {
		return &errors.ValidationError{Type: "Issue", Field: "Context", Reason: "must not be empty"}
	}
	spanned := false
	for _, line := range i.Context {
		for _, span := range line.Spans {
			if span.Start < 0 || span.Start >= span.End {
				return &errors.ValidationError{
					Type: "Span", Reason: "start must be before end",
					Value: fmt.Sprintf("[%d, %d)", span.Start, span.End),
				}
			}
			// Addition spans may extend past the current content; they
			// describe text that does not exist yet.
			if span.Kind != SpanAddition && span.End > len(line.Content) {
				return &errors.ValidationError{
					Type: "Span", Reason: "end is past the end of the content",
					Value: fmt.Sprintf("[%d, %d) in %d bytes", span.Start, span.End, len(line.Content)),
				}
			}
			if span.End <= len(line.Content) {
				if !utf8.RuneStart(nextByteOrBoundary(line.Content, span.Start)) ||
					!utf8.RuneStart(nextByteOrBoundary(line.Content, span.End)) {
					return &errors.ValidationError{
						Type: "Span", Reason: "offsets must lie on code point boundaries",
						Value: fmt.Sprintf("[%d, %d)", span.Start, span.End),
					}
				}
			}
			spanned = true
		}
	}
	if !spanned {
		return &errors.ValidationError{Type: "Issue", Field: "Context", Reason: "no context line carries a span"}
	}
	return nil
}

// nextByteOrBoundary returns the byte at offset, or a valid rune start
// marker when offset equals the string length (the end boundary is always
// valid).
func nextByteOrBoundary(s string, offset int) byte {
	if offset >= len(s) {
		return 0x00 // single-byte marker, RuneStart is true
	}
	return s[offset]
}

// MarshalJSON serializes this Issue to JSON.
func (i Issue) MarshalJSON() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", i.TypeName(), err)
	}
	type alias Issue
	return json.Marshal(alias(i))
}

// UnmarshalJSON deserializes an Issue from JSON.
func (i *Issue) UnmarshalJSON(data []byte) error {
	type alias Issue
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return &errors.UnmarshalError{Type: "Issue", Data: data, Reason: err.Error()}
	}
	*i = Issue(tmp)
	return i.Validate()
}

// MarshalYAML serializes this Issue to YAML.
func (i Issue) MarshalYAML() (interface{}, error) {
	if err := i.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", i.TypeName(), err)
	}
	type alias Issue
	return alias(i), nil
}

// UnmarshalYAML deserializes an Issue from YAML.
func (i *Issue) UnmarshalYAML(node *yaml.Node) error {
	type alias Issue
	var tmp alias
	if err := node.Decode(&tmp); err != nil {
		return &errors.UnmarshalError{Type: "Issue", Reason: err.Error()}
	}
	*i = Issue(tmp)
	return i.Validate()
}
