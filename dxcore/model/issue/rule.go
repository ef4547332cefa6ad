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

	"dirpx.dev/dxlint/dxcore/errors"
	"dirpx.dev/dxlint/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Rule identifies a single lint rule by its stable name. The names are part
// of the user-facing contract: they appear in issue output and are the
// tokens accepted by `lintje:disable <Rule>` directives in commit message
// bodies, so they MUST NOT change between releases.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection. The zero value (RuleUnknown) is invalid; every
// issue carries a concrete rule.
//
// JSON and YAML serialization uses the string name ("SubjectLength",
// "MergeCommit", ...) rather than numeric values.
type Rule uint8

const (
	// RuleUnknown is the zero value and represents "no rule". It never
	// appears on an emitted issue.
	RuleUnknown Rule = iota

	// RuleMergeCommit flags remote merge commits that should be rebased.
	RuleMergeCommit

	// RuleRebaseCommit flags fixup!, squash! and amend! commits.
	// "NeedsRebase" is accepted as a directive alias for this rule.
	RuleRebaseCommit

	// RuleSubjectLength flags subjects that are empty, too short or wider
	// than 50 display columns.
	RuleSubjectLength

	// RuleSubjectMood flags subjects that do not use the imperative mood.
	RuleSubjectMood

	// RuleSubjectWhitespace flags subjects starting with whitespace.
	RuleSubjectWhitespace

	// RuleSubjectCapitalization flags subjects starting with a lowercase
	// letter.
	RuleSubjectCapitalization

	// RuleSubjectPunctuation flags subjects starting or ending with
	// punctuation, or starting with an emoji.
	RuleSubjectPunctuation

	// RuleSubjectTicketNumber flags ticket or issue references in the
	// subject.
	RuleSubjectTicketNumber

	// RuleSubjectPrefix flags conventional-commit style prefixes such as
	// "fix:" or "feat(scope):".
	RuleSubjectPrefix

	// RuleSubjectBuildTag flags CI skip tags such as "[skip ci]" in the
	// subject.
	RuleSubjectBuildTag

	// RuleSubjectCliche flags non-descriptive subjects such as "Fix bug"
	// or "WIP".
	RuleSubjectCliche

	// RuleMessageEmptyFirstLine flags a missing blank line between subject
	// and body.
	RuleMessageEmptyFirstLine

	// RuleMessagePresence flags missing or too-short message bodies.
	RuleMessagePresence

	// RuleMessageLineLength flags body lines wider than 72 display
	// columns.
	RuleMessageLineLength

	// RuleMessageTicketNumber hints that the body mentions no ticket or
	// issue reference.
	RuleMessageTicketNumber

	// RuleMessageSkipBuildTag hints that a documentation-only change could
	// skip the build.
	RuleMessageSkipBuildTag

	// RuleMessageTrailerLine flags trailer lines stranded in the middle of
	// the message body.
	RuleMessageTrailerLine

	// RuleDiffPresence flags commits without any file changes.
	RuleDiffPresence

	// RuleDiffChangeset hints that a commit in a changesets-using
	// repository includes no changeset file.
	RuleDiffChangeset

	// RuleBranchNameLength flags branch names shorter than 4 display
	// columns.
	RuleBranchNameLength

	// RuleBranchNameTicketNumber flags branch names that are essentially a
	// bare ticket reference.
	RuleBranchNameTicketNumber

	// RuleBranchNamePunctuation flags branch names starting or ending with
	// punctuation.
	RuleBranchNamePunctuation

	// RuleBranchNameCliche flags non-descriptive branch names such as
	// "fix-bug".
	RuleBranchNameCliche
)

// ruleNames maps every valid Rule to its stable string name.
var ruleNames = map[Rule]string{
	RuleMergeCommit:            "MergeCommit",
	RuleRebaseCommit:           "RebaseCommit",
	RuleSubjectLength:          "SubjectLength",
	RuleSubjectMood:            "SubjectMood",
	RuleSubjectWhitespace:      "SubjectWhitespace",
	RuleSubjectCapitalization:  "SubjectCapitalization",
	RuleSubjectPunctuation:     "SubjectPunctuation",
	RuleSubjectTicketNumber:    "SubjectTicketNumber",
	RuleSubjectPrefix:          "SubjectPrefix",
	RuleSubjectBuildTag:        "SubjectBuildTag",
	RuleSubjectCliche:          "SubjectCliche",
	RuleMessageEmptyFirstLine:  "MessageEmptyFirstLine",
	RuleMessagePresence:        "MessagePresence",
	RuleMessageLineLength:      "MessageLineLength",
	RuleMessageTicketNumber:    "MessageTicketNumber",
	RuleMessageSkipBuildTag:    "MessageSkipBuildTag",
	RuleMessageTrailerLine:     "MessageTrailerLine",
	RuleDiffPresence:           "DiffPresence",
	RuleDiffChangeset:          "DiffChangeset",
	RuleBranchNameLength:       "BranchNameLength",
	RuleBranchNameTicketNumber: "BranchNameTicketNumber",
	RuleBranchNamePunctuation:  "BranchNamePunctuation",
	RuleBranchNameCliche:       "BranchNameCliche",
}

// rulesByName is the reverse of ruleNames plus accepted aliases.
var rulesByName = func() map[string]Rule {
	byName := make(map[string]Rule, len(ruleNames)+1)
	for rule, name := range ruleNames {
		byName[name] = rule
	}
	// Historical name for RebaseCommit, kept working so that existing
	// disable directives do not silently stop applying.
	byName["NeedsRebase"] = RuleRebaseCommit
	return byName
}()

// ParseRule parses a string into a validated Rule value.
//
// The input is matched against the exact rule names; matching is
// case-sensitive because the names are identifiers, not prose. The alias
// "NeedsRebase" parses to RuleRebaseCommit.
//
// If the input does not match any known name, ParseRule returns RuleUnknown
// and an errors.ParseError. Callers handling `lintje:disable` directives
// treat that error as "ignore the directive", per the linter's failure
// semantics.
func ParseRule(s string) (Rule, error) {
	if rule, ok := rulesByName[s]; ok {
		return rule, nil
	}
	return RuleUnknown, &errors.ParseError{Type: "Rule", Value: s}
}

// Compile-time assertion that Rule implements model.Model.
var _ model.Model = (*Rule)(nil)

// String returns the stable rule name, or "Unknown" for the zero value.
//
// This method implements the fmt.Stringer interface and the model.Loggable
// contract.
func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// Redacted returns a form of the Rule suitable for logging. Rule names
// contain no sensitive data, so this is identical to String.
//
// This method implements the model.Loggable contract.
func (r Rule) Redacted() string {
	return r.String()
}

// TypeName returns the name of this type for error messages and debugging.
//
// This method implements the model.Identifiable contract.
func (r Rule) TypeName() string {
	return "Rule"
}

// IsZero reports whether this Rule is the zero value.
//
// This method implements the model.ZeroCheckable contract.
func (r Rule) IsZero() bool {
	return r == RuleUnknown
}

// Valid reports whether this Rule is one of the known constants. The zero
// value is not valid.
func (r Rule) Valid() bool {
	_, ok := ruleNames[r]
	return ok
}

// Validate checks whether this Rule is a known constant.
//
// This method implements the model.Validatable contract.
func (r Rule) Validate() error {
	if !r.Valid() {
		return &errors.ValidationError{Type: "Rule", Reason: "unknown rule value", Value: uint8(r)}
	}
	return nil
}

// MarshalJSON serializes this Rule to its JSON string name.
//
// This method implements the json.Marshaler interface and the
// model.Serializable contract.
func (r Rule) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "Rule", Value: int(r)}
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON deserializes a Rule from a JSON string name.
//
// This method implements the json.Unmarshaler interface and the
// model.Serializable contract.
func (r *Rule) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return &errors.UnmarshalError{Type: "Rule", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseRule(name)
	if err != nil {
		return &errors.UnmarshalError{Type: "Rule", Data: data, Reason: "unknown value '" + name + "'"}
	}
	*r = parsed
	return nil
}

// MarshalYAML serializes this Rule to its YAML string name.
//
// This method implements the yaml.Marshaler interface and the
// model.Serializable contract.
func (r Rule) MarshalYAML() (interface{}, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "Rule", Value: int(r)}
	}
	return r.String(), nil
}

// UnmarshalYAML deserializes a Rule from a YAML string name.
//
// This method implements the yaml.Unmarshaler interface and the
// model.Serializable contract.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return &errors.UnmarshalError{Type: "Rule", Reason: err.Error()}
	}
	parsed, err := ParseRule(name)
	if err != nil {
		return &errors.UnmarshalError{Type: "Rule", Reason: "unknown value '" + name + "'"}
	}
	*r = parsed
	return nil
}
