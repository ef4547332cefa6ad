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

// Package git defines the domain models the lint rules operate on: the
// parsed Commit and Branch values, the trailer block, and the cleanup
// engine that emulates Git's commit.cleanup modes for hook-message files.
//
// A Commit is created once by the parser and never mutated by rules. The
// Message field holds the text below the subject line, including the blank
// separator line when one is present, with the trailer block stripped off
// into Trailers. Line index i of the message therefore maps to line i+2 of
// the combined displayed source.
package git

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"dirpx.dev/dxlint/dxcore/errors"
	"dirpx.dev/dxlint/dxcore/model"
	"dirpx.dev/dxlint/dxcore/model/issue"
	"gopkg.in/yaml.v3"
)

// shortSHALength is the number of leading SHA characters shown to users.
const shortSHALength = 7

// disableDirective is the directive prefix accepted in message bodies to
// suppress a named rule for that commit.
const disableDirective = "lintje:disable"

var (
	// remoteMergeSubjectPattern matches the subject Git writes when
	// merging a remote branch into a local one. Merges of local branches
	// do not carry the "of <url> into <branch>" tail.
	remoteMergeSubjectPattern = regexp.MustCompile(`^Merge branch '.+' of .+ into .+`)

	// squashPRSubjectPattern matches GitHub's squash-merge subject marker.
	squashPRSubjectPattern = regexp.MustCompile(`.+ \(#\d+\)$`)

	// mergeRequestRefPattern matches the GitLab merge-request reference
	// line added to merge commit bodies.
	mergeRequestRefPattern = regexp.MustCompile(`(?m)^See merge request .+/.+!\d+$`)

	// shaMergeSubjectPattern matches GitHub's "Merge <sha> into <sha>"
	// commits created for pull request merge refs.
	shaMergeSubjectPattern = regexp.MustCompile(`Merge [a-z0-9]{40} into [a-z0-9]{40}`)

	// disableDirectivePattern matches a rule-disable directive on a body
	// line of its own.
	disableDirectivePattern = regexp.MustCompile(`^lintje:disable\s+(\w+)\s*$`)
)

// botEmailSuffixes lists author email suffixes of automated accounts whose
// commits are never linted.
var botEmailSuffixes = []string{
	"[bot]@users.noreply.github.com",
	"@dependabot.com",
}

// rebaseMarkers lists the subject prefixes Git writes for commits that are
// meant to be squashed into another commit during an interactive rebase.
var rebaseMarkers = []string{"fixup! ", "squash! ", "amend! "}

// Commit is a parsed commit under validation. All fields are populated by
// NewCommit and never mutated afterwards; rules treat the value as
// read-only input.
//
// This type implements the model.Model interface.
type Commit struct {
	// LongSHA is the full commit SHA. Empty in hook-message mode.
	LongSHA string `json:"long_sha,omitempty" yaml:"long_sha,omitempty"`

	// ShortSHA is the first seven characters of LongSHA.
	ShortSHA string `json:"short_sha,omitempty" yaml:"short_sha,omitempty"`

	// Email is the author email. Empty in hook-message mode.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// Subject is the first line of the message with trailing whitespace
	// removed.
	Subject string `json:"subject" yaml:"subject"`

	// Message is the text below the subject, including the blank
	// separator line, with the trailer block stripped off.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Trailers is the trailer block detected at the tail of the message.
	Trailers []Trailer `json:"trailers,omitempty" yaml:"trailers,omitempty"`

	// FileChanges lists the relative paths the commit touches.
	FileChanges []string `json:"file_changes,omitempty" yaml:"file_changes,omitempty"`

	// HasChanges reports whether the commit's diff is non-empty. Taken as
	// true in hook-message mode, where the diff is not known yet.
	HasChanges bool `json:"has_changes" yaml:"has_changes"`

	// Ignored marks commits the engine skips wholesale: bot authors,
	// PR/MR merges, reverts and squash merges.
	Ignored bool `json:"ignored,omitempty" yaml:"ignored,omitempty"`

	// IgnoredRules holds the rules disabled by directives in the body.
	IgnoredRules []issue.Rule `json:"ignored_rules,omitempty" yaml:"ignored_rules,omitempty"`
}

// NewCommit builds a Commit from cleaned message text and sidecar
// metadata.
//
// The message MUST already be cleaned up (see ParseMessageFile for hook
// mode) and include the blank separator line below the subject when one is
// present. NewCommit detects the trailer block, scans the remaining body
// for disable directives, and classifies commits that are ignored
// entirely. Directive lines inside the trailer block do not count.
func NewCommit(longSHA, email, subject, message string, fileChanges []string, hasChanges bool) Commit {
	shortSHA := ""
	if len(longSHA) >= shortSHALength {
		shortSHA = longSHA[:shortSHALength]
	}

	subject = strings.TrimRightFunc(subject, unicode.IsSpace)
	body, trailers := detectTrailers(message)

	return Commit{
		LongSHA:      longSHA,
		ShortSHA:     shortSHA,
		Email:        email,
		Subject:      subject,
		Message:      body,
		Trailers:     trailers,
		FileChanges:  fileChanges,
		HasChanges:   hasChanges,
		Ignored:      isIgnored(email, subject, body),
		IgnoredRules: findIgnoredRules(body),
	}
}

// isIgnored classifies commits that are skipped wholesale before any rule
// runs. The order of checks matters: PR and MR merges must win over the
// local-merge check below them.
func isIgnored(email, subject, message string) bool {
	for _, suffix := range botEmailSuffixes {
		if email != "" && strings.HasSuffix(email, suffix) {
			return true
		}
	}
	if strings.HasPrefix(subject, "Merge tag ") {
		return true
	}
	if strings.HasPrefix(subject, "Merge pull request") {
		return true
	}
	if strings.HasPrefix(subject, "Merge branch ") && mergeRequestRefPattern.MatchString(message) {
		return true
	}
	if squashPRSubjectPattern.MatchString(subject) {
		return true
	}
	// A local merge: "Merge branch 'x'" without the remote "of ... into
	// ..." tail. Remote merges stay in; the MergeCommit rule flags them.
	if strings.HasPrefix(subject, "Merge branch ") && !remoteMergeSubjectPattern.MatchString(subject) {
		return true
	}
	if strings.HasPrefix(subject, `Revert "`) && strings.HasSuffix(subject, `"`) &&
		strings.Contains(message, "This reverts commit ") {
		return true
	}
	return shaMergeSubjectPattern.MatchString(subject)
}

// findIgnoredRules collects the rules named by disable directives in the
// body. Directives naming unknown rules are dropped silently.
func findIgnoredRules(message string) []issue.Rule {
	var ignored []issue.Rule
	for _, line := range strings.Split(message, "\n") {
		match := disableDirectivePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		rule, err := issue.ParseRule(match[1])
		if err != nil {
			continue
		}
		ignored = append(ignored, rule)
	}
	return ignored
}

// RuleIgnored reports whether a disable directive suppresses the rule for
// this commit.
func (c Commit) RuleIgnored(rule issue.Rule) bool {
	for _, ignored := range c.IgnoredRules {
		if ignored == rule {
			return true
		}
	}
	return false
}

// MessageLines returns the message split into lines. An empty message
// yields no lines. Line index i maps to line i+2 of the combined displayed
// source.
func (c Commit) MessageLines() []string {
	if c.Message == "" {
		return nil
	}
	return strings.Split(c.Message, "\n")
}

// RebaseMarker returns the "fixup! ", "squash! " or "amend! " prefix the
// subject starts with, or the empty string.
func (c Commit) RebaseMarker() string {
	for _, marker := range rebaseMarkers {
		if strings.HasPrefix(c.Subject, marker) {
			return marker
		}
	}
	return ""
}

// IsRemoteBranchMerge reports whether the subject is a merge of a remote
// branch into a local one.
func (c Commit) IsRemoteBranchMerge() bool {
	return remoteMergeSubjectPattern.MatchString(c.Subject)
}

// Compile-time assertion that Commit implements model.Model.
var _ model.Model = (*Commit)(nil)

// String returns the short SHA and subject, or just the subject when no
// SHA is known.
func (c Commit) String() string {
	if c.ShortSHA == "" {
		return c.Subject
	}
	return c.ShortSHA + " " + c.Subject
}

// Redacted returns a form of the Commit suitable for logging: the SHA and
// subject without the author email or message content.
func (c Commit) Redacted() string {
	return fmt.Sprintf("%s (%d message lines, %d trailers)", c.String(), len(c.MessageLines()), len(c.Trailers))
}

// TypeName returns the name of this type for error messages and debugging.
func (c Commit) TypeName() string {
	return "Commit"
}

// IsZero reports whether this Commit is the zero value.
func (c Commit) IsZero() bool {
	return c.LongSHA == "" && c.Email == "" && c.Subject == "" && c.Message == "" &&
		len(c.Trailers) == 0 && len(c.FileChanges) == 0 && !c.HasChanges
}

// Validate checks the structural invariants of the Commit:
//
//   - ShortSHA is a prefix of LongSHA when both are set.
//   - The subject carries no trailing whitespace and no newline.
//   - Trailer line numbers point below the subject line.
//   - Every ignored rule is a known constant.
func (c Commit) Validate() error {
	if c.LongSHA != "" && c.ShortSHA != "" && !strings.HasPrefix(c.LongSHA, c.ShortSHA) {
		return &errors.ValidationError{Type: "Commit", Field: "ShortSHA", Reason: "must be a prefix of the long SHA", Value: c.ShortSHA}
	}
	if strings.ContainsRune(c.Subject, '\n') {
		return &errors.ValidationError{Type: "Commit", Field: "Subject", Reason: "must be a single line"}
	}
	if c.Subject != strings.TrimRightFunc(c.Subject, unicode.IsSpace) {
		return &errors.ValidationError{Type: "Commit", Field: "Subject", Reason: "must not end with whitespace"}
	}
	for _, trailer := range c.Trailers {
		if trailer.LineNumber < 2 {
			return &errors.ValidationError{Type: "Commit", Field: "Trailers", Reason: "line number must be below the subject", Value: trailer.LineNumber}
		}
	}
	for _, rule := range c.IgnoredRules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON serializes this Commit to JSON.
func (c Commit) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type alias Commit
	return json.Marshal(alias(c))
}

// UnmarshalJSON deserializes a Commit from JSON.
func (c *Commit) UnmarshalJSON(data []byte) error {
	type alias Commit
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return &errors.UnmarshalError{Type: "Commit", Data: data, Reason: err.Error()}
	}
	*c = Commit(tmp)
	return c.Validate()
}

// MarshalYAML serializes this Commit to YAML.
func (c Commit) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type alias Commit
	return alias(c), nil
}

// UnmarshalYAML deserializes a Commit from YAML.
func (c *Commit) UnmarshalYAML(node *yaml.Node) error {
	type alias Commit
	var tmp alias
	if err := node.Decode(&tmp); err != nil {
		return &errors.UnmarshalError{Type: "Commit", Reason: err.Error()}
	}
	*c = Commit(tmp)
	return c.Validate()
}
