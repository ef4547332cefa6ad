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

package issue_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/dxlint/dxcore/model/issue"
	"gopkg.in/yaml.v3"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    issue.Rule
		wantErr bool
	}{
		{"merge commit", "MergeCommit", issue.RuleMergeCommit, false},
		{"rebase commit", "RebaseCommit", issue.RuleRebaseCommit, false},
		{"needs rebase alias", "NeedsRebase", issue.RuleRebaseCommit, false},
		{"subject length", "SubjectLength", issue.RuleSubjectLength, false},
		{"subject cliche", "SubjectCliche", issue.RuleSubjectCliche, false},
		{"message trailer line", "MessageTrailerLine", issue.RuleMessageTrailerLine, false},
		{"branch name cliche", "BranchNameCliche", issue.RuleBranchNameCliche, false},
		{"case sensitive", "subjectlength", issue.RuleUnknown, true},
		{"unknown name", "NoSuchRule", issue.RuleUnknown, true},
		{"empty", "", issue.RuleUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := issue.ParseRule(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRule(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRule(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRule_StringRoundTrip(t *testing.T) {
	rules := []issue.Rule{
		issue.RuleMergeCommit, issue.RuleRebaseCommit,
		issue.RuleSubjectLength, issue.RuleSubjectMood, issue.RuleSubjectWhitespace,
		issue.RuleSubjectCapitalization, issue.RuleSubjectPunctuation,
		issue.RuleSubjectTicketNumber, issue.RuleSubjectPrefix,
		issue.RuleSubjectBuildTag, issue.RuleSubjectCliche,
		issue.RuleMessageEmptyFirstLine, issue.RuleMessagePresence,
		issue.RuleMessageLineLength, issue.RuleMessageTicketNumber,
		issue.RuleMessageSkipBuildTag, issue.RuleMessageTrailerLine,
		issue.RuleDiffPresence, issue.RuleDiffChangeset,
		issue.RuleBranchNameLength, issue.RuleBranchNameTicketNumber,
		issue.RuleBranchNamePunctuation, issue.RuleBranchNameCliche,
	}

	for _, rule := range rules {
		parsed, err := issue.ParseRule(rule.String())
		if err != nil {
			t.Errorf("ParseRule(%q) unexpected error: %v", rule.String(), err)
			continue
		}
		if parsed != rule {
			t.Errorf("ParseRule(%q) = %v, want %v", rule.String(), parsed, rule)
		}
	}
}

func TestRule_Validate(t *testing.T) {
	if err := issue.RuleSubjectLength.Validate(); err != nil {
		t.Errorf("Validate() on valid rule returned %v", err)
	}
	if err := issue.RuleUnknown.Validate(); err == nil {
		t.Error("Validate() on zero rule returned nil, want error")
	}
	if err := issue.Rule(200).Validate(); err == nil {
		t.Error("Validate() on out-of-range rule returned nil, want error")
	}
}

func TestRule_IsZero(t *testing.T) {
	if !issue.RuleUnknown.IsZero() {
		t.Error("RuleUnknown.IsZero() = false, want true")
	}
	if issue.RuleMergeCommit.IsZero() {
		t.Error("RuleMergeCommit.IsZero() = true, want false")
	}
}

func TestRule_JSON(t *testing.T) {
	data, err := json.Marshal(issue.RuleSubjectPunctuation)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(data) != `"SubjectPunctuation"` {
		t.Errorf("Marshal() = %s, want %q", data, "SubjectPunctuation")
	}

	var rule issue.Rule
	if err := json.Unmarshal(data, &rule); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if rule != issue.RuleSubjectPunctuation {
		t.Errorf("Unmarshal() = %v, want %v", rule, issue.RuleSubjectPunctuation)
	}

	if _, err := json.Marshal(issue.RuleUnknown); err == nil {
		t.Error("Marshal() on zero rule returned nil error, want error")
	}
	if err := json.Unmarshal([]byte(`"Bogus"`), &rule); err == nil {
		t.Error("Unmarshal() of unknown name returned nil error, want error")
	}
}

func TestRule_YAML(t *testing.T) {
	data, err := yaml.Marshal(issue.RuleBranchNameLength)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(data) != "BranchNameLength\n" {
		t.Errorf("Marshal() = %q, want %q", data, "BranchNameLength\n")
	}

	var rule issue.Rule
	if err := yaml.Unmarshal([]byte("NeedsRebase"), &rule); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if rule != issue.RuleRebaseCommit {
		t.Errorf("Unmarshal(NeedsRebase) = %v, want %v", rule, issue.RuleRebaseCommit)
	}
}
