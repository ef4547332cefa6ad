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

package rules_test

import (
	"testing"

	"dirpx.dev/dxlint/dxcore/model/git"
	"dirpx.dev/dxlint/dxcore/model/issue"
	"dirpx.dev/dxlint/dxcore/rules"
)

func branchIssuesFor(name string, target issue.Rule) []issue.Issue {
	var found []issue.Issue
	for _, iss := range rules.ValidateBranch(git.NewBranch(name)) {
		if iss.Rule == target {
			found = append(found, iss)
		}
	}
	return found
}

func TestBranchNameLength(t *testing.T) {
	issues := branchIssuesFor("fix", issue.RuleBranchNameLength)
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	if issues[0].Message != "Branch name of 3 characters is too short" {
		t.Errorf("message = %q", issues[0].Message)
	}

	if issues := branchIssuesFor("main", issue.RuleBranchNameLength); len(issues) != 0 {
		t.Errorf("four characters fired: %v", issues)
	}
}

func TestBranchNameTicketNumber(t *testing.T) {
	tests := []struct {
		name  string
		fires bool
	}{
		{"1234", true},
		{"123-fix", true},
		{"JIRA-123", true},
		{"123-add-user-login", false},
		{"feature/123-login", false},
		{"fix-email-validation", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := branchIssuesFor(tt.name, issue.RuleBranchNameTicketNumber)
			if fired := len(issues) > 0; fired != tt.fires {
				t.Fatalf("fired = %v, want %v", fired, tt.fires)
			}
			if tt.fires && issues[0].Message != "A ticket number was detected in the branch name" {
				t.Errorf("message = %q", issues[0].Message)
			}
		})
	}
}

func TestBranchNamePunctuation(t *testing.T) {
	start := branchIssuesFor("-feature-x", issue.RuleBranchNamePunctuation)
	if len(start) != 1 {
		t.Fatalf("got %d issues, want 1", len(start))
	}
	if start[0].Message != "The branch name starts with a punctuation character" {
		t.Errorf("message = %q", start[0].Message)
	}

	end := branchIssuesFor("feature-x.", issue.RuleBranchNamePunctuation)
	if len(end) != 1 {
		t.Fatalf("got %d issues, want 1", len(end))
	}
	got := end[0]
	if got.Message != "The branch name ends with a punctuation character" {
		t.Errorf("message = %q", got.Message)
	}
	if got.Position.Column != len("feature-x.") {
		t.Errorf("column = %d, want %d", got.Position.Column, len("feature-x."))
	}

	// Separators inside the name are fine.
	if issues := branchIssuesFor("feature/login-form", issue.RuleBranchNamePunctuation); len(issues) != 0 {
		t.Errorf("interior separators fired: %v", issues)
	}
}

func TestBranchNameCliche(t *testing.T) {
	tests := []struct {
		name  string
		fires bool
	}{
		{"wip", true},
		{"fix-bug", true},
		{"add_tests", true},
		{"updating-ci", true},
		{"update-readme-examples", false},
		{"fix-user-login", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := branchIssuesFor(tt.name, issue.RuleBranchNameCliche)
			if fired := len(issues) > 0; fired != tt.fires {
				t.Fatalf("fired = %v, want %v", fired, tt.fires)
			}
		})
	}
}
