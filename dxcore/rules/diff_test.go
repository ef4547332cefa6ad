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

func TestDiffPresence(t *testing.T) {
	commit := git.NewCommit(testSHA, "dev@example.com", "Document the release process",
		"\nExplain how a release is cut and published. Part of #55", nil, false)
	issues := issuesFor(commit, issue.RuleDiffPresence)
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	got := issues[0]
	if got.Message != "No file changes found" {
		t.Errorf("message = %q", got.Message)
	}
	if got.Position.Source != issue.SourceDiff {
		t.Errorf("position source = %s, want diff", got.Position.Source)
	}
	if got.Context[0].Content != "0 files changed, 0 insertions(+), 0 deletions(-)" {
		t.Errorf("context = %q", got.Context[0].Content)
	}

	if issues := issuesFor(testCommit(t, "Document the release process",
		"\nExplain how a release is cut and published. Part of #55"), issue.RuleDiffPresence); len(issues) != 0 {
		t.Errorf("fired on a commit with changes: %v", issues)
	}
}

func TestDiffChangeset(t *testing.T) {
	env := rules.Env{Changesets: true}
	changesetIssues := func(commit git.Commit, env rules.Env) []issue.Issue {
		var found []issue.Issue
		for _, iss := range rules.ValidateCommit(commit, env) {
			if iss.Rule == issue.RuleDiffChangeset {
				found = append(found, iss)
			}
		}
		return found
	}
	newCommit := func(message string, files []string) git.Commit {
		return git.NewCommit(testSHA, "dev@example.com", "Add email validation", message, files, true)
	}
	body := "\nReject addresses without a domain part. Part of #55"

	t.Run("missing changeset", func(t *testing.T) {
		issues := changesetIssues(newCommit(body, []string{"src/main.go"}), env)
		if len(issues) != 1 {
			t.Fatalf("got %d issues, want 1", len(issues))
		}
		got := issues[0]
		if got.Severity != issue.SeverityHint {
			t.Errorf("severity = %s, want hint", got.Severity)
		}
		if got.Message != "No changeset file found in commit" {
			t.Errorf("message = %q", got.Message)
		}
		// The suggested file name is the parameterized subject.
		if got.Context[0].Content != ".changesets/add-email-validation.md" {
			t.Errorf("suggested file = %q", got.Context[0].Content)
		}
	})

	t.Run("changeset present", func(t *testing.T) {
		commit := newCommit(body, []string{"src/main.go", ".changesets/add-email-validation.md"})
		if issues := changesetIssues(commit, env); len(issues) != 0 {
			t.Errorf("fired with a changeset file: %v", issues)
		}
	})

	t.Run("skip tag present", func(t *testing.T) {
		commit := newCommit(body+"\n\n[skip changeset]", []string{"src/main.go"})
		if issues := changesetIssues(commit, env); len(issues) != 0 {
			t.Errorf("fired with the skip tag: %v", issues)
		}
	})

	t.Run("disabled without changeset dir", func(t *testing.T) {
		commit := newCommit(body, []string{"src/main.go"})
		if issues := changesetIssues(commit, rules.Env{}); len(issues) != 0 {
			t.Errorf("fired without a changeset directory: %v", issues)
		}
	})
}
