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

package rules

import (
	"fmt"
	"strings"

	"dirpx.dev/dxlint/dxcore/model/git"
	"dirpx.dev/dxlint/dxcore/model/issue"
)

// CommitResult pairs a checked commit with the issues found on it.
type CommitResult struct {
	Commit git.Commit
	Issues []issue.Issue
}

// BranchResult pairs the checked branch with the issues found on it.
type BranchResult struct {
	Branch git.Branch
	Issues []issue.Issue
}

// Report accumulates validation results across a run. Issues appear in
// rule-registration order per commit; commits appear in the order they
// were added, oldest first.
type Report struct {
	Commits []CommitResult
	Branch  *BranchResult

	// IgnoredCount tracks commits that were skipped wholesale.
	IgnoredCount int
}

// AddCommit validates one commit and records the result. Ignored commits
// produce no issues and are counted separately for the summary line.
func (r *Report) AddCommit(commit git.Commit, env Env) {
	if commit.Ignored {
		r.IgnoredCount++
		return
	}
	r.Commits = append(r.Commits, CommitResult{
		Commit: commit,
		Issues: ValidateCommit(commit, env),
	})
}

// CheckBranch validates the checked-out branch and records the result.
func (r *Report) CheckBranch(branch git.Branch) {
	r.Branch = &BranchResult{
		Branch: branch,
		Issues: ValidateBranch(branch),
	}
}

// CommitCount returns the number of commits inspected, including ignored
// ones.
func (r *Report) CommitCount() int {
	return len(r.Commits) + r.IgnoredCount
}

// ErrorCount returns the number of error-severity issues across commits
// and the branch.
func (r *Report) ErrorCount() int {
	return r.countSeverity(issue.SeverityError)
}

// HintCount returns the number of hint-severity issues across commits and
// the branch.
func (r *Report) HintCount() int {
	return r.countSeverity(issue.SeverityHint)
}

func (r *Report) countSeverity(severity issue.Severity) int {
	count := 0
	for _, result := range r.Commits {
		for _, iss := range result.Issues {
			if iss.Severity == severity {
				count++
			}
		}
	}
	if r.Branch != nil {
		for _, iss := range r.Branch.Issues {
			if iss.Severity == severity {
				count++
			}
		}
	}
	return count
}

// StripHints removes every hint-severity issue from the report. This is
// the single gate behind the --no-hints flag; rules themselves always
// emit their hints.
func (r *Report) StripHints() {
	for i := range r.Commits {
		r.Commits[i].Issues = withoutHints(r.Commits[i].Issues)
	}
	if r.Branch != nil {
		r.Branch.Issues = withoutHints(r.Branch.Issues)
	}
}

func withoutHints(issues []issue.Issue) []issue.Issue {
	var kept []issue.Issue
	for _, iss := range issues {
		if iss.Severity != issue.SeverityHint {
			kept = append(kept, iss)
		}
	}
	return kept
}

// Summary renders the closing summary line, e.g.
// "1 commit and branch inspected, 2 errors detected".
func (r *Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d %s", r.CommitCount(), pluralize("commit", r.CommitCount()))
	if r.Branch != nil {
		b.WriteString(" and branch")
	}
	b.WriteString(" inspected, ")

	errors := r.ErrorCount()
	fmt.Fprintf(&b, "%d %s", errors, pluralize("error", errors))
	if hints := r.HintCount(); hints > 0 {
		fmt.Fprintf(&b, ", %d %s", hints, pluralize("hint", hints))
	}
	b.WriteString(" detected")

	if r.IgnoredCount > 0 {
		fmt.Fprintf(&b, ", %d ignored", r.IgnoredCount)
	}
	return b.String()
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
