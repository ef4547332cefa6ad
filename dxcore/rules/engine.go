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

// Package rules implements the lint rule catalogue and the engine that
// runs it over parsed commits and branch names.
//
// Rules run in a fixed registration order and communicate only through
// the skip matrix: when a rule fires, the matrix suppresses the derivative
// rules that would restate the same root cause. Rules are pure functions
// over an immutable Commit or Branch; they never mutate their input and
// never abort the run.
package rules

import (
	"dirpx.dev/dxlint/dxcore/model/git"
	"dirpx.dev/dxlint/dxcore/model/issue"
)

// Env carries the repository facts the rules need beyond the commit
// itself. It is collected once per run by the Git collaborator.
type Env struct {
	// Changesets reports whether a .changeset or .changesets directory
	// exists in the working tree.
	Changesets bool
}

// skipMatrix maps a fired rule to the later rules it suppresses on the
// same commit. Keeping the interactions in one table makes them auditable;
// the rebase/merge short-circuit is handled separately in ValidateCommit
// because it suppresses everything.
var skipMatrix = map[issue.Rule][]issue.Rule{
	issue.RuleSubjectCliche:       {issue.RuleSubjectLength, issue.RuleSubjectCapitalization},
	issue.RuleSubjectPrefix:       {issue.RuleSubjectCapitalization},
	issue.RuleSubjectTicketNumber: {issue.RuleMessageTicketNumber},
	issue.RuleSubjectBuildTag:     {issue.RuleMessageSkipBuildTag},
}

// commitRun tracks the state of one commit's validation: which rules have
// fired, which are suppressed, and the issues collected so far.
type commitRun struct {
	commit     git.Commit
	env        Env
	fired      map[issue.Rule]bool
	suppressed map[issue.Rule]bool
	issues     []issue.Issue
}

// fire runs a single rule unless a disable directive or the skip matrix
// suppresses it, records the issues, and propagates the matrix.
func (r *commitRun) fire(rule issue.Rule, validate func(*commitRun) []issue.Issue) {
	if r.commit.RuleIgnored(rule) || r.suppressed[rule] {
		return
	}
	found := validate(r)
	if len(found) == 0 {
		return
	}
	r.fired[rule] = true
	for _, skip := range skipMatrix[rule] {
		r.suppressed[skip] = true
	}
	r.issues = append(r.issues, found...)
}

// ValidateCommit runs every commit rule in registration order and returns
// the issues found. Commits marked ignored produce no issues.
//
// A RebaseCommit or MergeCommit finding short-circuits the run: the commit
// needs to be rebased away, so the shape of its message and diff does not
// matter and every other rule is skipped.
func ValidateCommit(commit git.Commit, env Env) []issue.Issue {
	if commit.Ignored {
		return nil
	}

	run := &commitRun{
		commit:     commit,
		env:        env,
		fired:      make(map[issue.Rule]bool),
		suppressed: make(map[issue.Rule]bool),
	}

	run.fire(issue.RuleMergeCommit, validateMergeCommit)
	run.fire(issue.RuleRebaseCommit, validateRebaseCommit)
	if run.fired[issue.RuleMergeCommit] || run.fired[issue.RuleRebaseCommit] {
		return run.issues
	}

	run.fire(issue.RuleSubjectCliche, validateSubjectCliche)
	run.fire(issue.RuleSubjectLength, validateSubjectLength)
	run.fire(issue.RuleSubjectMood, validateSubjectMood)
	run.fire(issue.RuleSubjectWhitespace, validateSubjectWhitespace)
	run.fire(issue.RuleSubjectPrefix, validateSubjectPrefix)
	run.fire(issue.RuleSubjectCapitalization, validateSubjectCapitalization)
	run.fire(issue.RuleSubjectBuildTag, validateSubjectBuildTag)
	run.fire(issue.RuleSubjectPunctuation, validateSubjectPunctuation)
	run.fire(issue.RuleSubjectTicketNumber, validateSubjectTicketNumber)
	run.fire(issue.RuleMessageTicketNumber, validateMessageTicketNumber)
	run.fire(issue.RuleMessageEmptyFirstLine, validateMessageEmptyFirstLine)
	run.fire(issue.RuleMessagePresence, validateMessagePresence)
	run.fire(issue.RuleMessageLineLength, validateMessageLineLength)
	run.fire(issue.RuleMessageTrailerLine, validateMessageTrailerLine)
	run.fire(issue.RuleMessageSkipBuildTag, validateMessageSkipBuildTag)
	if env.Changesets {
		run.fire(issue.RuleDiffChangeset, validateDiffChangeset)
	}
	run.fire(issue.RuleDiffPresence, validateDiffPresence)

	return run.issues
}

// ValidateBranch runs every branch rule in registration order. A detached
// HEAD has no branch name to check and produces no issues. Disable
// directives apply to commits only, so there is no suppression here.
func ValidateBranch(branch git.Branch) []issue.Issue {
	if branch.Detached {
		return nil
	}

	var issues []issue.Issue
	issues = append(issues, validateBranchNameLength(branch)...)
	issues = append(issues, validateBranchNameTicketNumber(branch)...)
	issues = append(issues, validateBranchNamePunctuation(branch)...)
	issues = append(issues, validateBranchNameCliche(branch)...)
	return issues
}
