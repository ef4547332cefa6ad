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
	"strings"

	"dirpx.dev/dxlint/dxcore/model/issue"
)

// validateMergeCommit flags remote merge commits. PR and MR merges never
// reach this rule; the parser marks those commits ignored.
func validateMergeCommit(r *commitRun) []issue.Issue {
	if !r.commit.IsRemoteBranchMerge() {
		return nil
	}

	subject := r.commit.Subject
	return []issue.Issue{issue.Error(
		issue.RuleMergeCommit,
		"A remote merge commit was found",
		issue.Position{Source: issue.SourceSubject, Line: 1, Column: 1},
		[]issue.ContextLine{
			issue.SubjectUnderline(subject, 0, len(subject),
				"Rebase on the remote branch, rather than merging the remote branch into the local branch"),
		},
	)}
}

// validateRebaseCommit flags fixup, squash and amend commits that are
// meant to be rebased away before pushing or merging.
func validateRebaseCommit(r *commitRun) []issue.Issue {
	marker := r.commit.RebaseMarker()
	if marker == "" {
		return nil
	}

	kind := strings.TrimSuffix(marker, "! ")
	subject := r.commit.Subject
	return []issue.Issue{issue.Error(
		issue.RuleRebaseCommit,
		"A "+kind+" commit was found",
		issue.Position{Source: issue.SourceSubject, Line: 1, Column: 1},
		[]issue.ContextLine{
			// Span covers the marker word and its bang, not the space.
			issue.SubjectUnderline(subject, 0, len(marker)-1,
				"Rebase "+kind+" commits before pushing or merging"),
		},
	)}
}
