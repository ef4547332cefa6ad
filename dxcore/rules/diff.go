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
	"regexp"
	"strings"

	"dirpx.dev/dxlint/dxcore/model/issue"
)

// skipChangesetTag suppresses the changeset hint for commits that do not
// need a changelog entry.
const skipChangesetTag = "[skip changeset]"

// nonWordRunPattern matches runs of characters that cannot appear in a
// changeset file name.
var nonWordRunPattern = regexp.MustCompile(`[^\w]+`)

func validateDiffPresence(r *commitRun) []issue.Issue {
	if r.commit.HasChanges {
		return nil
	}

	stat := "0 files changed, 0 insertions(+), 0 deletions(-)"
	return []issue.Issue{issue.Error(
		issue.RuleDiffPresence,
		"No file changes found",
		issue.Position{Source: issue.SourceDiff},
		[]issue.ContextLine{
			issue.DiffUnderline(stat, 0, len(stat), "Add changes to the commit or remove the commit"),
		},
	)}
}

func validateDiffChangeset(r *commitRun) []issue.Issue {
	commit := r.commit
	if !commit.HasChanges {
		return nil
	}
	if strings.Contains(commit.Message, skipChangesetTag) {
		return nil
	}
	for _, filename := range commit.FileChanges {
		if strings.Contains(filename, ".changeset/") || strings.Contains(filename, ".changesets/") {
			return nil
		}
	}

	suggested := ".changesets/" + parameterize(commit.Subject) + ".md"
	return []issue.Issue{issue.Hint(
		issue.RuleDiffChangeset,
		"No changeset file found in commit",
		issue.Position{Source: issue.SourceDiff},
		[]issue.ContextLine{
			issue.DiffAddition(suggested, 0, len(suggested), "Add a changeset file for changelog generation"),
			issue.Gap(),
			issue.MessageLineAddition(suggestionLine(commit.MessageLines()), skipChangesetTag, 0, len(skipChangesetTag),
				"Or add the skip changeset tag to the commit message"),
		},
	)}
}

// parameterize turns a commit subject into a file-name-safe slug.
func parameterize(subject string) string {
	slug := nonWordRunPattern.ReplaceAllString(strings.ToLower(subject), "-")
	return strings.Trim(slug, "-")
}
