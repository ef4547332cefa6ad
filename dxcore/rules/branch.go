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
	"regexp"
	"strings"
	"unicode/utf8"

	"dirpx.dev/dxlint/dxcore/model/git"
	"dirpx.dev/dxlint/dxcore/model/issue"
	"dirpx.dev/dxlint/dxcore/textwidth"
)

// branchMinWidth is the minimum display width of a branch name.
const branchMinWidth = 4

var (
	// branchTicketPattern matches branch names that lead with or consist
	// of a ticket number. The capture combination decides whether enough
	// descriptive words surround the number; see
	// validateBranchNameTicketNumber.
	branchTicketPattern = regexp.MustCompile(`(?i)^(\w+[-_/.])?\d{2,}([-_/.]\w+)?([-_/.]\w+)?`)

	// branchClichePattern matches non-descriptive branch names: a cliche
	// verb alone or joined to a single word.
	branchClichePattern = regexp.MustCompile(`(?i)^(wip|fix(es|ed|ing)?|add(s|ed|ing)?|(updat|chang|remov|delet)(e|es|ed|ing))([-_/]+\w+)?$`)
)

func validateBranchNameLength(branch git.Branch) []issue.Issue {
	name := branch.Name
	width := textwidth.Width(name)
	if width >= branchMinWidth {
		return nil
	}

	return []issue.Issue{issue.Error(
		issue.RuleBranchNameLength,
		fmt.Sprintf("Branch name of %d characters is too short", width),
		issue.Position{Source: issue.SourceBranch, Column: 1},
		[]issue.ContextLine{
			issue.BranchUnderline(name, 0, len(name), "Describe the change in more detail"),
		},
	)}
}

func validateBranchNameTicketNumber(branch git.Branch) []issue.Issue {
	name := branch.Name
	match := branchTicketPattern.FindStringSubmatch(name)
	if match == nil {
		return nil
	}

	// The name passes when descriptive words surround the number: either
	// a prefix plus a suffix, or two suffixes. A bare number, a number
	// with only a prefix, or a number with a single suffix is essentially
	// just the ticket reference.
	prefix, suffix, more := match[1], match[2], match[3]
	if suffix != "" && (prefix != "" || more != "") {
		return nil
	}

	return []issue.Issue{issue.Error(
		issue.RuleBranchNameTicketNumber,
		"A ticket number was detected in the branch name",
		issue.Position{Source: issue.SourceBranch, Column: 1},
		[]issue.ContextLine{
			issue.BranchRemoval(name, 0, len(name),
				"Remove the ticket number from the branch name or expand the branch name with more details"),
		},
	)}
}

func validateBranchNamePunctuation(branch git.Branch) []issue.Issue {
	name := branch.Name
	if name == "" {
		return nil
	}

	var issues []issue.Issue

	first, firstSize := utf8.DecodeRuneInString(name)
	if textwidth.IsPunctuation(first) {
		issues = append(issues, issue.Error(
			issue.RuleBranchNamePunctuation,
			"The branch name starts with a punctuation character",
			issue.Position{Source: issue.SourceBranch, Column: 1},
			[]issue.ContextLine{
				issue.BranchRemoval(name, 0, firstSize, "Remove punctuation from the start of the branch name"),
			},
		))
	}

	last, lastSize := utf8.DecodeLastRuneInString(name)
	if textwidth.IsPunctuation(last) {
		start := len(name) - lastSize
		issues = append(issues, issue.Error(
			issue.RuleBranchNamePunctuation,
			"The branch name ends with a punctuation character",
			issue.Position{Source: issue.SourceBranch, Column: textwidth.ClustersBefore(name, start) + 1},
			[]issue.ContextLine{
				issue.BranchRemoval(name, start, len(name), "Remove punctuation from the end of the branch name"),
			},
		))
	}

	return issues
}

func validateBranchNameCliche(branch git.Branch) []issue.Issue {
	name := branch.Name
	if !branchClichePattern.MatchString(strings.ToLower(name)) {
		return nil
	}

	return []issue.Issue{issue.Error(
		issue.RuleBranchNameCliche,
		"The branch name does not explain the change in much detail",
		issue.Position{Source: issue.SourceBranch, Column: 1},
		[]issue.ContextLine{
			issue.BranchUnderline(name, 0, len(name), "Describe the change in more detail"),
		},
	)}
}
