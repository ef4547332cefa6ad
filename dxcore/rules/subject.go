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
	"unicode"
	"unicode/utf8"

	"dirpx.dev/dxlint/dxcore/model/issue"
	"dirpx.dev/dxlint/dxcore/textwidth"
)

// subjectMaxWidth and subjectMinWidth bound the subject display width.
const (
	subjectMaxWidth = 50
	subjectMinWidth = 5
)

// moodWords lists non-imperative first words. The subject should read as a
// command ("Fix the parser"), not as a report of what was done.
var moodWords = map[string]bool{
	"fixed": true, "fixes": true, "fixing": true,
	"solved": true, "solves": true, "solving": true,
	"resolved": true, "resolves": true, "resolving": true,
	"closed": true, "closes": true, "closing": true,
	"added": true, "adding": true,
	"updated": true, "updates": true, "updating": true,
	"removed": true, "removes": true, "removing": true,
	"deleted": true, "deletes": true, "deleting": true,
	"changed": true, "changes": true, "changing": true,
	"moved": true, "moves": true, "moving": true,
	"refactored": true, "refactors": true, "refactoring": true,
	"checked": true, "checks": true, "checking": true,
	"adjusted": true, "adjusts": true, "adjusting": true,
	"tests": true, "tested": true, "testing": true,
}

var (
	// subjectClichePattern matches non-descriptive subjects: a cliche verb
	// with its inflections, alone or followed by one generic noun.
	subjectClichePattern = regexp.MustCompile(`(?i)^(fix(es|ed|ing)?|add(s|ed|ing)?|(updat|chang|remov|delet)(e|es|ed|ing))(\s+(bug|bugs|test|tests|issue|issues|build|ci|code|file|files|stuff|readme))?$`)

	// subjectPrefixPattern matches conventional-commit prefixes such as
	// "fix: " or "feat(scope)!: ". Group 1 is the prefix without the
	// trailing space.
	subjectPrefixPattern = regexp.MustCompile(`^([a-zA-Z]+(\([^)]*\))?!?:)\s`)

	// buildTagPattern matches bracketed skip-CI tags and the literal
	// AppVeyor marker.
	buildTagPattern = regexp.MustCompile(`(?i)(\[(skip [\w\s_-]+|[\w\s_-]+ skip|no ci)\]|\*\*\*NO_CI\*\*\*)`)
)

func validateSubjectCliche(r *commitRun) []issue.Issue {
	subject := r.commit.Subject
	// "Fix." is no more descriptive than "Fix"; surrounding punctuation
	// does not rescue a cliche.
	lower := strings.TrimFunc(strings.ToLower(subject), func(r rune) bool {
		return unicode.IsSpace(r) || textwidth.IsPunctuation(r)
	})
	wip := lower == "wip" || strings.HasPrefix(lower, "wip ") || lower == "work in progress"
	if !wip && !subjectClichePattern.MatchString(lower) {
		return nil
	}

	return []issue.Issue{issue.Error(
		issue.RuleSubjectCliche,
		"The subject does not explain the change in much detail",
		issue.Position{Source: issue.SourceSubject, Line: 1, Column: 1},
		[]issue.ContextLine{
			issue.SubjectUnderline(subject, 0, len(subject), "Describe the change in more detail"),
		},
	)}
}

func validateSubjectLength(r *commitRun) []issue.Issue {
	subject := r.commit.Subject
	width, stats := textwidth.LineWidth(subject, subjectMaxWidth)

	switch {
	case width == 0:
		return []issue.Issue{issue.Error(
			issue.RuleSubjectLength,
			"The commit has no subject",
			issue.Position{Source: issue.SourceSubject, Line: 1, Column: 1},
			[]issue.ContextLine{
				issue.SubjectAddition(subject, 0, 1, "Add a subject to describe the change"),
			},
		)}
	case width > subjectMaxWidth:
		return []issue.Issue{issue.Error(
			issue.RuleSubjectLength,
			fmt.Sprintf("The subject of `%d` characters wide is too long", width),
			issue.Position{Source: issue.SourceSubject, Line: 1, Column: stats.ClusterCount + 1},
			[]issue.ContextLine{
				issue.SubjectUnderline(subject, stats.ByteIndex, len(subject),
					fmt.Sprintf("Shorten the subject to a maximum width of %d characters", subjectMaxWidth)),
			},
		)}
	case width < subjectMinWidth:
		return []issue.Issue{issue.Error(
			issue.RuleSubjectLength,
			fmt.Sprintf("The subject of `%d` characters wide is too short", width),
			issue.Position{Source: issue.SourceSubject, Line: 1, Column: 1},
			[]issue.ContextLine{
				issue.SubjectUnderline(subject, 0, len(subject), "Describe the change in more detail"),
			},
		)}
	}
	return nil
}

func validateSubjectMood(r *commitRun) []issue.Issue {
	subject := r.commit.Subject
	word, _, _ := strings.Cut(subject, " ")
	if word == "" || !moodWords[strings.ToLower(word)] {
		return nil
	}

	return []issue.Issue{issue.Error(
		issue.RuleSubjectMood,
		"The subject does not use the imperative grammatical mood",
		issue.Position{Source: issue.SourceSubject, Line: 1, Column: 1},
		[]issue.ContextLine{
			issue.SubjectUnderline(subject, 0, len(word), "Use the imperative mood for the subject"),
		},
	)}
}

func validateSubjectWhitespace(r *commitRun) []issue.Issue {
	subject := r.commit.Subject
	if subject == "" {
		return nil
	}
	first, _ := utf8.DecodeRuneInString(subject)
	if !unicode.IsSpace(first) {
		return nil
	}

	run := len(subject) - len(strings.TrimLeftFunc(subject, unicode.IsSpace))
	return []issue.Issue{issue.Error(
		issue.RuleSubjectWhitespace,
		"The subject starts with a whitespace character such as a space or a tab",
		issue.Position{Source: issue.SourceSubject, Line: 1, Column: 1},
		[]issue.ContextLine{
			issue.SubjectUnderline(subject, 0, run, "Remove the leading whitespace from the subject"),
		},
	)}
}

func validateSubjectPrefix(r *commitRun) []issue.Issue {
	subject := r.commit.Subject
	match := subjectPrefixPattern.FindStringSubmatchIndex(subject)
	if match == nil {
		return nil
	}

	prefix := subject[match[2]:match[3]]
	return []issue.Issue{issue.Error(
		issue.RuleSubjectPrefix,
		fmt.Sprintf("Remove the `%s` prefix from the subject", prefix),
		issue.Position{Source: issue.SourceSubject, Line: 1, Column: 1},
		[]issue.ContextLine{
			// The removal covers the trailing space as well.
			issue.SubjectRemoval(subject, 0, match[1], "Remove the prefix from the subject"),
		},
	)}
}

func validateSubjectCapitalization(r *commitRun) []issue.Issue {
	subject := r.commit.Subject
	if subject == "" {
		return nil
	}
	first, size := utf8.DecodeRuneInString(subject)
	if !unicode.IsLower(first) {
		return nil
	}

	upper := string(unicode.ToUpper(first)) + subject[size:]
	upperSize := utf8.RuneLen(unicode.ToUpper(first))
	return []issue.Issue{issue.Error(
		issue.RuleSubjectCapitalization,
		"The subject does not start with a capital letter",
		issue.Position{Source: issue.SourceSubject, Line: 1, Column: 1},
		[]issue.ContextLine{
			issue.SubjectRemoval(subject, 0, size, ""),
			issue.SubjectAddition(upper, 0, upperSize, "Start the subject with a capital letter"),
		},
	)}
}

func validateSubjectBuildTag(r *commitRun) []issue.Issue {
	subject := r.commit.Subject
	loc := buildTagPattern.FindStringIndex(subject)
	if loc == nil {
		return nil
	}

	tag := subject[loc[0]:loc[1]]
	baseLine := suggestionLine(r.commit.MessageLines())
	return []issue.Issue{issue.Error(
		issue.RuleSubjectBuildTag,
		fmt.Sprintf("The `%s` build tag was found in the subject", tag),
		issue.Position{Source: issue.SourceSubject, Line: 1, Column: textwidth.ClustersBefore(subject, loc[0]) + 1},
		[]issue.ContextLine{
			issue.SubjectRemoval(subject, loc[0], loc[1], "Remove the build tag from the subject"),
			issue.MessageLineAddition(baseLine, tag, 0, len(tag), "Move build tag to message body"),
		},
	)}
}

func validateSubjectPunctuation(r *commitRun) []issue.Issue {
	subject := r.commit.Subject
	if subject == "" {
		return nil
	}

	var issues []issue.Issue

	if emoji, size := textwidth.StartsWithEmoji(subject); emoji {
		issues = append(issues, issue.Error(
			issue.RuleSubjectPunctuation,
			"The subject starts with an emoji",
			issue.Position{Source: issue.SourceSubject, Line: 1, Column: 1},
			[]issue.ContextLine{
				issue.SubjectRemoval(subject, 0, size, "Remove emoji from the start of the subject"),
			},
		))
	}

	first, firstSize := utf8.DecodeRuneInString(subject)
	if textwidth.IsPunctuation(first) {
		issues = append(issues, issue.Error(
			issue.RuleSubjectPunctuation,
			fmt.Sprintf("The subject starts with a punctuation character: `%c`", first),
			issue.Position{Source: issue.SourceSubject, Line: 1, Column: 1},
			[]issue.ContextLine{
				issue.SubjectRemoval(subject, 0, firstSize, "Remove punctuation from the start of the subject"),
			},
		))
	}

	last, lastSize := utf8.DecodeLastRuneInString(subject)
	if textwidth.IsPunctuation(last) {
		start := len(subject) - lastSize
		issues = append(issues, issue.Error(
			issue.RuleSubjectPunctuation,
			fmt.Sprintf("The subject ends with a punctuation character: `%c`", last),
			issue.Position{Source: issue.SourceSubject, Line: 1, Column: textwidth.ClustersBefore(subject, start) + 1},
			[]issue.ContextLine{
				issue.SubjectRemoval(subject, start, len(subject), "Remove punctuation from the end of the subject"),
			},
		))
	}

	return issues
}

func validateSubjectTicketNumber(r *commitRun) []issue.Issue {
	subject := r.commit.Subject
	refs := FindTicketRefs(subject)
	if len(refs) == 0 {
		return nil
	}

	baseLine := suggestionLine(r.commit.MessageLines())
	var issues []issue.Issue
	for _, ref := range refs {
		issues = append(issues, issue.Error(
			issue.RuleSubjectTicketNumber,
			"The subject contains a ticket number",
			issue.Position{Source: issue.SourceSubject, Line: 1, Column: textwidth.ClustersBefore(subject, ref.Start) + 1},
			[]issue.ContextLine{
				issue.SubjectRemoval(subject, ref.Start, ref.End, "Remove the ticket number from the subject"),
				issue.Gap(),
				issue.MessageLine(baseLine, ""),
				issue.MessageLineAddition(baseLine+1, ref.Text, 0, len(ref.Text), "Move the ticket number to the message body"),
			},
		))
	}
	return issues
}

// suggestionLine returns the combined display line number of the first
// line a suggestion could append below the current message body.
func suggestionLine(messageLines []string) int {
	if len(messageLines) == 0 {
		return 3
	}
	return len(messageLines) + 2
}
