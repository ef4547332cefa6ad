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

	"dirpx.dev/dxlint/dxcore/model/issue"
	"dirpx.dev/dxlint/dxcore/textwidth"
)

const (
	// bodyMaxWidth is the maximum display width of a message body line.
	bodyMaxWidth = 72

	// messageMinClusters is the minimum number of grapheme clusters a
	// message body must contain, not counting blank lines and lines that
	// are nothing but a ticket reference.
	messageMinClusters = 10
)

var (
	// linkToTicketPattern matches body phrases that link to a ticket
	// without closing it, such as "Part of #123" or "Related: org/repo!4".
	linkToTicketPattern = regexp.MustCompile(`(?i)(part of|related):? ([^\s]*[\w/-])?[#!]\d+`)

	// urlPattern matches any URL with a scheme; lines carrying one are
	// exempt from the line length limit.
	urlPattern = regexp.MustCompile(`\b[a-z][a-z0-9+.-]*://\S+`)

	// fenceOpenPattern matches an opening markdown code fence with an
	// optional info string; fenceClosePattern matches the bare closing
	// fence. Both allow the indentation used inside list items.
	fenceOpenPattern  = regexp.MustCompile("^\\s*```\\s*([\\w]+)?$")
	fenceClosePattern = regexp.MustCompile("^\\s*```$")

	// trailerRefPattern matches people trailers stranded in the body.
	trailerRefPattern = regexp.MustCompile(`(?i)^(co-authored-by|signed-off-by|helped-by):\s+([\w\s-]+\s+<\S+@+\S+>)`)

	// textFilesPattern matches file paths of documentation and plain-text
	// files whose changes cannot break a build.
	textFilesPattern = regexp.MustCompile(`(?i)([^\\/]*(readme|license|code_of_conduct|changelog)[^\\/]*|[^\\/]+\.(md|markdown|txt))$`)
)

// skipBuildTags lists the literal tags CI services recognize to skip a
// build.
var skipBuildTags = []string{"[skip ci]", "[ci skip]", "[no ci]", "***NO_CI***"}

func validateMessageTicketNumber(r *commitRun) []issue.Issue {
	message := r.commit.Message
	if strings.TrimSpace(message) == "" {
		// An absent body is MessagePresence territory; suggesting a
		// ticket reference for it would put the cart before the horse.
		return nil
	}
	if HasTicketRef(message) || linkToTicketPattern.MatchString(message) {
		return nil
	}

	lines := r.commit.MessageLines()
	lastLineNumber := len(lines) + 1
	lastLine := r.commit.Subject
	if len(lines) > 0 {
		lastLine = lines[len(lines)-1]
	}

	suggestion := "Fixes #123"
	return []issue.Issue{issue.Hint(
		issue.RuleMessageTicketNumber,
		"The message body does not contain a ticket or issue number",
		issue.Position{Source: issue.SourceMessage, Line: lastLineNumber + 2, Column: 1},
		[]issue.ContextLine{
			issue.MessageLine(lastLineNumber, lastLine),
			issue.MessageLine(lastLineNumber+1, ""),
			issue.MessageLineAddition(lastLineNumber+2, suggestion, 0, len(suggestion),
				"Consider adding a reference to a ticket or issue"),
		},
	)}
}

func validateMessageEmptyFirstLine(r *commitRun) []issue.Issue {
	lines := r.commit.MessageLines()
	if len(lines) == 0 || lines[0] == "" {
		return nil
	}

	return []issue.Issue{issue.Error(
		issue.RuleMessageEmptyFirstLine,
		"No empty line found below the subject",
		issue.Position{Source: issue.SourceMessage, Line: 2, Column: 1},
		[]issue.ContextLine{
			issue.Subject(r.commit.Subject),
			issue.MessageLineAddition(2, "", 0, 3, "Add an empty line below the subject line"),
			issue.MessageLine(3, lines[0]),
		},
	)}
}

func validateMessagePresence(r *commitRun) []issue.Issue {
	lines := r.commit.MessageLines()

	hasContent := false
	var builder strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		hasContent = true
		// Lines that only cite a ticket do not describe the change.
		if IsTicketRefOnly(line) {
			continue
		}
		builder.WriteString(line)
	}

	if !hasContent {
		return []issue.Issue{issue.Error(
			issue.RuleMessagePresence,
			"No message body was found",
			issue.Position{Source: issue.SourceMessage, Line: 3, Column: 1},
			[]issue.ContextLine{
				issue.Subject(r.commit.Subject),
				issue.MessageLine(2, ""),
				issue.MessageLineAddition(3, "", 0, 1,
					"Add a message that describes the change and why it was made"),
			},
		)}
	}

	if textwidth.Clusters(builder.String()) >= messageMinClusters {
		return nil
	}

	lastLineNumber := len(lines) + 1
	lastLine := lines[len(lines)-1]
	return []issue.Issue{issue.Error(
		issue.RuleMessagePresence,
		"The message body is too short",
		issue.Position{Source: issue.SourceMessage, Line: lastLineNumber, Column: 1},
		[]issue.ContextLine{
			issue.MessageLineUnderline(lastLineNumber, lastLine, 0, len(lastLine),
				"Add more detail about the change and why it was made"),
		},
	)}
}

// codeBlockStyle tracks whether the line cursor is inside a markdown code
// block, and which kind.
type codeBlockStyle uint8

const (
	codeBlockNone codeBlockStyle = iota
	codeBlockFenced
	codeBlockIndented
)

func validateMessageLineLength(r *commitRun) []issue.Issue {
	var issues []issue.Issue
	style := codeBlockNone
	previousBlank := false

	for index, rawLine := range r.commit.MessageLines() {
		line := strings.TrimRight(rawLine, " \t")

		switch style {
		case codeBlockFenced:
			if fenceClosePattern.MatchString(line) {
				style = codeBlockNone
			}
		case codeBlockIndented:
			if !strings.HasPrefix(line, "    ") {
				style = codeBlockNone
			}
		default:
			if fenceOpenPattern.MatchString(line) {
				style = codeBlockFenced
			} else if strings.HasPrefix(line, "    ") && previousBlank {
				style = codeBlockIndented
			}
		}
		if style != codeBlockNone {
			continue
		}
		previousBlank = strings.TrimSpace(line) == ""

		width, stats := textwidth.LineWidth(line, bodyMaxWidth)
		if width <= bodyMaxWidth || urlPattern.MatchString(line) {
			continue
		}

		lineNumber := index + 2
		issues = append(issues, issue.Error(
			issue.RuleMessageLineLength,
			fmt.Sprintf("Line %d in the message body is longer than %d characters", lineNumber, bodyMaxWidth),
			issue.Position{Source: issue.SourceMessage, Line: lineNumber, Column: stats.ClusterCount + 1},
			[]issue.ContextLine{
				issue.MessageLineUnderline(lineNumber, line, stats.ByteIndex, len(line),
					fmt.Sprintf("Shorten line to maximum %d characters", bodyMaxWidth)),
			},
		))
	}
	return issues
}

func validateMessageTrailerLine(r *commitRun) []issue.Issue {
	lines := r.commit.MessageLines()

	type strandedTrailer struct {
		line       string
		kind       string
		start, end int
	}

	var context []issue.ContextLine
	var stranded []strandedTrailer
	firstLineNumber := 0
	lastIndex := -1

	for index, line := range lines {
		match := trailerRefPattern.FindStringSubmatchIndex(line)
		if match == nil {
			continue
		}
		lineNumber := index + 2
		if firstLineNumber == 0 {
			firstLineNumber = lineNumber
		}
		// Separate findings more than one line apart visually.
		if lastIndex >= 0 && index > lastIndex+1 {
			context = append(context, issue.Gap())
		}
		kind := strings.ToLower(line[match[2]:match[3]])
		context = append(context, issue.MessageLineRemoval(lineNumber, line, match[0], match[1],
			fmt.Sprintf("Remove the %s reference in the message body", kind)))
		stranded = append(stranded, strandedTrailer{line: line, kind: kind, start: match[0], end: match[1]})
		lastIndex = index
	}

	if len(stranded) == 0 {
		return nil
	}

	context = append(context, issue.Gap())

	newLastLine := len(lines) + 1
	if len(r.commit.Trailers) == 0 {
		newLastLine++
		context = append(context, issue.MessageLineAddition(newLastLine, "", 0, 3,
			"Add a new empty trailer line at the end of the message body"))
	} else {
		newLastLine += len(r.commit.Trailers) + 1
	}
	for _, trailer := range stranded {
		newLastLine++
		context = append(context, issue.MessageLineAddition(newLastLine, trailer.line, trailer.start, trailer.end,
			fmt.Sprintf("Move %s reference to the end of the message body", trailer.kind)))
	}

	return []issue.Issue{issue.Error(
		issue.RuleMessageTrailerLine,
		"Trailer line is not at the end of the message body",
		issue.Position{Source: issue.SourceMessage, Line: firstLineNumber, Column: 1},
		context,
	)}
}

func validateMessageSkipBuildTag(r *commitRun) []issue.Issue {
	commit := r.commit
	if !commit.HasChanges || len(commit.FileChanges) == 0 {
		return nil
	}
	for _, tag := range skipBuildTags {
		if strings.Contains(commit.Message, tag) {
			return nil
		}
	}
	for _, filename := range commit.FileChanges {
		if !textFilesPattern.MatchString(filename) {
			return nil
		}
	}

	var context []issue.ContextLine
	for i, filename := range commit.FileChanges {
		if i == len(commit.FileChanges)-1 {
			context = append(context, issue.DiffUnderline(filename, 0, len(filename),
				"Only text files were changed"))
		} else {
			context = append(context, issue.DiffLine(filename))
		}
	}
	context = append(context, issue.Gap())

	tag := "[skip ci]"
	context = append(context, issue.MessageLineAddition(suggestionLine(commit.MessageLines()), tag, 0, len(tag),
		"Add the skip build tag to the commit message"))

	return []issue.Issue{issue.Hint(
		issue.RuleMessageSkipBuildTag,
		"Consider skipping the build for a text change that does not impact the test suite",
		issue.Position{Source: issue.SourceDiff},
		context,
	)}
}
