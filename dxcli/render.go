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

package dxcli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	gitmodel "dirpx.dev/dxlint/dxcore/model/git"
	"dirpx.dev/dxlint/dxcore/model/issue"
	"dirpx.dev/dxlint/dxcore/textwidth"
)

// placeholderSHA stands in for commits without a SHA (hook mode).
const placeholderSHA = "0000000"

// Renderer writes issues as annotated context blocks. It is purely
// presentational: spans and line numbers come from the core as-is and are
// never re-derived here.
type Renderer struct {
	out io.Writer

	errColor      *color.Color
	hintColor     *color.Color
	additionColor *color.Color
	removalColor  *color.Color
}

// NewRenderer returns a renderer writing to out. With colored false all
// output is plain text.
func NewRenderer(out io.Writer, colored bool) *Renderer {
	r := &Renderer{
		out:           out,
		errColor:      color.New(color.FgRed),
		hintColor:     color.New(color.FgBlue),
		additionColor: color.New(color.FgGreen),
		removalColor:  color.New(color.FgRed),
	}
	for _, c := range []*color.Color{r.errColor, r.hintColor, r.additionColor, r.removalColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// CommitIssue renders one issue found on a commit.
func (r *Renderer) CommitIssue(commit gitmodel.Commit, iss issue.Issue) {
	sha := commit.ShortSHA
	if sha == "" {
		sha = placeholderSHA
	}

	location := sha
	if iss.Position.Line > 0 {
		location += ":" + strconv.Itoa(iss.Position.Line)
	}
	if iss.Position.Column > 0 {
		location += ":" + strconv.Itoa(iss.Position.Column)
	}

	r.header(iss)
	fmt.Fprintf(r.out, "  %s: %s\n", location, commit.Subject)
	r.context(iss)
	fmt.Fprintln(r.out)
}

// BranchIssue renders one issue found on the branch name.
func (r *Renderer) BranchIssue(branch gitmodel.Branch, iss issue.Issue) {
	location := "Branch"
	if iss.Position.Column > 0 {
		location += ":" + strconv.Itoa(iss.Position.Column)
	}

	r.header(iss)
	fmt.Fprintf(r.out, "  %s: %s\n", location, branch.Name)
	r.context(iss)
	fmt.Fprintln(r.out)
}

// Summary writes the closing summary line.
func (r *Renderer) Summary(summary string) {
	fmt.Fprintln(r.out, summary)
}

func (r *Renderer) header(iss issue.Issue) {
	fmt.Fprintf(r.out, "%s: %s\n", r.severityColor(iss.Severity).Sprint(iss.Rule.String()), iss.Message)
}

func (r *Renderer) severityColor(severity issue.Severity) *color.Color {
	if severity == issue.SeverityHint {
		return r.hintColor
	}
	return r.errColor
}

// context renders the issue's context lines with a line-number gutter and
// one marker line per span.
func (r *Renderer) context(iss issue.Issue) {
	gutter := 0
	for _, line := range iss.Context {
		if line.Line > 0 {
			if n := len(strconv.Itoa(line.Line)) + 1; n > gutter {
				gutter = n
			}
		}
	}
	empty := strings.Repeat(" ", gutter)

	r.line(empty + "|")
	for _, line := range iss.Context {
		prefix := empty
		if line.Line > 0 {
			prefix = fmt.Sprintf("%*s", gutter, strconv.Itoa(line.Line)+" ")
		}
		r.line(prefix + "| " + renderTabs(line.Content))

		for _, span := range line.Spans {
			r.line(empty + "| " + r.marker(iss.Severity, line.Content, span))
		}
	}
}

// marker builds the "    ^^^^ annotation" line under a span. Tabs render as
// four spaces, so the leading offset is measured on the tab-expanded text.
func (r *Renderer) marker(severity issue.Severity, content string, span issue.Span) string {
	start := span.Start
	if start > len(content) {
		start = len(content)
	}
	leading := textwidth.Width(renderTabs(content[:start]))

	width := span.End - span.Start
	if span.End <= len(content) {
		width = textwidth.Width(renderTabs(content[span.Start:span.End]))
	}
	if width < 1 {
		width = 1
	}

	glyph := "^"
	markerColor := r.severityColor(severity)
	switch span.Kind {
	case issue.SpanAddition:
		glyph, markerColor = "+", r.additionColor
	case issue.SpanRemoval:
		glyph, markerColor = "-", r.removalColor
	}

	s := strings.Repeat(" ", leading) + markerColor.Sprint(strings.Repeat(glyph, width))
	if span.Annotation != "" {
		s += " " + span.Annotation
	}
	return s
}

// line writes one indented output line without trailing whitespace.
func (r *Renderer) line(s string) {
	fmt.Fprintln(r.out, strings.TrimRight("  "+s, " "))
}

// renderTabs replaces tabs with four spaces so gutters and markers line up
// across terminals.
func renderTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
