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

package git

import (
	"regexp"
	"strings"
)

// trailerLinePattern matches a single RFC-822-style trailer line such as
// "Co-authored-by: Jane Doe <jane@example.com>" or "Closes: #123".
var trailerLinePattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9-]*):\s(.+)$`)

// Trailer is one Key: value line from the trailer block at the tail of a
// commit message body. LineNumber is the 1-based line number over the
// combined displayed source, where the subject is line 1 and the line
// directly below it is line 2.
type Trailer struct {
	Key        string `json:"key" yaml:"key"`
	Value      string `json:"value" yaml:"value"`
	LineNumber int    `json:"line_number" yaml:"line_number"`
}

// String returns the trailer as it appears in the message.
func (t Trailer) String() string {
	return t.Key + ": " + t.Value
}

// IsTrailerLine reports whether a single line has trailer shape.
func IsTrailerLine(line string) bool {
	return trailerLinePattern.MatchString(line)
}

// detectTrailers splits a commit message into its body and the trailer
// block at its tail.
//
// The trailer block is the contiguous run of trailer-shaped lines at the
// very end of the message, preceded by a blank line or by the message
// start. A trailer-shaped line followed by regular body text is NOT a
// trailer; it stays in the body where the stranded-trailer rule can flag
// it.
//
// The message is expected to start with the blank separator line below the
// subject when one is present, so line index i maps to display line i+2.
// The returned body has the trailer block and any blank lines directly
// above it removed, with trailing whitespace trimmed.
func detectTrailers(message string) (string, []Trailer) {
	if message == "" {
		return "", nil
	}

	lines := strings.Split(message, "\n")

	// Trailing blank lines never block trailer detection.
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if end == 0 {
		return strings.TrimRight(message, " \t\n"), nil
	}

	start := end
	for start > 0 && IsTrailerLine(lines[start-1]) {
		start--
	}
	if start == end {
		return strings.TrimRight(message, " \t\n"), nil
	}
	// The block must sit below a blank line or span the whole message.
	if start > 0 && strings.TrimSpace(lines[start-1]) != "" {
		return strings.TrimRight(message, " \t\n"), nil
	}

	trailers := make([]Trailer, 0, end-start)
	for i := start; i < end; i++ {
		match := trailerLinePattern.FindStringSubmatch(lines[i])
		trailers = append(trailers, Trailer{
			Key:        match[1],
			Value:      match[2],
			LineNumber: i + 2,
		})
	}

	body := strings.Join(lines[:start], "\n")
	return strings.TrimRight(body, " \t\n"), trailers
}
