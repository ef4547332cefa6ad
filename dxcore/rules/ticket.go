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
	"sort"
	"strings"
)

// TicketKind classifies how a ticket or issue reference is written.
type TicketKind uint8

const (
	// TicketShorthand is a bare "#123" reference.
	TicketShorthand TicketKind = iota

	// TicketProjectKey is a Jira-style "AB-123" reference. Project keys
	// are at least two uppercase characters long; "A-1" style noise does
	// not count.
	TicketProjectKey

	// TicketRepoRef is an "org/repo#123" cross-repository reference.
	TicketRepoRef

	// TicketKeywordPhrase is a closing phrase such as "Fixes #123" or
	// "Part of 123".
	TicketKeywordPhrase

	// TicketURL is a full link to a GitHub or GitLab issue, pull request
	// or merge request.
	TicketURL
)

// String returns a short lowercase name for the ticket kind.
func (k TicketKind) String() string {
	switch k {
	case TicketProjectKey:
		return "project key"
	case TicketRepoRef:
		return "repository reference"
	case TicketKeywordPhrase:
		return "keyword phrase"
	case TicketURL:
		return "url"
	default:
		return "shorthand"
	}
}

// TicketRef is a single recognized ticket reference. Start and End are
// byte offsets into the scanned string, End exclusive.
type TicketRef struct {
	Start int
	End   int
	Text  string
	Kind  TicketKind
}

// ticketPatterns pairs each reference shape with its kind. Order matters:
// earlier patterns win when two matches start at the same offset, so the
// more specific shapes come first.
var ticketPatterns = []struct {
	kind    TicketKind
	pattern *regexp.Regexp
}{
	{TicketURL, regexp.MustCompile(`https?://(www\.)?(github|gitlab)\.com/[\w.-]+/[\w.-]+(/-)?/(issues|pull|pulls|merge_requests)/\d+`)},
	{TicketKeywordPhrase, regexp.MustCompile(`(?i)\b(fixes|fix|closes|close|resolves|resolve|part of)\s+([\w.-]+/[\w.-]+)?[#!]?\d+`)},
	{TicketRepoRef, regexp.MustCompile(`\w+/\w+#\d+`)},
	{TicketProjectKey, regexp.MustCompile(`\b[A-Z]{2,}[A-Z0-9]*-\d+`)},
	{TicketShorthand, regexp.MustCompile(`#\d+`)},
}

// FindTicketRefs scans a string for ticket and issue references and
// returns them ordered by start offset. Overlapping matches collapse into
// the one that starts first; at equal starts the more specific pattern
// wins. The returned offsets are byte offsets into s.
func FindTicketRefs(s string) []TicketRef {
	var refs []TicketRef
	for _, entry := range ticketPatterns {
		for _, loc := range entry.pattern.FindAllStringIndex(s, -1) {
			refs = append(refs, TicketRef{
				Start: loc[0],
				End:   loc[1],
				Text:  s[loc[0]:loc[1]],
				Kind:  entry.kind,
			})
		}
	}
	if len(refs) == 0 {
		return nil
	}

	// Stable sort keeps pattern priority for matches at the same offset.
	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].Start != refs[j].Start {
			return refs[i].Start < refs[j].Start
		}
		return refs[i].End > refs[j].End
	})

	deduped := refs[:1]
	for _, ref := range refs[1:] {
		if ref.Start < deduped[len(deduped)-1].End {
			continue
		}
		deduped = append(deduped, ref)
	}
	return deduped
}

// HasTicketRef reports whether a string mentions at least one ticket or
// issue reference.
func HasTicketRef(s string) bool {
	for _, entry := range ticketPatterns {
		if entry.pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// IsTicketRefOnly reports whether a line consists of nothing but a single
// ticket reference, ignoring surrounding whitespace. Such lines do not
// count as message content.
func IsTicketRefOnly(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	refs := FindTicketRefs(trimmed)
	return len(refs) == 1 && refs[0].Start == 0 && refs[0].End == len(trimmed)
}
