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

// Package textwidth computes terminal display widths and character classes
// for commit subjects, message lines and branch names.
//
// Widths are measured in grapheme clusters, not bytes and not runes. A
// combining mark or variation selector adds no width, East-Asian Wide and
// Fullwidth characters count as two columns, and an emoji ZWJ sequence
// counts as a single double-width cluster. Length limits (subject width,
// body line width) MUST be computed through this package; byte offsets for
// issue spans are a separate concern and stay byte offsets.
package textwidth

import "github.com/rivo/uniseg"

// LineStats describes where a display-width limit was crossed within a
// line. It is used to compute the byte offset at which an "too long"
// underline starts, and the column number reported for the issue.
type LineStats struct {
	// ByteIndex is the byte offset of the first grapheme cluster that no
	// longer fits within the width limit. When the line fits, ByteIndex is
	// the byte length of the line.
	ByteIndex int

	// ClusterCount is the number of grapheme clusters before ByteIndex.
	ClusterCount int
}

// Width returns the display width of s in terminal columns, summing
// per-grapheme-cluster widths using East-Asian-Width and emoji-presentation
// rules.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Clusters returns the number of grapheme clusters in s. This is the
// "character count" a human would give, not the rune count: "é" composed
// of 'e' plus a combining accent counts as one.
func Clusters(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// LineWidth measures the display width of line and reports where the given
// column limit is crossed. The returned width is the total display width of
// the line. The returned stats locate the first grapheme cluster whose
// rendering starts at or beyond the limit, so that an underline over the
// overflow can start on a cluster boundary.
func LineWidth(line string, limit int) (int, LineStats) {
	stats := LineStats{ByteIndex: len(line)}
	width := 0
	crossed := false

	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if width >= limit && !crossed {
			start, _ := gr.Positions()
			stats.ByteIndex = start
			crossed = true
		}
		if !crossed {
			stats.ClusterCount++
		}
		width += uniseg.StringWidth(gr.Str())
	}
	return width, stats
}

// ClustersBefore returns the number of grapheme clusters in s that end at
// or before the given byte offset. Rules use it to convert a span's byte
// offset into a 1-based column for issue positions.
func ClustersBefore(s string, byteIndex int) int {
	if byteIndex <= 0 {
		return 0
	}
	count := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		_, end := gr.Positions()
		if end > byteIndex {
			break
		}
		count++
	}
	return count
}
