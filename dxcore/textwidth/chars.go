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

package textwidth

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

const (
	// variationSelector16 requests emoji presentation for the preceding
	// character.
	variationSelector16 = '️'

	// zeroWidthJoiner glues multiple pictographic characters into a single
	// emoji cluster, such as the family and profession emoji.
	zeroWidthJoiner = '‍'
)

// otherPunctuation holds non-ASCII punctuation that unicode.IsPunct does
// not cover but that reads as punctuation in a commit subject, such as the
// horizontal and midline ellipsis.
var otherPunctuation = []rune{'…', '⋯'}

// emojiRanges approximates the Unicode Emoji property for code points
// outside ASCII. ASCII code points are deliberately absent: the digits,
// '*' and '#' carry the Emoji property as keycap bases but are not emoji
// on their own in a subject line.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x203C, Hi: 0x203C, Stride: 1}, // double exclamation
		{Lo: 0x2049, Hi: 0x2049, Stride: 1}, // exclamation question
		{Lo: 0x2122, Hi: 0x2122, Stride: 1}, // trade mark
		{Lo: 0x2139, Hi: 0x2139, Stride: 1}, // information source
		{Lo: 0x2194, Hi: 0x21AA, Stride: 1}, // arrows
		{Lo: 0x231A, Hi: 0x231B, Stride: 1}, // watch, hourglass
		{Lo: 0x2328, Hi: 0x2328, Stride: 1}, // keyboard
		{Lo: 0x23CF, Hi: 0x23FA, Stride: 1}, // media controls
		{Lo: 0x24C2, Hi: 0x24C2, Stride: 1}, // circled M
		{Lo: 0x25AA, Hi: 0x25FE, Stride: 1}, // geometric shapes
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1}, // misc symbols, dingbats
		{Lo: 0x2934, Hi: 0x2935, Stride: 1}, // arrow pointing right then up/down
		{Lo: 0x2B05, Hi: 0x2B55, Stride: 1}, // arrows, stars, circles
		{Lo: 0x3030, Hi: 0x3030, Stride: 1}, // wavy dash
		{Lo: 0x303D, Hi: 0x303D, Stride: 1}, // part alternation mark
		{Lo: 0x3297, Hi: 0x3299, Stride: 1}, // circled ideographs
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1F0FF, Stride: 1}, // mahjong, dominoes, cards
		{Lo: 0x1F170, Hi: 0x1F251, Stride: 1}, // enclosed alphanumerics
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // misc symbols and pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport and map
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental symbols
		{Lo: 0x1FA00, Hi: 0x1FAFF, Stride: 1}, // extended pictographs
	},
}

// IsPunctuation reports whether r is a punctuation character: ASCII
// punctuation, Unicode punctuation categories, or one of a few extra
// punctuation-like symbols such as the ellipsis.
func IsPunctuation(r rune) bool {
	if r < utf8.RuneSelf {
		// ASCII symbols like $, +, ~ and ` are not unicode.IsPunct but do
		// read as punctuation at the edge of a subject.
		return (r >= '!' && r <= '/') || (r >= ':' && r <= '@') ||
			(r >= '[' && r <= '`') || (r >= '{' && r <= '~')
	}
	if unicode.IsPunct(r) {
		return true
	}
	for _, p := range otherPunctuation {
		if r == p {
			return true
		}
	}
	return false
}

// StartsWithEmoji reports whether the first grapheme cluster of s has emoji
// presentation, either by default or forced through variation selector 16,
// or belongs to the pictographic ranges. ASCII-only clusters never count,
// so subjects starting with digits, '*' or '#' are not flagged.
//
// The returned length is the byte length of the offending cluster, zero
// when the string does not start with an emoji.
func StartsWithEmoji(s string) (bool, int) {
	if s == "" {
		return false, 0
	}
	gr := uniseg.NewGraphemes(s)
	if !gr.Next() {
		return false, 0
	}
	cluster := gr.Runes()
	first := cluster[0]
	if first < utf8.RuneSelf {
		return false, 0
	}
	for _, r := range cluster {
		if r == variationSelector16 || r == zeroWidthJoiner {
			return true, len(gr.Str())
		}
	}
	if unicode.Is(emojiRanges, first) {
		return true, len(gr.Str())
	}
	return false, 0
}

// IsWhitespace reports whether r is a Unicode whitespace character.
func IsWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}
