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

package textwidth_test

import (
	"strings"
	"testing"

	"dirpx.dev/dxlint/dxcore/textwidth"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "Fix parser bug", 14},
		{"accented", "Dépannage", 9},
		{"combining mark", "état", 4},
		{"hiragana", "ひらがな", 8},
		{"fullwidth", "ＡＢＣ", 6},
		{"single emoji", "😀", 2},
		{"emoji zwj sequence", "👩‍🔬", 2},
		{"emoji with vs16", "❤️", 2},
		{"mixed", "Fix 済", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textwidth.Width(tt.in); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestWidth_EmojiSubject(t *testing.T) {
	// 26 double-width emoji produce a display width of 52, not 26 runes
	// and not 104 bytes.
	subject := strings.Repeat("😀", 26)
	if got := textwidth.Width(subject); got != 52 {
		t.Errorf("Width(26 emoji) = %d, want 52", got)
	}
}

func TestClusters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 3},
		{"combining mark one cluster", "é", 1},
		{"zwj sequence one cluster", "👨‍👩‍👧", 1},
		{"mixed", "a😀b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textwidth.Clusters(tt.in); got != tt.want {
				t.Errorf("Clusters(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestLineWidth(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		limit        int
		wantWidth    int
		wantByteIdx  int
		wantClusters int
	}{
		{"fits", "short", 50, 5, 5, 1},
		{"exactly at limit", "abcde", 5, 5, 5, 5},
		{"ascii overflow", "abcdefgh", 5, 8, 5, 5},
		{"empty", "", 50, 0, 0, 0},
		{"wide overflow", "あああ", 4, 6, 6, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, stats := textwidth.LineWidth(tt.in, tt.limit)
			if width != tt.wantWidth {
				t.Errorf("LineWidth(%q, %d) width = %d, want %d", tt.in, tt.limit, width, tt.wantWidth)
			}
			if width <= tt.limit {
				return
			}
			if stats.ByteIndex != tt.wantByteIdx {
				t.Errorf("LineWidth(%q, %d) byte index = %d, want %d", tt.in, tt.limit, stats.ByteIndex, tt.wantByteIdx)
			}
			if stats.ClusterCount != tt.wantClusters {
				t.Errorf("LineWidth(%q, %d) clusters = %d, want %d", tt.in, tt.limit, stats.ClusterCount, tt.wantClusters)
			}
		})
	}
}

func TestLineWidth_FitsKeepsFullByteIndex(t *testing.T) {
	line := "within the limit"
	_, stats := textwidth.LineWidth(line, 72)
	if stats.ByteIndex != len(line) {
		t.Errorf("ByteIndex = %d, want %d", stats.ByteIndex, len(line))
	}
}

func TestClustersBefore(t *testing.T) {
	tests := []struct {
		name string
		in   string
		idx  int
		want int
	}{
		{"start", "abc", 0, 0},
		{"middle", "abc", 2, 2},
		{"end", "abc", 3, 3},
		{"multibyte boundary", "aあb", 4, 2},
		{"inside multibyte", "aあb", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textwidth.ClustersBefore(tt.in, tt.idx); got != tt.want {
				t.Errorf("ClustersBefore(%q, %d) = %d, want %d", tt.in, tt.idx, got, tt.want)
			}
		})
	}
}
