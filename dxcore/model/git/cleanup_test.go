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

package git_test

import (
	"strings"
	"testing"

	"dirpx.dev/dxlint/dxcore/model/git"
)

func TestParseCleanupMode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    git.CleanupMode
		wantErr bool
	}{
		{"empty defaults", "", git.CleanupDefault, false},
		{"default", "default", git.CleanupDefault, false},
		{"strip", "strip", git.CleanupStrip, false},
		{"whitespace", "whitespace", git.CleanupWhitespace, false},
		{"verbatim", "verbatim", git.CleanupVerbatim, false},
		{"scissors", "scissors", git.CleanupScissors, false},
		{"padded uppercase", "  STRIP ", git.CleanupStrip, false},
		{"unknown falls back", "bogus", git.CleanupDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := git.ParseCleanupMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCleanupMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCleanupMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMessageFile_Strip(t *testing.T) {
	contents := strings.Join([]string{
		"",
		"Correct email validation  ",
		"",
		"Unicode addresses were rejected. ",
		"# Please enter the commit message for your changes.",
		"More detail.",
	}, "\n")

	subject, message := git.ParseMessageFile(contents, git.CleanupStrip, "#")
	if subject != "Correct email validation" {
		t.Errorf("subject = %q, want %q", subject, "Correct email validation")
	}
	want := "\nUnicode addresses were rejected.\nMore detail."
	if message != want {
		t.Errorf("message = %q, want %q", message, want)
	}
}

func TestParseMessageFile_WhitespaceKeepsComments(t *testing.T) {
	contents := "Subject line\n\n# not a comment here\nBody."
	subject, message := git.ParseMessageFile(contents, git.CleanupWhitespace, "#")
	if subject != "Subject line" {
		t.Errorf("subject = %q, want %q", subject, "Subject line")
	}
	if message != "\n# not a comment here\nBody." {
		t.Errorf("message = %q", message)
	}
}

func TestParseMessageFile_VerbatimKeepsEverything(t *testing.T) {
	contents := "\nSubject after blank\n\nBody line  "
	subject, message := git.ParseMessageFile(contents, git.CleanupVerbatim, "#")
	// Verbatim takes the very first line as the subject, even when blank.
	if subject != "" {
		t.Errorf("subject = %q, want empty", subject)
	}
	if message != "Subject after blank\n\nBody line  " {
		t.Errorf("message = %q", message)
	}
}

func TestParseMessageFile_ScissorsCutInEveryMode(t *testing.T) {
	contents := strings.Join([]string{
		"Add search endpoint",
		"",
		"Queries hit the replica.",
		"# ------------------------ >8 ------------------------",
		"diff --git a/search.go b/search.go",
	}, "\n")

	for _, mode := range []git.CleanupMode{
		git.CleanupDefault, git.CleanupStrip, git.CleanupWhitespace,
		git.CleanupVerbatim, git.CleanupScissors,
	} {
		t.Run(mode.String(), func(t *testing.T) {
			_, message := git.ParseMessageFile(contents, mode, "#")
			if strings.Contains(message, "diff --git") {
				t.Errorf("mode %v kept content past the scissors line: %q", mode, message)
			}
		})
	}
}

func TestParseMessageFile_CustomCommentChar(t *testing.T) {
	contents := strings.Join([]string{
		"Add search endpoint",
		"",
		"; dropped comment",
		"# kept, not a comment under ';'",
		"; ------------------------ >8 ------------------------",
		"ignored",
	}, "\n")

	_, message := git.ParseMessageFile(contents, git.CleanupStrip, ";")
	if strings.Contains(message, "dropped comment") {
		t.Errorf("comment line survived: %q", message)
	}
	if !strings.Contains(message, "# kept") {
		t.Errorf("non-comment line dropped: %q", message)
	}
	if strings.Contains(message, "ignored") {
		t.Errorf("content past scissors survived: %q", message)
	}
}

func TestParseMessageFile_CollapsesBlankRuns(t *testing.T) {
	contents := "Subject\n\n\n\nBody.\n\n\n"
	_, message := git.ParseMessageFile(contents, git.CleanupStrip, "#")
	if message != "\nBody." {
		t.Errorf("message = %q, want %q", message, "\nBody.")
	}
}

func TestParseMessageFile_Idempotent(t *testing.T) {
	inputs := []string{
		"Subject\n\nBody line one.\nBody line two.",
		"\n\nSubject\n\n\nBody.  \n# comment\n",
		"Subject only",
		"",
	}
	modes := []git.CleanupMode{
		git.CleanupDefault, git.CleanupStrip, git.CleanupWhitespace,
		git.CleanupVerbatim, git.CleanupScissors,
	}

	for _, input := range inputs {
		for _, mode := range modes {
			subject, message := git.ParseMessageFile(input, mode, "#")
			rejoined := subject
			if message != "" {
				rejoined += "\n" + message
			}
			subject2, message2 := git.ParseMessageFile(rejoined, mode, "#")
			if subject2 != subject || message2 != message {
				t.Errorf("mode %v not idempotent for %q:\nfirst  (%q, %q)\nsecond (%q, %q)",
					mode, input, subject, message, subject2, message2)
			}
		}
	}
}

func TestScissorsLine(t *testing.T) {
	want := "# ------------------------ >8 ------------------------"
	if got := git.ScissorsLine("#"); got != want {
		t.Errorf("ScissorsLine(#) = %q, want %q", got, want)
	}
}
