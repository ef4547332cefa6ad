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

package issue_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/dxlint/dxcore/model/issue"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    issue.Severity
		wantErr bool
	}{
		{"error", "error", issue.SeverityError, false},
		{"hint", "hint", issue.SeverityHint, false},
		{"uppercase", "ERROR", issue.SeverityError, false},
		{"padded", "  hint  ", issue.SeverityHint, false},
		{"unknown", "warning", issue.SeverityUnknown, true},
		{"empty", "", issue.SeverityUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := issue.ParseSeverity(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeverity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSeverity_String(t *testing.T) {
	if got := issue.SeverityError.String(); got != "error" {
		t.Errorf("SeverityError.String() = %q, want %q", got, "error")
	}
	if got := issue.SeverityHint.String(); got != "hint" {
		t.Errorf("SeverityHint.String() = %q, want %q", got, "hint")
	}
	if got := issue.SeverityUnknown.String(); got != "unknown" {
		t.Errorf("SeverityUnknown.String() = %q, want %q", got, "unknown")
	}
}

func TestSeverity_Validate(t *testing.T) {
	if err := issue.SeverityError.Validate(); err != nil {
		t.Errorf("Validate() on valid severity returned %v", err)
	}
	if err := issue.SeverityUnknown.Validate(); err == nil {
		t.Error("Validate() on zero severity returned nil, want error")
	}
}

func TestSeverity_JSON(t *testing.T) {
	data, err := json.Marshal(issue.SeverityHint)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(data) != `"hint"` {
		t.Errorf("Marshal() = %s, want %q", data, "hint")
	}

	var sev issue.Severity
	if err := json.Unmarshal([]byte(`"error"`), &sev); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if sev != issue.SeverityError {
		t.Errorf("Unmarshal() = %v, want %v", sev, issue.SeverityError)
	}
}
