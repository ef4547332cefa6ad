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
	"testing"

	"dirpx.dev/dxlint/dxcore/model/git"
)

func TestBranch(t *testing.T) {
	branch := git.NewBranch("fix-email-validation")
	if branch.Detached {
		t.Error("NewBranch() Detached = true, want false")
	}
	if branch.String() != "fix-email-validation" {
		t.Errorf("String() = %q", branch.String())
	}
	if err := branch.Validate(); err != nil {
		t.Errorf("Validate() returned %v", err)
	}

	detached := git.DetachedHead()
	if !detached.Detached {
		t.Error("DetachedHead() Detached = false, want true")
	}
	if detached.String() != "(detached HEAD)" {
		t.Errorf("String() = %q", detached.String())
	}
	if err := detached.Validate(); err != nil {
		t.Errorf("Validate() returned %v", err)
	}

	var zero git.Branch
	if err := zero.Validate(); err == nil {
		t.Error("Validate() on zero branch returned nil, want error")
	}
}
