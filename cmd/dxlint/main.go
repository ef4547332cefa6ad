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

// Command dxlint lints Git commits and the checked-out branch name.
//
// Usage:
//
//	dxlint                      Lint the latest commit.
//	dxlint HEAD~5..HEAD         Lint the last five commits.
//	dxlint <sha>                Lint a single commit.
//	dxlint --hook-message-file=.git/COMMIT_EDITMSG
//	                            Lint a message from the commit-msg hook.
//	dxlint --install-hook=commit-msg
//	                            Install the commit-msg hook.
package main

import (
	"os"

	"dirpx.dev/dxlint/dxcli"
)

func main() {
	os.Exit(dxcli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
