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

package dxgit

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// HookCommitMsg and HookPostCommit are the hooks the installer supports.
const (
	HookCommitMsg  = "commit-msg"
	HookPostCommit = "post-commit"
)

// hookCommands maps a hook name to the line appended to its script. The
// commit-msg hook receives the message file path as its first argument.
var hookCommands = map[string]string{
	HookCommitMsg:  `dxlint --hook-message-file="$1"`,
	HookPostCommit: "dxlint",
}

// InstallHook appends the dxlint invocation to the named hook script in the
// repository's hooks directory, creating the script when it does not exist.
// Installing into a script that already calls dxlint is a no-op.
func (r *Repository) InstallHook(name string) error {
	command, ok := hookCommands[name]
	if !ok {
		return fmt.Errorf("dxlint: unsupported hook %q, expected %s or %s", name, HookCommitMsg, HookPostCommit)
	}

	storage, ok := r.repo.Storer.(*filesystem.Storage)
	if !ok {
		return fmt.Errorf("dxlint: repository storage is not filesystem-backed, cannot install hooks")
	}
	fs := storage.Filesystem()

	if err := fs.MkdirAll("hooks", 0o755); err != nil {
		return fmt.Errorf("dxlint: cannot create hooks directory: %w", err)
	}
	path := fs.Join("hooks", name)

	existing, err := util.ReadFile(fs, path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("dxlint: cannot read hook %q: %w", path, err)
	}
	if strings.Contains(string(existing), "dxlint") {
		log.WithField("hook", name).Debug("hook already installed")
		return nil
	}

	script := string(existing)
	if script == "" {
		script = "#!/bin/sh\n"
	} else if !strings.HasSuffix(script, "\n") {
		script += "\n"
	}
	script += command + "\n"

	if err := util.WriteFile(fs, path, []byte(script), 0o755); err != nil {
		return fmt.Errorf("dxlint: cannot write hook %q: %w", path, err)
	}
	// billy's WriteFile does not apply the mode on every backend; hooks
	// must be executable to run.
	if change, ok := fs.(billy.Change); ok {
		if err := change.Chmod(path, 0o755); err != nil {
			return fmt.Errorf("dxlint: cannot mark hook %q executable: %w", path, err)
		}
	}
	log.WithField("hook", name).Debug("hook installed")
	return nil
}
