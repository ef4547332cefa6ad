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

package dxgit_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dxlint/dxgit"
)

func setupPlainRepo(t *testing.T) (*dxgit.Repository, string) {
	t.Helper()

	dir := t.TempDir()
	raw, err := gogit.PlainInit(dir, false)
	require.NoError(t, err, "failed to initialize repository")
	return dxgit.New(raw), dir
}

func TestInstallHook(t *testing.T) {
	repo, dir := setupPlainRepo(t)

	require.NoError(t, repo.InstallHook(dxgit.HookCommitMsg))

	path := filepath.Join(dir, ".git", "hooks", "commit-msg")
	content, err := os.ReadFile(path)
	require.NoError(t, err, "hook script was not written")
	require.True(t, strings.HasPrefix(string(content), "#!/bin/sh\n"))
	require.Contains(t, string(content), `dxlint --hook-message-file="$1"`)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&0o111, "hook script must be executable")
}

func TestInstallHook_Idempotent(t *testing.T) {
	repo, dir := setupPlainRepo(t)

	require.NoError(t, repo.InstallHook(dxgit.HookPostCommit))
	first, err := os.ReadFile(filepath.Join(dir, ".git", "hooks", "post-commit"))
	require.NoError(t, err)

	require.NoError(t, repo.InstallHook(dxgit.HookPostCommit))
	second, err := os.ReadFile(filepath.Join(dir, ".git", "hooks", "post-commit"))
	require.NoError(t, err)
	require.Equal(t, string(first), string(second), "reinstalling must not duplicate the command")
}

func TestInstallHook_AppendsToExistingScript(t *testing.T) {
	repo, dir := setupPlainRepo(t)

	hooks := filepath.Join(dir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooks, 0o755))
	existing := "#!/bin/sh\nmake verify\n"
	require.NoError(t, os.WriteFile(filepath.Join(hooks, "post-commit"), []byte(existing), 0o755))

	require.NoError(t, repo.InstallHook(dxgit.HookPostCommit))

	content, err := os.ReadFile(filepath.Join(hooks, "post-commit"))
	require.NoError(t, err)
	require.Equal(t, existing+"dxlint\n", string(content))
}

func TestInstallHook_UnsupportedHook(t *testing.T) {
	repo, _ := setupPlainRepo(t)
	require.Error(t, repo.InstallHook("pre-push"))
}
