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

package dxcli_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dxlint/dxcli"
)

// pointOptionsFileAt pins the options file lookup to path so tests never
// pick up a real user configuration.
func pointOptionsFileAt(t *testing.T, path string) {
	t.Helper()
	t.Setenv("DXLINT_OPTIONS_PATH", path)
}

func TestParseOptions_Defaults(t *testing.T) {
	pointOptionsFileAt(t, filepath.Join(t.TempDir(), "missing.yml"))

	opts, err := dxcli.ParseOptions(nil, io.Discard)
	require.NoError(t, err)

	assert.True(t, opts.Branch)
	assert.True(t, opts.Hints)
	assert.True(t, opts.Color)
	assert.False(t, opts.Debug)
	assert.Empty(t, opts.Selector)
	assert.Empty(t, opts.HookMessageFile)
	assert.Empty(t, opts.InstallHook)
}

func TestParseOptions_Flags(t *testing.T) {
	pointOptionsFileAt(t, filepath.Join(t.TempDir(), "missing.yml"))

	opts, err := dxcli.ParseOptions(
		[]string{"--no-branch", "--no-hints", "--no-color", "--debug", "HEAD~2..HEAD"},
		io.Discard,
	)
	require.NoError(t, err)

	assert.False(t, opts.Branch)
	assert.False(t, opts.Hints)
	assert.False(t, opts.Color)
	assert.True(t, opts.Debug)
	assert.Equal(t, "HEAD~2..HEAD", opts.Selector)
}

func TestParseOptions_NoColorWins(t *testing.T) {
	pointOptionsFileAt(t, filepath.Join(t.TempDir(), "missing.yml"))

	opts, err := dxcli.ParseOptions([]string{"--color", "--no-color"}, io.Discard)
	require.NoError(t, err)

	assert.False(t, opts.Color)
}

func TestParseOptions_HookFlags(t *testing.T) {
	pointOptionsFileAt(t, filepath.Join(t.TempDir(), "missing.yml"))

	opts, err := dxcli.ParseOptions(
		[]string{"--hook-message-file=.git/COMMIT_EDITMSG"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, ".git/COMMIT_EDITMSG", opts.HookMessageFile)

	opts, err = dxcli.ParseOptions([]string{"--install-hook=commit-msg"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "commit-msg", opts.InstallHook)
}

func TestParseOptions_OptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yml")
	require.NoError(t, os.WriteFile(path, []byte("hints: false\ncolor: false\n"), 0o644))
	pointOptionsFileAt(t, path)

	opts, err := dxcli.ParseOptions(nil, io.Discard)
	require.NoError(t, err)

	assert.False(t, opts.Hints)
	assert.False(t, opts.Color)
	// Keys absent from the file keep their defaults.
	assert.True(t, opts.Branch)
	assert.False(t, opts.Debug)
}

func TestParseOptions_FlagsOverrideOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yml")
	require.NoError(t, os.WriteFile(path, []byte("color: false\n"), 0o644))
	pointOptionsFileAt(t, path)

	opts, err := dxcli.ParseOptions([]string{"--color"}, io.Discard)
	require.NoError(t, err)

	assert.True(t, opts.Color)
}

func TestParseOptions_MalformedOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yml")
	require.NoError(t, os.WriteFile(path, []byte("hints: [\n"), 0o644))
	pointOptionsFileAt(t, path)

	_, err := dxcli.ParseOptions(nil, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "options file")
}

func TestParseOptions_UnknownFlag(t *testing.T) {
	pointOptionsFileAt(t, filepath.Join(t.TempDir(), "missing.yml"))

	_, err := dxcli.ParseOptions([]string{"--no-such-flag"}, io.Discard)
	require.Error(t, err)
}
