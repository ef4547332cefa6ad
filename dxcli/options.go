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

// Package dxcli wires the linter together: it parses options, drives the
// Git collaborator and the rule engine, and renders the report.
package dxcli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxlint/dxcore/errors"
)

// optionsPathEnv overrides the options file location. Without it the file
// is looked up in the XDG config home.
const optionsPathEnv = "DXLINT_OPTIONS_PATH"

// optionsFileName is the options file path relative to the XDG config home.
const optionsFileName = "dxlint/options.yml"

// Options is the fully resolved configuration for one run: built-in
// defaults, overlaid with the options file, overlaid with CLI flags.
type Options struct {
	// Branch enables branch name validation.
	Branch bool

	// Hints keeps hint-severity issues in the report.
	Hints bool

	// Color enables colored output.
	Color bool

	// Debug enables verbose diagnostics on stderr.
	Debug bool

	// HookMessageFile is the commit message file passed by the commit-msg
	// hook. When set, the file contents are linted instead of a revision.
	HookMessageFile string

	// InstallHook names a Git hook to install and exit.
	InstallHook string

	// Selector is the revision or "<from>..<to>" range to lint. Empty
	// means the latest commit.
	Selector string
}

// fileOptions is the YAML shape of the options file. Pointers distinguish
// "not set" from an explicit false.
type fileOptions struct {
	Branch *bool `yaml:"branch"`
	Hints  *bool `yaml:"hints"`
	Color  *bool `yaml:"color"`
	Debug  *bool `yaml:"debug"`
}

// ParseOptions resolves the run configuration from the options file and the
// command line. Usage and flag errors are written to output.
func ParseOptions(args []string, output io.Writer) (Options, error) {
	opts := Options{Branch: true, Hints: true, Color: true}

	if err := applyOptionsFile(&opts); err != nil {
		return opts, err
	}

	fs := flag.NewFlagSet("dxlint", flag.ContinueOnError)
	fs.SetOutput(output)
	noBranch := fs.Bool("no-branch", false, "disable branch name validation")
	noHints := fs.Bool("no-hints", false, "disable hints")
	colorOn := fs.Bool("color", false, "enable color output")
	noColor := fs.Bool("no-color", false, "disable color output")
	debug := fs.Bool("debug", false, "print debug information")
	fs.StringVar(&opts.HookMessageFile, "hook-message-file", "",
		"lint the contents of the commit-msg hook message `file`")
	fs.StringVar(&opts.InstallHook, "install-hook", "",
		"install dxlint into the named Git `hook` (commit-msg or post-commit) and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if *noBranch {
		opts.Branch = false
	}
	if *noHints {
		opts.Hints = false
	}
	if *colorOn {
		opts.Color = true
	}
	// --no-color wins when both are given.
	if *noColor {
		opts.Color = false
	}
	if *debug {
		opts.Debug = true
	}
	opts.Selector = fs.Arg(0)
	return opts, nil
}

// applyOptionsFile overlays the options file, when one exists, onto the
// defaults. A missing file is not an error; an unreadable or malformed one
// is.
func applyOptionsFile(opts *Options) error {
	path := os.Getenv(optionsPathEnv)
	if path == "" {
		found, err := xdg.SearchConfigFile(optionsFileName)
		if err != nil {
			return nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("dxlint: cannot read options file %q: %w", path, err)
	}

	var file fileOptions
	if err := yaml.Unmarshal(data, &file); err != nil {
		return &errors.UnmarshalError{Type: "options file", Data: data, Reason: err.Error()}
	}

	if file.Branch != nil {
		opts.Branch = *file.Branch
	}
	if file.Hints != nil {
		opts.Hints = *file.Hints
	}
	if file.Color != nil {
		opts.Color = *file.Color
	}
	if file.Debug != nil {
		opts.Debug = *file.Debug
	}
	return nil
}
