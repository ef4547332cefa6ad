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

package dxcli

import (
	goerrors "errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"dirpx.dev/dxlint/dxcore/rules"
	"dirpx.dev/dxlint/dxgit"
)

// Exit codes. Hints never fail a run; only errors do.
const (
	ExitClean    = 0
	ExitIssues   = 1
	ExitInternal = 2
)

// Run executes one linter invocation and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	opts, err := ParseOptions(args, stderr)
	if err != nil {
		if goerrors.Is(err, flag.ErrHelp) {
			return ExitClean
		}
		fmt.Fprintln(stderr, err)
		return ExitInternal
	}
	configureLogging(opts.Debug, stderr)

	repo, repoErr := dxgit.Open(".")

	if opts.InstallHook != "" {
		if repoErr != nil {
			fmt.Fprintln(stderr, repoErr)
			return ExitInternal
		}
		if err := repo.InstallHook(opts.InstallHook); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitInternal
		}
		fmt.Fprintf(stdout, "Installed Git hook: %s\n", opts.InstallHook)
		return ExitClean
	}

	var report rules.Report
	env := rules.Env{}

	if opts.HookMessageFile != "" {
		contents, err := os.ReadFile(opts.HookMessageFile)
		if err != nil {
			fmt.Fprintf(stderr, "dxlint: cannot read message file %q: %v\n", opts.HookMessageFile, err)
			return ExitInternal
		}
		// The hook has no repository requirement of its own; without one
		// the Git defaults apply.
		settings := dxgit.Settings{CommentChar: "#"}
		if repoErr == nil {
			if configured, err := repo.Config(); err == nil {
				settings = configured
			}
		}
		report.AddCommit(dxgit.CommitFromMessageFile(string(contents), settings), env)
	} else {
		if repoErr != nil {
			fmt.Fprintln(stderr, repoErr)
			return ExitInternal
		}
		commits, err := repo.Commits(opts.Selector)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitInternal
		}
		env.Changesets = repo.HasChangesetDir()
		for _, commit := range commits {
			report.AddCommit(commit, env)
		}
	}

	if opts.Branch && repoErr == nil {
		branch, err := repo.HeadBranch()
		switch {
		case err == nil:
			report.CheckBranch(branch)
		case opts.HookMessageFile != "":
			// The very first commit of a repository has no HEAD yet when
			// the commit-msg hook runs; there is no branch to check.
			logrus.WithError(err).Debug("skipping branch check")
		default:
			fmt.Fprintln(stderr, err)
			return ExitInternal
		}
	}

	if !opts.Hints {
		report.StripHints()
	}

	renderer := NewRenderer(stdout, opts.Color)
	for _, result := range report.Commits {
		for _, iss := range result.Issues {
			renderer.CommitIssue(result.Commit, iss)
		}
	}
	if report.Branch != nil {
		for _, iss := range report.Branch.Issues {
			renderer.BranchIssue(report.Branch.Branch, iss)
		}
	}
	renderer.Summary(report.Summary())

	if report.ErrorCount() > 0 {
		return ExitIssues
	}
	return ExitClean
}

func configureLogging(debug bool, stderr io.Writer) {
	logrus.SetOutput(stderr)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}
