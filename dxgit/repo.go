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

// Package dxgit is the Git collaborator: it reads commits, the checked-out
// branch and the relevant configuration from a repository and hands them to
// the core as plain models. All Git access lives here; dxcore never touches
// a repository.
package dxgit

import (
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/sirupsen/logrus"

	gitmodel "dirpx.dev/dxlint/dxcore/model/git"
)

var log = logrus.WithField("component", "dxgit")

// Settings holds the repository configuration the linter consults.
type Settings struct {
	// CommentChar is core.commentChar, "#" unless configured otherwise.
	CommentChar string

	// Cleanup is the commit.cleanup mode applied to hook message files.
	Cleanup gitmodel.CleanupMode
}

// Repository wraps an open go-git repository.
type Repository struct {
	repo *gogit.Repository
}

// Open discovers and opens the repository containing path, walking up the
// directory tree the way the git CLI does.
func Open(path string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("dxlint: cannot open repository at %q: %w", path, err)
	}
	log.WithField("path", path).Debug("opened repository")
	return &Repository{repo: repo}, nil
}

// New wraps an already-open go-git repository. Tests use it with in-memory
// storage.
func New(repo *gogit.Repository) *Repository {
	return &Repository{repo: repo}
}

// Commits resolves a selector into commit models, oldest first.
//
// An empty selector means HEAD. A "<from>..<to>" selector walks the first
// parent chain from <to> back to, but not including, <from>. Anything else
// is a single revision.
func (r *Repository) Commits(selector string) ([]gitmodel.Commit, error) {
	if selector == "" {
		selector = "HEAD"
	}
	if from, to, found := strings.Cut(selector, ".."); found {
		return r.commitRange(from, strings.TrimPrefix(to, "."))
	}

	commit, err := r.resolve(selector)
	if err != nil {
		return nil, err
	}
	model, err := commitModel(commit)
	if err != nil {
		return nil, err
	}
	return []gitmodel.Commit{model}, nil
}

func (r *Repository) commitRange(from, to string) ([]gitmodel.Commit, error) {
	if to == "" {
		to = "HEAD"
	}
	start, err := r.resolve(from)
	if err != nil {
		return nil, err
	}
	cursor, err := r.resolve(to)
	if err != nil {
		return nil, err
	}

	var newestFirst []gitmodel.Commit
	for cursor.Hash != start.Hash {
		model, err := commitModel(cursor)
		if err != nil {
			return nil, err
		}
		newestFirst = append(newestFirst, model)
		if cursor.NumParents() == 0 {
			return nil, fmt.Errorf("dxlint: %q is not an ancestor of %q", from, to)
		}
		cursor, err = cursor.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("dxlint: cannot walk history of %q: %w", to, err)
		}
	}

	commits := make([]gitmodel.Commit, 0, len(newestFirst))
	for i := len(newestFirst) - 1; i >= 0; i-- {
		commits = append(commits, newestFirst[i])
	}
	log.WithFields(logrus.Fields{"from": from, "to": to, "commits": len(commits)}).
		Debug("resolved commit range")
	return commits, nil
}

func (r *Repository) resolve(rev string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("dxlint: cannot resolve revision %q: %w", rev, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("dxlint: cannot read commit %s: %w", hash, err)
	}
	return commit, nil
}

// commitModel converts a go-git commit into the core model. The message
// split keeps the blank separator line at the start of the body, which is
// what the combined line numbering expects.
func commitModel(c *object.Commit) (gitmodel.Commit, error) {
	subject, message, _ := strings.Cut(c.Message, "\n")

	stats, err := c.Stats()
	if err != nil {
		return gitmodel.Commit{}, fmt.Errorf("dxlint: cannot compute diff for %s: %w", c.Hash, err)
	}
	files := make([]string, 0, len(stats))
	for _, stat := range stats {
		files = append(files, stat.Name)
	}

	return gitmodel.NewCommit(c.Hash.String(), c.Author.Email, subject, message, files, len(files) > 0), nil
}

// HeadBranch returns the checked-out branch, or the detached marker when
// HEAD does not point at a branch.
func (r *Repository) HeadBranch() (gitmodel.Branch, error) {
	head, err := r.repo.Head()
	if err != nil {
		return gitmodel.Branch{}, fmt.Errorf("dxlint: cannot read HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		log.Debug("HEAD is detached")
		return gitmodel.DetachedHead(), nil
	}
	return gitmodel.NewBranch(head.Name().Short()), nil
}

// Config reads the linter-relevant repository settings. Missing values fall
// back to Git's defaults; an unknown commit.cleanup value falls back to the
// default mode, as Git itself does.
func (r *Repository) Config() (Settings, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return Settings{}, fmt.Errorf("dxlint: cannot read repository config: %w", err)
	}

	settings := Settings{CommentChar: "#"}
	if v := cfg.Raw.Section("core").Option("commentChar"); v != "" {
		settings.CommentChar = v
	}
	if v := cfg.Raw.Section("commit").Option("cleanup"); v != "" {
		mode, err := gitmodel.ParseCleanupMode(v)
		if err != nil {
			log.WithField("value", v).Debug("unknown commit.cleanup value, using default")
		}
		settings.Cleanup = mode
	}
	return settings, nil
}

// HasChangesetDir reports whether the worktree carries a .changeset or
// .changesets directory. Bare repositories have no worktree and report
// false.
func (r *Repository) HasChangesetDir() bool {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false
	}
	for _, dir := range []string{".changeset", ".changesets"} {
		if info, err := wt.Filesystem.Stat(dir); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// CommitFromMessageFile builds a commit model from the message file a
// commit-msg hook receives. The diff is unknown at that point, so the
// commit claims changes and the diff rules stay quiet.
func CommitFromMessageFile(contents string, settings Settings) gitmodel.Commit {
	subject, message := gitmodel.ParseMessageFile(contents, settings.Cleanup, settings.CommentChar)
	return gitmodel.NewCommit("", "", subject, message, nil, true)
}
