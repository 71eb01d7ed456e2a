// Package gitmeta resolves version-control metadata for a build run: the
// remote repository URL and the currently checked-out branch. Both are
// attached verbatim to every symbol record's source block.
package gitmeta

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Info is the per-run version-control annotation.
type Info struct {
	Repo   string // remote URL of "origin"
	Branch string // short name of the checked-out branch
}

// Resolve opens the repository containing path (searching parent directories
// for .git) and reads the origin remote URL and current branch name.
func Resolve(path string) (Info, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Info{}, fmt.Errorf("open repository at %s: %w", path, err)
	}

	var info Info
	remote, err := repo.Remote("origin")
	if err != nil {
		return Info{}, fmt.Errorf("resolve origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return Info{}, fmt.Errorf("origin remote has no URL")
	}
	info.Repo = urls[0]

	head, err := repo.Head()
	if err != nil {
		return Info{}, fmt.Errorf("resolve HEAD: %w", err)
	}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	} else {
		// Detached HEAD: fall back to the commit hash.
		info.Branch = head.Hash().String()
	}
	return info, nil
}
