package git

import (
	"github.com/cockroachdb/errors"
	gogit "github.com/go-git/go-git/v5"
)

// DetectRepo resolves path to the enclosing working-tree root and the
// checked-out branch. It fails when path is not inside a git repository,
// which callers treat as fatal before any cycle runs.
func DetectRepo(path string) (root, branch string, err error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", errors.Wrapf(err, "%s is not inside a git repository", path)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", "", errors.Wrap(err, "resolving worktree")
	}
	root = wt.Filesystem.Root()

	head, err := repo.Head()
	if err != nil {
		// Unborn HEAD: a repo with no commits has no branch to report yet.
		return root, "", nil
	}
	if head.Name().IsBranch() {
		branch = head.Name().Short()
	}
	return root, branch, nil
}
