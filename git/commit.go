package git

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNothingToCommit reports that the index was clean at commit time: the
// race where files revert between the status read and the stage.
var ErrNothingToCommit = errors.New("nothing to commit")

// Commit records staged changes. A clean-index result comes back as
// ErrNothingToCommit so callers can treat it as a no-op, not a failure.
func Commit(repoPath, message string) error {
	out, err := RunGit(repoPath, "commit", "-m", message)
	if err != nil {
		if isNothingToCommit(out) {
			return ErrNothingToCommit
		}
		return err
	}
	return nil
}

// git phrases a clean index as "nothing to commit, working tree clean" or
// "nothing added to commit but untracked files present".
func isNothingToCommit(output string) bool {
	lower := strings.ToLower(output)
	return strings.Contains(lower, "nothing to commit") ||
		strings.Contains(lower, "nothing added to commit")
}
