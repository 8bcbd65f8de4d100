// Package git shells out to the git binary for working-tree operations
// and uses go-git to locate the repository at startup.
package git

import (
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// RunGit executes a git command in the repo and returns its trimmed
// combined output. On failure the output is folded into the error.
func RunGit(repoPath string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath

	out, err := cmd.CombinedOutput()
	output := strings.TrimRight(string(out), " \t\r\n")
	if err != nil {
		return output, errors.Wrapf(err, "git %s: %s", strings.Join(args, " "), output)
	}
	return output, nil
}
