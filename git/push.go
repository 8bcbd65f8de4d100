package git

// Push publishes the branch to origin, setting the upstream on first push.
func Push(repoPath, branch string) error {
	_, err := RunGit(repoPath, "push", "-u", "origin", branch)
	return err
}
