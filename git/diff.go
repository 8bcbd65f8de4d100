package git

// Diff returns the unstaged diff for one file.
func Diff(repoPath, filePath string) (string, error) {
	return RunGit(repoPath, "diff", "--", filePath)
}
