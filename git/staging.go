package git

// stageArgs builds the add invocation. Paths become literal pathspecs so
// glob characters in filenames do not expand; no paths means a whole-tree
// sweep.
func stageArgs(paths []string) []string {
	args := []string{"add", "-A"}
	if len(paths) == 0 {
		return args
	}
	args = append(args, "--")
	for _, p := range paths {
		args = append(args, ":(literal)"+p)
	}
	return args
}

// StageAll stages every kind of change under the given paths, deletions
// included. Staging only what the caller collected keeps paths it dropped
// out of the next commit.
func StageAll(repoPath string, paths ...string) error {
	_, err := RunGit(repoPath, stageArgs(paths)...)
	return err
}
