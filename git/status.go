package git

import "strings"

// StatusEntry is one porcelain status line: the two-character XY code and
// the path field exactly as git printed it, so renames keep their
// "old -> new" form for the collector to resolve.
type StatusEntry struct {
	Code string
	Path string
}

// Status reports every change in the working tree, untracked files
// included.
func Status(repoPath string) ([]StatusEntry, error) {
	out, err := RunGit(repoPath, "status", "--porcelain", "-uall")
	if err != nil {
		return nil, err
	}
	return parsePorcelain(out), nil
}

func parsePorcelain(out string) []StatusEntry {
	if out == "" {
		return nil
	}

	var entries []StatusEntry
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		entries = append(entries, StatusEntry{Code: line[:2], Path: line[3:]})
	}
	return entries
}
