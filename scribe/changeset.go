package scribe

import (
	"path/filepath"
	"strings"

	"github.com/dylan/gitscribe/git"
)

// ChangeSet holds one poll cycle's changes, split into disjoint buckets.
// A path lands in exactly one bucket.
type ChangeSet struct {
	Added     []string
	Modified  []string
	Deleted   []string
	Untracked []string
}

// Total returns the number of changed paths across all buckets.
func (cs ChangeSet) Total() int {
	return len(cs.Added) + len(cs.Modified) + len(cs.Deleted) + len(cs.Untracked)
}

// Empty reports whether no changes were collected.
func (cs ChangeSet) Empty() bool {
	return cs.Total() == 0
}

// All returns every changed path in fixed bucket order
// (added, modified, deleted, untracked).
func (cs ChangeSet) All() []string {
	all := make([]string, 0, cs.Total())
	all = append(all, cs.Added...)
	all = append(all, cs.Modified...)
	all = append(all, cs.Deleted...)
	all = append(all, cs.Untracked...)
	return all
}

// Collect buckets raw status entries. Rename entries resolve to the new
// path; paths matching an ignore glob are dropped. Bucket rules, in
// priority order: untracked marker, delete marker, add marker, modified.
func Collect(entries []git.StatusEntry, ignore []string) ChangeSet {
	var cs ChangeSet
	for _, e := range entries {
		path := e.Path
		if idx := strings.Index(path, " -> "); idx != -1 {
			path = path[idx+4:]
		}
		if Ignored(path, ignore) {
			continue
		}

		switch {
		case e.Code == "??":
			cs.Untracked = append(cs.Untracked, path)
		case strings.Contains(e.Code, "D"):
			cs.Deleted = append(cs.Deleted, path)
		case strings.Contains(e.Code, "A"):
			cs.Added = append(cs.Added, path)
		default:
			cs.Modified = append(cs.Modified, path)
		}
	}
	return cs
}

// Ignored reports whether path matches any of the glob patterns. Each
// pattern is tried against the full repo-relative path and against the
// base name, so "*.log" drops logs at any depth. The filesystem trigger
// shares this matcher so watching and collecting skip the same paths.
func Ignored(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, path); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
	}
	return false
}
