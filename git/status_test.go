package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePorcelain(t *testing.T) {
	out := "?? notes.md\n" +
		" M train.py\n" +
		"A  data/new.csv\n" +
		" D old.csv\n" +
		"R  old_name.py -> new_name.py\n" +
		"MM utils.py"

	entries := parsePorcelain(out)

	assert.Equal(t, []StatusEntry{
		{Code: "??", Path: "notes.md"},
		{Code: " M", Path: "train.py"},
		{Code: "A ", Path: "data/new.csv"},
		{Code: " D", Path: "old.csv"},
		{Code: "R ", Path: "old_name.py -> new_name.py"},
		{Code: "MM", Path: "utils.py"},
	}, entries)
}

func TestParsePorcelainEmpty(t *testing.T) {
	assert.Nil(t, parsePorcelain(""))
}

func TestParsePorcelainSkipsShortLines(t *testing.T) {
	entries := parsePorcelain("xx\n M a.py\n")
	assert.Equal(t, []StatusEntry{{Code: " M", Path: "a.py"}}, entries)
}

func TestIsNothingToCommit(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{
			name:   "clean tree",
			output: "On branch main\nnothing to commit, working tree clean",
			want:   true,
		},
		{
			name:   "untracked only",
			output: "nothing added to commit but untracked files present",
			want:   true,
		},
		{
			name:   "real failure",
			output: "fatal: unable to write new index file",
			want:   false,
		},
		{
			name:   "empty output",
			output: "",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNothingToCommit(tt.output))
		})
	}
}
