package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageArgsSweepsWithoutPaths(t *testing.T) {
	assert.Equal(t, []string{"add", "-A"}, stageArgs(nil))
}

func TestStageArgsScopesToLiteralPaths(t *testing.T) {
	got := stageArgs([]string{"train.py", "data[1].csv", "results/run 2.json"})

	assert.Equal(t, []string{
		"add", "-A", "--",
		":(literal)train.py",
		":(literal)data[1].csv",
		":(literal)results/run 2.json",
	}, got)
}
