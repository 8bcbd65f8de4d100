package watch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewTriggerSkipsIgnoredAndDotDirs(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"src", "data", "node_modules/left-pad", ".git/objects"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}

	trig, err := NewTrigger(root, []string{"node_modules"}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer trig.watcher.Close()

	watched := trig.watcher.WatchList()
	assert.Contains(t, watched, root)
	assert.Contains(t, watched, filepath.Join(root, "src"))
	assert.Contains(t, watched, filepath.Join(root, "data"))
	assert.NotContains(t, watched, filepath.Join(root, "node_modules"))
	assert.NotContains(t, watched, filepath.Join(root, "node_modules", "left-pad"))
	assert.NotContains(t, watched, filepath.Join(root, ".git"))
	assert.NotContains(t, watched, filepath.Join(root, ".git", "objects"))
}

func TestMaybeWatchHonorsSkipRules(t *testing.T) {
	root := t.TempDir()
	trig, err := NewTrigger(root, []string{"tmp"}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer trig.watcher.Close()

	for _, dir := range []string{"fresh", "tmp", ".cache"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0o755))
	}
	trig.maybeWatch(filepath.Join(root, "fresh"))
	trig.maybeWatch(filepath.Join(root, "tmp"))
	trig.maybeWatch(filepath.Join(root, ".cache"))

	watched := trig.watcher.WatchList()
	assert.Contains(t, watched, filepath.Join(root, "fresh"))
	assert.NotContains(t, watched, filepath.Join(root, "tmp"))
	assert.NotContains(t, watched, filepath.Join(root, ".cache"))
}
