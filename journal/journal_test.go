package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndRecent(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	require.NoError(t, err)
	defer db.Close()

	base := time.Unix(1700000000, 0)
	for i := 0; i < 3; i++ {
		err := db.Record(Entry{
			Session:   "s-1",
			Branch:    "main",
			Message:   fmt.Sprintf("Update train.py: step %d", i),
			Files:     i + 1,
			Pushed:    i == 2,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	entries, err := db.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Update train.py: step 2", entries[0].Message)
	assert.True(t, entries[0].Pushed)
	assert.Equal(t, 3, entries[0].Files)
	assert.Equal(t, "Update train.py: step 1", entries[1].Message)
	assert.False(t, entries[1].Pushed)

	// The journal lives under the repo-local directory.
	_, err = os.Stat(filepath.Join(dir, Dir, "journal.db"))
	assert.NoError(t, err)
}

func TestOpenHidesJournalFromGit(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	data, err := os.ReadFile(filepath.Join(dir, Dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "*\n", string(data))

	// Reopening leaves an existing ignore file alone.
	require.NoError(t, os.WriteFile(filepath.Join(dir, Dir, ".gitignore"), []byte("journal.db\n"), 0o644))
	db, err = Open(dir)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	data, err = os.ReadFile(filepath.Join(dir, Dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "journal.db\n", string(data))
}

func TestOpenExistingMissing(t *testing.T) {
	db, err := OpenExisting(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, db)
}

func TestOpenExistingReadsBack(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, db.Record(Entry{Session: "s", Branch: "main", Message: "Add docs: notes.md", Files: 1}))
	require.NoError(t, db.Close())

	ro, err := OpenExisting(dir)
	require.NoError(t, err)
	require.NotNil(t, ro)
	defer ro.Close()

	entries, err := ro.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Add docs: notes.md", entries[0].Message)
}

func TestRecordFillsDefaults(t *testing.T) {
	db, err := Open(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Record(Entry{Session: "s", Branch: "main", Message: "Add docs: notes.md", Files: 1}))

	entries, err := db.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].CreatedAt.IsZero())
}
