// Package journal persists one row per committed cycle in a repo-local
// SQLite database, which the history subcommand reads back.
package journal

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Dir is the repo-local directory holding the journal database. The
// change collector always drops it, and Open writes a .gitignore that
// hides the directory from git itself, so the journal never commits
// itself.
const Dir = ".gitscribe"

const fileName = "journal.db"

const schema = `CREATE TABLE IF NOT EXISTS cycles (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	branch TEXT NOT NULL,
	message TEXT NOT NULL,
	files_changed INTEGER NOT NULL,
	pushed INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
)`

// Entry is one committed cycle.
type Entry struct {
	ID        string
	Session   string
	Branch    string
	Message   string
	Files     int
	Pushed    bool
	CreatedAt time.Time
}

// DB wraps the journal database for one repository.
type DB struct {
	db *sql.DB
}

// Open creates the journal (and its directory) if needed and returns a
// writable handle.
func Open(repoPath string) (*DB, error) {
	dir := filepath.Join(repoPath, Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if err := writeSelfIgnore(dir); err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("sqlite", filepath.Join(dir, fileName))
	if err != nil {
		return nil, err
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return &DB{db: sqlDB}, nil
}

// writeSelfIgnore drops a .gitignore covering everything in the journal
// directory, including itself, so git never reports it as untracked.
func writeSelfIgnore(dir string) error {
	path := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte("*\n"), 0o644)
}

// OpenExisting returns a read-only handle to an existing journal.
// Returns nil, nil if the repo has no journal yet.
func OpenExisting(repoPath string) (*DB, error) {
	dbPath := filepath.Join(repoPath, Dir, fileName)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, nil
	}

	sqlDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		return nil, err
	}
	return &DB{db: sqlDB}, nil
}

// Close releases the underlying database handle.
func (d *DB) Close() error {
	return d.db.Close()
}

// Record writes one committed cycle, filling in the id and timestamp when
// the caller left them zero.
func (d *DB) Record(e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	pushed := 0
	if e.Pushed {
		pushed = 1
	}

	_, err := d.db.Exec(`INSERT INTO cycles (id, session_id, branch, message, files_changed, pushed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Session, e.Branch, e.Message, e.Files, pushed, e.CreatedAt.Unix())
	return err
}

// Recent returns up to limit entries, newest first.
func (d *DB) Recent(limit int) ([]Entry, error) {
	rows, err := d.db.Query(`SELECT id, session_id, branch, message, files_changed, pushed, created_at
		FROM cycles ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var pushed int
		var created int64
		if err := rows.Scan(&e.ID, &e.Session, &e.Branch, &e.Message, &e.Files, &pushed, &created); err != nil {
			return nil, err
		}
		e.Pushed = pushed != 0
		e.CreatedAt = time.Unix(created, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
