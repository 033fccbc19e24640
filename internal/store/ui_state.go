package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const stateFileName = "state.db"

// Store persists small, user-facing UI state so relaunching the client
// restores the last view. It is intentionally "best effort": callers must
// tolerate missing or invalid data.
type Store struct {
	Dir string
}

// UIState is the saved client state. LastQuery is the canonical filter query
// string and is kept replace-style: exactly one value, no history.
type UIState struct {
	Version    int
	LastQuery  string
	ShowDetail bool
}

// DefaultDir resolves the per-user state directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "shopfront"), nil
}

func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store dir not set")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) statePath() string {
	return filepath.Join(s.Dir, stateFileName)
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.statePath())
	if err != nil {
		return nil, err
	}
	// busy_timeout avoids "database is locked" flakiness when a second
	// shopfront process touches the same state file.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS ui_state (
  id          INTEGER PRIMARY KEY CHECK (id = 1),
  version     INTEGER NOT NULL,
  last_query  TEXT NOT NULL DEFAULT '',
  show_detail INTEGER NOT NULL DEFAULT 0,
  updated_at  TEXT NOT NULL
);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// LoadUIState reads the saved state. A missing row (or an unreadable state
// file) yields fresh defaults rather than an error surface for the caller to
// branch on.
func (s Store) LoadUIState(ctx context.Context) (*UIState, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return &UIState{Version: 1}, nil
	}
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	st := &UIState{Version: 1}
	var showDetail int
	row := db.QueryRowContext(ctx, `SELECT version, last_query, show_detail FROM ui_state WHERE id = 1`)
	if err := row.Scan(&st.Version, &st.LastQuery, &showDetail); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &UIState{Version: 1}, nil
		}
		return nil, err
	}
	st.ShowDetail = showDetail != 0
	if st.Version == 0 {
		st.Version = 1
	}
	return st, nil
}

// SaveUIState upserts the single state row.
func (s Store) SaveUIState(ctx context.Context, st *UIState) error {
	if st == nil {
		return nil
	}
	if strings.TrimSpace(s.Dir) == "" {
		return nil
	}
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if st.Version == 0 {
		st.Version = 1
	}
	showDetail := 0
	if st.ShowDetail {
		showDetail = 1
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO ui_state (id, version, last_query, show_detail, updated_at)
VALUES (1, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  version     = excluded.version,
  last_query  = excluded.last_query,
  show_detail = excluded.show_detail,
  updated_at  = excluded.updated_at;`,
		st.Version, st.LastQuery, showDetail, time.Now().UTC().Format(time.RFC3339))
	return err
}
