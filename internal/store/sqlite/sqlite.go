// Package sqlite implements the store on a local SQLite database for
// development and tests. Schema is bootstrapped on open.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/notepadhq/notepad-backend/internal/model"
	"github.com/notepadhq/notepad-backend/internal/store"
)

const ddl = `
CREATE TABLE IF NOT EXISTS notes (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    title      TEXT NOT NULL,
    content    TEXT NOT NULL,
    status     TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_user ON notes(user_id);

CREATE TABLE IF NOT EXISTS events (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL,
    title       TEXT NOT NULL,
    description TEXT NOT NULL,
    start_time  TEXT NOT NULL,
    end_time    TEXT NOT NULL,
    created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_user ON events(user_id);
`

// Open opens (or creates) the SQLite database at path and applies the schema.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite bootstrap: %w", err)
	}
	return db, nil
}

// NewWithDB constructs a SQLite store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Notes() store.Notes   { return &notes{db: s.db} }
func (s *sqliteStore) Events() store.Events { return &events{db: s.db} }

func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func fmtTime(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// --- Notes ---

type notes struct{ db *sql.DB }

func (n *notes) Create(ctx context.Context, m *model.Note) (*model.Note, error) {
	out := *m
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	if out.Status == "" {
		out.Status = model.StatusPending
	}
	out.CreatedAt = time.Now().UTC()
	_, err := n.db.ExecContext(ctx, `
        INSERT INTO notes (id, user_id, title, content, status, created_at)
        VALUES (?,?,?,?,?,?)
    `, out.ID, out.UserID, out.Title, out.Content, string(out.Status), fmtTime(out.CreatedAt))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (n *notes) List(ctx context.Context, req model.ListNotesRequest) ([]*model.Note, error) {
	q := `SELECT id, user_id, title, content, status, created_at FROM notes WHERE user_id=?`
	args := []any{req.OwnerID}
	if req.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, req.Limit)
	}
	rows, err := n.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Note
	for rows.Next() {
		var m model.Note
		var status, created string
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.Content, &status, &created); err != nil {
			return nil, err
		}
		m.Status = model.NoteStatus(status)
		m.CreatedAt = parseTime(created)
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (n *notes) Update(ctx context.Context, ownerID, noteID string, patch *model.NoteUpdate) (*model.Note, error) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 5)
	if patch.Title != nil {
		sets = append(sets, "title=?")
		args = append(args, *patch.Title)
	}
	if patch.Content != nil {
		sets = append(sets, "content=?")
		args = append(args, *patch.Content)
	}
	if patch.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, string(*patch.Status))
	}
	if len(sets) == 0 {
		return nil, model.ErrValidation
	}
	args = append(args, noteID, ownerID)

	res, err := n.db.ExecContext(ctx,
		`UPDATE notes SET `+strings.Join(sets, ", ")+` WHERE id=? AND user_id=?`, args...)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, model.ErrNotFound
	}
	return n.get(ctx, ownerID, noteID)
}

func (n *notes) get(ctx context.Context, ownerID, noteID string) (*model.Note, error) {
	var m model.Note
	var status, created string
	row := n.db.QueryRowContext(ctx, `
        SELECT id, user_id, title, content, status, created_at
        FROM notes WHERE id=? AND user_id=?
    `, noteID, ownerID)
	if err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.Content, &status, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	m.Status = model.NoteStatus(status)
	m.CreatedAt = parseTime(created)
	return &m, nil
}

func (n *notes) Delete(ctx context.Context, ownerID, noteID string) error {
	res, err := n.db.ExecContext(ctx, `DELETE FROM notes WHERE id=? AND user_id=?`, noteID, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- Events ---

type events struct{ db *sql.DB }

func (e *events) Create(ctx context.Context, m *model.Event) (*model.Event, error) {
	out := *m
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	out.CreatedAt = time.Now().UTC()
	_, err := e.db.ExecContext(ctx, `
        INSERT INTO events (id, user_id, title, description, start_time, end_time, created_at)
        VALUES (?,?,?,?,?,?,?)
    `, out.ID, out.UserID, out.Title, out.Description,
		fmtTime(out.StartTime), fmtTime(out.EndTime), fmtTime(out.CreatedAt))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *events) List(ctx context.Context, req model.ListEventsRequest) ([]*model.Event, error) {
	q := `SELECT id, user_id, title, description, start_time, end_time, created_at FROM events WHERE user_id=?`
	args := []any{req.OwnerID}
	if req.OrderByStartTime {
		q += ` ORDER BY start_time ASC`
	}
	if req.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, req.Limit)
	}
	rows, err := e.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Event
	for rows.Next() {
		var m model.Event
		var start, end, created string
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.Description, &start, &end, &created); err != nil {
			return nil, err
		}
		m.StartTime = parseTime(start)
		m.EndTime = parseTime(end)
		m.CreatedAt = parseTime(created)
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (e *events) Delete(ctx context.Context, ownerID, eventID string) error {
	res, err := e.db.ExecContext(ctx, `DELETE FROM events WHERE id=? AND user_id=?`, eventID, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}
