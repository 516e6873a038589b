// Package postgres implements the store against a Postgres database over
// the pgx stdlib driver, for self-hosted deployments that bypass the
// hosted REST interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/notepadhq/notepad-backend/internal/model"
	"github.com/notepadhq/notepad-backend/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver, verifies
// connectivity and applies the schema.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a native Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Notes() store.Notes   { return &notes{db: s.db} }
func (s *pgStore) Events() store.Events { return &events{db: s.db} }

func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
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
	row := n.db.QueryRowContext(ctx, `
        INSERT INTO notes (id, user_id, title, content, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at
    `, out.ID, out.UserID, out.Title, out.Content, string(out.Status))
	var created time.Time
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out.CreatedAt = created
	return &out, nil
}

func (n *notes) List(ctx context.Context, req model.ListNotesRequest) ([]*model.Note, error) {
	q := `SELECT id, user_id, title, content, status, created_at FROM notes WHERE user_id=$1`
	args := []any{req.OwnerID}
	if req.Limit > 0 {
		q += ` LIMIT $2`
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
		var status string
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.Content, &status, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Status = model.NoteStatus(status)
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (n *notes) Update(ctx context.Context, ownerID, noteID string, patch *model.NoteUpdate) (*model.Note, error) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 5)
	idx := 1
	add := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s=$%d", col, idx))
		args = append(args, v)
		idx++
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if len(sets) == 0 {
		return nil, model.ErrValidation
	}
	args = append(args, noteID, ownerID)

	row := n.db.QueryRowContext(ctx, fmt.Sprintf(`
        UPDATE notes SET %s WHERE id=$%d AND user_id=$%d
        RETURNING id, user_id, title, content, status, created_at
    `, strings.Join(sets, ", "), idx, idx+1), args...)

	var m model.Note
	var status string
	if err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.Content, &status, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	m.Status = model.NoteStatus(status)
	return &m, nil
}

func (n *notes) Delete(ctx context.Context, ownerID, noteID string) error {
	res, err := n.db.ExecContext(ctx, `DELETE FROM notes WHERE id=$1 AND user_id=$2`, noteID, ownerID)
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
	row := e.db.QueryRowContext(ctx, `
        INSERT INTO events (id, user_id, title, description, start_time, end_time)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at
    `, out.ID, out.UserID, out.Title, out.Description, out.StartTime, out.EndTime)
	var created time.Time
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out.CreatedAt = created
	return &out, nil
}

func (e *events) List(ctx context.Context, req model.ListEventsRequest) ([]*model.Event, error) {
	q := `SELECT id, user_id, title, description, start_time, end_time, created_at FROM events WHERE user_id=$1`
	args := []any{req.OwnerID}
	if req.OrderByStartTime {
		q += ` ORDER BY start_time ASC`
	}
	if req.Limit > 0 {
		q += ` LIMIT $2`
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
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.Description, &m.StartTime, &m.EndTime, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (e *events) Delete(ctx context.Context, ownerID, eventID string) error {
	res, err := e.db.ExecContext(ctx, `DELETE FROM events WHERE id=$1 AND user_id=$2`, eventID, ownerID)
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
