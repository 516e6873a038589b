package store

import (
	"context"

	"github.com/notepadhq/notepad-backend/internal/model"
)

// Store exposes persistence operations required by the handlers and the
// assistant. Implementations live under internal/store/<driver>/
// (postgrest, postgres, sqlite). Every operation is scoped by the owning
// user id established by the identity verifier; a row that exists but
// belongs to another owner is reported as model.ErrNotFound.
type Store interface {
	Notes() Notes
	Events() Events

	// HealthPing reports whether the backing store is reachable.
	HealthPing(ctx context.Context) error
}

type Notes interface {
	Create(ctx context.Context, n *model.Note) (*model.Note, error)
	List(ctx context.Context, req model.ListNotesRequest) ([]*model.Note, error)
	Update(ctx context.Context, ownerID, noteID string, patch *model.NoteUpdate) (*model.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
}

type Events interface {
	Create(ctx context.Context, e *model.Event) (*model.Event, error)
	List(ctx context.Context, req model.ListEventsRequest) ([]*model.Event, error)
	Delete(ctx context.Context, ownerID, eventID string) error
}
