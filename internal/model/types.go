package model

import "time"

// User is the identity record reported by the external identity provider.
// The service never creates or mutates users; it only reads one per request.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// NoteStatus is the lifecycle state of a note.
type NoteStatus string

const (
	StatusPending    NoteStatus = "Pending"
	StatusInProgress NoteStatus = "In Progress"
	StatusDone       NoteStatus = "Done"
)

// Valid reports whether s is one of the recognized note statuses.
func (s NoteStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Note is a user-owned note row.
type Note struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Status    NoteStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// NoteUpdate is a partial update; nil fields are left untouched.
type NoteUpdate struct {
	Title   *string     `json:"title,omitempty"`
	Content *string     `json:"content,omitempty"`
	Status  *NoteStatus `json:"status,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u *NoteUpdate) Empty() bool {
	return u == nil || (u.Title == nil && u.Content == nil && u.Status == nil)
}

// Event is a user-owned calendar event row.
type Event struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListNotesRequest captures filters used when listing notes.
type ListNotesRequest struct {
	OwnerID string
	Limit   int
}

// ListEventsRequest captures filters used when listing events.
// OrderByStartTime is requested only by the listing endpoint; the chat
// context path reads events in store-default order.
type ListEventsRequest struct {
	OwnerID          string
	Limit            int
	OrderByStartTime bool
}
