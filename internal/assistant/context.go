package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/notepadhq/notepad-backend/internal/model"
	"github.com/notepadhq/notepad-backend/internal/store"
)

// contextItemLimit bounds how many notes and events are injected per turn.
const contextItemLimit = 3

// ContextAssembler renders a bounded plain-text snapshot of the user's
// recent notes and events for prompt injection.
//
// Stored content is reinjected verbatim: a note whose title or content
// contains an action directive can re-trigger it on a later turn. Known
// limitation, unresolved.
type ContextAssembler struct {
	store store.Store
	log   zerolog.Logger
}

func NewContextAssembler(s store.Store, log zerolog.Logger) *ContextAssembler {
	return &ContextAssembler{store: s, log: log}
}

// Assemble returns the context block for userID. Store failures degrade to
// an empty block; a chat turn must not fail because context was unavailable.
// Events are read in store-default order here; ordering is applied only on
// the dedicated listing endpoint.
func (a *ContextAssembler) Assemble(ctx context.Context, userID string) string {
	var b strings.Builder

	notes, err := a.store.Notes().List(ctx, model.ListNotesRequest{OwnerID: userID, Limit: contextItemLimit})
	if err != nil {
		a.log.Debug().Err(err).Str("user_id", userID).Msg("context: notes fetch failed")
		notes = nil
	}
	if len(notes) > 0 {
		b.WriteString("User Notes:\n")
		for _, n := range notes {
			b.WriteString("- " + n.Title + ": " + n.Content + "\n")
		}
	}

	events, err := a.store.Events().List(ctx, model.ListEventsRequest{OwnerID: userID, Limit: contextItemLimit})
	if err != nil {
		a.log.Debug().Err(err).Str("user_id", userID).Msg("context: events fetch failed")
		events = nil
	}
	if len(events) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Upcoming Events:\n")
		for _, e := range events {
			b.WriteString("- " + e.Title + " at " + e.StartTime.Format(time.RFC3339) + "\n")
		}
	}

	return b.String()
}
