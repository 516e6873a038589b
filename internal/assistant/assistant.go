// Package assistant implements the chat turn: context assembly, prompt
// construction, completion fetch, and directive parsing & dispatch.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/notepadhq/notepad-backend/internal/model"
	"github.com/notepadhq/notepad-backend/internal/store"
)

// Fixed user-facing replies. AI-provider failures are conversational, never
// HTTP errors.
const (
	replyTimeout      = "⏱️ AI request timed out. Please try again."
	replyActionFailed = "⚠️ I tried to perform that action but something went wrong."
)

// directiveEventDuration is the fixed length of directive-created events.
const directiveEventDuration = time.Hour

// Assistant runs one chat turn per call. It holds no per-turn state;
// nothing is remembered across turns beyond what the store returns.
type Assistant struct {
	store       store.Store
	completions CompletionClient
	times       TimeParser
	assembler   *ContextAssembler
	log         zerolog.Logger

	// now is stubbed in tests.
	now func() time.Time
}

func New(s store.Store, c CompletionClient, tp TimeParser, log zerolog.Logger) *Assistant {
	return &Assistant{
		store:       s,
		completions: c,
		times:       tp,
		assembler:   NewContextAssembler(s, log),
		log:         log,
		now:         time.Now,
	}
}

// Chat executes one turn for the verified user and returns the reply shown
// to them. At most one store insert happens per turn, and only when the
// completion carried a well-formed directive.
func (a *Assistant) Chat(ctx context.Context, user *model.User, message string) string {
	contextBlock := a.assembler.Assemble(ctx, user.ID)
	prompt := BuildPrompt(contextBlock, message)

	text, err := a.completions.Complete(ctx, prompt)
	if err != nil {
		return a.completionFailureReply(err)
	}

	action, err := ParseDirective(text)
	if err != nil {
		a.log.Debug().Err(err).Msg("chat: directive discarded")
		return replyActionFailed
	}

	switch act := action.(type) {
	case NoteAction:
		return a.createNote(ctx, user, act)
	case EventAction:
		return a.scheduleEvent(ctx, user, act)
	default:
		// Plain reply: completion text passes through unchanged.
		return text
	}
}

func (a *Assistant) completionFailureReply(err error) string {
	var statusErr *UpstreamStatusError
	switch {
	case errors.Is(err, ErrCompletionTimeout):
		a.log.Warn().Msg("chat: completion timed out")
		return replyTimeout
	case errors.As(err, &statusErr):
		a.log.Warn().Int("status", statusErr.Status).Msg("chat: completion upstream error")
		return fmt.Sprintf("⚠️ AI Error (%d). Please try again.", statusErr.Status)
	default:
		a.log.Error().Err(err).Msg("chat: completion transport failure")
		return fmt.Sprintf("❌ Error: %v", err)
	}
}

func (a *Assistant) createNote(ctx context.Context, user *model.User, act NoteAction) string {
	_, err := a.store.Notes().Create(ctx, &model.Note{
		UserID:  user.ID,
		Title:   act.Title,
		Content: act.Content,
		Status:  model.StatusPending,
	})
	if err != nil {
		a.log.Error().Err(err).Msg("chat: note insert failed")
		return replyActionFailed
	}
	return fmt.Sprintf("✅ I've created the note: '%s'.", act.Title)
}

func (a *Assistant) scheduleEvent(ctx context.Context, user *model.User, act EventAction) string {
	start, ok := a.times.Parse(act.When, a.now())
	if !ok {
		return fmt.Sprintf("⚠️ I understood you wanted an event, but I couldn't understand the time '%s'.", act.When)
	}

	_, err := a.store.Events().Create(ctx, &model.Event{
		UserID:      user.ID,
		Title:       act.Title,
		Description: "Scheduled via AI: " + act.When,
		StartTime:   start,
		EndTime:     start.Add(directiveEventDuration),
	})
	if err != nil {
		a.log.Error().Err(err).Msg("chat: event insert failed")
		return replyActionFailed
	}
	return fmt.Sprintf("✅ Scheduled '%s' for %s.", act.Title, start.Format("Jan 2 at 3:04 PM"))
}
