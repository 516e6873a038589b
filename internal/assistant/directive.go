package assistant

import (
	"errors"
	"strings"
)

// actionSentinel marks a completion that carries an embedded command.
// Wire grammar: [ACTION:NOTE|<title>|<content>] or
// [ACTION:EVENT|<title>|<natural-language time>].
const actionSentinel = "[ACTION:"

// ErrMalformedDirective is returned when text carries the action sentinel
// but a field contains a literal '|'. The pipe-delimited grammar has no
// escaping, so such a directive is unrecoverably ambiguous.
var ErrMalformedDirective = errors.New("malformed action directive")

// Action is a command extracted from completion text.
type Action interface{ isAction() }

// NoteAction requests creation of a note.
type NoteAction struct {
	Title   string
	Content string
}

// EventAction requests scheduling of an event; When is the raw
// natural-language time expression, resolved later by a TimeParser.
type EventAction struct {
	Title string
	When  string
}

func (NoteAction) isAction()  {}
func (EventAction) isAction() {}

// ParseDirective classifies completion text. It returns (nil, nil) for a
// plain reply, an Action for a well-formed directive, or
// ErrMalformedDirective when a directive is detected but a field contains
// the delimiter. Structural violations that don't prove directive intent
// (unknown kind, missing parts, malformed head) fall back to a plain reply.
// The function never panics; the upstream model is untrusted input.
func ParseDirective(text string) (Action, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, actionSentinel) {
		return nil, nil
	}

	body := strings.TrimPrefix(trimmed, "[")
	// A missing trailing bracket still parses; the model drops it often
	// enough that rejecting would lose otherwise valid directives.
	body = strings.TrimSuffix(body, "]")

	parts := strings.Split(body, "|")
	head := strings.Split(parts[0], ":")
	if len(head) != 2 || head[0] != "ACTION" {
		return nil, nil
	}
	// Resolve the kind before counting fields: an unknown kind never proves
	// directive intent, regardless of how many delimiters follow it.
	kind := head[1]
	if kind != "NOTE" && kind != "EVENT" {
		return nil, nil
	}
	if len(parts) < 3 {
		return nil, nil
	}
	if len(parts) > 3 {
		return nil, ErrMalformedDirective
	}

	if kind == "NOTE" {
		return NoteAction{Title: parts[1], Content: parts[2]}, nil
	}
	return EventAction{Title: parts[1], When: parts[2]}, nil
}
