package assistant

import (
	"errors"
	"testing"
)

func TestParseDirective_PlainReplyPassthrough(t *testing.T) {
	cases := []string{
		"Sure, here's a summary of your notes.",
		"",
		"ACTION:NOTE|x|y",            // no bracket, no sentinel
		"[action:NOTE|x|y]",          // sentinel is case-sensitive
		"Let me help. [ACTION:NOTE|x|y]", // sentinel must lead the text
	}
	for _, text := range cases {
		act, err := ParseDirective(text)
		if act != nil || err != nil {
			t.Fatalf("%q: expected plain reply, got act=%v err=%v", text, act, err)
		}
	}
}

func TestParseDirective_Note(t *testing.T) {
	act, err := ParseDirective("[ACTION:NOTE|Groceries|Buy milk]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	note, ok := act.(NoteAction)
	if !ok {
		t.Fatalf("expected NoteAction, got %T", act)
	}
	if note.Title != "Groceries" || note.Content != "Buy milk" {
		t.Fatalf("unexpected fields: %+v", note)
	}
}

func TestParseDirective_Event(t *testing.T) {
	act, err := ParseDirective("[ACTION:EVENT|Standup|tomorrow at 9am]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ev, ok := act.(EventAction)
	if !ok {
		t.Fatalf("expected EventAction, got %T", act)
	}
	if ev.Title != "Standup" || ev.When != "tomorrow at 9am" {
		t.Fatalf("unexpected fields: %+v", ev)
	}
}

func TestParseDirective_LeadingWhitespace(t *testing.T) {
	act, err := ParseDirective("  \n[ACTION:NOTE|a|b]")
	if err != nil || act == nil {
		t.Fatalf("expected directive after trimming, got act=%v err=%v", act, err)
	}
}

func TestParseDirective_MissingTrailingBracket(t *testing.T) {
	act, err := ParseDirective("[ACTION:NOTE|Groceries|Buy milk")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	note, ok := act.(NoteAction)
	if !ok {
		t.Fatalf("expected NoteAction, got %T", act)
	}
	if note.Content != "Buy milk" {
		t.Fatalf("content must not be clipped: %q", note.Content)
	}
}

func TestParseDirective_StructuralFallbackToPlain(t *testing.T) {
	cases := []string{
		"[ACTION:NOTE|OnlyTitle]",   // too few parts
		"[ACTION:DELETE|x|y]",       // unknown kind
		"[ACTION:DELETE|a|b|c]",     // unknown kind wins over field count
		"[ACTION:note|x|y]",         // kind is case-sensitive
		"[ACTION:]",                 // empty kind is unknown
		"[ACTION:NOTE]",             // kind only
	}
	for _, text := range cases {
		act, err := ParseDirective(text)
		if act != nil || err != nil {
			t.Fatalf("%q: expected plain fallback, got act=%v err=%v", text, act, err)
		}
	}
}

func TestParseDirective_DelimiterInFieldIsError(t *testing.T) {
	// A literal '|' inside a field is unrecoverably ambiguous; it must be
	// rejected, not silently truncated.
	_, err := ParseDirective("[ACTION:NOTE|Shopping|Buy milk | eggs]")
	if !errors.Is(err, ErrMalformedDirective) {
		t.Fatalf("expected ErrMalformedDirective, got %v", err)
	}
}

func TestParseDirective_HeadWithoutKindSeparator(t *testing.T) {
	// "[ACTION:" prefix but extra colons make the head malformed.
	act, err := ParseDirective("[ACTION:NOTE:EXTRA|a|b]")
	if act != nil || err != nil {
		t.Fatalf("expected plain fallback, got act=%v err=%v", act, err)
	}
}
