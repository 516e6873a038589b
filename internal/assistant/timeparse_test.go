package assistant

import (
	"testing"
	"time"
)

func TestNaturalParser_Relative(t *testing.T) {
	p := NewNaturalParser()
	ref := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	got, ok := p.Parse("tomorrow at 9am", ref)
	if !ok {
		t.Fatalf("expected a parse")
	}
	want := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNaturalParser_AbsoluteLayouts(t *testing.T) {
	p := NewNaturalParser()
	ref := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	cases := []string{
		"2026-09-01T09:00:00Z",
		"2026-09-01 09:00",
	}
	for _, expr := range cases {
		if _, ok := p.Parse(expr, ref); !ok {
			t.Fatalf("%q: expected a parse", expr)
		}
	}
}

func TestNaturalParser_Unparseable(t *testing.T) {
	p := NewNaturalParser()
	ref := time.Now()

	for _, expr := range []string{"zzzznotatime", "", "   "} {
		if _, ok := p.Parse(expr, ref); ok {
			t.Fatalf("%q: expected no parse", expr)
		}
	}
}
