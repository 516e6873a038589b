package assistant

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// TimeParser resolves a natural-language time expression to a concrete
// instant, best effort. The concrete parser is swappable.
type TimeParser interface {
	// Parse returns the resolved instant and true, or false when the
	// expression cannot be understood.
	Parse(expr string, ref time.Time) (time.Time, bool)
}

// NaturalParser resolves expressions like "tomorrow at 9am" using the
// english and common rule sets, with a fallback to a few absolute layouts.
type NaturalParser struct {
	w *when.Parser
}

func NewNaturalParser() *NaturalParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &NaturalParser{w: w}
}

var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (p *NaturalParser) Parse(expr string, ref time.Time) (time.Time, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, false
	}
	if r, err := p.w.Parse(expr, ref); err == nil && r != nil {
		return r.Time, true
	}
	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, expr); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
