package usecase

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octolist/pkg/domain"
)

// The API does not commit to one timestamp shape: fractional seconds and
// the trailing Z come and go depending on endpoint and field. Layouts are
// tried in order and the first match wins. Layouts marked normalize run
// against the text with a trailing Z rewritten to +00:00, since Go parses
// a literal Z and a numeric offset through different layout verbs.
type timestampLayout struct {
	layout    string
	normalize bool
}

var timestampLayouts = []timestampLayout{
	{layout: "2006-01-02T15:04:05.000Z"},
	{layout: "2006-01-02T15:04:05Z"},
	{layout: "2006-01-02T15:04:05.000-07:00", normalize: true},
	{layout: "2006-01-02T15:04:05-07:00", normalize: true},
}

// ParseTimestamp interprets a raw API timestamp as a timezone-aware time.
// Z-suffixed text is read as UTC. When no layout matches, callers keep the
// raw text as the display value instead of dropping the field.
func ParseTimestamp(raw string) (time.Time, error) {
	normalized := raw
	if strings.HasSuffix(raw, "Z") {
		normalized = strings.TrimSuffix(raw, "Z") + "+00:00"
	}

	for _, l := range timestampLayouts {
		input := raw
		if l.normalize {
			input = normalized
		}
		if t, err := time.Parse(l.layout, input); err == nil {
			return t, nil
		}
	}

	return time.Time{}, domain.ErrTimestampParse.Wrap(
		goerr.New("no layout matched"),
		goerr.V("timestamp", raw),
	)
}
