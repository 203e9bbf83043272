package model

import "time"

// Instant holds either a successfully parsed, timezone-aware point in time
// or the raw timestamp text kept as an opaque display value.
type Instant struct {
	at     time.Time
	raw    string
	parsed bool
}

func ParsedInstant(t time.Time) Instant {
	return Instant{at: t, parsed: true}
}

func RawInstant(raw string) Instant {
	return Instant{raw: raw}
}

func (i Instant) Parsed() bool {
	return i.parsed
}

// Time is only meaningful when Parsed reports true.
func (i Instant) Time() time.Time {
	return i.at
}

func (i Instant) Raw() string {
	return i.raw
}
