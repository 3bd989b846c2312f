package models

import (
	"bytes"
	"fmt"
	"time"
)

// TimestampLayout is the dd-MM-yyyy HH:mm:ss layout used by tap and trip documents.
const TimestampLayout = "02-01-2006 15:04:05"

// Timestamp is a UTC instant serialized with TimestampLayout and no zone suffix.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to whole seconds in UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Second)}
}

// ParseTimestamp parses a TimestampLayout string as UTC.
func ParseTimestamp(value string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampLayout, value, time.UTC)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return Timestamp{Time: t}, nil
}

// MustParseTimestamp is ParseTimestamp for fixtures and tests.
func MustParseTimestamp(value string) Timestamp {
	ts, err := ParseTimestamp(value)
	if err != nil {
		panic(err)
	}
	return ts
}

func (ts Timestamp) String() string {
	return ts.UTC().Format(TimestampLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.String() + `"`), nil
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp must be a string, got %s", data)
	}
	parsed, err := ParseTimestamp(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
