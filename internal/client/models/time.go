// Package models defines the domain records exchanged with the Forked
// backend and the third-party search API, together with their decode
// contracts. Wire field names are declared explicitly via struct tags or
// custom UnmarshalJSON implementations; nothing relies on implicit name
// matching.
package models

import (
	"encoding/json"
	"time"
)

// ServerTimeLayout is the backend's timestamp format. Note the dash between
// hours and minutes; the backend has always emitted it this way.
const ServerTimeLayout = "2006-01-02 15-04:05"

// ServerTime is a timestamp in the backend's wire layout, stored as UTC.
//
// Decoding is tolerant: a null, missing, or unparseable value leaves the
// zero time (IsZero reports true) instead of failing the enclosing object.
// Optional date fields on Tag and Visit rely on this.
type ServerTime struct {
	time.Time
}

func ParseServerTime(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(ServerTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (t *ServerTime) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if parsed, ok := ParseServerTime(s); ok {
		t.Time = parsed
	}
	return nil
}

func (t ServerTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(ServerTimeLayout))
}
