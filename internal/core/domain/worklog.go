package domain

import (
	"encoding/json"
	"time"
)

// WorkLogEntry is one unit of logged work. Fields holds the free-form payload
// submitted next to the owner email and date.
type WorkLogEntry struct {
	ID     string
	Email  string
	Date   time.Time
	Fields map[string]any
}

// MarshalJSON flattens Fields into the top-level object.
func (w WorkLogEntry) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(w.Fields)+3)
	for k, v := range w.Fields {
		out[k] = v
	}
	if w.ID != "" {
		out["_id"] = w.ID
	}
	out["email"] = w.Email
	out["date"] = w.Date.UTC().Format(time.RFC3339)
	return json.Marshal(out)
}
