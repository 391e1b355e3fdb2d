package utils

import (
	"fmt"
	"time"
)

// deadlineLayouts are the accepted ISO-8601 shapes for deadline inputs.
// Date-only values resolve to midnight UTC so they round-trip without
// picking up a local offset.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDeadline parses an ISO-8601 deadline string. Returns nil for "".
func ParseDeadline(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("invalid deadline %q: expected RFC 3339 or YYYY-MM-DD", value)
}
