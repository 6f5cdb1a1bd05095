package common

import (
	"fmt"
	"time"
)

const dateOnlyLayout = "2006-01-02" // yyyy-MM-dd

// ParseDateParam interprets an optional yyyy-MM-dd query value in loc.
// A missing value is not an error; a malformed one is rejected so the
// caller fails the request instead of silently dropping the filter.
func ParseDateParam(name, value string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateOnlyLayout, value, loc)
	if err != nil {
		return nil, fmt.Errorf("Invalid %s date format. Use YYYY-MM-DD", name)
	}
	return &t, nil
}
