package utils

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// ParseDateParameter parses a registration date in YYYY-MM-DD format.
// An empty value means today in currentLocation. Later dates are accepted; their age is
// negative or zero and the schedule decides whether they can be valued.
// It returns the date, any field errors encountered, and whether parsing succeeded.
func ParseDateParameter(key, dateParam string, now time.Time, currentLocation *time.Location) (civil.Date, map[string][]string, bool) {
	today := civil.DateOf(now.In(currentLocation))
	if dateParam == "" {
		return today, nil, true
	}

	invalid := map[string][]string{
		key: {fmt.Sprintf("Invalid field value for field %q.", key)},
	}

	if err := ValidateDate(dateParam); err != nil {
		return civil.Date{}, invalid, false
	}

	date, err := civil.ParseDate(dateParam)
	if err != nil || !date.IsValid() {
		return civil.Date{}, invalid, false
	}

	return date, nil, true
}
