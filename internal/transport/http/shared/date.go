package shared

import "time"

// Due dates arrive either as full RFC3339 stamps from the date-time picker
// or as bare YYYY-MM-DD values. Empty input means "no due date", not an
// error.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	var err error
	for _, layout := range dateLayouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}
