package handlers

import "time"

const dateLayout = "2006-01-02"

func dateString(t time.Time) string {
	return t.Format(dateLayout)
}

func isValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// shorthandRange resolves the filter=today|tomorrow|upcoming shorthands
// into a concrete date equality or an open-ended upcoming range.
func shorthandRange(filter string, now time.Time) (date string, upcoming bool, ok bool) {
	switch filter {
	case "today":
		return dateString(now), false, true
	case "tomorrow":
		return dateString(now.AddDate(0, 0, 1)), false, true
	case "upcoming":
		return "", true, true
	}
	return "", false, false
}
