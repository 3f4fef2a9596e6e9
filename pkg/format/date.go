// Package format provides stateless date formatting with an explicit
// locale, so no component depends on hidden process-wide locale state.
package format

import "time"

// Locale selects the display conventions for formatted dates.
type Locale string

const (
	LocaleNL Locale = "nl-NL"
	LocaleEN Locale = "en-US"
)

// ISODate is the calendar-date wire format used in submission payloads.
// Deadlines are dates, not instants; no time component or zone is sent.
const ISODate = "2006-01-02"

// Date formats t as a calendar date (YYYY-MM-DD) for wire payloads.
func Date(t time.Time) string {
	return t.Format(ISODate)
}

// Short formats t the way the given locale abbreviates a timestamp in
// tables ("02-01-2006 15:04" for nl-NL).
func Short(locale Locale, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	switch locale {
	case LocaleNL:
		return t.Format("02-01-2006 15:04")
	default:
		return t.Format("1/2/06 3:04 PM")
	}
}

// Long formats t as a full date for detail views.
func Long(locale Locale, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	switch locale {
	case LocaleNL:
		return t.Format("02-01-2006")
	default:
		return t.Format("Jan 2, 2006")
	}
}
