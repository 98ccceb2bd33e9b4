package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)

// arabicMonths maps the Arabic Gregorian month names used in long-form offer
// dates ("15 يناير 2025") to their calendar index.
var arabicMonths = map[string]time.Month{
	"يناير":  time.January,
	"فبراير": time.February,
	"مارس":   time.March,
	"أبريل":  time.April,
	"مايو":   time.May,
	"يونيو":  time.June,
	"يوليو":  time.July,
	"أغسطس":  time.August,
	"سبتمبر": time.September,
	"أكتوبر": time.October,
	"نوفمبر": time.November,
	"ديسمبر": time.December,
}

// ParseOfferDate parses an offer end date. Two forms are accepted: an ISO
// YYYY-MM-DD prefix, and the Arabic long form "<day> <month name> <year>".
// The result is truncated to local midnight. ok is false when neither form
// matches; callers must treat such offers as never active.
func ParseOfferDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if m := isoDatePattern.FindStringSubmatch(raw); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
	}

	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	month, ok := arabicMonths[fields[1]]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local), true
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
