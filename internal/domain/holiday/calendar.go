package holiday

import "time"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// calendar2026 is the company holiday list for 2026, maintained by HR.
var calendar2026 = []Holiday{
	{Name: "New Year's Day", Description: "First day of the calendar year", Date: date(2026, time.January, 1), Type: TypeOptional},
	{Name: "Makar Sankranti", Description: "Harvest festival", Date: date(2026, time.January, 14), Type: TypeFestival},
	{Name: "Republic Day", Description: "National holiday", Date: date(2026, time.January, 26), Type: TypePublic},
	{Name: "Holi", Description: "Festival of colours", Date: date(2026, time.March, 4), Type: TypeFestival},
	{Name: "Good Friday", Description: "Christian observance", Date: date(2026, time.March, 29), Type: TypePublic},
	{Name: "Ambedkar Jayanti", Description: "Birth anniversary of Dr. B. R. Ambedkar", Date: date(2026, time.April, 14), Type: TypePublic},
	{Name: "Labour Day", Description: "International Workers' Day", Date: date(2026, time.May, 1), Type: TypePublic},
	{Name: "Independence Day", Description: "National holiday", Date: date(2026, time.August, 15), Type: TypePublic},
	{Name: "Janmashtami", Description: "Birth of Lord Krishna", Date: date(2026, time.September, 5), Type: TypeFestival},
	{Name: "Gandhi Jayanti", Description: "Birth anniversary of Mahatma Gandhi", Date: date(2026, time.October, 2), Type: TypePublic},
	{Name: "Dussehra", Description: "Victory of good over evil", Date: date(2026, time.October, 20), Type: TypeFestival},
	{Name: "Diwali", Description: "Festival of lights", Date: date(2026, time.November, 9), Type: TypeFestival},
	{Name: "Christmas", Description: "Christian festival", Date: date(2026, time.December, 25), Type: TypePublic},
}

// Calendar returns the holiday list for a year, sorted by date. Years
// without a maintained list return an empty slice.
func Calendar(year int) []Holiday {
	if year != 2026 {
		return []Holiday{}
	}
	out := make([]Holiday, len(calendar2026))
	copy(out, calendar2026)
	return out
}

// IsHoliday reports whether the given date falls on a listed holiday.
func IsHoliday(day time.Time) (Holiday, bool) {
	for _, h := range Calendar(day.Year()) {
		if h.Date.Month() == day.Month() && h.Date.Day() == day.Day() {
			return h, true
		}
	}
	return Holiday{}, false
}

// Upcoming returns holidays on or after the given date in the same
// year, capped at limit. limit <= 0 means no cap.
func Upcoming(from time.Time, limit int) []Holiday {
	cutoff := date(from.Year(), from.Month(), from.Day())
	var out []Holiday
	for _, h := range Calendar(from.Year()) {
		if h.Date.Before(cutoff) {
			continue
		}
		out = append(out, h)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	if out == nil {
		out = []Holiday{}
	}
	return out
}
