package service

import "time"

// DateRangePresets are the named ranges the items filter understands
var DateRangePresets = []string{
	"today", "yesterday", "this_week", "last_week",
	"this_month", "last_month", "last_30_days",
}

// ResolveDateRangePreset translates a named preset into a concrete
// [start, end] pair relative to now. Weeks start on Monday. Unknown preset
// names return ok=false.
func ResolveDateRangePreset(preset string, now time.Time) (start, end time.Time, ok bool) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch preset {
	case "today":
		return dayStart, endOfDay(dayStart), true
	case "yesterday":
		yesterday := dayStart.AddDate(0, 0, -1)
		return yesterday, endOfDay(yesterday), true
	case "this_week":
		weekStart := startOfWeek(dayStart)
		return weekStart, endOfDay(weekStart.AddDate(0, 0, 6)), true
	case "last_week":
		weekStart := startOfWeek(dayStart).AddDate(0, 0, -7)
		return weekStart, endOfDay(weekStart.AddDate(0, 0, 6)), true
	case "this_month":
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return monthStart, endOfDay(monthStart.AddDate(0, 1, -1)), true
	case "last_month":
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		return monthStart, endOfDay(monthStart.AddDate(0, 1, -1)), true
	case "last_30_days":
		return dayStart.AddDate(0, 0, -30), endOfDay(dayStart), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// startOfWeek returns the Monday of the week containing day
func startOfWeek(day time.Time) time.Time {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

func endOfDay(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
