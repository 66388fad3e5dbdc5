package tin

import "time"

// now is the clock read by the date and time helpers.
var now = time.Now

// Year returns the current year in UTC.
func Year() int { return now().UTC().Year() }

// Month returns the current month in UTC, 1 to 12.
func Month() int { return int(now().UTC().Month()) }

// Day returns the current day of the month in UTC.
func Day() int { return now().UTC().Day() }

// Hour returns the current hour in UTC, 0 to 23.
func Hour() int { return now().UTC().Hour() }

// Minute returns the current minute.
func Minute() int { return now().UTC().Minute() }

// Second returns the current second.
func Second() int { return now().UTC().Second() }

// Nanosecond returns the nanosecond offset within the current second.
func Nanosecond() int { return now().UTC().Nanosecond() }

// Millis returns the milliseconds elapsed since the Unix epoch.
func Millis() int64 { return now().UnixMilli() }
