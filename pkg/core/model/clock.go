package model

import "fmt"

// FormatClock renders minutes-from-midnight as a 12-hour clock string,
// e.g. 480 -> "8:00 AM", 765 -> "12:45 PM", 0 -> "12:00 AM".
// Minutes of 1440 or more wrap around past midnight.
func FormatClock(minute int) string {
	minute = ((minute % 1440) + 1440) % 1440

	hour := minute / 60
	min := minute % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, min, period)
}
