package scheduling

import (
	"time"

	"fletero/config"
)

// operatingWindow returns the configured opening and closing hours, falling
// back to 06-20 when unset.
func operatingWindow() (int, int) {
	start := config.AppConfig.OperatingStartHour
	end := config.AppConfig.OperatingEndHour
	if end <= 0 {
		start, end = 6, 20
	}
	return start, end
}

// GenerateDaySlots produces every candidate start time for the given calendar
// day: each hour of the operating window inclusive, at the configured minute
// marks, anchored to the fixed business offset. Ascending order is significant;
// the availability scan returns the first unit whose slots survive.
func GenerateDaySlots(day time.Time) []time.Time {
	loc := config.BusinessLocation()
	startHour, endHour := operatingWindow()
	interval := config.AppConfig.SlotIntervalMinutes
	if interval <= 0 || interval > 60 {
		interval = 30
	}

	year, month, d := day.Date()
	var slots []time.Time
	for hour := startHour; hour <= endHour; hour++ {
		for minute := 0; minute < 60; minute += interval {
			slots = append(slots, time.Date(year, month, d, hour, minute, 0, 0, loc))
		}
	}
	return slots
}

// hoursToDuration converts fractional hours to a time.Duration.
func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
