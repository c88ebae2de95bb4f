package models

import (
	"strconv"
	"strings"
)

// FleetUnit is one vehicle calendar as described by its label. The label is a
// slash-separated string of the form "status/city/code/vehicleType/maxVolume",
// e.g. "activo/Pereira/FT-03/furgon/12m". Labels are free text on the calendar
// side; fields that fail to parse fall back to zero values rather than
// rejecting the unit.
type FleetUnit struct {
	CalendarID  string  `json:"calendarId"`
	Label       string  `json:"label"`
	Status      string  `json:"status,omitempty"`
	City        string  `json:"city,omitempty"`
	Code        string  `json:"code,omitempty"`
	VehicleType string  `json:"vehicleType,omitempty"`
	MaxVolume   float64 `json:"maxVolume,omitempty"` // cubic meters, 0 = unlimited
	Active      bool    `json:"active"`
}

// Substrings that mark a unit as out of service. Matched case-insensitively
// against the whole label.
var inactiveMarkers = []string{"inactivo", "inactive", "pausado", "paused"}

// ParseFleetLabel builds a FleetUnit from a calendar id and label.
func ParseFleetLabel(calendarID, label string) FleetUnit {
	unit := FleetUnit{
		CalendarID: calendarID,
		Label:      label,
		Active:     label != "" && !LabelInactive(label),
	}

	parts := strings.Split(label, "/")
	if len(parts) > 0 {
		unit.Status = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		unit.City = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		unit.Code = strings.TrimSpace(parts[2])
	}
	if len(parts) > 3 {
		unit.VehicleType = strings.TrimSpace(parts[3])
	}
	if len(parts) > 4 {
		unit.MaxVolume = parseVolume(parts[4])
	}
	return unit
}

// LabelInactive reports whether the label carries an out-of-service marker.
func LabelInactive(label string) bool {
	lower := strings.ToLower(label)
	for _, marker := range inactiveMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// LabelMatchesCity reports whether the label mentions the given city.
// An empty city matches everything.
func LabelMatchesCity(label, city string) bool {
	if city == "" {
		return true
	}
	return strings.Contains(strings.ToLower(label), strings.ToLower(city))
}

// parseVolume extracts the leading numeric value from a capacity field such as
// "12m" or "26 m3". Returns 0 (unlimited) when nothing numeric is found.
func parseVolume(field string) float64 {
	s := strings.TrimSpace(field)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0
	}
	vol, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return vol
}
