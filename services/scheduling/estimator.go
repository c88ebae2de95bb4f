package scheduling

import (
	"math"
	"strings"

	"fletero/config"
)

// Service-type markers, matched case-insensitively as substrings.
var (
	furnitureMarkers = []string{"mueble", "furniture"}
	moveMarkers      = []string{"mudanza", "trasteo", "move", "relocation"}
)

// EstimateServiceHours maps a service type and cumulative volume to on-site
// hours. Furniture drop-offs are a fixed 20 minutes regardless of volume;
// moves follow a step function over volume; anything else defaults to one
// hour. Always returns a positive value.
func EstimateServiceHours(serviceType string, volume float64) float64 {
	lower := strings.ToLower(serviceType)

	for _, marker := range furnitureMarkers {
		if strings.Contains(lower, marker) {
			return 1.0 / 3.0
		}
	}

	for _, marker := range moveMarkers {
		if strings.Contains(lower, marker) {
			switch {
			case volume <= 7.5:
				return 2
			case volume <= 12:
				return 2.5
			case volume <= 17:
				return 3
			case volume <= 26:
				return 4
			case volume <= 33:
				return 5
			default:
				return 6
			}
		}
	}

	return 1
}

// EstimateTravelHours converts a road distance to hours at the assumed urban
// average speed. Without a finite non-negative distance the fallback is half
// an hour; a negative distance would push the booked end before its start.
func EstimateTravelHours(distanceKm *float64) float64 {
	if distanceKm == nil || math.IsNaN(*distanceKm) || math.IsInf(*distanceKm, 0) || *distanceKm < 0 {
		return 0.5
	}
	speed := config.AppConfig.TravelSpeedKmh
	if speed <= 0 {
		speed = 35
	}
	return *distanceKm / speed
}
