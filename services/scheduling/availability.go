package scheduling

import (
	"context"
	"strings"
	"time"

	"fletero/config"
	"fletero/models"
	"fletero/services/calendar"
	"fletero/utils"

	"go.uber.org/zap"
)

// Search scans the fleet in list order and returns the first unit with at
// least one free slot on the requested day, along with all of its surviving
// slots. First-fit: no other unit is considered once one matches.
func (s *DefaultSchedulingService) Search(ctx context.Context, req models.SearchRequest) (models.SearchResult, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(req.Date) == "" {
		return models.SearchResult{}, NewValidationError("date is required (YYYY-MM-DD)")
	}
	loc := config.BusinessLocation()
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(req.Date), loc)
	if err != nil {
		return models.SearchResult{}, NewValidationError("date must be formatted as YYYY-MM-DD")
	}

	resources, err := s.Directory.ListResources(ctx)
	if err != nil {
		return models.SearchResult{}, err
	}

	serviceHours := EstimateServiceHours(req.ServiceType, req.Volume)

	for _, res := range resources {
		if res.Label == "" {
			continue
		}
		if !models.LabelMatchesCity(res.Label, req.OriginCity) {
			continue
		}
		if models.LabelInactive(res.Label) {
			continue
		}
		unit := models.ParseFleetLabel(res.ID, res.Label)
		if req.Volume > 0 && unit.MaxVolume > 0 && unit.MaxVolume < req.Volume {
			continue
		}

		booked, err := s.Directory.ListEvents(ctx, res.ID, day, day.Add(24*time.Hour))
		if err != nil {
			return models.SearchResult{}, err
		}

		free := freeSlots(day, serviceHours, booked, loc)
		if len(free) == 0 {
			continue
		}

		slots := make([]string, 0, len(free))
		for _, slot := range free {
			slots = append(slots, slot.Format(time.RFC3339))
		}
		logger.Info("availability found",
			zap.String("calendarId", res.ID),
			zap.String("date", req.Date),
			zap.Int("slots", len(slots)))
		return models.SearchResult{
			Available: true,
			Calendar: &models.AvailableCalendar{
				CalendarID:     unit.CalendarID,
				CalendarCode:   unit.Code,
				VehicleType:    unit.VehicleType,
				MaxVolume:      unit.MaxVolume,
				AvailableSlots: slots,
			},
		}, nil
	}

	return models.SearchResult{Available: false}, nil
}

// freeSlots filters the day's candidate grid down to starts that fit the
// estimated service duration. The closing-hour check guards against spilling
// far past closing rather than enforcing an exact bound, so edge slots near
// closing may still be offered.
func freeSlots(day time.Time, serviceHours float64, booked []calendar.Interval, loc *time.Location) []time.Time {
	startHour, endHour := operatingWindow()

	var free []time.Time
	for _, slot := range GenerateDaySlots(day) {
		end := slot.Add(hoursToDuration(serviceHours))
		if slot.Hour() < startHour || end.In(loc).Hour() > endHour+1 {
			continue
		}
		if overlapsAny(slot, end, booked) {
			continue
		}
		free = append(free, slot)
	}
	return free
}

// overlapsAny reports whether [start, end) intersects any booked interval.
func overlapsAny(start, end time.Time, booked []calendar.Interval) bool {
	for _, b := range booked {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}
