package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fletero/config"
	"fletero/models"
	"fletero/services/calendar"
	"fletero/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reserve books a slot on the given calendar. The conflict recheck is best
// effort: two concurrent reservations for overlapping slots can both pass it,
// producing a double booking. No locking is attempted.
func (s *DefaultSchedulingService) Reserve(ctx context.Context, req models.ReserveRequest) (models.Reservation, error) {
	logger := utils.GetLogger()
	var zero models.Reservation

	if strings.TrimSpace(req.CalendarID) == "" {
		return zero, NewValidationError("calendarId is required")
	}
	if strings.TrimSpace(req.Date) == "" {
		return zero, NewValidationError("date is required (YYYY-MM-DD)")
	}
	if strings.TrimSpace(req.SlotStart) == "" {
		return zero, NewValidationError("slotStart is required (ISO 8601)")
	}

	loc := config.BusinessLocation()
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(req.Date), loc)
	if err != nil {
		return zero, NewValidationError("date must be formatted as YYYY-MM-DD")
	}
	slotStart, err := time.Parse(time.RFC3339, strings.TrimSpace(req.SlotStart))
	if err != nil {
		return zero, NewValidationError("slotStart must be an ISO 8601 timestamp")
	}
	slotStart = slotStart.In(loc)

	serviceHours := EstimateServiceHours(req.ServiceType, req.Volume)
	travelHours := EstimateTravelHours(req.DistanceKm)

	// The first job of the day carries no inter-job buffer.
	prior, err := s.Directory.ListEvents(ctx, req.CalendarID, day, slotStart)
	if err != nil {
		return zero, err
	}
	buffer := 0.0
	if len(prior) > 0 {
		buffer = config.AppConfig.JobBufferHours
		if buffer <= 0 {
			buffer = 1
		}
	}

	totalHours := serviceHours + travelHours + buffer
	end := slotStart.Add(hoursToDuration(totalHours))

	conflicts, err := s.Directory.ListEvents(ctx, req.CalendarID, slotStart, end)
	if err != nil {
		return zero, err
	}
	if len(conflicts) > 0 {
		return zero, NewConflictError("the requested slot is no longer available")
	}

	reference := uuid.New().String()
	created, err := s.Directory.InsertEvent(ctx, req.CalendarID, calendar.Event{
		Summary:     eventSummary(req.Customer),
		Description: eventDescription(req, totalHours, reference),
		Start:       slotStart,
		End:         end,
	})
	if err != nil {
		return zero, err
	}

	logger.Info("reservation created",
		zap.String("calendarId", req.CalendarID),
		zap.String("eventId", created.ID),
		zap.String("reference", reference),
		zap.Float64("hours", totalHours))

	return models.Reservation{
		CalendarID: req.CalendarID,
		Reference:  reference,
		Start:      slotStart.Format(time.RFC3339),
		End:        end.Format(time.RFC3339),
		EventID:    created.ID,
		Link:       created.Link,
	}, nil
}

func eventSummary(customer models.Customer) string {
	if customer.Name == "" {
		return "Servicio reservado"
	}
	return fmt.Sprintf("Servicio reservado - %s", customer.Name)
}

func eventDescription(req models.ReserveRequest, totalHours float64, reference string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cliente: %s\n", req.Customer.Name)
	fmt.Fprintf(&b, "Contacto: %s / %s\n", req.Customer.Email, req.Customer.Phone)
	fmt.Fprintf(&b, "Servicio: %s\n", req.ServiceType)
	fmt.Fprintf(&b, "Volumen: %g m3\n", req.Volume)
	fmt.Fprintf(&b, "Origen: %s\n", req.Origin)
	fmt.Fprintf(&b, "Destino: %s\n", req.Destination)
	fmt.Fprintf(&b, "Duracion estimada: %.2f h\n", totalHours)
	fmt.Fprintf(&b, "Referencia: %s", reference)
	return b.String()
}
